/*
 * root.go, part of gocryst.
 *
 *
 * Copyright 2025 Raul Mera <rmeraatusachdotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * goCryst is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.1.0"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "gocryst",
	Short: "Static crystal-structure calculations with LAMMPS",
	Long: `gocryst drives LAMMPS through static crystal-structure calculations:
lattice-parameter and elastic-constant refinement, and point-defect
formation energies.

Each calculation reads its parameters from a YAML input file
(calc.yaml by default) and writes a results.json document, plus
optional convergence plots and compressed engine logs.

Use "gocryst modules" to list the available calculation styles.`,
	Version: version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "calculation input file (default calc.yaml in the working directory)")
	rootCmd.PersistentFlags().String("dir", ".", "working directory for the engine runs")
	rootCmd.PersistentFlags().String("lammps", "", "LAMMPS executable (default $LAMMPS_COMMAND, or lmp_serial)")
	rootCmd.PersistentFlags().String("mpi", "", "MPI launcher prefix, e.g. \"mpirun -np 8\"")
	viper.BindPFlag("dir", rootCmd.PersistentFlags().Lookup("dir"))
	viper.BindPFlag("lammps_command", rootCmd.PersistentFlags().Lookup("lammps"))
	viper.BindPFlag("mpi_command", rootCmd.PersistentFlags().Lookup("mpi"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("calc")
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("strain_range", 1e-5)
	viper.SetDefault("pressure_xx", 0.0)
	viper.SetDefault("pressure_yy", 0.0)
	viper.SetDefault("pressure_zz", 0.0)
	viper.SetDefault("size_mults", []int{3, 3, 3})
	viper.SetDefault("energy_tolerance", 0.0)
	viper.SetDefault("force_tolerance", 1e-6)
	viper.SetDefault("maximum_iterations", 100000)
	viper.SetDefault("maximum_evaluations", 100000)
	viper.SetDefault("convergence_tolerance", 1e-10)
	viper.SetDefault("maximum_cycles", 100)
	viper.SetDefault("results", "results.json")

	//a missing config file is fine, the calculation commands check for
	//the keys they cannot default
	viper.ReadInConfig()
}
