/*
 * pointdefect.go, part of gocryst.
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
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cryst "github.com/rmera/gocryst"
	"github.com/rmera/gocryst/defect"
	"github.com/rmera/gocryst/lammps"
	"github.com/rmera/gocryst/report"
)

//minimizes the system written to datafile and returns the thermo log
//and the relaxed configuration.
func minimize(h *lammps.Handle, pot *lammps.Potential, sys *cryst.System, datafile string) (*lammps.Log, *cryst.System, error) {
	dir := viper.GetString("dir")
	if err := lammps.WriteData(filepath.Join(dir, datafile), sys, pot); err != nil {
		return nil, nil, err
	}
	pairInfo, err := pot.PairInfo(sys.Symbols())
	if err != nil {
		return nil, nil, err
	}
	script, err := lammps.MinScript(lammps.SystemInfo(pot.Units, pot.AtomStyle, datafile), pairInfo,
		viper.GetFloat64("energy_tolerance"), viper.GetFloat64("force_tolerance"),
		viper.GetInt("maximum_iterations"), viper.GetInt("maximum_evaluations"))
	if err != nil {
		return nil, nil, err
	}
	lg, err := h.Run(script)
	if err != nil {
		return nil, nil, err
	}
	step, err := lg.Last("Step")
	if err != nil {
		return nil, nil, err
	}
	relaxed, err := lammps.ReadDump(filepath.Join(dir, fmt.Sprintf("atom.%d", int(step))), sys.Symbols())
	if err != nil {
		return nil, nil, err
	}
	return lg, relaxed, nil
}

var pointdefectCmd = &cobra.Command{
	Use:   "pointdefect",
	Short: "Formation energy and stability of a point defect",
	Long: `Compute the formation energy of a point defect: minimize the
perfect supercell for the cohesive energy, insert the defect into the
relaxed configuration, minimize again, and take the difference between
the defect system's potential energy and the cohesive energy it would
have without the defect. The relaxed defect is then checked for
reconfiguration away from its nominal geometry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pot, err := loadPotential()
		if err != nil {
			return err
		}
		ucell, err := loadSystem()
		if err != nil {
			return err
		}
		mults, err := sizeMults()
		if err != nil {
			return err
		}
		params, err := defectParams()
		if err != nil {
			return err
		}
		sup, err := ucell.Supercell(mults[0], mults[1], mults[2])
		if err != nil {
			return err
		}
		units, err := lammps.StyleUnits(pot.Units)
		if err != nil {
			return err
		}

		h := newHandle("perfect")
		lg, perfect, err := minimize(h, pot, sup, "perfect.dat")
		if err != nil {
			return err
		}
		peatom, err := lg.Last("v_peatom")
		if err != nil {
			return err
		}
		ecoh := peatom * units.Energy
		log.Printf("perfect cell relaxed, cohesive energy %.6f eV/atom", ecoh)

		dsys, err := defect.Point(perfect, params)
		if err != nil {
			return err
		}
		h.SetName("ptd")
		lg, relaxed, err := minimize(h, pot, dsys, "ptd.dat")
		if err != nil {
			return err
		}
		poteng, err := lg.Last("PotEng")
		if err != nil {
			return err
		}
		eform := poteng*units.Energy - ecoh*float64(dsys.Len())
		log.Printf("%v formation energy %.6f eV", params.Kind, eform)

		ck, err := defect.CheckReconfiguration(relaxed, params, 1.05*ucell.Box().A())
		if err != nil {
			return err
		}
		if ck.HasReconfigured {
			log.Printf("warning: the defect reconfigured during relaxation")
		}

		doc := &report.PointDefect{
			Potential:  pot.ID,
			Symbols:    sup.Symbols(),
			DefectKind: params.Kind.String(),
			Mults:      mults,
			Etol:       viper.GetFloat64("energy_tolerance"),
			Ftol:       viper.GetFloat64("force_tolerance"),
			MaxIter:    viper.GetInt("maximum_iterations"),
			MaxEval:    viper.GetInt("maximum_evaluations"),
			Cohesive:   &report.Value{Value: ecoh, Unit: "eV"},
			Formation:  &report.Value{Value: eform, Unit: "eV"},
			Reconf:     report.NewReconfiguration(ck),
			Status:     "finished",
		}
		return doc.WriteFile(viper.GetString("results"))
	},
}

func init() {
	rootCmd.AddCommand(pointdefectCmd)
}
