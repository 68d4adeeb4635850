/*
 * refine.go, part of gocryst.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package main

import (
	"bytes"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rmera/gocryst/lammps"
	"github.com/rmera/gocryst/refine"
	"github.com/rmera/gocryst/report"
)

var refineCmd = &cobra.Command{
	Use:   "refine",
	Short: "Refine lattice parameters and elastic constants",
	Long: `Iteratively refine the lattice parameters of a structure at the
target pressures, measuring the elastic constants at each cycle from
six -/+ strain probes and stepping the cell through the compliance
matrix, until the cell reproduces itself.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pot, err := loadPotential()
		if err != nil {
			return err
		}
		sys, err := loadSystem()
		if err != nil {
			return err
		}
		mults, err := sizeMults()
		if err != nil {
			return err
		}

		h := newHandle("cij")
		var logbuf bytes.Buffer
		h.SetRecord(&logbuf)

		target := [3]float64{
			viper.GetFloat64("pressure_xx"),
			viper.GetFloat64("pressure_yy"),
			viper.GetFloat64("pressure_zz"),
		}
		ev := lammps.NewCijEvaluator(h, pot, viper.GetFloat64("strain_range"), target)
		ev.SetMult(mults[0], mults[1], mults[2])

		opts := refine.DefaultOptions()
		opts.Tol = viper.GetFloat64("convergence_tolerance")
		opts.MaxCycles = viper.GetInt("maximum_cycles")

		var archive *report.Archive
		if name := viper.GetString("logs"); name != "" {
			if archive, err = report.NewArchive(name); err != nil {
				return err
			}
			defer archive.Close()
		}

		trace := new(report.Trace)
		trace.Add(sys.Box())

		st := refine.NewState(sys)
		var res *refine.Result
		for cycle := 0; ; cycle++ {
			if cycle >= opts.MaxCycles {
				return refine.NonConvergenceError{Cycles: opts.MaxCycles}
			}
			st, res, err = refine.Step(st, ev, opts)
			if archive != nil && logbuf.Len() > 0 {
				//the failing cycle's log is archived too; a refinement
				//error still takes precedence over an archiving one
				if perr := archive.Put(fmt.Sprintf("cycle-%d.log", cycle), logbuf.Bytes()); perr != nil && err == nil {
					err = perr
				}
			}
			logbuf.Reset()
			if err != nil {
				return err
			}
			trace.Add(st.Current().Box())
			if st.Converged() {
				break
			}
		}
		final := st.Current()
		log.Printf("converged after %d cycles: a=%.6f b=%.6f c=%.6f",
			st.Cycle(), final.Box().A(), final.Box().B(), final.Box().C())

		doc := &report.SystemRelax{
			Potential:   pot.ID,
			Symbols:     sys.Symbols(),
			StrainRange: viper.GetFloat64("strain_range"),
			Multipliers: mults,
			PhaseState:  report.NewPhaseState(target[0], target[1], target[2]),
			InitialCell: report.NewCell(sys.Box()),
			RelaxedCell: report.NewCell(final.Box()),
			Cohesive:    &report.Value{Value: res.Ecoh, Unit: "eV"},
			Elastic:     report.NewStiffness(res.C),
			Cycles:      st.Cycle(),
			Status:      "finished",
		}
		if err := doc.WriteFile(viper.GetString("results")); err != nil {
			return err
		}
		if name := viper.GetString("trace"); name != "" {
			if err := trace.Plot(name); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(refineCmd)
}
