/*
 * script.go, part of gocryst.
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

package lammps

import "fmt"

//The elastic-constants probe. One undeformed thermo frame, then a -/+
//delta pair in each of the six deformation directions: 13 frames in
//the order the evaluator expects them.
const cijTemplate = `#Static elastic constants from six -/+ delta box deformations

box tilt large

<system_info>

<pair_info>

variable peatom equal pe/atoms

thermo_style custom step lx ly lz xy xz yz pxx pyy pzz pxy pxz pyz v_peatom
thermo_modify format float %.13e

run 0

change_box all x scale <shrink> remap units box
run 0
change_box all x scale <swing> remap units box
run 0
change_box all x scale <restore> remap units box

change_box all y scale <shrink> remap units box
run 0
change_box all y scale <swing> remap units box
run 0
change_box all y scale <restore> remap units box

change_box all z scale <shrink> remap units box
run 0
change_box all z scale <swing> remap units box
run 0
change_box all z scale <restore> remap units box

change_box all yz delta $(-<delta>*lz) remap units box
run 0
change_box all yz delta $(2.0*<delta>*lz) remap units box
run 0
change_box all yz delta $(-<delta>*lz) remap units box

change_box all xz delta $(-<delta>*lz) remap units box
run 0
change_box all xz delta $(2.0*<delta>*lz) remap units box
run 0
change_box all xz delta $(-<delta>*lz) remap units box

change_box all xy delta $(-<delta>*ly) remap units box
run 0
change_box all xy delta $(2.0*<delta>*ly) remap units box
run 0
change_box all xy delta $(-<delta>*ly) remap units box
`

const minTemplate = `#Static energy minimization

<system_info>

<pair_info>

variable peatom equal pe/atoms

thermo_style custom step lx ly lz pxx pyy pzz pe v_peatom
thermo_modify format float %.13e

dump atomdump all custom <dump_every> atom.* id type x y z

minimize <etol> <ftol> <maxiter> <maxeval>
`

// CijScript renders the input script that probes the elastic constants
// of a system with strain perturbations of magnitude delta. systemInfo
// and pairInfo are the command blocks that create the system and set up
// the potential.
func CijScript(systemInfo, pairInfo string, delta float64) (string, error) {
	vars := map[string]interface{}{
		"system_info": systemInfo,
		"pair_info":   pairInfo,
		"delta":       fmt.Sprintf("%g", delta),
		//the three scale factors that visit -delta, +delta and back to
		//the undeformed length
		"shrink":  fmt.Sprintf("%.16g", 1.0-delta),
		"swing":   fmt.Sprintf("%.16g", (1.0+delta)/(1.0-delta)),
		"restore": fmt.Sprintf("%.16g", 1.0/(1.0+delta)),
	}
	s, err := FillTemplate(cijTemplate, vars, "<", ">")
	if err != nil {
		return "", errDecorate(err, "CijScript")
	}
	return s, nil
}

// MinScript renders the input script for a static energy minimization
// with the given stopping criteria, dumping the final configuration.
func MinScript(systemInfo, pairInfo string, etol, ftol float64, maxiter, maxeval int) (string, error) {
	vars := map[string]interface{}{
		"system_info": systemInfo,
		"pair_info":   pairInfo,
		"etol":        fmt.Sprintf("%g", etol),
		"ftol":        fmt.Sprintf("%g", ftol),
		"maxiter":     maxiter,
		"maxeval":     maxeval,
		"dump_every":  maxeval,
	}
	s, err := FillTemplate(minTemplate, vars, "<", ">")
	if err != nil {
		return "", errDecorate(err, "MinScript")
	}
	return s, nil
}
