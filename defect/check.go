/*
 * check.go, part of gocryst.
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

package defect

import cryst "github.com/rmera/gocryst"

//a check component larger than this means the relaxed defect moved
//away from its nominal configuration.
const reconfTol = 1e-5

// Check holds the result of a defect reconfiguration analysis.
// PositionShift only applies to interstitials and substitutionals,
// DumbbellShift only to dumbbells; the Has* flags mark which ones were
// computed.
type Check struct {
	Centrosummation  [3]float64
	PositionShift    [3]float64
	HasPositionShift bool
	DumbbellShift    [3]float64
	HasDumbbellShift bool
	HasReconfigured  bool
}

func exceeds(v [3]float64, tol float64) bool {
	for _, x := range v {
		if x > tol || x < -tol {
			return true
		}
	}
	return false
}

// CheckReconfiguration decides whether a relaxed defect system sys
// still holds the defect described by params. The centrosummation of
// the minimum-image vectors from every atom within cutoff to the
// defect site must vanish for a symmetric defect; on top of that an
// interstitial or substitutional atom must remain at its nominal site
// and a dumbbell must keep its direction. Any component beyond 1e-5
// marks the defect as reconfigured.
func CheckReconfiguration(sys *cryst.System, params *PointParams, cutoff float64) (*Check, error) {
	if sys.Len() == 0 {
		return nil, DError{msg: "goCryst/defect: cannot check an empty system", deco: []string{"CheckReconfiguration"}}
	}
	pos, _ := params.cartesian(sys.Box())
	ck := new(Check)
	for i := 0; i < sys.Len(); i++ {
		//summed vectors point from each atom to the defect site
		v := sys.DVect(sys.Atom(i).Pos, pos)
		if norm(v) < cutoff {
			ck.Centrosummation[0] += v[0]
			ck.Centrosummation[1] += v[1]
			ck.Centrosummation[2] += v[2]
		}
	}
	ck.HasReconfigured = exceeds(ck.Centrosummation, reconfTol)

	switch params.Kind {
	case Interstitial, Substitutional:
		//the defect atom was placed last on insertion
		last := sys.Atom(sys.Len() - 1).Pos
		ck.PositionShift = [3]float64{pos[0] - last[0], pos[1] - last[1], pos[2] - last[2]}
		ck.HasPositionShift = true
		if exceeds(ck.PositionShift, reconfTol) {
			ck.HasReconfigured = true
		}
	case Dumbbell:
		if sys.Len() < 2 {
			return nil, DError{msg: "goCryst/defect: dumbbell check needs at least two atoms", deco: []string{"CheckReconfiguration"}}
		}
		_, dvect := params.cartesian(sys.Box())
		n := norm(dvect)
		if n == 0 {
			return nil, DError{msg: "goCryst/defect: dumbbell check with a zero dumbbell vector", deco: []string{"CheckReconfiguration"}}
		}
		high := sys.Atom(sys.Len() - 1).Pos
		low := sys.Atom(sys.Len() - 2).Pos
		now := [3]float64{high[0] - low[0], high[1] - low[1], high[2] - low[2]}
		nn := norm(now)
		if nn == 0 {
			return nil, DError{msg: "goCryst/defect: dumbbell atoms collapsed onto each other", deco: []string{"CheckReconfiguration"}}
		}
		for i := 0; i < 3; i++ {
			ck.DumbbellShift[i] = dvect[i]/n - now[i]/nn
		}
		ck.HasDumbbellShift = true
		if exceeds(ck.DumbbellShift, reconfTol) {
			ck.HasReconfigured = true
		}
	}
	return ck, nil
}
