/*
 * point.go, part of gocryst.
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

package defect

import (
	"fmt"
	"math"

	cryst "github.com/rmera/gocryst"
)

// Kind is the type of a point defect.
type Kind int

const (
	Vacancy Kind = iota
	Interstitial
	Substitutional
	Dumbbell
)

func (k Kind) String() string {
	switch k {
	case Vacancy:
		return "vacancy"
	case Interstitial:
		return "interstitial"
	case Substitutional:
		return "substitutional"
	case Dumbbell:
		return "dumbbell"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// PointParams describes one point defect. Pos locates the defect site.
// Symbol and AType give the species of an inserted or substituted atom.
// DVect is the dumbbell half-separation vector. If Scale is true, Pos
// and DVect are fractional coordinates of the system's box instead of
// Cartesian ones.
type PointParams struct {
	Kind   Kind
	Symbol string
	AType  int
	Pos    [3]float64
	DVect  [3]float64
	Scale  bool
}

//pos and dvect in Cartesian working units, whatever the Scale flag.
func (P *PointParams) cartesian(b *cryst.Box) (pos, dvect [3]float64) {
	if !P.Scale {
		return P.Pos, P.DVect
	}
	return b.Cartesian(P.Pos), b.Cartesian(P.DVect)
}

//index of the atom closest to pos under minimum image.
func nearest(sys *cryst.System, pos [3]float64) int {
	best, bestd := 0, math.Inf(1)
	for i := 0; i < sys.Len(); i++ {
		d := norm(sys.DVect(sys.Atom(i).Pos, pos))
		if d < bestd {
			best, bestd = i, d
		}
	}
	return best
}

func norm(v [3]float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Point returns a new System with the defect described by params
// applied to sys. A vacancy removes the atom nearest to Pos. An
// interstitial appends an atom at Pos. A substitutional re-types the
// atom nearest to Pos. A dumbbell replaces the atom nearest to Pos by a
// pair displaced by -DVect and +DVect. Modified and inserted atoms end
// up at the end of the atom list, so the caller can find them there
// after a relaxation. sys is not modified.
func Point(sys *cryst.System, params *PointParams) (*cryst.System, error) {
	if sys.Len() == 0 {
		return nil, DError{msg: "goCryst/defect: cannot insert a point defect in an empty system", deco: []string{"Point"}}
	}
	pos, dvect := params.cartesian(sys.Box())
	atoms := make([]*cryst.Atom, 0, sys.Len()+1)
	switch params.Kind {
	case Vacancy:
		skip := nearest(sys, pos)
		for i := 0; i < sys.Len(); i++ {
			if i != skip {
				atoms = append(atoms, sys.Atom(i))
			}
		}
	case Interstitial:
		for i := 0; i < sys.Len(); i++ {
			atoms = append(atoms, sys.Atom(i))
		}
		atoms = append(atoms, &cryst.Atom{Symbol: params.Symbol, Type: params.AType, Pos: pos})
	case Substitutional:
		sub := nearest(sys, pos)
		for i := 0; i < sys.Len(); i++ {
			if i != sub {
				atoms = append(atoms, sys.Atom(i))
			}
		}
		old := sys.Atom(sub)
		atoms = append(atoms, &cryst.Atom{Symbol: params.Symbol, Type: params.AType, Pos: old.Pos})
	case Dumbbell:
		skip := nearest(sys, pos)
		for i := 0; i < sys.Len(); i++ {
			if i != skip {
				atoms = append(atoms, sys.Atom(i))
			}
		}
		old := sys.Atom(skip)
		low := [3]float64{old.Pos[0] - dvect[0], old.Pos[1] - dvect[1], old.Pos[2] - dvect[2]}
		high := [3]float64{old.Pos[0] + dvect[0], old.Pos[1] + dvect[1], old.Pos[2] + dvect[2]}
		atoms = append(atoms, &cryst.Atom{Symbol: old.Symbol, Type: old.Type, Pos: low})
		atoms = append(atoms, &cryst.Atom{Symbol: params.Symbol, Type: params.AType, Pos: high})
	default:
		return nil, DError{msg: fmt.Sprintf("goCryst/defect: unknown point defect kind %v", params.Kind), deco: []string{"Point"}}
	}
	newsys, err := cryst.NewSystem(sys.Box(), atoms)
	if err != nil {
		return nil, errDecorate(err, "Point")
	}
	return newsys, nil
}
