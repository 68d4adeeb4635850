/*
 * system.go, part of gocryst.
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

package cryst

import (
	"fmt"
	"math"
)

// Atom is one atom of a System. Positions are Cartesian, in the working
// length unit (Angstrom).
type Atom struct {
	Symbol string     //element symbol, must be present in the Elements table
	Type   int        //1-based LAMMPS atom type
	Pos    [3]float64 //Cartesian position
}

// System is an atomic configuration: a periodic Box plus the atoms it
// contains. The atom basis is never modified by the refinement
// machinery, which only ever re-boxes it.
type System struct {
	box   *Box
	atoms []*Atom
}

// NewSystem builds a System from a box and a list of atoms. The box
// must not be nil; an empty atom list is allowed (some tests use
// atom-less cells).
func NewSystem(box *Box, atoms []*Atom) (*System, error) {
	if box == nil {
		return nil, CError{"goCryst: nil box given to NewSystem", []string{"NewSystem"}}
	}
	return &System{box: box, atoms: atoms}, nil
}

func (S *System) Box() *Box { return S.box }

// Len returns the number of atoms in the system.
func (S *System) Len() int { return len(S.atoms) }

// Atom returns the atom corresponding to the index i. It panics if
// out of range.
func (S *System) Atom(i int) *Atom { return S.atoms[i] }

// NTypes returns the number of distinct atom types, i.e. the largest
// type index present.
func (S *System) NTypes() int {
	n := 0
	for _, a := range S.atoms {
		if a.Type > n {
			n = a.Type
		}
	}
	return n
}

// Symbols returns the element symbol for each atom type, indexed by
// type-1. Types with no atoms get an empty string.
func (S *System) Symbols() []string {
	ret := make([]string, S.NTypes())
	for _, a := range S.atoms {
		ret[a.Type-1] = a.Symbol
	}
	return ret
}

// WithBox returns a new System with the given box, with all atom
// positions rescaled so that their fractional coordinates are
// preserved. The receiver is not modified.
func (S *System) WithBox(box *Box) *System {
	atoms := make([]*Atom, len(S.atoms))
	for i, a := range S.atoms {
		na := *a
		na.Pos = box.Cartesian(S.box.Fractional(a.Pos))
		atoms[i] = &na
	}
	return &System{box: box, atoms: atoms}
}

// Unscale converts a fractional vector to a Cartesian one in the
// system's box.
func (S *System) Unscale(f [3]float64) [3]float64 {
	return S.box.Cartesian(f)
}

// DVect returns the minimum-image displacement vector from a to b under
// the system's periodic boundaries.
func (S *System) DVect(a, b [3]float64) [3]float64 {
	fa := S.box.Fractional(a)
	fb := S.box.Fractional(b)
	var df [3]float64
	for i := 0; i < 3; i++ {
		d := fb[i] - fa[i]
		d -= math.Round(d)
		df[i] = d
	}
	return S.box.Cartesian(df)
}

// Supercell returns a new system replicated na x nb x nc times along
// the box vectors. The multipliers must all be positive.
func (S *System) Supercell(na, nb, nc int) (*System, error) {
	if na < 1 || nb < 1 || nc < 1 {
		return nil, CError{fmt.Sprintf("goCryst: supercell multipliers must be positive, got %d %d %d", na, nb, nc), []string{"Supercell"}}
	}
	b := S.box
	//tilts replicate with the vector they tilt along
	nbox := &Box{
		a:  b.a * float64(na),
		b:  b.b * float64(nb),
		c:  b.c * float64(nc),
		xy: b.xy * float64(nb),
		xz: b.xz * float64(nc),
		yz: b.yz * float64(nc),
	}
	atoms := make([]*Atom, 0, len(S.atoms)*na*nb*nc)
	for i := 0; i < na; i++ {
		for j := 0; j < nb; j++ {
			for k := 0; k < nc; k++ {
				shift := b.Cartesian([3]float64{float64(i), float64(j), float64(k)})
				for _, a := range S.atoms {
					n := *a
					n.Pos[0] += shift[0]
					n.Pos[1] += shift[1]
					n.Pos[2] += shift[2]
					atoms = append(atoms, &n)
				}
			}
		}
	}
	return &System{box: nbox, atoms: atoms}, nil
}
