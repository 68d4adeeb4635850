/*
 * dislocation.go, part of gocryst.
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

// MonopoleParams describes a dislocation monopole in crystallographic
// terms: the [uvw] orientation of the three final box axes, a uniform
// shift applied to all atoms, the Burgers vector in lattice
// coordinates, and the shape and width of the fixed boundary region.
// BoundaryWidth is in multiples of the unit cell's a lattice parameter.
type MonopoleParams struct {
	AUvw, BUvw, CUvw [3]float64
	AtomShift        [3]float64
	Burgers          [3]float64
	BoundaryShape    string
	BoundaryWidth    float64
}

// Monopole holds the monopole parameters resolved against a concrete
// unit cell: the Burgers vector in Cartesian working units and the
// boundary width in length units.
type Monopole struct {
	Params        *MonopoleParams
	Burgers       [3]float64
	BoundaryShape string
	BoundaryWidth float64
}

// InterpretMonopole resolves params against the unit cell ucell,
// scaling the crystallographic Burgers vector through the cell vectors
// and the boundary width by the cell's a parameter. An empty boundary
// shape defaults to "circle" and a zero width to 3.0 cells.
func InterpretMonopole(params *MonopoleParams, ucell *cryst.Box) (*Monopole, error) {
	if ucell == nil {
		return nil, DError{msg: "goCryst/defect: monopole interpretation needs a unit cell", deco: []string{"InterpretMonopole"}}
	}
	shape := params.BoundaryShape
	if shape == "" {
		shape = "circle"
	}
	width := params.BoundaryWidth
	if width == 0 {
		width = 3.0
	}
	v := ucell.Vects()
	var burgers [3]float64
	for i := 0; i < 3; i++ {
		burgers[i] = params.Burgers[0]*v[i] + params.Burgers[1]*v[3+i] + params.Burgers[2]*v[6+i]
	}
	return &Monopole{
		Params:        params,
		Burgers:       burgers,
		BoundaryShape: shape,
		BoundaryWidth: width * ucell.A(),
	}, nil
}
