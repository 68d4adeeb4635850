/*
 * elastic.go, part of gocryst.
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

package cryst

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

//used to correct floating point errors. Everything equal or less than this
//is considered zero.
const appzero float64 = 0.000000000001

// ElasticConstants is a symmetric 6x6 stiffness matrix in Voigt
// notation, in the working pressure unit (GPa). The compliance matrix
// (its inverse) is computed on first request and cached.
type ElasticConstants struct {
	cij *mat.Dense
	sij *mat.Dense //lazily computed inverse, nil until Sij is first called
}

// NewElasticConstants builds an ElasticConstants from a raw, possibly
// asymmetric 6x6 stiffness estimate (as obtained from finite
// differences) by symmetrizing it: Cij=Cji=(raw_ij+raw_ji)/2.
// The raw matrix is not modified.
func NewElasticConstants(raw *mat.Dense) (*ElasticConstants, error) {
	r, c := raw.Dims()
	if r != 6 || c != 6 {
		return nil, CError{"goCryst: elastic constants need a 6x6 matrix", []string{"NewElasticConstants"}}
	}
	cij := mat.DenseCopyOf(raw)
	Symmetrize(cij)
	return &ElasticConstants{cij: cij}, nil
}

// Symmetrize replaces the square matrix m in place with its symmetric
// part, (m+m^T)/2. Symmetrizing twice gives the same result as
// symmetrizing once.
func Symmetrize(m *mat.Dense) {
	r, _ := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < i; j++ {
			v := (m.At(i, j) + m.At(j, i)) / 2
			m.Set(i, j, v)
			m.Set(j, i, v)
		}
	}
}

// At returns the i,j element of the stiffness matrix, 0-based.
func (E *ElasticConstants) At(i, j int) float64 { return E.cij.At(i, j) }

// Cij returns a copy of the 6x6 stiffness matrix.
func (E *ElasticConstants) Cij() *mat.Dense { return mat.DenseCopyOf(E.cij) }

// IsZero reports whether every element of the stiffness matrix is zero
// within floating point noise, i.e. whether no elastic response at all
// was measured.
func (E *ElasticConstants) IsZero() bool {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			if math.Abs(E.cij.At(i, j)) > appzero {
				return false
			}
		}
	}
	return true
}

// Sij returns the 6x6 compliance matrix, the inverse of the stiffness
// matrix. It is computed on the first call and cached; the returned
// matrix is shared, so callers must not modify it. A singular stiffness
// matrix is an error.
func (E *ElasticConstants) Sij() (*mat.Dense, error) {
	if E.sij != nil {
		return E.sij, nil
	}
	s := mat.NewDense(6, 6, nil)
	if err := s.Inverse(E.cij); err != nil {
		return nil, CError{"goCryst: singular stiffness matrix: " + err.Error(), []string{"mat.Inverse", "Sij"}}
	}
	E.sij = s
	return E.sij, nil
}

// BulkVoigt returns the Voigt-average bulk modulus,
// (C11+C22+C33+2(C12+C13+C23))/9.
func (E *ElasticConstants) BulkVoigt() float64 {
	c := E.cij
	return (c.At(0, 0) + c.At(1, 1) + c.At(2, 2) + 2*(c.At(0, 1)+c.At(0, 2)+c.At(1, 2))) / 9
}

// ShearVoigt returns the Voigt-average shear modulus,
// (C11+C22+C33-C12-C13-C23+3(C44+C55+C66))/15.
func (E *ElasticConstants) ShearVoigt() float64 {
	c := E.cij
	return (c.At(0, 0) + c.At(1, 1) + c.At(2, 2) - c.At(0, 1) - c.At(0, 2) - c.At(1, 2) + 3*(c.At(3, 3)+c.At(4, 4)+c.At(5, 5))) / 15
}
