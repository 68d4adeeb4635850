/*
 * stress.go, part of gocryst.
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

import "gonum.org/v1/gonum/mat"

// StressState is a symmetric 3x3 Cauchy stress tensor, in the working
// pressure unit (GPa).
type StressState struct {
	m *mat.SymDense
}

// NewStressState builds a stress state from the six virial pressure
// components reported by a simulation. Stress is minus the pressure,
// so every component gets its sign flipped here.
func NewStressState(pxx, pyy, pzz, pxy, pxz, pyz float64) *StressState {
	m := mat.NewSymDense(3, []float64{
		-pxx, -pxy, -pxz,
		-pxy, -pyy, -pyz,
		-pxz, -pyz, -pzz,
	})
	return &StressState{m: m}
}

// At returns the i,j element of the stress tensor, 0-based.
func (S *StressState) At(i, j int) float64 { return S.m.At(i, j) }

// Matrix returns a copy of the stress tensor.
func (S *StressState) Matrix() *mat.SymDense {
	c := mat.NewSymDense(3, nil)
	c.CopySym(S.m)
	return c
}

// Normal returns the three normal components sxx, syy, szz.
func (S *StressState) Normal() (float64, float64, float64) {
	return S.m.At(0, 0), S.m.At(1, 1), S.m.At(2, 2)
}
