/*
 * box.go, part of gocryst.
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

import "fmt"

// Box is a periodic simulation box in the LAMMPS lower-triangular
// representation: edge lengths a, b, c plus the tilt factors xy, xz, yz.
// An orthogonal box simply has all tilts at zero. Boxes are immutable;
// every "modification" returns a fresh Box.
type Box struct {
	a, b, c    float64
	xy, xz, yz float64
}

// NewBox returns an orthogonal box with the given edge lengths.
func NewBox(a, b, c float64) (*Box, error) {
	return NewBoxTilted(a, b, c, 0, 0, 0)
}

// NewBoxTilted returns a triclinic box with the given edge lengths and
// tilt factors. The lengths must all be positive.
func NewBoxTilted(a, b, c, xy, xz, yz float64) (*Box, error) {
	if a <= 0 || b <= 0 || c <= 0 {
		return nil, CError{fmt.Sprintf("goCryst: box lengths must be positive, got %g %g %g", a, b, c), []string{"NewBoxTilted"}}
	}
	return &Box{a: a, b: b, c: c, xy: xy, xz: xz, yz: yz}, nil
}

func (B *Box) A() float64  { return B.a }
func (B *Box) B() float64  { return B.b }
func (B *Box) C() float64  { return B.c }
func (B *Box) Xy() float64 { return B.xy }
func (B *Box) Xz() float64 { return B.xz }
func (B *Box) Yz() float64 { return B.yz }

// Vects returns the box vectors as a flat, row-major 9-element slice:
// avect=(a,0,0), bvect=(xy,b,0), cvect=(xz,yz,c). The slice is freshly
// allocated on each call.
func (B *Box) Vects() []float64 {
	return []float64{
		B.a, 0, 0,
		B.xy, B.b, 0,
		B.xz, B.yz, B.c,
	}
}

// WithLengths returns a new box with the given edge lengths and with
// the tilt factors scaled in proportion to the length changes, which
// preserves the box shape.
func (B *Box) WithLengths(a, b, c float64) (*Box, error) {
	nb, err := NewBoxTilted(a, b, c, B.xy*b/B.b, B.xz*c/B.c, B.yz*c/B.c)
	if err != nil {
		return nil, errDecorate(err, "WithLengths")
	}
	return nb, nil
}

// Mean returns the element-wise arithmetic mean of B and other, used
// when a refinement run oscillates between two box sizes.
func (B *Box) Mean(other *Box) *Box {
	return &Box{
		a:  (B.a + other.a) / 2,
		b:  (B.b + other.b) / 2,
		c:  (B.c + other.c) / 2,
		xy: (B.xy + other.xy) / 2,
		xz: (B.xz + other.xz) / 2,
		yz: (B.yz + other.yz) / 2,
	}
}

// Volume returns the box volume. For the lower-triangular representation
// this is just the product of the diagonal.
func (B *Box) Volume() float64 {
	return B.a * B.b * B.c
}

func (B *Box) String() string {
	return fmt.Sprintf("a: %.6f b: %.6f c: %.6f xy: %.6f xz: %.6f yz: %.6f", B.a, B.b, B.c, B.xy, B.xz, B.yz)
}

// Fractional converts the Cartesian vector v to fractional coordinates
// in B by back-substitution over the lower-triangular box vectors.
func (B *Box) Fractional(v [3]float64) [3]float64 {
	var f [3]float64
	f[2] = v[2] / B.c
	f[1] = (v[1] - f[2]*B.yz) / B.b
	f[0] = (v[0] - f[1]*B.xy - f[2]*B.xz) / B.a
	return f
}

// Cartesian converts the fractional vector f to Cartesian coordinates in B.
func (B *Box) Cartesian(f [3]float64) [3]float64 {
	return [3]float64{
		f[0]*B.a + f[1]*B.xy + f[2]*B.xz,
		f[1]*B.b + f[2]*B.yz,
		f[2] * B.c,
	}
}
