/*
 * cryst_test.go, part of gocryst.
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
	"math"
	"testing"
)

func TestBoxValidation(Te *testing.T) {
	if _, err := NewBox(0, 1, 1); err == nil {
		Te.Error("zero box length accepted")
	}
	if _, err := NewBox(1, -2, 1); err == nil {
		Te.Error("negative box length accepted")
	}
	b, err := NewBoxTilted(4, 5, 6, 0.1, 0.2, 0.3)
	if err != nil {
		Te.Fatal(err)
	}
	v := b.Vects()
	want := []float64{4, 0, 0, 0.1, 5, 0, 0.2, 0.3, 6}
	for i := range want {
		if v[i] != want[i] {
			Te.Errorf("vects[%d] = %g, want %g", i, v[i], want[i])
		}
	}
}

func TestFractionalRoundTrip(Te *testing.T) {
	b, err := NewBoxTilted(4, 5, 6, 0.5, 0.25, 0.75)
	if err != nil {
		Te.Fatal(err)
	}
	p := [3]float64{1.3, 2.7, 5.9}
	back := b.Cartesian(b.Fractional(p))
	for i := 0; i < 3; i++ {
		if math.Abs(back[i]-p[i]) > appzero {
			Te.Errorf("round trip moved component %d: %g -> %g", i, p[i], back[i])
		}
	}
}

func TestWithBoxPreservesFractional(Te *testing.T) {
	b1, _ := NewBox(3, 3, 3)
	b2, _ := NewBox(6, 9, 12)
	sys, err := NewSystem(b1, []*Atom{
		{Symbol: "Cu", Type: 1, Pos: [3]float64{1.5, 0.75, 2.25}},
	})
	if err != nil {
		Te.Fatal(err)
	}
	scaled := sys.WithBox(b2)
	got := scaled.Atom(0).Pos
	want := [3]float64{3, 2.25, 9}
	for i := 0; i < 3; i++ {
		if math.Abs(got[i]-want[i]) > appzero {
			Te.Errorf("component %d is %g, want %g", i, got[i], want[i])
		}
	}
	if sys.Atom(0).Pos != [3]float64{1.5, 0.75, 2.25} {
		Te.Error("WithBox modified the original system")
	}
}

func TestSupercell(Te *testing.T) {
	b, _ := NewBox(2, 2, 2)
	sys, err := NewSystem(b, []*Atom{
		{Symbol: "Fe", Type: 1, Pos: [3]float64{0, 0, 0}},
		{Symbol: "Fe", Type: 1, Pos: [3]float64{1, 1, 1}},
	})
	if err != nil {
		Te.Fatal(err)
	}
	sup, err := sys.Supercell(3, 3, 3)
	if err != nil {
		Te.Fatal(err)
	}
	if sup.Len() != 2*27 {
		Te.Errorf("supercell has %d atoms, want %d", sup.Len(), 2*27)
	}
	if sup.Box().A() != 6 || sup.Box().B() != 6 || sup.Box().C() != 6 {
		Te.Errorf("supercell box wrong: %v", sup.Box())
	}
	if _, err := sys.Supercell(0, 1, 1); err == nil {
		Te.Error("non-positive multiplier accepted")
	}
}

func TestDVectMinimumImage(Te *testing.T) {
	b, _ := NewBox(10, 10, 10)
	sys, err := NewSystem(b, nil)
	if err != nil {
		Te.Fatal(err)
	}
	//9.5 and 0.5 are 1.0 apart through the boundary, not 9.0
	d := sys.DVect([3]float64{9.5, 0, 0}, [3]float64{0.5, 0, 0})
	if math.Abs(d[0]-1.0) > appzero || math.Abs(d[1]) > appzero || math.Abs(d[2]) > appzero {
		Te.Errorf("minimum image displacement is %v, want (1,0,0)", d)
	}
}

func TestElementTables(Te *testing.T) {
	if Elements[0] != "H" || Elements[25] != "Fe" {
		Te.Errorf("element order broken: %s %s", Elements[0], Elements[25])
	}
	m, ok := SymbolMass("Ni")
	if !ok || math.Abs(m-58.693) > 0.01 {
		Te.Errorf("bad Ni mass: %g %v", m, ok)
	}
	if _, ok := SymbolMass("Xx"); ok {
		Te.Error("unknown symbol reported as known")
	}
}
