/*
 * plot.go, part of gocryst.
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

package report

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	cryst "github.com/rmera/gocryst"
)

// Trace accumulates the lattice parameters visited by a refinement,
// one point per cycle.
type Trace struct {
	a, b, c []float64
}

// Add appends the lengths of box to the trace.
func (T *Trace) Add(box *cryst.Box) {
	T.a = append(T.a, box.A())
	T.b = append(T.b, box.B())
	T.c = append(T.c, box.C())
}

// Len returns the number of recorded cycles.
func (T *Trace) Len() int { return len(T.a) }

// Plot draws the three lattice parameters against the cycle number and
// saves the figure as a PNG file named name.
func (T *Trace) Plot(name string) error {
	if T.Len() == 0 {
		return Error{Message: "nothing to plot, empty trace", Artifact: name, deco: []string{"Plot"}}
	}
	p := plot.New()
	p.Title.Text = "Lattice parameter refinement"
	p.X.Label.Text = "cycle"
	p.Y.Label.Text = "lattice parameter / angstrom"

	colors := []color.RGBA{
		{R: 200, B: 50, A: 255},
		{G: 150, B: 50, A: 255},
		{B: 210, A: 255},
	}
	for i, series := range [][]float64{T.a, T.b, T.c} {
		xys := make(plotter.XYs, len(series))
		for j, v := range series {
			xys[j].X = float64(j)
			xys[j].Y = v
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return Error{Message: err.Error(), Artifact: name, deco: []string{"Plot"}}
		}
		line.Color = colors[i]
		points.Color = colors[i]
		p.Add(line, points)
		p.Legend.Add([]string{"a", "b", "c"}[i], line, points)
	}
	if err := p.Save(14*vg.Centimeter, 10*vg.Centimeter, name); err != nil {
		return Error{Message: err.Error(), Artifact: name, deco: []string{"Plot"}}
	}
	return nil
}
