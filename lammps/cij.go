/*
 * cij.go, part of gocryst.
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

package lammps

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/gonum/mat"

	cryst "github.com/rmera/gocryst"
	"github.com/rmera/gocryst/refine"
)

//the thermo frame layout of the cij script: frame 0 is undeformed, then
//a -delta,+delta pair per deformation direction.
const cijFrames = 13

// CijEvaluator measures elastic constants with one LAMMPS run per
// evaluation and proposes refined lattice parameters from the measured
// compliance. It implements refine.Evaluator.
type CijEvaluator struct {
	handle *Handle
	pot    *Potential
	delta  float64    //strain perturbation magnitude
	target [3]float64 //target stress offsets sxx, syy, szz, GPa
	mult   [3]int     //supercell multipliers for the simulation
}

// NewCijEvaluator returns an evaluator running through h with the given
// potential, strain range delta, and target stress offsets. The
// simulations run on a 3x3x3 replication of the evaluated system.
func NewCijEvaluator(h *Handle, pot *Potential, delta float64, target [3]float64) *CijEvaluator {
	return &CijEvaluator{
		handle: h,
		pot:    pot,
		delta:  delta,
		target: target,
		mult:   [3]int{3, 3, 3},
	}
}

//SetMult changes the supercell multipliers used for the simulations.
func (E *CijEvaluator) SetMult(na, nb, nc int) {
	E.mult = [3]int{na, nb, nc}
}

// Evaluate runs the six-direction strain probe on sys and builds the
// refinement result: symmetrized stiffness matrix, baseline stress
// state, cohesive energy, and the next trial system computed from the
// compliance matrix and the effective stress.
func (E *CijEvaluator) Evaluate(sys *cryst.System) (*refine.Result, error) {
	sup, err := sys.Supercell(E.mult[0], E.mult[1], E.mult[2])
	if err != nil {
		return nil, errDecorate(err, "Evaluate")
	}
	datafile := E.handle.name + ".dat"
	if err := WriteData(filepath.Join(E.handle.dir, datafile), sup, E.pot); err != nil {
		return nil, errDecorate(err, "Evaluate")
	}
	pairInfo, err := E.pot.PairInfo(sup.Symbols())
	if err != nil {
		return nil, errDecorate(err, "Evaluate")
	}
	script, err := CijScript(SystemInfo(E.pot.Units, E.pot.AtomStyle, datafile), pairInfo, E.delta)
	if err != nil {
		return nil, errDecorate(err, "Evaluate")
	}
	lg, err := E.handle.Run(script)
	if err != nil {
		return nil, errDecorate(err, "Evaluate")
	}
	units, err := StyleUnits(E.pot.Units)
	if err != nil {
		return nil, errDecorate(err, "Evaluate")
	}
	return E.analyze(sys, lg, units)
}

//analyze turns the thermo frames of one cij run into a refinement
//result for the evaluated system sys.
func (E *CijEvaluator) analyze(sys *cryst.System, lg *Log, units Units) (*refine.Result, error) {
	cols := make(map[string][]float64, 13)
	for _, key := range []string{"Lx", "Ly", "Lz", "Xy", "Xz", "Yz", "Pxx", "Pyy", "Pzz", "Pxy", "Pxz", "Pyz", "v_peatom"} {
		vals := lg.Finds(key)
		if len(vals) != cijFrames {
			return nil, Error{Message: ErrBadLog, Job: E.handle.name, Extra: fmt.Sprintf("%d thermo frames for %s, expected %d", len(vals), key, cijFrames), deco: []string{"analyze"}, critical: true}
		}
		cols[key] = vals
	}
	lx, ly, lz := cols["Lx"], cols["Ly"], cols["Lz"]
	xy, xz, yz := cols["Xy"], cols["Xz"], cols["Yz"]
	press := [6][]float64{}
	for i, key := range []string{"Pxx", "Pyy", "Pzz", "Pyz", "Pxz", "Pxy"} {
		p := cols[key]
		scaled := make([]float64, len(p))
		for j, v := range p {
			scaled[j] = v * units.Pressure
		}
		press[i] = scaled
	}

	//strain of each -/+ pair against the undeformed frame, Voigt order
	strains := [6]float64{
		(lx[2] - lx[1]) / lx[0],
		(ly[4] - ly[3]) / ly[0],
		(lz[6] - lz[5]) / lz[0],
		(yz[8] - yz[7]) / lz[0],
		(xz[10] - xz[9]) / lz[0],
		(xy[12] - xy[11]) / ly[0],
	}

	//raw stiffness: row i is the pressure change across the -/+ pair of
	//direction i over the strain of that direction
	raw := mat.NewDense(6, 6, nil)
	for i := 0; i < 6; i++ {
		if strains[i] == 0 {
			return nil, Error{Message: ErrBadLog, Job: E.handle.name, Extra: fmt.Sprintf("zero strain in direction %d", i), deco: []string{"analyze"}, critical: true}
		}
		for j := 0; j < 6; j++ {
			raw.Set(i, j, (press[j][2*i+1]-press[j][2*i+2])/strains[i])
		}
	}
	C, err := cryst.NewElasticConstants(raw)
	if err != nil {
		return nil, errDecorate(err, "analyze")
	}
	if C.IsZero() {
		return nil, Error{Message: ErrZeroResponse, Job: E.handle.name, deco: []string{"analyze"}, critical: true}
	}
	S, err := C.Sij()
	if err != nil {
		return nil, errDecorate(err, "analyze")
	}

	stress := cryst.NewStressState(press[0][0], press[1][0], press[2][0], press[5][0], press[4][0], press[3][0])
	sxx, syy, szz := stress.Normal()
	sxx += E.target[0]
	syy += E.target[1]
	szz += E.target[2]

	b := sys.Box()
	newA := b.A() / (S.At(0, 0)*sxx + S.At(0, 1)*syy + S.At(0, 2)*szz + 1)
	newB := b.B() / (S.At(1, 0)*sxx + S.At(1, 1)*syy + S.At(1, 2)*szz + 1)
	newC := b.C() / (S.At(2, 0)*sxx + S.At(2, 1)*syy + S.At(2, 2)*szz + 1)
	if newA <= 0 || newB <= 0 || newC <= 0 {
		return nil, Error{Message: ErrBadDimension, Job: E.handle.name, Extra: fmt.Sprintf("%g %g %g", newA, newB, newC), deco: []string{"analyze"}, critical: true}
	}
	newBox, err := b.WithLengths(newA, newB, newC)
	if err != nil {
		return nil, errDecorate(err, "analyze")
	}

	ecoh := cols["v_peatom"][0] * units.Energy
	return &refine.Result{
		C:      C,
		Stress: stress,
		Ecoh:   ecoh,
		Next:   sys.WithBox(newBox),
	}, nil
}
