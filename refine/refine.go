/*
 * refine.go, part of gocryst.
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

package refine

import (
	"gonum.org/v1/gonum/floats"

	cryst "github.com/rmera/gocryst"
)

// Evaluator performs one elastic-constants measurement on a trial
// system. Package lammps provides the LAMMPS-backed implementation;
// tests use scripted ones.
type Evaluator interface {

	//Evaluate measures the elastic constants, stress state and cohesive
	//energy of sys, and proposes the next trial system. It must not
	//modify sys.
	Evaluate(sys *cryst.System) (*Result, error)
}

// Result is what one evaluation yields. Results are never modified
// after creation.
type Result struct {
	C      *cryst.ElasticConstants //symmetrized stiffness matrix
	Stress *cryst.StressState      //stress state of the undeformed configuration
	Ecoh   float64                 //cohesive (per-atom potential) energy, eV
	Next   *cryst.System           //proposed next trial system
}

// Options are the knobs of a refinement run. The zero value is not
// usable; start from DefaultOptions.
type Options struct {
	Tol          float64 //relative tolerance for box-size convergence
	DivergeScale float64 //a dimension outside [initial/scale, initial*scale] means divergence
	MaxCycles    int     //hard cap on evaluation cycles
}

// DefaultOptions returns the refinement parameters used by the static
// structure-refinement calculation: tolerance 1e-10, divergence scale 3,
// at most 100 cycles.
func DefaultOptions() *Options {
	return &Options{
		Tol:          1e-10,
		DivergeScale: 3.0,
		MaxCycles:    100,
	}
}

// State is the loop state of a refinement run. Stepping never mutates a
// State; it returns a fresh one, so a caller can keep or discard any
// intermediate state it likes.
type State struct {
	initial   *cryst.Box    //box of the starting system, for the divergence bounds
	current   *cryst.System //system evaluated on the next Step
	previous  *cryst.System //system evaluated on the previous Step, nil on the first
	cycle     int
	converged bool
}

// NewState returns the starting state for refining sys.
func NewState(sys *cryst.System) *State {
	return &State{initial: sys.Box(), current: sys}
}

func (st *State) Cycle() int             { return st.cycle }
func (st *State) Converged() bool        { return st.converged }
func (st *State) Current() *cryst.System { return st.current }

//vectsMatch compares two boxes component-wise with the run's relative
//tolerance. Exact zeros (the off-diagonal components of orthogonal
//boxes) compare equal through the absolute part of the test.
func vectsMatch(a, b *cryst.Box, tol float64) bool {
	return floats.EqualApprox(a.Vects(), b.Vects(), tol)
}

// Step runs one refinement cycle: evaluate the current system, test for
// convergence, then for divergence. It returns the successor state and
// the evaluation result. Once the returned state reports Converged, the
// accompanying Result is final and the loop must not be stepped again.
// Errors from the evaluator are returned unchanged; DivergenceError
// means the run left the neighborhood of the initial guess. All errors
// are terminal.
func Step(st *State, ev Evaluator, opts *Options) (*State, *Result, error) {
	res, err := ev.Evaluate(st.current)
	if err != nil {
		return st, nil, err
	}
	next := res.Next

	//The box has settled on a single size.
	if vectsMatch(next.Box(), st.current.Box(), opts.Tol) {
		done := *st
		done.converged = true
		done.current = next
		done.cycle++
		return &done, res, nil
	}

	//The box oscillates between two sizes: evaluate once at their mean
	//and take that as the answer.
	if st.previous != nil && vectsMatch(next.Box(), st.previous.Box(), opts.Tol) {
		avg := st.current.WithBox(next.Box().Mean(st.previous.Box()))
		res2, err := ev.Evaluate(avg)
		if err != nil {
			return st, nil, err
		}
		done := *st
		done.converged = true
		done.current = avg
		done.cycle++
		return &done, res2, nil
	}

	//Divergence tests, one axis at a time in a, b, c order, then the
	//energy. The first violation is the one reported.
	scale := opts.DivergeScale
	axes := [3]struct {
		name     string
		initial  float64
		proposed float64
	}{
		{"a", st.initial.A(), next.Box().A()},
		{"b", st.initial.B(), next.Box().B()},
		{"c", st.initial.C(), next.Box().C()},
	}
	for _, ax := range axes {
		min, max := ax.initial/scale, ax.initial*scale
		if ax.proposed < min || ax.proposed > max {
			return st, nil, DivergenceError{Axis: ax.name, Value: ax.proposed, Min: min, Max: max, deco: []string{"Step"}}
		}
	}
	if res.Ecoh == 0.0 {
		return st, nil, DivergenceError{ZeroEnergy: true, deco: []string{"Step"}}
	}

	return &State{
		initial:  st.initial,
		current:  next,
		previous: st.current,
		cycle:    st.cycle + 1,
	}, res, nil
}

// Refine drives Step until convergence or until opts.MaxCycles cycles
// have been spent, starting from sys. On success it returns the final
// evaluation result, whose Next system holds the refined lattice
// parameters. On failure it returns a DivergenceError, a
// NonConvergenceError, or whatever the evaluator raised; in all three
// cases the refinement is over.
func Refine(sys *cryst.System, ev Evaluator, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	st := NewState(sys)
	var res *Result
	var err error
	for i := 0; i < opts.MaxCycles; i++ {
		st, res, err = Step(st, ev, opts)
		if err != nil {
			return nil, err
		}
		if st.Converged() {
			return res, nil
		}
	}
	return nil, NonConvergenceError{Cycles: opts.MaxCycles, deco: []string{"Refine"}}
}
