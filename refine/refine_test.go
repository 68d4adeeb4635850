/*
 * refine_test.go, part of gocryst.
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

package refine

import (
	"errors"
	"fmt"
	"math"
	"testing"

	cryst "github.com/rmera/gocryst"
)

func mustSys(Te *testing.T, a, b, c float64) *cryst.System {
	box, err := cryst.NewBox(a, b, c)
	if err != nil {
		Te.Fatal(err)
	}
	sys, err := cryst.NewSystem(box, []*cryst.Atom{
		{Symbol: "Ni", Type: 1, Pos: [3]float64{0, 0, 0}},
		{Symbol: "Ni", Type: 1, Pos: [3]float64{a / 2, b / 2, c / 2}},
	})
	if err != nil {
		Te.Fatal(err)
	}
	return sys
}

//scripted is an evaluator driven by a function, for exercising the loop
//without any simulation engine behind it.
type scripted struct {
	calls int
	f     func(call int, sys *cryst.System) (*Result, error)
}

func (s *scripted) Evaluate(sys *cryst.System) (*Result, error) {
	s.calls++
	return s.f(s.calls, sys)
}

func resultFor(sys *cryst.System, a, b, c, ecoh float64) *Result {
	box, err := cryst.NewBox(a, b, c)
	if err != nil {
		panic(err)
	}
	return &Result{Ecoh: ecoh, Next: sys.WithBox(box)}
}

func TestSinglePointConvergence(Te *testing.T) {
	sys := mustSys(Te, 3.52, 3.52, 3.52)
	ev := &scripted{f: func(call int, s *cryst.System) (*Result, error) {
		b := s.Box()
		return resultFor(s, b.A(), b.B(), b.C(), -4.45), nil
	}}
	res, err := Refine(sys, ev, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if ev.calls != 1 {
		Te.Errorf("expected exactly 1 evaluation, got %d", ev.calls)
	}
	if res.Next.Box().A() != 3.52 {
		Te.Errorf("converged box changed: %v", res.Next.Box())
	}
}

func TestStepwiseConvergedFlag(Te *testing.T) {
	sys := mustSys(Te, 4.05, 4.05, 4.05)
	ev := &scripted{f: func(call int, s *cryst.System) (*Result, error) {
		b := s.Box()
		return resultFor(s, b.A(), b.B(), b.C(), -3.36), nil
	}}
	st := NewState(sys)
	st2, res, err := Step(st, ev, DefaultOptions())
	if err != nil {
		Te.Fatal(err)
	}
	if !st2.Converged() || res == nil {
		Te.Error("single Step on a fixed point should converge")
	}
	if st.Converged() {
		Te.Error("Step mutated its input state")
	}
	if st2.Cycle() != 1 {
		Te.Errorf("expected cycle 1, got %d", st2.Cycle())
	}
}

func TestOscillationAveraging(Te *testing.T) {
	const aA, aB = 3.50, 3.60
	sys := mustSys(Te, aA, aA, aA)
	var avgInput *cryst.Box
	//an A -> B -> A two-cycle. The third call is the extra evaluation at
	//the mean of the proposed cell and the previous one; at detection
	//those two coincide at A, so it must come in at A, not at (A+B)/2.
	ev := &scripted{f: func(call int, s *cryst.System) (*Result, error) {
		switch {
		case call >= 3:
			avgInput = s.Box()
			b := s.Box()
			return resultFor(s, b.A(), b.B(), b.C(), -4.45), nil
		case math.Abs(s.Box().A()-aA) < 1e-12: //at A, propose B
			return resultFor(s, aB, aB, aB, -4.45), nil
		default: //at B, propose A
			return resultFor(s, aA, aA, aA, -4.45), nil
		}
	}}
	res, err := Refine(sys, ev, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if ev.calls != 3 {
		Te.Errorf("expected the two-cycle to be caught in 3 evaluations, got %d", ev.calls)
	}
	if avgInput == nil {
		Te.Fatal("the extra evaluation at the averaged cell never happened")
	}
	if math.Abs(avgInput.A()-aA) > 1e-12 || math.Abs(avgInput.B()-aA) > 1e-12 || math.Abs(avgInput.C()-aA) > 1e-12 {
		Te.Errorf("averaged cell is %v, want %g on all axes", avgInput, aA)
	}
	if math.Abs(res.Next.Box().A()-aA) > 1e-12 {
		Te.Errorf("returned result is not the averaged evaluation: %v", res.Next.Box())
	}
}

func TestDivergenceDetection(Te *testing.T) {
	sys := mustSys(Te, 3.0, 3.0, 3.0)
	ev := &scripted{f: func(call int, s *cryst.System) (*Result, error) {
		return resultFor(s, 3.0*3.5, 3.0, 3.0, -4.45), nil //a beyond initial*scale
	}}
	_, err := Refine(sys, ev, nil)
	var div DivergenceError
	if !errors.As(err, &div) {
		Te.Fatalf("expected DivergenceError, got %v", err)
	}
	if div.Axis != "a" || div.ZeroEnergy {
		Te.Errorf("wrong divergence reason: %+v", div)
	}
	if ev.calls != 1 {
		Te.Errorf("divergence should fire on the first cycle, took %d", ev.calls)
	}
}

func TestNonConvergence(Te *testing.T) {
	sys := mustSys(Te, 3.0, 3.0, 3.0)
	//a geometric decay slower than the tolerance: never repeats, never
	//leaves the divergence bounds within the cycle budget
	ev := &scripted{f: func(call int, s *cryst.System) (*Result, error) {
		b := s.Box()
		return resultFor(s, b.A()*0.999, b.B()*0.999, b.C()*0.999, -4.45), nil
	}}
	opts := DefaultOptions()
	opts.MaxCycles = 20
	_, err := Refine(sys, ev, opts)
	var nc NonConvergenceError
	if !errors.As(err, &nc) {
		Te.Fatalf("expected NonConvergenceError, got %v", err)
	}
	if ev.calls != opts.MaxCycles {
		Te.Errorf("expected exactly %d evaluations before giving up, got %d", opts.MaxCycles, ev.calls)
	}
	if nc.Cycles != opts.MaxCycles {
		Te.Errorf("error reports %d cycles, want %d", nc.Cycles, opts.MaxCycles)
	}
}

func TestZeroEnergyRejection(Te *testing.T) {
	sys := mustSys(Te, 3.0, 3.0, 3.0)
	//geometry well inside the divergence bounds, but with no cohesion
	ev := &scripted{f: func(call int, s *cryst.System) (*Result, error) {
		b := s.Box()
		return resultFor(s, b.A()*1.01, b.B()*1.01, b.C()*1.01, 0.0), nil
	}}
	_, err := Refine(sys, ev, nil)
	var div DivergenceError
	if !errors.As(err, &div) {
		Te.Fatalf("expected DivergenceError, got %v", err)
	}
	if !div.ZeroEnergy {
		Te.Errorf("divergence should blame the zero energy: %+v", div)
	}
}

func TestEvaluatorErrorPropagation(Te *testing.T) {
	sys := mustSys(Te, 3.0, 3.0, 3.0)
	boom := fmt.Errorf("engine fell over")
	ev := &scripted{f: func(call int, s *cryst.System) (*Result, error) {
		return nil, boom
	}}
	_, err := Refine(sys, ev, nil)
	if !errors.Is(err, boom) {
		Te.Errorf("evaluator error was not passed through unchanged: %v", err)
	}
	if ev.calls != 1 {
		Te.Errorf("refinement should abort on the first evaluator error, took %d calls", ev.calls)
	}
}
