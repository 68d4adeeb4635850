/*
 * errors.go, part of gocryst.
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

import "fmt"

// DivergenceError means a trial geometry or its energy left the
// physically plausible neighborhood of the initial guess. It is fatal:
// the refiner makes no attempt to recover, the caller decides whether
// to restart with different parameters.
type DivergenceError struct {
	Axis       string  //"a", "b" or "c"; empty if the energy check fired
	Value      float64 //the offending length, in the working length unit
	Min, Max   float64 //the acceptable range for the axis
	ZeroEnergy bool    //true if the cohesive energy came back exactly zero
	deco       []string
}

func (err DivergenceError) Error() string {
	if err.ZeroEnergy {
		return "goCryst/refine: divergence: cohesive energy is 0"
	}
	return fmt.Sprintf("goCryst/refine: divergence of box dimensions: %s=%g outside [%g, %g]", err.Axis, err.Value, err.Min, err.Max)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err DivergenceError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// NonConvergenceError means the iteration budget ran out before either
// convergence test was satisfied. Also fatal.
type NonConvergenceError struct {
	Cycles int //how many evaluation cycles were run
	deco   []string
}

func (err NonConvergenceError) Error() string {
	return fmt.Sprintf("goCryst/refine: failed to converge after %d cycles", err.Cycles)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err NonConvergenceError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
