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

package lammps

import "fmt"

//The different error messages of the package.
const (
	ErrNotRunning   = "LAMMPS could not be run"
	ErrNoOutput     = "Output file not found or unreadable"
	ErrBadLog       = "Malformed thermo output"
	ErrZeroResponse = "Divergence of elastic constants to <= 0"
	ErrBadDimension = "Divergence of box dimensions to <= 0"
	ErrMissingMass  = "No mass known for element"
	ErrBadTemplate  = "Ill-formed input template"
	ErrUnknownStyle = "Unknown unit style"
	ErrBadPotential = "Ill-formed potential record"
)

// Error is the concrete error type of the lammps package.
type Error struct {
	Message  string //one of the Err... constants of this package
	Job      string //the job name, if any
	Extra    string //the underlying error or offending text, if any
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.Extra != "" {
		return fmt.Sprintf("goCryst/lammps: %s. Job: %s. %s", err.Message, err.Job, err.Extra)
	}
	return fmt.Sprintf("goCryst/lammps: %s. Job: %s", err.Message, err.Job)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or can be ignored.
func (err Error) Critical() bool { return err.critical }
