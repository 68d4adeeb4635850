/*
 * style.go, part of gocryst.
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

import cryst "github.com/rmera/gocryst"

// Units holds the multiplicative factors that take quantities reported
// by a LAMMPS run in a given unit style to the library's working units
// (Angstrom, eV, GPa).
type Units struct {
	Length   float64
	Energy   float64
	Pressure float64
}

//the supported LAMMPS unit styles. "si" lengths come in meters, "real"
//energies in kcal/mol and pressures in atm, "metal" pressures in bar.
var unitStyles = map[string]Units{
	"metal": {Length: 1.0, Energy: 1.0, Pressure: cryst.Bar2GPa},
	"real":  {Length: 1.0, Energy: cryst.Kcal2eV, Pressure: cryst.Atm2GPa},
	"si":    {Length: 1e10, Energy: cryst.J2eV, Pressure: cryst.Pa2GPa},
	"lj":    {Length: 1.0, Energy: 1.0, Pressure: 1.0},
}

// StyleUnits returns the working-unit conversion factors for the given
// LAMMPS unit style.
func StyleUnits(style string) (Units, error) {
	u, ok := unitStyles[style]
	if !ok {
		return Units{}, Error{Message: ErrUnknownStyle, Extra: style, deco: []string{"StyleUnits"}, critical: true}
	}
	return u, nil
}
