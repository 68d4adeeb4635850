/*
 * conversion.go, part of gocryst.
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

//This provides useful conversion factors and other constants.
//The working units of the library are Angstrom, eV and GPa; everything
//read from a simulation gets converted to these on the way in.

//Conversions
const (
	Bar2GPa  = 1e-4
	GPa2Bar  = 1 / 1e-4
	Atm2GPa  = 1.01325e-4
	Pa2GPa   = 1e-9
	Kcal2eV  = 0.04336410 //kcal/mol to eV
	EV2Kcal  = 1 / 0.04336410
	J2eV     = 6.241509e18
	A2Bohr   = 1.889725989
	Bohr2A   = 1 / 1.889725989
	Deg2Rad  = 0.0174533
	Rad2Deg  = 1 / 0.0174533
)
