/*
 * doc.go, part of gocryst.
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

/*Package cryst is the main package of the goCryst library. It provides the
crystal-system structures used by the calculation packages and some
facilities for working with them.


	**goCryst Capabilities**

    Represents periodic simulation boxes (orthogonal and triclinic) and
	atomic systems within them, with fractional/Cartesian conversion,
	supercell replication and minimum-image displacements.

    Builds symmetrized 6x6 elastic-constant matrices (Voigt notation)
	from raw finite-difference estimates, with lazy computation of the
	compliance matrix.

    Represents Cauchy stress states derived from virial pressures.

    Refines the lattice parameters of a crystal against a target stress
	state through repeated elastic-constant evaluations (package refine).

    Generates input for, runs, and recovers results from static LAMMPS
	calculations (package lammps). LAMMPS must be obtained independently
	from its distributors.

    Inserts point defects into systems and interprets dislocation
	monopole parameters (package defect).

    Serializes calculation results as structured JSON documents, plots
	convergence traces and archives run logs (package report).


goCryst uses the Gonum library for all its linear algebra.*/
package cryst
