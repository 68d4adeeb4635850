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
 *
 * */

//Package lammps implements communication with the LAMMPS molecular
//dynamics program: input-script generation, running, and recovery of
//thermodynamic output. It also provides the LAMMPS-backed evaluator
//used by package refine. LAMMPS itself must be obtained independently
//from its distributors; please cite the LAMMPS references if you use
//this package.
package lammps
