/*
 * data.go, part of gocryst.
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

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	cryst "github.com/rmera/gocryst"
)

// SystemInfo returns the LAMMPS command block that sets up the
// simulation style and reads the system from a data file.
func SystemInfo(units, atomStyle, datafile string) string {
	return fmt.Sprintf("units %s\natom_style %s\nboundary p p p\nread_data %s", units, atomStyle, datafile)
}

// WriteData writes sys as a LAMMPS data file for atom_style atomic.
// Masses come from the potential so that overrides in the record are
// honored.
func WriteData(path string, sys *cryst.System, pot *Potential) error {
	f, err := os.Create(path)
	if err != nil {
		return Error{Message: ErrNotRunning, Extra: err.Error(), deco: []string{"os.Create", "WriteData"}, critical: true}
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	b := sys.Box()
	fmt.Fprintf(w, "#goCryst-generated data file\n\n")
	fmt.Fprintf(w, "%d atoms\n", sys.Len())
	fmt.Fprintf(w, "%d atom types\n\n", sys.NTypes())
	fmt.Fprintf(w, "0.0 %.13e xlo xhi\n", b.A())
	fmt.Fprintf(w, "0.0 %.13e ylo yhi\n", b.B())
	fmt.Fprintf(w, "0.0 %.13e zlo zhi\n", b.C())
	if b.Xy() != 0 || b.Xz() != 0 || b.Yz() != 0 {
		fmt.Fprintf(w, "%.13e %.13e %.13e xy xz yz\n", b.Xy(), b.Xz(), b.Yz())
	}
	fmt.Fprintf(w, "\nMasses\n\n")
	for i, s := range sys.Symbols() {
		m, err := pot.Mass(s)
		if err != nil {
			return errDecorate(err, "WriteData")
		}
		fmt.Fprintf(w, "%d %.4f\n", i+1, m)
	}
	fmt.Fprintf(w, "\nAtoms\n\n")
	for i := 0; i < sys.Len(); i++ {
		a := sys.Atom(i)
		fmt.Fprintf(w, "%d %d %.13e %.13e %.13e\n", i+1, a.Type, a.Pos[0], a.Pos[1], a.Pos[2])
	}
	return w.Flush()
}

// ReadDump reads the last snapshot of a LAMMPS dump file with
// "id type x y z" columns into a System. symbols maps atom types
// (1-based) to element symbols.
func ReadDump(path string, symbols []string) (*cryst.System, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Error{Message: ErrNoOutput, Extra: err.Error(), deco: []string{"os.Open", "ReadDump"}, critical: true}
	}
	defer f.Close()
	var box *cryst.Box
	var atoms []*cryst.Atom
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "ITEM: BOX BOUNDS"):
			bounds := make([][]float64, 3)
			for i := 0; i < 3; i++ {
				if !scanner.Scan() {
					return nil, Error{Message: ErrBadLog, Extra: "truncated box bounds in " + path, deco: []string{"ReadDump"}, critical: true}
				}
				fields := strings.Fields(scanner.Text())
				row := make([]float64, len(fields))
				for j, fl := range fields {
					if row[j], err = strconv.ParseFloat(fl, 64); err != nil {
						return nil, Error{Message: ErrBadLog, Extra: "bad box bounds in " + path, deco: []string{"ReadDump"}, critical: true}
					}
				}
				bounds[i] = row
			}
			//tilted dumps carry xy xz yz as a third column, and extend
			//the printed x and y bounds by the tilt factors:
			//xlo_bound = xlo + min(0,xy,xz,xy+xz), and so on
			var xy, xz, yz float64
			if len(bounds[0]) > 2 {
				xy, xz, yz = bounds[0][2], bounds[1][2], bounds[2][2]
			}
			lx := bounds[0][1] - bounds[0][0]
			ly := bounds[1][1] - bounds[1][0]
			lz := bounds[2][1] - bounds[2][0]
			lx -= math.Max(math.Max(0, xy), math.Max(xz, xy+xz)) - math.Min(math.Min(0, xy), math.Min(xz, xy+xz))
			ly -= math.Max(0, yz) - math.Min(0, yz)
			box, err = cryst.NewBoxTilted(lx, ly, lz, xy, xz, yz)
			if err != nil {
				return nil, errDecorate(err, "ReadDump")
			}
		case strings.HasPrefix(line, "ITEM: ATOMS"):
			if box == nil {
				return nil, Error{Message: ErrBadLog, Extra: "atoms before box bounds in " + path, deco: []string{"ReadDump"}, critical: true}
			}
			atoms = atoms[:0] //only the last snapshot is kept
			for scanner.Scan() {
				fields := strings.Fields(scanner.Text())
				if len(fields) < 5 || strings.HasPrefix(fields[0], "ITEM:") {
					break
				}
				typ, err := strconv.Atoi(fields[1])
				if err != nil {
					return nil, Error{Message: ErrBadLog, Extra: "bad atom line in " + path, deco: []string{"ReadDump"}, critical: true}
				}
				var pos [3]float64
				for j := 0; j < 3; j++ {
					if pos[j], err = strconv.ParseFloat(fields[2+j], 64); err != nil {
						return nil, Error{Message: ErrBadLog, Extra: "bad atom line in " + path, deco: []string{"ReadDump"}, critical: true}
					}
				}
				symbol := ""
				if typ >= 1 && typ <= len(symbols) {
					symbol = symbols[typ-1]
				}
				atoms = append(atoms, &cryst.Atom{Symbol: symbol, Type: typ, Pos: pos})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, Error{Message: ErrBadLog, Extra: err.Error(), deco: []string{"ReadDump"}, critical: true}
	}
	if box == nil || len(atoms) == 0 {
		return nil, Error{Message: ErrBadLog, Extra: "no snapshot found in " + path, deco: []string{"ReadDump"}, critical: true}
	}
	sys, err := cryst.NewSystem(box, atoms)
	if err != nil {
		return nil, errDecorate(err, "ReadDump")
	}
	return sys, nil
}
