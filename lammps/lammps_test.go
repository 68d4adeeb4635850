/*
 * lammps_test.go, part of gocryst.
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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFillTemplate(Te *testing.T) {
	out, err := FillTemplate("run <steps>\nprint <msg> <msg>", map[string]interface{}{"steps": 100, "msg": "ok"}, "<", ">")
	if err != nil {
		Te.Fatal(err)
	}
	if out != "run 100\nprint ok ok" {
		Te.Errorf("wrong fill: %q", out)
	}
	if _, err := FillTemplate("run <steps>", map[string]interface{}{}, "<", ">"); err == nil {
		Te.Error("missing key accepted")
	}
	if _, err := FillTemplate("run <steps", map[string]interface{}{"steps": 1}, "<", ">"); err == nil {
		Te.Error("unterminated delimiter accepted")
	}
}

const sampleLog = `LAMMPS (2 Aug 2023)
units metal
read_data test.dat
Step Lx Pxx
0 10.5600000000000 -5000.0
Loop time of 0.001 on 1 procs

Step Lx Pxx
0 10.5601056000000 -4999.0
Loop time of 0.001 on 1 procs
Total wall time: 0:00:01
`

func TestReadLog(Te *testing.T) {
	lg, err := ReadLog(strings.NewReader(sampleLog))
	if err != nil {
		Te.Fatal(err)
	}
	lx := lg.Finds("Lx")
	if len(lx) != 2 {
		Te.Fatalf("expected 2 Lx values, got %d", len(lx))
	}
	if lx[0] != 10.56 {
		Te.Errorf("bad first Lx: %g", lx[0])
	}
	last, err := lg.Last("Pxx")
	if err != nil {
		Te.Fatal(err)
	}
	if last != -4999.0 {
		Te.Errorf("bad last Pxx: %g", last)
	}
	if vals := lg.Finds("Nope"); vals != nil {
		Te.Errorf("nonexistent key returned values: %v", vals)
	}
	if _, err := ReadLog(strings.NewReader("no thermo here\n")); err == nil {
		Te.Error("log without thermo output accepted")
	}
}

func testPotential() *Potential {
	return &Potential{
		ID:        "test-Ni-eam",
		Units:     "metal",
		AtomStyle: "atomic",
		PairStyle: "eam/alloy",
		PairCoeff: []string{"* * Ni.eam.alloy <symbols>"},
		Symbols:   []string{"Ni"},
	}
}

func TestPairInfo(Te *testing.T) {
	pot := testPotential()
	info, err := pot.PairInfo([]string{"Ni"})
	if err != nil {
		Te.Fatal(err)
	}
	for _, want := range []string{"mass 1 58.6930", "pair_style eam/alloy", "pair_coeff * * Ni.eam.alloy Ni"} {
		if !strings.Contains(info, want) {
			Te.Errorf("pair info lacks %q:\n%s", want, info)
		}
	}
	if _, err := pot.PairInfo([]string{"Zr"}); err == nil {
		Te.Error("symbol outside the potential accepted")
	}
}

func TestCijScript(Te *testing.T) {
	s, err := CijScript("read_data x.dat", "pair_style eam", 1e-5)
	if err != nil {
		Te.Fatal(err)
	}
	if n := strings.Count(s, "run 0"); n != 13 {
		Te.Errorf("cij script has %d thermo frames, want 13", n)
	}
	if strings.Contains(s, "<") {
		Te.Errorf("unfilled template key left in script:\n%s", s)
	}
}

func TestMinScript(Te *testing.T) {
	s, err := MinScript("read_data x.dat", "pair_style eam", 0, 1e-6, 100000, 100000)
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(s, "minimize 0 1e-06 100000 100000") {
		Te.Errorf("bad minimize line in:\n%s", s)
	}
}

const sampleDump = `ITEM: TIMESTEP
0
ITEM: NUMBER OF ATOMS
2
ITEM: BOX BOUNDS pp pp pp
0.0 3.52
0.0 3.52
0.0 3.52
ITEM: ATOMS id type x y z
1 1 0.0 0.0 0.0
2 1 1.76 1.76 1.76
`

//a triclinic box of sides 10 with xy=4 and yz=-2. LAMMPS prints the x
//and y bounds extended by the tilts, so the x row reads 0 to 14.
const triclinicDump = `ITEM: TIMESTEP
0
ITEM: NUMBER OF ATOMS
1
ITEM: BOX BOUNDS xy xz yz pp pp pp
0.0 14.0 4.0
-2.0 10.0 0.0
0.0 10.0 -2.0
ITEM: ATOMS id type x y z
1 1 1.0 1.0 1.0
`

func TestReadDumpTriclinic(Te *testing.T) {
	dumpfile := filepath.Join(Te.TempDir(), "tri.dump")
	if err := os.WriteFile(dumpfile, []byte(triclinicDump), 0644); err != nil {
		Te.Fatal(err)
	}
	sys, err := ReadDump(dumpfile, []string{"Ni"})
	if err != nil {
		Te.Fatal(err)
	}
	b := sys.Box()
	if b.A() != 10 || b.B() != 10 || b.C() != 10 {
		Te.Errorf("tilt extension not removed from the bounds: %v", b)
	}
	if b.Xy() != 4 || b.Xz() != 0 || b.Yz() != -2 {
		Te.Errorf("bad tilts from dump: %v", b)
	}
}

func TestDataRoundTrip(Te *testing.T) {
	dir := Te.TempDir()
	dumpfile := filepath.Join(dir, "test.dump")
	if err := os.WriteFile(dumpfile, []byte(sampleDump), 0644); err != nil {
		Te.Fatal(err)
	}
	sys, err := ReadDump(dumpfile, []string{"Ni"})
	if err != nil {
		Te.Fatal(err)
	}
	if sys.Len() != 2 || sys.Atom(1).Symbol != "Ni" {
		Te.Fatalf("bad dump read: %d atoms", sys.Len())
	}
	if sys.Box().A() != 3.52 {
		Te.Errorf("bad box from dump: %v", sys.Box())
	}
	datafile := filepath.Join(dir, "test.dat")
	if err := WriteData(datafile, sys, testPotential()); err != nil {
		Te.Fatal(err)
	}
	data, err := os.ReadFile(datafile)
	if err != nil {
		Te.Fatal(err)
	}
	for _, want := range []string{"2 atoms", "1 atom types", "Masses", "Atoms"} {
		if !strings.Contains(string(data), want) {
			Te.Errorf("data file lacks %q", want)
		}
	}
}
