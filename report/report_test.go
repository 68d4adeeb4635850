/*
 * report_test.go, part of gocryst.
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

package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	cryst "github.com/rmera/gocryst"
	"github.com/rmera/gocryst/defect"
)

func TestSystemRelaxDocument(Te *testing.T) {
	box, err := cryst.NewBox(3.52, 3.52, 3.52)
	if err != nil {
		Te.Fatal(err)
	}
	relaxed, err := cryst.NewBox(3.5199, 3.5199, 3.5199)
	if err != nil {
		Te.Fatal(err)
	}
	doc := &SystemRelax{
		Potential:   "test-Ni-eam",
		Symbols:     []string{"Ni"},
		StrainRange: 1e-5,
		Multipliers: [3]int{3, 3, 3},
		PhaseState:  NewPhaseState(0, 0, 0),
		InitialCell: NewCell(box),
		RelaxedCell: NewCell(relaxed),
		Cohesive:    &Value{-4.45, "eV"},
		Cycles:      4,
	}
	var buf bytes.Buffer
	if err := doc.Send(&buf); err != nil {
		Te.Fatal(err)
	}
	var out map[string]*SystemRelax
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		Te.Fatal(err)
	}
	got, ok := out["calculation-system-relax"]
	if !ok {
		Te.Fatalf("missing document root key in:\n%s", buf.String())
	}
	if got.RelaxedCell.A.Value != 3.5199 || got.RelaxedCell.A.Unit != "angstrom" {
		Te.Errorf("bad relaxed cell: %+v", got.RelaxedCell.A)
	}
	if got.PhaseState.Temperature.Unit != "K" {
		Te.Errorf("bad phase state: %+v", got.PhaseState)
	}
}

func TestPointDefectDocument(Te *testing.T) {
	ck := &defect.Check{
		Centrosummation:  [3]float64{1e-7, 0, 0},
		PositionShift:    [3]float64{0, 0, 0},
		HasPositionShift: true,
	}
	doc := &PointDefect{
		Potential:  "test-Ni-eam",
		Symbols:    []string{"Ni"},
		DefectKind: defect.Vacancy.String(),
		Mults:      [3]int{5, 5, 5},
		Ftol:       1e-6,
		MaxIter:    100000,
		MaxEval:    100000,
		Cohesive:   &Value{-4.45, "eV"},
		Formation:  &Value{1.61, "eV"},
		Reconf:     NewReconfiguration(ck),
	}
	var buf bytes.Buffer
	if err := doc.Send(&buf); err != nil {
		Te.Fatal(err)
	}
	var out map[string]*PointDefect
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		Te.Fatal(err)
	}
	got, ok := out["calculation-point-defect-formation"]
	if !ok {
		Te.Fatalf("missing document root key in:\n%s", buf.String())
	}
	if got.Reconf.HasReconfigured {
		Te.Error("unreconfigured defect marked as reconfigured")
	}
	if len(got.Reconf.PositionShift) != 3 || len(got.Reconf.DumbbellShift) != 0 {
		Te.Errorf("bad reconfiguration shifts: %+v", got.Reconf)
	}
	if got.Formation.Value != 1.61 {
		Te.Errorf("bad formation energy: %+v", got.Formation)
	}
}

func TestArchiveRoundTrip(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "logs.zst")
	ar, err := NewArchive(name)
	if err != nil {
		Te.Fatal(err)
	}
	logs := map[string]string{}
	for i := 0; i < 3; i++ {
		key := fmt.Sprintf("cycle-%d.log", i)
		logs[key] = fmt.Sprintf("Step Lx\n0 %d.0\n", 10+i)
		if err := ar.Put(key, []byte(logs[key])); err != nil {
			Te.Fatal(err)
		}
	}
	if err := ar.Put("bad name", nil); err == nil {
		Te.Error("section name with a space accepted")
	}
	if err := ar.Close(); err != nil {
		Te.Fatal(err)
	}
	if err := ar.Put("late.log", nil); err == nil {
		Te.Error("write to a closed archive accepted")
	}
	entries, err := ReadArchive(name)
	if err != nil {
		Te.Fatal(err)
	}
	if len(entries) != 3 {
		Te.Fatalf("read back %d entries, want 3", len(entries))
	}
	for i, e := range entries {
		want := fmt.Sprintf("cycle-%d.log", i)
		if e.Name != want {
			Te.Errorf("entry %d is %q, want %q", i, e.Name, want)
		}
		if string(e.Data) != logs[want] {
			Te.Errorf("entry %q corrupted: %q", e.Name, e.Data)
		}
	}
}

func TestTracePlot(Te *testing.T) {
	var tr Trace
	if err := tr.Plot(filepath.Join(Te.TempDir(), "empty.png")); err == nil {
		Te.Error("empty trace plotted")
	}
	for _, a := range []float64{3.50, 3.53, 3.519, 3.5199} {
		box, err := cryst.NewBox(a, a, a)
		if err != nil {
			Te.Fatal(err)
		}
		tr.Add(box)
	}
	if tr.Len() != 4 {
		Te.Fatalf("trace length %d, want 4", tr.Len())
	}
	name := filepath.Join(Te.TempDir(), "trace.png")
	if err := tr.Plot(name); err != nil {
		Te.Fatal(err)
	}
	fi, err := os.Stat(name)
	if err != nil {
		Te.Fatal(err)
	}
	if fi.Size() == 0 {
		Te.Error("empty plot file")
	}
}
