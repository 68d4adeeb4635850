/*
 * document.go, part of gocryst.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package report

import (
	"encoding/json"
	"io"
	"os"

	cryst "github.com/rmera/gocryst"
	"github.com/rmera/gocryst/defect"
)

// Value is a number tagged with its physical unit, the form every
// dimensional quantity takes in the results documents.
type Value struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Cell is the serializable form of a simulation box, in Angstroms.
type Cell struct {
	A  Value `json:"a"`
	B  Value `json:"b"`
	C  Value `json:"c"`
	Xy Value `json:"xy"`
	Xz Value `json:"xz"`
	Yz Value `json:"yz"`
}

// NewCell converts a Box to its document form.
func NewCell(b *cryst.Box) *Cell {
	ang := func(v float64) Value { return Value{v, "angstrom"} }
	return &Cell{A: ang(b.A()), B: ang(b.B()), C: ang(b.C()),
		Xy: ang(b.Xy()), Xz: ang(b.Xz()), Yz: ang(b.Yz())}
}

// Stiffness is the serializable form of an elastic-constants matrix,
// in GPa.
type Stiffness struct {
	Cij  [][]float64 `json:"cij"`
	Unit string      `json:"unit"`
}

// NewStiffness converts an ElasticConstants to its document form.
func NewStiffness(c *cryst.ElasticConstants) *Stiffness {
	cij := make([][]float64, 6)
	for i := 0; i < 6; i++ {
		cij[i] = make([]float64, 6)
		for j := 0; j < 6; j++ {
			cij[i][j] = c.At(i, j)
		}
	}
	return &Stiffness{Cij: cij, Unit: "GPa"}
}

// PhaseState gives the thermodynamic conditions of a calculation. The
// static calculations always run at 0 K.
type PhaseState struct {
	Temperature Value `json:"temperature"`
	PressureXX  Value `json:"pressure-xx"`
	PressureYY  Value `json:"pressure-yy"`
	PressureZZ  Value `json:"pressure-zz"`
}

// NewPhaseState builds the phase state of a static run with the given
// target pressures, in GPa.
func NewPhaseState(pxx, pyy, pzz float64) *PhaseState {
	gpa := func(v float64) Value { return Value{v, "GPa"} }
	return &PhaseState{Temperature: Value{0, "K"},
		PressureXX: gpa(pxx), PressureYY: gpa(pyy), PressureZZ: gpa(pzz)}
}

// SystemRelax is the results document of a structure refinement, one
// JSON object under the key "calculation-system-relax".
type SystemRelax struct {
	Potential   string      `json:"potential"`
	Symbols     []string    `json:"symbols"`
	StrainRange float64     `json:"strain-range"`
	Multipliers [3]int      `json:"size-multipliers"`
	PhaseState  *PhaseState `json:"phase-state"`
	InitialCell *Cell       `json:"as-constructed-atomic-system"`
	RelaxedCell *Cell       `json:"relaxed-atomic-system"`
	Cohesive    *Value      `json:"cohesive-energy,omitempty"`
	Elastic     *Stiffness  `json:"elastic-constants,omitempty"`
	Cycles      int         `json:"cycles,omitempty"`
	Status      string      `json:"status,omitempty"`
}

// PointDefect is the results document of a point-defect formation
// calculation, one JSON object under the key
// "calculation-point-defect-formation".
type PointDefect struct {
	Potential  string           `json:"potential"`
	Symbols    []string         `json:"symbols"`
	DefectKind string           `json:"defect-kind"`
	Mults      [3]int           `json:"size-multipliers"`
	Etol       float64          `json:"energy_tolerance"`
	Ftol       float64          `json:"force_tolerance"`
	MaxIter    int              `json:"maximum_iterations"`
	MaxEval    int              `json:"maximum_evaluations"`
	Cohesive   *Value           `json:"cohesive-energy,omitempty"`
	Formation  *Value           `json:"defect-formation-energy,omitempty"`
	Reconf     *Reconfiguration `json:"reconfiguration-check,omitempty"`
	Status     string           `json:"status,omitempty"`
}

// Reconfiguration is the serializable form of a defect.Check.
type Reconfiguration struct {
	HasReconfigured bool      `json:"has_reconfigured"`
	Centrosummation []float64 `json:"centrosummation"`
	PositionShift   []float64 `json:"position_shift,omitempty"`
	DumbbellShift   []float64 `json:"db_vect_shift,omitempty"`
}

// NewReconfiguration converts a defect.Check to its document form.
func NewReconfiguration(ck *defect.Check) *Reconfiguration {
	r := &Reconfiguration{
		HasReconfigured: ck.HasReconfigured,
		Centrosummation: ck.Centrosummation[:],
	}
	if ck.HasPositionShift {
		r.PositionShift = ck.PositionShift[:]
	}
	if ck.HasDumbbellShift {
		r.DumbbellShift = ck.DumbbellShift[:]
	}
	return r
}

//one top-level key per document kind, as the downstream record parsers
//expect.
func encode(w io.Writer, key string, doc interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(map[string]interface{}{key: doc}); err != nil {
		return Error{Message: err.Error(), deco: []string{"encode"}}
	}
	return nil
}

// Send writes the document as indented JSON to out.
func (D *SystemRelax) Send(out io.Writer) error {
	return encode(out, "calculation-system-relax", D)
}

// Send writes the document as indented JSON to out.
func (D *PointDefect) Send(out io.Writer) error {
	return encode(out, "calculation-point-defect-formation", D)
}

// WriteFile writes the document to the file named name.
func (D *SystemRelax) WriteFile(name string) error {
	return writeFile(name, D.Send)
}

// WriteFile writes the document to the file named name.
func (D *PointDefect) WriteFile(name string) error {
	return writeFile(name, D.Send)
}

func writeFile(name string, send func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return Error{Message: err.Error(), Artifact: name, deco: []string{"WriteFile"}}
	}
	defer f.Close()
	return send(f)
}
