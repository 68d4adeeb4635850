/*
 * potential.go, part of gocryst.
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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cryst "github.com/rmera/gocryst"
)

// Potential describes a LAMMPS-implemented interatomic potential: which
// pair style it uses, how its coefficient lines look, and which element
// models it provides. Records are stored as JSON files next to the
// potential's parameter files.
type Potential struct {
	ID        string             `json:"id"`
	Units     string             `json:"units"`      //LAMMPS unit style the potential was fitted in
	AtomStyle string             `json:"atom_style"` //usually "atomic"
	PairStyle string             `json:"pair_style"` //e.g. "eam/alloy"
	PairCoeff []string           `json:"pair_coeff"` //coefficient line templates; <symbols> expands to the symbol list of the system
	Symbols   []string           `json:"symbols"`    //element models the potential provides
	Masses    map[string]float64 `json:"masses,omitempty"` //overrides for the element mass table
	dir       string             //where the record was loaded from; parameter files live there
}

// LoadPotential reads a potential record from a JSON file. Paths inside
// the record are interpreted relative to the record's directory.
func LoadPotential(path string) (*Potential, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Error{Message: ErrBadPotential, Extra: err.Error(), deco: []string{"os.Open", "LoadPotential"}, critical: true}
	}
	defer f.Close()
	p := new(Potential)
	if err := json.NewDecoder(f).Decode(p); err != nil {
		return nil, Error{Message: ErrBadPotential, Extra: err.Error(), deco: []string{"json.Decode", "LoadPotential"}, critical: true}
	}
	if p.PairStyle == "" || len(p.Symbols) == 0 {
		return nil, Error{Message: ErrBadPotential, Extra: "record needs at least a pair_style and one symbol", deco: []string{"LoadPotential"}, critical: true}
	}
	if p.Units == "" {
		p.Units = "metal"
	}
	if p.AtomStyle == "" {
		p.AtomStyle = "atomic"
	}
	p.dir = filepath.Dir(path)
	return p, nil
}

// Dir returns the directory the record was loaded from, or the empty
// string for records built in memory.
func (P *Potential) Dir() string { return P.dir }

// Provides reports whether the potential has a model for the given
// element symbol.
func (P *Potential) Provides(symbol string) bool {
	for _, s := range P.Symbols {
		if s == symbol {
			return true
		}
	}
	return false
}

// Mass returns the mass to use for an element symbol: the record's
// override if present, the library's mass table otherwise.
func (P *Potential) Mass(symbol string) (float64, error) {
	if m, ok := P.Masses[symbol]; ok {
		return m, nil
	}
	if m, ok := cryst.SymbolMass(symbol); ok {
		return m, nil
	}
	return 0, Error{Message: ErrMissingMass, Extra: symbol, deco: []string{"Mass"}, critical: true}
}

// PairInfo renders the LAMMPS command block that sets up the potential
// for a system whose atom types map to the given element symbols, in
// type order: mass lines, pair_style, and the pair_coeff lines with
// <symbols> expanded.
func (P *Potential) PairInfo(symbols []string) (string, error) {
	var b strings.Builder
	for i, s := range symbols {
		if !P.Provides(s) {
			return "", Error{Message: ErrBadPotential, Extra: fmt.Sprintf("potential %s has no model for %s", P.ID, s), deco: []string{"PairInfo"}, critical: true}
		}
		m, err := P.Mass(s)
		if err != nil {
			return "", errDecorate(err, "PairInfo")
		}
		fmt.Fprintf(&b, "mass %d %.4f\n", i+1, m)
	}
	fmt.Fprintf(&b, "\npair_style %s\n", P.PairStyle)
	vars := map[string]interface{}{"symbols": strings.Join(symbols, " "), "dir": P.dir}
	for _, line := range P.PairCoeff {
		filled, err := FillTemplate(line, vars, "<", ">")
		if err != nil {
			return "", errDecorate(err, "PairInfo")
		}
		fmt.Fprintf(&b, "pair_coeff %s\n", filled)
	}
	return b.String(), nil
}

//errDecorate asserts that err implements cryst.Error, decorates it with
//the caller's name and returns it.
func errDecorate(err error, caller string) error {
	err2 := err.(cryst.Error)
	err2.Decorate(caller)
	return err2
}
