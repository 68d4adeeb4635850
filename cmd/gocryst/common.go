/*
 * common.go, part of gocryst.
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

package main

import (
	"fmt"

	"github.com/spf13/viper"

	cryst "github.com/rmera/gocryst"
	"github.com/rmera/gocryst/defect"
	"github.com/rmera/gocryst/lammps"
)

func newHandle(name string) *lammps.Handle {
	h := lammps.NewHandle()
	if c := viper.GetString("lammps_command"); c != "" {
		h.SetCommand(c)
	}
	h.SetMPI(viper.GetString("mpi_command"))
	h.SetDir(viper.GetString("dir"))
	h.SetName(name)
	return h
}

func loadPotential() (*lammps.Potential, error) {
	path := viper.GetString("potential")
	if path == "" {
		return nil, fmt.Errorf("no potential record given (key \"potential\")")
	}
	return lammps.LoadPotential(path)
}

//the fractional atom bases of the cubic prototypes the input file can
//ask for directly, instead of giving a dump file.
var prototypes = map[string][][3]float64{
	"sc":  {{0, 0, 0}},
	"bcc": {{0, 0, 0}, {0.5, 0.5, 0.5}},
	"fcc": {{0, 0, 0}, {0.5, 0.5, 0}, {0.5, 0, 0.5}, {0, 0.5, 0.5}},
}

func loadSystem() (*cryst.System, error) {
	if dump := viper.GetString("system.dump"); dump != "" {
		symbols := viper.GetStringSlice("system.symbols")
		if len(symbols) == 0 {
			return nil, fmt.Errorf("a dump system needs its type symbols (key \"system.symbols\")")
		}
		return lammps.ReadDump(dump, symbols)
	}
	proto := viper.GetString("system.prototype")
	basis, ok := prototypes[proto]
	if !ok {
		return nil, fmt.Errorf("unknown system prototype %q (want sc, bcc or fcc)", proto)
	}
	a := viper.GetFloat64("system.a")
	if a <= 0 {
		return nil, fmt.Errorf("a prototype system needs a positive lattice parameter (key \"system.a\")")
	}
	symbol := viper.GetString("system.symbol")
	if symbol == "" {
		return nil, fmt.Errorf("a prototype system needs its element (key \"system.symbol\")")
	}
	box, err := cryst.NewBox(a, a, a)
	if err != nil {
		return nil, err
	}
	atoms := make([]*cryst.Atom, 0, len(basis))
	for _, f := range basis {
		atoms = append(atoms, &cryst.Atom{Symbol: symbol, Type: 1, Pos: box.Cartesian(f)})
	}
	return cryst.NewSystem(box, atoms)
}

func sizeMults() ([3]int, error) {
	m := viper.GetIntSlice("size_mults")
	if len(m) != 3 || m[0] < 1 || m[1] < 1 || m[2] < 1 {
		return [3]int{}, fmt.Errorf("size_mults must be three positive integers, got %v", m)
	}
	return [3]int{m[0], m[1], m[2]}, nil
}

func defectParams() (*defect.PointParams, error) {
	var kind defect.Kind
	switch k := viper.GetString("defect.kind"); k {
	case "v", "vacancy":
		kind = defect.Vacancy
	case "i", "interstitial":
		kind = defect.Interstitial
	case "s", "substitutional":
		kind = defect.Substitutional
	case "db", "dumbbell":
		kind = defect.Dumbbell
	default:
		return nil, fmt.Errorf("unknown defect kind %q", k)
	}
	vec := func(key string) ([3]float64, error) {
		var v [3]float64
		s := viper.GetStringSlice(key)
		if len(s) == 0 {
			return v, nil
		}
		if len(s) != 3 {
			return v, fmt.Errorf("%s must have three components, got %v", key, s)
		}
		for i := range s {
			if _, err := fmt.Sscan(s[i], &v[i]); err != nil {
				return v, fmt.Errorf("bad %s component %q", key, s[i])
			}
		}
		return v, nil
	}
	pos, err := vec("defect.pos")
	if err != nil {
		return nil, err
	}
	dvect, err := vec("defect.db_vect")
	if err != nil {
		return nil, err
	}
	return &defect.PointParams{
		Kind:   kind,
		Symbol: viper.GetString("defect.symbol"),
		AType:  viper.GetInt("defect.atype"),
		Pos:    pos,
		DVect:  dvect,
		Scale:  viper.GetBool("defect.scale"),
	}, nil
}
