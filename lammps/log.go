/*
 * log.go, part of gocryst.
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
	"io"
	"os"
	"strconv"
	"strings"
)

//one thermo block: the columns announced by thermo_style and the data
//lines printed before the run finished.
type thermoRun struct {
	columns []string
	rows    [][]float64
}

// Log is the parsed thermodynamic output of a LAMMPS run: the thermo
// blocks of every run command in the script, in order.
type Log struct {
	runs []thermoRun
}

// ReadLogFile parses the log file at path.
func ReadLogFile(path string) (*Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Error{Message: ErrNoOutput, Extra: err.Error(), deco: []string{"os.Open", "ReadLogFile"}, critical: true}
	}
	defer f.Close()
	l, err := ReadLog(f)
	if err != nil {
		return nil, errDecorate(err, "ReadLogFile")
	}
	return l, nil
}

// ReadLog parses LAMMPS log output. A thermo block starts at a line
// whose first field is "Step" and ends at the first line that does not
// parse as a row of numbers (normally the "Loop time" line). Everything
// outside thermo blocks is ignored.
func ReadLog(r io.Reader) (*Log, error) {
	l := new(Log)
	scanner := bufio.NewScanner(r)
	var cur *thermoRun
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if cur == nil {
			if len(fields) > 0 && fields[0] == "Step" {
				l.runs = append(l.runs, thermoRun{columns: fields})
				cur = &l.runs[len(l.runs)-1]
			}
			continue
		}
		row, ok := parseRow(fields, len(cur.columns))
		if !ok {
			cur = nil
			//the line that ended this block may open the next one
			if len(fields) > 0 && fields[0] == "Step" {
				l.runs = append(l.runs, thermoRun{columns: fields})
				cur = &l.runs[len(l.runs)-1]
			}
			continue
		}
		cur.rows = append(cur.rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, Error{Message: ErrBadLog, Extra: err.Error(), deco: []string{"ReadLog"}, critical: true}
	}
	if len(l.runs) == 0 {
		return nil, Error{Message: ErrBadLog, Extra: "no thermo output found", deco: []string{"ReadLog"}, critical: true}
	}
	return l, nil
}

func parseRow(fields []string, want int) ([]float64, bool) {
	if len(fields) != want {
		return nil, false
	}
	row := make([]float64, want)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, false
		}
		row[i] = v
	}
	return row, true
}

// Finds returns every value of the thermo column named key, across all
// runs in the log, in print order. Runs that lack the column contribute
// nothing; a key present nowhere yields nil.
func (L *Log) Finds(key string) []float64 {
	var ret []float64
	for _, run := range L.runs {
		col := -1
		for i, c := range run.columns {
			if c == key {
				col = i
				break
			}
		}
		if col < 0 {
			continue
		}
		for _, row := range run.rows {
			ret = append(ret, row[col])
		}
	}
	return ret
}

// Last returns the final value of the thermo column named key, erroring
// if the column never appeared.
func (L *Log) Last(key string) (float64, error) {
	vals := L.Finds(key)
	if len(vals) == 0 {
		return 0, Error{Message: ErrBadLog, Extra: "no values for thermo key " + key, deco: []string{"Last"}, critical: true}
	}
	return vals[len(vals)-1], nil
}
