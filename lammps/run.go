/*
 * run.go, part of gocryst.
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
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
)

// Handle runs LAMMPS jobs. One handle can run any number of jobs in
// sequence; each job writes name.in, name.log and name.out in the
// handle's working directory, overwriting the previous job's files.
type Handle struct {
	command string
	mpi     string
	name    string
	dir     string
	record  io.Writer //if set, every job's raw log is copied here
}

// NewHandle returns a Handle with the default settings: the lmp_serial
// executable (or $LAMMPS_COMMAND if set), no MPI, job name "gocryst",
// current directory.
func NewHandle() *Handle {
	h := new(Handle)
	h.SetDefaults()
	return h
}

func (H *Handle) SetDefaults() {
	H.command = os.ExpandEnv("$LAMMPS_COMMAND")
	if H.command == "" {
		H.command = "lmp_serial"
	}
	H.name = "gocryst"
	H.dir = "."
}

func (H *Handle) Command() string { return H.command }

func (H *Handle) SetCommand(name string) { H.command = name }

//SetMPI sets an MPI launcher prefix, e.g. "mpirun -np 8". An empty
//string (the default) runs LAMMPS directly.
func (H *Handle) SetMPI(mpi string) { H.mpi = mpi }

//SetName sets the job name, used for the input, log and output files.
func (H *Handle) SetName(name string) { H.name = name }

//SetDir sets the working directory for the jobs.
func (H *Handle) SetDir(dir string) { H.dir = dir }

//SetRecord makes the handle copy the raw log text of every job it runs
//to w, for archiving. A nil w turns recording off.
func (H *Handle) SetRecord(w io.Writer) { H.record = w }

// Run writes script to the job's input file, runs LAMMPS on it and
// waits for it to finish, then parses and returns the thermo log.
func (H *Handle) Run(script string) (*Log, error) {
	infile := filepath.Join(H.dir, H.name+".in")
	if err := os.WriteFile(infile, []byte(script), 0644); err != nil {
		return nil, Error{Message: ErrNotRunning, Job: H.name, Extra: err.Error(), deco: []string{"os.WriteFile", "Run"}, critical: true}
	}
	com := fmt.Sprintf("%s %s -in %s.in -log %s.log > %s.out 2>&1", H.mpi, H.command, H.name, H.name, H.name)
	log.Printf(com)
	command := exec.Command("sh", "-c", com)
	command.Dir = H.dir
	if err := command.Run(); err != nil {
		return nil, Error{Message: ErrNotRunning, Job: H.name, Extra: err.Error(), deco: []string{"exec.Run", "Run"}, critical: true}
	}
	data, err := os.ReadFile(filepath.Join(H.dir, H.name+".log"))
	if err != nil {
		return nil, Error{Message: ErrNoOutput, Job: H.name, Extra: err.Error(), deco: []string{"os.ReadFile", "Run"}, critical: true}
	}
	if H.record != nil {
		H.record.Write(data) //best effort, archiving never fails a run
	}
	l, err := ReadLog(bytes.NewReader(data))
	if err != nil {
		return nil, errDecorate(err, "Run")
	}
	return l, nil
}
