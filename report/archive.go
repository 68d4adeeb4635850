/*
 * archive.go, part of gocryst.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//each archive entry is framed as ">> name size\n" followed by size raw
//bytes and a newline.
const entryMark = ">>"

// Archive writes named text sections, typically one engine log per
// refinement cycle, into a single zstd-compressed file.
type Archive struct {
	f         *os.File
	h         io.WriteCloser
	filename  string
	writeable bool
}

// NewArchive creates the archive file named name.
func NewArchive(name string) (*Archive, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, Error{Message: err.Error(), Artifact: name, deco: []string{"NewArchive"}}
	}
	h, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		f.Close()
		return nil, Error{Message: err.Error(), Artifact: name, deco: []string{"NewArchive"}}
	}
	return &Archive{f: f, h: h, filename: name, writeable: true}, nil
}

// Put appends one named section to the archive.
func (A *Archive) Put(name string, content []byte) error {
	if !A.writeable {
		return Error{Message: "archive already closed", Artifact: A.filename, deco: []string{"Put"}}
	}
	if strings.ContainsAny(name, " \n") {
		return Error{Message: "section name cannot contain spaces: " + name, Artifact: A.filename, deco: []string{"Put"}}
	}
	if _, err := fmt.Fprintf(A.h, "%s %s %d\n", entryMark, name, len(content)); err != nil {
		return Error{Message: err.Error(), Artifact: A.filename, deco: []string{"Put"}}
	}
	if _, err := A.h.Write(content); err != nil {
		return Error{Message: err.Error(), Artifact: A.filename, deco: []string{"Put"}}
	}
	if _, err := A.h.Write([]byte{'\n'}); err != nil {
		return Error{Message: err.Error(), Artifact: A.filename, deco: []string{"Put"}}
	}
	return nil
}

// Close flushes the compressor and closes the file. The archive cannot
// be used afterwards.
func (A *Archive) Close() error {
	if A == nil || !A.writeable {
		return nil
	}
	A.writeable = false
	if err := A.h.Close(); err != nil {
		A.f.Close()
		return Error{Message: err.Error(), Artifact: A.filename, deco: []string{"Close"}}
	}
	return A.f.Close()
}

// Entry is one named section recovered from an archive.
type Entry struct {
	Name string
	Data []byte
}

// ReadArchive reads back every section of the archive file named name,
// in the order they were written.
func ReadArchive(name string) ([]Entry, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{Message: err.Error(), Artifact: name, deco: []string{"ReadArchive"}}
	}
	defer f.Close()
	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, Error{Message: err.Error(), Artifact: name, deco: []string{"ReadArchive"}}
	}
	defer dec.Close()
	r := bufio.NewReader(dec)
	var entries []Entry
	for {
		header, err := r.ReadString('\n')
		if err == io.EOF && header == "" {
			return entries, nil
		}
		if err != nil {
			return nil, Error{Message: err.Error(), Artifact: name, deco: []string{"ReadArchive"}}
		}
		fields := strings.Fields(header)
		if len(fields) != 3 || fields[0] != entryMark {
			return nil, Error{Message: "malformed entry header: " + strings.TrimSpace(header), Artifact: name, deco: []string{"ReadArchive"}}
		}
		size, err := strconv.Atoi(fields[2])
		if err != nil || size < 0 {
			return nil, Error{Message: "bad entry size: " + fields[2], Artifact: name, deco: []string{"ReadArchive"}}
		}
		data := make([]byte, size+1) //content plus the closing newline
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, Error{Message: "truncated entry " + fields[1] + ": " + err.Error(), Artifact: name, deco: []string{"ReadArchive"}}
		}
		entries = append(entries, Entry{Name: fields[1], Data: data[:size]})
	}
}
