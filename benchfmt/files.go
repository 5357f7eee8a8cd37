// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"os"
)

// A Files reads benchmark rows from a sequence of input files.
//
// Rows from all files are returned in order, as if the files were
// concatenated. Each file is closed as soon as it has been read to
// the end or fails.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// AllowStdin indicates that the path "-" should be treated as
	// stdin and if the file list is empty, it should be treated
	// as consisting of stdin.
	//
	// This is generally the desired behavior when the file list
	// comes from command-line flags.
	AllowStdin bool

	// Comma and Header configure the Reader used for every file.
	// See Reader.
	Comma  rune
	Header bool

	// inputs is the sequence of remaining inputs, or nil if this
	// Files has not started yet. Note that this distinguishes nil
	// from length 0.
	inputs []string

	reader  Reader
	file    *os.File
	isStdin bool
	labels  []string
	err     error
}

// init does first-use initialization of f.
func (f *Files) init() {
	f.inputs = []string{}
	if f.AllowStdin && len(f.Paths) == 0 {
		f.inputs = append(f.inputs, "-")
	}
	f.inputs = append(f.inputs, f.Paths...)
	f.reader.Comma = f.Comma
	f.reader.Header = f.Header
}

// Scan advances the reader to the next row in the sequence of files
// and reports whether a row was read. The caller should use the Row
// method to get the row. If Scan reaches the end of the file
// sequence, or if an error occurs, it returns false. In this case,
// the caller should use the Err method to check for errors.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}

	if f.inputs == nil {
		f.init()
	}

	for {
		if f.file == nil {
			// Open the next file.
			if len(f.inputs) == 0 {
				// We're out of inputs.
				return false
			}
			path := f.inputs[0]
			f.inputs = f.inputs[1:]

			if f.AllowStdin && path == "-" {
				f.isStdin, f.file = true, os.Stdin
			} else {
				file, err := os.Open(path)
				if err != nil {
					f.err = err
					return false
				}
				f.isStdin, f.file = false, file
			}
			f.reader.Reset(f.file, path)
		}

		// Try to get the next row.
		ok := f.reader.Scan()
		if f.labels == nil && f.reader.Labels() != nil {
			// The first file's header names the columns.
			f.labels = f.reader.Labels()
		}
		if ok {
			return true
		}
		err := f.reader.Err()
		// EOF or error, either way this file is done.
		f.closeFile()
		if err != nil {
			f.err = err
			return false
		}
	}
}

func (f *Files) closeFile() {
	if f.file != nil && !f.isStdin {
		f.file.Close()
	}
	f.file = nil
}

// Row returns the row that was just read by Scan.
func (f *Files) Row() *Row {
	return f.reader.Row()
}

// Labels returns the column labels from the header of the first
// file, if Header is set.
func (f *Files) Labels() []string {
	return f.labels
}

// Err returns the error that stopped Scan, if any.
// If Scan stopped because it read each file to completion,
// or if Scan has not yet returned false, Err returns nil.
func (f *Files) Err() error {
	return f.err
}

// Close closes the file currently being read, if any, and stops the
// sequence. It is only needed when abandoning a Files before Scan
// returns false.
func (f *Files) Close() error {
	var err error
	if f.file != nil && !f.isStdin {
		err = f.file.Close()
	}
	f.file = nil
	f.inputs = []string{}
	return err
}

// ReadAll reads every remaining row and returns their values in
// order.
func (f *Files) ReadAll() ([][]float64, error) {
	defer f.Close()
	var rows [][]float64
	for f.Scan() {
		rows = append(rows, f.Row().Values)
	}
	return rows, f.Err()
}

// Load reads the benchmark results file at path and returns its rows
// as a table of milliseconds. It returns an *fs.PathError if the file
// cannot be opened and a *SyntaxError if a token is not a valid
// duration.
func Load(path string) ([][]float64, error) {
	f := &Files{Paths: []string{path}}
	return f.ReadAll()
}
