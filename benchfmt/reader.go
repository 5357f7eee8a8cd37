// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/benchavg/benchunit"
)

// A Reader reads rows of duration tokens from comma-separated input.
//
// Its API is modeled on bufio.Scanner. To construct a new Reader,
// either call NewReader, or set the options on a zeroed Reader and
// call Reset.
type Reader struct {
	// Comma is the field delimiter. If zero, it is ','.
	Comma rune

	// Header indicates that the first record of the input holds
	// column labels rather than durations.
	Header bool

	cr       *csv.Reader
	fileName string
	err      error

	row       Row
	labels    []string
	sawHeader bool
}

// A SyntaxError represents a syntax error on a particular line of a
// benchmark results file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string

	// Err is the underlying error, if any.
	Err error
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

var errNoReset = errors.New("Reader.Reset has not been called")

// NewReader constructs a reader to parse benchmark rows from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input. It
// keeps the Comma and Header options but forgets any labels read
// from the previous input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.cr = csv.NewReader(ior)
	if r.Comma != 0 {
		r.cr.Comma = r.Comma
	}
	r.cr.Comment = '#'
	// Row shape is checked over the whole table, where the error
	// can say which row disagrees with which.
	r.cr.FieldsPerRecord = -1
	r.cr.TrimLeadingSpace = true
	r.cr.ReuseRecord = true

	r.fileName = fileName
	r.err = nil
	r.row = Row{}
	r.labels = nil
	r.sawHeader = false
}

// Scan advances the reader to the next row and reports whether a row
// was read. The caller should use the Row method to get the row.
// If Scan reaches EOF or an error occurs, it returns false, in which
// case the caller should use the Err method to check for errors.
//
// A token that is not a valid duration stops the scan with a
// *SyntaxError naming the token and its position.
func (r *Reader) Scan() bool {
	if r.err != nil || r.cr == nil {
		return false
	}
	for {
		rec, err := r.cr.Read()
		if err == io.EOF {
			return false
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				err = &SyntaxError{r.fileName, perr.Line, perr.Err.Error(), err}
			}
			r.err = err
			return false
		}
		line, _ := r.cr.FieldPos(0)

		if r.Header && !r.sawHeader {
			r.sawHeader = true
			r.labels = make([]string, len(rec))
			for i, label := range rec {
				r.labels[i] = strings.TrimSpace(label)
			}
			continue
		}

		vals, err := benchunit.Convert(rec)
		if err != nil {
			r.err = &SyntaxError{r.fileName, line, err.Error(), err}
			return false
		}
		r.row = Row{r.fileName, line, vals}
		return true
	}
}

// Row returns the row that was just read by Scan.
//
// If Scan has not been called, Row returns nil.
func (r *Reader) Row() *Row {
	if r.row.Values == nil {
		return nil
	}
	return &r.row
}

// Labels returns the column labels read from the header record, or
// nil if Header is not set or the header has not been read yet.
func (r *Reader) Labels() []string {
	return r.labels
}

// Err returns the first error encountered by the Reader.
// Reaching the end of the input is not an error.
func (r *Reader) Err() error {
	if r.cr == nil {
		return errNoReset
	}
	return r.err
}
