// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"encoding/csv"
	"io"
	"strconv"

	"golang.org/x/benchavg/benchmath"
	"golang.org/x/benchavg/benchunit"
)

// A Writer writes column summaries as comma-separated values, one
// record per column, preceded by a header record.
type Writer struct {
	w      *csv.Writer
	scaler benchunit.Scaler
	first  bool
}

// NewWriter returns a writer that writes summaries to w, formatting
// every number with s.
func NewWriter(w io.Writer, s benchunit.Scaler) *Writer {
	return &Writer{w: csv.NewWriter(w), scaler: s, first: true}
}

var csvHeader = []string{"column", "mean", "lo", "hi", "min", "max", "n"}

// Write writes the summary of the column named label.
func (w *Writer) Write(label string, sum benchmath.Summary) error {
	if w.first {
		w.first = false
		if err := w.w.Write(csvHeader); err != nil {
			return err
		}
	}
	f := w.scaler.Format
	return w.w.Write([]string{
		label,
		f(sum.Center), f(sum.Lo), f(sum.Hi), f(sum.Min), f(sum.Max),
		strconv.Itoa(sum.N),
	})
}

// Flush writes any buffered data to the underlying io.Writer and
// returns any error from this or a previous Write.
func (w *Writer) Flush() error {
	w.w.Flush()
	return w.w.Error()
}
