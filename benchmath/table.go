// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/aclements/go-moremath/stats"
)

// ErrEmpty is returned when a table has no rows or no columns. The
// mean of zero trials is undefined.
var ErrEmpty = errors.New("no benchmark rows")

// A ShapeError reports a row whose length differs from the first
// row's.
type ShapeError struct {
	Row       int // Index of the offending row, starting at 0
	Want, Got int // Number of columns in the first row and in Row
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("inconsistent row length: row %d has %d columns, want %d", e.Row+1, e.Got, e.Want)
}

// A Table is a set of trials. Each row is one trial and each column
// is one measurement, in milliseconds.
type Table struct {
	Rows [][]float64

	// Labels optionally names the columns. If non-empty, it must
	// have one label per column.
	Labels []string
}

// Width returns the number of columns in t, taken from its first row.
func (t *Table) Width() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// Validate checks that t is non-empty and rectangular. It returns
// ErrEmpty or a *ShapeError.
func (t *Table) Validate() error {
	width := t.Width()
	if width == 0 {
		return ErrEmpty
	}
	for i, row := range t.Rows {
		if len(row) != width {
			return &ShapeError{i, width, len(row)}
		}
	}
	if len(t.Labels) != 0 && len(t.Labels) != width {
		return fmt.Errorf("header has %d labels, want %d", len(t.Labels), width)
	}
	return nil
}

// Label returns the name of column i. Unlabeled columns are named
// "#1", "#2", and so on.
func (t *Table) Label(i int) string {
	if i < len(t.Labels) && t.Labels[i] != "" {
		return t.Labels[i]
	}
	return "#" + strconv.Itoa(i+1)
}

// Column returns the values of column i in row order.
func (t *Table) Column(i int) []float64 {
	col := make([]float64, len(t.Rows))
	for j, row := range t.Rows {
		col[j] = row[i]
	}
	return col
}

// Averages returns the arithmetic mean of each column of t.
func (t *Table) Averages() ([]float64, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	avgs := make([]float64, t.Width())
	for i := range avgs {
		avgs[i] = stats.Mean(t.Column(i))
	}
	return avgs, nil
}

// Samples returns one Sample per column of t.
func (t *Table) Samples() ([]*Sample, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	samples := make([]*Sample, t.Width())
	for i := range samples {
		samples[i] = NewSample(t.Column(i))
	}
	return samples, nil
}

// Summaries returns a Summary of every column of t at the given
// confidence level.
func (t *Table) Summaries(confidence float64) ([]Summary, error) {
	samples, err := t.Samples()
	if err != nil {
		return nil, err
	}
	sums := make([]Summary, len(samples))
	for i, s := range samples {
		sums[i] = s.Summary(confidence)
	}
	return sums, nil
}

// Averages returns the arithmetic mean of each column of rows. All
// rows must have the same, non-zero length. It returns ErrEmpty if
// rows is empty and a *ShapeError if the rows are ragged.
func Averages(rows [][]float64) ([]float64, error) {
	t := Table{Rows: rows}
	return t.Averages()
}
