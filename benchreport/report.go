// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchreport formats the column averages of a benchmark
// table.
//
// The primary output is a single line holding the vector of column
// means in fixed decimal notation (see Vector). A Report can also be
// rendered as an aligned text table, CSV, HTML, or a bar chart.
package benchreport

import (
	"fmt"

	"golang.org/x/benchavg/benchmath"
)

// A Report holds the per-column results of a benchmark table.
type Report struct {
	// Labels names each column.
	Labels []string

	// Means holds the arithmetic mean of each column, in
	// milliseconds, summed in row order.
	Means []float64

	// Summaries holds the mean, confidence interval, and bounds
	// of each column.
	Summaries []benchmath.Summary
}

// New computes the Report for t. confidence is the confidence level
// of the intervals in Summaries, e.g., 0.95.
//
// New fails with benchmath.ErrEmpty if t has no rows and a
// *benchmath.ShapeError if t's rows have different lengths.
func New(t *benchmath.Table, confidence float64) (*Report, error) {
	means, err := t.Averages()
	if err != nil {
		return nil, err
	}
	sums, err := t.Summaries(confidence)
	if err != nil {
		return nil, err
	}
	labels := make([]string, len(means))
	for i := range labels {
		labels[i] = t.Label(i)
	}
	return &Report{labels, means, sums}, nil
}

// Warnings returns the warnings attached to the column summaries,
// each prefixed with its column label.
func (r *Report) Warnings() []string {
	var out []string
	for i, sum := range r.Summaries {
		for _, w := range sum.Warnings {
			out = append(out, fmt.Sprintf("%s: %s", r.Labels[i], w))
		}
	}
	return out
}
