// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchfmt reads and writes benchmark results as
// comma-separated values.
//
// Each input line is one trial, and each field is a duration token
// such as "5ms", "350µs" or "2.1s" (see benchunit.ParseDuration).
// Lines beginning with "#" are comments.
package benchfmt

import "fmt"

// A Row is one trial read from a benchmark results file.
type Row struct {
	// FileName and Line give the position of the row in its
	// input. They are purely diagnostic.
	FileName string
	Line     int

	// Values holds the row's durations in milliseconds, in
	// field order. Values is freshly allocated for every row.
	Values []float64
}

// Pos returns the file name and line number of r.
func (r *Row) Pos() (fileName string, line int) {
	return r.FileName, r.Line
}

func (r *Row) String() string {
	return fmt.Sprintf("%s:%d: %v", r.FileName, r.Line, r.Values)
}
