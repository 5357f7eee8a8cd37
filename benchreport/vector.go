// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"bytes"
	"io"

	"golang.org/x/benchavg/benchunit"
)

// Options controls how Vector prints numbers.
type Options struct {
	// Prec is the number of digits after the decimal point. -1
	// prints the fewest digits that represent each value exactly.
	Prec int
}

// DefaultOptions prints six digits after the decimal point.
var DefaultOptions = Options{Prec: 6}

// Vector writes vals to w on a single line, in the form
// "[v1 v2 ... vn]\n". Values are always printed in fixed decimal
// notation, never with an exponent, and small magnitudes are never
// rounded away beyond opts.Prec.
func Vector(w io.Writer, vals []float64, opts Options) error {
	s := benchunit.FixedScaler(opts.Prec)
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range vals {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(s.Format(v))
	}
	buf.WriteString("]\n")
	_, err := w.Write(buf.Bytes())
	return err
}

// Vector writes the column means of r. See Vector.
func (r *Report) Vector(w io.Writer, opts Options) error {
	return Vector(w, r.Means, opts)
}
