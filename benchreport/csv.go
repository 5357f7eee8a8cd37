// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"io"

	"golang.org/x/benchavg/benchfmt"
	"golang.org/x/benchavg/benchunit"
)

// CSV writes r as comma-separated values, one record per column, with
// every duration in milliseconds formatted by s.
func (r *Report) CSV(w io.Writer, s benchunit.Scaler) error {
	cw := benchfmt.NewWriter(w, s)
	for i, sum := range r.Summaries {
		sum.Center = r.Means[i]
		if err := cw.Write(r.Labels[i], sum); err != nil {
			return err
		}
	}
	return cw.Flush()
}
