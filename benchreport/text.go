// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"io"
	"strconv"

	"golang.org/x/benchavg/benchunit"
	"golang.org/x/benchavg/internal/texttab"
)

// Text writes r as an aligned text table with one line per column:
// its label, mean ± confidence interval, minimum, maximum and sample
// count. Durations are scaled to a readable unit, e.g. "13.60ms".
func (r *Report) Text(w io.Writer) error {
	var tab texttab.Table
	margin := texttab.LeftMargin("  ")
	tab.Row().Cell("column").
		Cell("mean", margin, texttab.Right).Cell("").
		Cell("min", margin, texttab.Right).
		Cell("max", margin, texttab.Right).
		Cell("n", margin, texttab.Right)
	for i, sum := range r.Summaries {
		tab.Row().Cell(r.Labels[i]).
			Cell(benchunit.FormatMillis(r.Means[i]), margin, texttab.Right).
			Cell("± "+sum.PctRangeString()).
			Cell(benchunit.FormatMillis(sum.Min), margin, texttab.Right).
			Cell(benchunit.FormatMillis(sum.Max), margin, texttab.Right).
			Cell(strconv.Itoa(sum.N), margin, texttab.Right)
	}
	return tab.Format(w)
}
