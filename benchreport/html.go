// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"io"
	"strconv"

	"github.com/google/safehtml/template"

	"golang.org/x/benchavg/benchunit"
)

var htmlTemplate = template.Must(template.New("").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Benchmark Averages</title>
<style>
.benchavg { border-collapse: collapse; }
.benchavg th:nth-child(1) { text-align: left; }
.benchavg td:nth-child(1n+2) { text-align: right; padding: 0em 1em; }
.benchavg th { border-bottom: 1px solid #666; }
</style>
</head>
<body>
<table class='benchavg'>
<tr><th>column<th>mean (ms)<th>±<th>min<th>max<th>n
{{range . -}}
<tr><td>{{.Label}}<td>{{.Mean}}<td>{{.Range}}<td>{{.Min}}<td>{{.Max}}<td>{{.N}}
{{end -}}
</table>
</body>
</html>
`))

type htmlRow struct {
	Label, Mean, Range, Min, Max, N string
}

// HTML writes r as an HTML document holding a single table. Means are
// printed in milliseconds with s; bounds use a readable unit.
func (r *Report) HTML(w io.Writer, s benchunit.Scaler) error {
	rows := make([]htmlRow, len(r.Summaries))
	for i, sum := range r.Summaries {
		rows[i] = htmlRow{
			Label: r.Labels[i],
			Mean:  s.Format(r.Means[i]),
			Range: sum.PctRangeString(),
			Min:   benchunit.FormatMillis(sum.Min),
			Max:   benchunit.FormatMillis(sum.Max),
			N:     strconv.Itoa(sum.N),
		}
	}
	return htmlTemplate.Execute(w, rows)
}
