// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"math"
	"strings"
	"testing"

	"golang.org/x/benchavg/benchmath"
	"golang.org/x/benchavg/benchunit"
)

func TestWriter(t *testing.T) {
	var out strings.Builder
	w := NewWriter(&out, benchunit.FixedScaler(3))
	sums := []benchmath.Summary{
		{Center: 6, Lo: 5.5, Hi: 6.5, Min: 5, Max: 7, N: 2},
		{Center: 3000, Lo: math.Inf(-1), Hi: math.Inf(1), Min: 3000, Max: 3000, N: 1},
	}
	for i, label := range []string{"deal", "verify, all"} {
		if err := w.Write(label, sums[i]); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	want := `column,mean,lo,hi,min,max,n
deal,6.000,5.500,6.500,5.000,7.000,2
"verify, all",3000.000,-Inf,+Inf,3000.000,3000.000,1
`
	if got := out.String(); got != want {
		t.Errorf("want:\n%s\ngot:\n%s", want, got)
	}
}
