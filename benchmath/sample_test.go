// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"math"
	"testing"
)

func TestSummaryFormat(t *testing.T) {
	check := func(center, lo, hi float64, want string) {
		t.Helper()
		s := Summary{Center: center, Lo: lo, Hi: hi}
		got := s.PctRangeString()
		if got != want {
			t.Errorf("for %v CI [%v, %v], got %s, want %s", center, lo, hi, got, want)
		}
	}
	inf := math.Inf(1)

	check(1, 0.5, 1.1, "50%")
	check(1, 0.9, 1.5, "50%")
	check(1, 1, 1, "0%")

	check(-1, -0.5, -1.1, "50%")
	check(-1, -0.9, -1.5, "50%")
	check(-1, -1, -1, "0%")

	check(1, -inf, 1, "∞")
	check(1, 1, inf, "∞")

	check(1, -1, 1, "?")
	check(1, -1, -1, "?")
	check(-1, -1, 1, "?")
	check(-1, 1, -1, "?")
	check(0, -1, 1, "?")

	check(0, 0, 0, "0%")
}

func TestSampleSummary(t *testing.T) {
	check := func(values []float64, confidence float64, want Summary, warnings ...string) {
		t.Helper()
		got := NewSample(values).Summary(confidence)
		if !aeq(got.Center, want.Center) || !aeq(got.Lo, want.Lo) || !aeq(got.Hi, want.Hi) ||
			got.Min != want.Min || got.Max != want.Max || got.N != want.N || got.Confidence != want.Confidence {
			t.Errorf("for %v, got %v, want %v", values, got, want)
		}
		if len(got.Warnings) != len(warnings) {
			t.Errorf("for %v, got warnings %v, want %v", values, got.Warnings, warnings)
			return
		}
		for i, w := range warnings {
			if got.Warnings[i].Error() != w {
				t.Errorf("for %v, got warning %q, want %q", values, got.Warnings[i], w)
			}
		}
	}
	inf := math.Inf(1)

	check([]float64{-8, 2, 3, 4, 5, 6}, 0.95,
		Summary{Center: 2, Lo: -3.351092806089359, Hi: 7.351092806089359, Confidence: 0.95, Min: -8, Max: 6, N: 6})
	check([]float64{4, 4, 4}, 0.95,
		Summary{Center: 4, Lo: 4, Hi: 4, Confidence: 0.95, Min: 4, Max: 4, N: 3})
	check([]float64{10}, 0.95,
		Summary{Center: 10, Lo: -inf, Hi: inf, Confidence: 0.95, Min: 10, Max: 10, N: 1},
		"need >= 2 samples for confidence interval at level 0.95")
}

func TestSampleSorts(t *testing.T) {
	s := NewSample([]float64{3, 1, 2})
	for i, want := range []float64{1, 2, 3} {
		if s.Values[i] != want {
			t.Fatalf("want sorted values, got %v", s.Values)
		}
	}
	if got := s.Mean(); got != 2 {
		t.Errorf("want mean 2, got %v", got)
	}
}

// aeq reports whether x and y are equal to 8 digits. Infinities of
// the same sign are equal.
func aeq(x, y float64) bool {
	if x == y {
		return true
	}
	if x < 0 && y < 0 {
		x, y = -x, -y
	}
	const factor = 1 - 1e-7
	return x*factor <= y && y*factor <= x
}
