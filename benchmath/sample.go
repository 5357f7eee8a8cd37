// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmath computes statistics over tables of benchmark
// measurements, where each row is a trial and each column is one
// measured phase.
//
// Summaries carry a list of warnings, captured as an []error value.
// These aren't errors that prevent analysis, but should be presented
// to the user along with the results.
package benchmath

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/mathx"
	"github.com/aclements/go-moremath/stats"
)

// A Sample is the set of measurements of one column across all
// trials.
type Sample struct {
	// Values are the measured values, in ascending order.
	Values []float64
}

// NewSample constructs a Sample from a set of measurements. It sorts
// values in place.
func NewSample(values []float64) *Sample {
	// Sort values for fast order statistics.
	sort.Float64s(values)
	return &Sample{values}
}

func (s *Sample) sample() stats.Sample {
	return stats.Sample{Xs: s.Values, Sorted: true}
}

// Mean returns the arithmetic mean of s, or NaN if s is empty.
func (s *Sample) Mean() float64 {
	return stats.Mean(s.Values)
}

// A Summary summarizes a Sample.
type Summary struct {
	// Center is the sample mean.
	Center float64

	// Lo and Hi give the bounds of the confidence interval around
	// Center.
	Lo, Hi float64

	// Confidence is the confidence level of the interval given by
	// Lo, Hi.
	Confidence float64

	// Min and Max are the smallest and largest values in the
	// sample.
	Min, Max float64

	// N is the number of values in the sample.
	N int

	// Warnings is a list of warnings about this summary or its
	// confidence interval.
	Warnings []error
}

func (s Summary) String() string {
	return fmt.Sprintf("%v ±%s n=%d", s.Center, s.PctRangeString(), s.N)
}

// Summary returns the mean of s with a Student's t confidence interval
// at the given confidence level, given in the range [0,1], e.g., 0.95
// for 95% confidence. This assumes the values are normally
// distributed.
//
// A sample with fewer than two values has an unbounded interval.
func (s *Sample) Summary(confidence float64) Summary {
	sample := s.sample()
	sum := Summary{Confidence: confidence, N: len(s.Values)}
	if len(s.Values) == 0 {
		sum.Center, sum.Lo, sum.Hi = math.NaN(), math.NaN(), math.NaN()
		sum.Min, sum.Max = math.NaN(), math.NaN()
		return sum
	}
	sum.Min, sum.Max = stats.Bounds(s.Values)
	if len(s.Values) < 2 {
		sum.Center = s.Values[0]
		sum.Lo, sum.Hi = math.Inf(-1), math.Inf(1)
		sum.Warnings = append(sum.Warnings, fmt.Errorf("need >= 2 samples for confidence interval at level %v", confidence))
		return sum
	}
	sum.Center, sum.Lo, sum.Hi = sample.MeanCI(confidence)
	return sum
}

// PctRangeString returns a string representation of the range of this
// Summary's confidence interval as a percentage.
func (s Summary) PctRangeString() string {
	if math.IsInf(s.Lo, 0) || math.IsInf(s.Hi, 0) {
		return "∞"
	}

	// If the signs of the bounds differ from the center, we can't
	// render it as a percent.
	var csign = mathx.Sign(s.Center)
	if csign != mathx.Sign(s.Lo) || csign != mathx.Sign(s.Hi) {
		return "?"
	}

	// If center is 0, avoid dividing by zero. But we can only get
	// here if lo and hi are also 0, in which case is seems
	// reasonable to call this 0%.
	if s.Center == 0 {
		return "0%"
	}

	v := math.Max(s.Hi/s.Center-1, 1-s.Lo/s.Center)
	return fmt.Sprintf("%.0f%%", 100*v)
}
