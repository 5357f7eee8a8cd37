// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import "fmt"

// A Unit is a duration unit that may appear in a benchmark token.
type Unit int

const (
	Nanosecond Unit = iota
	Microsecond
	Millisecond
	Second
)

func (u Unit) String() string {
	switch u {
	case Nanosecond:
		return "ns"
	case Microsecond:
		return "µs"
	case Millisecond:
		return "ms"
	case Second:
		return "s"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// suffixes lists the token suffixes of each unit. "s" must come last
// because it is a suffix of all the others.
var suffixes = []struct {
	suffix string
	unit   Unit
}{
	{"ns", Nanosecond},
	{"ms", Millisecond},
	{"µs", Microsecond}, // U+00B5 MICRO SIGN
	{"μs", Microsecond}, // U+03BC GREEK SMALL LETTER MU
	{"s", Second},
}

// ParseUnit returns the Unit named by s.
func ParseUnit(s string) (Unit, bool) {
	for _, u := range suffixes {
		if u.suffix == s {
			return u.unit, true
		}
	}
	return 0, false
}

// ToMillis converts val, measured in u, to milliseconds.
//
// Sub-millisecond units divide rather than multiply by a fractional
// factor so that, for example, 1000µs is exactly 1ms.
func (u Unit) ToMillis(val float64) float64 {
	switch u {
	case Nanosecond:
		return val / 1e6
	case Microsecond:
		return val / 1e3
	case Millisecond:
		return val
	case Second:
		return val * 1e3
	}
	panic(fmt.Sprintf("bad Unit %v", u))
}

// Tidy normalizes a value in a duration unit into milliseconds. For
// example, Tidy(2, "s") returns 2000, "ms". If unit is not a duration
// unit, Tidy returns the value and unit unchanged.
func Tidy(value float64, unit string) (tidiedValue float64, tidiedUnit string) {
	u, ok := ParseUnit(unit)
	if !ok {
		return value, unit
	}
	return u.ToMillis(value), "ms"
}
