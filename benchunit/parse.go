// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit parses benchmark duration tokens such as "5ms",
// "350µs" and "2.1s", normalizes them to milliseconds, and formats
// numbers in fixed decimal notation.
package benchunit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownUnit is returned for a token that does not end in a
// recognized duration unit.
var ErrUnknownUnit = errors.New("unknown duration unit")

// A TokenError records a duration token that could not be converted.
type TokenError struct {
	Index int    // Field index of Token in its row, starting at 0
	Token string // The offending token
	Err   error  // The reason for the failure
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("field %d: %v", e.Index+1, e.Err)
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

// SplitToken splits tok into its numeric literal and duration unit.
// It reports false if tok does not end in a recognized unit.
//
// Longer suffixes are tested first, so "ms", "µs" and "ns" are never
// mistaken for "s".
func SplitToken(tok string) (num string, unit Unit, ok bool) {
	for _, u := range suffixes {
		if strings.HasSuffix(tok, u.suffix) {
			return tok[:len(tok)-len(u.suffix)], u.unit, true
		}
	}
	return "", 0, false
}

// ParseDuration parses a duration token and returns its value in
// milliseconds. White space around the token and between the number
// and its unit is ignored.
func ParseDuration(tok string) (float64, error) {
	num, unit, ok := SplitToken(strings.TrimSpace(tok))
	if !ok {
		return 0, fmt.Errorf("%w in %q", ErrUnknownUnit, tok)
	}
	val, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		var nerr *strconv.NumError
		if errors.As(err, &nerr) {
			err = nerr.Err
		}
		return 0, fmt.Errorf("bad number in %q: %w", tok, err)
	}
	return unit.ToMillis(val), nil
}

// Convert converts a row of duration tokens to milliseconds, in order.
// It fails on the first token that is not a valid duration, returning
// a *TokenError. Convert never drops a token, so the result always has
// the same length as row.
func Convert(row []string) ([]float64, error) {
	vals := make([]float64, 0, len(row))
	for i, tok := range row {
		v, err := ParseDuration(tok)
		if err != nil {
			return nil, &TokenError{i, tok, err}
		}
		vals = append(vals, v)
	}
	return vals, nil
}
