// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"errors"
	"reflect"
	"strconv"
	"testing"
)

func TestParseDuration(t *testing.T) {
	test := func(tok string, want float64) {
		t.Helper()
		got, err := ParseDuration(tok)
		if err != nil {
			t.Errorf("for %q, unexpected error %s", tok, err)
		} else if got != want {
			t.Errorf("for %q, want %v, got %v", tok, want, got)
		}
	}
	test("5ms", 5)
	test("0.25ms", 0.25)
	test("1000µs", 1)
	test("1500μs", 1.5) // Greek mu
	test("250µs", 0.25)
	test("2s", 2000)
	test("1.5s", 1500)
	test("120ns", 0.00012)
	test("0s", 0)
	test(" 5ms", 5)
	test("5ms ", 5)
	test("5 ms", 5)
	test("1e3µs", 1)
	test("-2ms", -2)
}

func TestParseDurationErrors(t *testing.T) {
	test := func(tok string, want error, msg string) {
		t.Helper()
		_, err := ParseDuration(tok)
		if err == nil {
			t.Errorf("for %q, want error %s, got success", tok, want)
			return
		}
		if !errors.Is(err, want) {
			t.Errorf("for %q, want error wrapping %s, got %s", tok, want, err)
		}
		if err.Error() != msg {
			t.Errorf("for %q, want message %q, got %q", tok, msg, err.Error())
		}
	}
	test("5m", ErrUnknownUnit, `unknown duration unit in "5m"`)
	test("5", ErrUnknownUnit, `unknown duration unit in "5"`)
	test("", ErrUnknownUnit, `unknown duration unit in ""`)
	test("5min", ErrUnknownUnit, `unknown duration unit in "5min"`)
	test("xms", strconv.ErrSyntax, `bad number in "xms": invalid syntax`)
	test("ms", strconv.ErrSyntax, `bad number in "ms": invalid syntax`)
	test("5Ms", strconv.ErrSyntax, `bad number in "5Ms": invalid syntax`)
}

func TestSplitToken(t *testing.T) {
	test := func(tok, wantNum string, wantUnit Unit) {
		t.Helper()
		num, unit, ok := SplitToken(tok)
		if !ok {
			t.Errorf("for %q, got no unit", tok)
			return
		}
		if num != wantNum || unit != wantUnit {
			t.Errorf("for %q, want %q %s, got %q %s", tok, wantNum, wantUnit, num, unit)
		}
	}
	// "s" is a suffix of every unit and must not shadow them.
	test("5ms", "5", Millisecond)
	test("5µs", "5", Microsecond)
	test("5ns", "5", Nanosecond)
	test("5s", "5", Second)

	if _, _, ok := SplitToken("5m"); ok {
		t.Errorf("for \"5m\", want no unit")
	}
}

func TestConvert(t *testing.T) {
	got, err := Convert([]string{"5ms", "2s", "1000µs"})
	if err != nil {
		t.Fatal(err)
	}
	if want := []float64{5, 2000, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("want %v, got %v", want, got)
	}

	got, err = Convert(nil)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("want empty slice, got %#v", got)
	}
}

func TestConvertRejects(t *testing.T) {
	// An unrecognized token is an error, not a shorter row.
	_, err := Convert([]string{"5ms", "5m", "2s"})
	var terr *TokenError
	if !errors.As(err, &terr) {
		t.Fatalf("want *TokenError, got %v", err)
	}
	if terr.Index != 1 || terr.Token != "5m" {
		t.Errorf("want field 1 token 5m, got field %d token %s", terr.Index, terr.Token)
	}
	if !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("want error wrapping ErrUnknownUnit, got %s", err)
	}
	if want := `field 2: unknown duration unit in "5m"`; err.Error() != want {
		t.Errorf("want %q, got %q", want, err.Error())
	}
}
