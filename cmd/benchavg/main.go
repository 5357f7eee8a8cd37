// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchavg averages benchmark timings recorded as comma-separated
// duration tokens.
//
// Usage:
//
//	benchavg [flags] inputs...
//
// Each input file holds one benchmark trial per line. Every field of a
// line is one measurement written as a number followed by a duration
// unit: "ns", "µs", "ms" or "s". For example:
//
//	# optimized nidkg dealer 11,11 5,8
//	12.5ms,1.25s,250µs
//	13.5ms,1.75s,750µs
//	14ms,1.5s,500µs
//
// Benchavg converts every measurement to milliseconds, computes the
// arithmetic mean of each column across all trials and prints the
// vector of means on one line in fixed decimal notation:
//
//	$ benchavg nidkg.csv
//	[13.333333 1500.000000 0.500000]
//
// If no inputs are given, or an input is "-", benchavg reads standard
// input. Rows from several inputs are averaged together.
//
// A measurement with an unknown unit, a malformed number, rows of
// different lengths or an input with no rows are fatal errors.
//
// # Output formats
//
// The -format flag selects the output:
//
//	vector  the column means on one line (the default)
//	text    an aligned table of each column's mean, confidence
//	        interval, minimum, maximum and number of trials
//	csv     the same as text, as comma-separated values
//	html    the same as text, as an HTML table
//
// The -plot flag additionally draws a bar chart of the means to the
// named file. The image format is taken from the file extension and
// may be png, svg or pdf.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/benchavg/benchfmt"
	"golang.org/x/benchavg/benchmath"
	"golang.org/x/benchavg/benchreport"
	"golang.org/x/benchavg/benchunit"
)

var exit = os.Exit // replaced during testing

func usage(w io.Writer) {
	fmt.Fprintf(w, `Usage: benchavg [flags] inputs...

benchavg reads benchmark trials of comma-separated duration tokens
and prints the mean of each column in milliseconds. If no inputs are
provided, it reads from stdin.

`)
}

// A usageError is a command-line error. The message and usage have
// already been printed.
type usageError struct {
	err error
}

func (e usageError) Error() string {
	return e.err.Error()
}

func main() {
	log.SetPrefix("benchavg: ")
	log.SetFlags(0)

	if err := benchavg(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var uerr usageError
		if errors.As(err, &uerr) {
			exit(2)
			return
		}
		log.Fatal(err)
	}
}

func benchavg(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("benchavg", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		usage(flags.Output())
		flags.PrintDefaults()
	}
	flagFormat := flags.String("format", "vector", "print results in `format`: vector, text, csv, or html")
	flagPrec := flags.Int("prec", 6, "print means with `n` digits after the decimal point; -1 prints the shortest exact form")
	flagDelim := flags.String("d", ",", "field `delimiter`; \\t means tab")
	flagHeader := flags.Bool("header", false, "treat the first line of each input as column labels")
	flagConfidence := flags.Float64("confidence", 0.95, "confidence `level` for intervals in text, csv, and html output")
	flagPlot := flags.String("plot", "", "also draw a bar chart of the means to `file` (.png, .svg, or .pdf)")
	if err := flags.Parse(args); err != nil {
		return usageError{err}
	}
	bad := func(format string, args ...interface{}) error {
		err := fmt.Errorf(format, args...)
		fmt.Fprintln(wErr, err)
		flags.Usage()
		return usageError{err}
	}

	switch *flagFormat {
	case "vector", "text", "csv", "html":
	default:
		return bad("unknown -format %q", *flagFormat)
	}
	if *flagPrec < -1 {
		return bad("-prec must be >= -1")
	}
	if !(*flagConfidence > 0 && *flagConfidence < 1) {
		return bad("-confidence must be between 0 and 1")
	}
	delim := *flagDelim
	if delim == `\t` {
		delim = "\t"
	}
	comma, _ := utf8.DecodeRuneInString(delim)
	if utf8.RuneCountInString(delim) != 1 || comma == '#' || comma == '"' || comma == '\n' || comma == '\r' {
		return bad("invalid -d delimiter %q", *flagDelim)
	}
	var plotFormat string
	if *flagPlot != "" {
		plotFormat = strings.TrimPrefix(filepath.Ext(*flagPlot), ".")
		if !validChartFormat(plotFormat) {
			return bad("-plot file must end in .png, .svg, or .pdf")
		}
	}

	// Read the table, remembering where each row came from for
	// shape errors.
	files := &benchfmt.Files{Paths: flags.Args(), AllowStdin: true, Comma: comma, Header: *flagHeader}
	defer files.Close()
	var rows [][]float64
	var pos []benchfmt.Row
	for files.Scan() {
		row := files.Row()
		rows = append(rows, row.Values)
		pos = append(pos, benchfmt.Row{FileName: row.FileName, Line: row.Line})
	}
	if err := files.Err(); err != nil {
		return err
	}
	tab := &benchmath.Table{Rows: rows, Labels: files.Labels()}

	rep, err := benchreport.New(tab, *flagConfidence)
	if err != nil {
		var serr *benchmath.ShapeError
		if errors.As(err, &serr) {
			p := pos[serr.Row]
			return fmt.Errorf("%s:%d: %w", p.FileName, p.Line, err)
		}
		return err
	}

	var buf bytes.Buffer
	scaler := benchunit.FixedScaler(*flagPrec)
	switch *flagFormat {
	case "vector":
		err = rep.Vector(&buf, benchreport.Options{Prec: *flagPrec})
	case "text":
		err = rep.Text(&buf)
	case "csv":
		err = rep.CSV(&buf, scaler)
	case "html":
		err = rep.HTML(&buf, scaler)
	}
	if err != nil {
		return err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}

	if *flagFormat != "vector" {
		// The vector has no intervals, so interval warnings
		// only matter for the other formats.
		for _, warning := range rep.Warnings() {
			fmt.Fprintln(wErr, warning)
		}
	}

	if *flagPlot != "" {
		if err := writeChart(rep, *flagPlot, plotFormat); err != nil {
			return err
		}
	}
	return nil
}

func validChartFormat(format string) bool {
	for _, f := range benchreport.ChartFormats {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}

func writeChart(rep *benchreport.Report, path, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := rep.Chart(f, format); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
