// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ChartFormats lists the image formats Chart can write.
var ChartFormats = []string{"png", "svg", "pdf"}

// Chart draws a bar chart of the column means of r, in milliseconds,
// and writes it to w as an image in the given format (see
// ChartFormats).
func (r *Report) Chart(w io.Writer, format string) error {
	format = strings.ToLower(format)
	ok := false
	for _, f := range ChartFormats {
		ok = ok || f == format
	}
	if !ok {
		return fmt.Errorf("unsupported chart format %q", format)
	}

	for i, v := range r.Means {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("cannot chart column %s: mean is %v", r.Labels[i], v)
		}
	}

	pl := plot.New()
	pl.Title.Text = "benchmark averages"
	pl.Y.Label.Text = "mean (ms)"

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	pl.Add(grid)

	bars, err := plotter.NewBarChart(plotter.Values(r.Means), vg.Points(20))
	if err != nil {
		return err
	}
	bars.Color = color.NRGBA{0, 0, 0xFF, 0x80}
	bars.LineStyle.Color = color.Black
	pl.Add(bars)
	pl.NominalX(r.Labels...)

	pl.X.Tick.Label.Rotation = -math.Pi / 8
	pl.X.Tick.Label.YAlign = draw.YTop
	pl.X.Tick.Label.XAlign = draw.XLeft

	// Heuristic width: room for every bar and its label.
	width := vg.Length(2+len(r.Means)) * 1.5 * vg.Centimeter
	if width < 10*vg.Centimeter {
		width = 10 * vg.Centimeter
	}
	height := 8 * vg.Centimeter

	wt, err := pl.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
