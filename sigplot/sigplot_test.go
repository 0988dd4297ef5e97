// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sigplot

import (
	"bytes"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func TestHistogram(t *testing.T) {
	p := plot.New()
	values := []float64{1, 2, 2, 3, 3, 3, 4, 4, 5}
	h, err := Histogram(p, values, Bins(5))
	if err != nil {
		t.Fatal(err)
	}
	if len(h.Bins) != 5 {
		t.Errorf("want 5 bins, got %d", len(h.Bins))
	}
	total := 0.0
	for _, b := range h.Bins {
		total += b.Weight
	}
	if total != float64(len(values)) {
		t.Errorf("want total weight %d, got %v", len(values), total)
	}
	if h.FillColor != Palette[0] {
		t.Errorf("want default fill %v, got %v", Palette[0], h.FillColor)
	}
}

func TestHistogramOptions(t *testing.T) {
	p := plot.New()
	red := color.NRGBA{0xFF, 0, 0, 0xFF}
	applied := false
	h, err := Histogram(p, []float64{1, 2, 3, 4}, Bins(2), HistFill(red), Density,
		HistStyle(func(h *plotter.Histogram) { applied = true }))
	if err != nil {
		t.Fatal(err)
	}
	if h.FillColor != red {
		t.Errorf("want fill %v, got %v", red, h.FillColor)
	}
	if !applied {
		t.Errorf("HistStyle function was not applied")
	}
	area := 0.0
	for _, b := range h.Bins {
		area += b.Weight * (b.Max - b.Min)
	}
	if area < 0.999999 || area > 1.000001 {
		t.Errorf("density: want area 1, got %v", area)
	}
}

func TestHistogramInvalid(t *testing.T) {
	if _, err := Histogram(plot.New(), []float64{1, math.NaN(), 3}); err == nil {
		t.Errorf("want error for NaN value")
	}
}

func TestBoxPlots(t *testing.T) {
	p := plot.New()
	boxes, err := BoxPlots(p, []string{"A", "B"}, [][]float64{{1, 2, 3}, {10, 11, 12}})
	if err != nil {
		t.Fatal(err)
	}
	if len(boxes) != 2 {
		t.Fatalf("want 2 boxes, got %d", len(boxes))
	}
	for i, b := range boxes {
		if b.Location != float64(i) {
			t.Errorf("box %d at %v", i, b.Location)
		}
		if b.FillColor != Palette[i] {
			t.Errorf("box %d: want fill %v, got %v", i, Palette[i], b.FillColor)
		}
		if b.Width != DefaultBoxWidth {
			t.Errorf("box %d: want width %v, got %v", i, DefaultBoxWidth, b.Width)
		}
	}
	if boxes[0].Median != 2 || boxes[1].Median != 11 {
		t.Errorf("medians: got %v, %v", boxes[0].Median, boxes[1].Median)
	}

	green := color.NRGBA{0, 0xFF, 0, 0xFF}
	boxes, err = BoxPlots(plot.New(), []string{"A", "B"}, [][]float64{{1, 2}, {3, 4}}, BoxWidth(vg.Points(10)), BoxFill(green))
	if err != nil {
		t.Fatal(err)
	}
	for i, b := range boxes {
		if b.Width != vg.Points(10) || b.FillColor != green {
			t.Errorf("box %d: options not applied: width %v fill %v", i, b.Width, b.FillColor)
		}
	}

	if _, err := BoxPlots(plot.New(), []string{"A"}, [][]float64{{1}, {2}}); err == nil {
		t.Errorf("want error for mismatched names and groups")
	}
}

func TestBracket(t *testing.T) {
	p := plot.New()
	line, labels, err := Bracket(p, 0, 1, 10, 2, "**")
	if err != nil {
		t.Fatal(err)
	}
	want := plotter.XYs{{X: 0, Y: 10}, {X: 0, Y: 12}, {X: 1, Y: 12}, {X: 1, Y: 10}}
	if len(line.XYs) != len(want) {
		t.Fatalf("want %d points, got %d", len(want), len(line.XYs))
	}
	for i := range want {
		if line.XYs[i] != want[i] {
			t.Errorf("point %d: want %v, got %v", i, want[i], line.XYs[i])
		}
	}
	if line.LineStyle.Color != BracketColor || line.LineStyle.Width != vg.Points(1.5) {
		t.Errorf("bad line style %+v", line.LineStyle)
	}
	if len(labels.Labels) != 1 || labels.Labels[0] != "**" {
		t.Fatalf("want marker **, got %q", labels.Labels)
	}
	if xy := labels.XYs[0]; xy.X != 0.5 || math.Abs(xy.Y-11.4) > 1e-9 {
		t.Errorf("marker at %v, want (0.5, 11.4)", xy)
	}
	if labels.TextStyle[0].Color != BracketColor {
		t.Errorf("marker color %v", labels.TextStyle[0].Color)
	}
}

func TestThemeApply(t *testing.T) {
	p := plot.New()
	Dark.Apply(p)
	if p.BackgroundColor != Dark.Background {
		t.Errorf("background not applied")
	}
	if p.X.Label.TextStyle.Color != Dark.Ink || p.Y.Tick.Label.Color != Dark.Ink {
		t.Errorf("ink not applied")
	}
}

func chart(t *testing.T) *plot.Plot {
	t.Helper()
	p := plot.New()
	DarkGrid.Apply(p)
	if _, err := BoxPlots(p, []string{"A", "B"}, [][]float64{{1, 2, 3}, {10, 11, 12}}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Bracket(p, 0, 1, 12.5, 0.5, "***"); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestWriteTo(t *testing.T) {
	p := chart(t)
	for format, magic := range map[string]string{
		"png": "\x89PNG",
		"svg": "<svg",
		"pdf": "%PDF",
	} {
		var buf bytes.Buffer
		if err := WriteTo(p, 8*vg.Centimeter, 6*vg.Centimeter, format, &buf); err != nil {
			t.Errorf("%s: %v", format, err)
			continue
		}
		head := buf.Bytes()
		if len(head) > 512 {
			head = head[:512]
		}
		if !bytes.Contains(head, []byte(magic)) {
			t.Errorf("%s: output does not begin with %q", format, magic)
		}
	}

	var buf bytes.Buffer
	err := WriteTo(p, vg.Inch, vg.Inch, "bmp", &buf)
	if err == nil || !strings.Contains(err.Error(), "bmp") {
		t.Errorf("want unsupported format error, got %v", err)
	}
}

func TestSave(t *testing.T) {
	p := chart(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.png")
	if err := Save(p, 8*vg.Centimeter, 6*vg.Centimeter, path); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("want non-empty %s, got %v", path, err)
	}

	bad := filepath.Join(dir, "chart.bmp")
	if err := Save(p, vg.Inch, vg.Inch, bad); err == nil {
		t.Errorf("want error saving %s", bad)
	}
	if _, err := os.Stat(bad); !os.IsNotExist(err) {
		t.Errorf("failed Save left %s behind", bad)
	}
	if err := Save(p, vg.Inch, vg.Inch, filepath.Join(dir, "chart")); err == nil {
		t.Errorf("want error for missing extension")
	}
}
