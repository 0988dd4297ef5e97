// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sigplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A HistOption styles a histogram drawn by Histogram.
type HistOption func(h *histStyle)

type histStyle struct {
	bins  int
	edits []func(*plotter.Histogram)
}

// Bins sets the number of histogram bins. If n <= 0, gonum picks a
// count from the sample size.
func Bins(n int) HistOption {
	return func(h *histStyle) {
		h.bins = n
	}
}

// HistFill sets the bar fill color.
func HistFill(c color.Color) HistOption {
	return HistStyle(func(h *plotter.Histogram) {
		h.FillColor = c
	})
}

// HistLine sets the bar outline style.
func HistLine(s draw.LineStyle) HistOption {
	return HistStyle(func(h *plotter.Histogram) {
		h.LineStyle = s
	})
}

// Density scales the bars so their total area is 1.
var Density HistOption = HistStyle(func(h *plotter.Histogram) {
	h.Normalize(1)
})

// HistStyle applies f to the histogram after it is constructed. It
// gives callers access to every plotter.Histogram field.
func HistStyle(f func(*plotter.Histogram)) HistOption {
	return func(h *histStyle) {
		h.edits = append(h.edits, f)
	}
}

// Histogram adds a histogram of values to p and returns it.
func Histogram(p *plot.Plot, values []float64, opts ...HistOption) (*plotter.Histogram, error) {
	var st histStyle
	for _, o := range opts {
		o(&st)
	}
	h, err := plotter.NewHist(plotter.Values(values), st.bins)
	if err != nil {
		return nil, fmt.Errorf("histogram: %w", err)
	}
	h.FillColor = paletteColor(0)
	h.LineStyle.Color = color.White
	for _, f := range st.edits {
		f(h)
	}
	p.Add(h)
	return h, nil
}

// A BoxOption styles the boxes drawn by BoxPlots.
type BoxOption func(b *boxStyle)

type boxStyle struct {
	width vg.Length
	edits []func(i int, b *plotter.BoxPlot)
}

// DefaultBoxWidth is the width of each box.
const DefaultBoxWidth = vg.Length(60)

// BoxWidth sets the width of each box.
func BoxWidth(w vg.Length) BoxOption {
	return func(b *boxStyle) {
		b.width = w
	}
}

// BoxFill fills every box with c rather than cycling through
// Palette.
func BoxFill(c color.Color) BoxOption {
	return BoxStyle(func(_ int, b *plotter.BoxPlot) {
		b.FillColor = c
	})
}

// BoxStyle applies f to each box after it is constructed. i is the
// index of the box's group.
func BoxStyle(f func(i int, b *plotter.BoxPlot)) BoxOption {
	return func(b *boxStyle) {
		b.edits = append(b.edits, f)
	}
}

// BoxPlots adds one box per group to p at x = 0, 1, ..., and labels
// the x axis with names. It returns the boxes in group order.
func BoxPlots(p *plot.Plot, names []string, groups [][]float64, opts ...BoxOption) ([]*plotter.BoxPlot, error) {
	if len(names) != len(groups) {
		return nil, fmt.Errorf("boxplot: %d names for %d groups", len(names), len(groups))
	}
	st := boxStyle{width: DefaultBoxWidth}
	for _, o := range opts {
		o(&st)
	}

	var boxes []*plotter.BoxPlot
	var plotters []plot.Plotter
	for i, g := range groups {
		b, err := plotter.NewBoxPlot(st.width, float64(i), plotter.Values(g))
		if err != nil {
			return nil, fmt.Errorf("boxplot %s: %w", names[i], err)
		}
		b.FillColor = paletteColor(i)
		b.BoxStyle.Color = ink
		b.MedianStyle.Color = ink
		b.WhiskerStyle.Color = ink
		b.GlyphStyle.Shape = draw.RingGlyph{}
		for _, f := range st.edits {
			f(i, b)
		}
		boxes = append(boxes, b)
		plotters = append(plotters, b)
	}
	p.Add(plotters...)
	p.NominalX(names...)
	return boxes, nil
}

// BracketColor is the color of significance brackets and markers.
var BracketColor color.Color = color.NRGBA{0x3F, 0x3F, 0x3F, 0xFF}

// Bracket adds a bracket joining x0 and x1 to p. The bracket rises
// from y to y+h at each end, and marker is centered above it at
// y+0.7h. It returns the bracket line and the marker label.
func Bracket(p *plot.Plot, x0, x1, y, h float64, marker string) (*plotter.Line, *plotter.Labels, error) {
	line, err := plotter.NewLine(plotter.XYs{
		{X: x0, Y: y},
		{X: x0, Y: y + h},
		{X: x1, Y: y + h},
		{X: x1, Y: y},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("bracket: %w", err)
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = BracketColor

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: (x0 + x1) / 2, Y: y + 0.7*h}},
		Labels: []string{marker},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("bracket: %w", err)
	}
	for i := range labels.TextStyle {
		sty := &labels.TextStyle[i]
		sty.Color = BracketColor
		sty.XAlign = draw.XCenter
		sty.YAlign = draw.YBottom
	}

	p.Add(line, labels)
	return line, labels, nil
}
