// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sigplot renders exploratory statistics charts with
// gonum.org/v1/plot: histograms, grouped boxplots and significance
// brackets.
//
// Every chart is drawn onto a *plot.Plot supplied by the caller. The
// package keeps no current figure, so independent plots may be built
// concurrently.
package sigplot

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// A Theme is a set of colors applied to a plot's background, axes and
// text.
type Theme struct {
	// Background fills the whole plot.
	Background color.Color

	// Ink colors titles, axis labels and tick labels.
	Ink color.Color

	// Spine colors the axis lines and tick marks.
	Spine color.Color

	// Grid, if non-nil, is the color of major grid lines.
	Grid color.Color
}

var (
	face = color.NRGBA{0xEA, 0xEA, 0xF2, 0xFF}
	ink  = color.NRGBA{0x26, 0x26, 0x26, 0xFF}
)

var (
	// Dark is a grey face with no grid lines.
	Dark = Theme{Background: face, Ink: ink, Spine: color.White}

	// DarkGrid is a grey face with white grid lines. It is the
	// default theme.
	DarkGrid = Theme{Background: face, Ink: ink, Spine: color.White, Grid: color.White}
)

// Palette is the fill color cycle for successive data series.
var Palette = []color.Color{
	color.NRGBA{0x4C, 0x72, 0xB0, 0xFF},
	color.NRGBA{0xDD, 0x84, 0x52, 0xFF},
	color.NRGBA{0x55, 0xA8, 0x68, 0xFF},
	color.NRGBA{0xC4, 0x4E, 0x52, 0xFF},
	color.NRGBA{0x81, 0x72, 0xB3, 0xFF},
	color.NRGBA{0x93, 0x78, 0x60, 0xFF},
}

// Apply colors p with th. If th has a grid, the grid is added to p, so
// Apply should be called before adding data so the grid is drawn
// underneath it.
func (th Theme) Apply(p *plot.Plot) {
	p.BackgroundColor = th.Background
	p.Title.TextStyle.Color = th.Ink
	for _, a := range []*plot.Axis{&p.X, &p.Y} {
		a.Label.TextStyle.Color = th.Ink
		a.Tick.Label.Color = th.Ink
		a.LineStyle.Color = th.Spine
		a.Tick.LineStyle.Color = th.Spine
	}
	if th.Grid != nil {
		grid := plotter.NewGrid()
		grid.Vertical.Color = th.Grid
		grid.Horizontal.Color = th.Grid
		p.Add(grid)
	}
}

func paletteColor(i int) color.Color {
	return Palette[i%len(Palette)]
}
