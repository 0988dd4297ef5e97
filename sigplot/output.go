// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sigplot

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// DPI is the resolution of PNG output.
var DPI = 150

// Formats lists the image formats accepted by WriteTo.
var Formats = []string{"png", "svg", "pdf"}

// WriteTo renders p at width w and height h in the given format
// ("png", "svg" or "pdf") and writes it to out.
func WriteTo(p *plot.Plot, w, h vg.Length, format string, out io.Writer) error {
	var c vg.CanvasWriterTo
	switch strings.ToLower(format) {
	case "png":
		c = vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h),
			vgimg.UseDPI(DPI), vgimg.UseBackgroundColor(color.White))}
	case "svg":
		c = vgsvg.New(w, h)
	case "pdf":
		c = vgpdf.New(w, h)
	default:
		return fmt.Errorf("unsupported image format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
	p.Draw(draw.New(c))
	_, err := c.WriteTo(out)
	return err
}

// Save renders p to the file path. The format is chosen from the
// file extension.
func Save(p *plot.Plot, w, h vg.Length, path string) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		return fmt.Errorf("%s: no file extension to choose an image format", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteTo(p, w, h, format, f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
