// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmap

import (
	"fmt"
	"image/color"
	"io"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-gg/table"
)

var _ palette.Continuous = (*Colormap)(nil)

// sheetSamples is the number of swatches per colormap.
const sheetSamples = 64

// WriteSheetSVG writes an SVG swatch sheet with one row per colormap.
func WriteSheetSVG(w io.Writer, maps []*Colormap, width int) error {
	if len(maps) == 0 {
		return fmt.Errorf("cmap: no colormaps to draw")
	}
	var names []string
	var xs, ys []float64
	var fills []color.Color
	for _, cm := range maps {
		// Two rows per map so tiles get a visible height.
		for row := 0; row < 2; row++ {
			for i := 0; i < sheetSamples; i++ {
				x := (float64(i) + 0.5) / sheetSamples
				names = append(names, cm.Name)
				xs = append(xs, x)
				ys = append(ys, float64(row))
				fills = append(fills, cm.Map(x))
			}
		}
	}
	tab := table.NewBuilder(nil).
		Add("name", names).
		Add("x", xs).
		Add("y", ys).
		Add("fill", fills).
		Done()

	plot := gg.NewPlot(tab)
	plot.Add(gg.FacetY{Col: "name"})
	plot.Add(gg.LayerTiles{X: "x", Y: "y", Fill: "fill"})
	return plot.WriteSVG(w, width, 30*len(maps)+40)
}
