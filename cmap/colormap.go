// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmap implements colormaps and normalizations for
// meteorological plots.
//
// A Colormap maps a normalized value in [0, 1] to a color through a
// lookup table. Values below 0 map to the Under color, values above 1
// to the Over color, and NaN to the Bad color. A Norm maps data
// values into the normalized range; BoundaryNorm bins data values
// into discrete colors.
package cmap

import (
	"fmt"
	"image/color"
	"math"
)

// DefaultN is the default lookup table size of segmented colormaps.
const DefaultN = 256

// A Colormap maps normalized values to colors.
type Colormap struct {
	Name string

	// Under, Over and Bad are the colors for values below 0,
	// above 1, and NaN respectively.
	Under, Over, Bad color.NRGBA

	lut []color.NRGBA
}

// NewListed returns a colormap whose lookup table is exactly colors.
// Under and Over default to the first and last color.
func NewListed(name string, colors []color.NRGBA) (*Colormap, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("cmap: %s: no colors", name)
	}
	return newColormap(name, append([]color.NRGBA(nil), colors...)), nil
}

func newColormap(name string, lut []color.NRGBA) *Colormap {
	return &Colormap{
		Name:  name,
		Under: lut[0],
		Over:  lut[len(lut)-1],
		Bad:   Transparent,
		lut:   lut,
	}
}

// N returns the number of entries in the lookup table.
func (cm *Colormap) N() int {
	return len(cm.lut)
}

// Colors returns a copy of the lookup table.
func (cm *Colormap) Colors() []color.NRGBA {
	return append([]color.NRGBA(nil), cm.lut...)
}

// At returns the color of normalized value x.
func (cm *Colormap) At(x float64) color.NRGBA {
	n := len(cm.lut)
	switch {
	case math.IsNaN(x):
		return cm.Bad
	case x < 0:
		return cm.Under
	}
	xa := x * float64(n)
	if xa == float64(n) {
		return cm.lut[n-1]
	}
	if xa >= float64(n) {
		return cm.Over
	}
	return cm.lut[int(xa)]
}

// Map is like At, but returns a color.Color so a Colormap can be used
// wherever a continuous palette is expected.
func (cm *Colormap) Map(x float64) color.Color {
	return cm.At(x)
}

// Copy returns a copy of cm named name.
func (cm *Colormap) Copy(name string) *Colormap {
	c := *cm
	c.Name = name
	c.lut = cm.Colors()
	return &c
}

// Sample returns the colors at n evenly spaced normalized values
// between lo and hi inclusive.
func (cm *Colormap) Sample(lo, hi float64, n int) []color.NRGBA {
	out := make([]color.NRGBA, 0, n)
	for _, x := range Linspace(lo, hi, n) {
		out = append(out, cm.At(x))
	}
	return out
}

// String returns the colormap name and size.
func (cm *Colormap) String() string {
	return fmt.Sprintf("%s(%d)", cm.Name, len(cm.lut))
}
