// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmap

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ReverseSuffix is appended to the name of reversed colormaps.
const ReverseSuffix = "_r"

// Reversed returns cm with its lookup table reversed and its Under
// and Over colors swapped. Reversing a reversed colormap restores
// the original name.
func Reversed(cm *Colormap) *Colormap {
	name := cm.Name + ReverseSuffix
	if strings.HasSuffix(cm.Name, ReverseSuffix) {
		name = strings.TrimSuffix(cm.Name, ReverseSuffix)
	}
	r := cm.Copy(name)
	for i, j := 0, len(r.lut)-1; i < j; i, j = i+1, j-1 {
		r.lut[i], r.lut[j] = r.lut[j], r.lut[i]
	}
	r.Under, r.Over = cm.Over, cm.Under
	return r
}

// Truncate returns a colormap of n entries that spans only the
// normalized range [minVal, maxVal] of cm. If n <= 0, 100 is used.
func Truncate(cm *Colormap, minVal, maxVal float64, n int) (*Colormap, error) {
	if minVal < 0 || maxVal > 1 || minVal >= maxVal {
		return nil, fmt.Errorf("cmap: invalid truncation range [%g, %g]", minVal, maxVal)
	}
	if n <= 0 {
		n = 100
	}
	name := fmt.Sprintf("trunc(%s,%.2f,%.2f)", cm.Name, minVal, maxVal)
	return FromList(name, cm.Sample(minVal, maxVal, n), nil, n)
}

// Grayify returns a grayscale version of cm using perceived
// luminance, sqrt(.299 R² + .587 G² + .114 B²).
func Grayify(cm *Colormap) *Colormap {
	g := cm.Copy(cm.Name + "_gray")
	gray := func(c color.NRGBA) color.NRGBA {
		r, gg, b := float64(c.R)/255, float64(c.G)/255, float64(c.B)/255
		l := math.Sqrt(0.299*r*r + 0.587*gg*gg + 0.114*b*b)
		v := uint8(math.Round(l * 255))
		return color.NRGBA{v, v, v, c.A}
	}
	for i, c := range g.lut {
		g.lut[i] = gray(c)
	}
	g.Under, g.Over, g.Bad = gray(g.Under), gray(g.Over), gray(g.Bad)
	return g
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// Arange returns lo, lo+step, ... up to but excluding hi.
func Arange(lo, hi, step float64) []float64 {
	if step == 0 || (hi-lo)/step <= 0 {
		return nil
	}
	n := int(math.Ceil((hi - lo) / step))
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

// Concat concatenates breakpoint slices.
func Concat(parts ...[]float64) []float64 {
	var out []float64
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
