// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palettes provides unit-aware color schemes for common
// meteorological fields, modeled on the NWS standard color curves.
//
// Each factory returns a Scheme carrying both the mapping (Cmap and
// Norm) and what a colorbar needs to label it (Label, Bounds, Ticks
// and Extend). Most schemes come in a segmented form, binned by Bounds,
// and a continuous form that interpolates linearly between Vmin and
// Vmax.
package palettes

import (
	"fmt"
	"image/color"

	"github.com/nmcdev/go-metgraphics/cmap"
)

// A Scheme is a colormap together with its normalization and colorbar
// metadata.
type Scheme struct {
	Name  string
	Units string
	// Label is "Name (Units)".
	Label string

	Colors []color.NRGBA
	Bounds []float64
	Ticks  []float64
	Extend cmap.Extend

	Cmap *cmap.Colormap
	Norm cmap.Norm
}

// Color maps data value v to a color.
func (s *Scheme) Color(v float64) color.NRGBA {
	return cmap.Color(s.Cmap, s.Norm, v)
}

// Continuous reports whether s interpolates linearly rather than
// binning by Bounds.
func (s *Scheme) Continuous() bool {
	_, ok := s.Norm.(*cmap.BoundaryNorm)
	return !ok
}

func newScheme(name, units string, colors []color.NRGBA, bounds []float64, extend cmap.Extend) *Scheme {
	return &Scheme{
		Name:   name,
		Units:  units,
		Label:  fmt.Sprintf("%s (%s)", name, units),
		Colors: colors,
		Bounds: bounds,
		Ticks:  bounds,
		Extend: extend,
	}
}

// segmented sets s's colormap to n entries interpolated through
// s.Colors and bins values by s.Bounds.
func (s *Scheme) segmented(n int) error {
	cm, err := cmap.FromList(s.Name, s.Colors, nil, n)
	if err != nil {
		return err
	}
	norm, err := cmap.NewBoundaryNorm(s.Bounds, cm.N(), s.Extend)
	if err != nil {
		return fmt.Errorf("palettes: %s: %w", s.Name, err)
	}
	s.Cmap, s.Norm = cm, norm
	return nil
}

// continuous sets s's colormap to a smooth ramp through s.Colors
// normalized by norm.
func (s *Scheme) continuous(norm cmap.Norm) error {
	cm, err := cmap.FromList(s.Name, s.Colors, nil, cmap.DefaultN)
	if err != nil {
		return err
	}
	s.Cmap, s.Norm = cm, norm
	return nil
}

// Truncate returns a copy of s restricted to the bounds within
// [lo, hi]. The colors are resampled from the part of the original
// colormap those bounds cover, and values just outside the range take
// the neighboring original colors as Under and Over.
func (s *Scheme) Truncate(lo, hi float64) (*Scheme, error) {
	if len(s.Bounds) < 2 {
		return nil, fmt.Errorf("palettes: %s has no bounds to truncate", s.Name)
	}
	bmin, bmax := s.Bounds[0], s.Bounds[len(s.Bounds)-1]
	var bounds, normalized []float64
	for _, b := range s.Bounds {
		if b >= lo && b <= hi {
			bounds = append(bounds, b)
			normalized = append(normalized, (b-bmin)/(bmax-bmin))
		}
	}
	if len(bounds) < 2 {
		return nil, fmt.Errorf("palettes: %s: fewer than two bounds in [%g, %g]", s.Name, lo, hi)
	}

	nlo, nhi := normalized[0], normalized[len(normalized)-1]
	colors := s.Cmap.Sample(nlo, nhi, len(bounds))
	cm, err := cmap.NewListed(s.Name, colors)
	if err != nil {
		return nil, err
	}
	cm.Under = s.Cmap.At(nlo - 0.01)
	cm.Over = s.Cmap.At(nhi + 0.01)
	norm, err := cmap.NewBoundaryNorm(bounds, len(bounds), cmap.Neither)
	if err != nil {
		return nil, err
	}

	t := *s
	t.Colors = colors
	t.Bounds = bounds
	t.Ticks = every(bounds, tickStride(s))
	t.Cmap, t.Norm = cm, norm
	return &t, nil
}

// tickStride recovers the tick interval of s.
func tickStride(s *Scheme) int {
	if len(s.Ticks) < 2 {
		return 1
	}
	for i, b := range s.Bounds {
		if b == s.Ticks[1] {
			return i
		}
	}
	return 1
}

// every returns every k'th element of xs, starting with the first.
func every(xs []float64, k int) []float64 {
	if k <= 1 {
		return xs
	}
	var out []float64
	for i := 0; i < len(xs); i += k {
		out = append(out, xs[i])
	}
	return out
}

func scale(xs []float64, f float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x * f
	}
	return out
}

func offset(xs []float64, d float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x + d
	}
	return out
}

// within keeps the bounds in [lo, hi] and the colors at the same
// indexes.
func within(bounds []float64, colors []color.NRGBA, lo, hi float64) ([]float64, []color.NRGBA) {
	var bs []float64
	var cs []color.NRGBA
	for i, b := range bounds {
		if b >= lo && b <= hi {
			bs = append(bs, b)
			cs = append(cs, colors[i])
		}
	}
	return bs, cs
}
