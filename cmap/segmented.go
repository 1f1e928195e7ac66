// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmap

import (
	"fmt"
	"image/color"
	"math"
	"sort"
)

// FromList returns a colormap of n entries that linearly interpolates
// between colors. If positions is nil, colors are evenly spaced on
// [0, 1]. Otherwise positions must be non-decreasing, start at 0 and
// end at 1; two equal positions produce a sharp step. If n <= 0,
// DefaultN is used.
func FromList(name string, colors []color.NRGBA, positions []float64, n int) (*Colormap, error) {
	if len(colors) < 2 {
		return nil, fmt.Errorf("cmap: %s: need at least two colors, got %d", name, len(colors))
	}
	if positions == nil {
		positions = Linspace(0, 1, len(colors))
	}
	if len(positions) != len(colors) {
		return nil, fmt.Errorf("cmap: %s: %d positions for %d colors: %w", name, len(positions), len(colors), ErrLength)
	}
	if err := checkMonotonic(positions); err != nil {
		return nil, fmt.Errorf("cmap: %s: %w", name, err)
	}
	if positions[0] != 0 || positions[len(positions)-1] != 1 {
		return nil, fmt.Errorf("cmap: %s: positions must start at 0 and end at 1", name)
	}
	if n <= 0 {
		n = DefaultN
	}
	return newColormap(name, segmentLUT(colors, positions, n)), nil
}

// segmentLUT samples the piecewise-linear ramp through (positions[i],
// colors[i]) at n evenly spaced points. Each interior sample uses the
// first breakpoint at or above it as the right end of its segment, so
// a repeated position switches colors just past the breakpoint.
func segmentLUT(colors []color.NRGBA, positions []float64, n int) []color.NRGBA {
	if n == 1 {
		return []color.NRGBA{colors[len(colors)-1]}
	}
	lut := make([]color.NRGBA, n)
	lut[0], lut[n-1] = colors[0], colors[len(colors)-1]
	for i := 1; i < n-1; i++ {
		x := float64(i) / float64(n-1)
		j := sort.SearchFloat64s(positions, x)
		t := (x - positions[j-1]) / (positions[j] - positions[j-1])
		lut[i] = blend(colors[j-1], colors[j], t)
	}
	return lut
}

func blend(a, b color.NRGBA, t float64) color.NRGBA {
	c := toColorful(a).BlendRgb(toColorful(b), t).Clamped()
	r, g, bl := c.RGB255()
	alpha := float64(a.A) + t*(float64(b.A)-float64(a.A))
	return color.NRGBA{r, g, bl, uint8(math.Round(alpha))}
}

// MakeCmap is like FromList, but positions may be in data units: if
// any position falls outside [0, 1], positions are rescaled linearly
// so the smallest is 0 and the largest is 1.
func MakeCmap(name string, colors []color.NRGBA, positions []float64, n int) (*Colormap, error) {
	if positions == nil {
		return FromList(name, colors, nil, n)
	}
	if len(positions) != len(colors) {
		return nil, fmt.Errorf("cmap: %s: %d positions for %d colors: %w", name, len(positions), len(colors), ErrLength)
	}
	if err := checkMonotonic(positions); err != nil {
		return nil, fmt.Errorf("cmap: %s: %w", name, err)
	}
	lo, hi := positions[0], positions[len(positions)-1]
	if lo < 0 || hi > 1 {
		if hi == lo {
			return nil, fmt.Errorf("cmap: %s: positions span an empty range", name)
		}
		scaled := make([]float64, len(positions))
		for i, p := range positions {
			scaled[i] = (p - lo) / (hi - lo)
		}
		positions = scaled
	}
	return FromList(name, colors, positions, n)
}

// FromLevelsAndColors returns a discrete colormap and matching
// BoundaryNorm for filled contours with the given levels.
//
// There must be len(levels)-1 colors, plus one more for each end that
// extend extends. The extra colors become the Under and Over colors;
// an end that is not extended gets a transparent Under or Over.
func FromLevelsAndColors(levels []float64, colors []color.NRGBA, extend Extend) (*Colormap, *BoundaryNorm, error) {
	if len(levels) < 2 {
		return nil, nil, fmt.Errorf("cmap: need at least two levels, got %d", len(levels))
	}
	if err := checkMonotonic(levels); err != nil {
		return nil, nil, fmt.Errorf("cmap: %w", err)
	}
	nData := len(levels) - 1
	want := nData + extend.count()
	if len(colors) != want {
		return nil, nil, fmt.Errorf("cmap: %d levels with extend %s need %d colors, got %d: %w", len(levels), extend, want, len(colors), ErrLength)
	}

	lo := 0
	under, over := Transparent, Transparent
	if extend.Min() {
		under = colors[0]
		lo = 1
	}
	if extend.Max() {
		over = colors[len(colors)-1]
	}
	cm := newColormap("from_list", append([]color.NRGBA(nil), colors[lo:lo+nData]...))
	cm.Under, cm.Over = under, over

	norm, err := NewBoundaryNorm(levels, nData, Neither)
	if err != nil {
		return nil, nil, err
	}
	return cm, norm, nil
}
