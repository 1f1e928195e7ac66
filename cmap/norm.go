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

// A Norm maps data values to the normalized range used by Colormap.At.
type Norm interface {
	Normalize(v float64) float64
}

// Extend says which ends of a level set are open.
type Extend int

const (
	Neither Extend = iota
	Min
	Max
	Both
)

// ParseExtend parses "neither", "min", "max" or "both".
func ParseExtend(s string) (Extend, error) {
	switch s {
	case "neither", "":
		return Neither, nil
	case "min":
		return Min, nil
	case "max":
		return Max, nil
	case "both":
		return Both, nil
	}
	return Neither, fmt.Errorf("cmap: invalid extend %q", s)
}

func (e Extend) String() string {
	switch e {
	case Neither:
		return "neither"
	case Min:
		return "min"
	case Max:
		return "max"
	case Both:
		return "both"
	}
	return fmt.Sprintf("Extend(%d)", int(e))
}

// Min reports whether the lower end is extended.
func (e Extend) Min() bool { return e == Min || e == Both }

// Max reports whether the upper end is extended.
func (e Extend) Max() bool { return e == Max || e == Both }

func (e Extend) count() int {
	n := 0
	if e.Min() {
		n++
	}
	if e.Max() {
		n++
	}
	return n
}

// LinearNorm maps [Vmin, Vmax] linearly onto [0, 1].
type LinearNorm struct {
	Vmin, Vmax float64
}

func (n LinearNorm) Normalize(v float64) float64 {
	if n.Vmax == n.Vmin {
		return 0
	}
	return (v - n.Vmin) / (n.Vmax - n.Vmin)
}

// MidpointNormalize maps Vmin, Midpoint and Vmax to 0, 0.5 and 1,
// interpolating linearly in between. Values outside [Vmin, Vmax] are
// clamped.
type MidpointNormalize struct {
	Vmin, Midpoint, Vmax float64
}

func (n MidpointNormalize) Normalize(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return v
	case v <= n.Vmin:
		return 0
	case v >= n.Vmax:
		return 1
	case v < n.Midpoint:
		return 0.5 * (v - n.Vmin) / (n.Midpoint - n.Vmin)
	}
	if n.Vmax == n.Midpoint {
		return 1
	}
	return 0.5 + 0.5*(v-n.Midpoint)/(n.Vmax-n.Midpoint)
}

// BoundaryNorm bins data values by Boundaries into NColors colors.
type BoundaryNorm struct {
	Boundaries []float64
	NColors    int
	Extend     Extend

	nregions int
	offset   int
}

// NewBoundaryNorm returns a BoundaryNorm. The number of bins,
// len(boundaries)-1 plus one per extended end, must not exceed
// ncolors. If there are more colors than bins, bins are spread evenly
// over the colors.
func NewBoundaryNorm(boundaries []float64, ncolors int, extend Extend) (*BoundaryNorm, error) {
	if len(boundaries) < 2 {
		return nil, fmt.Errorf("cmap: need at least two boundaries, got %d", len(boundaries))
	}
	if err := checkMonotonic(boundaries); err != nil {
		return nil, fmt.Errorf("cmap: %w", err)
	}
	n := &BoundaryNorm{
		Boundaries: append([]float64(nil), boundaries...),
		NColors:    ncolors,
		Extend:     extend,
		nregions:   len(boundaries) - 1 + extend.count(),
	}
	if extend.Min() {
		n.offset = 1
	}
	if n.nregions > ncolors {
		return nil, fmt.Errorf("cmap: %d color bins including extensions, but only %d colors: %w", n.nregions, ncolors, ErrLength)
	}
	return n, nil
}

// Index returns the color index of v. It returns -1 for values below
// the first boundary and NColors for values at or above the last.
func (n *BoundaryNorm) Index(v float64) int {
	b := n.Boundaries
	if v < b[0] {
		return -1
	}
	if v >= b[len(b)-1] {
		return n.NColors
	}
	// Number of boundaries <= v.
	i := sort.Search(len(b), func(i int) bool { return b[i] > v })
	i = i - 1 + n.offset
	if n.NColors > n.nregions {
		if n.nregions == 1 {
			if i == 0 {
				i = (n.NColors - 1) / 2
			}
		} else {
			i = int(float64(n.NColors-1) / float64(n.nregions-1) * float64(i))
		}
	}
	return i
}

// Normalize returns the center of v's color bin in [0, 1], -Inf for
// values below the boundaries, +Inf above, and NaN for NaN.
func (n *BoundaryNorm) Normalize(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	i := n.Index(v)
	switch {
	case i < 0:
		return math.Inf(-1)
	case i >= n.NColors:
		return math.Inf(1)
	}
	return (float64(i) + 0.5) / float64(n.NColors)
}

// Color maps data value v through norm and cm.
func Color(cm *Colormap, norm Norm, v float64) color.NRGBA {
	return cm.At(norm.Normalize(v))
}
