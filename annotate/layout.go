// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annotate

import (
	"math"
	"strconv"

	"github.com/aclements/go-moremath/scale"
)

// Phi is the golden ratio.
var Phi = (1 + math.Sqrt(5)) / 2

// FigSize returns a figure size of width w in the golden ratio. The
// figure is wider than tall unless portrait is set.
func FigSize(w float64, portrait bool) (width, height float64) {
	if portrait {
		return w, w * Phi
	}
	return w, w / Phi
}

// Sizes are element sizes scaled to a figure.
type Sizes struct {
	Labels    float64 // title and axis label font size, points
	Ticks     float64 // tick label font size, points
	Marker    float64 // scatter marker area, points²
	LineWidth float64 // points
}

// Autosize scales font sizes, marker sizes and line widths to a figure
// width inches wide.
func Autosize(width float64) Sizes {
	return Sizes{
		Labels:    width * 5,
		Ticks:     width * 5 / 2,
		Marker:    math.Pow(width*1.5, 2),
		LineWidth: width,
	}
}

// SubplotArrangement returns a square-ish grid for n subplots:
// (⌈√n⌉, round(√n)).
func SubplotArrangement(n int) (rows, cols int) {
	r := math.Sqrt(float64(n))
	return int(math.Ceil(r)), int(math.RoundToEven(r))
}

const axisLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// AxisLabels returns n panel labels: upper case letters, then lower
// case, then starting over.
func AxisLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = string(axisLetters[i%len(axisLetters)])
	}
	return labels
}

// CenterLimits returns color limits centered on zero that cover
// [lo, hi].
func CenterLimits(lo, hi float64) (float64, float64) {
	m := math.Max(math.Abs(lo), math.Abs(hi))
	return -m, m
}

// ColorbarTicks returns at most n evenly spaced round tick values
// within [lo, hi].
func ColorbarTicks(lo, hi float64, n int) []float64 {
	if n < 1 || !(lo < hi) {
		return nil
	}
	s := scale.Linear{Min: lo, Max: hi}
	major, _ := s.Ticks(scale.TickOptions{Max: n})
	return major
}

func degrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "°"
}

// LonLabel formats longitude v for a map axis, such as "120°E" or
// "60°W". Longitudes are first wrapped to [-180, 180].
func LonLabel(v float64) string {
	v = math.Mod(v+180, 360)
	if v < 0 {
		v += 360
	}
	v -= 180
	switch {
	case v == 0 || v == -180:
		return degrees(math.Abs(v))
	case v > 0:
		return degrees(v) + "E"
	}
	return degrees(-v) + "W"
}

// LatLabel formats latitude v for a map axis, such as "30°N".
func LatLabel(v float64) string {
	switch {
	case v == 0:
		return degrees(0)
	case v > 0:
		return degrees(v) + "N"
	}
	return degrees(-v) + "S"
}
