// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annotate

import (
	"errors"
	"math"
	"strconv"
)

// A Center is a labeled pressure extremum.
type Center struct {
	Lon, Lat float64
	Value    float64
	// Label is "L" for lows and "H" for highs.
	Label string
}

// Text returns the pressure value as it is printed under the label.
func (c Center) Text() string {
	return strconv.Itoa(int(c.Value))
}

// PressureExtrema finds the sea level pressure lows and highs to label
// on a map. grid[i][j] is the pressure at lats[i], lons[j].
//
// A point is an extremum if it is the minimum (maximum) of the
// window around it, where the window spans about 9.5 degrees of
// latitude and wraps at the grid edges. Extrema too close to the edge
// of the grid, or too close to an extremum already found, are
// dropped. NaNs are ignored.
func PressureExtrema(grid [][]float64, lons, lats []float64) (lows, highs []Center, err error) {
	if len(lats) < 2 || len(lons) < 2 {
		return nil, nil, errors.New("annotate: need at least a 2x2 grid")
	}
	if len(grid) != len(lats) {
		return nil, nil, errors.New("annotate: grid rows do not match latitudes")
	}
	for _, row := range grid {
		if len(row) != len(lons) {
			return nil, nil, errors.New("annotate: grid columns do not match longitudes")
		}
	}
	res := math.Abs(lats[1] - lats[0])
	window := max(1, int(9.5/res))

	mn := windowFilter(grid, window, math.Min, math.Inf(1))
	mx := windowFilter(grid, window, math.Max, math.Inf(-1))

	xmin, xmax := bounds(lons)
	ymin, ymax := bounds(lats)
	offset := 0.022 * (ymax - ymin)
	inside := func(x, y float64) bool {
		return x > xmin+offset && x < xmax-offset && y > ymin+offset && y < ymax-offset
	}

	var lowPts, highPts []Center
	for i, row := range grid {
		for j, v := range row {
			if math.IsNaN(v) || !inside(lons[j], lats[i]) {
				continue
			}
			if v == mn[i][j] {
				lowPts = append(lowPts, Center{lons[j], lats[i], v, "L"})
			}
			if v == mx[i][j] {
				highPts = append(highPts, Center{lons[j], lats[i], v, "H"})
			}
		}
	}
	return thin(lowPts, offset), thin(highPts, offset), nil
}

// thin drops centers within dmin of a center kept before them.
func thin(cs []Center, dmin float64) []Center {
	var kept []Center
next:
	for _, c := range cs {
		for _, k := range kept {
			if math.Hypot(c.Lon-k.Lon, c.Lat-k.Lat) <= dmin {
				continue next
			}
		}
		kept = append(kept, c)
	}
	return kept
}

func bounds(xs []float64) (lo, hi float64) {
	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		lo, hi = math.Min(lo, x), math.Max(hi, x)
	}
	return lo, hi
}

// windowFilter applies op over a size×size window around each point,
// wrapping at the edges. The window covers offsets -size/2 through
// size-1-size/2. NaNs are skipped.
func windowFilter(grid [][]float64, size int, op func(a, b float64) float64, identity float64) [][]float64 {
	ny, nx := len(grid), len(grid[0])
	lo := -(size / 2)
	hi := size - 1 + lo
	wrap := func(i, n int) int { return ((i % n) + n) % n }

	// The window is separable: filter rows, then columns.
	rows := make([][]float64, ny)
	for i, row := range grid {
		rows[i] = make([]float64, nx)
		for j := range row {
			acc := identity
			for d := lo; d <= hi; d++ {
				if v := row[wrap(j+d, nx)]; !math.IsNaN(v) {
					acc = op(acc, v)
				}
			}
			rows[i][j] = acc
		}
	}
	out := make([][]float64, ny)
	for i := range out {
		out[i] = make([]float64, nx)
		for j := range out[i] {
			acc := identity
			for d := lo; d <= hi; d++ {
				acc = op(acc, rows[wrap(i+d, ny)][j])
			}
			out[i][j] = acc
		}
	}
	return out
}
