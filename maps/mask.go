// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maps

import (
	"errors"
	"fmt"
	"math"

	"github.com/ctessum/geom"
)

// Inside reports, for every grid point, whether it lies within one of
// the polygons of outline. The result is indexed [lat][lon]. Points on
// a polygon's edge count as inside. Features that are not polygons
// are ignored.
func Inside(lons, lats []float64, outline []*Feature) ([][]bool, error) {
	var polys []geom.Polygonal
	var boxes []*geom.Bounds
	for _, f := range outline {
		if p, ok := f.Geom.(geom.Polygonal); ok {
			polys = append(polys, p)
			boxes = append(boxes, p.Bounds())
		}
	}
	if len(polys) == 0 {
		return nil, errors.New("maps: outline has no polygons")
	}
	in := make([][]bool, len(lats))
	for j, lat := range lats {
		in[j] = make([]bool, len(lons))
		for i, lon := range lons {
			pt := geom.Point{X: lon, Y: lat}
			for k, p := range polys {
				b := boxes[k]
				if lon < b.Min.X || lon > b.Max.X || lat < b.Min.Y || lat > b.Max.Y {
					continue
				}
				if pt.Within(p) != geom.Outside {
					in[j][i] = true
					break
				}
			}
		}
	}
	return in, nil
}

// Mask returns a copy of grid with NaN at every point outside
// outline. grid[j][i] is the value at lons[i], lats[j].
func Mask(grid [][]float64, lons, lats []float64, outline []*Feature) ([][]float64, error) {
	if len(grid) != len(lats) {
		return nil, fmt.Errorf("maps: grid has %d rows for %d latitudes", len(grid), len(lats))
	}
	for j, row := range grid {
		if len(row) != len(lons) {
			return nil, fmt.Errorf("maps: grid row %d has %d values for %d longitudes", j, len(row), len(lons))
		}
	}
	in, err := Inside(lons, lats, outline)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, len(grid))
	for j, row := range grid {
		out[j] = make([]float64, len(row))
		for i, v := range row {
			if !in[j][i] {
				v = math.NaN()
			}
			out[j][i] = v
		}
	}
	return out, nil
}
