// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package maps draws decorated weather maps as SVG.
//
// A Map is built by adding layers to it: shapefile features from a
// FeatureStore, gridded data colored by a palettes.Scheme, gridlines,
// titles and a colorbar. Nothing is written until Write.
package maps

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// An Extent is a longitude/latitude box in degrees.
type Extent struct {
	LonMin, LonMax, LatMin, LatMax float64
}

func (e Extent) String() string {
	return fmt.Sprintf("[%g, %g, %g, %g]", e.LonMin, e.LonMax, e.LatMin, e.LatMax)
}

// Area returns the extent's area in square degrees.
func (e Extent) Area() float64 {
	return math.Abs(e.LonMax-e.LonMin) * math.Abs(e.LatMax-e.LatMin)
}

// Contains reports whether (lon, lat) is inside e, edges included.
func (e Extent) Contains(lon, lat float64) bool {
	return lon >= e.LonMin && lon <= e.LonMax && lat >= e.LatMin && lat <= e.LatMax
}

// DefaultRegion is the name of the region used when none is given.
const DefaultRegion = "中国陆地"

// DefaultExtent is the extent of DefaultRegion.
var DefaultExtent = Extent{73, 136, 15, 56}

var ErrRegion = errors.New("maps: invalid region")

// Regions returns the named regions of China.
func Regions() map[string]Extent {
	return map[string]Extent{
		"中国":    {70, 140, 8, 60},
		"中国陆地":  DefaultExtent,
		"中国及周边": {50, 160, 0, 70},
		"东部海域":  {115, 135, 20, 42},
		"南部海域":  {103, 125, 3, 28},
		"华北":    {103, 129, 30, 50},
		"冬奥":    {114, 118, 39, 42},
		"东北":    {103, 140, 32, 58},
		"华东":    {107, 130, 20, 41},
		"华中":    {100, 123, 22, 42},
		"华南":    {100, 126, 12, 30},
		"西南":    {90, 113, 18, 38},
		"西北":    {89, 115, 27, 47},
		"新疆":    {70, 101, 30, 52},
		"青藏":    {68, 105, 18, 46},
		"河南":    {109.8, 117, 31, 37.5},
		"四川盆地":  {102.5, 110, 27.5, 33},
	}
}

// GlobalRegions returns Regions plus continental and global regions.
func GlobalRegions() map[string]Extent {
	rs := Regions()
	for name, e := range map[string]Extent{
		"全球": {-180, 180, -90, 90},
		"亚洲": {35, 140, 5, 80},
		"东亚": {90, 160, 5, 70},
		"南亚": {65, 135, -10, 35},
		"中亚": {25, 80, 10, 55},
		"欧洲": {-15, 35, 28, 72},
		"非洲": {-20, 55, -40, 40},
		"北美": {220, 305, 10, 65},
		"南美": {270, 330, -58, 14},
		"澳洲": {110, 180, -50, 0},
	} {
		rs[name] = e
	}
	return rs
}

// Region looks up a region by name in GlobalRegions.
func Region(name string) (Extent, error) {
	rs := GlobalRegions()
	if e, ok := rs[name]; ok {
		return e, nil
	}
	names := make([]string, 0, len(rs))
	for n := range rs {
		names = append(names, n)
	}
	sort.Strings(names)
	return Extent{}, fmt.Errorf("%w: %q is not one of %s", ErrRegion, name, strings.Join(names, ","))
}

// CheckRegion validates e. Longitudes must lie within ±360 degrees and
// latitudes within ±90, and each minimum must be below its maximum.
func CheckRegion(e Extent) error {
	if !(e.LonMin >= -360 && e.LonMin <= 360 && e.LonMax >= -360 && e.LonMax <= 360) || e.LonMin >= e.LonMax {
		return fmt.Errorf("%w: longitude range %g to %g", ErrRegion, e.LonMin, e.LonMax)
	}
	if !(e.LatMin >= -90 && e.LatMin <= 90 && e.LatMax >= -90 && e.LatMax <= 90) || e.LatMin >= e.LatMax {
		return fmt.Errorf("%w: latitude range %g to %g", ErrRegion, e.LatMin, e.LatMax)
	}
	return nil
}

// ParseRegion resolves s, which is either a region name or four
// comma-separated numbers "lonmin,lonmax,latmin,latmax". An empty s
// means DefaultExtent.
func ParseRegion(s string) (Extent, error) {
	if s == "" {
		return DefaultExtent, nil
	}
	fs := strings.Split(s, ",")
	if len(fs) != 4 {
		return Region(s)
	}
	var v [4]float64
	for i, f := range fs {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Extent{}, fmt.Errorf("%w: %q: %v", ErrRegion, s, err)
		}
		v[i] = x
	}
	e := Extent{v[0], v[1], v[2], v[3]}
	return e, CheckRegion(e)
}

// DefaultContourThreshold is the area, in square degrees, at which
// RegionContour switches to the coarse interval.
const DefaultContourThreshold = 600

// RegionContour picks a contour setting for a map of extent e: big
// for maps of at least threshold square degrees, small otherwise.
func RegionContour[T any](e *Extent, big, small T, threshold float64) T {
	if e == nil || e.Area() >= threshold {
		return big
	}
	return small
}

// To180 wraps a longitude in degrees to [-180, 180).
func To180(lon float64) float64 {
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}

// To360 wraps a longitude in degrees to [0, 360).
func To360(lon float64) float64 {
	lon = math.Mod(lon, 360)
	if lon < 0 {
		lon += 360
	}
	return lon
}

// AdjustExtent pads e on every side by fraction of its longitude
// span. Negative fractions shrink it, by less than half.
func AdjustExtent(e Extent, fraction float64) (Extent, error) {
	if fraction <= -0.5 {
		return e, fmt.Errorf("maps: pad fraction %g must be larger than -0.5", fraction)
	}
	pad := (e.LonMax - e.LonMin) * fraction
	return Extent{
		LonMin: e.LonMin - pad,
		LonMax: e.LonMax + pad,
		LatMin: math.Max(-90, e.LatMin-pad),
		LatMax: math.Min(90, e.LatMax+pad),
	}, nil
}

// CenterExtent returns the extent centered on (lon, lat) that reaches
// pad degrees in each direction.
func CenterExtent(lon, lat, pad float64) Extent {
	return Extent{
		LonMin: lon - pad,
		LonMax: lon + pad,
		LatMin: math.Max(-90, lat-pad),
		LatMax: math.Min(90, lat+pad),
	}
}
