// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palettes

import (
	"fmt"
	"image/color"

	"github.com/nmcdev/go-metgraphics/cmap"
)

// Probability returns the ensemble probability scheme, 0 to 1 in
// steps of 0.05.
func Probability() (*Scheme, error) {
	s := newScheme("Probability", "", hex(
		"#ffffff", "#d7e3ee", "#b5caff", "#8fb3ff", "#7f97ff", "#abcf63",
		"#e8f59e", "#fffa14", "#ffd121", "#ffa30a", "#ff4c00",
	), cmap.Arange(0, 1.06, 0.05), cmap.Neither)
	s.Label = s.Name
	s.Ticks = every(s.Bounds, 2)
	return done(s, s.segmented(2*len(s.Colors)))
}

// Vorticity returns the absolute vorticity scheme in 10⁻⁵ s⁻¹. Bins
// from -8 to 0 are purple, 0 to 8 is white and 8 to 45 run from
// yellow to red.
func Vorticity() (*Scheme, error) {
	bupu, err := cmap.Brewer("BuPu")
	if err != nil {
		return nil, err
	}
	ylorrd, err := cmap.Brewer("YlOrRd")
	if err != nil {
		return nil, err
	}
	bounds := cmap.Concat(cmap.Arange(-8, 1, 1), cmap.Arange(8, 46, 1))
	var colors []color.NRGBA
	colors = append(colors, bupu.Sample(0.5, 0.75, 8)...)
	colors = append(colors, color.NRGBA{255, 255, 255, 255})
	colors = append(colors, ylorrd.Sample(0, 1, len(bounds)-10)...)

	s := newScheme("Absolute Vorticity", "10⁻⁵ s⁻¹", colors, bounds, cmap.Neither)
	cm, err := cmap.NewListed("vorticity", colors)
	if err != nil {
		return nil, err
	}
	norm, err := cmap.NewBoundaryNorm(bounds, cm.N(), s.Extend)
	if err != nil {
		return nil, fmt.Errorf("palettes: %s: %w", s.Name, err)
	}
	s.Cmap, s.Norm = cm, norm
	return s, nil
}

// ObservationImpact returns the observation impact scheme for
// forecast sensitivity data in [vmin, vmax]: greens for negative
// impact, a cream band, and pinks for positive impact.
func ObservationImpact(vmin, vmax float64) (*Scheme, error) {
	if vmax <= vmin {
		return nil, fmt.Errorf("palettes: observation impact range [%g, %g] is empty", vmin, vmax)
	}
	greens, err := cmap.Brewer("Greens")
	if err != nil {
		return nil, err
	}
	rdpu, err := cmap.Brewer("RdPu")
	if err != nil {
		return nil, err
	}
	var colors []color.NRGBA
	colors = append(colors, cmap.Reversed(greens).Sample(0, 0.8, 128)...)
	colors = append(colors, hex("#fffcf2", "#fffcf2", "#fffcf2")...)
	colors = append(colors, rdpu.Sample(0.2, 1, 127)...)

	s := newScheme("Observation Impact", "", colors, []float64{vmin, vmax}, cmap.Neither)
	s.Label = s.Name
	cm, err := cmap.NewListed("obimp", colors)
	if err != nil {
		return nil, err
	}
	s.Cmap, s.Norm = cm, cmap.LinearNorm{Vmin: vmin, Vmax: vmax}
	return s, nil
}

// TerrainOptions configure the terrain scheme. Heights are in meters.
type TerrainOptions struct {
	// Water adds ocean colors below WaterThreshold, down to
	// OceanBottom.
	Water          bool
	WaterThreshold float64
	OceanBottom    float64
	LandTop        float64

	// Land picks one of the built-in land color ramps, 1 to 3.
	// LandColors and LandPositions, if set, replace it.
	Land          int
	LandColors    []string
	LandPositions []float64
}

// DefaultTerrain colors water below -99 m so land below sea level is
// not drawn as ocean.
var DefaultTerrain = TerrainOptions{
	Water:          true,
	WaterThreshold: -99,
	OceanBottom:    -500,
	LandTop:        3650,
	Land:           1,
}

var landRamps = map[int]struct {
	colors []string
	pos    []float64
}{
	1: {
		[]string{"yellowgreen", "darkgreen", "forestgreen", "wheat", "tan", "sienna", "snow"},
		[]float64{0, 0.03, 0.08, 0.45, 0.60, 0.95, 1},
	},
	2: {
		[]string{"#ffad7d", "#b46f46", "#6b3d22"},
		[]float64{0, 0.5, 1},
	},
	3: {
		[]string{"#f8b893", "#c0784f", "#97674c", "#6b3d22", "#dadada"},
		[]float64{0, 0.4, 0.6, 0.85, 1},
	},
}

// Terrain returns the terrain height scheme. With water, the ocean
// ramp fills the lower half of the colormap and WaterThreshold maps
// to its middle.
func Terrain(opts TerrainOptions) (*Scheme, error) {
	names, pos := opts.LandColors, opts.LandPositions
	if names == nil {
		ramp, ok := landRamps[opts.Land]
		if !ok {
			return nil, fmt.Errorf("palettes: unknown land color scheme %d, want 1, 2 or 3", opts.Land)
		}
		names, pos = ramp.colors, ramp.pos
	}
	landColors, err := cmap.ParseColors(names)
	if err != nil {
		return nil, err
	}
	land, err := cmap.FromList("land", landColors, pos, cmap.DefaultN)
	if err != nil {
		return nil, err
	}
	if opts.LandTop <= opts.WaterThreshold {
		return nil, fmt.Errorf("palettes: land top %g not above water threshold %g", opts.LandTop, opts.WaterThreshold)
	}

	var all []color.NRGBA
	var norm cmap.Norm = cmap.LinearNorm{Vmin: opts.WaterThreshold, Vmax: opts.LandTop}
	bounds := []float64{opts.WaterThreshold, opts.LandTop}
	if opts.Water {
		if opts.OceanBottom >= opts.WaterThreshold {
			return nil, fmt.Errorf("palettes: ocean bottom %g not below water threshold %g", opts.OceanBottom, opts.WaterThreshold)
		}
		ocean, err := cmap.FromList("ocean", hex("mediumblue", "deepskyblue", "#97b6e1"), []float64{0, 0.8, 1}, cmap.DefaultN)
		if err != nil {
			return nil, err
		}
		all = ocean.Colors()
		norm = cmap.MidpointNormalize{Vmin: opts.OceanBottom, Midpoint: opts.WaterThreshold, Vmax: opts.LandTop}
		bounds = []float64{opts.OceanBottom, opts.WaterThreshold, opts.LandTop}
	}
	all = append(all, land.Colors()...)

	s := newScheme("Terrain Height", "m", all, bounds, cmap.Neither)
	return done(s, s.continuous(norm))
}

// A NamedColor is a color with a human name.
type NamedColor struct {
	Name  string
	Color color.NRGBA
}

var simpleColors = []struct {
	name, hex string
	// level is the share of viewers, in percent, who can tell the
	// color apart from the others at the same level.
	level float64
}{
	{"Red", "#e6194b", 99},
	{"Green", "#3cb44b", 99},
	{"Yellow", "#ffe119", 100},
	{"Blue", "#4363d8", 100},
	{"Orange", "#f58231", 99.99},
	{"Purple", "#911eb4", 95},
	{"Cyan", "#42d4f4", 99},
	{"Magenta", "#f032e6", 99},
	{"Lime", "#bfef45", 95},
	{"Pink", "#fabed4", 99},
	{"Teal", "#469990", 99},
	{"Lavender", "#dcbeff", 99.99},
	{"Brown", "#9a6324", 99},
	{"Beige", "#fffac8", 99},
	{"Maroon", "#800000", 99.99},
	{"Mint", "#aaffc3", 99},
	{"Olive", "#808000", 95},
	{"Apricot", "#ffd8b1", 95},
	{"Navy", "#000075", 99.99},
	{"Grey", "#a9a9a9", 100},
	{"White", "#ffffff", 100},
	{"Black", "#000000", 100},
}

// SimpleColors returns up to 20 distinct colors plus black and white,
// for cycling through lines. accessibility is the fraction of viewers
// who must be able to tell the colors apart: 0.95 gives all 22, 0.99
// gives 18, 0.9999 gives 9 and 1 gives 5.
func SimpleColors(accessibility float64) []NamedColor {
	var level float64
	switch {
	case accessibility >= 1:
		level = 100
	case accessibility >= 0.9999:
		level = 99.99
	case accessibility >= 0.99:
		level = 99
	default:
		level = 95
	}
	var out []NamedColor
	for _, c := range simpleColors {
		if c.level >= level {
			out = append(out, NamedColor{c.name, cmap.MustParseColor(c.hex)})
		}
	}
	return out
}
