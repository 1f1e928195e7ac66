// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctables

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/nmcdev/go-metgraphics/cmap"
)

// Attrs are the drawing attributes of a named contour preset. Line
// presets set LineWidths; filled presets set Cmap and Norm.
type Attrs struct {
	Levels     []float64
	LineWidths []float64
	Cmap       *cmap.Colormap
	Norm       *cmap.BoundaryNorm
}

// AttrOptions override a preset's defaults.
type AttrOptions struct {
	// Levels replaces the preset levels if non-nil.
	Levels []float64

	// MinLevel, if non-nil, drops levels (and their colors) below
	// it.
	MinLevel *float64

	// Extend is "neither", "min", "max" or "both". It defaults to
	// "max".
	Extend string

	// Registry supplies the guide tables some presets draw from.
	// Nil means cmap.Default.
	Registry *cmap.Registry
}

// Presets lists the names accepted by PlotAttrs.
var Presets = []string{
	"z_500_contour",
	"nmc_accumulated_rainfall",
	"ecmf_accumulated_rainfall",
	"2m_temperature",
	"qpf_1h_contourf_blues",
	"probability_forecast",
}

// PlotAttrs returns the attributes of the named preset. Names are
// case-insensitive.
func PlotAttrs(name string, opts AttrOptions) (*Attrs, error) {
	ext := opts.Extend
	if ext == "" {
		ext = "max"
	}
	extend, err := cmap.ParseExtend(ext)
	if err != nil {
		return nil, err
	}

	name = strings.ToLower(name)
	var levels []float64
	var colors []color.NRGBA
	switch name {
	case "z_500_contour":
		levels = or(opts.Levels, cmap.Arange(480, 604, 4))
		widths := make([]float64, len(levels))
		for i, l := range levels {
			widths[i] = 1
			if l == 588 {
				widths[i] = 2
			}
		}
		return &Attrs{Levels: levels, LineWidths: widths}, nil

	case "nmc_accumulated_rainfall":
		levels = or(opts.Levels, []float64{0.1, 10, 25, 50, 100, 250, 400, 600, 800, 1000})
		colors = rgb(
			[3]uint8{161, 241, 141}, [3]uint8{61, 186, 61}, [3]uint8{96, 184, 255},
			[3]uint8{0, 0, 255}, [3]uint8{250, 0, 250}, [3]uint8{128, 0, 64},
			[3]uint8{255, 170, 0}, [3]uint8{255, 102, 0}, [3]uint8{230, 0, 0},
			[3]uint8{80, 45, 10})

	case "ecmf_accumulated_rainfall":
		levels = or(opts.Levels, []float64{0.5, 10, 30, 50, 70, 100, 130, 160})
		colors = hex("#a7aaaa", "#5cc8d7", "#3076bc", "#6aaa43",
			"#f5832a", "#ee2f2d", "#8350a0", "#231f20")

	case "qpf_1h_contourf_blues":
		blues, err := cmap.Brewer("Blues")
		if err != nil {
			return nil, err
		}
		cm, err := cmap.Truncate(blues, 0.1, 1, 0)
		if err != nil {
			return nil, err
		}
		return sampled(or(opts.Levels, []float64{0.1, 4, 13, 25, 60, 120, 250}), cm, extend)

	case "probability_forecast":
		reg := opts.Registry
		if reg == nil {
			reg = cmap.Default
		}
		guide, err := reg.Get("cs44")
		if err != nil {
			return nil, fmt.Errorf("ctables: %s: %w", name, err)
		}
		cm, err := cmap.Truncate(guide, 0, 0.95, 0)
		if err != nil {
			return nil, err
		}
		return sampled(or(opts.Levels, []float64{1, 5, 10, 20, 30, 40, 50, 60, 70, 80, 90, 95, 100}), cm, extend)

	case "2m_temperature":
		levels = or(opts.Levels, []float64{-45, -30, -20, -10, -5, 0, 0, 5, 5, 10, 20, 20, 30, 30, 40, 45})
		colors = rgb(
			[3]uint8{61, 2, 57}, [3]uint8{250, 0, 252}, [3]uint8{9, 0, 121},
			[3]uint8{94, 157, 248}, [3]uint8{46, 94, 127}, [3]uint8{6, 249, 251},
			[3]uint8{254, 254, 254}, [3]uint8{32, 178, 170}, [3]uint8{11, 244, 11},
			[3]uint8{0, 97, 3}, [3]uint8{173, 255, 47}, [3]uint8{254, 254, 0},
			[3]uint8{255, 140, 0}, [3]uint8{255, 99, 61}, [3]uint8{90, 3, 3},
			[3]uint8{253, 253, 253})

	default:
		return nil, fmt.Errorf("ctables: unsupported plot attributes %q", name)
	}

	if len(levels) > len(colors) {
		return nil, fmt.Errorf("ctables: %s: %d levels for %d colors: %w", name, len(levels), len(colors), cmap.ErrLength)
	}
	colors = colors[:len(levels)]
	if opts.MinLevel != nil {
		var l2 []float64
		var c2 []color.NRGBA
		for i, l := range levels {
			if l >= *opts.MinLevel {
				l2 = append(l2, l)
				c2 = append(c2, colors[i])
			}
		}
		levels, colors = l2, c2
	}
	cm, norm, err := discrete(name, levels, colors, extend)
	if err != nil {
		return nil, err
	}
	return &Attrs{Levels: levels, Cmap: cm, Norm: norm}, nil
}

// sampled returns filled contour attributes whose bins spread over
// all of cm rather than taking one color each.
func sampled(levels []float64, cm *cmap.Colormap, extend cmap.Extend) (*Attrs, error) {
	norm, err := cmap.NewBoundaryNorm(levels, cm.N(), extend)
	if err != nil {
		return nil, fmt.Errorf("ctables: %s: %w", cm.Name, err)
	}
	return &Attrs{Levels: levels, Cmap: cm, Norm: norm}, nil
}
