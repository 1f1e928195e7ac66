// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctables

import (
	"github.com/nmcdev/go-metgraphics/cmap"
)

// WindSpeedNWS returns the continuous 10 m wind speed colormap (m/s)
// with steps at the Beaufort force 3, 5, 7, 9 and 11 limits.
func WindSpeedNWS(pos []float64) (*cmap.Colormap, error) {
	colors := rgb(
		[3]uint8{255, 255, 255}, [3]uint8{99, 99, 99}, [3]uint8{28, 99, 207},
		[3]uint8{177, 238, 239}, [3]uint8{60, 206, 77}, [3]uint8{197, 254, 189},
		[3]uint8{251, 249, 173}, [3]uint8{163, 14, 19}, [3]uint8{95, 61, 54},
		[3]uint8{221, 186, 177}, [3]uint8{241, 218, 209}, [3]uint8{209, 83, 80})
	def := []float64{0, 3.6, 3.6, 10.8, 10.8, 17.2, 17.2, 24.5, 24.5, 32.7, 32.7, 42}
	return segmented("wind_speed_nws", colors, or(pos, def))
}

// HighWindSpeedNWS returns the upper-air wind speed table (m/s). With
// nil pos the 32 levels are start, start+step, ... Typical custom
// levels by pressure level are:
//
//	925 hPa: 4..21 by 1, 22..36 by 2, 38..58 by 4
//	500 hPa: 18..35 by 1, 36..48 by 2, 50..80 by 5
//	200 hPa: 24..46 by 2, 48..124 by 4
func HighWindSpeedNWS(start, step float64, pos []float64) (*cmap.Colormap, *cmap.BoundaryNorm, error) {
	colors := hex(
		"#DEEBF7", "#B7EBFA", "#91D1F5", "#52A2EF", "#2F80E2",
		"#1F61D0", "#41AB5D", "#3ECE4D", "#54EE60", "#76F678",
		"#B4F8B1", "#C6FDBC", "#FDF6B2", "#FDE687", "#F7BD50",
		"#FC6123", "#FB5E24", "#F73A1E", "#E21D19", "#C11015",
		"#9D0E11", "#633B33", "#785144", "#8C645A", "#B48A82",
		"#DFBDB5", "#F1DBD4", "#FDC4C5", "#F0A1A4", "#E67F81",
		"#DB6464", "#D75052")
	return discrete("high_wind_speed_nws", or(pos, steps(start, step, len(colors))), colors, cmap.Max)
}

// steps returns n levels start, start+step, ...
func steps(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}
