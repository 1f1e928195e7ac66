// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctables

import (
	"github.com/nmcdev/go-metgraphics/cmap"
)

// PrecipitationMetPy returns the MetPy precipitation gallery colors.
func PrecipitationMetPy() (*cmap.Colormap, error) {
	return cmap.NewListed("precipitation_metpy", cmap.RGBFloat(
		[3]float64{1.0, 1.0, 1.0},
		[3]float64{0.3137255012989044, 0.8156862854957581, 0.8156862854957581},
		[3]float64{0.0, 1.0, 1.0},
		[3]float64{0.0, 0.8784313797950745, 0.501960813999176},
		[3]float64{0.0, 0.7529411911964417, 0.0},
		[3]float64{0.501960813999176, 0.8784313797950745, 0.0},
		[3]float64{1.0, 1.0, 0.0},
		[3]float64{1.0, 0.6274510025978088, 0.0},
		[3]float64{1.0, 0.0, 0.0},
		[3]float64{1.0, 0.125490203499794, 0.501960813999176},
		[3]float64{0.9411764740943909, 0.250980406999588, 1.0},
		[3]float64{0.501960813999176, 0.125490203499794, 1.0},
		[3]float64{0.250980406999588, 0.250980406999588, 1.0},
		[3]float64{0.125490203499794, 0.125490203499794, 0.501960813999176},
		[3]float64{0.125490203499794, 0.125490203499794, 0.125490203499794},
		[3]float64{0.501960813999176, 0.501960813999176, 0.501960813999176},
		[3]float64{0.8784313797950745, 0.8784313797950745, 0.8784313797950745},
		[3]float64{0.9333333373069763, 0.8313725590705872, 0.7372549176216125},
		[3]float64{0.8549019694328308, 0.6509804129600525, 0.47058823704719543},
		[3]float64{0.6274510025978088, 0.42352941632270813, 0.23529411852359772},
		[3]float64{0.4000000059604645, 0.20000000298023224, 0.0},
	))
}

// PrecipitationNWS returns the NWS accumulated precipitation table
// (mm) for an accumulation period of atime hours. 1 and 3 hour
// periods share one set of levels.
func PrecipitationNWS(atime int) (*cmap.Colormap, *cmap.BoundaryNorm, error) {
	var levels []float64
	switch atime {
	case 1, 3:
		levels = []float64{0.01, 1, 2, 3, 4, 6, 8, 10, 15, 20, 30, 40, 60, 80, 100}
	case 6:
		levels = []float64{0.01, 1, 3, 5, 10, 15, 20, 25, 30, 40, 50, 60, 80, 100, 120}
	default:
		levels = []float64{0.1, 2.5, 5, 10, 15, 20, 25, 30, 40, 50, 75, 100, 150, 200, 250}
	}
	colors := hex(
		"#04e9e7", "#019ff4", "#0300f4", "#02fd02",
		"#01c501", "#008e00", "#fdf802", "#e5bc00",
		"#fd9500", "#fd0000", "#d40000", "#bc0000",
		"#f800fd", "#dd1c77", "#9854c6")
	return discrete("precipitation_nws", levels, colors, cmap.Max)
}

// RainNWS returns the rain accumulation table (mm).
func RainNWS(atime int, pos []float64) (*cmap.Colormap, *cmap.BoundaryNorm, error) {
	colors := rgb(
		[3]uint8{144, 238, 144}, [3]uint8{0, 127, 0}, [3]uint8{135, 206, 250},
		[3]uint8{0, 0, 255}, [3]uint8{255, 0, 255}, [3]uint8{127, 0, 0})
	levels := or(pos, byAccumulation(atime,
		[]float64{0.1, 10, 25, 50, 100, 250, 800},
		[]float64{0.1, 4, 13, 25, 60, 120, 800},
		[]float64{0.01, 2, 7, 13, 30, 60, 800}))
	return discrete("rain_nws", levels, colors, cmap.Neither)
}

// QPFNWS returns the quantitative precipitation forecast table (mm).
func QPFNWS(atime int, pos []float64) (*cmap.Colormap, *cmap.BoundaryNorm, error) {
	colors := hex(
		"#FFFFFF", "#BABABA", "#A6A1A1", "#7E7E7E", "#6C6C6C",
		"#B2F8B0", "#94F397", "#56EE6C", "#2EB045", "#249C3B",
		"#2562C6", "#347EE4", "#54A1EB", "#94CEF4", "#B2EEF6",
		"#FDF8B2", "#FDE688", "#FDBC5C", "#FD9E42", "#FB6234",
		"#FB3D2D", "#DD2826", "#BA1B21", "#9F1A1D", "#821519",
		"#624038", "#88645C", "#B08880", "#C49C94", "#F0DAD1",
		"#CBC4D9", "#A99CC1", "#9687B6", "#715C99", "#65538B",
		"#73146F", "#881682", "#AA19A4", "#BB1BB5", "#C61CC0",
		"#D71ECF")
	a := cmap.Arange
	levels := or(pos, byAccumulation(atime,
		cmap.Concat([]float64{0, 0.1, 0.5, 1}, a(2.5, 25, 2.5), a(25, 50, 5), a(50, 150, 10), a(150, 475, 25)),
		cmap.Concat([]float64{0, 0.1, 0.5}, a(1, 4, 1), a(4, 13, 1.5), a(13, 25, 2), a(25, 60, 2.5), a(60, 105, 5)),
		cmap.Concat([]float64{0, 0.01, 0.1}, a(0.5, 2, 0.5), a(2, 8, 1), a(8, 20, 2), a(20, 55, 2.5), a(55, 100, 5))))
	return discrete("qpf_nws", levels, colors, cmap.Max)
}

// Precip returns a continuous precipitation colormap with colors
// placed at 0, 0.01, 0.1 ... 30 inches.
func Precip() (*cmap.Colormap, error) {
	pos := []float64{0, 0.01, 0.1, 0.25, 0.5, 1, 1.5, 2, 3, 4, 6, 8, 10, 15, 20, 30}
	colors := rgb(
		[3]uint8{255, 255, 255}, [3]uint8{199, 233, 192}, [3]uint8{161, 217, 155},
		[3]uint8{116, 196, 118}, [3]uint8{49, 163, 83}, [3]uint8{0, 109, 44},
		[3]uint8{255, 250, 138}, [3]uint8{255, 204, 79}, [3]uint8{254, 141, 60},
		[3]uint8{252, 78, 42}, [3]uint8{214, 26, 28}, [3]uint8{173, 0, 38},
		[3]uint8{112, 0, 38}, [3]uint8{59, 0, 48}, [3]uint8{76, 0, 115},
		[3]uint8{255, 219, 255})
	return segmented("precip", colors, pos)
}

// SleetNWS returns the sleet accumulation table (mm).
func SleetNWS(atime int, pos []float64) (*cmap.Colormap, *cmap.BoundaryNorm, error) {
	colors := rgb(
		[3]uint8{253, 216, 213}, [3]uint8{251, 174, 185}, [3]uint8{247, 109, 163},
		[3]uint8{211, 41, 146}, [3]uint8{146, 1, 122}, [3]uint8{81, 0, 108})
	levels := or(pos, byAccumulation(atime,
		[]float64{0.1, 10, 25, 50, 100, 250},
		[]float64{0.1, 4, 13, 25, 60, 120},
		[]float64{0.1, 2, 7, 13, 30, 60}))
	return discrete("sleet_nws", levels, colors, cmap.Max)
}

// SnowNWS returns the snowfall accumulation table (mm of water).
func SnowNWS(atime int, pos []float64) (*cmap.Colormap, *cmap.BoundaryNorm, error) {
	colors := rgb(
		[3]uint8{234, 234, 234}, [3]uint8{200, 200, 200}, [3]uint8{154, 154, 154},
		[3]uint8{108, 108, 108}, [3]uint8{58, 58, 58}, [3]uint8{6, 6, 6})
	levels := or(pos, byAccumulation(atime,
		[]float64{0.1, 2.5, 5, 10, 20, 30},
		[]float64{0.1, 1, 3, 5, 10, 15},
		[]float64{0.1, 1, 2, 4, 8, 12}))
	return discrete("snow_nws", levels, colors, cmap.Max)
}

// PrecipitationTypeNWS returns the precipitation type table. Type
// codes are 0 none, 1 rain, 3 freezing rain, 5 snow, 6 wet snow,
// 7 sleet and 8 and above ice pellets.
func PrecipitationTypeNWS(pos []float64) (*cmap.Colormap, *cmap.BoundaryNorm, error) {
	colors := hex("#FFFFFF", "#4169E1", "#DC143C", "#708090", "#228B22", "#EE82EE", "#FFD700")
	return discrete("precipitation_type_nws", or(pos, []float64{0, 1, 3, 5, 6, 7, 8}), colors, cmap.Max)
}

// QSFNWS returns the quantitative snowfall forecast table (cm).
func QSFNWS(atime int, pos []float64) (*cmap.Colormap, *cmap.BoundaryNorm, error) {
	colors := hex(
		"#BBBBBB", "#949494", "#6D6D6D", "#4F4F52", "#97D0F6",
		"#76B5FA", "#50A5F1", "#4097EC", "#2F7FE4", "#256AE5",
		"#1C64CA", "#155BBB", "#400A80", "#4F0687", "#5A0888",
		"#6A0785", "#860C83", "#9F0F81", "#C9117C", "#C9117C",
		"#E31B73", "#E31B73", "#F33E96", "#FC5DAD", "#FD6CB1",
		"#F883BA", "#ED8EBF", "#EC93C5", "#EA9ACA", "#D7A8D1",
		"#D3B0D3", "#BFC6DC", "#B3D4E8", "#A5E4E9", "#9BEFF0",
		"#92F9F7", "#90F2F0", "#7ED9D8", "#76B5C6", "#6FBBC3",
		"#7DB5C4", "#7FB2C6", "#89B1CB", "#88ABC8", "#8CA8CB",
		"#91A8D3", "#92A8CF", "#95A0DB", "#98A3D4", "#A19DDE",
		"#A39CD9", "#A99CD2", "#AB95E7", "#AF95ED", "#B394E3",
		"#BA8DE8", "#BA90E8", "#BF8DEC")
	a := cmap.Arange
	levels := or(pos, byAccumulation(atime,
		cmap.Concat([]float64{0.1}, a(0.5, 15, 0.5), a(15, 43, 1)),
		cmap.Concat([]float64{0.1}, a(0.5, 20, 0.5), a(20, 38, 1)),
		cmap.Concat([]float64{0.01}, a(0.5, 25, 0.5), a(25, 33, 1))))
	return discrete("qsf_nws", levels, colors, cmap.Max)
}

// SnowDepthNWS returns the snow depth table (cm).
func SnowDepthNWS(pos []float64) (*cmap.Colormap, *cmap.BoundaryNorm, error) {
	return snowDepth("snow_depth_nws", pos)
}

// SnowDensityNWS returns the snow density table. It has the snow depth
// colors and levels.
func SnowDensityNWS(pos []float64) (*cmap.Colormap, *cmap.BoundaryNorm, error) {
	return snowDepth("snow_density_nws", pos)
}

func snowDepth(name string, pos []float64) (*cmap.Colormap, *cmap.BoundaryNorm, error) {
	colors := hex(
		"#FFFFFF", "#E0E0E0", "#C6C6C6", "#ADADAD", "#949494",
		"#A8E6F0", "#72BDD4", "#3F96B7", "#126F9C", "#0C47AA",
		"#2D63B6", "#4F80C3", "#749ECF", "#99BCDC", "#BFDAE9",
		"#C7ABD7", "#BF93CE", "#B77DC4", "#AE66BC", "#A650B2",
		"#9E3AA9", "#851547", "#942359", "#A4326C", "#B3427E",
		"#C35191", "#D462A4", "#E9A5B5", "#E69A9F", "#E48E8A",
		"#E18175", "#DF7660", "#DC6A4D", "#DA8056", "#DF946C",
		"#E4A781", "#EABB98", "#F0CFB0", "#F5E4C6", "#FAF8DE")
	a := cmap.Arange
	levels := or(pos, cmap.Concat([]float64{0, 0.1, 0.5}, a(1, 12, 1), a(12, 60, 4), a(60, 100, 10), a(100, 1100, 100)))
	return discrete(name, levels, colors, cmap.Max)
}
