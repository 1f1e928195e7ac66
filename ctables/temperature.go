// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctables

import (
	"github.com/nmcdev/go-metgraphics/cmap"
)

// TemperatureNWS returns the continuous surface temperature
// colormap (°C). Repeated positions at 0, 5, 20 and 30 °C make sharp
// color steps.
func TemperatureNWS(pos []float64) (*cmap.Colormap, error) {
	colors := rgb(
		[3]uint8{61, 2, 57}, [3]uint8{250, 0, 252}, [3]uint8{9, 0, 121},
		[3]uint8{94, 157, 248}, [3]uint8{46, 94, 127}, [3]uint8{6, 249, 251},
		[3]uint8{254, 254, 254}, [3]uint8{32, 178, 170}, [3]uint8{11, 244, 11},
		[3]uint8{0, 97, 3}, [3]uint8{173, 255, 47}, [3]uint8{254, 254, 0},
		[3]uint8{255, 140, 0}, [3]uint8{255, 99, 61}, [3]uint8{90, 3, 3},
		[3]uint8{253, 253, 253})
	def := []float64{-45, -30, -20, -10, -5, 0, 0, 5, 5, 10, 20, 20, 30, 30, 40, 45}
	return segmented("temperature_nws", colors, or(pos, def))
}

// TemperatureTrendNWS returns the 24 hour temperature change table
// (°C), finest near zero.
func TemperatureTrendNWS(pos []float64) (*cmap.Colormap, *cmap.BoundaryNorm, error) {
	colors := hex(
		"#Fcdcf7", "#F795E7", "#F378E0", "#F059D8", "#EC2ACE",
		"#C022A8", "#A01F8C", "#811C70", "#6B195E", "#54154B",
		"#342799", "#402FA8", "#4A40BB", "#6E60D0", "#7E6EDF",
		"#9D89F3", "#BCB0F7", "#DDDDFE", "#DDDDFE", "#B2F8B0",
		"#94F397", "#78F384", "#56EE6C", "#42CE5A", "#2EB045",
		"#249C3B", "#2562C6", "#2C6CDF", "#4492EB", "#54A1EB",
		"#78B5F2", "#94CEF4", "#B2EEF6", "#FFFFFF", "#FDFCFC",
		"#FDFFB1", "#FDE099", "#FDC083", "#FDA56D", "#FD8858",
		"#FC6D46", "#FB5337", "#E5372A", "#CD3126", "#B72B22",
		"#A0251F", "#8C1F1B", "#761A18", "#621215", "#4E0F12",
		"#624039", "#74524A", "#88645C", "#9C766E", "#B08880",
		"#C49C94", "#DDBAB2", "#EEDAD0", "#F8EEE4", "#FDE4E4",
		"#FDC4C6", "#F29E9E", "#E28082", "#DD6466", "#DD6466",
		"#BF4345", "#AE3335")
	a := cmap.Arange
	levels := or(pos, cmap.Concat(
		a(-42, -18, 2), a(-18, -3, 1), a(-3, 0, 0.5),
		a(0.5, 3, 0.5), a(3, 18, 1), a(18, 43, 2)))
	return discrete("temperature_trend_nws", levels, colors, cmap.Both)
}

// HighTemperatureNWS returns the continuous upper-air temperature
// colormap (°C).
func HighTemperatureNWS(pos []float64) (*cmap.Colormap, error) {
	colors := hex(
		"#EDC4EF", "#F25AB1", "#F31E83", "#EA2283", "#C6478D",
		"#BD68B4", "#6C429B", "#CACEEB", "#484BB0", "#387DF0",
		"#1FFBFD", "#66EAAE", "#159929", "#FDFE89", "#F09450",
		"#BF231B", "#A83750", "#E27185", "#F5B3F0", "#9550AA")
	def := []float64{-60, -50, -40, -35, -30, -25, -20, -15, -10, -5, 0,
		0, 5, 10, 15, 20, 25, 30, 35, 40}
	return segmented("high_temperature_nws", colors, or(pos, def))
}

// HighThermalTemperatureNWS returns the continuous potential and
// equivalent potential temperature colormap (K).
func HighThermalTemperatureNWS(pos []float64) (*cmap.Colormap, error) {
	colors := hex(
		"#996035", "#F2DACD", "#1E6EC8", "#AAFFFF", "#01F6E2",
		"#00FF00", "#03E19F", "#26BC0D", "#88DB07", "#FFFF13",
		"#FFE100", "#264CFF", "#FF7F00", "#FF0000", "#B5003C",
		"#7F0067", "#9868B4", "#F2EBF5", "#ED00ED")
	def := []float64{250, 270, 280, 285, 290, 295, 300, 305,
		310, 315, 320, 330, 335, 340, 345, 350, 355, 360, 370}
	return segmented("high_thermal_temp_nws", colors, or(pos, def))
}
