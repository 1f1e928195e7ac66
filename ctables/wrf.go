// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctables

import "github.com/nmcdev/go-metgraphics/cmap"

// Precip1 returns the WRF precipitation table.
func Precip1() (*cmap.Colormap, error) { return precip1.colormap("precip1") }

// Snow2 returns the WRF snowfall table.
func Snow2() (*cmap.Colormap, error) { return snow2.colormap("snow2") }

// SurfaceTemp returns the WRF surface temperature table.
func SurfaceTemp() (*cmap.Colormap, error) { return sfcTemp.colormap("sfc_temp") }

// ThetaE returns the equivalent potential temperature table. It uses
// the surface temperature colors.
func ThetaE() (*cmap.Colormap, error) { return sfcTemp.colormap("theta_e") }

// IRSat returns the WRF infrared satellite table.
func IRSat() (*cmap.Colormap, error) { return irSat.colormap("ir_sat") }

// Dewpoint1 returns the WRF dew point table.
func Dewpoint1() (*cmap.Colormap, error) { return dewpoint1.colormap("dewpoint1") }

var precip1 = channels{
	r: [][3]float64{
		{0, 1, 1}, {0.004, 0.914, 0.914}, {0.012, 0.812, 0.812}, {0.02, 0.514, 0.514},
		{0.04, 0.227, 0.227}, {0.06, 0.114, 0.114}, {0.08, 0, 0}, {0.1, 0.012, 0.012},
		{0.12, 0.02, 0.02}, {0.16, 0.031, 0.031}, {0.2, 0.518, 0.518}, {0.24, 1, 1},
		{0.28, 1, 1}, {0.32, 1, 1}, {0.36, 1, 1}, {0.4, 0.702, 0.702},
		{0.5, 0.49, 0.49}, {0.6, 0.294, 0.294}, {0.7, 0.196, 0.196}, {0.8, 0.98, 0.98},
		{1, 1, 1},
	},
	g: [][3]float64{
		{0, 1, 0}, {0.004, 0.8, 0.8}, {0.012, 0.502, 0.502}, {0.02, 0.2, 0.2},
		{0.04, 0, 0}, {0.06, 0, 0}, {0.08, 0, 0}, {0.1, 0.235, 0.235},
		{0.12, 0.467, 0.467}, {0.16, 0.702, 0.702}, {0.2, 0.851, 0.851}, {0.24, 1, 1},
		{0.28, 0.667, 0.667}, {0.32, 0.227, 0.227}, {0.36, 0, 0}, {0.4, 0, 0},
		{0.5, 0, 0}, {0.6, 0, 0}, {0.7, 0, 0}, {0.8, 0.773, 0.773},
		{1, 1, 1},
	},
	b: [][3]float64{
		{0, 1, 1}, {0.004, 0.976, 0.976}, {0.012, 0.875, 0.875}, {0.02, 0.576, 0.576},
		{0.04, 0.69, 0.69}, {0.06, 0.843, 0.843}, {0.08, 1, 1}, {0.1, 0.686, 0.686},
		{0.12, 0.372, 0.372}, {0.16, 0.059, 0.059}, {0.2, 0.031, 0.031}, {0.24, 0, 0},
		{0.28, 0, 0}, {0.32, 0, 0}, {0.36, 0, 0}, {0.4, 0, 0},
		{0.5, 0, 0}, {0.6, 0, 0}, {0.7, 0, 0}, {0.8, 0.98, 0.98},
		{1, 1, 1},
	},
}

var snow2 = channels{
	r: [][3]float64{
		{0, 0.91, 0.91}, {0.06, 0.81, 0.81}, {0.12, 0.51, 0.51}, {0.18, 0.23, 0.23},
		{0.24, 0.11, 0.11}, {0.3, 0, 0}, {0.36, 0.02, 0.02}, {0.42, 0.02, 0.02},
		{0.48, 0.03, 0.03}, {0.54, 0.52, 0.52}, {0.6, 1, 1}, {0.66, 1, 1},
		{0.72, 1, 1}, {0.78, 1, 1}, {0.84, 0.7, 0.7}, {0.9, 0.4, 0.4},
		{1, 0.2, 0.2},
	},
	g: [][3]float64{
		{0, 0.8, 0.8}, {0.06, 0.5, 0.5}, {0.12, 0.2, 0.2}, {0.18, 0, 0},
		{0.24, 0, 0}, {0.3, 0, 0}, {0.36, 0.24, 0.24}, {0.42, 0.47, 0.47},
		{0.48, 0.7, 0.7}, {0.54, 0.85, 0.85}, {0.6, 1, 1}, {0.66, 0.67, 0.67},
		{0.72, 0.33, 0.33}, {0.78, 0, 0}, {0.84, 0, 0}, {0.9, 0, 0},
		{1, 0, 0},
	},
	b: [][3]float64{
		{0, 0.98, 0.98}, {0.06, 0.87, 0.87}, {0.12, 0.58, 0.58}, {0.18, 0.69, 0.69},
		{0.24, 0.84, 0.84}, {0.3, 1, 1}, {0.36, 0.69, 0.69}, {0.42, 0.37, 0.37},
		{0.48, 0.06, 0.06}, {0.54, 0.03, 0.03}, {0.6, 0, 0}, {0.66, 0, 0},
		{0.72, 0, 0}, {0.78, 0, 0}, {0.84, 0, 0}, {0.9, 0, 0},
		{1, 0, 0},
	},
}

var sfcTemp = channels{
	r: [][3]float64{
		{0, 0.2, 0.2}, {0.08, 0.4, 0.4}, {0.17, 0.27, 0.27}, {0.25, 0.8, 0.8},
		{0.33, 0.2, 0.2}, {0.42, 0.2, 0.2}, {0.5, 0, 0}, {0.58, 0.99, 0.99},
		{0.67, 1, 1}, {0.75, 0.82, 0.82}, {0.83, 0.53, 0.53}, {0.92, 0.95, 0.95},
		{1, 1, 1},
	},
	g: [][3]float64{
		{0, 0.2, 0.2}, {0.08, 0.4, 0.4}, {0.17, 0, 0}, {0.25, 0.6, 0.6},
		{0.33, 0.4, 0.4}, {0.42, 0.6, 0.6}, {0.5, 0.39, 0.39}, {0.58, 0.76, 0.76},
		{0.67, 0.36, 0.36}, {0.75, 0.02, 0.02}, {0.83, 0, 0}, {0.92, 0.03, 0.03},
		{1, 0.6, 0.6},
	},
	b: [][3]float64{
		{0, 0.6, 0.6}, {0.08, 0.6, 0.6}, {0.17, 0.65, 0.65}, {0.25, 1, 1},
		{0.33, 1, 1}, {0.42, 0.4, 0.4}, {0.5, 0.07, 0.07}, {0.58, 0.02, 0.02},
		{0.67, 0, 0}, {0.75, 0.01, 0.01}, {0.83, 0, 0}, {0.92, 0.52, 0.52},
		{1, 0.8, 0.8},
	},
}

var irSat = channels{
	r: [][3]float64{
		{0, 1, 0.294}, {0.067, 1, 1}, {0.133, 0.804, 0.804}, {0.2, 0.369, 0.369},
		{0.267, 0.627, 0.627}, {0.333, 0.804, 0.804}, {0.4, 1, 1}, {0.567, 0, 0},
		{0.667, 0.4, 0.4}, {0.7, 0.596, 0.596}, {0.8, 0, 0}, {0.867, 0.416, 0.416},
		{0.933, 0.804, 0.804}, {1, 0.294, 0.294},
	},
	g: [][3]float64{
		{0, 1, 0}, {0.067, 0, 0}, {0.133, 0.361, 0.361}, {0.2, 0.149, 0.149},
		{0.267, 0.322, 0.322}, {0.333, 0.584, 0.584}, {0.4, 0.757, 0.757}, {0.567, 0.392, 0.392},
		{0.667, 0.804, 0.804}, {0.7, 0.961, 0.961}, {0.8, 0, 0}, {0.867, 0.353, 0.353},
		{0.933, 0, 0}, {1, 0, 0},
	},
	b: [][3]float64{
		{0, 1, 1}, {0.067, 0, 0}, {0.133, 0.36, 0.36}, {0.2, 0.07, 0.07},
		{0.267, 0.176, 0.176}, {0.333, 0.047, 0.047}, {0.4, 0.145, 0.145}, {0.567, 0, 0},
		{0.667, 0.667, 0.667}, {0.7, 1, 1}, {0.8, 0.502, 0.502}, {0.867, 0.804, 0.804},
		{0.933, 0.804, 0.804}, {1, 0.51, 0.51},
	},
}

var dewpoint1 = channels{
	r: [][3]float64{
		{0, 0.6, 0.6}, {0.35, 0.7, 0.7}, {0.4, 0.8, 0.8}, {0.45, 0.9, 0.9},
		{0.5, 1, 1}, {0.55, 0.9, 0.9}, {0.6, 0.76, 0.76}, {0.7, 0.64, 0.64},
		{0.75, 0.52, 0.52}, {0.85, 0.42, 0.42}, {1, 0.32, 0.32},
	},
	g: [][3]float64{
		{0, 0.33, 0.33}, {0.35, 0.44, 0.44}, {0.4, 0.56, 0.56}, {0.45, 0.69, 0.69},
		{0.5, 0.85, 0.85}, {0.55, 1, 1}, {0.6, 0.9, 0.9}, {0.7, 0.8, 0.8},
		{0.75, 0.7, 0.7}, {0.85, 0.6, 0.6}, {1, 0.5, 0.5},
	},
	b: [][3]float64{
		{0, 0.06, 0.06}, {0.35, 0.17, 0.17}, {0.4, 0.32, 0.32}, {0.45, 0.49, 0.49},
		{0.5, 0.7, 0.7}, {0.55, 0.7, 0.7}, {0.6, 0.49, 0.49}, {0.7, 0.32, 0.32},
		{0.75, 0.17, 0.17}, {0.85, 0.06, 0.06}, {1, 0.05, 0.05},
	},
}
