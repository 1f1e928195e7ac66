// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctables

import "github.com/nmcdev/go-metgraphics/cmap"

// Satellite brightness temperature tables. Each runs from warm at 0 to
// cold at 1 with sharp steps at the enhancement thresholds.

// IREnhancement returns the longwave infrared enhancement table.
func IREnhancement() (*cmap.Colormap, error) {
	return irEnhancement.colormap("ir_enhancement")
}

// IREnhancement1 returns a second longwave infrared enhancement table.
func IREnhancement1() (*cmap.Colormap, error) {
	return irEnhancement1.colormap("ir_enhancement1")
}

// IREnhancement2 returns the shortwave infrared enhancement table. It
// shares its colors with IREnhancement1.
func IREnhancement2() (*cmap.Colormap, error) {
	return irEnhancement1.colormap("ir_enhancement2")
}

// WVEnhancement returns the water vapor enhancement table.
func WVEnhancement() (*cmap.Colormap, error) {
	return wvEnhancement.colormap("wv_enhancement")
}

var irEnhancement = channels{
	r: [][3]float64{
		{0, 0.1, 0.1}, {0.052, 0.07, 0.07}, {0.055, 0.004, 0.004}, {0.113, 0.004, 0.004},
		{0.116, 0.85, 0.85}, {0.162, 0.02, 0.2}, {0.165, 0, 0}, {0.229, 0.047, 0.047},
		{0.232, 0, 0}, {0.297, 0, 0}, {0.3, 0.55, 0.55}, {0.355, 0.95, 0.95},
		{0.358, 0.93, 0.93}, {0.416, 0.565, 0.565}, {0.419, 0.373, 0.373}, {0.483, 0.97, 0.97},
		{0.485, 0.98, 0.98}, {1, 0, 0},
	},
	g: [][3]float64{
		{0, 0, 0}, {0.052, 0, 0}, {0.055, 0, 0}, {0.113, 0, 0},
		{0.116, 0.85, 0.85}, {0.162, 0, 0}, {0.165, 0.435, 0.435}, {0.229, 0.97, 0.97},
		{0.232, 0.37, 0.37}, {0.297, 0.78, 0.78}, {0.3, 0, 0}, {0.355, 0, 0},
		{0.358, 0, 0}, {0.416, 0, 0}, {0.419, 0.357, 0.357}, {0.483, 0.95, 0.95},
		{0.485, 0.98, 0.98}, {1, 0, 0},
	},
	b: [][3]float64{
		{0, 0.04, 0.04}, {0.052, 0.467, 0.467}, {0.055, 0.4, 0.4}, {0.113, 0.97, 0.97},
		{0.116, 0.85, 0.85}, {0.162, 0, 0}, {0.165, 0, 0}, {0.229, 0, 0},
		{0.232, 0.816, 0.816}, {0.297, 0.565, 0.565}, {0.3, 0.55, 0.55}, {0.355, 0.97, 0.97},
		{0.358, 0, 0}, {0.416, 0, 0}, {0.419, 0, 0}, {0.483, 0, 0},
		{0.486, 0.98, 0.98}, {1, 0, 0},
	},
}

var irEnhancement1 = channels{
	r: [][3]float64{
		{0, 0, 0}, {0.001, 1, 1}, {0.107, 1, 1}, {0.113, 0.498, 0.498},
		{0.173, 1, 1}, {0.179, 0.902, 0.902}, {0.227, 0.102, 0.102}, {0.233, 0, 0},
		{0.287, 0.902, 0.902}, {0.293, 1, 1}, {0.346, 1, 1}, {0.352, 1, 1},
		{0.406, 0.101, 0.101}, {0.412, 0, 0}, {0.481, 0, 0}, {0.484, 0, 0},
		{0.543, 0, 0}, {0.546, 0.773, 0.773}, {0.994, 0.012, 0.012}, {0.997, 0.004, 0.004},
		{1, 0, 0},
	},
	g: [][3]float64{
		{0, 0, 0}, {0.001, 1, 1}, {0.107, 1, 1}, {0.113, 0, 0},
		{0.173, 0.498, 0.498}, {0.179, 0.902, 0.902}, {0.227, 0.102, 0.102}, {0.233, 0, 0},
		{0.287, 0, 0}, {0.293, 0, 0}, {0.346, 0.902, 0.902}, {0.352, 1, 1},
		{0.406, 1, 1}, {0.412, 1, 1}, {0.481, 0, 0}, {0.484, 0, 0},
		{0.543, 1, 1}, {0.546, 0.773, 0.773}, {0.994, 0.012, 0.012}, {0.997, 0.004, 0.004},
		{1, 0, 0},
	},
	b: [][3]float64{
		{0, 0, 0}, {0.001, 1, 1}, {0.107, 0, 0}, {0.113, 0.498, 0.498},
		{0.173, 0.786, 0.786}, {0.179, 0.902, 0.902}, {0.227, 0.102, 0.102}, {0.233, 0, 0},
		{0.287, 0, 0}, {0.293, 0, 0}, {0.346, 0, 0}, {0.352, 0, 0},
		{0.406, 0, 0}, {0.412, 0, 0}, {0.481, 0.451, 0.451}, {0.484, 0.451, 0.451},
		{0.543, 1, 1}, {0.546, 0.773, 0.773}, {0.994, 0.012, 0.012}, {0.997, 0.004, 0.004},
		{1, 0, 0},
	},
}

var wvEnhancement = channels{
	r: [][3]float64{
		{0, 0, 0}, {0.29, 0.263, 0.263}, {0.385, 1, 1}, {0.475, 0.443, 0.443},
		{0.515, 0, 0}, {0.575, 1, 1}, {0.664, 1, 1}, {1, 0, 0},
	},
	g: [][3]float64{
		{0, 0, 0}, {0.29, 0.513, 0.513}, {0.385, 1, 1}, {0.475, 0.443, 0.443},
		{0.515, 0, 0}, {0.575, 1, 1}, {0.664, 0, 0}, {1, 0, 0},
	},
	b: [][3]float64{
		{0, 0, 0}, {0.29, 0.137, 0.137}, {0.385, 1, 1}, {0.475, 0.694, 0.694},
		{0.515, 0.451, 0.451}, {0.552, 0, 0}, {0.664, 0, 0}, {1, 0, 0},
	},
}
