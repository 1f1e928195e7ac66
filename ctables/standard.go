// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctables

import "github.com/nmcdev/go-metgraphics/cmap"

// Continuous versions of the NWS standard color curves. The color
// positions are the curve's bins in data units, so uneven bins keep
// their spacing on the colormap.

// Temp returns the temperature curve over -60 to 120 °F by 5.
func Temp() (*cmap.Colormap, error) {
	return segmented("temp", rgb(
		[3]uint8{145, 0, 63}, [3]uint8{206, 18, 86}, [3]uint8{231, 41, 138}, [3]uint8{223, 101, 176},
		[3]uint8{255, 115, 223}, [3]uint8{255, 190, 232}, [3]uint8{255, 255, 255}, [3]uint8{218, 218, 235},
		[3]uint8{188, 189, 220}, [3]uint8{158, 154, 200}, [3]uint8{117, 107, 177}, [3]uint8{84, 39, 143},
		[3]uint8{13, 0, 125}, [3]uint8{13, 61, 156}, [3]uint8{0, 102, 194}, [3]uint8{41, 158, 255},
		[3]uint8{74, 199, 255}, [3]uint8{115, 215, 255}, [3]uint8{173, 255, 255}, [3]uint8{48, 207, 194},
		[3]uint8{0, 153, 150}, [3]uint8{18, 87, 87}, [3]uint8{6, 109, 44}, [3]uint8{49, 163, 84},
		[3]uint8{116, 196, 118}, [3]uint8{161, 217, 155}, [3]uint8{211, 255, 190}, [3]uint8{255, 255, 179},
		[3]uint8{255, 237, 160}, [3]uint8{254, 209, 118}, [3]uint8{254, 174, 42}, [3]uint8{253, 141, 60},
		[3]uint8{252, 78, 42}, [3]uint8{227, 26, 28}, [3]uint8{177, 0, 38}, [3]uint8{128, 0, 38},
		[3]uint8{89, 0, 66},
	), cmap.Arange(-60, 121, 5))
}

// Wind returns the wind speed curve over 0 to 140 mph.
func Wind() (*cmap.Colormap, error) {
	return segmented("wind", rgb(
		[3]uint8{16, 63, 120}, [3]uint8{34, 94, 168}, [3]uint8{29, 145, 192}, [3]uint8{65, 182, 196},
		[3]uint8{127, 205, 187}, [3]uint8{180, 215, 158}, [3]uint8{223, 255, 158}, [3]uint8{255, 255, 166},
		[3]uint8{255, 232, 115}, [3]uint8{255, 196, 0}, [3]uint8{255, 170, 0}, [3]uint8{255, 89, 0},
		[3]uint8{255, 0, 0}, [3]uint8{168, 0, 0}, [3]uint8{110, 0, 0}, [3]uint8{255, 190, 232},
		[3]uint8{255, 115, 223},
	), []float64{0, 5, 10, 15, 20, 25, 30, 35, 40, 45, 50, 60, 70, 80, 100, 120, 140})
}

// Dewpoint returns the dew point curve over 0 to 80 °F.
func Dewpoint() (*cmap.Colormap, error) {
	return segmented("dewpoint", rgb(
		[3]uint8{59, 34, 4}, [3]uint8{84, 48, 5}, [3]uint8{140, 82, 10}, [3]uint8{191, 129, 45},
		[3]uint8{204, 168, 84}, [3]uint8{223, 194, 125}, [3]uint8{230, 217, 181}, [3]uint8{211, 235, 231},
		[3]uint8{169, 219, 211}, [3]uint8{114, 184, 173}, [3]uint8{49, 140, 133}, [3]uint8{1, 102, 95},
		[3]uint8{0, 60, 48},
	), []float64{0, 10, 20, 30, 40, 45, 50, 55, 60, 65, 70, 75, 80})
}

// RH returns the relative humidity curve over 5 to 90%.
func RH() (*cmap.Colormap, error) {
	return segmented("rh", rgb(
		[3]uint8{145, 0, 34}, [3]uint8{166, 17, 34}, [3]uint8{189, 46, 36}, [3]uint8{212, 78, 51},
		[3]uint8{227, 109, 66}, [3]uint8{250, 143, 67}, [3]uint8{252, 173, 88}, [3]uint8{254, 216, 132},
		[3]uint8{255, 242, 170}, [3]uint8{230, 244, 157}, [3]uint8{188, 227, 120}, [3]uint8{113, 181, 92},
		[3]uint8{38, 145, 75},
	), []float64{5, 10, 15, 20, 25, 30, 35, 40, 50, 60, 70, 80, 90})
}

// Sky returns the sky cover curve over 0 to 90%.
func Sky() (*cmap.Colormap, error) {
	return segmented("sky", rgb(
		[3]uint8{36, 160, 242}, [3]uint8{78, 176, 242}, [3]uint8{128, 183, 248}, [3]uint8{160, 200, 255},
		[3]uint8{210, 225, 255}, [3]uint8{225, 225, 225}, [3]uint8{201, 201, 201}, [3]uint8{165, 165, 165},
		[3]uint8{110, 110, 110}, [3]uint8{80, 80, 80},
	), cmap.Arange(0, 91, 10))
}

// Gust returns a wind gust table for roughly 0 to 35 m/s, white
// through blue and purple to gold.
func Gust() (*cmap.Colormap, error) {
	return segmented("gust", cmap.RGBFloat(
		[3]float64{1, 1, 1},
		[3]float64{75. / 256, 132. / 256, 181. / 256},
		[3]float64{134. / 256, 1. / 256, 124. / 256},
		[3]float64{184. / 256, 134. / 256, 11. / 256},
	), nil)
}
