// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctables

import "github.com/nmcdev/go-metgraphics/cmap"

// Rain1 returns a green ramp for rain rates.
func Rain1() (*cmap.Colormap, error) { return rain1.colormap("rain1") }

// Snow1 returns a blue ramp for snow rates.
func Snow1() (*cmap.Colormap, error) { return snow1.colormap("snow1") }

// MixPrecip1 returns a red ramp for mixed precipitation rates.
func MixPrecip1() (*cmap.Colormap, error) { return mixPrecip1.colormap("mix_precip1") }

// Grays returns a white to near-black ramp.
func Grays() (*cmap.Colormap, error) { return grays.colormap("grays") }

// Reflect returns a 15 step radar reflectivity table.
func Reflect() (*cmap.Colormap, error) { return reflectivity.colormap("reflect") }

// BWIRSat returns a white to black infrared table.
func BWIRSat() (*cmap.Colormap, error) { return bwIRSat.colormap("bw_ir_sat") }

// RdBuWH returns a blue to red diverging table with a white band in
// the middle.
func RdBuWH() (*cmap.Colormap, error) { return rdBuWH.colormap("RdBuWH") }

// RdBuFloat returns a blue, white, red table for data in [lo, hi]
// whose white falls at zero.
func RdBuFloat(lo, hi float64) (*cmap.Colormap, error) {
	return aroundZero("RdBu_float", lo, hi, rdBuBelow, rdBuAbove)
}

// PkBlFloat returns a pink to blue table for data in [lo, hi] whose
// white falls at zero.
func PkBlFloat(lo, hi float64) (*cmap.Colormap, error) {
	return aroundZero("PkBl_float", lo, hi, pkBlBelow, pkBlAbove)
}

// PuRdBlFloat returns a purple-red to blue table for data in [lo, hi]
// whose lightest colors fall at zero.
func PuRdBlFloat(lo, hi float64) (*cmap.Colormap, error) {
	return aroundZero("PuRdBl_float", lo, hi, puRdBlBelow, puRdBlAbove)
}

var rain1 = channels{
	r: [][3]float64{
		{0, 0, 0}, {1, 0, 0},
	},
	g: [][3]float64{
		{0, 1, 1}, {1, 0.2, 0.2},
	},
	b: [][3]float64{
		{0, 0, 0}, {1, 0, 0},
	},
}

var snow1 = channels{
	r: [][3]float64{
		{0, 0, 0}, {1, 0, 0},
	},
	g: [][3]float64{
		{0, 0, 0}, {1, 0, 0},
	},
	b: [][3]float64{
		{0, 1, 1}, {1, 0.2, 0.2},
	},
}

var mixPrecip1 = channels{
	r: [][3]float64{
		{0, 0.2, 0.2}, {1, 1, 1},
	},
	g: [][3]float64{
		{0, 0, 0}, {1, 0, 0},
	},
	b: [][3]float64{
		{0, 0, 0}, {1, 0, 0},
	},
}

var grays = channels{
	r: [][3]float64{
		{0, 1, 1}, {1, 0.05, 0.05},
	},
	g: [][3]float64{
		{0, 1, 1}, {1, 0.05, 0.05},
	},
	b: [][3]float64{
		{0, 1, 1}, {1, 0.05, 0.05},
	},
}

var reflectivity = channels{
	r: [][3]float64{
		{0, 0.4, 0.4}, {0.067, 0.2, 0.2}, {0.133, 0, 0}, {0.2, 0, 0},
		{0.267, 0, 0}, {0.333, 0, 0}, {0.4, 1, 1}, {0.467, 1, 1},
		{0.533, 1, 1}, {0.6, 1, 1}, {0.667, 0.8, 0.8}, {0.733, 0.6, 0.6},
		{0.8, 1, 1}, {0.867, 0.6, 0.6}, {0.933, 1, 1}, {1, 0, 0},
	},
	g: [][3]float64{
		{0, 1, 1}, {0.067, 0.6, 0.6}, {0.133, 0, 0}, {0.2, 1, 1},
		{0.267, 0.8, 0.8}, {0.333, 0.6, 0.6}, {0.4, 1, 1}, {0.467, 0.8, 0.8},
		{0.533, 0.4, 0.4}, {0.6, 0, 0}, {0.667, 0.2, 0.2}, {0.733, 0, 0},
		{0.8, 0, 0}, {0.867, 0.2, 0.2}, {0.933, 1, 1}, {1, 1, 1},
	},
	b: [][3]float64{
		{0, 1, 1}, {0.067, 1, 1}, {0.133, 1, 1}, {0.2, 0, 0},
		{0.267, 0, 0}, {0.333, 0, 0}, {0.4, 0, 0}, {0.467, 0, 0},
		{0.533, 0, 0}, {0.6, 0, 0}, {0.667, 0, 0}, {0.733, 0, 0},
		{0.8, 1, 1}, {0.867, 0.8, 0.8}, {0.933, 1, 1}, {1, 1, 1},
	},
}

var bwIRSat = channels{
	r: [][3]float64{
		{0, 1, 1}, {1, 0, 0},
	},
	g: [][3]float64{
		{0, 1, 1}, {1, 0, 0},
	},
	b: [][3]float64{
		{0, 1, 1}, {1, 0, 0},
	},
}

var rdBuWH = channels{
	r: [][3]float64{
		{0, 0.0196078, 0.0196078}, {0.1, 0.129412, 0.129412}, {0.2, 0.262745, 0.262745}, {0.3, 0.572549, 0.572549},
		{0.4, 0.819608, 0.819608}, {0.45, 1, 1}, {0.55, 1, 1}, {0.6, 0.992157, 0.992157},
		{0.7, 0.956863, 0.956863}, {0.8, 0.839216, 0.839216}, {0.9, 0.698039, 0.698039}, {1, 0.403922, 0.403922},
	},
	g: [][3]float64{
		{0, 0.188235, 0.188235}, {0.1, 0.4, 0.4}, {0.2, 0.576471, 0.576471}, {0.3, 0.772549, 0.772549},
		{0.4, 0.898039, 0.898039}, {0.45, 1, 1}, {0.55, 1, 1}, {0.6, 0.858824, 0.858824},
		{0.7, 0.647059, 0.647059}, {0.8, 0.376471, 0.376471}, {0.9, 0.0941176, 0.0941176}, {1, 0, 0},
	},
	b: [][3]float64{
		{0, 0.380392, 0.380392}, {0.1, 0.67451, 0.67451}, {0.2, 0.764706, 0.764706}, {0.3, 0.870588, 0.870588},
		{0.4, 0.941176, 0.941176}, {0.45, 1, 1}, {0.55, 1, 1}, {0.6, 0.780392, 0.780392},
		{0.7, 0.509804, 0.509804}, {0.8, 0.301961, 0.301961}, {0.9, 0.168627, 0.168627}, {1, 0.121569, 0.121569},
	},
}

var rdBuBelow = channels{
	r: [][3]float64{
		{0, 0, 0}, {1, 1, 1},
	},
	g: [][3]float64{
		{0, 0, 0}, {1, 1, 1},
	},
	b: [][3]float64{
		{0, 1, 1}, {1, 1, 1},
	},
}

var rdBuAbove = channels{
	r: [][3]float64{
		{1, 1, 1},
	},
	g: [][3]float64{
		{1, 0, 0},
	},
	b: [][3]float64{
		{1, 0, 0},
	},
}

var pkBlBelow = channels{
	r: [][3]float64{
		{0, 0.1178, 0.1178}, {0.015873, 0.195857, 0.195857}, {0.031746, 0.250661, 0.250661}, {0.047619, 0.295468, 0.295468},
		{0.063492, 0.334324, 0.334324}, {0.079365, 0.369112, 0.369112}, {0.095238, 0.400892, 0.400892}, {0.111111, 0.430331, 0.430331},
		{0.126984, 0.457882, 0.457882}, {0.142857, 0.483867, 0.483867}, {0.15873, 0.508525, 0.508525}, {0.174603, 0.532042, 0.532042},
		{0.190476, 0.554563, 0.554563}, {0.206349, 0.576204, 0.576204}, {0.222222, 0.597061, 0.597061}, {0.238095, 0.617213, 0.617213},
		{0.253968, 0.636729, 0.636729}, {0.269841, 0.655663, 0.655663}, {0.285714, 0.674066, 0.674066}, {0.301587, 0.69198, 0.69198},
		{0.31746, 0.709441, 0.709441}, {0.333333, 0.726483, 0.726483}, {0.349206, 0.743134, 0.743134}, {0.365079, 0.759421, 0.759421},
		{0.380952, 0.766356, 0.766356}, {0.396825, 0.773229, 0.773229}, {0.412698, 0.780042, 0.780042}, {0.428571, 0.786796, 0.786796},
		{0.444444, 0.793492, 0.793492}, {0.460317, 0.800132, 0.800132}, {0.47619, 0.806718, 0.806718}, {0.492063, 0.81325, 0.81325},
		{0.507937, 0.81973, 0.81973}, {0.52381, 0.82616, 0.82616}, {0.539683, 0.832539, 0.832539}, {0.555556, 0.83887, 0.83887},
		{0.571429, 0.845154, 0.845154}, {0.587302, 0.851392, 0.851392}, {0.603175, 0.857584, 0.857584}, {0.619048, 0.863731, 0.863731},
		{0.634921, 0.869835, 0.869835}, {0.650794, 0.875897, 0.875897}, {0.666667, 0.881917, 0.881917}, {0.68254, 0.887896, 0.887896},
		{0.698413, 0.893835, 0.893835}, {0.714286, 0.899735, 0.899735}, {0.730159, 0.905597, 0.905597}, {0.746032, 0.911421, 0.911421},
		{0.761905, 0.917208, 0.917208}, {0.777778, 0.922958, 0.922958}, {0.793651, 0.928673, 0.928673}, {0.809524, 0.934353, 0.934353},
		{0.825397, 0.939999, 0.939999}, {0.84127, 0.945611, 0.945611}, {0.857143, 0.95119, 0.95119}, {0.873016, 0.956736, 0.956736},
		{0.888889, 0.96225, 0.96225}, {0.904762, 0.967733, 0.967733}, {0.920635, 0.973185, 0.973185}, {0.936508, 0.978607, 0.978607},
		{0.952381, 0.983999, 0.983999}, {0.968254, 0.989361, 0.989361}, {0.984127, 0.994695, 0.994695}, {1, 1, 1},
	},
	g: [][3]float64{
		{0, 0, 0}, {0.015873, 0.102869, 0.102869}, {0.031746, 0.145479, 0.145479}, {0.047619, 0.178174, 0.178174},
		{0.063492, 0.205738, 0.205738}, {0.079365, 0.230022, 0.230022}, {0.095238, 0.251976, 0.251976}, {0.111111, 0.272166, 0.272166},
		{0.126984, 0.290957, 0.290957}, {0.142857, 0.308607, 0.308607}, {0.15873, 0.3253, 0.3253}, {0.174603, 0.341178, 0.341178},
		{0.190476, 0.356348, 0.356348}, {0.206349, 0.370899, 0.370899}, {0.222222, 0.3849, 0.3849}, {0.238095, 0.39841, 0.39841},
		{0.253968, 0.411476, 0.411476}, {0.269841, 0.424139, 0.424139}, {0.285714, 0.436436, 0.436436}, {0.301587, 0.448395, 0.448395},
		{0.31746, 0.460044, 0.460044}, {0.333333, 0.471405, 0.471405}, {0.349206, 0.482498, 0.482498}, {0.365079, 0.493342, 0.493342},
		{0.380952, 0.517549, 0.517549}, {0.396825, 0.540674, 0.540674}, {0.412698, 0.562849, 0.562849}, {0.428571, 0.584183, 0.584183},
		{0.444444, 0.604765, 0.604765}, {0.460317, 0.624669, 0.624669}, {0.47619, 0.643958, 0.643958}, {0.492063, 0.662687, 0.662687},
		{0.507937, 0.6809, 0.6809}, {0.52381, 0.698638, 0.698638}, {0.539683, 0.715937, 0.715937}, {0.555556, 0.732828, 0.732828},
		{0.571429, 0.749338, 0.749338}, {0.587302, 0.765493, 0.765493}, {0.603175, 0.781313, 0.781313}, {0.619048, 0.796819, 0.796819},
		{0.634921, 0.812029, 0.812029}, {0.650794, 0.82696, 0.82696}, {0.666667, 0.841625, 0.841625}, {0.68254, 0.85604, 0.85604},
		{0.698413, 0.870216, 0.870216}, {0.714286, 0.884164, 0.884164}, {0.730159, 0.897896, 0.897896}, {0.746032, 0.911421, 0.911421},
		{0.761905, 0.917208, 0.917208}, {0.777778, 0.922958, 0.922958}, {0.793651, 0.928673, 0.928673}, {0.809524, 0.934353, 0.934353},
		{0.825397, 0.939999, 0.939999}, {0.84127, 0.945611, 0.945611}, {0.857143, 0.95119, 0.95119}, {0.873016, 0.956736, 0.956736},
		{0.888889, 0.96225, 0.96225}, {0.904762, 0.967733, 0.967733}, {0.920635, 0.973185, 0.973185}, {0.936508, 0.978607, 0.978607},
		{0.952381, 0.983999, 0.983999}, {0.968254, 0.989361, 0.989361}, {0.984127, 0.994695, 0.994695}, {1, 1, 1},
	},
	b: [][3]float64{
		{0, 0, 0}, {0.015873, 0.102869, 0.102869}, {0.031746, 0.145479, 0.145479}, {0.047619, 0.178174, 0.178174},
		{0.063492, 0.205738, 0.205738}, {0.079365, 0.230022, 0.230022}, {0.095238, 0.251976, 0.251976}, {0.111111, 0.272166, 0.272166},
		{0.126984, 0.290957, 0.290957}, {0.142857, 0.308607, 0.308607}, {0.15873, 0.3253, 0.3253}, {0.174603, 0.341178, 0.341178},
		{0.190476, 0.356348, 0.356348}, {0.206349, 0.370899, 0.370899}, {0.222222, 0.3849, 0.3849}, {0.238095, 0.39841, 0.39841},
		{0.253968, 0.411476, 0.411476}, {0.269841, 0.424139, 0.424139}, {0.285714, 0.436436, 0.436436}, {0.301587, 0.448395, 0.448395},
		{0.31746, 0.460044, 0.460044}, {0.333333, 0.471405, 0.471405}, {0.349206, 0.482498, 0.482498}, {0.365079, 0.493342, 0.493342},
		{0.380952, 0.503953, 0.503953}, {0.396825, 0.514344, 0.514344}, {0.412698, 0.524531, 0.524531}, {0.428571, 0.534522, 0.534522},
		{0.444444, 0.544331, 0.544331}, {0.460317, 0.553966, 0.553966}, {0.47619, 0.563436, 0.563436}, {0.492063, 0.57275, 0.57275},
		{0.507937, 0.581914, 0.581914}, {0.52381, 0.590937, 0.590937}, {0.539683, 0.599824, 0.599824}, {0.555556, 0.608581, 0.608581},
		{0.571429, 0.617213, 0.617213}, {0.587302, 0.625727, 0.625727}, {0.603175, 0.634126, 0.634126}, {0.619048, 0.642416, 0.642416},
		{0.634921, 0.6506, 0.6506}, {0.650794, 0.658682, 0.658682}, {0.666667, 0.666667, 0.666667}, {0.68254, 0.674556, 0.674556},
		{0.698413, 0.682355, 0.682355}, {0.714286, 0.690066, 0.690066}, {0.730159, 0.697691, 0.697691}, {0.746032, 0.705234, 0.705234},
		{0.761905, 0.727166, 0.727166}, {0.777778, 0.748455, 0.748455}, {0.793651, 0.769156, 0.769156}, {0.809524, 0.789314, 0.789314},
		{0.825397, 0.808969, 0.808969}, {0.84127, 0.828159, 0.828159}, {0.857143, 0.846913, 0.846913}, {0.873016, 0.865261, 0.865261},
		{0.888889, 0.883229, 0.883229}, {0.904762, 0.900837, 0.900837}, {0.920635, 0.918109, 0.918109}, {0.936508, 0.935061, 0.935061},
		{0.952381, 0.951711, 0.951711}, {0.968254, 0.968075, 0.968075}, {0.984127, 0.984167, 0.984167}, {1, 1, 1},
	},
}

var pkBlAbove = channels{
	r: [][3]float64{
		{0.125, 0.870588, 0.870588}, {0.25, 0.776471, 0.776471}, {0.375, 0.619608, 0.619608}, {0.5, 0.419608, 0.419608},
		{0.625, 0.258824, 0.258824}, {0.75, 0.129412, 0.129412}, {0.875, 0.0313726, 0.0313726}, {1, 0.0313726, 0.0313726},
	},
	g: [][3]float64{
		{0.125, 0.921569, 0.921569}, {0.25, 0.858824, 0.858824}, {0.375, 0.792157, 0.792157}, {0.5, 0.682353, 0.682353},
		{0.625, 0.572549, 0.572549}, {0.75, 0.443137, 0.443137}, {0.875, 0.317647, 0.317647}, {1, 0.188235, 0.188235},
	},
	b: [][3]float64{
		{0.125, 0.968627, 0.968627}, {0.25, 0.937255, 0.937255}, {0.375, 0.882353, 0.882353}, {0.5, 0.839216, 0.839216},
		{0.625, 0.776471, 0.776471}, {0.75, 0.709804, 0.709804}, {0.875, 0.611765, 0.611765}, {1, 0.419608, 0.419608},
	},
}

var puRdBlBelow = channels{
	r: [][3]float64{
		{0, 0.403922, 0.403922}, {0.125, 0.596078, 0.596078}, {0.25, 0.807843, 0.807843}, {0.375, 0.905882, 0.905882},
		{0.5, 0.87451, 0.87451}, {0.625, 0.788235, 0.788235}, {0.75, 0.831373, 0.831373}, {0.875, 0.905882, 0.905882},
		{1, 0.968627, 0.968627},
	},
	g: [][3]float64{
		{0, 0, 0}, {0.125, 0, 0}, {0.25, 0.0705882, 0.0705882}, {0.375, 0.160784, 0.160784},
		{0.5, 0.396078, 0.396078}, {0.625, 0.580392, 0.580392}, {0.75, 0.72549, 0.72549}, {0.875, 0.882353, 0.882353},
		{1, 0.956863, 0.956863},
	},
	b: [][3]float64{
		{0, 0.121569, 0.121569}, {0.125, 0.262745, 0.262745}, {0.25, 0.337255, 0.337255}, {0.375, 0.541176, 0.541176},
		{0.5, 0.690196, 0.690196}, {0.625, 0.780392, 0.780392}, {0.75, 0.854902, 0.854902}, {0.875, 0.937255, 0.937255},
		{1, 0.976471, 0.976471},
	},
}

var puRdBlAbove = channels{
	r: [][3]float64{
		{0.125, 0.870588, 0.870588}, {0.25, 0.776471, 0.776471}, {0.375, 0.619608, 0.619608}, {0.5, 0.419608, 0.419608},
		{0.625, 0.258824, 0.258824}, {0.75, 0.129412, 0.129412}, {0.875, 0.0313726, 0.0313726}, {1, 0.0313726, 0.0313726},
	},
	g: [][3]float64{
		{0.125, 0.921569, 0.921569}, {0.25, 0.858824, 0.858824}, {0.375, 0.792157, 0.792157}, {0.5, 0.682353, 0.682353},
		{0.625, 0.572549, 0.572549}, {0.75, 0.443137, 0.443137}, {0.875, 0.317647, 0.317647}, {1, 0.188235, 0.188235},
	},
	b: [][3]float64{
		{0.125, 0.968627, 0.968627}, {0.25, 0.937255, 0.937255}, {0.375, 0.882353, 0.882353}, {0.5, 0.839216, 0.839216},
		{0.625, 0.776471, 0.776471}, {0.75, 0.709804, 0.709804}, {0.875, 0.611765, 0.611765}, {1, 0.419608, 0.419608},
	},
}
