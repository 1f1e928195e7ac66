// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palettes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nmcdev/go-metgraphics/cmap"
)

var hex = cmap.MustParseColors

// ErrUnits is returned for unsupported units.
var ErrUnits = errors.New("palettes: unsupported units")

const kelvin = 273

func done(s *Scheme, err error) (*Scheme, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

func tempUnits(units string) (string, error) {
	u := strings.ToUpper(units)
	switch u {
	case "C", "F":
		return "°" + u, nil
	case "K":
		return u, nil
	}
	return "", fmt.Errorf("%w %q, want C, F or K", ErrUnits, units)
}

// TemperatureOptions adjust the temperature scheme.
type TemperatureOptions struct {
	// Continuous selects a linear ramp from Vmin to Vmax instead of
	// bins.
	Continuous bool

	// Vmin and Vmax set the range covered by the bounds. If
	// Vmax <= Vmin the range for the units is used: -50 to 50 °C,
	// -60 to 120 °F or 223 to 323 K.
	Vmin, Vmax float64

	// TickInterval puts a tick on every TickInterval'th bound. Zero
	// means 5.
	TickInterval int
}

// Temperature returns the temperature scheme in units C, F or K. The
// segmented form has 50 bins (36 for °F) across the range and extends
// both ends.
func Temperature(units string, opts TemperatureOptions) (*Scheme, error) {
	label, err := tempUnits(units)
	if err != nil {
		return nil, err
	}
	vmin, vmax, n := -50.0, 50.0, 51
	switch label {
	case "°F":
		vmin, vmax, n = -60, 120, 37
	case "K":
		vmin, vmax = -50+kelvin, 50+kelvin
	}
	if opts.Vmax > opts.Vmin {
		vmin, vmax = opts.Vmin, opts.Vmax
	}
	if opts.TickInterval < 0 {
		return nil, fmt.Errorf("palettes: negative tick interval %d", opts.TickInterval)
	}
	tick := opts.TickInterval
	if tick == 0 {
		tick = 5
	}
	bounds := cmap.Linspace(vmin, vmax, n)
	s := newScheme("Temperature", label, hex(
		"#91003f", "#ce1256", "#e7298a", "#df65b0", "#ff73df", "#ffbee8",
		"#ffffff", "#dadaeb", "#bcbddc", "#9e9ac8", "#756bb1", "#54278f",
		"#0d007d", "#0d3d9c", "#0066c2", "#299eff", "#4ac7ff", "#73d7ff",
		"#adffff", "#30cfc2", "#009996", "#125757", "#066d2c", "#31a354",
		"#74c476", "#a1d99b", "#d3ffbe", "#ffffb3", "#ffeda0", "#fed176",
		"#feae2a", "#fd8d3c", "#fc4e2a", "#e31a1c", "#b10026", "#800026",
		"#590042", "#280028",
	), bounds, cmap.Both)
	s.Ticks = every(bounds, tick)
	if opts.Continuous {
		return done(s, s.continuous(cmap.LinearNorm{Vmin: vmin, Vmax: vmax}))
	}
	return done(s, s.segmented(len(bounds)+1))
}

// Dewpoint returns the dew point scheme in units C, F or K.
func Dewpoint(units string, continuous bool) (*Scheme, error) {
	label, err := tempUnits(units)
	if err != nil {
		return nil, err
	}
	bounds := []float64{-18, -13, -8, -3, 2, 7, 10, 13, 16, 19, 22, 25, 28}
	switch label {
	case "°F":
		bounds = []float64{0, 10, 20, 30, 40, 45, 50, 55, 60, 65, 70, 75, 80}
	case "K":
		bounds = offset(bounds, kelvin)
	}
	s := newScheme("Dew Point Temperature", label, hex(
		"#3b2204", "#543005", "#8c520a", "#bf812d", "#cca854", "#dfc27d",
		"#e6d9b5", "#d3ebe7", "#a9dbd3", "#72b8ad", "#318c85", "#01665f",
		"#003c30", "#002921",
	), bounds, cmap.Both)
	if continuous {
		return done(s, s.continuous(cmap.LinearNorm{Vmin: bounds[0], Vmax: bounds[len(bounds)-1]}))
	}
	return done(s, s.segmented(len(bounds) + 1))
}

// RH returns the relative humidity scheme, 0 to 100%.
func RH(continuous bool) (*Scheme, error) {
	s := newScheme("Relative Humidity", "%", hex(
		"#910022", "#a61122", "#bd2e24", "#d44e33", "#e36d42", "#fa8f43",
		"#fcad58", "#fed884", "#fff2aa", "#e6f49d", "#bce378", "#71b55c",
		"#26914b", "#00572e",
	), []float64{0, 5, 10, 15, 20, 25, 30, 35, 40, 50, 60, 70, 80, 90, 100}, cmap.Neither)
	if continuous {
		return done(s, s.continuous(cmap.LinearNorm{Vmin: 0, Vmax: 100}))
	}
	return done(s, s.segmented(len(s.Colors)))
}

// Wind speed unit conversions from mph, approximate and exact.
var windUnits = map[string]struct {
	label         string
	approx, exact float64
}{
	"m/s":  {"m/s", 0.5, 0.44704},
	"km/h": {"km/h", 1.5, 1.609344},
	"kn":   {"kn", 1, 0.86897624},
	"mph":  {"mph", 1, 1},
}

// Wind returns the wind speed scheme in units m/s, kn, km/h or mph
// ("kph" and "knots" are accepted as aliases). The bounds are defined
// in mph and converted either exactly or to round numbers.
//
// Only bounds within [vmin, vmax] are kept; if vmax <= vmin the full
// range is used. The segmented form extends the upper end.
func Wind(units string, exact bool, vmin, vmax float64) (*Scheme, error) {
	switch units {
	case "kph":
		units = "km/h"
	case "knots":
		units = "kn"
	}
	u, ok := windUnits[units]
	if !ok {
		return nil, fmt.Errorf("%w %q, want m/s, kn, km/h or mph", ErrUnits, units)
	}
	f := u.approx
	if exact {
		f = u.exact
	}
	bounds := scale([]float64{0, 5, 10, 15, 20, 25, 30, 35, 40, 45, 50, 60, 70, 80, 100, 120, 140}, f)
	colors := hex(
		"#103f78", "#225ea8", "#1d91c0", "#41b6c4", "#7fcdbb", "#b4d79e",
		"#dfff9e", "#ffffa6", "#ffe873", "#ffc400", "#ffaa00", "#ff5900",
		"#ff0000", "#a80000", "#6e0000", "#ffbee8", "#ff73df",
	)
	if vmax > vmin {
		bounds, colors = within(bounds, colors, vmin, vmax)
		if len(bounds) < 2 {
			return nil, fmt.Errorf("palettes: wind range [%g, %g] %s holds fewer than two bounds", vmin, vmax, u.label)
		}
	}
	s := newScheme("Wind Speed", u.label, colors, bounds, cmap.Max)
	s.Ticks = every(bounds, 2)
	return done(s, s.segmented(len(colors)))
}

// Cloud returns the cloud cover scheme, 0 to 100% by tens.
func Cloud(continuous bool) (*Scheme, error) {
	s := newScheme("Cloud Cover", "%", hex(
		"#24a0f2", "#4eb0f2", "#80b7f8", "#a0c8ff", "#d2e1ff", "#e1e1e1",
		"#c9c9c9", "#a5a5a5", "#6e6e6e", "#505050",
	), cmap.Arange(0, 101, 10), cmap.Neither)
	if continuous {
		return done(s, s.continuous(cmap.LinearNorm{Vmin: 0, Vmax: 100}))
	}
	return done(s, s.segmented(len(s.Colors)))
}

// Precip returns the accumulated precipitation scheme in units "mm"
// or "in". As with Wind, only bounds within [vmin, vmax] are kept
// unless vmax <= vmin.
func Precip(units string, vmin, vmax float64) (*Scheme, error) {
	bounds := []float64{0, 0.01, 0.1, 0.25, 0.5, 1, 1.5, 2, 3, 4, 6, 8, 10, 15, 20, 30}
	switch units {
	case "in":
	case "mm":
		bounds = scale(bounds, 25.4)
	default:
		return nil, fmt.Errorf("%w %q, want mm or in", ErrUnits, units)
	}
	colors := hex(
		"#ffffff", "#c7e9c0", "#a1d99b", "#74c476", "#31a353", "#006d2c",
		"#fffa8a", "#ffcc4f", "#fe8d3c", "#fc4e2a", "#d61a1c", "#ad0026",
		"#700026", "#3b0030", "#4c0073", "#ffdbff",
	)
	if vmax > vmin {
		bounds, colors = within(bounds, colors, vmin, vmax)
		if len(bounds) < 2 {
			return nil, fmt.Errorf("palettes: precipitation range [%g, %g] %s holds fewer than two bounds", vmin, vmax, units)
		}
	}
	s := newScheme("Precipitation", units, colors, bounds, cmap.Max)
	return done(s, s.segmented(len(colors)))
}

// PoP returns a probability of precipitation scheme for kind "rain",
// "snow" or "ice", binned by tens of percent.
func PoP(kind string) (*Scheme, error) {
	var name string
	var colors []string
	switch strings.ToLower(kind) {
	case "rain", "":
		name = "Probability of Precipitation"
		colors = []string{
			"#f5f5f5", "#e2f6da", "#d5f2ca", "#c0ebaf", "#98df7b",
			"#6fd349", "#43c634", "#23b70b", "#139e07", "#0b8403",
		}
	case "snow":
		name = "Probability of Snow"
		colors = []string{
			"#f5f5f5", "#e3ebff", "#bdd6ff", "#94b8ff", "#66a3ff",
			"#3690ff", "#0a7afa", "#006bd6", "#004ead", "#002487",
		}
	case "ice":
		name = "Probability of Ice"
		colors = []string{
			"#f5f5f5", "#ffd9ed", "#ffaafa", "#ff83f9", "#ff57f7",
			"#ff37f5", "#e619f9", "#d500fd", "#a200ad", "#640087",
		}
	default:
		return nil, fmt.Errorf("palettes: unknown precipitation kind %q, want rain, snow or ice", kind)
	}
	s := newScheme(name, "%", hex(colors...), cmap.Linspace(0, 100, 11), cmap.Neither)
	return done(s, s.segmented(len(s.Colors)))
}

// Snow returns the snow amount scheme in units "in" or "mm". The
// continuous form is centered on 8 in so light amounts get most of the
// color range.
func Snow(units string, continuous bool) (*Scheme, error) {
	f := 1.0
	switch units {
	case "in":
	case "mm":
		f = 25.4
	default:
		return nil, fmt.Errorf("%w %q, want mm or in", ErrUnits, units)
	}
	s := newScheme("Snow Amount", units, hex(
		"#ffffff", "#bdd7e7", "#6baed6", "#3182bd", "#08519c", "#082694",
		"#ffff96", "#ffc400", "#ff8700", "#db1400", "#9e0000", "#690000",
		"#360000",
	), scale([]float64{0, 0.1, 1, 2, 3, 4, 6, 8, 12, 18, 24, 30, 36}, f), cmap.Max)
	if continuous {
		return done(s, s.continuous(cmap.MidpointNormalize{Vmin: 0, Midpoint: 8 * f, Vmax: 42 * f}))
	}
	cm, err := cmap.NewListed(s.Name, s.Colors)
	if err != nil {
		return nil, err
	}
	norm, err := cmap.NewBoundaryNorm(s.Bounds, cm.N(), s.Extend)
	if err != nil {
		return nil, err
	}
	s.Cmap, s.Norm = cm, norm
	return s, nil
}

// WaveHeight returns the significant wave height scheme in feet.
func WaveHeight() (*Scheme, error) {
	s := newScheme("Wave Height", "ft", hex(
		"#ebfdff", "#abedf5", "#78cdd6", "#4bb8c4", "#55b59f", "#86d483",
		"#b0e890", "#ddff99", "#fed976", "#feb24c", "#fd8d3c", "#fc4e2a",
		"#e31a1c", "#bd0026", "#800026", "#5c002f", "#330023",
	), []float64{0, 1, 2, 3, 4, 5, 7, 10, 12, 15, 20, 25, 30, 35, 40, 50, 60}, cmap.Max)
	return done(s, s.segmented(len(s.Colors)))
}

// Reflectivity returns the radar reflectivity scheme, 0 to 80 dBZ in
// 40 levels.
func Reflectivity() (*Scheme, error) {
	s := newScheme("Reflectivity", "dBZ", hex(
		"#00ecec", "#01b5f3", "#0021f6", "#00de20", "#00cb00", "#079300",
		"#fdf900", "#ebb700", "#fd9500", "#ff0400", "#d50000", "#c80021",
		"#ea11f4", "#6e3d90", "#000000",
	), cmap.Linspace(0, 80, 41), cmap.Neither)
	return done(s, s.segmented(40))
}

// RadialVelocity returns the radar radial velocity scheme, -20 to 20
// m/s in 16 levels.
func RadialVelocity() (*Scheme, error) {
	s := newScheme("Radial Velocity", "m/s", hex(
		"#90009f", "#29b72d", "#00ed00", "#00cc00", "#00b100", "#008f00",
		"#0c740c", "#7d9177", "#947a77", "#810303", "#a10000", "#bc0000",
		"#dd0000", "#f30000", "#ff0000",
	), cmap.Linspace(-20, 20, 17), cmap.Neither)
	return done(s, s.segmented(16))
}

// AQI returns the Air Quality Index scheme for pollutant "pm25"
// (µg/m³) or "o3" (ppb). Each AQI category gets one color.
func AQI(pollutant string) (*Scheme, error) {
	var s *Scheme
	colors := hex("#00e400", "#ffff00", "#ff7e00", "#ff0000", "#99004c", "#4c0026")
	switch pollutant {
	case "pm25":
		s = newScheme("PM 2.5", "µg/m³", colors, []float64{0, 12.1, 35.5, 55.5, 150.5, 250.5, 300}, cmap.Max)
	case "o3":
		s = newScheme("Ozone", "ppb", colors, []float64{0, 55, 71, 86, 106, 201, 300}, cmap.Max)
	default:
		return nil, fmt.Errorf("palettes: unknown pollutant %q, want pm25 or o3", pollutant)
	}
	cm, err := cmap.FromList("airquality", s.Colors, nil, len(s.Bounds)-1)
	if err != nil {
		return nil, err
	}
	// The last category is open-ended, so values past the final bound
	// take the last color.
	norm, err := cmap.NewBoundaryNorm(s.Bounds, cm.N(), cmap.Neither)
	if err != nil {
		return nil, err
	}
	s.Cmap, s.Norm = cm, norm
	return s, nil
}
