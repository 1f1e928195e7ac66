// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ctables provides the standard color tables used on
// forecast products: NWS-style precipitation, temperature, wind,
// pressure and moisture tables, WRF and satellite tables, land use
// categories, and named contour presets.
//
// Discrete tables return a colormap and the BoundaryNorm for their
// levels. Continuous tables return only a colormap. Most factories
// accept custom positions; nil selects the default levels.
package ctables

import (
	"fmt"
	"image/color"

	"github.com/nmcdev/go-metgraphics/cmap"
)

var (
	hex = cmap.MustParseColors
	rgb = cmap.RGB255
)

func discrete(name string, levels []float64, colors []color.NRGBA, extend cmap.Extend) (*cmap.Colormap, *cmap.BoundaryNorm, error) {
	cm, norm, err := cmap.FromLevelsAndColors(levels, colors, extend)
	if err != nil {
		return nil, nil, fmt.Errorf("ctables: %s: %w", name, err)
	}
	cm.Name = name
	return cm, norm, nil
}

func segmented(name string, colors []color.NRGBA, pos []float64) (*cmap.Colormap, error) {
	cm, err := cmap.MakeCmap(name, colors, pos, cmap.DefaultN)
	if err != nil {
		return nil, fmt.Errorf("ctables: %s: %w", name, err)
	}
	return cm, nil
}

// byAccumulation picks the levels for a 24 hour, 6 hour or other
// accumulation period.
func byAccumulation(atime int, h24, h6, other []float64) []float64 {
	switch atime {
	case 24:
		return h24
	case 6:
		return h6
	}
	return other
}

func or(pos, def []float64) []float64 {
	if pos != nil {
		return pos
	}
	return def
}

// Continuous lists the continuous tables with their default
// arguments, by name.
var Continuous = map[string]func() (*cmap.Colormap, error){
	"precip":                Precip,
	"temperature_nws":       func() (*cmap.Colormap, error) { return TemperatureNWS(nil) },
	"wind_speed_nws":        func() (*cmap.Colormap, error) { return WindSpeedNWS(nil) },
	"cloud_cover_nws":       func() (*cmap.Colormap, error) { return CloudCoverNWS(nil) },
	"specific_humidity_nws": func() (*cmap.Colormap, error) { return SpecificHumidityNWS(nil) },
	"high_temperature_nws":  func() (*cmap.Colormap, error) { return HighTemperatureNWS(nil) },
	"high_thermal_temp_nws": func() (*cmap.Colormap, error) { return HighThermalTemperatureNWS(nil) },
	"cape_nws":              func() (*cmap.Colormap, error) { return CapeNWS(nil) },
	"reflect_ncdc":          ReflectNCDC,
	"precipitation_metpy":   PrecipitationMetPy,

	"temp":     Temp,
	"wind":     Wind,
	"dewpoint": Dewpoint,
	"rh":       RH,
	"sky":      Sky,
	"gust":     Gust,

	"precip1":   Precip1,
	"snow2":     Snow2,
	"sfc_temp":  SurfaceTemp,
	"theta_e":   ThetaE,
	"ir_sat":    IRSat,
	"dewpoint1": Dewpoint1,

	"ir_enhancement":  IREnhancement,
	"ir_enhancement1": IREnhancement1,
	"ir_enhancement2": IREnhancement2,
	"wv_enhancement":  WVEnhancement,

	"rain1":        Rain1,
	"snow1":        Snow1,
	"mix_precip1":  MixPrecip1,
	"grays":        Grays,
	"reflect":      Reflect,
	"bw_ir_sat":    BWIRSat,
	"RdBuWH":       RdBuWH,
	"RdBu_float":   func() (*cmap.Colormap, error) { return RdBuFloat(-1, 1) },
	"PkBl_float":   func() (*cmap.Colormap, error) { return PkBlFloat(-1, 1) },
	"PuRdBl_float": func() (*cmap.Colormap, error) { return PuRdBlFloat(-1, 1) },

	"terrain_256": Terrain256,
	"terrain_50":  Terrain50,
}

// Discrete lists the discrete tables with their default arguments,
// by name.
var Discrete = map[string]func() (*cmap.Colormap, *cmap.BoundaryNorm, error){
	"precipitation_nws":      func() (*cmap.Colormap, *cmap.BoundaryNorm, error) { return PrecipitationNWS(24) },
	"rain_nws":               func() (*cmap.Colormap, *cmap.BoundaryNorm, error) { return RainNWS(24, nil) },
	"qpf_nws":                func() (*cmap.Colormap, *cmap.BoundaryNorm, error) { return QPFNWS(24, nil) },
	"sleet_nws":              func() (*cmap.Colormap, *cmap.BoundaryNorm, error) { return SleetNWS(24, nil) },
	"snow_nws":               func() (*cmap.Colormap, *cmap.BoundaryNorm, error) { return SnowNWS(24, nil) },
	"qsf_nws":                func() (*cmap.Colormap, *cmap.BoundaryNorm, error) { return QSFNWS(24, nil) },
	"snow_depth_nws":         func() (*cmap.Colormap, *cmap.BoundaryNorm, error) { return SnowDepthNWS(nil) },
	"snow_density_nws":       func() (*cmap.Colormap, *cmap.BoundaryNorm, error) { return SnowDensityNWS(nil) },
	"precipitation_type_nws": func() (*cmap.Colormap, *cmap.BoundaryNorm, error) { return PrecipitationTypeNWS(nil) },
	"temperature_trend_nws":  func() (*cmap.Colormap, *cmap.BoundaryNorm, error) { return TemperatureTrendNWS(nil) },
	"high_wind_speed_nws":    func() (*cmap.Colormap, *cmap.BoundaryNorm, error) { return HighWindSpeedNWS(6, 1.5, nil) },
	"relative_humidity_nws":  func() (*cmap.Colormap, *cmap.BoundaryNorm, error) { return RelativeHumidityNWS(nil) },
	"visibility_nws":         func() (*cmap.Colormap, *cmap.BoundaryNorm, error) { return VisibilityNWS(nil) },
	"mslp_nws":               func() (*cmap.Colormap, *cmap.BoundaryNorm, error) { return MSLPNWS(nil) },
	"height_nws":             func() (*cmap.Colormap, *cmap.BoundaryNorm, error) { return HeightNWS(488, 2.5, nil) },
	"vertical_velocity_nws":  func() (*cmap.Colormap, *cmap.BoundaryNorm, error) { return VerticalVelocityNWS(nil) },
	"precipitable_water_nws": func() (*cmap.Colormap, *cmap.BoundaryNorm, error) { return PrecipitableWaterNWS(nil) },
}

// Categorical lists the land use category tables by name.
var Categorical = map[string]func() (*Categories, error){
	"landuse_modis21": LandUseMODIS21,
	"landuse_modis20": LandUseMODIS20,
	"landuse_usgs24":  LandUseUSGS24,
	"landuse_nlcd":    LandUseNLCD,
}

// Register adds every table, built with default arguments, to reg.
// Continuous tables are registered with their reverses.
func Register(reg *cmap.Registry) error {
	for _, f := range Continuous {
		cm, err := f()
		if err != nil {
			return err
		}
		if err := reg.RegisterWithReverse(cm); err != nil {
			return err
		}
	}
	for _, f := range Discrete {
		cm, _, err := f()
		if err != nil {
			return err
		}
		if err := reg.Register(cm); err != nil {
			return err
		}
	}
	for _, f := range Categorical {
		c, err := f()
		if err != nil {
			return err
		}
		if err := reg.Register(c.Cmap); err != nil {
			return err
		}
	}
	return nil
}
