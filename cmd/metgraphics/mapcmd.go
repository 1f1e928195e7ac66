// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nmcdev/go-metgraphics/annotate"
	"github.com/nmcdev/go-metgraphics/maps"
	"github.com/nmcdev/go-metgraphics/palettes"
)

// schemes are the color schemes the map command can show as a
// colorbar, with default arguments.
var schemes = map[string]func() (*palettes.Scheme, error){
	"temperature":  func() (*palettes.Scheme, error) { return palettes.Temperature("C", palettes.TemperatureOptions{}) },
	"dewpoint":     func() (*palettes.Scheme, error) { return palettes.Dewpoint("C", false) },
	"rh":           func() (*palettes.Scheme, error) { return palettes.RH(false) },
	"cloud":        func() (*palettes.Scheme, error) { return palettes.Cloud(false) },
	"wind":         func() (*palettes.Scheme, error) { return palettes.Wind("m/s", false, 0, 0) },
	"precip":       func() (*palettes.Scheme, error) { return palettes.Precip("mm", 0, 0) },
	"snow":         func() (*palettes.Scheme, error) { return palettes.Snow("mm", false) },
	"wave":         palettes.WaveHeight,
	"reflectivity": palettes.Reflectivity,
	"velocity":     palettes.RadialVelocity,
	"pop":          func() (*palettes.Scheme, error) { return palettes.PoP("rain") },
	"pm25":         func() (*palettes.Scheme, error) { return palettes.AQI("pm25") },
	"o3":           func() (*palettes.Scheme, error) { return palettes.AQI("o3") },
	"probability":  palettes.Probability,
	"vorticity":    palettes.Vorticity,
	"terrain":      func() (*palettes.Scheme, error) { return palettes.Terrain(palettes.DefaultTerrain) },
	"obimp":        func() (*palettes.Scheme, error) { return palettes.ObservationImpact(-1, 1) },
}

func schemeNames() string {
	var names []string
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

type mapFlags struct {
	out     string
	region  string
	proj    string
	layers  []string
	title   string
	model   string
	init    string
	fhour   int
	scheme  string
	width   int
	gridN   int
	pad     float64
	noStamp bool
}

func (f *mapFlags) draw(w io.Writer, store *maps.FeatureStore) error {
	e, err := maps.ParseRegion(f.region)
	if err != nil {
		return err
	}
	if f.pad != 0 {
		if e, err = maps.AdjustExtent(e, f.pad); err != nil {
			return err
		}
	}
	p, err := maps.ParseProjection(f.proj)
	if err != nil {
		return err
	}
	m, err := maps.New(e, p, f.width)
	if err != nil {
		return err
	}
	for _, l := range f.layers {
		if err := m.AddLayer(store, maps.Layer(l), nil); err != nil {
			return err
		}
	}
	if f.gridN > 0 {
		m.Gridlines(f.gridN, maps.Style{Stroke: color.Gray{Y: 0x99}, Width: 0.5, Dash: "4,2"})
	}

	if f.init != "" {
		t, err := annotate.ParseInitTime(f.init)
		if err != nil {
			return err
		}
		m.ModelTitle(annotate.ModelTitle(f.title, t, strings.ToUpper(f.model), f.fhour, 0, false))
	} else {
		m.Title(f.title)
	}
	if f.scheme != "" {
		mk, ok := schemes[f.scheme]
		if !ok {
			return fmt.Errorf("unknown scheme %q, select one of %s", f.scheme, schemeNames())
		}
		s, err := mk()
		if err != nil {
			return err
		}
		if err := m.Colorbar(s); err != nil {
			return err
		}
	}
	if !f.noStamp {
		m.Timestamp(clockwork.NewRealClock())
	}
	return m.Write(w)
}

func newMapCmd(v *viper.Viper) *cobra.Command {
	f := &mapFlags{}
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Draw a base map with borders, gridlines, titles and a colorbar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &maps.StoreOptions{Log: &log.Logger, TTL: time.Hour}
			store := maps.NewFeatureStore(v.GetString(keyShapefileDir), opts)
			if err := writeFile(f.out, func(w io.Writer) error { return f.draw(w, store) }); err != nil {
				return err
			}
			log.Info().Str("file", f.out).Msg("wrote map")
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.out, "out", "o", "map.svg", "write to `file` (- for stdout)")
	fl.StringVarP(&f.region, "region", "r", "", "region `name` or lonmin,lonmax,latmin,latmax (default "+maps.DefaultRegion+")")
	fl.StringVar(&f.proj, "proj", "", "`projection`: PlateCarree, Mercator or LambertConformal")
	fl.StringSliceVar(&f.layers, "layers", []string{string(maps.Coastline), string(maps.Province)}, "feature `layers` to draw")
	fl.StringVarP(&f.title, "title", "t", "", "map title")
	fl.StringVar(&f.model, "model", "", "model `name` for the title")
	fl.StringVar(&f.init, "init", "", "model initial `time`, YYMMDDHH or YYYYMMDDHH")
	fl.IntVar(&f.fhour, "fhour", 0, "forecast `hour`")
	fl.StringVar(&f.scheme, "scheme", "", "colorbar `scheme`: "+schemeNames())
	fl.IntVar(&f.width, "width", 800, "map width in `pixels`")
	fl.IntVar(&f.gridN, "grid", 6, "draw up to `N` gridlines each way (0 for none)")
	fl.Float64Var(&f.pad, "pad", 0, "grow the region by this `fraction` of its width")
	fl.BoolVar(&f.noStamp, "no-timestamp", false, "omit the creation time")
	return cmd
}
