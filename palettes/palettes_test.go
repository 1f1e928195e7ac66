// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palettes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmcdev/go-metgraphics/cmap"
)

func TestTemperature(t *testing.T) {
	s, err := Temperature("c", TemperatureOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Temperature (°C)", s.Label)
	assert.Len(t, s.Bounds, 51)
	assert.Equal(t, 52, s.Cmap.N())
	assert.Equal(t, cmap.Both, s.Extend)
	assert.Equal(t, []float64{-50, -40, -30, -20, -10, 0, 10, 20, 30, 40, 50}, s.Ticks)
	assert.False(t, s.Continuous())

	assert.Equal(t, cmap.MustParseColor("#91003f"), s.Color(-60))
	assert.Equal(t, cmap.MustParseColor("#280028"), s.Color(60))

	f, err := Temperature("F", TemperatureOptions{})
	require.NoError(t, err)
	assert.Len(t, f.Bounds, 37)
	assert.Equal(t, 38, f.Cmap.N())

	k, err := Temperature("K", TemperatureOptions{Continuous: true})
	require.NoError(t, err)
	assert.True(t, k.Continuous())
	assert.Equal(t, "Temperature (K)", k.Label)
	assert.Equal(t, cmap.MustParseColor("#91003f"), k.Color(223))

	_, err = Temperature("R", TemperatureOptions{})
	assert.True(t, errors.Is(err, ErrUnits))
}

func TestTruncate(t *testing.T) {
	s, err := Temperature("C", TemperatureOptions{})
	require.NoError(t, err)
	tr, err := s.Truncate(-20, 30)
	require.NoError(t, err)
	assert.Len(t, tr.Bounds, 26)
	assert.Equal(t, -20.0, tr.Bounds[0])
	assert.Equal(t, 30.0, tr.Bounds[25])
	assert.Equal(t, 26, tr.Cmap.N())
	assert.Equal(t, []float64{-20, -10, 0, 10, 20, 30}, tr.Ticks)
	// The original is unchanged.
	assert.Len(t, s.Bounds, 51)

	// Values outside the truncated range take neighboring colors of
	// the original map rather than its ends.
	assert.NotEqual(t, s.Color(-60), tr.Color(-60))

	_, err = s.Truncate(100, 200)
	assert.Error(t, err)
}

func TestDewpoint(t *testing.T) {
	s, err := Dewpoint("C", false)
	require.NoError(t, err)
	assert.Equal(t, 14, s.Cmap.N())
	assert.Equal(t, s.Bounds, s.Ticks)

	k, err := Dewpoint("k", false)
	require.NoError(t, err)
	assert.Equal(t, 255.0, k.Bounds[0])
	assert.Equal(t, 301.0, k.Bounds[len(k.Bounds)-1])
}

func TestRH(t *testing.T) {
	s, err := RH(false)
	require.NoError(t, err)
	assert.Equal(t, "Relative Humidity (%)", s.Label)
	assert.Equal(t, 14, s.Cmap.N())
	assert.Equal(t, cmap.MustParseColor("#910022"), s.Color(2))
	assert.Equal(t, cmap.MustParseColor("#00572e"), s.Color(95))
}

func TestWind(t *testing.T) {
	s, err := Wind("m/s", false, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "Wind Speed (m/s)", s.Label)
	assert.Len(t, s.Bounds, 17)
	assert.Equal(t, 70.0, s.Bounds[16])
	assert.Equal(t, cmap.Max, s.Extend)
	assert.Equal(t, 17, s.Cmap.N())
	assert.Equal(t, cmap.MustParseColor("#103f78"), s.Color(1))
	assert.Equal(t, cmap.MustParseColor("#ff73df"), s.Color(80))

	k, err := Wind("kph", true, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "km/h", k.Units)
	assert.InDelta(t, 8.04672, k.Bounds[1], 1e-9)

	kn, err := Wind("knots", false, 10, 50)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 15, 20, 25, 30, 35, 40, 45, 50}, kn.Bounds)
	assert.Len(t, kn.Colors, 9)
	assert.Equal(t, cmap.MustParseColor("#1d91c0"), kn.Colors[0])

	_, err = Wind("furlongs/fortnight", false, 0, 0)
	assert.True(t, errors.Is(err, ErrUnits))
	_, err = Wind("mph", false, 141, 150)
	assert.Error(t, err)
}

func TestPrecip(t *testing.T) {
	s, err := Precip("mm", 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 762, s.Bounds[len(s.Bounds)-1], 1e-9)
	assert.Equal(t, 16, s.Cmap.N())

	in, err := Precip("in", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1.5, 2, 3, 4, 6, 8, 10}, in.Bounds)

	_, err = Precip("cm", 0, 0)
	assert.Error(t, err)
}

func TestPoP(t *testing.T) {
	for _, kind := range []string{"rain", "Snow", "ice"} {
		s, err := PoP(kind)
		require.NoError(t, err, kind)
		assert.Len(t, s.Bounds, 11, kind)
		assert.Equal(t, cmap.MustParseColor("#f5f5f5"), s.Color(5), kind)
	}
	s, err := PoP("snow")
	require.NoError(t, err)
	assert.Equal(t, "Probability of Snow (%)", s.Label)

	_, err = PoP("hail")
	assert.Error(t, err)
}

func TestSnow(t *testing.T) {
	s, err := Snow("in", false)
	require.NoError(t, err)
	assert.Equal(t, 13, s.Cmap.N())
	assert.Equal(t, cmap.MustParseColor("#ffffff"), s.Color(0.05))
	assert.Equal(t, cmap.MustParseColor("#360000"), s.Color(40))

	c, err := Snow("mm", true)
	require.NoError(t, err)
	assert.True(t, c.Continuous())
	assert.InDelta(t, 0.5, c.Norm.Normalize(8*25.4), 1e-12)

	_, err = Snow("ft", false)
	assert.Error(t, err)
}

func TestFixedSchemes(t *testing.T) {
	for _, tt := range []struct {
		name   string
		fn     func() (*Scheme, error)
		n      int
		bounds int
	}{
		{"cloud", func() (*Scheme, error) { return Cloud(false) }, 10, 11},
		{"wave", WaveHeight, 17, 17},
		{"reflectivity", Reflectivity, 40, 41},
		{"radial", RadialVelocity, 16, 17},
	} {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.fn()
			require.NoError(t, err)
			assert.Equal(t, tt.n, s.Cmap.N())
			assert.Len(t, s.Bounds, tt.bounds)
		})
	}
}

func TestAQI(t *testing.T) {
	s, err := AQI("pm25")
	require.NoError(t, err)
	assert.Equal(t, 6, s.Cmap.N())
	assert.Equal(t, cmap.MustParseColor("#00e400"), s.Color(5))
	assert.Equal(t, cmap.MustParseColor("#4c0026"), s.Color(280))
	assert.Equal(t, cmap.MustParseColor("#4c0026"), s.Color(500))

	o3, err := AQI("o3")
	require.NoError(t, err)
	assert.Equal(t, "Ozone (ppb)", o3.Label)

	_, err = AQI("co")
	assert.Error(t, err)
}

func TestTemperatureOptions(t *testing.T) {
	s, err := Temperature("C", TemperatureOptions{Vmin: -20, Vmax: 40, TickInterval: 10})
	require.NoError(t, err)
	assert.Len(t, s.Bounds, 51)
	assert.Equal(t, -20.0, s.Bounds[0])
	assert.Equal(t, 40.0, s.Bounds[50])
	require.Len(t, s.Ticks, 6)
	assert.InDelta(t, -8, s.Ticks[1], 1e-9)
	assert.Equal(t, cmap.MustParseColor("#91003f"), s.Color(-25))

	// An empty range keeps the defaults for the units.
	f, err := Temperature("F", TemperatureOptions{Vmin: 10, Vmax: 10, Continuous: true})
	require.NoError(t, err)
	assert.True(t, f.Continuous())
	assert.InDelta(t, 0.5, f.Norm.Normalize(30), 1e-12)
	assert.Len(t, f.Ticks, 8)

	_, err = Temperature("C", TemperatureOptions{TickInterval: -1})
	assert.Error(t, err)
}

func TestProbability(t *testing.T) {
	s, err := Probability()
	require.NoError(t, err)
	assert.Equal(t, "Probability", s.Label)
	assert.Len(t, s.Bounds, 22)
	assert.Len(t, s.Ticks, 11)
	assert.Equal(t, 22, s.Cmap.N())
	assert.Equal(t, cmap.MustParseColor("#ffffff"), s.Color(0.01))
	assert.Equal(t, cmap.MustParseColor("#ff4c00"), s.Color(1.04))
}

func TestVorticity(t *testing.T) {
	s, err := Vorticity()
	require.NoError(t, err)
	assert.Len(t, s.Bounds, 47)
	assert.Equal(t, 46, s.Cmap.N())
	assert.Equal(t, cmap.MustParseColor("#ffffff"), s.Color(4))
	neg, pos := s.Color(-7.5), s.Color(44.5)
	assert.Greater(t, neg.B, neg.R)
	assert.Greater(t, pos.R, pos.B)
}

func TestObservationImpact(t *testing.T) {
	s, err := ObservationImpact(-2, 2)
	require.NoError(t, err)
	assert.Equal(t, "Observation Impact", s.Label)
	assert.Equal(t, 258, s.Cmap.N())
	assert.True(t, s.Continuous())
	assert.Equal(t, cmap.MustParseColor("#fffcf2"), s.Color(0))

	_, err = ObservationImpact(1, 1)
	assert.Error(t, err)
}

func TestTerrain(t *testing.T) {
	s, err := Terrain(DefaultTerrain)
	require.NoError(t, err)
	assert.Equal(t, "Terrain Height (m)", s.Label)
	assert.Equal(t, cmap.DefaultN, s.Cmap.N())
	assert.InDelta(t, 0.5, s.Norm.Normalize(-99), 1e-12)
	assert.Equal(t, cmap.MustParseColor("mediumblue"), s.Color(-500))
	assert.Equal(t, cmap.MustParseColor("snow"), s.Color(4000))

	dry, err := Terrain(TerrainOptions{WaterThreshold: 0, LandTop: 1000, Land: 2})
	require.NoError(t, err)
	assert.Equal(t, cmap.MustParseColor("#ffad7d"), dry.Color(0))

	custom, err := Terrain(TerrainOptions{LandTop: 10, LandColors: []string{"k", "w"}})
	require.NoError(t, err)
	assert.Equal(t, cmap.MustParseColor("w"), custom.Color(10))

	_, err = Terrain(TerrainOptions{Land: 4, LandTop: 1})
	assert.Error(t, err)
	_, err = Terrain(TerrainOptions{Water: true, Land: 1, OceanBottom: 0, LandTop: 1})
	assert.Error(t, err)
}

func TestSimpleColors(t *testing.T) {
	for _, tt := range []struct {
		accessibility float64
		n             int
	}{
		{0.95, 22},
		{0.99, 18},
		{0.9999, 9},
		{1, 5},
	} {
		assert.Len(t, SimpleColors(tt.accessibility), tt.n, "%v", tt.accessibility)
	}
	c := SimpleColors(1)
	assert.Equal(t, "Yellow", c[0].Name)
	assert.Equal(t, cmap.MustParseColor("#ffe119"), c[0].Color)
}
