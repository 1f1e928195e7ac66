// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctables

import (
	"image/color"
	"testing"

	"github.com/nmcdev/go-metgraphics/cmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = color.NRGBA{255, 255, 255, 255}
	black = color.NRGBA{0, 0, 0, 255}
)

func TestStandardCurveEnds(t *testing.T) {
	for _, tt := range []struct {
		f           func() (*cmap.Colormap, error)
		first, last color.NRGBA
	}{
		{Temp, color.NRGBA{145, 0, 63, 255}, color.NRGBA{89, 0, 66, 255}},
		{Wind, color.NRGBA{16, 63, 120, 255}, color.NRGBA{255, 115, 223, 255}},
		{Dewpoint, color.NRGBA{59, 34, 4, 255}, color.NRGBA{0, 60, 48, 255}},
		{RH, color.NRGBA{145, 0, 34, 255}, color.NRGBA{38, 145, 75, 255}},
		{Sky, color.NRGBA{36, 160, 242, 255}, color.NRGBA{80, 80, 80, 255}},
		{Gust, white, cmap.RGBFloat([3]float64{184. / 256, 134. / 256, 11. / 256})[0]},
	} {
		cm, err := tt.f()
		require.NoError(t, err)
		assert.Equal(t, tt.first, cm.At(0), cm.Name)
		assert.Equal(t, tt.last, cm.At(1), cm.Name)
	}
}

func TestWindBinsKeepSpacing(t *testing.T) {
	cm, err := Wind()
	require.NoError(t, err)
	// 50 mph is the 11th of 17 colors but sits at 50/140 of the map.
	c := cmap.Color(cm, cmap.LinearNorm{Vmin: 0, Vmax: 140}, 50)
	assert.Equal(t, uint8(255), c.R)
	assert.InDelta(t, 170, float64(c.G), 2)
	assert.Equal(t, uint8(0), c.B)
}

func TestSegmentTables(t *testing.T) {
	gray, err := Grays()
	require.NoError(t, err)
	assert.Equal(t, white, gray.At(0))
	assert.Equal(t, color.NRGBA{13, 13, 13, 255}, gray.At(1))

	bw, err := BWIRSat()
	require.NoError(t, err)
	assert.Equal(t, white, bw.At(0))
	assert.Equal(t, black, bw.At(1))

	rain, err := Rain1()
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0, 255, 0, 255}, rain.At(0))

	// The IR table steps away from white right at 0.
	ir, err := IRSat()
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{75, 0, 255, 255}, ir.At(0))
}

func TestSharedTableData(t *testing.T) {
	for _, pair := range [][2]func() (*cmap.Colormap, error){
		{SurfaceTemp, ThetaE},
		{IREnhancement1, IREnhancement2},
	} {
		a, err := pair[0]()
		require.NoError(t, err)
		b, err := pair[1]()
		require.NoError(t, err)
		assert.NotEqual(t, a.Name, b.Name)
		assert.Equal(t, a.Colors(), b.Colors(), a.Name)
	}

	depth, depthNorm, err := SnowDepthNWS(nil)
	require.NoError(t, err)
	density, densityNorm, err := SnowDensityNWS(nil)
	require.NoError(t, err)
	assert.Equal(t, "snow_density_nws", density.Name)
	assert.Equal(t, depth.Colors(), density.Colors())
	assert.Equal(t, depthNorm.Boundaries, densityNorm.Boundaries)
}

func TestAroundZero(t *testing.T) {
	cm, err := RdBuFloat(-1, 1)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0, 0, 255, 255}, cm.At(0))
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, cm.At(1))

	// With three quarters of the range below zero, white moves to
	// 0.75.
	cm, err = RdBuFloat(-3, 1)
	require.NoError(t, err)
	mid := cmap.Color(cm, cmap.LinearNorm{Vmin: -3, Vmax: 1}, 0)
	assert.Equal(t, uint8(255), mid.R)
	assert.Greater(t, mid.G, uint8(240))
	assert.Greater(t, mid.B, uint8(240))
	quarter := cmap.Color(cm, cmap.LinearNorm{Vmin: -3, Vmax: 1}, -1.5)
	assert.Less(t, quarter.R, uint8(140))

	for _, f := range []func(lo, hi float64) (*cmap.Colormap, error){RdBuFloat, PkBlFloat, PuRdBlFloat} {
		cm, err := f(-2, 5)
		require.NoError(t, err)
		assert.Equal(t, cmap.DefaultN, cm.N())

		_, err = f(1, 2)
		assert.ErrorContains(t, err, "must contain zero")
	}
}

func TestTerrain(t *testing.T) {
	cm, err := Terrain256()
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0, 125, 255, 255}, cm.Colors()[0])
	assert.Equal(t, white, cm.At(1))

	cm, err = Terrain50()
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{2, 97, 0, 255}, cm.At(0))
}

func TestCategories(t *testing.T) {
	for name, f := range Categorical {
		c, err := f()
		require.NoError(t, err, name)
		n := len(c.Labels)
		assert.Equal(t, n, c.Cmap.N(), name)
		assert.Equal(t, 0, c.Norm.Index(1), name)
		assert.Equal(t, n-1, c.Norm.Index(float64(n)+0.5), name)
		assert.Equal(t, "", c.Label(0), name)
		assert.Equal(t, "", c.Label(n+1), name)
	}

	modis, err := LandUseMODIS21()
	require.NoError(t, err)
	assert.Equal(t, "Lake", modis.Label(21))
	assert.Equal(t, cmap.MustParseColor("#0000e0"), cmap.Color(modis.Cmap, modis.Norm, 21))
	assert.Equal(t, cmap.MustParseColor("#006600"), cmap.Color(modis.Cmap, modis.Norm, 1.9))

	usgs, err := LandUseUSGS24()
	require.NoError(t, err)
	assert.Equal(t, "Water Bodies", usgs.Label(16))
	assert.Equal(t, white, cmap.Color(usgs.Cmap, usgs.Norm, 24))
}
