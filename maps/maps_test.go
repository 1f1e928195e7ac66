// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maps

import (
	"bytes"
	"errors"
	"image/color"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmcdev/go-metgraphics/annotate"
	"github.com/nmcdev/go-metgraphics/palettes"
)

func TestRegions(t *testing.T) {
	assert.Len(t, Regions(), 17)
	assert.Len(t, GlobalRegions(), 27)
	assert.Equal(t, DefaultExtent, Regions()[DefaultRegion])

	e, err := Region("华北")
	require.NoError(t, err)
	assert.Equal(t, Extent{103, 129, 30, 50}, e)
	e, err = Region("北美")
	require.NoError(t, err)
	assert.Equal(t, Extent{220, 305, 10, 65}, e)

	_, err = Region("Atlantis")
	assert.ErrorIs(t, err, ErrRegion)
}

func TestCheckRegion(t *testing.T) {
	for _, tt := range []struct {
		e  Extent
		ok bool
	}{
		{DefaultExtent, true},
		{Extent{-180, 180, -90, 90}, true},
		{Extent{220, 305, 10, 65}, true},
		{Extent{-400, 0, 0, 10}, false},
		{Extent{120, 100, 0, 10}, false},
		{Extent{100, 100, 0, 10}, false},
		{Extent{100, 120, -95, 10}, false},
		{Extent{100, 120, 40, 20}, false},
	} {
		err := CheckRegion(tt.e)
		if tt.ok {
			assert.NoError(t, err, "%v", tt.e)
		} else {
			assert.ErrorIs(t, err, ErrRegion, "%v", tt.e)
		}
	}
}

func TestParseRegion(t *testing.T) {
	e, err := ParseRegion("")
	require.NoError(t, err)
	assert.Equal(t, DefaultExtent, e)

	e, err = ParseRegion("100, 120, 20.5, 40")
	require.NoError(t, err)
	assert.Equal(t, Extent{100, 120, 20.5, 40}, e)

	e, err = ParseRegion("华南")
	require.NoError(t, err)
	assert.Equal(t, Extent{100, 126, 12, 30}, e)

	_, err = ParseRegion("100,90,0,10")
	assert.Error(t, err)
	_, err = ParseRegion("100,x,0,10")
	assert.Error(t, err)
}

func TestRegionContour(t *testing.T) {
	big, small := 4, 2
	assert.Equal(t, big, RegionContour(&DefaultExtent, big, small, DefaultContourThreshold))
	assert.Equal(t, big, RegionContour(nil, big, small, DefaultContourThreshold))
	e := Regions()["冬奥"]
	assert.Equal(t, small, RegionContour(&e, big, small, DefaultContourThreshold))
	// 20x30 is exactly the threshold.
	assert.Equal(t, big, RegionContour(&Extent{100, 120, 10, 40}, big, small, DefaultContourThreshold))
}

func TestWrapLongitude(t *testing.T) {
	for _, tt := range []struct{ in, to180, to360 float64 }{
		{0, 0, 0},
		{190, -170, 190},
		{-10, -10, 350},
		{360, 0, 0},
		{540, -180, 180},
		{-190, 170, 170},
	} {
		assert.Equal(t, tt.to180, To180(tt.in), "To180(%g)", tt.in)
		assert.Equal(t, tt.to360, To360(tt.in), "To360(%g)", tt.in)
	}
}

func TestAdjustExtent(t *testing.T) {
	e, err := AdjustExtent(Extent{100, 120, 20, 40}, 0.05)
	require.NoError(t, err)
	assert.Equal(t, Extent{99, 121, 19, 41}, e)

	e, err = AdjustExtent(Extent{-180, 180, -90, 90}, 0.1)
	require.NoError(t, err)
	assert.Equal(t, Extent{-216, 216, -90, 90}, e)

	_, err = AdjustExtent(DefaultExtent, -0.5)
	assert.Error(t, err)

	assert.Equal(t, Extent{110, 120, 80, 90}, CenterExtent(115, 85, 5))
}

func TestPlateCarree(t *testing.T) {
	p := PlateCarree(0)
	x, y, err := p.Project(190, 10)
	require.NoError(t, err)
	assert.Equal(t, -170.0, x)
	assert.Equal(t, 10.0, y)
	x, _, _ = p.Project(180, 0)
	assert.Equal(t, 180.0, x)

	x, _, _ = PlateCarree(180).Project(170, 0)
	assert.Equal(t, -10.0, x)
}

func TestMercator(t *testing.T) {
	p, err := Mercator(0)
	require.NoError(t, err)
	x, y, err := p.Project(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0, x, 1e-6)
	assert.InDelta(t, 0, y, 1e-6)

	x, yn, err := p.Project(10, 30)
	require.NoError(t, err)
	_, ys, err := p.Project(10, -30)
	require.NoError(t, err)
	assert.InDelta(t, 6378137*10*math.Pi/180, x, 1)
	assert.Greater(t, yn, 0.0)
	assert.InDelta(t, -yn, ys, 1e-6)
}

func TestLambertConformal(t *testing.T) {
	p, err := ChinaLambert()
	require.NoError(t, err)
	x, y, err := p.Project(105, 35)
	require.NoError(t, err)
	assert.InDelta(t, 0, x, 1e-3)
	assert.InDelta(t, 0, y, 1e-3)

	xe, _, err := p.Project(115, 35)
	require.NoError(t, err)
	xw, _, err := p.Project(95, 35)
	require.NoError(t, err)
	assert.Greater(t, xe, 0.0)
	assert.InDelta(t, -xe, xw, 1e-3)
}

func TestParseProjection(t *testing.T) {
	for _, name := range []string{"", "PlateCarree", "Mercator", "lcc"} {
		_, err := ParseProjection(name)
		assert.NoError(t, err, name)
	}
	_, err := ParseProjection("Robinson")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	m, err := New(Extent{100, 120, 20, 40}, nil, 400)
	require.NoError(t, err)
	assert.Equal(t, 400, m.Height)
	w, h := m.Size()
	assert.Equal(t, marginLeft+400+marginRight, w)
	assert.Equal(t, marginTop+400+marginBottom, h)

	x, y, ok := m.Pixel(100, 40)
	require.True(t, ok)
	assert.Equal(t, float64(marginLeft), x)
	assert.Equal(t, float64(marginTop), y)
	x, y, _ = m.Pixel(120, 20)
	assert.Equal(t, float64(marginLeft+400), x)
	assert.Equal(t, float64(marginTop+400), y)

	m, err = New(Extent{100, 140, 20, 40}, nil, 400)
	require.NoError(t, err)
	assert.Equal(t, 200, m.Height)

	_, err = New(Extent{100, 90, 20, 40}, nil, 400)
	assert.ErrorIs(t, err, ErrRegion)
	_, err = New(DefaultExtent, nil, 0)
	assert.Error(t, err)
}

func TestEdges(t *testing.T) {
	assert.Equal(t, []float64{-0.5, 0.5, 1.5, 2.5}, edges([]float64{0, 1, 2}))
}

func TestBarPos(t *testing.T) {
	b := []float64{0, 1, 5, 10}
	assert.Equal(t, 0.0, barPos(b, 0))
	assert.InDelta(t, 1.0/3, barPos(b, 1), 1e-12)
	assert.InDelta(t, 0.5, barPos(b, 3), 1e-12)
	assert.Equal(t, 1.0, barPos(b, 10))
	for _, p := range []float64{0, 0.2, 0.5, 0.9} {
		assert.InDelta(t, p, barPos(b, barValue(b, p)), 1e-12)
	}
}

func TestParts(t *testing.T) {
	lines, closed := parts(geom.MultiLineString{
		{{X: 0, Y: 0}, {X: 1, Y: 1}},
		{{X: 2, Y: 2}, {X: 3, Y: 3}},
	})
	assert.Len(t, lines, 2)
	assert.False(t, closed)

	lines, closed = parts(&geom.Bounds{Min: geom.Point{X: 0, Y: 0}, Max: geom.Point{X: 1, Y: 2}})
	require.Len(t, lines, 1)
	assert.Len(t, lines[0], 4)
	assert.True(t, closed)

	lines, _ = parts(geom.Point{X: 1, Y: 1})
	assert.Empty(t, lines)
}

func TestMapWrite(t *testing.T) {
	m, err := New(Extent{100, 120, 20, 40}, nil, 400)
	require.NoError(t, err)

	m.AddFeatures([]*Feature{{
		Layer: River,
		Geom:  geom.LineString{{X: 100, Y: 30}, {X: 120, Y: 30}},
	}}, DefaultStyles[River])

	temp, err := palettes.Temperature("C", palettes.TemperatureOptions{})
	require.NoError(t, err)
	grid := [][]float64{{-5, 0, math.NaN()}, {5, 10, 15}}
	require.NoError(t, m.Grid(grid, []float64{105, 110, 115}, []float64{25, 30}, temp))
	assert.Error(t, m.Grid(grid, []float64{105, 110}, []float64{25, 30}, temp))

	m.Gridlines(5, Style{Stroke: color.Gray{Y: 0x80}, Dash: "4,2"})
	require.NoError(t, m.Points([]float64{110}, []float64{30}, 3, Style{Fill: color.Black}))
	assert.Error(t, m.Points([]float64{110}, nil, 3, Style{}))
	m.Extrema([]annotate.Center{{Lon: 105, Lat: 25, Value: 996.4, Label: "L"}}, nil)

	initTime := time.Date(2021, 3, 13, 8, 0, 0, 0, time.UTC)
	m.ModelTitle(annotate.ModelTitle("2m Temperature", initTime, "ECMWF", 24, 0, false))
	m.Title("center")
	require.NoError(t, m.Colorbar(temp))
	m.Timestamp(clockwork.NewFakeClockAt(time.Date(2021, 3, 14, 1, 2, 3, 0, time.UTC)))

	_, h := m.Size()
	assert.Equal(t, marginTop+400+marginBottom+colorbarArea, h)

	var buf bytes.Buffer
	require.NoError(t, m.Write(&buf))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "M56.0 252.0L456.0 252.0")
	assert.Contains(t, out, `clip-path="url(#plotarea)"`)
	assert.Contains(t, out, "[ECMWF] 2m Temperature")
	assert.Contains(t, out, "FHour: 024h; Valid: 03/14T08")
	assert.Contains(t, out, "Created: 2021-03-14T01:02:03Z")
	assert.Contains(t, out, "110°E")
	assert.Contains(t, out, "30°N")
	assert.Contains(t, out, ">996<")
	assert.Contains(t, out, temp.Label)
	assert.Contains(t, out, "</svg>")
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestMapWriteError(t *testing.T) {
	m, err := New(DefaultExtent, nil, 100)
	require.NoError(t, err)
	assert.EqualError(t, m.Write(failWriter{}), "disk full")
}

type province struct {
	geom.Polygon
	Name string
}

func writeShapefile(t *testing.T, path string, recs ...province) {
	t.Helper()
	e, err := shp.NewEncoder(path, province{})
	require.NoError(t, err)
	for _, r := range recs {
		require.NoError(t, e.Encode(r))
	}
	e.Close()
}

func square(lon, lat, d float64) geom.Polygon {
	return geom.Polygon{{
		{X: lon, Y: lat}, {X: lon, Y: lat + d}, {X: lon + d, Y: lat + d}, {X: lon + d, Y: lat}, {X: lon, Y: lat},
	}}
}

func TestFeatureStore(t *testing.T) {
	dir := t.TempDir()
	writeShapefile(t, filepath.Join(dir, "prov.shp"),
		province{square(110, 30, 2), "A"},
		province{square(80, 40, 2), "B"},
	)
	s := NewFeatureStore(dir, &StoreOptions{Files: map[Layer]string{
		Province: "prov.shp",
		River:    "missing.shp",
	}})
	assert.Equal(t, []Layer{Province}, s.Layers())

	fs, err := s.Query(Province, Extent{100, 120, 20, 40})
	require.NoError(t, err)
	require.Len(t, fs, 1)
	assert.Equal(t, Province, fs[0].Layer)
	b := fs[0].Bounds()
	assert.Equal(t, 110.0, b.Min.X)
	assert.Equal(t, 32.0, b.Max.Y)

	fs, err = s.Query(Province, Extent{0, 360, -90, 90})
	require.NoError(t, err)
	assert.Len(t, fs, 2)

	_, err = s.Query(River, DefaultExtent)
	assert.Error(t, err)
	_, err = s.Query(County, DefaultExtent)
	assert.Error(t, err)

	m, err := New(Extent{100, 120, 20, 40}, nil, 200)
	require.NoError(t, err)
	require.NoError(t, m.AddLayer(s, Province, nil))
	require.Len(t, m.layers, 1)

	s.Flush()
	fs, err = s.Query(Province, Extent{100, 120, 20, 40})
	require.NoError(t, err)
	assert.Len(t, fs, 1)
}

func TestMask(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "outline.shp")
	writeShapefile(t, path,
		province{square(110, 30, 2), "A"},
		province{square(114, 30, 1), "B"},
	)
	outline, err := ReadShapefile(path, Province)
	require.NoError(t, err)

	lons := []float64{109, 111, 111.5, 113, 114.5}
	lats := []float64{29, 30.5}
	grid := [][]float64{
		{1, 2, 3, 4, 5},
		{6, 7, 8, 9, 10},
	}
	masked, err := Mask(grid, lons, lats, outline)
	require.NoError(t, err)

	// Row 29°N is below both squares. At 30.5°N, 111 and 111.5 are
	// inside A, 113 is between the squares and 114.5 is inside B.
	for i := range lons {
		assert.True(t, math.IsNaN(masked[0][i]), "lon %v lat 29", lons[i])
	}
	assert.True(t, math.IsNaN(masked[1][0]))
	assert.Equal(t, 7.0, masked[1][1])
	assert.Equal(t, 8.0, masked[1][2])
	assert.True(t, math.IsNaN(masked[1][3]))
	assert.Equal(t, 10.0, masked[1][4])

	// The input is unchanged.
	assert.Equal(t, 1.0, grid[0][0])

	_, err = Mask(grid, lons[:4], lats, outline)
	assert.Error(t, err)
	_, err = Mask(grid, lons, lats[:1], outline)
	assert.Error(t, err)

	river := []*Feature{{Layer: River, Geom: geom.LineString{{X: 100, Y: 30}, {X: 120, Y: 30}}}}
	_, err = Mask(grid, lons, lats, river)
	assert.Error(t, err)
}

func TestExtremaColors(t *testing.T) {
	m, err := New(Extent{100, 120, 20, 40}, nil, 400)
	require.NoError(t, err)
	m.Extrema(
		[]annotate.Center{{Lon: 105, Lat: 25, Value: 996, Label: "L"}},
		[]annotate.Center{{Lon: 115, Lat: 35, Value: 1032, Label: "H"}},
	)
	var buf bytes.Buffer
	require.NoError(t, m.Write(&buf))
	out := buf.String()
	assert.Regexp(t, `fill="#ff0000"[^>]*>L<`, out)
	assert.Regexp(t, `fill="#0000ff"[^>]*>H<`, out)
	assert.NotRegexp(t, `fill="#0000ff"[^>]*>L<`, out)
	assert.NotRegexp(t, `fill="#ff0000"[^>]*>H<`, out)
}
