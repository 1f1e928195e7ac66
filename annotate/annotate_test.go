// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annotate

import (
	"math"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var init0820 = time.Date(2018, 8, 20, 8, 0, 0, 0, time.UTC)

func TestParseInitTime(t *testing.T) {
	for _, s := range []string{"18082008", "2018082008"} {
		got, err := ParseInitTime(s)
		require.NoError(t, err, s)
		assert.Equal(t, init0820, got, s)
	}
	_, err := ParseInitTime("2018-08-20")
	assert.Error(t, err)
}

func TestModelTimeStamp(t *testing.T) {
	s := ModelTimeStamp(init0820, 24, 0)
	assert.Equal(t, Stamp{
		Initial: "Initial: 2018/08/20T08",
		FHour:   "FHour: 024",
		Valid:   "Valid: 08/21T08",
	}, s)

	s = ModelTimeStamp(init0820, 24, 12)
	assert.Equal(t, "Valid: 08/20T20 to 21T08", s.Valid)
}

func TestModelTitle(t *testing.T) {
	got := ModelTitle("500hPa Height", init0820, "ECMWF", 6, 0, false)
	assert.Equal(t, Title{
		Left:  "[ECMWF] 500hPa Height",
		Right: "Initial: 2018/08/20T08\nFHour: 006h; Valid: 08/20T14",
	}, got)

	got = ModelTitle("Rain", init0820, "", 6, 6, true)
	assert.Equal(t, Title{
		Left: "Rain\nInitial: 2018/08/20T08 FHour: 006h; Valid: 08/20T08 to 20T14",
	}, got)
}

func TestTimestamp(t *testing.T) {
	loc := time.FixedZone("CST", 8*3600)
	clock := clockwork.NewFakeClockAt(time.Date(2021, 3, 13, 20, 30, 5, 0, loc))
	assert.Equal(t, "Created: 2021-03-13T12:30:05Z", Timestamp(clock))
}

func TestCheckModel(t *testing.T) {
	dirs := map[string]string{"ECMWF": "ECMWF_HR", "GRAPES_GFS": "GRAPES_GFS"}
	dir, err := CheckModel("ecmwf", dirs)
	require.NoError(t, err)
	assert.Equal(t, "ECMWF_HR", dir)

	_, err = CheckModel("ncep", dirs)
	assert.ErrorContains(t, err, "ECMWF,GRAPES_GFS")
}

func TestCheckFrange(t *testing.T) {
	for _, tt := range []struct {
		in   []int
		want []int
	}{
		{[]int{0, 24}, []int{0, 6, 12, 18, 24}},
		{[]int{0, 10, 3}, []int{0, 3, 6, 9}},
		{[]int{12, 12}, []int{12}},
	} {
		got, err := CheckFrange(tt.in...)
		require.NoError(t, err, "%v", tt.in)
		assert.Equal(t, tt.want, got, "%v", tt.in)
	}
	for _, bad := range [][]int{{0}, {0, 1, 2, 3}, {24, 0}, {0, 24, 0}} {
		_, err := CheckFrange(bad...)
		assert.Error(t, err, "%v", bad)
	}
}

func TestFigSize(t *testing.T) {
	w, h := FigSize(1, false)
	assert.Equal(t, 1.0, w)
	assert.InDelta(t, 0.6180339887498949, h, 1e-15)
	_, h = FigSize(1, true)
	assert.InDelta(t, 1.6180339887498949, h, 1e-15)
}

func TestAutosize(t *testing.T) {
	assert.Equal(t, Sizes{Labels: 40, Ticks: 20, Marker: 144, LineWidth: 8}, Autosize(8))
}

func TestSubplotArrangement(t *testing.T) {
	for n, want := range map[int][2]int{1: {1, 1}, 2: {2, 1}, 3: {2, 2}, 5: {3, 2}, 7: {3, 3}, 9: {3, 3}, 10: {4, 3}} {
		r, c := SubplotArrangement(n)
		assert.Equal(t, want, [2]int{r, c}, "n=%d", n)
	}
}

func TestAxisLabels(t *testing.T) {
	labels := AxisLabels(54)
	assert.Equal(t, "A", labels[0])
	assert.Equal(t, "Z", labels[25])
	assert.Equal(t, "a", labels[26])
	assert.Equal(t, "z", labels[51])
	assert.Equal(t, "A", labels[52])
	assert.Equal(t, "B", labels[53])
}

func TestCenterLimits(t *testing.T) {
	lo, hi := CenterLimits(-2, 5)
	assert.Equal(t, -5.0, lo)
	assert.Equal(t, 5.0, hi)
}

func TestColorbarTicks(t *testing.T) {
	ticks := ColorbarTicks(0, 100, 6)
	require.GreaterOrEqual(t, len(ticks), 2)
	assert.LessOrEqual(t, len(ticks), 6)
	for i, v := range ticks {
		assert.True(t, v >= 0 && v <= 100, "tick %g", v)
		if i > 0 {
			assert.Greater(t, v, ticks[i-1])
		}
	}
	assert.Nil(t, ColorbarTicks(5, 5, 6))
}

func TestLonLatLabel(t *testing.T) {
	assert.Equal(t, "120°E", LonLabel(120))
	assert.Equal(t, "60°W", LonLabel(-60))
	assert.Equal(t, "170°W", LonLabel(190))
	assert.Equal(t, "0°", LonLabel(0))
	assert.Equal(t, "180°", LonLabel(180))
	assert.Equal(t, "22.5°E", LonLabel(22.5))
	assert.Equal(t, "30°N", LatLabel(30))
	assert.Equal(t, "15°S", LatLabel(-15))
	assert.Equal(t, "0°", LatLabel(0))
}

func TestPressureExtrema(t *testing.T) {
	const n = 20
	axis := make([]float64, n)
	for i := range axis {
		axis[i] = float64(i)
	}
	bump := func(x, y, x0, y0 float64) float64 {
		return 20 * math.Exp(-((x-x0)*(x-x0)+(y-y0)*(y-y0))/18)
	}
	grid := make([][]float64, n)
	for i := range grid {
		grid[i] = make([]float64, n)
		for j := range grid[i] {
			grid[i][j] = 1010 - bump(axis[j], axis[i], 5, 5) + bump(axis[j], axis[i], 14, 14)
		}
	}
	grid[0][0] = math.NaN()

	lows, highs, err := PressureExtrema(grid, axis, axis)
	require.NoError(t, err)
	require.Len(t, lows, 1)
	require.Len(t, highs, 1)
	assert.Equal(t, 5.0, lows[0].Lon)
	assert.Equal(t, 5.0, lows[0].Lat)
	assert.Equal(t, "L", lows[0].Label)
	assert.InDelta(t, 990, lows[0].Value, 0.01)
	assert.Equal(t, 14.0, highs[0].Lon)
	assert.Equal(t, 14.0, highs[0].Lat)
	assert.Equal(t, "H", highs[0].Label)
	assert.InDelta(t, 1030, highs[0].Value, 0.01)
	assert.Equal(t, "1029", highs[0].Text())

	_, _, err = PressureExtrema(grid[:3], axis, axis)
	assert.Error(t, err)
}

func TestThin(t *testing.T) {
	cs := []Center{{Lon: 0, Lat: 0}, {Lon: 0.2, Lat: 0}, {Lon: 1, Lat: 0}}
	assert.Equal(t, []Center{cs[0], cs[2]}, thin(cs, 0.5))
}
