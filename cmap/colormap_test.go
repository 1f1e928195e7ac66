// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmap

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.NRGBA{255, 0, 0, 255}
	green = color.NRGBA{0, 255, 0, 255}
	blue  = color.NRGBA{0, 0, 255, 255}
	black = color.NRGBA{0, 0, 0, 255}
	white = color.NRGBA{255, 255, 255, 255}
)

func TestListedAt(t *testing.T) {
	cm, err := NewListed("rgbk", []color.NRGBA{red, green, blue, black})
	require.NoError(t, err)
	cm.Under, cm.Over, cm.Bad = white, white, Transparent

	for _, test := range []struct {
		x    float64
		want color.NRGBA
	}{
		{0, red},
		{0.24, red},
		{0.25, green},
		{0.6, blue},
		{0.99, black},
		{1, black},
		{-0.01, white},
		{1.01, white},
		{math.Inf(-1), white},
		{math.Inf(1), white},
		{math.NaN(), Transparent},
	} {
		assert.Equal(t, test.want, cm.At(test.x), "At(%v)", test.x)
	}
	assert.Equal(t, 4, cm.N())
	assert.Equal(t, "rgbk(4)", cm.String())

	_, err = NewListed("empty", nil)
	assert.Error(t, err)
}

func TestFromList(t *testing.T) {
	cm, err := FromList("bw", []color.NRGBA{black, white}, nil, 3)
	require.NoError(t, err)
	assert.Equal(t, []color.NRGBA{black, {128, 128, 128, 255}, white}, cm.Colors())

	cm, err = FromList("bw", []color.NRGBA{black, white}, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultN, cm.N())
}

func TestFromListStep(t *testing.T) {
	cm, err := FromList("step", []color.NRGBA{red, red, blue, blue}, []float64{0, 0.5, 0.5, 1}, 5)
	require.NoError(t, err)
	assert.Equal(t, []color.NRGBA{red, red, red, blue, blue}, cm.Colors())
}

func TestFromListErrors(t *testing.T) {
	_, err := FromList("one", []color.NRGBA{red}, nil, 0)
	assert.Error(t, err)

	_, err = FromList("len", []color.NRGBA{red, blue}, []float64{0, 0.5, 1}, 0)
	assert.True(t, errors.Is(err, ErrLength))

	_, err = FromList("mono", []color.NRGBA{red, green, blue}, []float64{0, 0.8, 0.5}, 0)
	assert.True(t, errors.Is(err, ErrNotMonotonic))

	_, err = FromList("ends", []color.NRGBA{red, blue}, []float64{0.1, 1}, 0)
	assert.Error(t, err)
}

func TestMakeCmap(t *testing.T) {
	a, err := MakeCmap("a", []color.NRGBA{red, green, blue}, []float64{10, 20, 30}, 64)
	require.NoError(t, err)
	b, err := FromList("b", []color.NRGBA{red, green, blue}, nil, 64)
	require.NoError(t, err)
	assert.Equal(t, b.Colors(), a.Colors())

	_, err = MakeCmap("c", []color.NRGBA{red, green}, []float64{1, 2, 3}, 0)
	assert.True(t, errors.Is(err, ErrLength))

	_, err = MakeCmap("d", []color.NRGBA{red, green}, []float64{5, 5}, 0)
	assert.Error(t, err)
}

func TestFromLevelsAndColors(t *testing.T) {
	c := []color.NRGBA{black, red, green, blue, white}
	levels := []float64{0, 1, 2, 3}

	cm, norm, err := FromLevelsAndColors(levels, c, Both)
	require.NoError(t, err)
	assert.Equal(t, []color.NRGBA{red, green, blue}, cm.Colors())
	assert.Equal(t, black, cm.Under)
	assert.Equal(t, white, cm.Over)
	assert.Equal(t, 3, norm.NColors)

	for _, test := range []struct {
		v    float64
		want color.NRGBA
	}{
		{-5, black},
		{0, red},
		{0.5, red},
		{1, green},
		{2.99, blue},
		{3, white},
		{100, white},
	} {
		assert.Equal(t, test.want, Color(cm, norm, test.v), "Color(%v)", test.v)
	}

	cm, _, err = FromLevelsAndColors(levels, c[1:4], Neither)
	require.NoError(t, err)
	assert.Equal(t, Transparent, cm.Under)
	assert.Equal(t, Transparent, cm.Over)

	cm, _, err = FromLevelsAndColors(levels, c[1:], Max)
	require.NoError(t, err)
	assert.Equal(t, Transparent, cm.Under)
	assert.Equal(t, white, cm.Over)

	_, _, err = FromLevelsAndColors(levels, c, Max)
	assert.True(t, errors.Is(err, ErrLength))

	_, _, err = FromLevelsAndColors([]float64{0, 2, 1}, c[:2], Neither)
	assert.True(t, errors.Is(err, ErrNotMonotonic))
}
