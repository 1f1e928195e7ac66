// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmap

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReversed(t *testing.T) {
	cm, err := NewListed("rgb", []color.NRGBA{red, green, blue})
	require.NoError(t, err)
	cm.Under, cm.Over = black, white

	r := Reversed(cm)
	assert.Equal(t, "rgb_r", r.Name)
	assert.Equal(t, []color.NRGBA{blue, green, red}, r.Colors())
	assert.Equal(t, white, r.Under)
	assert.Equal(t, black, r.Over)

	rr := Reversed(r)
	assert.Equal(t, "rgb", rr.Name)
	assert.Equal(t, cm.Colors(), rr.Colors())

	// The original is untouched.
	assert.Equal(t, []color.NRGBA{red, green, blue}, cm.Colors())
}

func TestTruncate(t *testing.T) {
	cm, err := FromList("bw", []color.NRGBA{black, white}, nil, 256)
	require.NoError(t, err)

	tr, err := Truncate(cm, 0.5, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "trunc(bw,0.50,1.00)", tr.Name)
	assert.Equal(t, 10, tr.N())
	assert.Equal(t, white, tr.At(1))
	assert.True(t, tr.At(0).R >= 127, "truncated map starts at mid gray, got %v", tr.At(0))

	for _, r := range [][2]float64{{-0.1, 1}, {0, 1.5}, {0.6, 0.4}} {
		_, err := Truncate(cm, r[0], r[1], 0)
		assert.Error(t, err, "%v", r)
	}
}

func TestGrayify(t *testing.T) {
	cm, err := NewListed("x", []color.NRGBA{black, white, red})
	require.NoError(t, err)
	g := Grayify(cm)
	assert.Equal(t, "x_gray", g.Name)
	assert.Equal(t, []color.NRGBA{black, white, {139, 139, 139, 255}}, g.Colors())
}

func TestLinspaceArange(t *testing.T) {
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, Linspace(0, 1, 5))
	assert.Equal(t, []float64{3}, Linspace(3, 4, 1))
	assert.Nil(t, Linspace(0, 1, 0))

	assert.Len(t, Arange(940, 1067.5, 2.5), 51)
	assert.Equal(t, []float64{-3, -2.5, -2, -1.5, -1, -0.5}, Arange(-3, 0, 0.5))
	assert.Equal(t, []float64{0, 1, 2}, Arange(0, 3, 1))
	assert.Nil(t, Arange(3, 0, 1))
	assert.Equal(t, []float64{1, 2, 3}, Concat([]float64{1}, []float64{2, 3}))
}
