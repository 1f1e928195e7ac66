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

func TestCanonicalName(t *testing.T) {
	for in, want := range map[string]string{
		"3gauss":            "N3gauss",
		"BlAqGrYeOrReVi200": "BlAqGrYeOrReVi200",
		"cmp-flux":          "cmp_flux",
		"":                  "",
	} {
		assert.Equal(t, want, CanonicalName(in), in)
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	cm, err := NewListed("8-colors", []color.NRGBA{red, blue})
	require.NoError(t, err)
	require.NoError(t, reg.RegisterWithReverse(cm))

	got, err := reg.Get("8-colors")
	require.NoError(t, err)
	assert.Same(t, cm, got)

	rev, err := reg.Get("N8_colors_r")
	require.NoError(t, err)
	assert.Equal(t, []color.NRGBA{blue, red}, rev.Colors())

	assert.Equal(t, []string{"N8_colors", "N8_colors_r"}, reg.Names())

	_, err = reg.Get("missing")
	assert.ErrorIs(t, err, ErrUnknown)

	assert.Error(t, reg.Register(nil))
}

func TestRegistryFromColors(t *testing.T) {
	reg := NewRegistry()
	cm, err := reg.FromColors("ws", []string{"whitesmoke", "dimgray"})
	require.NoError(t, err)
	assert.Equal(t, DefaultN, cm.N())
	_, err = reg.Get("ws")
	assert.NoError(t, err)

	_, err = reg.FromColors("one", []string{"red"})
	assert.Error(t, err)
	_, err = reg.FromColors("bad", []string{"red", "nope"})
	assert.Error(t, err)
}
