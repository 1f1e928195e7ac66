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

func TestParseColor(t *testing.T) {
	for _, test := range []struct {
		in   string
		want color.NRGBA
	}{
		{"#ff0000", color.NRGBA{255, 0, 0, 255}},
		{"#FF0000", color.NRGBA{255, 0, 0, 255}},
		{"#f00", color.NRGBA{255, 0, 0, 255}},
		{"#00ff0080", color.NRGBA{0, 255, 0, 128}},
		{"red", color.NRGBA{255, 0, 0, 255}},
		{" WhiteSmoke ", color.NRGBA{245, 245, 245, 255}},
		{"k", color.NRGBA{0, 0, 0, 255}},
		{"none", Transparent},
	} {
		got, err := ParseColor(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, got, test.in)
	}

	for _, bad := range []string{"", "#12345", "notacolor", "#gg0000", "2AA92A"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestToHex(t *testing.T) {
	assert.Equal(t, "#3b2204", ToHex(MustParseColor("#3B2204")))
	assert.Equal(t, "#000000", ToHex(color.Black))
	assert.Equal(t, []color.NRGBA{{161, 241, 141, 255}}, RGB255([3]uint8{161, 241, 141}))
	assert.Equal(t, []color.NRGBA{{255, 0, 128, 255}}, RGBFloat([3]float64{1, 0, 128.0 / 255}))
}
