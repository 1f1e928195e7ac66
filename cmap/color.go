// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmap

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Transparent is the "none" color.
var Transparent = color.NRGBA{}

// shortNames are the single-letter color codes.
var shortNames = map[string]color.NRGBA{
	"b": {0, 0, 255, 255},
	"g": {0, 128, 0, 255},
	"r": {255, 0, 0, 255},
	"c": {0, 191, 191, 255},
	"m": {191, 0, 191, 255},
	"y": {191, 191, 0, 255},
	"k": {0, 0, 0, 255},
	"w": {255, 255, 255, 255},
}

// ParseColor parses a color specification. It accepts "#rgb",
// "#rrggbb" and "#rrggbbaa" hex strings, CSS color names, the
// single-letter codes b, g, r, c, m, y, k and w, and "none".
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "none" || s == "transparent":
		return Transparent, nil

	case strings.HasPrefix(s, "#"):
		alpha := uint8(255)
		if len(s) == 9 {
			a, err := strconv.ParseUint(s[7:], 16, 8)
			if err != nil {
				return color.NRGBA{}, fmt.Errorf("cmap: invalid color %q", s)
			}
			alpha, s = uint8(a), s[:7]
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("cmap: invalid color %q", s)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{r, g, b, alpha}, nil
	}
	if c, ok := shortNames[s]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{c.R, c.G, c.B, c.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("cmap: invalid color %q", s)
}

// MustParseColor is like ParseColor but panics on error. It is
// intended for static color tables.
func MustParseColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseColors parses every element of ss.
func ParseColors(ss []string) ([]color.NRGBA, error) {
	out := make([]color.NRGBA, len(ss))
	for i, s := range ss {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// MustParseColors is like ParseColors but panics on error.
func MustParseColors(ss ...string) []color.NRGBA {
	out, err := ParseColors(ss)
	if err != nil {
		panic(err)
	}
	return out
}

// RGB255 converts rows of 0-255 RGB triples to opaque colors.
func RGB255(rows ...[3]uint8) []color.NRGBA {
	out := make([]color.NRGBA, len(rows))
	for i, r := range rows {
		out[i] = color.NRGBA{r[0], r[1], r[2], 255}
	}
	return out
}

// RGBFloat converts rows of 0-1 RGB triples to opaque colors.
func RGBFloat(rows ...[3]float64) []color.NRGBA {
	out := make([]color.NRGBA, len(rows))
	for i, r := range rows {
		c := colorful.Color{R: r[0], G: r[1], B: r[2]}.Clamped()
		cr, cg, cb := c.RGB255()
		out[i] = color.NRGBA{cr, cg, cb, 255}
	}
	return out
}

// ToHex returns c as a lower-case "#rrggbb" string. Alpha is
// dropped.
func ToHex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
