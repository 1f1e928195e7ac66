// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmap

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/palette/brewer"
)

// Brewer returns a continuous colormap through the largest variant of
// the named ColorBrewer palette, such as "Blues" or "YlOrRd".
func Brewer(name string) (*Colormap, error) {
	for n := 12; n >= 3; n-- {
		p, err := brewer.GetPalette(brewer.TypeAny, name, n)
		if err != nil {
			continue
		}
		var colors []color.NRGBA
		for _, c := range p.Colors() {
			colors = append(colors, color.NRGBAModel.Convert(c).(color.NRGBA))
		}
		return FromList(name, colors, nil, DefaultN)
	}
	return nil, fmt.Errorf("cmap: no ColorBrewer palette %q: %w", name, ErrUnknown)
}
