// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctables

import (
	"fmt"

	"github.com/nmcdev/go-metgraphics/cmap"
)

// channels holds the breakpoint rows {x, below, above} of each color
// channel. See cmap.Segment.
type channels struct {
	r, g, b [][3]float64
}

func (c channels) colormap(name string) (*cmap.Colormap, error) {
	cm, err := cmap.FromSegmentData(name, cmap.SegmentData{
		Red:   segments(c.r),
		Green: segments(c.g),
		Blue:  segments(c.b),
	}, cmap.DefaultN)
	if err != nil {
		return nil, fmt.Errorf("ctables: %w", err)
	}
	return cm, nil
}

func segments(rows [][3]float64) []cmap.Segment {
	out := make([]cmap.Segment, len(rows))
	for i, r := range rows {
		out[i] = cmap.Segment{X: r[0], Below: r[1], Above: r[2]}
	}
	return out
}

// aroundZero joins two halves of a diverging table so they meet where
// zero falls in the data range [lo, hi]. Each half's breakpoints run
// over [0, 1] and are squeezed into its side of zero.
func aroundZero(name string, lo, hi float64, below, above channels) (*cmap.Colormap, error) {
	if !(lo <= 0 && 0 <= hi && lo < hi) {
		return nil, fmt.Errorf("ctables: %s: range [%g, %g] must contain zero", name, lo, hi)
	}
	pct := -lo / (hi - lo)
	join := func(b, a [][3]float64) [][3]float64 {
		out := make([][3]float64, 0, len(b)+len(a))
		for _, r := range b {
			out = append(out, [3]float64{r[0] * pct, r[1], r[2]})
		}
		for _, r := range a {
			out = append(out, [3]float64{pct + (1-pct)*r[0], r[1], r[2]})
		}
		return out
	}
	return channels{
		r: join(below.r, above.r),
		g: join(below.g, above.g),
		b: join(below.b, above.b),
	}.colormap(name)
}
