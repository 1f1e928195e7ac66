// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmap

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// A Segment is one breakpoint of a color channel. Below is the
// channel value approaching X from the left and Above is the value
// leaving X to the right. They differ only where the channel steps.
type Segment struct {
	X, Below, Above float64
}

// SegmentData holds the breakpoints of each color channel. The
// channels need not share breakpoints, but in each channel X must be
// non-decreasing from 0 to 1.
type SegmentData struct {
	Red, Green, Blue []Segment
}

var channelNames = [3]string{"red", "green", "blue"}

// FromSegmentData returns a colormap of n entries that interpolates
// each channel linearly between its breakpoints. If n <= 0, DefaultN
// is used.
func FromSegmentData(name string, data SegmentData, n int) (*Colormap, error) {
	if n <= 0 {
		n = DefaultN
	}
	var chans [3][]float64
	for i, segs := range [3][]Segment{data.Red, data.Green, data.Blue} {
		ch, err := channelLUT(segs, n)
		if err != nil {
			return nil, fmt.Errorf("cmap: %s: %s channel: %w", name, channelNames[i], err)
		}
		chans[i] = ch
	}
	lut := make([]color.NRGBA, n)
	for i := range lut {
		c := colorful.Color{R: chans[0][i], G: chans[1][i], B: chans[2][i]}.Clamped()
		r, g, b := c.RGB255()
		lut[i] = color.NRGBA{r, g, b, 255}
	}
	return newColormap(name, lut), nil
}

// channelLUT samples one channel at n evenly spaced points. The first
// sample takes the Above value at 0 and the last the Below value at 1.
func channelLUT(segs []Segment, n int) ([]float64, error) {
	if len(segs) < 2 {
		return nil, fmt.Errorf("need at least two breakpoints, got %d", len(segs))
	}
	if segs[0].X != 0 || segs[len(segs)-1].X != 1 {
		return nil, errors.New("breakpoints must start at 0 and end at 1")
	}
	for i := 1; i < len(segs); i++ {
		if segs[i].X < segs[i-1].X {
			return nil, ErrNotMonotonic
		}
	}

	lut := make([]float64, n)
	if n == 1 {
		lut[0] = segs[len(segs)-1].Below
		return lut, nil
	}
	lut[0], lut[n-1] = segs[0].Above, segs[len(segs)-1].Below
	for i := 1; i < n-1; i++ {
		x := float64(i) / float64(n-1)
		// segs[j-1].X < x <= segs[j].X
		j := sort.Search(len(segs), func(j int) bool { return segs[j].X >= x })
		lo, hi := segs[j-1], segs[j]
		t := (x - lo.X) / (hi.X - lo.X)
		lut[i] = lo.Above + t*(hi.Below-lo.Above)
	}
	return lut, nil
}
