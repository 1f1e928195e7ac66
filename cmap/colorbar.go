// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmap

import (
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ColorMapper adapts a Colormap to gonum plot's palette.ColorMap.
// Values in [Min, Max] are mapped through Norm, or linearly if Norm
// is nil.
type ColorMapper struct {
	Cmap *Colormap
	Norm Norm

	min, max, alpha float64
}

var _ palette.ColorMap = (*ColorMapper)(nil)

// NewColorMapper returns a ColorMapper for cm over [min, max].
func NewColorMapper(cm *Colormap, min, max float64) *ColorMapper {
	return &ColorMapper{Cmap: cm, min: min, max: max, alpha: 1}
}

func (m *ColorMapper) At(v float64) (color.Color, error) {
	// Allow for rounding in callers that step from Min to Max.
	eps := 1e-9 * math.Abs(m.max-m.min)
	switch {
	case math.IsNaN(v):
		return m.Cmap.Bad, palette.ErrNaN
	case v < m.min-eps:
		return m.Cmap.Under, palette.ErrUnderflow
	case v > m.max+eps:
		return m.Cmap.Over, palette.ErrOverflow
	}
	v = math.Max(m.min, math.Min(m.max, v))
	var x float64
	if m.Norm != nil {
		x = m.Norm.Normalize(v)
	} else {
		x = LinearNorm{m.min, m.max}.Normalize(v)
	}
	c := m.Cmap.At(x)
	c.A = uint8(math.Round(float64(c.A) * m.alpha))
	return c, nil
}

func (m *ColorMapper) Max() float64           { return m.max }
func (m *ColorMapper) SetMax(v float64)       { m.max = v }
func (m *ColorMapper) Min() float64           { return m.min }
func (m *ColorMapper) SetMin(v float64)       { m.min = v }
func (m *ColorMapper) Alpha() float64         { return m.alpha }
func (m *ColorMapper) SetAlpha(alpha float64) { m.alpha = alpha }

// Palette returns n colors evenly spaced over [Min, Max].
func (m *ColorMapper) Palette(n int) palette.Palette {
	var p colorList
	for _, v := range Linspace(m.min, m.max, n) {
		c, _ := m.At(v)
		p = append(p, c)
	}
	return p
}

type colorList []color.Color

func (p colorList) Colors() []color.Color { return p }

// WriteColorbar renders cm as a horizontal colorbar image titled
// with its name. format is any format gonum plot supports, such as
// "png" or "svg".
func WriteColorbar(w io.Writer, cm *Colormap, format string) error {
	p := plot.New()
	p.Title.Text = cm.Name
	p.HideY()
	p.X.Tick.Marker = plot.ConstantTicks(nil)
	p.Add(&plotter.ColorBar{ColorMap: NewColorMapper(cm, 0, 1), Colors: cm.N()})

	wt, err := p.WriterTo(6*vg.Inch, 1*vg.Inch, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
