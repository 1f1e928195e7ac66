// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maps

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/ctessum/geom"
	"github.com/jonboulle/clockwork"

	"github.com/nmcdev/go-metgraphics/annotate"
	"github.com/nmcdev/go-metgraphics/cmap"
	"github.com/nmcdev/go-metgraphics/palettes"
)

// Margins around the plot area, in pixels.
const (
	marginTop    = 52
	marginLeft   = 56
	marginRight  = 24
	marginBottom = 28
	colorbarArea = 60
	lineHeight   = 17
)

// A Style says how to stroke and fill a layer. A nil color is not
// painted.
type Style struct {
	Stroke color.Color
	Fill   color.Color
	// Width is the stroke width in pixels. Zero means 1.
	Width float64
	// Dash is an SVG stroke-dasharray, such as "4,2".
	Dash string
}

func (s Style) css() string {
	w := s.Width
	if w == 0 {
		w = 1
	}
	css := paint("stroke", s.Stroke) + ";" + paint("fill", s.Fill) + ";stroke-width:" + num(w)
	if s.Dash != "" {
		css += ";stroke-dasharray:" + s.Dash
	}
	return css
}

// DefaultStyles are the styles AddLayer uses for each layer.
var DefaultStyles = map[Layer]Style{
	Coastline: {Stroke: color.Black, Width: 1.2},
	Nation:    {Stroke: color.Black, Width: 1.0},
	Province:  {Stroke: color.Black, Width: 0.7},
	County:    {Stroke: color.Gray{Y: 0x80}, Width: 0.5},
	River:     {Stroke: cmap.MustParseColor("blue"), Width: 0.8},
	RiverHigh: {Stroke: cmap.MustParseColor("blue"), Width: 0.5},
}

func paint(prop string, c color.Color) string {
	if c == nil {
		return prop + ":none"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0 {
		return prop + ":none"
	}
	css := prop + ":" + cmap.ToHex(n)
	if n.A != 0xff {
		css += ";" + prop + "-opacity:" + num(float64(n.A)/0xff)
	}
	return css
}

func num(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// A Map is an SVG map of an extent in some projection.
type Map struct {
	Extent Extent
	Proj   *Projection
	// Width and Height are the size of the plot area in pixels.
	Width, Height int

	xmin, xmax, ymin, ymax float64

	layers []func(*svg.SVG) // clipped to the plot area
	decor  []func(*svg.SVG)

	left, center, right string
	bar                 *palettes.Scheme
	stamp               string
}

// New returns an empty map of e, width pixels wide. The height follows
// from the projected aspect ratio. A nil p means PlateCarree(0).
func New(e Extent, p *Projection, width int) (*Map, error) {
	if err := CheckRegion(e); err != nil {
		return nil, err
	}
	if width <= 0 {
		return nil, fmt.Errorf("maps: width %d must be positive", width)
	}
	if p == nil {
		p = PlateCarree(0)
	}
	m := &Map{Extent: e, Proj: p, Width: width}
	m.xmin, m.ymin = math.Inf(1), math.Inf(1)
	m.xmax, m.ymax = math.Inf(-1), math.Inf(-1)
	const n = 32
	for i := 0; i <= n; i++ {
		f := float64(i) / n
		lon := e.LonMin + f*(e.LonMax-e.LonMin)
		lat := e.LatMin + f*(e.LatMax-e.LatMin)
		for _, pt := range [][2]float64{{lon, e.LatMin}, {lon, e.LatMax}, {e.LonMin, lat}, {e.LonMax, lat}} {
			x, y, err := p.Project(pt[0], pt[1])
			if err != nil {
				return nil, fmt.Errorf("maps: projecting %v: %w", e, err)
			}
			m.xmin, m.xmax = math.Min(m.xmin, x), math.Max(m.xmax, x)
			m.ymin, m.ymax = math.Min(m.ymin, y), math.Max(m.ymax, y)
		}
	}
	dx, dy := m.xmax-m.xmin, m.ymax-m.ymin
	if !(dx > 0 && dy > 0) || math.IsInf(dx, 0) || math.IsInf(dy, 0) {
		return nil, fmt.Errorf("maps: %v cannot be drawn in %s", e, p.Name)
	}
	m.Height = max(1, int(math.Round(float64(width)*dy/dx)))
	return m, nil
}

// Size returns the size of the whole image in pixels.
func (m *Map) Size() (width, height int) {
	height = marginTop + m.Height + marginBottom
	if m.bar != nil {
		height += colorbarArea
	}
	return marginLeft + m.Width + marginRight, height
}

// Pixel returns the image coordinates of (lon, lat).
func (m *Map) Pixel(lon, lat float64) (x, y float64, ok bool) {
	px, py, err := m.Proj.Project(lon, lat)
	if err != nil || math.IsNaN(px) || math.IsNaN(py) || math.IsInf(px, 0) || math.IsInf(py, 0) {
		return 0, 0, false
	}
	x = marginLeft + (px-m.xmin)/(m.xmax-m.xmin)*float64(m.Width)
	y = marginTop + (m.ymax-py)/(m.ymax-m.ymin)*float64(m.Height)
	return x, y, true
}

// path builds SVG path data through pts. Points that cannot be
// projected break the line.
func (m *Map) path(pts []geom.Point, closed bool) string {
	var d []byte
	inLine := false
	for _, p := range pts {
		x, y, ok := m.Pixel(p.X, p.Y)
		if !ok {
			inLine = false
			continue
		}
		if inLine {
			d = append(d, 'L')
		} else {
			d = append(d, 'M')
			inLine = true
		}
		d = strconv.AppendFloat(d, x, 'f', 1, 64)
		d = append(d, ' ')
		d = strconv.AppendFloat(d, y, 'f', 1, 64)
	}
	if closed && len(d) > 0 {
		d = append(d, 'Z')
	}
	return string(d)
}

// AddFeatures draws fs in style.
func (m *Map) AddFeatures(fs []*Feature, style Style) {
	var d strings.Builder
	for _, f := range fs {
		lines, closed := parts(f.Geom)
		for _, l := range lines {
			d.WriteString(m.path(l, closed))
		}
	}
	if d.Len() == 0 {
		return
	}
	data, css := d.String(), style.css()
	m.layers = append(m.layers, func(c *svg.SVG) {
		c.Path(data, css, `fill-rule="evenodd"`)
	})
}

// AddLayer draws the features of layer l from store that fall in the
// map's extent. A nil style means the layer's DefaultStyles entry.
func (m *Map) AddLayer(store *FeatureStore, l Layer, style *Style) error {
	fs, err := store.Query(l, m.Extent)
	if err != nil {
		return err
	}
	st := DefaultStyles[l]
	if style != nil {
		st = *style
	}
	m.AddFeatures(fs, st)
	return nil
}

// edges returns the n+1 cell edges around n cell centers.
func edges(xs []float64) []float64 {
	n := len(xs)
	es := make([]float64, n+1)
	for i := 1; i < n; i++ {
		es[i] = (xs[i-1] + xs[i]) / 2
	}
	es[0] = xs[0] - (es[1] - xs[0])
	es[n] = xs[n-1] + (xs[n-1] - es[n-1])
	return es
}

// Grid draws gridded data as colored cells, like pcolormesh.
// values[i][j] is the value at lats[i], lons[j]. NaNs and values
// mapped to transparent colors are left blank.
func (m *Map) Grid(values [][]float64, lons, lats []float64, s *palettes.Scheme) error {
	if len(lons) < 2 || len(lats) < 2 {
		return errors.New("maps: grid needs at least two longitudes and latitudes")
	}
	if len(values) != len(lats) {
		return fmt.Errorf("maps: grid has %d rows for %d latitudes", len(values), len(lats))
	}
	for _, row := range values {
		if len(row) != len(lons) {
			return fmt.Errorf("maps: grid row has %d values for %d longitudes", len(row), len(lons))
		}
	}
	xe, ye := edges(lons), edges(lats)
	type cell struct {
		d   string
		css string
	}
	var cells []cell
	for i, row := range values {
		for j, v := range row {
			if math.IsNaN(v) {
				continue
			}
			col := s.Color(v)
			if col.A == 0 {
				continue
			}
			d := m.path([]geom.Point{
				{X: xe[j], Y: ye[i]}, {X: xe[j+1], Y: ye[i]},
				{X: xe[j+1], Y: ye[i+1]}, {X: xe[j], Y: ye[i+1]},
			}, true)
			if d != "" {
				cells = append(cells, cell{d, paint("fill", col) + ";stroke:none"})
			}
		}
	}
	m.layers = append(m.layers, func(c *svg.SVG) {
		for _, cl := range cells {
			c.Path(cl.d, cl.css)
		}
	})
	return nil
}

// Points draws a circle of radius r pixels at each (lons[i], lats[i]).
func (m *Map) Points(lons, lats []float64, r int, style Style) error {
	if len(lons) != len(lats) {
		return fmt.Errorf("maps: %d longitudes but %d latitudes", len(lons), len(lats))
	}
	type pt struct{ x, y int }
	var pts []pt
	for i := range lons {
		if x, y, ok := m.Pixel(lons[i], lats[i]); ok {
			pts = append(pts, pt{int(math.Round(x)), int(math.Round(y))})
		}
	}
	css := style.css()
	m.layers = append(m.layers, func(c *svg.SVG) {
		for _, p := range pts {
			c.Circle(p.x, p.y, r, css)
		}
	})
	return nil
}

// Extrema labels pressure lows in red and highs in blue, with the
// value printed under each letter.
func (m *Map) Extrema(lows, highs []annotate.Center) {
	type label struct {
		x, y      int
		sym, text string
		fill      string
	}
	var ls []label
	add := func(cs []annotate.Center, fill string) {
		for _, c := range cs {
			if x, y, ok := m.Pixel(c.Lon, c.Lat); ok {
				ls = append(ls, label{int(x), int(y), c.Label, c.Text(), fill})
			}
		}
	}
	add(lows, "#ff0000")
	add(highs, "#0000ff")
	m.layers = append(m.layers, func(c *svg.SVG) {
		for _, l := range ls {
			c.Text(l.x, l.y, l.sym, `text-anchor="middle"`, `font-size="20px"`, `font-weight="bold"`, `fill="`+l.fill+`"`)
			c.Text(l.x, l.y+14, l.text, `text-anchor="middle"`, `font-size="11px"`, `font-weight="bold"`, `fill="`+l.fill+`"`)
		}
	})
}

// Gridlines draws at most n meridians and parallels at round
// longitudes and latitudes, labeled along the left and bottom edges.
func (m *Map) Gridlines(n int, style Style) {
	e := m.Extent
	const steps = 32
	var d strings.Builder
	type label struct {
		x, y int
		text string
	}
	var lonLabels, latLabels []label
	bottom := marginTop + m.Height
	for _, lon := range annotate.ColorbarTicks(e.LonMin, e.LonMax, n) {
		pts := make([]geom.Point, steps+1)
		for i := range pts {
			pts[i] = geom.Point{X: lon, Y: e.LatMin + float64(i)/steps*(e.LatMax-e.LatMin)}
		}
		d.WriteString(m.path(pts, false))
		if x, _, ok := m.Pixel(lon, e.LatMin); ok {
			lonLabels = append(lonLabels, label{int(x), bottom + 16, annotate.LonLabel(lon)})
		}
	}
	for _, lat := range annotate.ColorbarTicks(e.LatMin, e.LatMax, n) {
		pts := make([]geom.Point, steps+1)
		for i := range pts {
			pts[i] = geom.Point{X: e.LonMin + float64(i)/steps*(e.LonMax-e.LonMin), Y: lat}
		}
		d.WriteString(m.path(pts, false))
		if _, y, ok := m.Pixel(e.LonMin, lat); ok {
			latLabels = append(latLabels, label{marginLeft - 4, int(y), annotate.LatLabel(lat)})
		}
	}
	data, css := d.String(), style.css()
	m.layers = append(m.layers, func(c *svg.SVG) {
		c.Path(data, css)
	})
	m.decor = append(m.decor, func(c *svg.SVG) {
		for _, l := range lonLabels {
			c.Text(l.x, l.y, l.text, `text-anchor="middle"`, `font-size="11px"`, `fill="#444"`)
		}
		for _, l := range latLabels {
			c.Text(l.x, l.y, l.text, `text-anchor="end"`, `dy=".3em"`, `font-size="11px"`, `fill="#444"`)
		}
	})
}

// Title sets the centered title.
func (m *Map) Title(s string) { m.center = s }

// LeftTitle sets the title flush with the left edge of the plot.
func (m *Map) LeftTitle(s string) { m.left = s }

// RightTitle sets the title flush with the right edge of the plot.
func (m *Map) RightTitle(s string) { m.right = s }

// ModelTitle sets the left and right titles from t.
func (m *Map) ModelTitle(t annotate.Title) {
	m.left, m.right = t.Left, t.Right
}

// Colorbar draws a horizontal colorbar for s under the map.
func (m *Map) Colorbar(s *palettes.Scheme) error {
	if len(s.Bounds) < 2 {
		return fmt.Errorf("maps: scheme %s has no range to draw", s.Name)
	}
	m.bar = s
	return nil
}

// Timestamp writes the creation time, per clock, in the lower right
// corner.
func (m *Map) Timestamp(clock clockwork.Clock) {
	m.stamp = annotate.Timestamp(clock)
}

// Write renders the map as SVG to w.
func (m *Map) Write(w io.Writer) error {
	ew := &errWriter{w: w}
	width, height := m.Size()
	c := svg.New(ew)
	c.Start(width, height, `font-family="Helvetica,Arial,sans-serif"`)
	c.Rect(0, 0, width, height, "fill:#fff")

	c.ClipPath(`id="plotarea"`)
	c.Rect(marginLeft, marginTop, m.Width, m.Height)
	c.ClipEnd()
	c.Group(`clip-path="url(#plotarea)"`)
	for _, l := range m.layers {
		l(c)
	}
	c.Gend()
	c.Rect(marginLeft, marginTop, m.Width, m.Height, "fill:none;stroke:#000;stroke-width:1")

	for _, d := range m.decor {
		d(c)
	}
	m.titles(c)
	if m.bar != nil {
		m.colorbar(c, m.bar)
	}
	if m.stamp != "" {
		c.Text(width-4, height-4, m.stamp, `text-anchor="end"`, `font-size="9px"`, `fill="#666"`)
	}
	c.End()
	return ew.err
}

func (m *Map) titles(c *svg.SVG) {
	draw := func(s string, x int, anchor string) {
		lines := strings.Split(s, "\n")
		y := marginTop - 8 - (len(lines)-1)*lineHeight
		for i, l := range lines {
			c.Text(x, y+i*lineHeight, l, `text-anchor="`+anchor+`"`, `font-size="14px"`)
		}
	}
	if m.left != "" {
		draw(m.left, marginLeft, "start")
	}
	if m.center != "" {
		draw(m.center, marginLeft+m.Width/2, "middle")
	}
	if m.right != "" {
		draw(m.right, marginLeft+m.Width, "end")
	}
}

// barPos returns the position in [0, 1] of v along a colorbar whose
// bounds are evenly spaced.
func barPos(bounds []float64, v float64) float64 {
	n := len(bounds) - 1
	for i := 0; i < n; i++ {
		lo, hi := bounds[i], bounds[i+1]
		if v <= hi || i == n-1 {
			f := 0.0
			if hi > lo {
				f = (v - lo) / (hi - lo)
			}
			return (float64(i) + f) / float64(n)
		}
	}
	return 0
}

// barValue is the inverse of barPos.
func barValue(bounds []float64, p float64) float64 {
	n := len(bounds) - 1
	i := min(n-1, int(p*float64(n)))
	f := p*float64(n) - float64(i)
	return bounds[i] + f*(bounds[i+1]-bounds[i])
}

func (m *Map) colorbar(c *svg.SVG, s *palettes.Scheme) {
	const h = 14
	w := m.Width * 4 / 5
	x0 := marginLeft + (m.Width-w)/2
	y0 := marginTop + m.Height + marginBottom + 6
	b := s.Bounds
	n := len(b) - 1

	if s.Continuous() {
		const slices = 128
		for k := 0; k < slices; k++ {
			xa, xb := x0+k*w/slices, x0+(k+1)*w/slices
			v := barValue(b, (float64(k)+0.5)/slices)
			c.Rect(xa, y0, xb-xa, h, paint("fill", s.Color(v))+";stroke:none")
		}
	} else {
		for i := 0; i < n; i++ {
			xa, xb := x0+i*w/n, x0+(i+1)*w/n
			c.Rect(xa, y0, xb-xa, h, paint("fill", s.Color((b[i]+b[i+1])/2))+";stroke:none")
		}
	}
	if s.Extend.Min() {
		under := s.Color(math.Nextafter(b[0], math.Inf(-1)))
		c.Polygon([]int{x0, x0 - h, x0}, []int{y0, y0 + h/2, y0 + h}, paint("fill", under))
	}
	if s.Extend.Max() {
		over := s.Color(math.Nextafter(b[n], math.Inf(1)))
		x1 := x0 + w
		c.Polygon([]int{x1, x1 + h, x1}, []int{y0, y0 + h/2, y0 + h}, paint("fill", over))
	}
	c.Rect(x0, y0, w, h, "fill:none;stroke:#000;stroke-width:0.5")
	for _, t := range s.Ticks {
		if t < b[0] || t > b[n] {
			continue
		}
		x := x0 + int(math.Round(barPos(b, t)*float64(w)))
		c.Line(x, y0+h, x, y0+h+3, "stroke:#000")
		c.Text(x, y0+h+14, strconv.FormatFloat(t, 'g', 6, 64), `text-anchor="middle"`, `font-size="10px"`)
	}
	if s.Label != "" {
		c.Text(marginLeft+m.Width/2, y0+h+30, s.Label, `text-anchor="middle"`, `font-size="12px"`)
	}
}

// errWriter remembers the first error of w.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
