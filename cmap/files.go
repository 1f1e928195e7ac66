// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmap

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ReadNCL reads an NCL ".rgb" color table. Header lines such as
// "ncolors=254" and comments starting with '#' or ';' are skipped.
// If any value contains a '.', all values are taken to be in [0, 1];
// otherwise they are 0-255.
func ReadNCL(r io.Reader) ([]color.NRGBA, error) {
	var rows [][3]string
	fractional := false
	sc := bufio.NewScanner(r)
	for lineno := 1; sc.Scan(); lineno++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' || line[0] == ';' || strings.Contains(line, "=") {
			continue
		}
		fs := strings.Fields(line)
		if len(fs) < 3 {
			return nil, fmt.Errorf("cmap: line %d: want 3 color components, got %d", lineno, len(fs))
		}
		rows = append(rows, [3]string{fs[0], fs[1], fs[2]})
		for _, f := range fs[:3] {
			if strings.Contains(f, ".") {
				fractional = true
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("cmap: no colors in NCL table")
	}

	scale := 255.0
	if fractional {
		scale = 1
	}
	out := make([]float64, 0, 3)
	colors := make([]color.NRGBA, len(rows))
	for i, row := range rows {
		out = out[:0]
		for _, f := range row {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("cmap: bad color component %q", f)
			}
			out = append(out, v/scale)
		}
		colors[i] = RGBFloat([3]float64{out[0], out[1], out[2]})[0]
	}
	return colors, nil
}

// ReadGuide reads a guide color table: one "r g b" row of 0-255
// values per line.
func ReadGuide(r io.Reader) ([]color.NRGBA, error) {
	var colors []color.NRGBA
	sc := bufio.NewScanner(r)
	for lineno := 1; sc.Scan(); lineno++ {
		fs := strings.FieldsFunc(sc.Text(), func(r rune) bool {
			return r == ' ' || r == '\t' || r == ','
		})
		if len(fs) == 0 {
			continue
		}
		if len(fs) != 3 {
			return nil, fmt.Errorf("cmap: line %d: want 3 color components, got %d", lineno, len(fs))
		}
		var rgb [3]float64
		for i, f := range fs {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("cmap: line %d: bad color component %q", lineno, f)
			}
			rgb[i] = v / 255
		}
		colors = append(colors, RGBFloat(rgb)[0])
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("cmap: no colors in guide table")
	}
	return colors, nil
}

// A CPT is a GMT color palette table.
type CPT struct {
	// Levels are the segment boundaries in data units.
	Levels []float64

	// Lower and Upper are the colors at the start and end of each
	// segment.
	Lower, Upper []color.NRGBA

	// Background, Foreground and NaN are the optional B, F and N
	// colors.
	Background, Foreground, NaN *color.NRGBA
}

// ReadCPT reads a GMT ".cpt" color palette table in the RGB or HSV
// color model. Slash-separated components ("r/g/b") are accepted.
func ReadCPT(r io.Reader) (*CPT, error) {
	cpt := new(CPT)
	hsv := false
	sc := bufio.NewScanner(r)
	for lineno := 1; sc.Scan(); lineno++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line[0] == '#' {
			if strings.HasSuffix(line, "HSV") || strings.HasSuffix(line, "hsv") {
				hsv = true
			}
			continue
		}
		fs := strings.Fields(strings.ReplaceAll(line, "/", " "))
		switch fs[0] {
		case "B", "F", "N":
			if len(fs) < 4 {
				return nil, fmt.Errorf("cmap: line %d: short %s line", lineno, fs[0])
			}
			c, err := cptColor(fs[1:4], hsv)
			if err != nil {
				return nil, fmt.Errorf("cmap: line %d: %w", lineno, err)
			}
			switch fs[0] {
			case "B":
				cpt.Background = &c
			case "F":
				cpt.Foreground = &c
			case "N":
				cpt.NaN = &c
			}
			continue
		}
		if len(fs) < 8 {
			return nil, fmt.Errorf("cmap: line %d: want 8 fields, got %d", lineno, len(fs))
		}
		z0, err0 := strconv.ParseFloat(fs[0], 64)
		z1, err1 := strconv.ParseFloat(fs[4], 64)
		if err0 != nil || err1 != nil {
			return nil, fmt.Errorf("cmap: line %d: bad level", lineno)
		}
		lo, err := cptColor(fs[1:4], hsv)
		if err != nil {
			return nil, fmt.Errorf("cmap: line %d: %w", lineno, err)
		}
		hi, err := cptColor(fs[5:8], hsv)
		if err != nil {
			return nil, fmt.Errorf("cmap: line %d: %w", lineno, err)
		}
		if n := len(cpt.Levels); n > 0 && cpt.Levels[n-1] != z0 {
			return nil, fmt.Errorf("cmap: line %d: segment starts at %g, previous ended at %g", lineno, z0, cpt.Levels[n-1])
		}
		if len(cpt.Levels) == 0 {
			cpt.Levels = append(cpt.Levels, z0)
		}
		cpt.Levels = append(cpt.Levels, z1)
		cpt.Lower = append(cpt.Lower, lo)
		cpt.Upper = append(cpt.Upper, hi)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(cpt.Lower) == 0 {
		return nil, fmt.Errorf("cmap: no segments in cpt table")
	}
	if err := checkMonotonic(cpt.Levels); err != nil {
		return nil, fmt.Errorf("cmap: %w", err)
	}
	return cpt, nil
}

func cptColor(fs []string, hsv bool) (color.NRGBA, error) {
	var v [3]float64
	for i, f := range fs {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("bad color component %q", f)
		}
		v[i] = x
	}
	if hsv {
		c := colorful.Hsv(v[0], v[1], v[2]).Clamped()
		r, g, b := c.RGB255()
		return color.NRGBA{r, g, b, 255}, nil
	}
	return RGBFloat([3]float64{v[0] / 255, v[1] / 255, v[2] / 255})[0], nil
}

// Colormap returns a continuous colormap that follows the table's
// segments, with a sharp step wherever a segment's end color differs
// from the next segment's start color.
func (c *CPT) Colormap(name string, n int) (*Colormap, error) {
	var pos []float64
	var colors []color.NRGBA
	for i := range c.Lower {
		pos = append(pos, c.Levels[i], c.Levels[i+1])
		colors = append(colors, c.Lower[i], c.Upper[i])
	}
	lo, hi := pos[0], pos[len(pos)-1]
	if hi == lo {
		return nil, fmt.Errorf("cmap: %s: empty level range", name)
	}
	for i := range pos {
		pos[i] = (pos[i] - lo) / (hi - lo)
	}
	cm, err := FromList(name, colors, pos, n)
	if err != nil {
		return nil, err
	}
	c.decorate(cm)
	return cm, nil
}

// Discrete returns a listed colormap with one color per segment and
// a BoundaryNorm on the table's levels.
func (c *CPT) Discrete(name string) (*Colormap, *BoundaryNorm, error) {
	cm, norm, err := FromLevelsAndColors(c.Levels, c.Lower, Neither)
	if err != nil {
		return nil, nil, err
	}
	cm.Name = name
	c.decorate(cm)
	return cm, norm, nil
}

func (c *CPT) decorate(cm *Colormap) {
	if c.Background != nil {
		cm.Under = *c.Background
	}
	if c.Foreground != nil {
		cm.Over = *c.Foreground
	}
	if c.NaN != nil {
		cm.Bad = *c.NaN
	}
}

// A Format is a color table file format.
type Format string

const (
	FormatNCL   Format = "ncl"
	FormatGuide Format = "guide"
	FormatCPT   Format = "cpt"
)

var formatGlobs = map[Format]string{
	FormatNCL:   "*.rgb",
	FormatGuide: "cs*.txt",
	FormatCPT:   "*.cpt",
}

// ReadFile reads one color table file of the given format. The
// colormap is named after the file's base name without extension.
func ReadFile(path string, format Format) (*Colormap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	switch format {
	case FormatNCL:
		colors, err := ReadNCL(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return NewListed(name, colors)
	case FormatGuide:
		colors, err := ReadGuide(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return NewListed(name, colors)
	case FormatCPT:
		cpt, err := ReadCPT(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return cpt.Colormap(name, DefaultN)
	}
	return nil, fmt.Errorf("cmap: unknown format %q", format)
}

// LoadDir registers every color table of the given format in dir,
// along with its reverse. It returns the number of tables loaded.
func LoadDir(reg *Registry, dir string, format Format) (int, error) {
	glob, ok := formatGlobs[format]
	if !ok {
		return 0, fmt.Errorf("cmap: unknown format %q", format)
	}
	paths, err := filepath.Glob(filepath.Join(dir, glob))
	if err != nil {
		return 0, err
	}
	for _, path := range paths {
		cm, err := ReadFile(path, format)
		if err != nil {
			return 0, err
		}
		if err := reg.RegisterWithReverse(cm); err != nil {
			return 0, err
		}
	}
	return len(paths), nil
}

// GenerateCmapNorm resamples cm into a listed colormap with one color
// per band of levels, including the extended ends, and returns it
// with a matching BoundaryNorm.
func GenerateCmapNorm(levels []float64, cm *Colormap, extend Extend) (*Colormap, *BoundaryNorm, error) {
	n := len(levels) - 1 + extend.count()
	if n < 1 {
		return nil, nil, fmt.Errorf("cmap: need at least two levels, got %d", len(levels))
	}
	colors := cm.Sample(0, 1, n)
	out := newColormap(cm.Name, colors)
	out.Under, out.Over = Transparent, Transparent
	if extend.Min() {
		out.Under = colors[0]
	}
	if extend.Max() {
		out.Over = colors[n-1]
	}
	norm, err := NewBoundaryNorm(levels, n, extend)
	if err != nil {
		return nil, nil, err
	}
	return out, norm, nil
}
