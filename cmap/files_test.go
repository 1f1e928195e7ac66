// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmap

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadNCL(t *testing.T) {
	ints := `ncolors= 3
#  r   g   b
255 0 0
0 255 0
0   0 255
`
	colors, err := ReadNCL(strings.NewReader(ints))
	require.NoError(t, err)
	assert.Equal(t, []color.NRGBA{red, green, blue}, colors)

	floats := `ncolors=2
; comment
1.0 0.0 0.0
0 0 1
`
	colors, err = ReadNCL(strings.NewReader(floats))
	require.NoError(t, err)
	assert.Equal(t, []color.NRGBA{red, blue}, colors)

	_, err = ReadNCL(strings.NewReader("ncolors=0\n"))
	assert.Error(t, err)
	_, err = ReadNCL(strings.NewReader("1 2\n"))
	assert.Error(t, err)
}

func TestReadGuide(t *testing.T) {
	colors, err := ReadGuide(strings.NewReader("255 0 0\n\n0,0,255\n"))
	require.NoError(t, err)
	assert.Equal(t, []color.NRGBA{red, blue}, colors)

	_, err = ReadGuide(strings.NewReader("1 2 3 4\n"))
	assert.Error(t, err)
}

const testCPT = `# test palette
# COLOR_MODEL = RGB
0	255	0	0	10	255	0	0
10	0	0	255	20	0	255	0
B	0	0	0
F	255/255/255
N	128	128	128
`

func TestReadCPT(t *testing.T) {
	cpt, err := ReadCPT(strings.NewReader(testCPT))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 10, 20}, cpt.Levels)
	assert.Equal(t, []color.NRGBA{red, blue}, cpt.Lower)
	assert.Equal(t, []color.NRGBA{red, green}, cpt.Upper)
	require.NotNil(t, cpt.Background)
	assert.Equal(t, black, *cpt.Background)
	assert.Equal(t, white, *cpt.Foreground)

	cm, err := cpt.Colormap("test", 5)
	require.NoError(t, err)
	assert.Equal(t, red, cm.At(0))
	assert.Equal(t, red, cm.At(0.3))
	assert.Equal(t, green, cm.At(1))
	assert.Equal(t, black, cm.Under)
	assert.Equal(t, color.NRGBA{128, 128, 128, 255}, cm.Bad)

	dm, norm, err := cpt.Discrete("test")
	require.NoError(t, err)
	assert.Equal(t, []color.NRGBA{red, blue}, dm.Colors())
	assert.Equal(t, blue, Color(dm, norm, 15))
	assert.Equal(t, white, Color(dm, norm, 25))
}

func TestReadCPTHSV(t *testing.T) {
	in := "# COLOR_MODEL = HSV\n0 0 1 1 1 240 1 1\n"
	cpt, err := ReadCPT(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, red, cpt.Lower[0])
	assert.Equal(t, blue, cpt.Upper[0])
}

func TestReadCPTErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"0 0 0 0 1 0 0\n",
		"0 0 0 0 1 0 0 0\n2 0 0 0 3 0 0 0\n",
		"x 0 0 0 1 0 0 0\n",
	} {
		_, err := ReadCPT(strings.NewReader(in))
		assert.Error(t, err, "%q", in)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0666))
	}
	write("3gauss.rgb", "255 0 0\n0 0 255\n")
	write("cs42.txt", "0 255 0\n255 255 255\n")
	write("test.cpt", testCPT)

	reg := NewRegistry()
	for _, f := range []Format{FormatNCL, FormatGuide, FormatCPT} {
		n, err := LoadDir(reg, dir, f)
		require.NoError(t, err)
		assert.Equal(t, 1, n, f)
	}
	assert.Equal(t, []string{"N3gauss", "N3gauss_r", "cs42", "cs42_r", "test", "test_r"}, reg.Names())

	_, err := LoadDir(reg, dir, Format("png"))
	assert.Error(t, err)
}

func TestGenerateCmapNorm(t *testing.T) {
	base, err := FromList("bw", []color.NRGBA{black, white}, nil, 256)
	require.NoError(t, err)

	cm, norm, err := GenerateCmapNorm([]float64{0, 1, 2, 3}, base, Both)
	require.NoError(t, err)
	assert.Equal(t, 5, cm.N())
	assert.Equal(t, black, cm.Under)
	assert.Equal(t, white, cm.Over)
	assert.Equal(t, 5, norm.NColors)

	cm, _, err = GenerateCmapNorm([]float64{0, 1, 2, 3}, base, Neither)
	require.NoError(t, err)
	assert.Equal(t, 3, cm.N())
	assert.Equal(t, Transparent, cm.Under)
}

func TestRender(t *testing.T) {
	cm, err := FromList("bw", []color.NRGBA{black, white}, nil, 16)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteColorbar(&buf, cm, "png"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	buf.Reset()
	require.NoError(t, WriteSheetSVG(&buf, []*Colormap{cm, Reversed(cm)}, 400))
	assert.Contains(t, buf.String(), "<svg")

	assert.Error(t, WriteSheetSVG(&buf, nil, 400))
}

func TestColorMapper(t *testing.T) {
	cm, err := NewListed("rgb", []color.NRGBA{red, green, blue})
	require.NoError(t, err)
	m := NewColorMapper(cm, 0, 30)

	c, err := m.At(15)
	require.NoError(t, err)
	assert.Equal(t, green, c)

	_, err = m.At(-1)
	assert.Error(t, err)
	_, err = m.At(31)
	assert.Error(t, err)

	m.SetAlpha(0.5)
	c, err = m.At(0)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{255, 0, 0, 128}, c)
	assert.Len(t, m.Palette(4).Colors(), 4)
}
