// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gallery

import (
	"bytes"
	"encoding/base64"
	"html/template"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

// An Image is one gallery entry. Exactly one field should be set.
type Image struct {
	// Path is an image file. Unless base64 is forced the page links
	// to it rather than embedding it.
	Path string
	// Img is embedded as PNG.
	Img image.Image
	// GIF is an encoded GIF, such as an animation, embedded as is.
	GIF []byte
}

// File returns the Image of the file at path.
func File(path string) Image { return Image{Path: path} }

// Files returns the Images of paths.
func Files(paths ...string) []Image {
	ims := make([]Image, len(paths))
	for i, p := range paths {
		ims[i] = File(p)
	}
	return ims
}

// DefaultMaxSize is the longest edge ResizeWithAspectRatio produces
// when given no size.
const DefaultMaxSize = 1000

// ResizeWithAspectRatio scales img so that its longer edge is maxSize
// pixels. A maxSize of 0 means DefaultMaxSize.
func ResizeWithAspectRatio(img image.Image, maxSize int) image.Image {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return img
	}
	r := min(float64(maxSize)/float64(w), float64(maxSize)/float64(h))
	nw, nh := max(1, int(float64(w)*r)), max(1, int(float64(h)*r))
	if nw == w && nh == h {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, nw, nh))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

func dataURL(mime string, data []byte) template.URL {
	return template.URL("data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data))
}

func pngURL(img image.Image, maxSize int) (template.URL, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, ResizeWithAspectRatio(img, maxSize)); err != nil {
		return "", err
	}
	return dataURL("image/png", buf.Bytes()), nil
}

// src returns the img src of im shown width pixels wide. Embedded
// images are stored at twice the display width.
func (im Image) src(width int, force bool) (template.URL, error) {
	switch {
	case im.GIF != nil:
		return dataURL("image/gif", im.GIF), nil
	case im.Img != nil:
		return pngURL(im.Img, 2*width)
	case !force:
		return template.URL((&url.URL{Path: im.Path}).String()), nil
	}
	if strings.EqualFold(filepath.Ext(im.Path), ".gif") {
		data, err := os.ReadFile(im.Path)
		if err != nil {
			return "", err
		}
		return dataURL("image/gif", data), nil
	}
	f, err := os.Open(im.Path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return "", err
	}
	return pngURL(img, 2*width)
}
