// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package animate turns sequences of rendered charts into animated
// GIFs.
package animate

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// DefaultFPS is the frame rate used when none is given.
const DefaultFPS = 8

var ErrNoFrames = errors.New("animate: no frames")

// AsGIF reads the image files in order and writes them as an animated
// GIF named name+".gif" that plays at fps frames per second and loops
// forever. If fps <= 0, DefaultFPS is used. It returns the name of the
// file it wrote.
func AsGIF(files []string, name string, fps int) (string, error) {
	if len(files) == 0 {
		return "", ErrNoFrames
	}
	if name == "" {
		name = "new_gif"
	}
	frames, err := ReadFrames(files)
	if err != nil {
		return "", err
	}

	out := name + ".gif"
	f, err := os.Create(out)
	if err != nil {
		return "", err
	}
	if err := Encode(f, frames, Delay(fps)); err != nil {
		f.Close()
		os.Remove(out)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return out, nil
}

// Delay returns the GIF frame delay, in hundredths of a second, for a
// frame rate of fps.
func Delay(fps int) int {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return max(1, 100/fps)
}

// ReadFrames decodes the PNG or JPEG files at paths.
func ReadFrames(paths []string) ([]image.Image, error) {
	frames := make([]image.Image, 0, len(paths))
	for _, p := range paths {
		img, err := readImage(p)
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
	}
	return frames, nil
}

func readImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("animate: %s: %w", path, err)
	}
	return img, nil
}

// Encode writes frames to w as a looping GIF with the given per-frame
// delay in hundredths of a second. Frames are dithered to the Plan 9
// palette. Frames whose size differs from the first are scaled to
// match it.
func Encode(w io.Writer, frames []image.Image, delay int) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	size := frames[0].Bounds().Size()
	rect := image.Rect(0, 0, size.X, size.Y)
	anim := &gif.GIF{LoopCount: 0}
	for _, src := range frames {
		if sb := src.Bounds(); sb.Size() != size {
			scaled := image.NewRGBA(rect)
			draw.BiLinear.Scale(scaled, rect, src, sb, draw.Over, nil)
			src = scaled
		}
		anim.Image = append(anim.Image, quantize(src, rect))
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, anim)
}

func quantize(src image.Image, rect image.Rectangle) *image.Paletted {
	dst := image.NewPaletted(rect, palette.Plan9)
	draw.FloydSteinberg.Draw(dst, rect, src, src.Bounds().Min)
	return dst
}
