// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmap

import "errors"

var (
	// ErrLength is returned when the number of colors does not
	// match the number of positions or levels.
	ErrLength = errors.New("color count does not match breakpoints")

	// ErrNotMonotonic is returned when breakpoints decrease.
	ErrNotMonotonic = errors.New("breakpoints are not monotonically non-decreasing")

	// ErrUnknown is returned by Registry.Get for unregistered names.
	ErrUnknown = errors.New("unknown colormap")
)

func checkMonotonic(xs []float64) error {
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[i-1] {
			return ErrNotMonotonic
		}
	}
	return nil
}
