// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gallery

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"image"
	"strings"
	"time"

	"github.com/nmcdev/go-metgraphics/animate"
	"github.com/nmcdev/go-metgraphics/annotate"
	"github.com/nmcdev/go-metgraphics/parallel"
)

// A Forecast identifies one model chart: a model run and a lead time.
type Forecast struct {
	Model string
	Init  time.Time
	FHour int
}

// Valid returns the time f is valid at.
func (f Forecast) Valid() time.Time {
	return f.Init.Add(time.Duration(f.FHour) * time.Hour)
}

func (f Forecast) String() string {
	return fmt.Sprintf("%s %s+%03d", f.Model, f.Init.Format("2006010215"), f.FHour)
}

// A Renderer draws the chart of one forecast. It returns a nil image
// if the forecast has no chart, for example because its data is
// missing.
type Renderer func(ctx context.Context, f Forecast) (image.Image, error)

// Show selects how MultipleHTML lays out a sequence of charts.
type Show string

const (
	ShowList      Show = "list"
	ShowTab       Show = "tab"
	ShowAnimation Show = "animation"
)

// AnimationDelay is the frame delay of MultipleHTML animations, in
// hundredths of a second.
const AnimationDelay = 40

// Batch renders sets of forecast charts concurrently and lays them out
// with a Gallery.
type Batch struct {
	Render  Renderer
	Gallery Gallery
	// Width is the display width of each chart. Zero means the
	// layout's default.
	Width int
	// Workers bounds concurrent renders. Zero means
	// parallel.DefaultThreads.
	Workers int
	// Options is passed to the dispatcher. It may be nil.
	Options *parallel.Options
}

// render draws fs in order and drops the forecasts with no chart.
func (b *Batch) render(ctx context.Context, fs []Forecast) ([]image.Image, []Forecast, error) {
	if b.Render == nil {
		return nil, nil, parallel.ErrNoFunc
	}
	ez, err := parallel.New(parallel.Func[Forecast, image.Image](b.Render), fs, b.Options)
	if err != nil {
		return nil, nil, err
	}
	workers := b.Workers
	if workers <= 0 {
		workers = parallel.DefaultThreads
	}
	imgs, err := ez.Multithread2(ctx, workers)
	if err != nil {
		return nil, nil, err
	}
	var outImgs []image.Image
	var outFs []Forecast
	for i, img := range imgs {
		if img == nil {
			continue
		}
		outImgs = append(outImgs, img)
		outFs = append(outFs, fs[i])
	}
	return outImgs, outFs, nil
}

func toImages(imgs []image.Image) []Image {
	ims := make([]Image, len(imgs))
	for i, img := range imgs {
		ims[i] = Image{Img: img}
	}
	return ims
}

func fhourLabel(fhour int) string {
	return fmt.Sprintf("%03d", fhour)
}

// MultipleHTML renders model's run at init for every hour of frange
// (see annotate.CheckFrange) and shows the charts as a list, as tabs
// three to a tab, or as a single looping animation.
func (b *Batch) MultipleHTML(ctx context.Context, model string, init time.Time, frange []int, show Show) (template.HTML, error) {
	hours, err := annotate.CheckFrange(frange...)
	if err != nil {
		return "", err
	}
	fs := make([]Forecast, len(hours))
	for i, h := range hours {
		fs[i] = Forecast{Model: model, Init: init, FHour: h}
	}
	imgs, fs, err := b.render(ctx, fs)
	if err != nil {
		return "", err
	}
	if len(imgs) == 0 {
		return "", fmt.Errorf("gallery: no charts for %s at %s", model, init.Format("2006010215"))
	}
	labels := make([]string, len(fs))
	for i, f := range fs {
		labels[i] = fhourLabel(f.FHour)
	}

	switch Show(strings.ToLower(string(show))) {
	case ShowAnimation:
		var buf bytes.Buffer
		if err := animate.Encode(&buf, imgs, AnimationDelay); err != nil {
			return "", err
		}
		label := labels[0]
		if len(labels) > 1 {
			label += "-" + labels[len(labels)-1]
		}
		return b.Gallery.PlotImages([]Image{{GIF: buf.Bytes()}}, []string{label}, 1, b.Width)
	case ShowTab:
		return b.Gallery.ClassTabs(toImages(imgs), labels, 3, b.Width)
	case ShowList, "":
		return b.Gallery.PlotImages(toImages(imgs), labels, len(imgs), b.Width)
	}
	return "", fmt.Errorf("gallery: unknown show mode %q", show)
}

// CompareHTML renders each of models for the hours of frange and
// shows them in tabs, one tab per forecast hour.
func (b *Batch) CompareHTML(ctx context.Context, models []string, init time.Time, frange []int) (template.HTML, error) {
	hours, err := annotate.CheckFrange(frange...)
	if err != nil {
		return "", err
	}
	var fs []Forecast
	for _, m := range models {
		for _, h := range hours {
			fs = append(fs, Forecast{Model: m, Init: init, FHour: h})
		}
	}
	imgs, fs, err := b.render(ctx, fs)
	if err != nil {
		return "", err
	}
	labels := make([]string, len(fs))
	for i, f := range fs {
		labels[i] = fhourLabel(f.FHour)
	}
	return b.Gallery.ClassTabs(toImages(imgs), labels, 15, b.Width)
}

// TrendHTML shows how successive runs of model forecast the same
// valid times. For each hour of frange it renders the runs initialized
// runStep hours apart going back runBack runs from init, and shows
// them in tabs, one per valid time. A nil frange means just fhour.
func (b *Batch) TrendHTML(ctx context.Context, model string, init time.Time, fhour int, frange []int, runBack, runStep int) (template.HTML, error) {
	hours := []int{fhour}
	if frange != nil {
		var err error
		if hours, err = annotate.CheckFrange(frange...); err != nil {
			return "", err
		}
	}
	if runBack <= 0 || runStep <= 0 {
		return "", fmt.Errorf("gallery: run back %d and run step %d must be positive", runBack, runStep)
	}
	var fs []Forecast
	for _, h := range hours {
		for run := 0; run < runBack; run++ {
			back := time.Duration(runStep*run) * time.Hour
			fs = append(fs, Forecast{Model: model, Init: init.Add(-back), FHour: h + runStep*run})
		}
	}
	imgs, fs, err := b.render(ctx, fs)
	if err != nil {
		return "", err
	}
	labels := make([]string, len(fs))
	for i, f := range fs {
		labels[i] = f.Valid().Format("06010215")
	}
	return b.Gallery.ClassTabs(toImages(imgs), labels, 15, b.Width)
}
