// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package annotate builds the text that decorates forecast charts and
// computes figure geometry.
package annotate

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
)

// initTimeLayouts are tried in order by ParseInitTime.
var initTimeLayouts = []string{"06010215", "2006010215"}

// ParseInitTime parses a model initial time written as YYmmddHH or
// YYYYmmddHH, such as "20061208" or "2020061208".
func ParseInitTime(s string) (time.Time, error) {
	for _, layout := range initTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("annotate: initial time %q is not YYYYmmddHH", s)
}

// A Stamp holds the three lines that describe a forecast's timing.
type Stamp struct {
	Initial string // "Initial: 2018/08/20T08"
	FHour   string // "FHour: 024"
	Valid   string // "Valid: 08/21T08", or "Valid: 08/20T08 to 21T08"
}

// ModelTimeStamp describes the forecast initialized at init for lead
// time fhour hours. If atime > 0 the field is accumulated over the
// atime hours ending at the valid time and Valid shows that range.
func ModelTimeStamp(init time.Time, fhour, atime int) Stamp {
	valid := init.Add(time.Duration(fhour) * time.Hour)
	s := Stamp{
		Initial: "Initial: " + init.Format("2006/01/02T15"),
		FHour:   fmt.Sprintf("FHour: %03d", fhour),
		Valid:   "Valid: " + valid.Format("01/02T15"),
	}
	if atime > 0 {
		start := valid.Add(-time.Duration(atime) * time.Hour)
		s.Valid = "Valid: " + start.Format("01/02T15") + " to " + valid.Format("02T15")
	}
	return s
}

// A Title is a chart title in two parts, set flush left and flush
// right above the plot.
type Title struct {
	Left, Right string
}

// ModelTitle returns the title of a model chart. The left part is
// title prefixed by "[model] " when model is not empty. The timing
// goes to the right part, or under the title if multiline is set.
func ModelTitle(title string, init time.Time, model string, fhour, atime int, multiline bool) Title {
	s := ModelTimeStamp(init, fhour, atime)
	if model != "" {
		title = "[" + model + "] " + title
	}
	if multiline {
		return Title{Left: title + "\n" + s.Initial + " " + s.FHour + "h; " + s.Valid}
	}
	return Title{Left: title, Right: s.Initial + "\n" + s.FHour + "h; " + s.Valid}
}

// FormatTimestamp returns the "Created: " label for t in UTC.
func FormatTimestamp(t time.Time) string {
	return "Created: " + t.UTC().Format("2006-01-02T15:04:05Z")
}

// Timestamp returns the "Created: " label for the current time of
// clock.
func Timestamp(clock clockwork.Clock) string {
	return FormatTimestamp(clock.Now())
}

// CheckModel looks up model, ignoring case, in dirs, whose keys are
// upper case model names.
func CheckModel(model string, dirs map[string]string) (string, error) {
	if dir, ok := dirs[strings.ToUpper(model)]; ok {
		return dir, nil
	}
	names := make([]string, 0, len(dirs))
	for name := range dirs {
		names = append(names, name)
	}
	sort.Strings(names)
	return "", fmt.Errorf("annotate: model %s is not supported, select one of %s", model, strings.Join(names, ","))
}

// CheckFrange expands a forecast hour range [start, end] or
// [start, end, step] into the hours it covers, end included. The step
// defaults to 6 hours.
func CheckFrange(frange ...int) ([]int, error) {
	if len(frange) < 2 || len(frange) > 3 {
		return nil, fmt.Errorf("annotate: forecast range should be [start, end(, step)], got %v", frange)
	}
	start, end, step := frange[0], frange[1], 6
	if start > end {
		return nil, fmt.Errorf("annotate: forecast range start %d after end %d", start, end)
	}
	if len(frange) == 3 {
		step = frange[2]
	}
	if step <= 0 {
		return nil, fmt.Errorf("annotate: forecast range step %d must be positive", step)
	}
	var hours []int
	for h := start; h <= end; h += step {
		hours = append(hours, h)
	}
	return hours, nil
}
