// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gallery lays out many images as an HTML fragment, for
// display in a notebook cell or a report page.
package gallery

import (
	"errors"
	"fmt"
	"html/template"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Defaults for the layouts.
const (
	DefaultMaxImages = 30
	DefaultWidth     = 300
	DefaultMaxPerTab = 10
	DefaultTabWidth  = 220
	DefaultRepWidth  = 150
	DefaultPopWidth  = 200
)

// DefaultIgnore lists the labels ClassRepresentations skips when
// given no ignore list.
var DefaultIgnore = []string{"-1", "unknown"}

var ErrLength = errors.New("gallery: images and labels differ in length")

const galleryHTML = `
{{define "item"}}<div style="display: inline-block; width: {{.Box}}px; vertical-align: top; text-align: center;"><h4 style="font-size: 12px">{{.Label}}</h4><img src="{{.Src}}" style="margin: 1px; width: {{.Width}}px; border: 2px solid #ddd;"/></div>{{end}}

{{define "list"}}{{range .}}{{template "item" .}}{{end}}{{end}}

{{define "tabs"}}<div><style>
input { display: none; }
input + label { display: inline-block; border: 1px solid #999; background: #EEE; padding: 4px 12px; border-radius: 4px 4px 0 0; position: relative; top: 1px; }
input:checked + label { background: #FFF; border-bottom: 1px solid transparent; }
input ~ .tab { border-top: 1px solid #999; padding: 12px; display: none; }
{{.CSS}}</style>
{{range $i, $t := .Tabs}}<input type="radio" name="tabs" id="tab{{$t.ID}}"{{if eq $i 0}} checked{{end}}/><label for="tab{{$t.ID}}">{{$t.Label}}</label>{{end}}
{{range .Tabs}}<div class="tab content{{.ID}}">{{template "list" .Items}}</div>{{end}}
</div>{{end}}

{{define "popup"}}<style>
div.gallery { margin: 5px; border: 1px solid #ccc; float: left; width: {{.Width}}px; }
div.gallery:hover { border: 1px solid #777; }
div.gallery img { width: 100%; height: auto; }
div.desc { padding: 15px; text-align: center; }
.overlay { position: fixed; top: 0; bottom: 0; left: 0; right: 0; background: rgba(0, 0, 0, 0.7); transition: opacity 500ms; visibility: hidden; opacity: 0; }
.overlay:target { visibility: visible; opacity: 1; }
.popup { margin: 70px auto; padding: 20px; background: #fff; border-radius: 5px; width: 60%; left: 30%; top: 10%; position: fixed; }
.popup .close { position: absolute; top: 20px; right: 30px; font-size: 30px; font-weight: bold; text-decoration: none; color: #333; }
.popup .content { max-height: 60%; overflow: auto; }
</style>
{{range $i, $it := .Items}}<div class="gallery"><a href="#popup{{$i}}"><img src="{{$it.Src}}"><div class="desc">{{$it.Label}}</div></a></div>{{end}}
{{range $i, $it := .Items}}<div id="popup{{$i}}" class="overlay"><div class="popup"><h2>{{$it.Label}}</h2><a class="close" href="#">&times;</a><div class="content"><img src="{{$it.Full}}" style="margin: 1px; border: 2px solid #ddd;"/></div></div></div>{{end}}
{{end}}
`

var galleryTemplate = template.Must(template.New("gallery").Parse(galleryHTML))

type item struct {
	Label      string
	Src        template.URL
	Full       template.URL
	Width, Box int
}

type tab struct {
	ID    string
	Label string
	Items []item
}

// A Gallery renders images to HTML. The zero value links images given
// by path and embeds the rest.
type Gallery struct {
	// ForceBase64 embeds images given by path too, for pages that
	// cannot reach the files.
	ForceBase64 bool
}

func (g *Gallery) item(im Image, label string, width int) (item, error) {
	src, err := im.src(width, g.ForceBase64)
	if err != nil {
		return item{}, fmt.Errorf("gallery: image %q: %w", label, err)
	}
	return item{Label: label, Src: src, Width: width, Box: width + 20}, nil
}

func (g *Gallery) execute(name string, data any) (template.HTML, error) {
	var sb strings.Builder
	if err := galleryTemplate.ExecuteTemplate(&sb, name, data); err != nil {
		return "", err
	}
	return template.HTML(sb.String()), nil
}

// PlotImages lays out up to maxImages images in a row-wrapping list,
// each width pixels wide under its label. Nil labels number the
// images from 0.
func (g *Gallery) PlotImages(images []Image, labels []string, maxImages, width int) (template.HTML, error) {
	if labels == nil {
		labels = make([]string, len(images))
		for i := range labels {
			labels[i] = strconv.Itoa(i)
		}
	}
	if len(images) != len(labels) {
		return "", ErrLength
	}
	if maxImages <= 0 {
		maxImages = DefaultMaxImages
	}
	if width <= 0 {
		width = DefaultWidth
	}
	n := min(maxImages, len(images))
	items := make([]item, n)
	for i := range items {
		it, err := g.item(images[i], labels[i], width)
		if err != nil {
			return "", err
		}
		items[i] = it
	}
	return g.execute("list", items)
}

// uniq returns the distinct labels in sorted order.
func uniq(labels []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	sort.Strings(out)
	return out
}

// ClassTabs groups images by label into tabs, one per distinct label
// in sorted order, showing up to maxPerTab images each. The first tab
// is open.
func (g *Gallery) ClassTabs(images []Image, labels []string, maxPerTab, width int) (template.HTML, error) {
	if len(images) != len(labels) {
		return "", ErrLength
	}
	if maxPerTab <= 0 {
		maxPerTab = DefaultMaxPerTab
	}
	if width <= 0 {
		width = DefaultTabWidth
	}
	var tabs []tab
	var css strings.Builder
	for _, label := range uniq(labels) {
		t := tab{ID: uuid.NewString(), Label: label}
		for i, l := range labels {
			if l != label || len(t.Items) == maxPerTab {
				continue
			}
			it, err := g.item(images[i], strconv.Itoa(len(t.Items)), width)
			if err != nil {
				return "", err
			}
			t.Items = append(t.Items, it)
		}
		if css.Len() > 0 {
			css.WriteString(",")
		}
		fmt.Fprintf(&css, "#tab%s:checked ~ .tab.content%s", t.ID, t.ID)
		tabs = append(tabs, t)
	}
	if len(tabs) > 0 {
		css.WriteString(" { display: block; }")
	}
	return g.execute("tabs", struct {
		CSS  template.CSS
		Tabs []tab
	}{template.CSS(css.String()), tabs})
}

// ClassRepresentations shows the first image of each distinct label,
// labels sorted, skipping the labels in ignore. A nil ignore means
// DefaultIgnore.
func (g *Gallery) ClassRepresentations(images []Image, labels, ignore []string, width int) (template.HTML, error) {
	if len(images) != len(labels) {
		return "", ErrLength
	}
	if ignore == nil {
		ignore = DefaultIgnore
	}
	if width <= 0 {
		width = DefaultRepWidth
	}
	skip := make(map[string]bool)
	for _, l := range ignore {
		skip[l] = true
	}
	first := make(map[string]int)
	for i := len(labels) - 1; i >= 0; i-- {
		first[labels[i]] = i
	}
	var ims []Image
	var ls []string
	for _, l := range uniq(labels) {
		if skip[l] {
			continue
		}
		ims = append(ims, images[first[l]])
		ls = append(ls, l)
	}
	return g.PlotImages(ims, ls, len(ims), width)
}

// PopupGallery shows thumbnails width pixels wide. Clicking one opens
// the full image in an overlay. Every image is embedded.
func (g *Gallery) PopupGallery(images []Image, labels []string, width int) (template.HTML, error) {
	if len(images) != len(labels) {
		return "", ErrLength
	}
	if width <= 0 {
		width = DefaultPopWidth
	}
	items := make([]item, len(images))
	for i, im := range images {
		src, err := im.src(width, true)
		if err != nil {
			return "", fmt.Errorf("gallery: image %q: %w", labels[i], err)
		}
		full, err := im.src(DefaultMaxSize/2, true)
		if err != nil {
			return "", fmt.Errorf("gallery: image %q: %w", labels[i], err)
		}
		items[i] = item{Label: labels[i], Src: src, Full: full, Width: width}
	}
	return g.execute("popup", struct {
		Width int
		Items []item
	}{width, items})
}
