// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"html/template"
	"io"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nmcdev/go-metgraphics/gallery"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<h1>{{.Title}}</h1>
{{.Body}}
</body>
</html>
`))

// classOf labels an image file by the name of its directory.
func classOf(path string) string {
	return filepath.Base(filepath.Dir(path))
}

func newGalleryCmd(v *viper.Viper) *cobra.Command {
	var (
		out, layout, title string
		labels             []string
		maxImages          int
		embed              bool
	)
	cmd := &cobra.Command{
		Use:   "gallery IMAGE...",
		Short: "Lay out images as an HTML page",
		Long: `Gallery writes an HTML page showing the images. Layouts are
list (a wrapping list, labeled by file name), tabs (one tab per
label), classes (the first image of each label) and popup
(thumbnails that open full size). Without --labels, the tabs and
classes layouts label each image by its directory name.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var paths []string
			for _, arg := range args {
				m, err := filepath.Glob(arg)
				if err != nil {
					return err
				}
				if m == nil {
					m = []string{arg}
				}
				paths = append(paths, m...)
			}
			if labels == nil {
				labels = make([]string, len(paths))
				for i, p := range paths {
					if layout == "tabs" || layout == "classes" {
						labels[i] = classOf(p)
					} else {
						labels[i] = filepath.Base(p)
					}
				}
			}

			g := &gallery.Gallery{ForceBase64: embed}
			ims := gallery.Files(paths...)
			width := v.GetInt(keyImgWidth)
			var body template.HTML
			var err error
			switch layout {
			case "list":
				body, err = g.PlotImages(ims, labels, maxImages, width)
			case "tabs":
				body, err = g.ClassTabs(ims, labels, maxImages, width)
			case "classes":
				body, err = g.ClassRepresentations(ims, labels, nil, width)
			case "popup":
				body, err = g.PopupGallery(ims, labels, width)
			default:
				return fmt.Errorf("unknown layout %q", layout)
			}
			if err != nil {
				return err
			}
			err = writeFile(out, func(w io.Writer) error {
				return pageTemplate.Execute(w, struct {
					Title string
					Body  template.HTML
				}{title, body})
			})
			if err != nil {
				return err
			}
			log.Info().Str("file", out).Int("images", len(paths)).Str("layout", layout).Msg("wrote gallery")
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&out, "out", "o", "gallery.html", "write to `file` (- for stdout)")
	f.StringVarP(&layout, "layout", "l", "list", "`layout`: list, tabs, classes or popup")
	f.StringVarP(&title, "title", "t", "Gallery", "page title")
	f.StringSliceVar(&labels, "labels", nil, "comma-separated image `labels`")
	f.IntVar(&maxImages, "max", 0, "show at most `N` images (per tab for tabs)")
	f.BoolVar(&embed, "base64", false, "embed the images in the page")
	f.Int(keyImgWidth, gallery.DefaultWidth, "image width in `pixels`")
	v.BindPFlag(keyImgWidth, f.Lookup(keyImgWidth))
	return cmd
}
