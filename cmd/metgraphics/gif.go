// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nmcdev/go-metgraphics/animate"
)

func newGIFCmd(v *viper.Viper) *cobra.Command {
	var name string
	var sorted bool
	cmd := &cobra.Command{
		Use:   "gif IMAGE...",
		Short: "Combine PNG or JPEG images into a looping GIF animation",
		Long: `Gif reads the images in the order given, or sorted by name with
--sort, and writes NAME.gif. Patterns such as "t2m_*.png" are expanded.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var files []string
			for _, arg := range args {
				m, err := filepath.Glob(arg)
				if err != nil {
					return err
				}
				if m == nil {
					m = []string{arg}
				}
				files = append(files, m...)
			}
			if sorted {
				sort.Strings(files)
			}
			out, err := animate.AsGIF(files, name, v.GetInt(keyFPS))
			if err != nil {
				return err
			}
			log.Info().Str("file", out).Int("frames", len(files)).Msg("wrote animation")
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&name, "out", "o", "new_gif", "write `NAME`.gif")
	f.BoolVar(&sorted, "sort", false, "order frames by file name")
	f.Int(keyFPS, animate.DefaultFPS, "frames per `second`")
	v.BindPFlag(keyFPS, f.Lookup(keyFPS))
	return cmd
}
