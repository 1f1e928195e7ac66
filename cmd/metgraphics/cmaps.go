// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nmcdev/go-metgraphics/cmap"
	"github.com/nmcdev/go-metgraphics/ctables"
)

// loadRegistry returns the built-in color tables plus any found under
// the resource directory.
func loadRegistry(v *viper.Viper) (*cmap.Registry, error) {
	reg := cmap.Default
	if err := ctables.Register(reg); err != nil {
		return nil, err
	}
	dir := v.GetString(keyResourceDir)
	if dir == "" {
		return reg, nil
	}
	for _, f := range []cmap.Format{cmap.FormatNCL, cmap.FormatGuide, cmap.FormatCPT} {
		sub := filepath.Join(dir, "colormaps", string(f))
		n, err := cmap.LoadDir(reg, sub, f)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("dir", sub).Int("tables", n).Msg("loaded color tables")
	}
	return reg, nil
}

// create opens name for writing. "-" is standard output.
func create(name string) (io.WriteCloser, error) {
	if name == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(name)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// writeFile calls write on the output named name and closes it.
func writeFile(name string, write func(io.Writer) error) error {
	f, err := create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func newCmapsCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cmaps",
		Short: "List and draw color tables",
	}

	list := &cobra.Command{
		Use:   "list [prefix]",
		Short: "List registered color tables",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(v)
			if err != nil {
				return err
			}
			for _, name := range reg.Names() {
				if len(args) == 1 && !strings.HasPrefix(name, args[0]) {
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	var out, format string
	show := &cobra.Command{
		Use:   "show NAME",
		Short: "Draw one color table as a colorbar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(v)
			if err != nil {
				return err
			}
			cm, err := reg.Get(args[0])
			if err != nil {
				return err
			}
			if out == "" {
				out = cmap.CanonicalName(args[0]) + "." + format
			}
			if err := writeFile(out, func(w io.Writer) error { return cmap.WriteColorbar(w, cm, format) }); err != nil {
				return err
			}
			log.Info().Str("file", out).Msg("wrote colorbar")
			return nil
		},
	}
	show.Flags().StringVarP(&out, "out", "o", "", "write to `file` (default NAME.FORMAT, - for stdout)")
	show.Flags().StringVar(&format, "format", "png", "image `format`: png, svg, pdf or eps")

	var sheetOut string
	var width int
	sheet := &cobra.Command{
		Use:   "sheet [NAME...]",
		Short: "Draw a swatch sheet of color tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(v)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = reg.Names()
			}
			var maps []*cmap.Colormap
			for _, name := range args {
				cm, err := reg.Get(name)
				if err != nil {
					return err
				}
				maps = append(maps, cm)
			}
			if err := writeFile(sheetOut, func(w io.Writer) error { return cmap.WriteSheetSVG(w, maps, width) }); err != nil {
				return err
			}
			log.Info().Str("file", sheetOut).Int("tables", len(maps)).Msg("wrote sheet")
			return nil
		},
	}
	sheet.Flags().StringVarP(&sheetOut, "out", "o", "colormaps.svg", "write to `file` (- for stdout)")
	sheet.Flags().IntVar(&width, "width", 800, "sheet width in `pixels`")

	cmd.AddCommand(list, show, sheet)
	return cmd
}
