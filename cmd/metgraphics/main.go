// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command metgraphics is a toolbox for meteorological graphics: it
// lists and draws color tables, draws decorated maps, builds GIF
// animations and image galleries, and runs batches of plotting
// commands in parallel.
//
// Settings come from flags, from $HOME/.metgraphics.yaml (or the file
// named by --config) and from METGRAPHICS_* environment variables, in
// that order of precedence. For example:
//
//	resource_dir: /data/metgraphics
//	shapefile_dir: /data/shapefiles
//	workers: 8
//	fps: 10
//	img_width: 300
package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	keyResourceDir  = "resource_dir"
	keyShapefileDir = "shapefile_dir"
	keyWorkers      = "workers"
	keyFPS          = "fps"
	keyImgWidth     = "img_width"
	keyVerbose      = "verbose"
)

func newRoot(v *viper.Viper) *cobra.Command {
	var cfgFile string
	root := &cobra.Command{
		Use:           "metgraphics",
		Short:         "Meteorological graphics toolbox",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(v, cfgFile); err != nil {
				return err
			}
			setupLogging(v.GetBool(keyVerbose))
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "read settings from `file` (default $HOME/.metgraphics.yaml)")
	pf.String(keyResourceDir, "", "color table `directory` with ncl, guide and cpt subdirectories")
	pf.String(keyShapefileDir, "", "map shapefile `directory`")
	pf.BoolP(keyVerbose, "v", false, "log debug events")
	v.BindPFlag(keyResourceDir, pf.Lookup(keyResourceDir))
	v.BindPFlag(keyShapefileDir, pf.Lookup(keyShapefileDir))
	v.BindPFlag(keyVerbose, pf.Lookup(keyVerbose))

	root.AddCommand(
		newCmapsCmd(v),
		newGIFCmd(v),
		newGalleryCmd(v),
		newMapCmd(v),
		newRegionsCmd(),
		newRunCmd(v),
	)
	return root
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyWorkers, 4)
	v.SetDefault(keyFPS, 8)
	v.SetDefault(keyImgWidth, 300)
}

// loadConfig reads the config file, if any, and the environment.
func loadConfig(v *viper.Viper, file string) error {
	setDefaults(v)
	v.SetEnvPrefix("METGRAPHICS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		return v.ReadInConfig()
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	v.SetConfigFile(filepath.Join(home, ".metgraphics.yaml"))
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func setupLogging(verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).With().Timestamp().Logger()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	setupLogging(false)
	if err := newRoot(viper.New()).ExecuteContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("metgraphics")
	}
}
