// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nmcdev/go-metgraphics/parallel"
)

// dispatch runs p with the named strategy on n workers.
func dispatch(ctx context.Context, p *parallel.EasyParallel[[]string, []byte], strategy string, n int) ([][]byte, error) {
	switch strategy {
	case "sequential":
		return p.Sequential(ctx)
	case "multiprocess", "cpu":
		return p.Multiprocess(ctx, n)
	case "multithread":
		return p.Multithread(ctx, n)
	case "multithread2", "thread":
		return p.Multithread2(ctx, n)
	case "taskgraph", "graph":
		return p.TaskGraph(ctx, n)
	}
	return nil, fmt.Errorf("unknown strategy %q", strategy)
}

func newRunCmd(v *viper.Viper) *cobra.Command {
	var strategy string
	var progress, quiet bool
	cmd := &cobra.Command{
		Use:   "run [FILE]",
		Short: "Run shell commands in parallel, one per line of FILE or stdin",
		Long: `Run reads one command per line, with shell quoting, and runs the
commands concurrently. Blank lines and lines starting with # are
skipped. Output of each command is printed when all have finished, in
the order chosen by the strategy.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			tasks, err := parallel.ShellTasks(r)
			if err != nil {
				return err
			}

			opts := &parallel.Options{Log: &log.Logger}
			if progress {
				opts.Progress = cmd.ErrOrStderr()
			}
			p, err := parallel.New(parallel.RunCommand, tasks, opts)
			if err != nil {
				return err
			}
			outs, err := dispatch(cmd.Context(), p, strategy, v.GetInt(keyWorkers))
			if err != nil {
				return err
			}
			if !quiet {
				for _, out := range outs {
					cmd.OutOrStdout().Write(out)
				}
			}
			info := p.Info()
			log.Info().Str("strategy", info.Type).Int("workers", info.Workers).
				Int("tasks", len(tasks)).Dur("timer", info.Timer).Dur("task_max", info.TaskMax).
				Msg("finished commands")
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&strategy, "strategy", "s", "multithread2", "dispatch `strategy`: sequential, multiprocess, multithread, multithread2 or taskgraph")
	f.IntP(keyWorkers, "j", 4, "run at most `N` commands at once")
	f.BoolVar(&progress, "progress", false, "show a progress bar on stderr")
	f.BoolVarP(&quiet, "quiet", "q", false, "do not print command output")
	v.BindPFlag(keyWorkers, f.Lookup(keyWorkers))
	return cmd
}
