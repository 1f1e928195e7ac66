// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nmcdev/go-metgraphics/maps"
)

func newRegionsCmd() *cobra.Command {
	var global bool
	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List the named map regions and their extents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			regions := maps.Regions()
			if global {
				regions = maps.GlobalRegions()
			}
			names := make([]string, 0, len(regions))
			for name := range regions {
				names = append(names, name)
			}
			sort.Strings(names)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintf(tw, "NAME\tEXTENT\tAREA\n")
			for _, name := range names {
				e := regions[name]
				fmt.Fprintf(tw, "%s\t%s\t%.0f\n", name, e, e.Area())
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&global, "global", false, "list the global regions")
	return cmd
}
