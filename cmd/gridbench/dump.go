// Copyright 2026 The gridmap Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newDumpCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dump x,y [x,y...]",
		Short: "Insert the given points and print the resulting tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := newGrid[int](opts.cfg)
			if err != nil {
				return err
			}
			for i, arg := range args {
				x, y, err := parsePoint(arg)
				if err != nil {
					return err
				}
				if err = g.Insert(x, y, i); err != nil {
					return err
				}
				opts.log.Debug().Int("x", x).Int("y", y).Int("value", i).Msg("inserted")
			}
			return g.Dump(cmd.OutOrStdout())
		},
	}
}

func parsePoint(s string) (x, y int, err error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("point %q must be x,y", s)
	}
	if x, err = strconv.Atoi(strings.TrimSpace(xs)); err != nil {
		return 0, 0, fmt.Errorf("point %q: bad x: %w", s, err)
	}
	if y, err = strconv.Atoi(strings.TrimSpace(ys)); err != nil {
		return 0, 0, fmt.Errorf("point %q: bad y: %w", s, err)
	}
	return x, y, nil
}
