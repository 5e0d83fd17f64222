// Copyright 2026 The gridmap Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/gogama/gridmap/spatialgrid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// options holds the flags shared by all subcommands.
type options struct {
	cfg       spatialgrid.Config
	logLevel  string
	logFormat string
	log       zerolog.Logger
}

// newRootCmd builds the command tree. Each call returns independent
// commands and flag state.
func newRootCmd() *cobra.Command {
	opts := &options{cfg: spatialgrid.DefaultConfig()}

	root := &cobra.Command{
		Use:          "gridbench",
		Short:        "Load and query spatial grids",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd.ErrOrStderr(), opts.logLevel, opts.logFormat)
			if err != nil {
				return err
			}
			opts.log = log
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.IntVar(&opts.cfg.Capacity, "capacity", spatialgrid.DefaultCapacity, "entries a root node holds before splitting")
	flags.IntVar(&opts.cfg.Depth, "depth", spatialgrid.DefaultDepth, "domain side is 2^depth")
	flags.IntVar(&opts.cfg.OriginX, "origin-x", 0, "lower X bound of the domain, a multiple of 2^depth")
	flags.IntVar(&opts.cfg.OriginY, "origin-y", 0, "lower Y bound of the domain, a multiple of 2^depth")
	flags.IntVar(&opts.cfg.CapacityStep, "step", spatialgrid.DefaultCapacityStep, "capacity added at each level")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "console", "log format (console, json)")

	root.AddCommand(newFillCmd(opts), newBenchCmd(opts), newDumpCmd(opts))
	return root
}

// newGrid creates a grid from the configured flags, turning the
// constructor's contract panics into errors.
func newGrid[T any](cfg spatialgrid.Config) (g *spatialgrid.Grid[T], err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("invalid grid flags: %v", r)
		}
	}()
	g = spatialgrid.NewConfig[T](cfg)
	return
}
