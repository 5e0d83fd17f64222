// Copyright 2026 The gridmap Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/gogama/gridmap/spatialgrid"
	"github.com/spf13/cobra"
)

// maxFillDepth bounds fill to 4096x4096, about 16.7 million points.
const maxFillDepth = 12

func newFillCmd(opts *options) *cobra.Command {
	var window []int

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Insert every point of the domain and verify query counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.cfg.Depth > maxFillDepth {
				return fmt.Errorf("fill supports depth up to %d, got %d", maxFillDepth, opts.cfg.Depth)
			}
			var q spatialgrid.Box
			if len(window) > 0 {
				if len(window) != 4 {
					return fmt.Errorf("window needs 4 values xmin,ymin,xmax,ymax, got %d", len(window))
				}
				q = spatialgrid.Box{XMin: window[0], YMin: window[1], XMax: window[2], YMax: window[3]}
			}

			g, err := newGrid[int](opts.cfg)
			if err != nil {
				return err
			}
			b := g.Bounds()

			start := time.Now()
			var i int
			for y := b.YMin; y <= b.YMax; y++ {
				for x := b.XMin; x <= b.XMax; x++ {
					if err = g.Insert(x, y, i); err != nil {
						return err
					}
					i++
				}
			}
			stats := g.Stats()
			opts.log.Info().
				Stringer("bounds", b).
				Int("entries", g.Len()).
				Int("nodes", stats.Nodes).
				Int("height", stats.Height).
				Int("cached_refs", stats.CachedRefs).
				Dur("elapsed", time.Since(start)).
				Msg("filled grid")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "inserted %d entries\n", g.Len())

			if err = checkCount(cmd, opts, g, b, b.Width()*b.Height()); err != nil {
				return err
			}
			if len(window) > 0 {
				expected := 0
				if q.Intersects(&b) {
					overlap := spatialgrid.Box{
						XMin: max(q.XMin, b.XMin),
						YMin: max(q.YMin, b.YMin),
						XMax: min(q.XMax, b.XMax),
						YMax: min(q.YMax, b.YMax),
					}
					expected = overlap.Width() * overlap.Height()
				}
				return checkCount(cmd, opts, g, q, expected)
			}
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&window, "window", nil, "extra query rectangle as xmin,ymin,xmax,ymax")
	return cmd
}

// checkCount queries q and fails unless exactly expected entries come
// back.
func checkCount(cmd *cobra.Command, opts *options, g *spatialgrid.Grid[int], q spatialgrid.Box, expected int) error {
	start := time.Now()
	n := len(g.Query(q.XMin, q.YMin, q.XMax, q.YMax))
	opts.log.Info().
		Stringer("query", q).
		Int("found", n).
		Int("expected", expected).
		Dur("elapsed", time.Since(start)).
		Msg("queried grid")
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "query %s: %d entries\n", q, n)
	if n != expected {
		return fmt.Errorf("query %s returned %d entries, expected %d", q, n, expected)
	}
	return nil
}
