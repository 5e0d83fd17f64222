// Copyright 2026 The gridmap Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/gogama/gridmap/spatialgrid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type benchOptions struct {
	points  int
	queries int
	readers int
	side    int
	seed    int64
}

func newBenchCmd(opts *options) *cobra.Command {
	bo := benchOptions{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Insert random points, then run random window queries from concurrent readers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if bo.points < 0 || bo.queries < 0 {
				return fmt.Errorf("points and queries must not be negative")
			} else if bo.readers < 1 {
				return fmt.Errorf("readers must be at least 1, got %d", bo.readers)
			} else if bo.side < 1 {
				return fmt.Errorf("side must be at least 1, got %d", bo.side)
			}

			g, err := newGrid[int](opts.cfg)
			if err != nil {
				return err
			}
			l := spatialgrid.NewLocked(g)
			b := l.Bounds()

			rng := rand.New(rand.NewSource(bo.seed))
			start := time.Now()
			for i := 0; i < bo.points; i++ {
				if err = l.Insert(randIn(rng, b.XMin, b.XMax), randIn(rng, b.YMin, b.YMax), i); err != nil {
					return err
				}
			}
			elapsed := time.Since(start)
			stats := l.Stats()
			opts.log.Info().
				Int("points", bo.points).
				Int("nodes", stats.Nodes).
				Int("height", stats.Height).
				Dur("elapsed", elapsed).
				Msg("inserted points")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "inserted %d points in %s\n", bo.points, elapsed)

			var found atomic.Int64
			eg, ctx := errgroup.WithContext(cmd.Context())
			start = time.Now()
			for r := 0; r < bo.readers; r++ {
				r := r
				eg.Go(func() error {
					rng := rand.New(rand.NewSource(bo.seed + int64(r) + 1))
					for i := r; i < bo.queries; i += bo.readers {
						if err := ctx.Err(); err != nil {
							return err
						}
						x, y := randIn(rng, b.XMin, b.XMax), randIn(rng, b.YMin, b.YMax)
						q := spatialgrid.Box{XMin: x, YMin: y, XMax: x + bo.side - 1, YMax: y + bo.side - 1}
						n := len(l.Query(q.XMin, q.YMin, q.XMax, q.YMax))
						opts.log.Trace().Int("reader", r).Stringer("query", q).Int("found", n).Msg("query")
						found.Add(int64(n))
					}
					return nil
				})
			}
			if err = eg.Wait(); err != nil {
				return err
			}
			elapsed = time.Since(start)
			opts.log.Info().
				Int("queries", bo.queries).
				Int("readers", bo.readers).
				Int64("found", found.Load()).
				Dur("elapsed", elapsed).
				Msg("ran queries")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ran %d queries on %d readers, found %d entries in %s\n", bo.queries, bo.readers, found.Load(), elapsed)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&bo.points, "points", 1000000, "number of random points to insert")
	flags.IntVar(&bo.queries, "queries", 1000, "number of random window queries")
	flags.IntVar(&bo.readers, "readers", runtime.NumCPU(), "number of concurrent query goroutines")
	flags.IntVar(&bo.side, "side", 16, "side of each square query window")
	flags.Int64Var(&bo.seed, "seed", 1, "random seed")
	return cmd
}

// randIn returns a pseudo-random int in [lo, hi]. The span of a grid
// domain is always below 2^62.
func randIn(rng *rand.Rand, lo, hi int) int {
	return lo + int(rng.Int63n(int64(hi-lo)+1))
}
