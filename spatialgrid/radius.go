// Copyright 2026 The gridmap Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package spatialgrid

import (
	"math"
	"math/bits"
)

// Within returns every entry whose Euclidean distance from (x, y) is at
// most radius. The order of the results is not defined. A negative
// radius yields an empty result.
//
// The distance test is exact for all int inputs.
func (g *Grid[T]) Within(x, y, radius int) Entries[T] {
	r := make(Entries[T], 0)
	if radius < 0 {
		return r
	}
	b := Box{
		XMin: subSat(x, radius),
		YMin: subSat(y, radius),
		XMax: addSat(x, radius),
		YMax: addSat(y, radius),
	}
	rr := square128{}
	rr.hi, rr.lo = bits.Mul64(uint64(radius), uint64(radius))
	g.Search(b, func(e Entry[T]) bool {
		if distSq(e.X, e.Y, x, y).lessOrEqual(rr) {
			r = append(r, e)
		}
		return true
	})
	return r
}

// square128 is an unsigned 128-bit integer, large enough to hold the
// sum of two squared int differences without overflow.
type square128 struct {
	hi, lo uint64
}

func (a square128) lessOrEqual(b square128) bool {
	return a.hi < b.hi || (a.hi == b.hi && a.lo <= b.lo)
}

func distSq(x1, y1, x2, y2 int) square128 {
	dx, dy := absDiff(x1, x2), absDiff(y1, y2)
	xh, xl := bits.Mul64(dx, dx)
	yh, yl := bits.Mul64(dy, dy)
	lo, carry := bits.Add64(xl, yl, 0)
	hi, _ := bits.Add64(xh, yh, carry)
	return square128{hi: hi, lo: lo}
}

// absDiff returns |a-b|, which always fits in a uint64.
func absDiff(a, b int) uint64 {
	if a >= b {
		return uint64(a) - uint64(b)
	}
	return uint64(b) - uint64(a)
}

// subSat returns a-d clamped to math.MinInt. d must not be negative.
func subSat(a, d int) int {
	if a < math.MinInt+d {
		return math.MinInt
	}
	return a - d
}

// addSat returns a+d clamped to math.MaxInt. d must not be negative.
func addSat(a, d int) int {
	if a > math.MaxInt-d {
		return math.MaxInt
	}
	return a + d
}
