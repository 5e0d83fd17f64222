// Copyright 2026 The gridmap Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package spatialgrid provides a recursive grid (region quadtree) which
// indexes arbitrary values by integer (x, y) coordinates and answers
// axis-aligned rectangular range queries.
//
// A Grid covers a square domain whose side is a power of two. Each node
// holds entries until it exceeds its capacity, at which point it splits
// into four equal quadrants. Internal nodes keep a cache of every entry
// routed through them, so a query rectangle which fully contains a node
// is answered from that node without descending.
//
// A Grid is not safe for concurrent use. Wrap it in a Locked to share it
// between goroutines.
package spatialgrid
