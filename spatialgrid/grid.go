// Copyright 2026 The gridmap Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package spatialgrid

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// A node is a single square of the recursive grid. Its domain, box, has
// side 2^depth.
//
// A leaf node (children == nil) is the authoritative holder of the
// entries in its domain. An internal node has exactly four children
// indexed [xHalf][yHalf]; its entries slice is a cache of every entry
// that was present when it split or was routed through it afterward,
// and is only consulted when a query fully contains the node.
type node[T any] struct {
	box      Box
	depth    int
	capacity int
	entries  []*Entry[T]
	children *[2][2]*node[T]
}

func newNode[T any](minX, minY, depth, capacity int) *node[T] {
	side := 1 << depth
	return &node[T]{
		box:      Box{XMin: minX, YMin: minY, XMax: minX + side - 1, YMax: minY + side - 1},
		depth:    depth,
		capacity: capacity,
	}
}

// index returns the half, 0 or 1, of the node's domain containing the
// coordinate value v. It tests bit depth-1 of v, which is only correct
// because node origins are aligned to 2^depth.
func (n *node[T]) index(v int) int {
	return (v >> (n.depth - 1)) & 1
}

// split turns the leaf node n into an internal node with four children
// and hands each of n's entries to the child covering it. Children are
// not split further here, even if they end up over capacity; they split
// on their next insertion. n keeps its entries as the internal cache.
func (n *node[T]) split(step int) {
	depth := n.depth - 1
	half := 1 << depth
	capacity := n.capacity + step
	if n.capacity > math.MaxInt-step {
		capacity = math.MaxInt
	}
	var children [2][2]*node[T]
	for ix := 0; ix < 2; ix++ {
		for iy := 0; iy < 2; iy++ {
			children[ix][iy] = newNode[T](n.box.XMin+ix*half, n.box.YMin+iy*half, depth, capacity)
		}
	}
	for _, e := range n.entries {
		c := children[n.index(e.X)][n.index(e.Y)]
		c.entries = append(c.entries, e)
	}
	n.children = &children
}

// Grid is a recursive grid indexing values of type T by integer
// coordinate. The zero value is not usable; create Grids with New or
// NewConfig.
type Grid[T any] struct {
	root *node[T]
	cfg  Config
	n    int
}

// New creates an empty Grid whose root node has the given capacity and
// whose domain is the 2^depth by 2^depth square with lower-left corner
// (originX, originY). Each child's capacity is DefaultCapacityStep more
// than its parent's.
//
// Panics if capacity is less than 1, depth is outside [0, MaxDepth], or
// either origin coordinate is not a multiple of 2^depth.
func New[T any](capacity, depth, originX, originY int) *Grid[T] {
	return NewConfig[T](Config{
		Capacity:     capacity,
		Depth:        depth,
		OriginX:      originX,
		OriginY:      originY,
		CapacityStep: DefaultCapacityStep,
	})
}

// NewConfig creates an empty Grid from a Config. Panics if the Config is
// invalid; see the field documentation of Config for the constraints.
func NewConfig[T any](cfg Config) *Grid[T] {
	cfg.validate()
	return &Grid[T]{
		root: newNode[T](cfg.OriginX, cfg.OriginY, cfg.Depth, cfg.Capacity),
		cfg:  cfg,
	}
}

// Config returns the Config the Grid was created with.
func (g *Grid[T]) Config() Config {
	return g.cfg
}

// Bounds returns the root domain of the Grid.
func (g *Grid[T]) Bounds() Box {
	return g.root.box
}

// Len returns the number of entries inserted into the Grid.
func (g *Grid[T]) Len() int {
	return g.n
}

// Insert stores value v at the coordinate (x, y).
//
// The entry is appended to the cache of every internal node on the way
// down and finally to the leaf covering (x, y). If the leaf then holds
// more than its capacity and its depth is positive, it splits. Leaves
// of depth 0 never split and grow without bound.
//
// Returns an error wrapping ErrOutOfDomain, leaving the Grid unchanged,
// if (x, y) lies outside Bounds.
func (g *Grid[T]) Insert(x, y int, v T) error {
	if !g.root.box.Contains(x, y) {
		return domainErr(x, y, g.root.box)
	}
	e := &Entry[T]{X: x, Y: y, Value: v}
	n := g.root
	for n.children != nil {
		n.entries = append(n.entries, e)
		n = n.children[n.index(x)][n.index(y)]
	}
	n.entries = append(n.entries, e)
	if len(n.entries) > n.capacity && n.depth > 0 {
		n.split(g.cfg.CapacityStep)
	}
	g.n++
	return nil
}

// Search calls fn for each entry whose coordinate lies within b, bounds
// included, until fn returns false. Each matching entry is visited
// exactly once. The visiting order is not defined. An empty b matches
// nothing.
//
// fn must not modify the Grid.
func (g *Grid[T]) Search(b Box, fn func(Entry[T]) bool) {
	if b.IsEmpty() || !b.Intersects(&g.root.box) {
		return
	}
	stack := make([]*node[T], 1, 4*g.cfg.Depth+1)
	stack[0] = g.root
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch {
		case n.children == nil:
			for _, e := range n.entries {
				if b.Contains(e.X, e.Y) && !fn(*e) {
					return
				}
			}
		case b.ContainsBox(&n.box):
			for _, e := range n.entries {
				if !fn(*e) {
					return
				}
			}
		default:
			// Partial overlap. The cache is skipped so no entry is
			// reported twice.
			for ix := 1; ix >= 0; ix-- {
				for iy := 1; iy >= 0; iy-- {
					if c := n.children[ix][iy]; b.Intersects(&c.box) {
						stack = append(stack, c)
					}
				}
			}
		}
	}
}

// Query returns every entry whose coordinate lies within the rectangle
// [xMin, xMax] x [yMin, yMax], bounds included. The order of the
// results is not defined. A rectangle with xMin > xMax or yMin > yMax
// yields an empty result.
func (g *Grid[T]) Query(xMin, yMin, xMax, yMax int) Entries[T] {
	r := make(Entries[T], 0)
	g.Search(Box{XMin: xMin, YMin: yMin, XMax: xMax, YMax: yMax}, func(e Entry[T]) bool {
		r = append(r, e)
		return true
	})
	return r
}

// Stats describes the shape of a Grid.
type Stats struct {
	// Nodes is the total node count, internal and leaf.
	Nodes int
	// Leaves is the number of nodes without children.
	Leaves int
	// Height is the number of levels in the tree. A Grid which never
	// split has height 1.
	Height int
	// Entries is the number of entries held by leaves. It always equals
	// Len.
	Entries int
	// CachedRefs is the number of entry references held in the caches of
	// internal nodes.
	CachedRefs int
}

// levelNode pairs a node with its distance from the root.
type levelNode[T any] struct {
	n     *node[T]
	level int
}

// walk visits every node depth-first in pre-order, children in
// [0][0], [0][1], [1][0], [1][1] order.
func (g *Grid[T]) walk(fn func(n *node[T], level int) error) error {
	stack := []levelNode[T]{{g.root, 0}}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := fn(t.n, t.level); err != nil {
			return err
		}
		if t.n.children != nil {
			for ix := 1; ix >= 0; ix-- {
				for iy := 1; iy >= 0; iy-- {
					stack = append(stack, levelNode[T]{t.n.children[ix][iy], t.level + 1})
				}
			}
		}
	}
	return nil
}

// Stats walks the Grid and returns a summary of its shape.
func (g *Grid[T]) Stats() Stats {
	var s Stats
	_ = g.walk(func(n *node[T], level int) error {
		s.Nodes++
		if level+1 > s.Height {
			s.Height = level + 1
		}
		if n.children == nil {
			s.Leaves++
			s.Entries += len(n.entries)
		} else {
			s.CachedRefs += len(n.entries)
		}
		return nil
	})
	return s
}

// String returns a summary description of the Grid.
func (g *Grid[T]) String() string {
	return fmt.Sprintf("Grid{Bounds:%s,Capacity:%d,CapacityStep:%d,Len:%d}", g.root.box, g.cfg.Capacity, g.cfg.CapacityStep, g.n)
}

// Dump writes a human-readable description of the whole tree to w, one
// node per line indented by level. Leaves list the entries they hold;
// internal nodes show the size of their cache.
func (g *Grid[T]) Dump(w io.Writer) error {
	var b strings.Builder
	return g.walk(func(n *node[T], level int) error {
		b.Reset()
		b.WriteString(strings.Repeat("  ", level))
		b.WriteString(n.box.String())
		_, _ = fmt.Fprintf(&b, " depth=%d capacity=%d", n.depth, n.capacity)
		if n.children != nil {
			_, _ = fmt.Fprintf(&b, " cached=%d", len(n.entries))
		} else {
			b.WriteString(" entries=[")
			for i, e := range n.entries {
				if i > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(e.String())
			}
			b.WriteByte(']')
		}
		b.WriteByte('\n')
		_, err := io.WriteString(w, b.String())
		return err
	})
}
