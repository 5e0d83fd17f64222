// Copyright 2026 The gridmap Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package spatialgrid

import "strconv"

// Box is an axis-aligned rectangle on the integer grid. All four bounds
// are inclusive, so the Box{0, 0, 0, 0} covers exactly one cell.
//
// A Box whose minimum exceeds its maximum on either axis is empty and
// contains nothing.
type Box struct {
	XMin int
	YMin int
	XMax int
	YMax int
}

// EmptyBox is a canonical empty Box.
var EmptyBox = Box{XMin: 0, YMin: 0, XMax: -1, YMax: -1}

// Width returns the number of integer columns covered by the Box, or
// zero if the Box is empty.
func (b *Box) Width() int {
	if b.XMin > b.XMax {
		return 0
	}
	return b.XMax - b.XMin + 1
}

// Height returns the number of integer rows covered by the Box, or zero
// if the Box is empty.
func (b *Box) Height() int {
	if b.YMin > b.YMax {
		return 0
	}
	return b.YMax - b.YMin + 1
}

// IsEmpty reports whether the Box covers no cells.
func (b *Box) IsEmpty() bool {
	return b.XMin > b.XMax || b.YMin > b.YMax
}

// Contains reports whether the point (x, y) lies within the Box,
// boundary included.
func (b *Box) Contains(x, y int) bool {
	return b.XMin <= x && x <= b.XMax && b.YMin <= y && y <= b.YMax
}

// ContainsBox reports whether c lies entirely within b. An empty c is
// never contained.
func (b *Box) ContainsBox(c *Box) bool {
	if c.IsEmpty() {
		return false
	}
	return b.XMin <= c.XMin && c.XMax <= b.XMax && b.YMin <= c.YMin && c.YMax <= b.YMax
}

// Intersects reports whether b and c share at least one cell. Two boxes
// intersect unless they are disjoint on one of the axes.
func (b *Box) Intersects(c *Box) bool {
	return b.XMin <= c.XMax && b.XMax >= c.XMin && b.YMin <= c.YMax && b.YMax >= c.YMin
}

func (b Box) String() string {
	buf := make([]byte, 0, 32)
	buf = append(buf, '[')
	buf = strconv.AppendInt(buf, int64(b.XMin), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(b.YMin), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(b.XMax), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(b.YMax), 10)
	buf = append(buf, ']')
	return string(buf)
}
