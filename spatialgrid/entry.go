// Copyright 2026 The gridmap Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package spatialgrid

import "fmt"

// An Entry is a single value stored in a Grid at an integer coordinate.
// The Grid never inspects Value.
type Entry[T any] struct {
	X     int
	Y     int
	Value T
}

func (e Entry[T]) String() string {
	return fmt.Sprintf("(%d,%d): %v", e.X, e.Y, e.Value)
}

// Entries is a slice of Entry values which implements sort.Interface.
// The sort.Sort function will sort Entries in row-major order, that is
// ascending by Y and then by X. The relative order of entries sharing a
// coordinate is not defined unless sort.Stable is used.
type Entries[T any] []Entry[T]

// Len returns the length of the slice. It implements the corresponding
// method of sort.Interface.
func (es Entries[T]) Len() int {
	return len(es)
}

// Less orders entries by ascending Y, breaking ties by ascending X. It
// implements the corresponding method of sort.Interface.
func (es Entries[T]) Less(i, j int) bool {
	if es[i].Y != es[j].Y {
		return es[i].Y < es[j].Y
	}
	return es[i].X < es[j].X
}

// Swap swaps two elements of the slice. It implements the corresponding
// method of sort.Interface.
func (es Entries[T]) Swap(i, j int) {
	es[i], es[j] = es[j], es[i]
}
