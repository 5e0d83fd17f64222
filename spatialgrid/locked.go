// Copyright 2026 The gridmap Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package spatialgrid

import "sync"

// Locked wraps a Grid so it can be shared between goroutines. Inserts
// hold an exclusive lock, since they append to the caches of internal
// nodes and may split a leaf. Reads share the lock with each other.
type Locked[T any] struct {
	mu   sync.RWMutex
	grid *Grid[T]
}

// NewLocked wraps g. The caller must not use g directly afterward.
func NewLocked[T any](g *Grid[T]) *Locked[T] {
	if g == nil {
		textPanic("nil grid")
	}
	return &Locked[T]{grid: g}
}

// Insert calls Grid.Insert under the write lock.
func (l *Locked[T]) Insert(x, y int, v T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.grid.Insert(x, y, v)
}

// Query calls Grid.Query under the read lock.
func (l *Locked[T]) Query(xMin, yMin, xMax, yMax int) Entries[T] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.grid.Query(xMin, yMin, xMax, yMax)
}

// Search calls Grid.Search under the read lock, which is held until
// Search returns. fn must not call Insert on the same Locked.
func (l *Locked[T]) Search(b Box, fn func(Entry[T]) bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.grid.Search(b, fn)
}

// Within calls Grid.Within under the read lock.
func (l *Locked[T]) Within(x, y, radius int) Entries[T] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.grid.Within(x, y, radius)
}

// Len calls Grid.Len under the read lock.
func (l *Locked[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.grid.Len()
}

// Stats calls Grid.Stats under the read lock.
func (l *Locked[T]) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.grid.Stats()
}

// Bounds returns the root domain of the wrapped Grid. The domain never
// changes, so no lock is taken.
func (l *Locked[T]) Bounds() Box {
	return l.grid.Bounds()
}
