// Copyright 2026 The gridmap Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package spatialgrid

import "math/bits"

const (
	// DefaultCapacity is the root node capacity used by DefaultConfig.
	DefaultCapacity = 1024
	// DefaultDepth is the root depth used by DefaultConfig, giving a
	// 256x256 domain.
	DefaultDepth = 8
	// DefaultCapacityStep is the amount by which each child's capacity
	// exceeds its parent's when DefaultConfig or New is used.
	DefaultCapacityStep = 1
	// MaxDepth is the largest supported root depth: 62 on 64-bit
	// platforms and 30 on 32-bit ones. Any aligned origin plus the
	// domain side still fits in an int.
	MaxDepth = bits.UintSize - 2
)

// Config holds the construction parameters of a Grid.
type Config struct {
	// Capacity is the number of entries the root node tolerates before
	// it splits. It must be at least 1.
	Capacity int
	// Depth is the number of power-of-two levels of the root domain,
	// whose side is 2^Depth. It must be between 0 and MaxDepth.
	Depth int
	// OriginX is the inclusive lower X bound of the root domain. It
	// must be a multiple of 2^Depth.
	OriginX int
	// OriginY is the inclusive lower Y bound of the root domain. It
	// must be a multiple of 2^Depth.
	OriginY int
	// CapacityStep is added to a node's capacity to obtain the capacity
	// of its children. A positive step keeps a freshly split child from
	// splitting again immediately. It must not be negative.
	CapacityStep int
}

// DefaultConfig returns a Config describing a 256x256 domain at the
// origin with capacity DefaultCapacity.
func DefaultConfig() Config {
	return Config{
		Capacity:     DefaultCapacity,
		Depth:        DefaultDepth,
		CapacityStep: DefaultCapacityStep,
	}
}

// Bounds returns the root domain described by the Config.
func (c *Config) Bounds() Box {
	side := 1 << c.Depth
	return Box{
		XMin: c.OriginX,
		YMin: c.OriginY,
		XMax: c.OriginX + side - 1,
		YMax: c.OriginY + side - 1,
	}
}

// validate panics if the Config violates the construction contract.
//
// The quadrant of a coordinate is chosen by testing a single bit of the
// raw coordinate, which only bisects a domain whose origin has all its
// low Depth bits clear. Misaligned origins are rejected rather than
// adjusted.
func (c *Config) validate() {
	if c.Capacity < 1 {
		fmtPanic("capacity must be at least 1, got %d", c.Capacity)
	} else if c.Depth < 0 || c.Depth > MaxDepth {
		fmtPanic("depth must be between 0 and %d, got %d", MaxDepth, c.Depth)
	} else if c.CapacityStep < 0 {
		fmtPanic("capacity step must not be negative, got %d", c.CapacityStep)
	}
	mask := 1<<c.Depth - 1
	if c.OriginX&mask != 0 || c.OriginY&mask != 0 {
		fmtPanic("origin (%d,%d) must be a multiple of 2^%d", c.OriginX, c.OriginY, c.Depth)
	}
}
