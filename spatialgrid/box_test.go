// Copyright 2026 The gridmap Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package spatialgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox_String(t *testing.T) {
	testCases := []struct {
		name     string
		input    Box
		expected string
	}{
		{"Zero", Box{}, "[0,0,0,0]"},
		{"Integers", Box{-1, 2, -3, 4}, "[-1,2,-3,4]"},
		{"Empty", EmptyBox, "[0,0,-1,-1]"},
		{"Domain", Box{0, 0, 255, 255}, "[0,0,255,255]"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := testCase.input.String()

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestBox_Width(t *testing.T) {
	testCases := []struct {
		name     string
		input    Box
		expected int
	}{
		{"Zero", Box{}, 1},
		{"Two", Box{0, 0, 1, 0}, 2},
		{"Straddling", Box{-1, 0, 1, 0}, 3},
		{"Domain", Box{0, 0, 255, 255}, 256},
		{"Empty", EmptyBox, 0},
		{"Inverted", Box{5, 0, 4, 10}, 0},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := testCase.input.Width()

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestBox_Height(t *testing.T) {
	testCases := []struct {
		name     string
		input    Box
		expected int
	}{
		{"Zero", Box{}, 1},
		{"Two", Box{0, 0, 0, 1}, 2},
		{"Straddling", Box{0, -1, 0, 1}, 3},
		{"Empty", EmptyBox, 0},
		{"Inverted", Box{0, 5, 10, 4}, 0},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := testCase.input.Height()

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestBox_IsEmpty(t *testing.T) {
	testCases := []struct {
		name     string
		input    Box
		expected bool
	}{
		{"Zero", Box{}, false},
		{"Empty", EmptyBox, true},
		{"InvertedX", Box{1, 0, 0, 0}, true},
		{"InvertedY", Box{0, 1, 0, 0}, true},
		{"Unit", Box{0, 0, 1, 1}, false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.input.IsEmpty())
		})
	}
}

func TestBox_Contains(t *testing.T) {
	b := Box{16, 32, 31, 47}

	testCases := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"Inside", 20, 40, true},
		{"LowerLeft", 16, 32, true},
		{"LowerRight", 31, 32, true},
		{"UpperLeft", 16, 47, true},
		{"UpperRight", 31, 47, true},
		{"Left", 15, 40, false},
		{"Right", 32, 40, false},
		{"Below", 20, 31, false},
		{"Above", 20, 48, false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, b.Contains(testCase.x, testCase.y))
		})
	}

	t.Run("Empty", func(t *testing.T) {
		assert.False(t, EmptyBox.Contains(0, 0))
	})
}

func TestBox_ContainsBox(t *testing.T) {
	testCases := []struct {
		name     string
		b, c     Box
		expected bool
	}{
		{"Same", Box{0, 0, 7, 7}, Box{0, 0, 7, 7}, true},
		{"Inner", Box{0, 0, 7, 7}, Box{2, 2, 3, 3}, true},
		{"Outer", Box{2, 2, 3, 3}, Box{0, 0, 7, 7}, false},
		{"OverlapLeft", Box{0, 0, 7, 7}, Box{-1, 0, 3, 3}, false},
		{"OverlapUp", Box{0, 0, 7, 7}, Box{0, 4, 3, 8}, false},
		{"Disjoint", Box{0, 0, 7, 7}, Box{8, 8, 9, 9}, false},
		{"EmptyInner", Box{0, 0, 7, 7}, EmptyBox, false},
		{"EmptyOuter", EmptyBox, Box{0, 0, 0, 0}, false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			b, c := testCase.b, testCase.c

			assert.Equal(t, testCase.expected, b.ContainsBox(&c))
		})
	}
}

func TestBox_Intersects(t *testing.T) {
	testCases := []struct {
		name     string
		b, c     Box
		expected bool
	}{
		{"Zero", Box{}, Box{}, true},
		{"Empty", EmptyBox, EmptyBox, false},
		{"ZeroEmpty", Box{}, EmptyBox, false},
		{"EmptyZero", EmptyBox, Box{}, false},
		{"FullyContained", Box{-2, -2, 2, 2}, Box{-1, -1, 1, 1}, true},
		{"FullyContaining", Box{-1, -1, 1, 1}, Box{-2, -2, 2, 2}, true},
		{"Cross", Box{-5, -1, 5, 1}, Box{-1, -5, 1, 5}, true},
		{"TouchLeft", Box{-2, -2, 2, 2}, Box{-3, -1, -2, 1}, true},
		{"TouchDown", Box{-2, -2, 2, 2}, Box{-1, -3, 1, -2}, true},
		{"TouchRight", Box{-2, -2, 2, 2}, Box{2, -1, 3, 1}, true},
		{"TouchUp", Box{-2, -2, 2, 2}, Box{-1, 2, 1, 3}, true},
		{"AdjacentLeft", Box{0, 0, 7, 7}, Box{-8, 0, -1, 7}, false},
		{"AdjacentBelow", Box{0, 0, 7, 7}, Box{0, -8, 7, -1}, false},
		{"IsLeftOf", Box{-2, -2, 0, 0}, Box{-100, -2, -50, 0}, false},
		{"IsBelow", Box{-2, -2, 0, 0}, Box{-2, -100, 0, -50}, false},
		{"IsRightOf", Box{-2, -2, 0, 2}, Box{50, -2, 100, 1}, false},
		{"IsAbove", Box{-2, -2, 2, 2}, Box{1, 50, 2, 100}, false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			b, c := testCase.b, testCase.c

			assert.Equal(t, testCase.expected, b.Intersects(&c))
			assert.Equal(t, testCase.expected, c.Intersects(&b), "Intersects must be symmetric.")
		})
	}
}
