// Copyright 2026 The gridmap Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package spatialgrid_test

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/gogama/gridmap/spatialgrid"
)

func ExampleNew() {
	g := spatialgrid.New[string](3, 8, 0, 0) // 256x256 domain at the origin.

	fmt.Println(g)
	fmt.Println(g.Bounds())
	// Output: Grid{Bounds:[0,0,255,255],Capacity:3,CapacityStep:1,Len:0}
	// [0,0,255,255]
}

func ExampleGrid_Insert() {
	g := spatialgrid.New[string](3, 8, 0, 0)

	err1 := g.Insert(14, 7, "hello world")
	fmt.Println("Insert 1:", err1)

	err2 := g.Insert(256, 7, "too far")
	fmt.Println("Insert 2:", err2, errors.Is(err2, spatialgrid.ErrOutOfDomain))

	fmt.Println("Len:", g.Len())
	// Output: Insert 1: <nil>
	// Insert 2: point (256,7) outside [0,0,255,255]: spatialgrid: out of domain true
	// Len: 1
}

func ExampleGrid_Query() {
	g := spatialgrid.New[string](2, 3, 0, 0)
	_ = g.Insert(1, 1, "a") // Ignore errors ONLY to keep example simple.
	_ = g.Insert(2, 5, "b")
	_ = g.Insert(6, 6, "c")
	_ = g.Insert(3, 3, "d")

	r := g.Query(0, 0, 3, 3)
	sort.Sort(r) // Results are unordered.

	fmt.Println(r)
	// Output: [(1,1): a (3,3): d]
}

func ExampleGrid_Within() {
	g := spatialgrid.New[string](2, 3, 0, 0)
	_ = g.Insert(4, 4, "center")
	_ = g.Insert(6, 4, "east")
	_ = g.Insert(6, 6, "north-east")

	r := g.Within(4, 4, 2)
	sort.Sort(r)

	fmt.Println(r)
	// Output: [(4,4): center (6,4): east]
}

func ExampleGrid_Dump() {
	g := spatialgrid.New[int](1, 1, 0, 0)
	_ = g.Insert(0, 0, 10)
	_ = g.Insert(1, 0, 20)

	_ = g.Dump(os.Stdout)
	// Output: [0,0,1,1] depth=1 capacity=1 cached=2
	//   [0,0,0,0] depth=0 capacity=2 entries=[(0,0): 10]
	//   [0,1,0,1] depth=0 capacity=2 entries=[]
	//   [1,0,1,0] depth=0 capacity=2 entries=[(1,0): 20]
	//   [1,1,1,1] depth=0 capacity=2 entries=[]
}
