// SPDX-License-Identifier: MIT

package explore_test

import (
	"github.com/katalvlaran/clonemaze/builder"
	"github.com/katalvlaran/clonemaze/gridgraph"
	"github.com/katalvlaran/clonemaze/prim_kruskal"
)

var (
	center = gridgraph.C(1, 1)
	west   = gridgraph.C(1, 0)
	north  = gridgraph.C(0, 1)
	south  = gridgraph.C(2, 1)
)

// star is the 4-room tree centered at (1,1) with leaves west w=2,
// north w=3 and south w=7.
func star() *gridgraph.Graph {
	g := gridgraph.NewGraph(3, 3)
	g.AddVertices(center, west, north, south)
	g.AddEdge(center, west, 2)
	g.AddEdge(center, north, 3)
	g.AddEdge(center, south, 7)

	return g
}

// line is a 1×n corridor with weights 1..n-1.
func line(n int) *gridgraph.Graph {
	g := gridgraph.NewGraph(1, n)
	for c := 0; c < n; c++ {
		g.AddVertex(gridgraph.C(0, c))
	}
	for c := 1; c < n; c++ {
		g.AddEdge(gridgraph.C(0, c-1), gridgraph.C(0, c), int64(c))
	}

	return g
}

// randomTree is the minimum spanning tree of a fully open rows×cols grid with
// weights in [1, maxW].
func randomTree(rows, cols int, maxW int64, seed int64) *gridgraph.Graph {
	g, err := builder.BuildMaze(rows, cols,
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithMaxWeight(maxW)},
		builder.OpenGrid())
	if err != nil {
		panic(err)
	}
	tree, _, err := prim_kruskal.Kruskal(g)
	if err != nil {
		panic(err)
	}

	return tree
}
