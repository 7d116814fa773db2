// SPDX-License-Identifier: MIT

package dfs_test

import "github.com/katalvlaran/clonemaze/gridgraph"

// buildLine creates a 1×n corridor (0,0)-(0,1)-…-(0,n-1) with weights 1..n-1.
func buildLine(n int) *gridgraph.Graph {
	g := gridgraph.NewGraph(1, n)
	for c := 0; c < n; c++ {
		g.AddVertex(gridgraph.C(0, c))
	}
	for c := 1; c < n; c++ {
		g.AddEdge(gridgraph.C(0, c-1), gridgraph.C(0, c), int64(c))
	}

	return g
}

// buildComb creates a 3×3 tree: a spine along row 0 with teeth hanging down
// from every column.
//
//	(0,0)-1-(0,1)-1-(0,2)
//	  |2      |3      |4
//	(1,0)   (1,1)   (1,2)
//	  |5      |6      |7
//	(2,0)   (2,1)   (2,2)
func buildComb() *gridgraph.Graph {
	g := gridgraph.NewGraph(3, 3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			g.AddVertex(gridgraph.C(r, c))
		}
	}
	g.AddEdge(gridgraph.C(0, 0), gridgraph.C(0, 1), 1)
	g.AddEdge(gridgraph.C(0, 1), gridgraph.C(0, 2), 1)
	for c := 0; c < 3; c++ {
		g.AddEdge(gridgraph.C(0, c), gridgraph.C(1, c), int64(2+c))
		g.AddEdge(gridgraph.C(1, c), gridgraph.C(2, c), int64(5+c))
	}

	return g
}
