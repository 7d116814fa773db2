// SPDX-License-Identifier: MIT

package prim_kruskal_test

import (
	"math/rand"

	"github.com/katalvlaran/clonemaze/gridgraph"
)

// tieEdges is the 2×3 grid with explicit tie weights 1,1,2,2,3,1,4:
//
//	(0,0)-1-(0,1)-1-(0,2)
//	  |3      |1      |4
//	(1,0)-2-(1,1)-2-(1,2)
var tieEdges = []gridgraph.Edge{
	{From: gridgraph.C(0, 0), To: gridgraph.C(0, 1), Weight: 1},
	{From: gridgraph.C(0, 1), To: gridgraph.C(0, 2), Weight: 1},
	{From: gridgraph.C(1, 0), To: gridgraph.C(1, 1), Weight: 2},
	{From: gridgraph.C(1, 1), To: gridgraph.C(1, 2), Weight: 2},
	{From: gridgraph.C(0, 0), To: gridgraph.C(1, 0), Weight: 3},
	{From: gridgraph.C(0, 1), To: gridgraph.C(1, 1), Weight: 1},
	{From: gridgraph.C(0, 2), To: gridgraph.C(1, 2), Weight: 4},
}

// rooms returns a rows×cols graph with every cell present and no passages.
func rooms(rows, cols int) *gridgraph.Graph {
	g := gridgraph.NewGraph(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.AddVertex(gridgraph.C(r, c))
		}
	}

	return g
}

// fromEdges builds the 2×3 tie grid inserting edges in the given order.
func fromEdges(edges []gridgraph.Edge) *gridgraph.Graph {
	g := rooms(2, 3)
	for _, e := range edges {
		g.AddEdge(e.From, e.To, e.Weight)
	}

	return g
}

// randomGrid opens each interior passage with probability openPerc/100 and a
// weight in [1, maxW]. openPerc 100 yields a fully connected grid.
func randomGrid(rows, cols, openPerc int, maxW int64, seed int64) *gridgraph.Graph {
	r := rand.New(rand.NewSource(seed))
	g := rooms(rows, cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			u := gridgraph.C(row, col)
			for _, v := range []gridgraph.Coord{gridgraph.C(row, col+1), gridgraph.C(row+1, col)} {
				if !g.HasVertex(v) || r.Intn(100) >= openPerc {
					continue
				}
				g.AddEdge(u, v, 1+r.Int63n(maxW))
			}
		}
	}

	return g
}
