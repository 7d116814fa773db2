// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/clonemaze/gridgraph"
)

// Kruskal computes a minimum spanning forest of g.
//
// Steps:
//  1. Validate g != nil. An empty graph yields an empty tree.
//  2. Target edge count = |V| - #components (|V|-1 for a connected maze).
//  3. Collect traversable edges via g.Edges() (row-major) and stable-sort by
//     weight, so ties keep row-major order.
//  4. For each edge, add it to the tree iff union(u, v) merges two sets.
//  5. Stop once the target is reached.
//
// The returned tree has the same dimensions and vertex set as g.
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(g *gridgraph.Graph) (*gridgraph.Graph, int64, error) {
	// 1. Validate input.
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	tree := g.CloneEmpty()
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return tree, 0, nil
	}

	// 2. Each component contributes size-1 edges.
	target := len(vertices) - len(g.ConnectedComponents())

	// 3. Deterministic edge order.
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4-5. Greedy selection.
	ds := newDisjointSet(vertices)
	var (
		placed int
		total  int64
	)
	for _, e := range edges {
		if placed == target {
			break
		}
		if !ds.union(e.From, e.To) {
			continue
		}
		tree.AddEdge(e.From, e.To, e.Weight)
		total += e.Weight
		placed++
	}

	return tree, total, nil
}
