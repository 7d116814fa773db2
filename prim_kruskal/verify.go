// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/clonemaze/dfs"
	"github.com/katalvlaran/clonemaze/gridgraph"
)

// CheckCycleProperty verifies that tree is a minimum spanning forest of g.
//
// Steps:
//  1. tree and g have the same vertex set.
//  2. Every tree edge exists in g with the same weight.
//  3. tree has |V| - #components(g) edges and as many components as g,
//     which makes it acyclic and spanning.
//  4. For every non-tree edge (u, v, w) of g, w ≥ the heaviest edge on the
//     unique tree path u…v.
//
// Returns nil, or an error wrapping ErrNotSpanning or ErrCycleProperty that
// names the first offending vertex or edge.
// Complexity: O(E·V) time in the worst case, O(V) memory.
func CheckCycleProperty(g, tree *gridgraph.Graph) error {
	if g == nil || tree == nil {
		return ErrNilGraph
	}

	// 1. Same vertices.
	gv, tv := g.Vertices(), tree.Vertices()
	if len(gv) != len(tv) {
		return fmt.Errorf("%w: %d vertices, want %d", ErrNotSpanning, len(tv), len(gv))
	}
	for i := range gv {
		if gv[i] != tv[i] {
			return fmt.Errorf("%w: vertex %v missing from tree", ErrNotSpanning, gv[i])
		}
	}

	// 2. Tree edges are graph edges.
	for _, e := range tree.Edges() {
		if g.Weight(e.From, e.To) != e.Weight {
			return fmt.Errorf("%w: tree edge %v-%v (w=%d) not in graph",
				ErrNotSpanning, e.From, e.To, e.Weight)
		}
	}

	// 3. Forest shape.
	comps := len(g.ConnectedComponents())
	if want := len(gv) - comps; tree.EdgeCount() != want {
		return fmt.Errorf("%w: %d edges, want %d", ErrNotSpanning, tree.EdgeCount(), want)
	}
	if got := len(tree.ConnectedComponents()); got != comps {
		return fmt.Errorf("%w: %d components, want %d", ErrNotSpanning, got, comps)
	}

	// 4. Cycle property.
	for _, e := range g.Edges() {
		if tree.HasEdge(e.From, e.To) {
			continue
		}
		heaviest := maxOnPath(tree, dfs.PathBetween(tree, e.From, e.To))
		if e.Weight < heaviest {
			return fmt.Errorf("%w: edge %v-%v (w=%d) lighter than tree path max %d",
				ErrCycleProperty, e.From, e.To, e.Weight, heaviest)
		}
	}

	return nil
}

// maxOnPath returns the heaviest edge weight along path in tree.
func maxOnPath(tree *gridgraph.Graph, path []gridgraph.Coord) int64 {
	var heaviest int64
	for i := 1; i < len(path); i++ {
		if w := tree.Weight(path[i-1], path[i]); w > heaviest {
			heaviest = w
		}
	}

	return heaviest
}
