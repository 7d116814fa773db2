// SPDX-License-Identifier: MIT

package dfs

import "github.com/katalvlaran/clonemaze/gridgraph"

// PathBetween returns a simple path from -> … -> to over traversable edges,
// found by explicit-stack backtracking search. In a tree the path is unique.
//
// Returns nil when either endpoint is missing or to is unreachable; the
// search never revisits a vertex, so it always terminates.
// from == to yields [from].
//
// Complexity: O(V + E) time, O(V) memory.
func PathBetween(g *gridgraph.Graph, from, to gridgraph.Coord) []gridgraph.Coord {
	if g == nil || !g.HasVertex(from) || !g.HasVertex(to) {
		return nil
	}

	// frame is one level of the backtracking stack: a vertex and the index
	// of the next neighbour to try.
	type frame struct {
		at   gridgraph.Coord
		nbrs []gridgraph.Coord
		next int
	}

	visited := map[gridgraph.Coord]bool{from: true}
	stack := []frame{{at: from, nbrs: g.Neighbours(from)}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.at == to {
			path := make([]gridgraph.Coord, len(stack))
			for i, f := range stack {
				path[i] = f.at
			}

			return path
		}
		if top.next == len(top.nbrs) {
			stack = stack[:len(stack)-1]
			continue
		}
		n := top.nbrs[top.next]
		top.next++
		if visited[n] {
			continue
		}
		visited[n] = true
		stack = append(stack, frame{at: n, nbrs: g.Neighbours(n)})
	}

	return nil
}

// ReachableWeight sums the weights of every edge explored depth-first from
// start without entering a blocked vertex or revisiting one, i.e. the total
// weight of the unclaimed subtree hanging off start. The edge used to reach
// start is not counted. A blocked or missing start yields 0.
//
// blocked may be nil. In a tree the result is exact; in a graph with cycles
// it is the weight of one DFS spanning tree of the region.
//
// Steps:
//  1. Run DFS from start, filtering out blocked neighbours.
//  2. Sum the weight of every discovery edge (Parent[v], v).
//
// Complexity: O(V + E) time, O(V) memory.
func ReachableWeight(g *gridgraph.Graph, start gridgraph.Coord, blocked func(gridgraph.Coord) bool) int64 {
	if g == nil || !g.HasVertex(start) || (blocked != nil && blocked(start)) {
		return 0
	}

	var opts []Option
	if blocked != nil {
		opts = append(opts, WithFilterNeighbor(func(c gridgraph.Coord) bool { return !blocked(c) }))
	}
	res, err := DFS(g, start, opts...)
	if err != nil {
		return 0
	}

	var total int64
	for v, u := range res.Parent {
		total += g.Weight(u, v)
	}

	return total
}
