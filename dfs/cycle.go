// SPDX-License-Identifier: MIT

package dfs

import "github.com/katalvlaran/clonemaze/gridgraph"

// HasCycle reports whether g contains a cycle over traversable edges.
// A nil graph is cycle-free.
//
// A forest spanning every component has exactly one discovery edge per
// non-root vertex, so g is cyclic iff it has more edges than a full DFS
// discovers.
func HasCycle(g *gridgraph.Graph) bool {
	if g == nil {
		return false
	}
	res, err := DFS(g, gridgraph.Coord{}, WithFullTraversal())
	if err != nil {
		return false
	}

	return g.EdgeCount() > len(res.Parent)
}

// FindCycle returns one simple cycle of g as a closed vertex sequence
// (first == last), or nil when g is a forest.
//
// Steps:
//  1. Color every vertex White and launch DFS from each White vertex in
//     row-major order.
//  2. Skip the edge back to the parent; the graph is undirected.
//  3. A Gray neighbour closes a back edge: unwind the path stack to it.
//
// Complexity: O(V + E) time, O(V) memory.
func FindCycle(g *gridgraph.Graph) []gridgraph.Coord {
	if g == nil {
		return nil
	}

	verts := g.Vertices()
	state := make(map[gridgraph.Coord]int, len(verts))
	path := make([]gridgraph.Coord, 0, len(verts))

	var visit func(c, parent gridgraph.Coord, root bool) []gridgraph.Coord
	visit = func(c, parent gridgraph.Coord, root bool) []gridgraph.Coord {
		state[c] = Gray
		path = append(path, c)
		for _, n := range g.Neighbours(c) {
			if !root && n == parent {
				continue
			}
			switch state[n] {
			case White:
				if cyc := visit(n, c, false); cyc != nil {
					return cyc
				}
			case Gray:
				return closeCycle(path, n)
			}
		}
		path = path[:len(path)-1]
		state[c] = Black

		return nil
	}

	for _, v := range verts {
		if state[v] != White {
			continue
		}
		if cyc := visit(v, v, true); cyc != nil {
			return cyc
		}
	}

	return nil
}

// closeCycle extracts the suffix of path starting at head and closes it.
func closeCycle(path []gridgraph.Coord, head gridgraph.Coord) []gridgraph.Coord {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == head {
			cyc := make([]gridgraph.Coord, 0, len(path)-i+1)
			cyc = append(cyc, path[i:]...)

			return append(cyc, head)
		}
	}

	return nil
}
