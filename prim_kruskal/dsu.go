// SPDX-License-Identifier: MIT

package prim_kruskal

import "github.com/katalvlaran/clonemaze/gridgraph"

// disjointSet is a union-find forest over maze coordinates.
type disjointSet struct {
	parent map[gridgraph.Coord]gridgraph.Coord
	rank   map[gridgraph.Coord]int
}

// newDisjointSet puts every vertex in its own singleton set.
func newDisjointSet(vertices []gridgraph.Coord) *disjointSet {
	ds := &disjointSet{
		parent: make(map[gridgraph.Coord]gridgraph.Coord, len(vertices)),
		rank:   make(map[gridgraph.Coord]int, len(vertices)),
	}
	for _, v := range vertices {
		ds.parent[v] = v
	}

	return ds
}

// find returns the root of u's set. Iterative, with path halving.
func (ds *disjointSet) find(u gridgraph.Coord) gridgraph.Coord {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v by rank.
// Returns false if they already shared a root (the edge would close a cycle).
func (ds *disjointSet) union(u, v gridgraph.Coord) bool {
	rootU, rootV := ds.find(u), ds.find(v)
	if rootU == rootV {
		return false
	}
	// Attach the shallower tree under the deeper root.
	switch {
	case ds.rank[rootU] < ds.rank[rootV]:
		ds.parent[rootU] = rootV
	case ds.rank[rootU] > ds.rank[rootV]:
		ds.parent[rootV] = rootU
	default:
		ds.parent[rootV] = rootU
		ds.rank[rootU]++
	}

	return true
}
