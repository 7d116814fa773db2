// SPDX-License-Identifier: MIT

// Package prim_kruskal reduces a weighted maze (*gridgraph.Graph) to a
// minimum-weight spanning structure, with two independent algorithms that
// must agree on total weight.
//
// What & Why
//
//   - A minimum spanning tree keeps every room of a maze reachable while
//     dropping the heaviest redundant passages. The planner in package explore
//     relies on the result being a tree: every pair of rooms is joined by a
//     unique path, so backtracking always retraces the way in.
//
// Algorithms Provided
//
//   - Kruskal(g) (*gridgraph.Graph, int64, error)
//
//   - Strategy: take every traversable edge once, in row-major order, stable-sort
//     it by weight and feed it through a disjoint-set forest (path compression,
//     union by rank). An edge joins the tree iff it merges two sets.
//
//   - Disconnected input yields a spanning forest (one tree per component),
//     never an error.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
//
//   - Prim(g, root) (*gridgraph.Graph, int64, error)
//
//   - Strategy: grow one tree from root with a min-heap of frontier edges keyed by
//     (weight, insertion sequence), so equal weights pop in the order they were
//     discovered.
//
//   - Covers only the component of root; returns ErrDisconnected otherwise.
//     PrimForest runs Prim once per component.
//
//   - Complexity: O(E log E) time, O(V + E) memory.
//
// Verification
//
//   - CheckCycleProperty(g, tree) confirms tree is a spanning forest of g and
//     that no non-tree edge is lighter than the heaviest edge on the tree path
//     between its endpoints. That is the minimality oracle used in tests.
//
// Determinism
//
//	Edges() and Vertices() are row-major; both algorithms only use stable
//	orderings on top of that, so the same input always yields the same tree.
package prim_kruskal
