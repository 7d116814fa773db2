// SPDX-License-Identifier: MIT

// Package dfs implements the depth-first primitives the traversal planner is
// built on, over a *gridgraph.Graph.
//
// What:
//
//   - DFS: recursive traversal with pre- and post-order hooks, cancellation,
//     neighbour filtering and forest mode. The other primitives, and the
//     maze shape in the CLI report, are built on it.
//   - PathBetween: explicit-stack backtracking search for the path between two
//     vertices. In a tree it is the unique path, which is how a walker finds its
//     way back to a junction after a detour.
//   - ReachableWeight: total edge weight of the region reachable from a vertex
//     without crossing a blocked (claimed) vertex. The planner's subtree weight.
//   - HasCycle / FindCycle: undirected cycle detection, used to check that a
//     spanning structure really is a forest.
//
// Complexity:
//
//   - DFS, PathBetween, ReachableWeight, FindCycle: Time O(V+E), Memory O(V).
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex not in graph
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
