// SPDX-License-Identifier: MIT

// Package gridgraph models a maze as a weighted, undirected graph whose
// vertices are integer grid coordinates.
//
// What:
//
//   - Coord is a (Row, Col) pair compared by value. Two coordinates are
//     adjacent iff they differ by exactly 1 in exactly one component.
//   - Graph stores a symmetric weight for adjacent vertex pairs only.
//     Weight 0 is a wall (no traversable edge), weight > 0 is a passage
//     with that movement cost.
//   - Components are discovered by BFS over traversable edges only.
//
// Contract:
//
//   - Mutators never panic and never return errors: AddEdge, UpdateWall and
//     RemoveEdge report success as a bool and leave the graph untouched on
//     failure. Weight returns 0 for "absent or wall"; callers rely on it.
//   - Vertices(), Edges(), Neighbours() are returned in row-major order so
//     every algorithm built on top is reproducible.
//   - All methods are safe for concurrent use (one sync.RWMutex).
//
// Complexity:
//
//   - AddVertex, AddEdge, UpdateWall, Weight: O(1) amortized.
//   - Neighbours: O(1) (at most four candidates).
//   - Vertices: O(V log V), Edges: O(E log E).
//   - ConnectedComponents: O(V + E).
package gridgraph
