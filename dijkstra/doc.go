// SPDX-License-Identifier: MIT

// Package dijkstra computes single-source shortest distances over the
// traversable passages of a maze.
//
// Overview:
//
//   - Dijkstra(g, source, opts...) returns the distance to every vertex and,
//     with WithReturnPath, a predecessor map for PathTo.
//   - Farthest and Eccentricity find the vertex farthest from the source.
//     On a spanning tree the eccentricity of the entrance is the lower bound
//     reported next to every exploration plan, together with the PathTo
//     route to that farthest room.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) under the lazy decrease-key strategy.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrVertexNotFound from Dijkstra.
package dijkstra
