// SPDX-License-Identifier: MIT

package gridgraph

import "sort"

// Rows returns the row count of the bounding grid.
func (g *Graph) Rows() int { return g.rows }

// Cols returns the column count of the bounding grid.
func (g *Graph) Cols() int { return g.cols }

// InBounds reports whether c lies within the bounding grid.
// Complexity: O(1).
func (g *Graph) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// AddVertex inserts c. Returns false if c was already present (no-op).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(c Coord) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[c]; ok {
		return false
	}
	g.vertices[c] = struct{}{}

	return true
}

// AddVertices inserts every coordinate and returns how many were new.
func (g *Graph) AddVertices(cs ...Coord) int {
	added := 0
	for _, c := range cs {
		if g.AddVertex(c) {
			added++
		}
	}

	return added
}

// HasVertex reports whether c is a vertex of g.
// Complexity: O(1).
func (g *Graph) HasVertex(c Coord) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[c]

	return ok
}

// AddEdge creates a traversable edge u—v with weight w.
//
// Steps:
//  1. Reject w ≤ 0, missing endpoints and non-adjacent pairs.
//  2. Reject an existing traversable edge (no multi-edges). A wall (stored 0)
//     is not an edge and may be replaced.
//  3. Store the weight symmetrically.
//
// Returns false without side effects on any rejection.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v Coord, w int64) bool {
	if w <= 0 || !u.Adjacent(v) {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasBothLocked(u, v) {
		return false
	}
	if g.weights[u][v] > 0 {
		return false
	}
	g.setLocked(u, v, w)

	return true
}

// UpdateWall sets the weight between adjacent u and v to 0 when hasWall is
// true, otherwise to w. Fails if either vertex is absent, the pair is not
// adjacent, or w is negative.
// Complexity: O(1) amortized.
func (g *Graph) UpdateWall(u, v Coord, hasWall bool, w int64) bool {
	if !u.Adjacent(v) {
		return false
	}
	if hasWall {
		w = 0
	}
	if w < 0 {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasBothLocked(u, v) {
		return false
	}
	g.setLocked(u, v, w)

	return true
}

// RemoveEdge turns a traversable edge back into a wall.
// Returns false if there was no traversable edge between u and v.
func (g *Graph) RemoveEdge(u, v Coord) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.weights[u][v] <= 0 {
		return false
	}
	g.setLocked(u, v, 0)

	return true
}

// HasEdge reports whether a traversable (weight > 0) edge joins u and v.
func (g *Graph) HasEdge(u, v Coord) bool {
	return g.Weight(u, v) > 0
}

// WallStatus reports whether a wall separates u and v: both exist, they are
// adjacent, and their weight is 0.
func (g *Graph) WallStatus(u, v Coord) bool {
	if !u.Adjacent(v) {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasBothLocked(u, v) && g.weights[u][v] == 0
}

// Weight returns the edge weight between u and v, or 0 when there is no
// traversable edge (absent vertex, non-adjacent pair or wall).
// Complexity: O(1).
func (g *Graph) Weight(u, v Coord) int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weights[u][v]
}

// Neighbours returns the vertices reachable from c over one positive-weight
// edge, in row-major order (up, left, right, down).
// Complexity: O(1).
func (g *Graph) Neighbours(c Coord) []Coord {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj := g.weights[c]
	if len(adj) == 0 {
		return nil
	}
	out := make([]Coord, 0, len(offsets))
	for _, d := range offsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if adj[n] > 0 {
			out = append(out, n)
		}
	}

	return out
}

// Degree returns the number of traversable edges incident to c.
func (g *Graph) Degree(c Coord) int {
	return len(g.Neighbours(c))
}

// Vertices returns all vertices in row-major order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []Coord {
	g.mu.RLock()
	out := make([]Coord, 0, len(g.vertices))
	for c := range g.vertices {
		out = append(out, c)
	}
	g.mu.RUnlock()
	sortCoords(out)

	return out
}

// Edges returns every traversable edge once, with From.Less(To), ordered by
// (From, To) row-major.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edges)
	for u, adj := range g.weights {
		for v, w := range adj {
			if w > 0 && u.Less(v) {
				out = append(out, Edge{From: u, To: v, Weight: w})
			}
		}
	}
	g.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From.Less(out[j].From)
		}

		return out[i].To.Less(out[j].To)
	})

	return out
}

// VertexCount returns |V|. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of traversable edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// TotalWeight sums the weights of all traversable edges.
func (g *Graph) TotalWeight() int64 {
	var total int64
	for _, e := range g.Edges() {
		total += e.Weight
	}

	return total
}

// CloneEmpty returns a graph with the same dimensions and vertices but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(g.rows, g.cols)
	for c := range g.vertices {
		clone.vertices[c] = struct{}{}
	}

	return clone
}

// Clone returns a deep copy, walls included.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.mu.RLock()
	defer g.mu.RUnlock()

	for u, adj := range g.weights {
		inner := make(map[Coord]int64, len(adj))
		for v, w := range adj {
			inner[v] = w
		}
		clone.weights[u] = inner
	}
	clone.edges = g.edges

	return clone
}

// hasBothLocked requires g.mu held.
func (g *Graph) hasBothLocked(u, v Coord) bool {
	_, okU := g.vertices[u]
	_, okV := g.vertices[v]

	return okU && okV
}

// setLocked writes w on both directions and keeps the edge counter in sync.
// Requires g.mu held for writing.
func (g *Graph) setLocked(u, v Coord, w int64) {
	before := g.weights[u][v]
	if g.weights[u] == nil {
		g.weights[u] = make(map[Coord]int64, len(offsets))
	}
	if g.weights[v] == nil {
		g.weights[v] = make(map[Coord]int64, len(offsets))
	}
	g.weights[u][v] = w
	g.weights[v][u] = w

	switch {
	case before <= 0 && w > 0:
		g.edges++
	case before > 0 && w <= 0:
		g.edges--
	}
}

// sortCoords sorts cs in place, row-major.
func sortCoords(cs []Coord) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].Less(cs[j]) })
}

// SortCoords sorts cs in place, row-major. Exposed for callers that build
// vertex sets from maps and need the same deterministic order as Vertices.
func SortCoords(cs []Coord) { sortCoords(cs) }
