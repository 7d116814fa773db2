// SPDX-License-Identifier: MIT

package gridgraph

// ConnectedComponents partitions the vertices into maximal sets joined by
// traversable edges. Each component is sorted row-major and components are
// ordered by their first vertex, so the result is deterministic.
//
// Time:   O(V log V + E).
// Memory: O(V) for the seen set and output.
func (g *Graph) ConnectedComponents() [][]Coord {
	seen := make(map[Coord]bool, g.VertexCount())
	var comps [][]Coord

	for _, c := range g.Vertices() {
		if seen[c] {
			continue
		}
		comp := g.bfs(c, seen)
		sortCoords(comp)
		comps = append(comps, comp)
	}

	return comps
}

// Component returns the component containing c, sorted row-major, or nil if c
// is not a vertex.
func (g *Graph) Component(c Coord) []Coord {
	if !g.HasVertex(c) {
		return nil
	}
	comp := g.bfs(c, make(map[Coord]bool))
	sortCoords(comp)

	return comp
}

// bfs collects every vertex reachable from start, marking them in seen.
func (g *Graph) bfs(start Coord, seen map[Coord]bool) []Coord {
	queue := []Coord{start}
	seen[start] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbours(queue[qi]) {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}

	return queue
}
