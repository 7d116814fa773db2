// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/clonemaze/gridgraph"
)

// Dijkstra computes shortest distances from source to every vertex of g over
// traversable passages. Walls are never crossed.
//
// Returns:
//
//   - dist: vertex → minimum distance (Unreachable if not reached).
//   - prev: predecessor map if WithReturnPath was given, nil otherwise.
//     prev[v] == u means the shortest path to v goes through u. Ties are
//     broken towards the predecessor popped first.
//   - err:  ErrNilGraph or ErrVertexNotFound.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (lazy decrease-key keeps stale heap entries).
func Dijkstra(g *gridgraph.Graph, source gridgraph.Coord, opts ...Option) (map[gridgraph.Coord]int64, map[gridgraph.Coord]gridgraph.Coord, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[gridgraph.Coord]int64, len(vertices)),
		visited: make(map[gridgraph.Coord]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[gridgraph.Coord]gridgraph.Coord, len(vertices))
	}

	r.init(vertices, source)
	r.process()

	return r.dist, r.prev, nil
}

// Farthest returns the reachable vertex with the largest distance and that
// distance. Ties go to the first vertex in row-major order. ok is false when
// dist holds no reachable vertex.
func Farthest(dist map[gridgraph.Coord]int64) (far gridgraph.Coord, d int64, ok bool) {
	for v, dv := range dist {
		if dv == Unreachable {
			continue
		}
		if !ok || dv > d || (dv == d && v.Less(far)) {
			far, d, ok = v, dv, true
		}
	}

	return far, d, ok
}

// Eccentricity is the distance from source to the farthest vertex reachable
// from it. On a tree this is the cost of the slowest leaf for an unbounded
// number of free clones, so no exploration plan can finish faster.
func Eccentricity(g *gridgraph.Graph, source gridgraph.Coord) (int64, error) {
	dist, _, err := Dijkstra(g, source)
	if err != nil {
		return 0, err
	}
	_, d, _ := Farthest(dist)

	return d, nil
}

// PathTo rebuilds the shortest path to target from a predecessor map, source
// first. Returns nil if target was not reached.
func PathTo(prev map[gridgraph.Coord]gridgraph.Coord, source, target gridgraph.Coord) []gridgraph.Coord {
	path := []gridgraph.Coord{target}
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok {
			return nil
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *gridgraph.Graph
	options Options
	dist    map[gridgraph.Coord]int64
	prev    map[gridgraph.Coord]gridgraph.Coord
	visited map[gridgraph.Coord]bool
	pq      nodePQ
}

// init sets every distance to Unreachable and pushes source at 0.
func (r *runner) init(vertices []gridgraph.Coord, source gridgraph.Coord) {
	for _, v := range vertices {
		r.dist[v] = Unreachable
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process pops the closest unvisited vertex until the heap is empty.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax improves the distances of u's neighbours through u.
func (r *runner) relax(u gridgraph.Coord) {
	for _, v := range r.g.Neighbours(u) {
		newDist := r.dist[u] + r.g.Weight(u, v)
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem is a vertex and its tentative distance from the source.
type nodeItem struct {
	id   gridgraph.Coord
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then row-major id so
// equal distances pop deterministically.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id.Less(pq[j].id)
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
