// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/clonemaze/gridgraph"
)

// Prim computes the minimum spanning tree of g by growing outwards from root.
//
// Error Conditions:
//   - ErrNilGraph       : g is nil.
//   - ErrVertexNotFound : root is not a vertex of a non-empty g.
//   - ErrDisconnected   : some vertex is unreachable from root.
//
// Steps:
//  1. Validate; an empty graph yields an empty tree.
//  2. Mark root visited and push its incident edges.
//  3. Pop the lightest frontier edge (ties: earliest pushed). Skip it if its
//     far end is already in the tree, otherwise add it and push the far end's
//     edges to unvisited neighbours.
//  4. If fewer than |V|-1 edges were placed, the graph is disconnected.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *gridgraph.Graph, root gridgraph.Coord) (*gridgraph.Graph, int64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	tree := g.CloneEmpty()
	n := g.VertexCount()
	if n == 0 {
		return tree, 0, nil
	}
	if !g.HasVertex(root) {
		return nil, 0, fmt.Errorf("%w: %v", ErrVertexNotFound, root)
	}

	placed, total := grow(g, tree, root)
	if placed < n-1 {
		return nil, 0, fmt.Errorf("%w: reached %d of %d vertices from %v",
			ErrDisconnected, placed+1, n, root)
	}

	return tree, total, nil
}

// PrimForest runs Prim once per connected component, each rooted at the
// component's first row-major vertex, and merges the results into one forest.
// Unlike Prim it never reports ErrDisconnected.
func PrimForest(g *gridgraph.Graph) (*gridgraph.Graph, int64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	tree := g.CloneEmpty()
	var total int64
	for _, comp := range g.ConnectedComponents() {
		_, w := grow(g, tree, comp[0])
		total += w
	}

	return tree, total, nil
}

// grow adds to tree the minimum spanning tree of root's component in g and
// returns how many edges it placed and their total weight.
func grow(g, tree *gridgraph.Graph, root gridgraph.Coord) (int, int64) {
	visited := map[gridgraph.Coord]bool{root: true}
	pq := &edgePQ{}
	heap.Init(pq)

	var seq int
	push := func(u gridgraph.Coord) {
		for _, v := range g.Neighbours(u) {
			if !visited[v] {
				heap.Push(pq, &frontierEdge{from: u, to: v, weight: g.Weight(u, v), seq: seq})
				seq++
			}
		}
	}
	push(root)

	var (
		placed int
		total  int64
	)
	for pq.Len() > 0 {
		e := heap.Pop(pq).(*frontierEdge)
		if visited[e.to] {
			continue
		}
		visited[e.to] = true
		tree.AddEdge(e.from, e.to, e.weight)
		total += e.weight
		placed++
		push(e.to)
	}

	return placed, total
}

// frontierEdge is a candidate edge from the tree to an outside vertex.
type frontierEdge struct {
	from, to gridgraph.Coord
	weight   int64
	seq      int // insertion order, breaks weight ties
}

// edgePQ implements heap.Interface as a min-heap ordered by (weight, seq).
type edgePQ []*frontierEdge

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}

	return pq[i].seq < pq[j].seq
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new *frontierEdge. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(*frontierEdge)) }

// Pop removes the last element. Called by heap.Pop after it has moved the
// minimum there.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return e
}
