// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/clonemaze/gridgraph"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *gridgraph.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g from start. With WithFullTraversal it
// covers every component and start is ignored.
// Neighbours are expanded in gridgraph order (up, left, right, down).
// Returns the partial result together with the error when a hook or the
// context aborts traversal.
func DFS(g *gridgraph.Graph, start gridgraph.Coord, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify start
	if !dopts.FullTraversal && !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	// 4. Initialize result
	res := &DFSResult{
		Depth:   make(map[gridgraph.Coord]int),
		Parent:  make(map[gridgraph.Coord]gridgraph.Coord),
		Visited: make(map[gridgraph.Coord]bool),
	}
	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	roots := []gridgraph.Coord{start}
	if dopts.FullTraversal {
		roots = g.Vertices()
	}
	for _, v := range roots {
		if res.Visited[v] {
			continue
		}
		if err := walker.traverse(v, 0); err != nil {
			res.SkippedNeighbors = walker.opts.SkippedNeighbors
			return res, err
		}
	}

	// 6. Expose diagnostics
	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// traverse visits c at the given depth, recursing into unvisited neighbours.
func (w *dfsWalker) traverse(c gridgraph.Coord, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited and record depth
	w.res.Visited[c] = true
	w.res.Depth[c] = depth

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(c); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", c, err)
		}
	}

	// 4. Explore each neighbour
	for _, n := range w.graph.Neighbours(c) {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(n) {
			w.opts.SkippedNeighbors++
			continue
		}
		if w.res.Visited[n] {
			continue
		}
		w.res.Parent[n] = c
		if err := w.traverse(n, depth+1); err != nil {
			return err
		}
	}

	// 5. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(c); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %v: %w", c, err)
		}
	}

	// 6. Record finish order
	w.res.Order = append(w.res.Order, c)

	return nil
}
