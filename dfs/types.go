// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/clonemaze/gridgraph"
)

// Visitation states used by cycle detection.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *gridgraph.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start coordinate is not a
	// vertex of the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(c gridgraph.Coord) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex have
	// been explored (post-order), before it is appended to Order.
	OnExit func(c gridgraph.Coord) error

	// FilterNeighbor, if non-nil, decides whether to step into a neighbour.
	FilterNeighbor func(c gridgraph.Coord) bool

	// FullTraversal restarts from every unvisited vertex (forest traversal).
	FullTraversal bool

	// SkippedNeighbors counts neighbours rejected by FilterNeighbor.
	SkippedNeighbors int
}

// DefaultOptions returns background context, no hooks, no filter and
// single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{Ctx: context.Background()}
}

// WithContext sets the Context for DFS traversal. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(c gridgraph.Coord) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(c gridgraph.Coord) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithFilterNeighbor skips neighbours for which fn returns false.
func WithFilterNeighbor(fn func(c gridgraph.Coord) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal enables forest traversal over every component.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []gridgraph.Coord

	// Depth maps each vertex to its distance (#edges) from its tree root.
	Depth map[gridgraph.Coord]int

	// Parent maps each vertex to the vertex it was discovered from.
	// Roots do not appear.
	Parent map[gridgraph.Coord]gridgraph.Coord

	// Visited flags which vertices were reached.
	Visited map[gridgraph.Coord]bool

	// SkippedNeighbors reports how many neighbours FilterNeighbor rejected.
	SkippedNeighbors int
}
