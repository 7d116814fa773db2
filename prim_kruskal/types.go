// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/clonemaze/gridgraph"
)

// ErrNilGraph is returned when a nil graph is passed to any builder.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrVertexNotFound indicates that the Prim root is not a vertex of the graph.
var ErrVertexNotFound = errors.New("prim_kruskal: root vertex not found")

// ErrDisconnected indicates that Prim could not reach every vertex from its root.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod is returned by Compute and ParseMethod for an unsupported method name.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// ErrNotSpanning indicates that a candidate tree is not a spanning forest of its source graph.
var ErrNotSpanning = errors.New("prim_kruskal: not a spanning forest")

// ErrCycleProperty indicates that a non-tree edge is lighter than the tree path it closes.
var ErrCycleProperty = errors.New("prim_kruskal: cycle property violated")

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MSTOptions configures which MST algorithm to run, and for Prim, which root to use.
// Use DefaultOptions() to get a default setup (Kruskal).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim. Used only when HasRoot is set;
	// otherwise Prim runs as PrimForest.
	Root    gridgraph.Coord
	HasRoot bool
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting vertex for Prim. Ignored by Kruskal.
func WithRoot(root gridgraph.Coord) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
		opts.HasRoot = true
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal with no root.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// ParseMethod normalizes a method name from configuration.
func ParseMethod(s string) (string, error) {
	switch s {
	case MethodKruskal, "":
		return MethodKruskal, nil
	case MethodPrim:
		return MethodPrim, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Compute selects and runs the MST algorithm described by opts.
//
//   - MethodKruskal: Kruskal(g).
//   - MethodPrim with a root: Prim(g, root).
//   - MethodPrim without a root: PrimForest(g).
//   - anything else: ErrUnknownMethod.
func Compute(g *gridgraph.Graph, opts ...Option) (*gridgraph.Graph, int64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		if o.HasRoot {
			return Prim(g, o.Root)
		}

		return PrimForest(g)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}
