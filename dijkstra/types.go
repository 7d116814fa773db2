// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *gridgraph.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")
)

// Unreachable is the distance reported for vertices not reached from the source.
const Unreachable = math.MaxInt64

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath – if true, return the predecessor map; otherwise prev map is nil.
type Options struct {
	ReturnPath bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// DefaultOptions returns Options without predecessor map.
func DefaultOptions() Options {
	return Options{ReturnPath: false}
}
