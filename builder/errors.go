// SPDX-License-Identifier: MIT
// Package: clonemaze/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w via builderErrorf.
//   • Constructors never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a size parameter (rows, cols, path length,
// leaf count) below the allowed minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidPercentage indicates a wall-removal percentage outside [0, 100].
var ErrInvalidPercentage = errors.New("builder: percentage out of range")

// ErrInvalidWeight indicates a passage weight below 1, either passed
// explicitly or produced by the configured WeightFn.
var ErrInvalidWeight = errors.New("builder: passage weight must be positive")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOutOfBounds indicates a cell outside the maze's rows×cols grid.
var ErrOutOfBounds = errors.New("builder: cell out of bounds")

// ErrNotAdjacent indicates a passage between cells that are not grid neighbours.
var ErrNotAdjacent = errors.New("builder: cells are not adjacent")

// ErrConstructFailed indicates a passage that could not be opened (already
// open) or a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes err with the constructor name and a formatted
// detail, keeping err reachable through errors.Is.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
