// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/clonemaze/gridgraph"

// validateMin ensures that got ≥ min.
// Complexity: O(1).
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validatePercentage enforces perc ∈ [MinPercentage, MaxPercentage].
func validatePercentage(method string, perc int) error {
	if perc < MinPercentage || perc > MaxPercentage {
		return builderErrorf(method, ErrInvalidPercentage,
			"must be in [%d,%d], got %d", MinPercentage, MaxPercentage, perc)
	}

	return nil
}

// validateWeight rejects non-positive passage weights.
func validateWeight(method string, w int64) error {
	if w < 1 {
		return builderErrorf(method, ErrInvalidWeight, "got %d", w)
	}

	return nil
}

// validateCell rejects cells outside g's grid.
func validateCell(method string, g *gridgraph.Graph, c gridgraph.Coord) error {
	if !g.InBounds(c) {
		return builderErrorf(method, ErrOutOfBounds, "%v not in %dx%d", c, g.Rows(), g.Cols())
	}

	return nil
}

// openPassage adds c and d as rooms and opens the passage between them.
// A stored wall is replaced; an open passage is ErrConstructFailed.
func openPassage(method string, g *gridgraph.Graph, c, d gridgraph.Coord, w int64) error {
	if err := validateCell(method, g, c); err != nil {
		return err
	}
	if err := validateCell(method, g, d); err != nil {
		return err
	}
	if !c.Adjacent(d) {
		return builderErrorf(method, ErrNotAdjacent, "%v and %v", c, d)
	}
	if err := validateWeight(method, w); err != nil {
		return err
	}
	g.AddVertices(c, d)
	if !g.AddEdge(c, d, w) {
		return builderErrorf(method, ErrConstructFailed, "passage %v-%v already open", c, d)
	}

	return nil
}
