// SPDX-License-Identifier: MIT
// Package: clonemaze/builder
//
// impl_path.go — Path(cells...) and Passages(edges...) fixture constructors.
//
// Contract:
//   • Path needs at least MinPathCells cells, each adjacent to the previous
//     one; weights come from cfg.weightFn.
//   • Passages opens explicit weighted passages; weights must be ≥ 1.
//   • Cells must lie inside the grid and a passage may be opened only once.
//
// Complexity: O(len(cells)) / O(len(edges)).

package builder

import "github.com/katalvlaran/clonemaze/gridgraph"

// Path returns a Constructor that opens a corridor through cells in order.
func Path(cells ...gridgraph.Coord) Constructor {
	return func(g *gridgraph.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, len(cells), MinPathCells); err != nil {
			return err
		}
		for i := 1; i < len(cells); i++ {
			w, err := cfg.weight(MethodPath)
			if err != nil {
				return err
			}
			if err := openPassage(MethodPath, g, cells[i-1], cells[i], w); err != nil {
				return err
			}
		}

		return nil
	}
}

// Passages returns a Constructor that opens each edge with its own weight,
// adding its endpoints as rooms. It is the shortest way to write a fixture
// with exact weights.
func Passages(edges ...gridgraph.Edge) Constructor {
	return func(g *gridgraph.Graph, _ builderConfig) error {
		for _, e := range edges {
			if err := openPassage(MethodPassages, g, e.From, e.To, e.Weight); err != nil {
				return err
			}
		}

		return nil
	}
}
