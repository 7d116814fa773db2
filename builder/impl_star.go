// SPDX-License-Identifier: MIT
// Package: clonemaze/builder
//
// impl_star.go — Star(center, leaves...) fixture constructor.
//
// Contract:
//   • At least MinStarLeaves leaves; a grid cell has at most four neighbours.
//   • Each leaf must be adjacent to center and inside the grid.
//   • Leaves are opened in argument order with weights from cfg.weightFn.
//
// Complexity: O(len(leaves)).

package builder

import "github.com/katalvlaran/clonemaze/gridgraph"

// Star returns a Constructor that opens a passage from center to each leaf.
func Star(center gridgraph.Coord, leaves ...gridgraph.Coord) Constructor {
	return func(g *gridgraph.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, len(leaves), MinStarLeaves); err != nil {
			return err
		}
		for _, leaf := range leaves {
			w, err := cfg.weight(MethodStar)
			if err != nil {
				return err
			}
			if err := openPassage(MethodStar, g, center, leaf, w); err != nil {
				return err
			}
		}

		return nil
	}
}
