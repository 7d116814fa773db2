// SPDX-License-Identifier: MIT
// Package: clonemaze/builder
//
// impl_grid.go — Rooms() and OpenGrid() constructors.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Rooms adds every cell in row-major order; every pair of neighbours is
//     separated by a wall (weight 0).
//   • OpenGrid additionally opens every passage, emitting Right then Bottom
//     per cell, with weights from cfg.weightFn.
//
// Complexity: O(rows*cols) time, O(1) extra space.

package builder

import "github.com/katalvlaran/clonemaze/gridgraph"

// Rooms returns a Constructor that adds every cell of the grid as a room.
func Rooms() Constructor {
	return func(g *gridgraph.Graph, _ builderConfig) error {
		if err := validateMin(MethodRooms, min(g.Rows(), g.Cols()), MinGridDim); err != nil {
			return err
		}
		for r := 0; r < g.Rows(); r++ {
			for c := 0; c < g.Cols(); c++ {
				g.AddVertex(gridgraph.C(r, c))
			}
		}

		return nil
	}
}

// OpenGrid returns a Constructor that builds a rows×cols grid with no walls.
func OpenGrid() Constructor {
	return func(g *gridgraph.Graph, cfg builderConfig) error {
		if err := Rooms()(g, cfg); err != nil {
			return err
		}
		for r := 0; r < g.Rows(); r++ {
			for c := 0; c < g.Cols(); c++ {
				u := gridgraph.C(r, c)
				for _, v := range []gridgraph.Coord{gridgraph.C(r, c+1), gridgraph.C(r+1, c)} {
					if !g.InBounds(v) || g.HasEdge(u, v) {
						continue
					}
					w, err := cfg.weight(MethodOpenGrid)
					if err != nil {
						return err
					}
					g.UpdateWall(u, v, false, w)
				}
			}
		}

		return nil
	}
}
