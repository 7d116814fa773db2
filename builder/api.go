// SPDX-License-Identifier: MIT
// Package: clonemaze/builder
//
// api.go — public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildMaze(rows, cols, bopts, cons...). Creates g,
//     resolves cfg, runs cons in order.
//   - Constructors are implemented in impl_*.go.
//   - Functional options resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical mazes.
//   - Safety: never panic; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/clonemaze/gridgraph"
)

// Constructor applies a deterministic maze mutation using the resolved
// builderConfig. Constructors validate early and return sentinel errors.
type Constructor func(g *gridgraph.Graph, cfg builderConfig) error

// BuildMaze creates a rows×cols *gridgraph.Graph, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildMaze: %w" and returned
// immediately; no partial cleanup is attempted.
//
// A typical generated maze is
//
//	BuildMaze(r, c, []BuilderOption{WithSeed(s), WithMaxWeight(9)},
//		Rooms(), CarveDFS(), RemoveWalls(10))
//
// Complexity: Σ cost of each constructor.
func BuildMaze(rows, cols int, bopts []BuilderOption, cons ...Constructor) (*gridgraph.Graph, error) {
	g, err := gridgraph.NewGraphChecked(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("BuildMaze: %w", err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMaze: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildMaze: %w", err)
		}
	}

	return g, nil
}

// Generate builds the standard maze: all rooms, a perfect maze carved by
// randomized DFS from the top-left room, then wallRemovalPerc percent of the
// remaining interior walls opened to introduce cycles. Weights are uniform
// in [1, maxWeight].
func Generate(rows, cols, wallRemovalPerc int, maxWeight, seed int64) (*gridgraph.Graph, error) {
	return BuildMaze(rows, cols,
		[]BuilderOption{WithSeed(seed), WithMaxWeight(maxWeight)},
		Rooms(), CarveDFS(), RemoveWalls(wallRemovalPerc))
}
