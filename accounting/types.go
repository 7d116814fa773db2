// SPDX-License-Identifier: MIT

package accounting

import (
	"errors"

	"github.com/katalvlaran/clonemaze/gridgraph"
)

var (
	// ErrOrphanClone indicates a clone whose first vertex is on no earlier path.
	ErrOrphanClone = errors.New("accounting: clone has no spawner")

	// ErrEmptyClonePath indicates a clone (index ≥ 1) with an empty path.
	ErrEmptyClonePath = errors.New("accounting: clone path is empty")

	// ErrNegativeForkCost is returned for forkCost < 0.
	ErrNegativeForkCost = errors.New("accounting: fork cost must be non-negative")
)

// Weigher reports the movement cost between two adjacent vertices.
// *gridgraph.Graph satisfies it.
type Weigher interface {
	Weight(u, v gridgraph.Coord) int64
}

// SpawnEvent records that Clone was forked by Spawner while Spawner stood at
// Spawner's path position Index.
type SpawnEvent struct {
	Clone   int
	Spawner int
	Index   int
}
