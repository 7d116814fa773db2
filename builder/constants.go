// SPDX-License-Identifier: MIT

package builder

// Constructor names, used to prefix errors.
const (
	MethodRooms       = "Rooms"
	MethodOpenGrid    = "OpenGrid"
	MethodCarveDFS    = "CarveDFS"
	MethodRemoveWalls = "RemoveWalls"
	MethodPath        = "Path"
	MethodStar        = "Star"
	MethodPassages    = "Passages"
)

// MinGridDim is the smallest allowed dimension (rows or cols) of a maze.
// A 1×1 maze has no passages but is valid.
const MinGridDim = 1

// MinPathCells is the smallest meaningful corridor: two cells, one passage.
const MinPathCells = 2

// MinStarLeaves is the smallest meaningful star: a center and one leaf.
const MinStarLeaves = 1

// DefaultEdgeWeight is the passage weight used when no WeightFn is configured.
const DefaultEdgeWeight int64 = 1

// MinPercentage and MaxPercentage bound RemoveWalls.
const (
	MinPercentage = 0
	MaxPercentage = 100
)
