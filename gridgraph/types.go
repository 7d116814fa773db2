// SPDX-License-Identifier: MIT

// Package gridgraph defines the coordinate, edge and graph types.
package gridgraph

import (
	"fmt"
	"sync"
)

// Coord identifies a maze cell by row and column.
type Coord struct {
	Row, Col int
}

// C is a short constructor used heavily by fixtures and tests.
func C(row, col int) Coord { return Coord{Row: row, Col: col} }

// Adjacent reports whether c and o differ by exactly 1 in exactly one coordinate.
// Complexity: O(1).
func (c Coord) Adjacent(o Coord) bool {
	dr, dc := abs(c.Row-o.Row), abs(c.Col-o.Col)

	return (dr == 1 && dc == 0) || (dr == 0 && dc == 1)
}

// Less orders coordinates row-major: by Row, then by Col.
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}

	return c.Col < o.Col
}

// String renders the coordinate as "(r, c)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// offsets lists the four orthogonal moves in row-major neighbour order:
// up, left, right, down.
var offsets = [4][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}

// Edge is one undirected traversable edge. From.Less(To) always holds for
// edges produced by Graph.Edges.
type Edge struct {
	From, To Coord
	Weight   int64
}

// Graph is a grid-backed weighted undirected graph.
//
// rows/cols describe the bounding grid the maze was generated for; they are
// metadata only, vertices outside the box are still accepted.
// weights[u][v] exists only for adjacent u, v that were touched by AddEdge or
// UpdateWall; a stored 0 is an explicit wall.
type Graph struct {
	mu sync.RWMutex // guards everything below

	rows, cols int

	vertices map[Coord]struct{}
	weights  map[Coord]map[Coord]int64
	edges    int // number of pairs with weight > 0
}

// NewGraph creates an empty graph for a rows×cols maze.
// Negative dimensions are clamped to zero; use NewGraphChecked to reject them.
// Complexity: O(1).
func NewGraph(rows, cols int) *Graph {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	return &Graph{
		rows:     rows,
		cols:     cols,
		vertices: make(map[Coord]struct{}),
		weights:  make(map[Coord]map[Coord]int64),
	}
}

// NewGraphChecked is NewGraph that returns ErrBadDimensions instead of clamping.
func NewGraphChecked(rows, cols int) (*Graph, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewGraphChecked(%d, %d): %w", rows, cols, ErrBadDimensions)
	}

	return NewGraph(rows, cols), nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
