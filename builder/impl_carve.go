// SPDX-License-Identifier: MIT
// Package: clonemaze/builder
//
// impl_carve.go — CarveDFS() and RemoveWalls(perc) constructors.

package builder

import (
	"github.com/katalvlaran/clonemaze/gridgraph"
)

// CarveDFS returns a Constructor that turns a walled grid into a perfect maze
// (one component, no cycles) by randomized depth-first carving.
//
// Steps:
//  1. Start from the first room in row-major order.
//  2. Look at in-bounds, unvisited rooms adjacent to the stack top that are
//     still behind a wall (up, left, right, down).
//  3. If there are any, pick one at random, open the wall with a weight from
//     cfg.weightFn and push it; otherwise pop.
//
// Requires cfg.rng. An empty maze is left untouched.
// Complexity: O(rows*cols) time and memory.
func CarveDFS() Constructor {
	return func(g *gridgraph.Graph, cfg builderConfig) error {
		rooms := g.Vertices()
		if len(rooms) == 0 {
			return nil
		}
		if cfg.rng == nil {
			return builderErrorf(MethodCarveDFS, ErrNeedRandSource, "set WithSeed or WithRand")
		}

		start := rooms[0]
		visited := map[gridgraph.Coord]bool{start: true}
		stack := []gridgraph.Coord{start}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]

			var candidates []gridgraph.Coord
			for _, nb := range adjacentCells(g, cur) {
				if !visited[nb] && g.WallStatus(cur, nb) {
					candidates = append(candidates, nb)
				}
			}
			if len(candidates) == 0 {
				stack = stack[:len(stack)-1]
				continue
			}

			next := candidates[cfg.rng.Intn(len(candidates))]
			w, err := cfg.weight(MethodCarveDFS)
			if err != nil {
				return err
			}
			g.UpdateWall(cur, next, false, w)
			visited[next] = true
			stack = append(stack, next)
		}

		return nil
	}
}

// RemoveWalls returns a Constructor that opens perc percent (rounded down) of
// the remaining interior walls, chosen uniformly at random, each with a
// weight from cfg.weightFn. 0 is a no-op; 100 removes every wall.
//
// Requires cfg.rng whenever at least one wall is to be removed.
// Complexity: O(rows*cols) time and memory.
func RemoveWalls(perc int) Constructor {
	return func(g *gridgraph.Graph, cfg builderConfig) error {
		if err := validatePercentage(MethodRemoveWalls, perc); err != nil {
			return err
		}

		walls := interiorWalls(g)
		n := perc * len(walls) / MaxPercentage
		if n == 0 {
			return nil
		}
		if cfg.rng == nil {
			return builderErrorf(MethodRemoveWalls, ErrNeedRandSource, "set WithSeed or WithRand")
		}

		cfg.rng.Shuffle(len(walls), func(i, j int) { walls[i], walls[j] = walls[j], walls[i] })
		for _, wall := range walls[:n] {
			w, err := cfg.weight(MethodRemoveWalls)
			if err != nil {
				return err
			}
			g.UpdateWall(wall[0], wall[1], false, w)
		}

		return nil
	}
}

// adjacentCells lists the in-bounds rooms next to c, up, left, right, down.
func adjacentCells(g *gridgraph.Graph, c gridgraph.Coord) []gridgraph.Coord {
	out := make([]gridgraph.Coord, 0, 4)
	for _, nb := range []gridgraph.Coord{
		gridgraph.C(c.Row-1, c.Col),
		gridgraph.C(c.Row, c.Col-1),
		gridgraph.C(c.Row, c.Col+1),
		gridgraph.C(c.Row+1, c.Col),
	} {
		if g.InBounds(nb) && g.HasVertex(nb) {
			out = append(out, nb)
		}
	}

	return out
}

// interiorWalls lists every wall between two rooms once, row-major, as
// (cell, right or bottom neighbour).
func interiorWalls(g *gridgraph.Graph) [][2]gridgraph.Coord {
	var walls [][2]gridgraph.Coord
	for _, u := range g.Vertices() {
		for _, v := range []gridgraph.Coord{gridgraph.C(u.Row, u.Col+1), gridgraph.C(u.Row+1, u.Col)} {
			if g.WallStatus(u, v) {
				walls = append(walls, [2]gridgraph.Coord{u, v})
			}
		}
	}

	return walls
}
