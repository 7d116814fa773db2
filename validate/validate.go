// SPDX-License-Identifier: MIT

package validate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/clonemaze/accounting"
	"github.com/katalvlaran/clonemaze/gridgraph"
)

var (
	// ErrCoverage indicates vertices missing from, or foreign to, the paths.
	ErrCoverage = errors.New("validate: coverage")

	// ErrCloneOrigin indicates a clone path that does not start on an earlier path.
	ErrCloneOrigin = errors.New("validate: clone origin")

	// ErrConnectivity indicates a step that is not a traversable edge.
	ErrConnectivity = errors.New("validate: connectivity")

	// ErrOwnership indicates a vertex without exactly one walking owner.
	ErrOwnership = errors.New("validate: ownership")

	// ErrCostMismatch indicates a reported cost that does not match the paths.
	ErrCostMismatch = errors.New("validate: cost mismatch")
)

// maxListed caps how many offending vertices an error message names.
const maxListed = 5

// Coverage checks that the union of paths equals the vertex set of g.
func Coverage(g *gridgraph.Graph, paths [][]gridgraph.Coord) error {
	seen := make(map[gridgraph.Coord]bool, g.VertexCount())
	var foreign []gridgraph.Coord
	for _, p := range paths {
		for _, c := range p {
			if !g.HasVertex(c) {
				foreign = append(foreign, c)
				continue
			}
			seen[c] = true
		}
	}
	if len(foreign) > 0 {
		return fmt.Errorf("%w: %d path vertices not in graph, e.g. %v",
			ErrCoverage, len(foreign), head(foreign))
	}

	var missing []gridgraph.Coord
	for _, v := range g.Vertices() {
		if !seen[v] {
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %d vertices never visited, e.g. %v",
			ErrCoverage, len(missing), head(missing))
	}

	return nil
}

// CloneOrigins checks that every path after the first is non-empty and starts
// on a vertex of some earlier path.
func CloneOrigins(paths [][]gridgraph.Coord) error {
	seen := make(map[gridgraph.Coord]bool)
	for i, p := range paths {
		if i > 0 {
			if len(p) == 0 {
				return fmt.Errorf("%w: agent %d has an empty path", ErrCloneOrigin, i)
			}
			if !seen[p[0]] {
				return fmt.Errorf("%w: agent %d starts at %v, not on an earlier path", ErrCloneOrigin, i, p[0])
			}
		}
		for _, c := range p {
			seen[c] = true
		}
	}

	return nil
}

// Connectivity checks that each consecutive pair of every path is a
// traversable edge of g. Standing still counts as a broken step.
func Connectivity(g *gridgraph.Graph, paths [][]gridgraph.Coord) error {
	for i, p := range paths {
		for k := 1; k < len(p); k++ {
			if !g.HasEdge(p[k-1], p[k]) {
				return fmt.Errorf("%w: agent %d step %d %v -> %v is not an edge",
					ErrConnectivity, i, k, p[k-1], p[k])
			}
		}
	}

	return nil
}

// Ownership checks that owners assigns every vertex of g to one agent whose
// path contains it, and names no vertex outside g.
func Ownership(g *gridgraph.Graph, paths [][]gridgraph.Coord, owners map[gridgraph.Coord]int) error {
	if len(owners) != g.VertexCount() {
		return fmt.Errorf("%w: %d owned vertices, want %d", ErrOwnership, len(owners), g.VertexCount())
	}
	walked := make([]map[gridgraph.Coord]bool, len(paths))
	for i, p := range paths {
		walked[i] = make(map[gridgraph.Coord]bool, len(p))
		for _, c := range p {
			walked[i][c] = true
		}
	}
	for _, v := range g.Vertices() {
		a, ok := owners[v]
		if !ok {
			return fmt.Errorf("%w: %v has no owner", ErrOwnership, v)
		}
		if a < 0 || a >= len(paths) || !walked[a][v] {
			return fmt.Errorf("%w: %v owned by agent %d, which never walks it", ErrOwnership, v, a)
		}
	}

	return nil
}

// CostConsistency recomputes the worst-case cost from paths and compares it
// with reported.
func CostConsistency(g *gridgraph.Graph, paths [][]gridgraph.Coord, forkCost, reported int64) error {
	actions, err := accounting.Actions(g, paths, forkCost)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCostMismatch, err)
	}
	if got := accounting.MaxTotal(actions); got != reported {
		return fmt.Errorf("%w: recomputed %d, reported %d", ErrCostMismatch, got, reported)
	}

	return nil
}

// All runs Coverage, CloneOrigins, Connectivity and CostConsistency, plus
// Ownership when owners is non-nil, and joins every failure.
func All(g *gridgraph.Graph, paths [][]gridgraph.Coord, owners map[gridgraph.Coord]int, forkCost, reported int64) error {
	errs := []error{
		Coverage(g, paths),
		CloneOrigins(paths),
		Connectivity(g, paths),
		CostConsistency(g, paths, forkCost, reported),
	}
	if owners != nil {
		errs = append(errs, Ownership(g, paths, owners))
	}

	return errors.Join(errs...)
}

func head(cs []gridgraph.Coord) []gridgraph.Coord {
	if len(cs) > maxListed {
		return cs[:maxListed]
	}

	return cs
}
