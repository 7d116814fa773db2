// SPDX-License-Identifier: MIT

package accounting

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/clonemaze/gridgraph"
)

// SpawnEvents reconstructs one SpawnEvent per clone (paths[1:]), in clone order.
// Returns ErrEmptyClonePath or ErrOrphanClone, wrapped with the clone index.
//
// Complexity: O(A·L) with a first-visit index per path.
func SpawnEvents(paths [][]gridgraph.Coord) ([]SpawnEvent, error) {
	if len(paths) < 2 {
		return nil, nil
	}

	firstVisit := make([]map[gridgraph.Coord]int, len(paths))
	events := make([]SpawnEvent, 0, len(paths)-1)
	for i, p := range paths {
		if i > 0 {
			if len(p) == 0 {
				return nil, fmt.Errorf("%w: agent %d", ErrEmptyClonePath, i)
			}
			ev, ok := findSpawner(firstVisit[:i], p[0])
			if !ok {
				return nil, fmt.Errorf("%w: agent %d starts at %v", ErrOrphanClone, i, p[0])
			}
			ev.Clone = i
			events = append(events, ev)
		}

		idx := make(map[gridgraph.Coord]int, len(p))
		for k, c := range p {
			if _, seen := idx[c]; !seen {
				idx[c] = k
			}
		}
		firstVisit[i] = idx
	}

	return events, nil
}

// findSpawner returns the lowest agent whose path contains c.
func findSpawner(firstVisit []map[gridgraph.Coord]int, c gridgraph.Coord) (SpawnEvent, bool) {
	for j, idx := range firstVisit {
		if k, ok := idx[c]; ok {
			return SpawnEvent{Spawner: j, Index: k}, true
		}
	}

	return SpawnEvent{}, false
}

// Actions builds the action list of every agent. See the package doc for the
// exact layout. The result is never mutated afterwards by this package.
func Actions(w Weigher, paths [][]gridgraph.Coord, forkCost int64) ([][]int64, error) {
	if forkCost < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeForkCost, forkCost)
	}
	events, err := SpawnEvents(paths)
	if err != nil {
		return nil, err
	}

	// Forks grouped by spawner, then by spawn index, in clone order.
	forksAt := make([]map[int][]int, len(paths))
	for _, ev := range events {
		if forksAt[ev.Spawner] == nil {
			forksAt[ev.Spawner] = make(map[int][]int)
		}
		forksAt[ev.Spawner][ev.Index] = append(forksAt[ev.Spawner][ev.Index], ev.Clone)
	}

	// 1-2. Bodies with fork entries, remembering where each clone was charged.
	bodies := make([][]int64, len(paths))
	chargedAt := make([]int, len(paths))
	for i, p := range paths {
		body := make([]int64, 0, len(p))
		for k := range p {
			clones := forksAt[i][k]
			sort.Ints(clones)
			for _, c := range clones {
				chargedAt[c] = len(body)
				body = append(body, forkCost)
			}
			if k+1 < len(p) {
				body = append(body, w.Weight(p[k], p[k+1]))
			}
		}
		bodies[i] = body
	}

	// 3. Lumps in index order; a spawner always precedes its clones.
	lumps := make([]int64, len(paths))
	actions := make([][]int64, len(paths))
	if len(paths) > 0 {
		actions[0] = bodies[0]
	}
	for _, ev := range events {
		lump := lumps[ev.Spawner] + sum(bodies[ev.Spawner][:chargedAt[ev.Clone]+1])
		lumps[ev.Clone] = lump
		actions[ev.Clone] = append([]int64{lump}, bodies[ev.Clone]...)
	}

	return actions, nil
}

// Totals returns the sum of every agent's action list.
func Totals(actions [][]int64) []int64 {
	out := make([]int64, len(actions))
	for i, a := range actions {
		out[i] = sum(a)
	}

	return out
}

// MaxTotal returns the worst-case completion cost, 0 for no agents.
func MaxTotal(actions [][]int64) int64 {
	var best int64
	for _, t := range Totals(actions) {
		if t > best {
			best = t
		}
	}

	return best
}

func sum(xs []int64) int64 {
	var s int64
	for _, x := range xs {
		s += x
	}

	return s
}
