// SPDX-License-Identifier: MIT

package explore

import "github.com/katalvlaran/clonemaze/gridgraph"

// claimSet is the shared exclusive-ownership set. A vertex is claimed once,
// by one agent, and never released.
// Planning is single-threaded; a concurrent planner would need to serialize
// claim calls.
type claimSet struct {
	owner map[gridgraph.Coord]int
}

func newClaimSet(capacity int) *claimSet {
	return &claimSet{owner: make(map[gridgraph.Coord]int, capacity)}
}

// claim records agent as the owner of c. Returns false if c was taken.
func (s *claimSet) claim(c gridgraph.Coord, agent int) bool {
	if _, taken := s.owner[c]; taken {
		return false
	}
	s.owner[c] = agent

	return true
}

func (s *claimSet) claimed(c gridgraph.Coord) bool {
	_, ok := s.owner[c]
	return ok
}

func (s *claimSet) len() int { return len(s.owner) }
