// SPDX-License-Identifier: MIT

// Package accounting turns finished agent paths into per-agent action lists
// and the worst-case completion cost.
//
// An action is one non-negative cost: a move between consecutive path
// vertices, the fork cost charged to a spawner when it creates a clone, or
// the lump a clone inherits from its spawner's timeline.
//
// Spawn resolution: the spawner of agent i (i ≥ 1) is the lowest-indexed
// earlier agent whose path contains paths[i][0], and the spawn index is that
// agent's first visit to the vertex.
//
// Steps (Actions):
//  1. body[i] = movement costs of path i.
//  2. For each spawner, insert the fork cost before its move out of the spawn
//     index. Several forks at one index are ordered by clone index.
//  3. Process agents in index order; clone i gets
//     lump = lump(spawner) + sum(body[spawner] up to and including its own
//     fork entry), prepended to its body.
//
// Complexity: O(A·L) time and memory, A = agents, L = longest path.
package accounting
