// SPDX-License-Identifier: MIT

// Package explore plans full-coverage traversal of a maze tree by one or more
// cooperating agents.
//
// Agent 0 starts at the configured vertex. Whenever the planner decides to
// fork, a clone agent is appended whose path begins [junction, neighbour];
// it is explored immediately, depth-first, before the spawner continues.
// All agents share one claim set: a vertex claimed by any agent is never
// claimed again, which is the only cross-agent coordination.
//
// Policies:
//
//   - PolicySerial: one agent, neighbours in ascending subtree weight, walking
//     back through the junction after each branch. Stops the moment every
//     vertex is claimed, so the last branch is never walked back.
//
//   - PolicyAlwaysFork: at every junction the agent keeps the branch with the
//     largest subtree weight and forks a clone into each of the others.
//
//   - PolicyCostAware: a side branch with entry weight w and load B, next to a
//     main branch of load Bm, is forked iff
//
//     forkCost < 2·B  and  (2·w > forkCost  or  B ≥ loadRatio·Bm)
//
//     Forked clones go first, then the remaining branches are detoured into in
//     ascending load, each followed by the unique tree path back to the
//     junction, then the agent continues into the main branch.
//
// The subtree weight of neighbour n is the weight of the still-unclaimed
// region behind n (dfs.ReachableWeight); its branch load at junction j adds
// the entry edge w(j, n). Both are recomputed at every decision because
// claims change as agents advance. Ties keep neighbour order.
//
// Plan expects a tree (see prim_kruskal): the return path after a detour must
// be unique. Cyclic input is rejected with ErrCyclicGraph, input with more
// than one component with ErrDisconnected.
package explore
