// SPDX-License-Identifier: MIT

// Package clonemaze plans the exploration of weighted grid mazes by agents
// that can clone themselves at junctions for a fixed fork cost.
//
// A run goes through four stages, each in its own package:
//
//	builder/      — maze generation: rooms, randomized DFS carving, wall removal
//	prim_kruskal/ — minimum spanning tree (Kruskal, Prim) and cycle-property check
//	explore/      — serial, always-fork and cost-aware traversal planning
//	accounting/   — per-agent action costs, with clones inheriting their spawner's cost
//
// Supporting packages:
//
//	gridgraph/ — the maze: coordinates, passages, walls, components
//	dfs/       — traversal, tree paths, reachable weight, cycle detection
//	dijkstra/  — shortest distances and the entrance eccentricity lower bound
//	validate/  — coverage, clone origin, connectivity and cost checks for plans
//
// Quick ASCII example (weights on passages, S = entrance):
//
//	.   3   .
//	2 ─ S ─ .
//	    7
//
// With fork cost 5 the cost-aware planner forks a clone into the north
// branch, detours west itself and finishes south: worst agent cost 16
// against 17 for a single walker.
//
// The clonemaze command (cmd/clonemaze) wires the stages together with YAML
// configuration, structured logging and a YAML or text report.
package clonemaze
