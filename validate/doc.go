// SPDX-License-Identifier: MIT

// Package validate checks a planning result against the maze it was planned
// on. The checks are independent of the planner: they only read paths.
//
//   - Coverage: the union of all paths is exactly the vertex set.
//   - CloneOrigins: every clone path starts on a vertex of an earlier path.
//   - Connectivity: every consecutive pair is a traversable edge.
//   - Ownership: every vertex has exactly one owning agent that walked it.
//   - CostConsistency: recomputed worst-case cost equals the reported one.
//
// All runs every check and joins the failures with errors.Join, so callers
// can test each sentinel with errors.Is.
package validate
