// SPDX-License-Identifier: MIT

// Package builder constructs mazes (*gridgraph.Graph) from composable,
// deterministic constructors with functional options.
//
// The package offers:
//
//   - BuildMaze(rows, cols, opts, cons...): the single orchestrator.
//   - Generate(rows, cols, perc, maxWeight, seed): the standard maze.
//   - Constructors:
//     – Rooms():          every cell, every wall in place.
//     – OpenGrid():       every cell, every passage open.
//     – CarveDFS():       perfect maze by randomized depth-first carving.
//     – RemoveWalls(p):   open p% of the remaining interior walls (cycles).
//     – Path(cells...):   a corridor fixture.
//     – Star(c, leaves…): a star fixture.
//     – Passages(e...):   explicit weighted passages.
//   - Options: WithSeed, WithRand, WithWeightFn, WithMaxWeight.
//   - Weight distributions: DefaultWeightFn, ConstantWeightFn, UniformWeightFn.
//
// Guarantees:
//
//   - Same inputs, options and seed ⇒ identical maze.
//   - Option constructors panic on meaningless values; constructors never
//     panic and return sentinel errors wrapped with their name.
package builder
