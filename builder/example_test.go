// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/clonemaze/builder"
	"github.com/katalvlaran/clonemaze/gridgraph"
)

// ExampleBuildMaze builds a small T-shaped fixture with fixed weights.
func ExampleBuildMaze() {
	g, err := builder.BuildMaze(2, 3,
		[]builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(2))},
		builder.Path(gridgraph.C(0, 0), gridgraph.C(0, 1), gridgraph.C(0, 2)),
		builder.Star(gridgraph.C(0, 1), gridgraph.C(1, 1)),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.VertexCount(), g.EdgeCount(), g.TotalWeight())
	fmt.Println(g.Neighbours(gridgraph.C(0, 1)))
	// Output:
	// 4 3 6
	// [(0, 0) (0, 2) (1, 1)]
}
