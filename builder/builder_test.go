// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/clonemaze/builder"
	"github.com/katalvlaran/clonemaze/gridgraph"
)

// gridPassages is the passage count of a fully open rows×cols grid.
func gridPassages(rows, cols int) int {
	return rows*(cols-1) + cols*(rows-1)
}

func TestRooms(t *testing.T) {
	g, err := builder.BuildMaze(2, 3, nil, builder.Rooms())
	require.NoError(t, err)
	assert.Equal(t, 6, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.True(t, g.WallStatus(gridgraph.C(0, 0), gridgraph.C(0, 1)))
	assert.Len(t, g.ConnectedComponents(), 6)
}

func TestOpenGrid(t *testing.T) {
	g, err := builder.BuildMaze(3, 4, []builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(2))},
		builder.OpenGrid())
	require.NoError(t, err)
	assert.Equal(t, 12, g.VertexCount())
	assert.Equal(t, gridPassages(3, 4), g.EdgeCount())
	assert.Equal(t, int64(2*gridPassages(3, 4)), g.TotalWeight())
}

// TestCarveDFS_PerfectMaze checks that carving yields a spanning tree of the
// grid: connected with exactly V-1 passages.
func TestCarveDFS_PerfectMaze(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 17, 2024} {
		g, err := builder.BuildMaze(6, 7,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithMaxWeight(9)},
			builder.Rooms(), builder.CarveDFS())
		require.NoError(t, err, "seed %d", seed)
		assert.Len(t, g.ConnectedComponents(), 1, "seed %d", seed)
		assert.Equal(t, g.VertexCount()-1, g.EdgeCount(), "seed %d", seed)
		for _, e := range g.Edges() {
			assert.GreaterOrEqual(t, e.Weight, int64(1))
			assert.LessOrEqual(t, e.Weight, int64(9))
		}
	}
}

func TestCarveDFS_NeedsRand(t *testing.T) {
	_, err := builder.BuildMaze(2, 2, nil, builder.Rooms(), builder.CarveDFS())
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestCarveDFS_EmptyMaze(t *testing.T) {
	g, err := builder.BuildMaze(3, 3, nil, builder.CarveDFS())
	require.NoError(t, err)
	assert.Zero(t, g.VertexCount())
}

func TestRemoveWalls(t *testing.T) {
	const rows, cols = 5, 5
	base := []builder.BuilderOption{builder.WithSeed(7)}
	walls := gridPassages(rows, cols) - (rows*cols - 1)

	tests := []struct {
		name string
		perc int
		want int
	}{
		{"none", 0, rows*cols - 1},
		{"half", 50, rows*cols - 1 + 50*walls/100},
		{"all", 100, gridPassages(rows, cols)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildMaze(rows, cols, base, builder.Rooms(), builder.CarveDFS(), builder.RemoveWalls(tc.perc))
			require.NoError(t, err)
			assert.Equal(t, tc.want, g.EdgeCount())
		})
	}
}

func TestRemoveWalls_Validation(t *testing.T) {
	_, err := builder.BuildMaze(2, 2, nil, builder.Rooms(), builder.RemoveWalls(101))
	assert.ErrorIs(t, err, builder.ErrInvalidPercentage)

	_, err = builder.BuildMaze(2, 2, nil, builder.Rooms(), builder.RemoveWalls(-1))
	assert.ErrorIs(t, err, builder.ErrInvalidPercentage)

	// Nothing to remove, so no rng is needed.
	_, err = builder.BuildMaze(2, 2, nil, builder.Rooms(), builder.RemoveWalls(0))
	assert.NoError(t, err)

	_, err = builder.BuildMaze(2, 2, nil, builder.Rooms(), builder.RemoveWalls(50))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := builder.Generate(8, 8, 20, 5, 99)
	require.NoError(t, err)
	b, err := builder.Generate(8, 8, 20, 5, 99)
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges())
	assert.Len(t, a.ConnectedComponents(), 1)
	assert.Greater(t, a.EdgeCount(), a.VertexCount()-1)
}

func TestPathAndStar(t *testing.T) {
	g, err := builder.BuildMaze(3, 3, nil,
		builder.Path(gridgraph.C(0, 0), gridgraph.C(0, 1), gridgraph.C(0, 2)),
		builder.Star(gridgraph.C(1, 1), gridgraph.C(0, 1), gridgraph.C(2, 1)),
	)
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, []gridgraph.Coord{gridgraph.C(0, 1), gridgraph.C(2, 1)}, g.Neighbours(gridgraph.C(1, 1)))
}

func TestPassages(t *testing.T) {
	g, err := builder.BuildMaze(2, 2, nil, builder.Passages(
		gridgraph.Edge{From: gridgraph.C(0, 0), To: gridgraph.C(0, 1), Weight: 4},
		gridgraph.Edge{From: gridgraph.C(0, 1), To: gridgraph.C(1, 1), Weight: 6},
	))
	require.NoError(t, err)
	assert.Equal(t, int64(4), g.Weight(gridgraph.C(0, 1), gridgraph.C(0, 0)))
	assert.Equal(t, int64(10), g.TotalWeight())
}

func TestConstructorErrors(t *testing.T) {
	tests := []struct {
		name string
		rows int
		cons []builder.Constructor
		want error
	}{
		{"path too short", 3, []builder.Constructor{builder.Path(gridgraph.C(0, 0))}, builder.ErrTooFewVertices},
		{"path out of bounds", 3, []builder.Constructor{builder.Path(gridgraph.C(2, 2), gridgraph.C(3, 2))}, builder.ErrOutOfBounds},
		{"path not adjacent", 3, []builder.Constructor{builder.Path(gridgraph.C(0, 0), gridgraph.C(1, 1))}, builder.ErrNotAdjacent},
		{"star without leaves", 3, []builder.Constructor{builder.Star(gridgraph.C(1, 1))}, builder.ErrTooFewVertices},
		{"passage reopened", 3, []builder.Constructor{
			builder.Path(gridgraph.C(0, 0), gridgraph.C(0, 1)),
			builder.Path(gridgraph.C(0, 1), gridgraph.C(0, 0)),
		}, builder.ErrConstructFailed},
		{"zero weight", 3, []builder.Constructor{builder.Passages(gridgraph.Edge{From: gridgraph.C(0, 0), To: gridgraph.C(1, 0)})}, builder.ErrInvalidWeight},
		{"empty grid rooms", 0, []builder.Constructor{builder.Rooms()}, builder.ErrTooFewVertices},
		{"nil constructor", 3, []builder.Constructor{nil}, builder.ErrConstructFailed},
		{"negative rows", -1, nil, gridgraph.ErrBadDimensions},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildMaze(tc.rows, 3, nil, tc.cons...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
