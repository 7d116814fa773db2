// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/clonemaze/builder"
	"github.com/katalvlaran/clonemaze/dijkstra"
	"github.com/katalvlaran/clonemaze/gridgraph"
)

// square is a 2×2 cycle where going round the long way is cheaper:
//
//	(0,0) -1- (0,1)
//	  |9        |1
//	(1,0) -1- (1,1)
func square(t *testing.T) *gridgraph.Graph {
	t.Helper()
	g, err := builder.BuildMaze(2, 2, nil, builder.Passages(
		gridgraph.Edge{From: gridgraph.C(0, 0), To: gridgraph.C(0, 1), Weight: 1},
		gridgraph.Edge{From: gridgraph.C(0, 1), To: gridgraph.C(1, 1), Weight: 1},
		gridgraph.Edge{From: gridgraph.C(1, 0), To: gridgraph.C(1, 1), Weight: 1},
		gridgraph.Edge{From: gridgraph.C(0, 0), To: gridgraph.C(1, 0), Weight: 9},
	))
	require.NoError(t, err)

	return g
}

func TestDijkstra_Validation(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, gridgraph.C(0, 0))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(square(t), gridgraph.C(5, 5))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_Square(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(square(t), gridgraph.C(0, 0), dijkstra.WithReturnPath())
	require.NoError(t, err)

	assert.Equal(t, map[gridgraph.Coord]int64{
		gridgraph.C(0, 0): 0,
		gridgraph.C(0, 1): 1,
		gridgraph.C(1, 1): 2,
		gridgraph.C(1, 0): 3,
	}, dist)
	assert.Equal(t,
		[]gridgraph.Coord{gridgraph.C(0, 0), gridgraph.C(0, 1), gridgraph.C(1, 1), gridgraph.C(1, 0)},
		dijkstra.PathTo(prev, gridgraph.C(0, 0), gridgraph.C(1, 0)))
}

func TestDijkstra_NoPredecessorsByDefault(t *testing.T) {
	_, prev, err := dijkstra.Dijkstra(square(t), gridgraph.C(0, 0))
	require.NoError(t, err)
	assert.Nil(t, prev)
}

func TestDijkstra_Walls(t *testing.T) {
	g := square(t)
	g.AddVertex(gridgraph.C(2, 0))
	g.UpdateWall(gridgraph.C(1, 0), gridgraph.C(2, 0), true, 0)

	dist, prev, err := dijkstra.Dijkstra(g, gridgraph.C(0, 0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(2), dist[gridgraph.C(1, 1)])
	assert.Equal(t, int64(3), dist[gridgraph.C(1, 0)])
	assert.Equal(t, int64(dijkstra.Unreachable), dist[gridgraph.C(2, 0)])
	assert.Nil(t, dijkstra.PathTo(prev, gridgraph.C(0, 0), gridgraph.C(2, 0)))
}

func TestFarthestAndEccentricity(t *testing.T) {
	far, d, ok := dijkstra.Farthest(map[gridgraph.Coord]int64{
		gridgraph.C(0, 0): 0,
		gridgraph.C(1, 1): 4,
		gridgraph.C(0, 2): 4,
		gridgraph.C(2, 2): dijkstra.Unreachable,
	})
	require.True(t, ok)
	assert.Equal(t, gridgraph.C(0, 2), far)
	assert.Equal(t, int64(4), d)

	_, _, ok = dijkstra.Farthest(nil)
	assert.False(t, ok)

	ecc, err := dijkstra.Eccentricity(square(t), gridgraph.C(1, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(2), ecc)
}

// TestDijkstra_GeneratedMazes checks the triangle inequality on every passage.
func TestDijkstra_GeneratedMazes(t *testing.T) {
	for _, seed := range []int64{1, 8, 64} {
		g, err := builder.Generate(7, 7, 30, 9, seed)
		require.NoError(t, err)
		dist, _, err := dijkstra.Dijkstra(g, gridgraph.C(0, 0))
		require.NoError(t, err)
		for _, e := range g.Edges() {
			assert.LessOrEqual(t, dist[e.To], dist[e.From]+e.Weight, "seed %d edge %v", seed, e)
			assert.LessOrEqual(t, dist[e.From], dist[e.To]+e.Weight, "seed %d edge %v", seed, e)
		}
	}
}
