// SPDX-License-Identifier: MIT

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/clonemaze/gridgraph"
	"github.com/katalvlaran/clonemaze/validate"
)

var (
	center = gridgraph.C(1, 1)
	west   = gridgraph.C(1, 0)
	north  = gridgraph.C(0, 1)
	south  = gridgraph.C(2, 1)
)

func star() *gridgraph.Graph {
	g := gridgraph.NewGraph(3, 3)
	g.AddVertices(center, west, north, south)
	g.AddEdge(center, west, 2)
	g.AddEdge(center, north, 3)
	g.AddEdge(center, south, 7)

	return g
}

// forked is the always-fork plan of the star at fork cost 5; worst case 17.
var forked = [][]gridgraph.Coord{
	{center, south},
	{center, north},
	{center, west},
}

func forkedOwners() map[gridgraph.Coord]int {
	return map[gridgraph.Coord]int{center: 0, south: 0, north: 1, west: 2}
}

func TestAll_ValidPlan(t *testing.T) {
	assert.NoError(t, validate.All(star(), forked, forkedOwners(), 5, 17))
	assert.NoError(t, validate.All(star(), forked, nil, 5, 17))
}

func TestCoverage(t *testing.T) {
	assert.ErrorIs(t, validate.Coverage(star(), forked[:2]), validate.ErrCoverage)
	assert.ErrorIs(t, validate.Coverage(star(), [][]gridgraph.Coord{
		{center, south}, {center, north, gridgraph.C(0, 0)}, {center, west},
	}), validate.ErrCoverage)
	assert.NoError(t, validate.Coverage(gridgraph.NewGraph(0, 0), [][]gridgraph.Coord{{}}))
}

func TestCloneOrigins(t *testing.T) {
	assert.NoError(t, validate.CloneOrigins(forked))
	assert.ErrorIs(t, validate.CloneOrigins([][]gridgraph.Coord{{center, south}, {west, center}}),
		validate.ErrCloneOrigin)
	assert.ErrorIs(t, validate.CloneOrigins([][]gridgraph.Coord{{center}, {}}), validate.ErrCloneOrigin)
}

func TestConnectivity(t *testing.T) {
	assert.NoError(t, validate.Connectivity(star(), forked))
	assert.ErrorIs(t, validate.Connectivity(star(), [][]gridgraph.Coord{{west, north}}),
		validate.ErrConnectivity, "diagonal step")
	assert.ErrorIs(t, validate.Connectivity(star(), [][]gridgraph.Coord{{center, center}}),
		validate.ErrConnectivity, "standing still")
}

func TestOwnership(t *testing.T) {
	assert.NoError(t, validate.Ownership(star(), forked, forkedOwners()))

	wrong := forkedOwners()
	wrong[west] = 1
	assert.ErrorIs(t, validate.Ownership(star(), forked, wrong), validate.ErrOwnership)

	short := forkedOwners()
	delete(short, south)
	assert.ErrorIs(t, validate.Ownership(star(), forked, short), validate.ErrOwnership)
}

func TestCostConsistency(t *testing.T) {
	assert.NoError(t, validate.CostConsistency(star(), forked, 5, 17))
	assert.ErrorIs(t, validate.CostConsistency(star(), forked, 5, 16), validate.ErrCostMismatch)
	assert.ErrorIs(t, validate.CostConsistency(star(), [][]gridgraph.Coord{{center}, {west}}, 5, 0),
		validate.ErrCostMismatch)
}

func TestAll_JoinsFailures(t *testing.T) {
	bad := [][]gridgraph.Coord{{center, west}, {north, center}}
	err := validate.All(star(), bad, nil, 0, 99)
	assert.ErrorIs(t, err, validate.ErrCoverage)
	assert.ErrorIs(t, err, validate.ErrCloneOrigin)
	assert.ErrorIs(t, err, validate.ErrCostMismatch)
	assert.NotErrorIs(t, err, validate.ErrConnectivity)
}
