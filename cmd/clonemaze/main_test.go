// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/clonemaze/explore"
	"github.com/katalvlaran/clonemaze/internal/config"
	"github.com/katalvlaran/clonemaze/internal/report"
	"github.com/katalvlaran/clonemaze/prim_kruskal"
)

// runCLI executes the root command with args and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maze.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	return path
}

const smallMaze = `
maze:
  rows: 6
  cols: 5
  wall_removal_perc: 20
  max_weight: 9
  seed: 11
planner:
  fork_cost: 3
log:
  level: warn
`

func TestRun_YAMLReport(t *testing.T) {
	out, err := runCLI(t, "run", "--config", writeConfig(t, smallMaze), "--print-paths")
	require.NoError(t, err)

	var s report.Summary
	require.NoError(t, yaml.Unmarshal([]byte(out), &s))
	assert.Equal(t, 6, s.Maze.Rows)
	assert.Equal(t, int64(11), s.Maze.Seed)
	assert.Equal(t, 30, s.Maze.Vertices)
	assert.Equal(t, 29, s.MST.Edges)
	require.Len(t, s.Plans, 1)
	assert.Equal(t, "cost_aware", s.Plans[0].Policy)
	assert.Equal(t, int64(3), s.Plans[0].ForkCost)
	assert.Len(t, s.Plans[0].Paths, s.Plans[0].CloneCount+1)
	assert.Empty(t, s.Failures)
}

func TestRun_FlagsOverrideConfig(t *testing.T) {
	out, err := runCLI(t, "run", "--config", writeConfig(t, smallMaze),
		"--policy", "serial", "--mst", "prim", "--fork-cost", "0", "--seed", "5")
	require.NoError(t, err)

	var s report.Summary
	require.NoError(t, yaml.Unmarshal([]byte(out), &s))
	assert.Equal(t, int64(5), s.Maze.Seed)
	assert.Equal(t, "prim", s.MST.Method)
	require.Len(t, s.Plans, 1)
	assert.Equal(t, "serial", s.Plans[0].Policy)
	assert.Zero(t, s.Plans[0].CloneCount)
	assert.Nil(t, s.Plans[0].Paths)
}

func TestRun_InvalidFlag(t *testing.T) {
	_, err := runCLI(t, "run", "--config", writeConfig(t, smallMaze), "--policy", "random")
	assert.ErrorIs(t, err, explore.ErrUnknownPolicy)

	_, err = runCLI(t, "run", "--config", writeConfig(t, smallMaze), "--fork-cost", "-1")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestCompare_AllPolicies(t *testing.T) {
	out, err := runCLI(t, "compare", "--config", writeConfig(t, smallMaze), "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "serial")
	assert.Contains(t, out, "always_fork")
	assert.Contains(t, out, "cost_aware")
	assert.NotContains(t, out, "FAIL")
}

// TestExecute_SameMazeAcrossPolicies checks that every policy explores the
// same tree and that a lone walker pays at least the tree weight and at most
// a full round trip.
func TestExecute_SameMazeAcrossPolicies(t *testing.T) {
	cfg := config.Default()
	cfg.Maze.Seed = 3
	cfg.Planner.ForkCost = 2

	s, err := execute(context.Background(), cfg, zap.NewNop(), true)
	require.NoError(t, err)
	require.Len(t, s.Plans, 3)
	assert.Empty(t, s.Failures)

	serial := s.Plans[0]
	assert.Equal(t, "serial", serial.Policy)
	assert.Zero(t, serial.CloneCount)
	assert.GreaterOrEqual(t, serial.MaxTotalCost, s.MST.Weight)
	assert.Less(t, serial.MaxTotalCost, 2*s.MST.Weight)
	for _, p := range s.Plans {
		assert.GreaterOrEqual(t, p.MaxTotalCost, s.MST.LowerBound, p.Policy)
	}
	assert.Equal(t, "always_fork", s.Plans[1].Policy)
	assert.Equal(t, "cost_aware", s.Plans[2].Policy)
}

func TestExecute_FarthestRoomAndShape(t *testing.T) {
	cfg := config.Default()
	cfg.Maze.Seed = 3

	s, err := execute(context.Background(), cfg, zap.NewNop(), false)
	require.NoError(t, err)

	require.NotEmpty(t, s.MST.FarthestPath)
	assert.Equal(t, s.Maze.Entrance, s.MST.FarthestPath[0])
	assert.Equal(t, s.MST.FarthestRoom, s.MST.FarthestPath[len(s.MST.FarthestPath)-1])
	assert.Positive(t, s.MST.LowerBound)
	assert.GreaterOrEqual(t, s.MST.Depth, len(s.MST.FarthestPath)-1)
	assert.Positive(t, s.MST.DeadEnds)
}

func TestExecute_RejectsUnknownNames(t *testing.T) {
	cfg := config.Default()
	cfg.MST.Method = "boruvka"
	_, err := execute(context.Background(), cfg, zap.NewNop(), false)
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)

	cfg = config.Default()
	cfg.Planner.Policy = "greedy"
	_, err = execute(context.Background(), cfg, zap.NewNop(), false)
	assert.ErrorIs(t, err, explore.ErrUnknownPolicy)
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "clonemaze dev\n", out)
}
