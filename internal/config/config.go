// SPDX-License-Identifier: MIT

// Package config loads clonemaze run configuration from defaults, a YAML
// file and CLONEMAZE_* environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/clonemaze/explore"
	"github.com/katalvlaran/clonemaze/internal/logging"
	"github.com/katalvlaran/clonemaze/prim_kruskal"
)

// ErrInvalid marks a configuration value outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Output formats.
const (
	OutputYAML = "yaml"
	OutputText = "text"
)

// GeneratorDFS is the only supported maze generator.
const GeneratorDFS = "dfs"

// Config is the complete run configuration.
type Config struct {
	Maze    MazeConfig     `koanf:"maze" yaml:"maze"`
	MST     MSTConfig      `koanf:"mst" yaml:"mst"`
	Planner PlannerConfig  `koanf:"planner" yaml:"planner"`
	Log     logging.Config `koanf:"log" yaml:"log"`
	Output  OutputConfig   `koanf:"output" yaml:"output"`
}

// MazeConfig describes the maze to generate.
type MazeConfig struct {
	Rows            int         `koanf:"rows" yaml:"rows"`
	Cols            int         `koanf:"cols" yaml:"cols"`
	Entrance        CoordConfig `koanf:"entrance" yaml:"entrance"`
	Generator       string      `koanf:"generator" yaml:"generator"`
	WallRemovalPerc int         `koanf:"wall_removal_perc" yaml:"wall_removal_perc"`
	MaxWeight       int64       `koanf:"max_weight" yaml:"max_weight"`
	Seed            int64       `koanf:"seed" yaml:"seed"` // 0 picks a time-based seed
}

// CoordConfig is a cell position.
type CoordConfig struct {
	Row int `koanf:"row" yaml:"row"`
	Col int `koanf:"col" yaml:"col"`
}

// MSTConfig selects the spanning-tree algorithm.
type MSTConfig struct {
	Method string `koanf:"method" yaml:"method"`
}

// PlannerConfig configures the traversal planner.
type PlannerConfig struct {
	Policy    string  `koanf:"policy" yaml:"policy"`
	ForkCost  int64   `koanf:"fork_cost" yaml:"fork_cost"`
	LoadRatio float64 `koanf:"load_ratio" yaml:"load_ratio"`
}

// OutputConfig controls the run report.
type OutputConfig struct {
	Format     string `koanf:"format" yaml:"format"`
	PrintPaths bool   `koanf:"print_paths" yaml:"print_paths"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Maze: MazeConfig{
			Rows:            10,
			Cols:            10,
			Generator:       GeneratorDFS,
			WallRemovalPerc: 10,
			MaxWeight:       10,
		},
		MST: MSTConfig{Method: prim_kruskal.MethodKruskal},
		Planner: PlannerConfig{
			Policy:    explore.PolicyCostAware.String(),
			ForkCost:  5,
			LoadRatio: explore.DefaultLoadRatio,
		},
		Log:    logging.DefaultConfig(),
		Output: OutputConfig{Format: OutputYAML},
	}
}

// Validate checks every field and joins all failures.
func (c *Config) Validate() error {
	var errs []error
	invalid := func(field string, format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("%s: %s: %w", field, fmt.Sprintf(format, args...), ErrInvalid))
	}

	m := c.Maze
	if m.Rows < 1 {
		invalid("maze.rows", "must be ≥ 1, got %d", m.Rows)
	}
	if m.Cols < 1 {
		invalid("maze.cols", "must be ≥ 1, got %d", m.Cols)
	}
	if m.Entrance.Row < 0 || m.Entrance.Row >= m.Rows || m.Entrance.Col < 0 || m.Entrance.Col >= m.Cols {
		invalid("maze.entrance", "(%d, %d) outside %dx%d", m.Entrance.Row, m.Entrance.Col, m.Rows, m.Cols)
	}
	if m.Generator != GeneratorDFS {
		invalid("maze.generator", "unsupported %q", m.Generator)
	}
	if m.WallRemovalPerc < 0 || m.WallRemovalPerc > 100 {
		invalid("maze.wall_removal_perc", "must be in [0,100], got %d", m.WallRemovalPerc)
	}
	if m.MaxWeight < 1 {
		invalid("maze.max_weight", "must be ≥ 1, got %d", m.MaxWeight)
	}

	if _, err := prim_kruskal.ParseMethod(c.MST.Method); err != nil {
		errs = append(errs, fmt.Errorf("mst.method: %w", err))
	}

	if _, err := explore.ParsePolicy(c.Planner.Policy); err != nil {
		errs = append(errs, fmt.Errorf("planner.policy: %w", err))
	}
	if c.Planner.ForkCost < 0 {
		invalid("planner.fork_cost", "must be ≥ 0, got %d", c.Planner.ForkCost)
	}
	if !(c.Planner.LoadRatio > 0) {
		invalid("planner.load_ratio", "must be > 0, got %v", c.Planner.LoadRatio)
	}

	if err := c.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	if c.Output.Format != OutputYAML && c.Output.Format != OutputText {
		invalid("output.format", "unsupported %q", c.Output.Format)
	}

	return errors.Join(errs...)
}
