// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/clonemaze/builder"
	"github.com/katalvlaran/clonemaze/dfs"
	"github.com/katalvlaran/clonemaze/dijkstra"
	"github.com/katalvlaran/clonemaze/explore"
	"github.com/katalvlaran/clonemaze/gridgraph"
	"github.com/katalvlaran/clonemaze/internal/config"
	"github.com/katalvlaran/clonemaze/internal/logging"
	"github.com/katalvlaran/clonemaze/internal/report"
	"github.com/katalvlaran/clonemaze/prim_kruskal"
	"github.com/katalvlaran/clonemaze/validate"
)

// errValidation is returned after the report is written when any plan fails
// validation, so the process exits non-zero.
var errValidation = errors.New("plan validation failed")

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate a maze and plan its exploration with one policy",
		Long: `Generate a maze, build its minimum spanning tree, plan the exploration with
the configured policy, validate the plan and print a report.

Examples:
  # Defaults (10x10, cost-aware, fork cost 5)
  clonemaze run

  # Reproducible run from a config file, overriding the policy
  clonemaze run --config maze.yaml --policy always_fork --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPipeline(cmd, false)
		},
	}
	addPlanFlags(cmd)

	return cmd
}

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Plan the same maze with every policy",
		Long: `Generate one maze and spanning tree, then plan it with the serial, always-fork
and cost-aware policies concurrently and report them side by side.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPipeline(cmd, true)
		},
	}
	addPlanFlags(cmd)

	return cmd
}

func addPlanFlags(cmd *cobra.Command) {
	cmd.Flags().String("policy", "", "planner policy: serial, always_fork, cost_aware")
	cmd.Flags().Int64("fork-cost", 0, "one-time cost of creating a clone")
	cmd.Flags().String("mst", "", "spanning tree method: kruskal, prim")
	cmd.Flags().Int64("seed", 0, "maze seed (0 picks a time-based seed)")
	cmd.Flags().String("format", "", "report format: yaml, text")
	cmd.Flags().Bool("print-paths", false, "include every agent path in the report")
}

// loadConfig reads --config and applies the flags that were set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("policy") {
		cfg.Planner.Policy, _ = flags.GetString("policy")
	}
	if flags.Changed("fork-cost") {
		cfg.Planner.ForkCost, _ = flags.GetInt64("fork-cost")
	}
	if flags.Changed("mst") {
		cfg.MST.Method, _ = flags.GetString("mst")
	}
	if flags.Changed("seed") {
		cfg.Maze.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("format") {
		cfg.Output.Format, _ = flags.GetString("format")
	}
	if flags.Changed("print-paths") {
		cfg.Output.PrintPaths, _ = flags.GetBool("print-paths")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	return cfg, nil
}

// runPipeline generates the maze, builds the tree, plans, validates and
// reports. With all set, every policy is planned.
func runPipeline(cmd *cobra.Command, all bool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := logging.NewWithWriter(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = logging.Sync(log) }()

	summary, err := execute(cmd.Context(), cfg, log, all)
	if err != nil {
		return err
	}
	if err := report.Encode(cmd.OutOrStdout(), summary, cfg.Output.Format); err != nil {
		return err
	}
	if len(summary.Failures) > 0 {
		return fmt.Errorf("%w: %d failure(s)", errValidation, len(summary.Failures))
	}

	return nil
}

// execute runs the pipeline and returns its summary. Validation failures are
// recorded in the summary rather than returned.
func execute(ctx context.Context, cfg *config.Config, log *zap.Logger, all bool) (report.Summary, error) {
	seed := cfg.Maze.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	entrance := gridgraph.C(cfg.Maze.Entrance.Row, cfg.Maze.Entrance.Col)

	start := time.Now()
	g, err := builder.Generate(cfg.Maze.Rows, cfg.Maze.Cols, cfg.Maze.WallRemovalPerc, cfg.Maze.MaxWeight, seed)
	if err != nil {
		return report.Summary{}, fmt.Errorf("generate maze: %w", err)
	}
	log.Info("maze generated",
		zap.Int("rows", cfg.Maze.Rows),
		zap.Int("cols", cfg.Maze.Cols),
		zap.Int64("seed", seed),
		zap.Int("edges", g.EdgeCount()),
		zap.Duration("took", time.Since(start)))

	start = time.Now()
	method, err := prim_kruskal.ParseMethod(cfg.MST.Method)
	if err != nil {
		return report.Summary{}, fmt.Errorf("mst method: %w", err)
	}
	tree, weight, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(method), prim_kruskal.WithRoot(entrance))
	if err != nil {
		return report.Summary{}, fmt.Errorf("spanning tree: %w", err)
	}
	mst, err := summarizeTree(ctx, tree, entrance)
	if err != nil {
		return report.Summary{}, err
	}
	mst.Method, mst.Weight = method, weight
	log.Info("spanning tree built",
		zap.String("method", method),
		zap.Int64("weight", weight),
		zap.Int64("lower_bound", mst.LowerBound),
		zap.String("farthest_room", mst.FarthestRoom),
		zap.Int("dead_ends", mst.DeadEnds),
		zap.Duration("took", time.Since(start)))

	policy, err := explore.ParsePolicy(cfg.Planner.Policy)
	if err != nil {
		return report.Summary{}, fmt.Errorf("planner policy: %w", err)
	}
	opts := []explore.Option{
		explore.WithPolicy(policy),
		explore.WithForkCost(cfg.Planner.ForkCost),
		explore.WithLoadRatio(cfg.Planner.LoadRatio),
		explore.WithLogger(log),
	}

	start = time.Now()
	var results []*explore.Result
	if all {
		results, err = explore.PlanAll(ctx, tree, entrance, opts...)
	} else {
		var res *explore.Result
		res, err = explore.Plan(tree, entrance, opts...)
		results = []*explore.Result{res}
	}
	if err != nil {
		return report.Summary{}, fmt.Errorf("plan: %w", err)
	}
	log.Info("exploration planned",
		zap.Int("plans", len(results)),
		zap.Duration("took", time.Since(start)))

	summary := report.Summary{
		Maze: report.MazeSummary{
			Rows:     cfg.Maze.Rows,
			Cols:     cfg.Maze.Cols,
			Seed:     seed,
			Entrance: entrance.String(),
			Vertices: g.VertexCount(),
			Edges:    g.EdgeCount(),
		},
		MST: mst,
	}

	start = time.Now()
	for _, res := range results {
		summary.Plans = append(summary.Plans, report.FromResult(res, cfg.Output.PrintPaths))
		if err := validate.All(tree, res.Paths, res.Owners, res.ForkCost, res.MaxTotalCost); err != nil {
			log.Error("plan failed validation", zap.Stringer("policy", res.Policy), zap.Error(err))
			summary.Failures = append(summary.Failures, fmt.Sprintf("%s: %v", res.Policy, err))
		}
	}
	log.Info("plans validated",
		zap.Int("failures", len(summary.Failures)),
		zap.Duration("took", time.Since(start)))

	return summary, nil
}

// summarizeTree measures the spanning tree seen from the entrance: the
// farthest room and the route to it (the plan lower bound), the longest
// branch in passages and the number of dead ends.
func summarizeTree(ctx context.Context, tree *gridgraph.Graph, entrance gridgraph.Coord) (report.MSTSummary, error) {
	s := report.MSTSummary{Edges: tree.EdgeCount()}

	dist, prev, err := dijkstra.Dijkstra(tree, entrance, dijkstra.WithReturnPath())
	if err != nil {
		return s, fmt.Errorf("lower bound: %w", err)
	}
	if far, d, ok := dijkstra.Farthest(dist); ok {
		s.LowerBound = d
		s.FarthestRoom = far.String()
		s.FarthestPath = report.CoordStrings(dijkstra.PathTo(prev, entrance, far))
	}

	res, err := dfs.DFS(tree, entrance,
		dfs.WithContext(ctx),
		dfs.WithOnExit(func(c gridgraph.Coord) error {
			if tree.Degree(c) == 1 {
				s.DeadEnds++
			}
			return nil
		}))
	if err != nil {
		return s, fmt.Errorf("tree shape: %w", err)
	}
	for _, d := range res.Depth {
		if d > s.Depth {
			s.Depth = d
		}
	}

	return s, nil
}
