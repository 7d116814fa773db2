// SPDX-License-Identifier: MIT

// Package report renders the outcome of a clonemaze run.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/clonemaze/explore"
	"github.com/katalvlaran/clonemaze/gridgraph"
)

// ErrUnknownFormat indicates an output format other than yaml or text.
var ErrUnknownFormat = errors.New("report: unknown format")

// Summary is the serializable outcome of one run.
type Summary struct {
	Maze     MazeSummary   `yaml:"maze"`
	MST      MSTSummary    `yaml:"mst"`
	Plans    []PlanSummary `yaml:"plans"`
	Failures []string      `yaml:"validation_failures,omitempty"`
}

// MazeSummary describes the generated maze.
type MazeSummary struct {
	Rows     int    `yaml:"rows"`
	Cols     int    `yaml:"cols"`
	Seed     int64  `yaml:"seed"`
	Entrance string `yaml:"entrance"`
	Vertices int    `yaml:"vertices"`
	Edges    int    `yaml:"edges"`
}

// MSTSummary describes the spanning tree. LowerBound is the tree distance
// from the entrance to the farthest room, which no plan can beat;
// FarthestPath is the route to that room. Depth counts passages on the
// longest branch from the entrance.
type MSTSummary struct {
	Method       string   `yaml:"method"`
	Weight       int64    `yaml:"weight"`
	Edges        int      `yaml:"edges"`
	LowerBound   int64    `yaml:"lower_bound"`
	FarthestRoom string   `yaml:"farthest_room,omitempty"`
	FarthestPath []string `yaml:"farthest_path,flow,omitempty"`
	Depth        int      `yaml:"depth"`
	DeadEnds     int      `yaml:"dead_ends"`
}

// PlanSummary describes one planner run.
type PlanSummary struct {
	Policy       string     `yaml:"policy"`
	ForkCost     int64      `yaml:"fork_cost"`
	CloneCount   int        `yaml:"clone_count"`
	MaxTotalCost int64      `yaml:"max_total_cost"`
	Totals       []int64    `yaml:"agent_totals,flow"`
	Paths        [][]string `yaml:"paths,omitempty"`
}

// FromResult summarizes r; paths are included only when withPaths is set.
func FromResult(r *explore.Result, withPaths bool) PlanSummary {
	ps := PlanSummary{
		Policy:       r.Policy.String(),
		ForkCost:     r.ForkCost,
		CloneCount:   r.CloneCount,
		MaxTotalCost: r.MaxTotalCost,
		Totals:       r.Totals,
	}
	if withPaths {
		ps.Paths = make([][]string, len(r.Paths))
		for i, path := range r.Paths {
			ps.Paths[i] = CoordStrings(path)
		}
	}

	return ps
}

// Encode writes s to w as "yaml" or "text".
func Encode(w io.Writer, s Summary, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		return enc.Close()
	case "text":
		return encodeText(w, s)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func encodeText(w io.Writer, s Summary) error {
	var b strings.Builder
	fmt.Fprintf(&b, "maze %dx%d seed=%d entrance=%s vertices=%d edges=%d\n",
		s.Maze.Rows, s.Maze.Cols, s.Maze.Seed, s.Maze.Entrance, s.Maze.Vertices, s.Maze.Edges)
	fmt.Fprintf(&b, "mst %s weight=%d edges=%d lower_bound=%d depth=%d dead_ends=%d\n",
		s.MST.Method, s.MST.Weight, s.MST.Edges, s.MST.LowerBound, s.MST.Depth, s.MST.DeadEnds)
	if s.MST.FarthestRoom != "" {
		fmt.Fprintf(&b, "  farthest %s: %s\n", s.MST.FarthestRoom, strings.Join(s.MST.FarthestPath, " "))
	}
	for _, p := range s.Plans {
		fmt.Fprintf(&b, "%-12s fork_cost=%d clones=%d max_cost=%d totals=%v\n",
			p.Policy, p.ForkCost, p.CloneCount, p.MaxTotalCost, p.Totals)
		for i, path := range p.Paths {
			fmt.Fprintf(&b, "  agent %d: %s\n", i, strings.Join(path, " "))
		}
	}
	for _, f := range s.Failures {
		fmt.Fprintf(&b, "FAIL %s\n", f)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// CoordStrings renders a vertex sequence as "(row, col)" strings.
func CoordStrings(cs []gridgraph.Coord) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}

	return out
}
