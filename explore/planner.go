// SPDX-License-Identifier: MIT

package explore

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/clonemaze/accounting"
	"github.com/katalvlaran/clonemaze/dfs"
	"github.com/katalvlaran/clonemaze/gridgraph"
)

// Plan partitions full coverage of the tree g, starting at start, among one
// or more agents according to the configured policy, then costs the result.
//
// Steps:
//  1. Validate options and input. An empty graph yields Paths [[]].
//  2. Claim start for agent 0 and walk with the selected policy.
//  3. Cost every path with accounting.Actions.
//
// Complexity: O(V²) in the worst case, since branch loads are recomputed at
// every junction.
func Plan(g *gridgraph.Graph, start gridgraph.Coord, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Validate.
	if g == nil {
		return nil, ErrNilGraph
	}
	if o.ForkCost < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeForkCost, o.ForkCost)
	}
	if !(o.LoadRatio > 0) {
		return nil, fmt.Errorf("%w: %v", ErrBadLoadRatio, o.LoadRatio)
	}
	if o.Policy < PolicySerial || o.Policy > PolicyCostAware {
		return nil, fmt.Errorf("%w: %v", ErrUnknownPolicy, o.Policy)
	}
	n := g.VertexCount()
	if n == 0 {
		return &Result{
			Policy:   o.Policy,
			ForkCost: o.ForkCost,
			Paths:    [][]gridgraph.Coord{{}},
			Actions:  [][]int64{{}},
			Totals:   []int64{0},
			Owners:   map[gridgraph.Coord]int{},
		}, nil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}
	if reach := len(g.Component(start)); reach != n {
		return nil, fmt.Errorf("%w: %d of %d vertices reachable from %v", ErrDisconnected, reach, n, start)
	}
	if cyc := dfs.FindCycle(g); cyc != nil {
		return nil, fmt.Errorf("%w: through %v", ErrCyclicGraph, cyc[0])
	}

	// 2. Walk.
	p := &planner{
		g:      g,
		opts:   o,
		claims: newClaimSet(n),
		target: n,
		log:    o.Logger.With(zap.Stringer("policy", o.Policy)),
	}
	p.log.Debug("plan start",
		zap.Stringer("start", start),
		zap.Int64("fork_cost", o.ForkCost),
		zap.Int("vertices", n))

	p.claims.claim(start, 0)
	p.paths = [][]gridgraph.Coord{{start}}
	p.walk(0, start)
	if p.err != nil {
		return nil, p.err
	}
	if p.claims.len() != n {
		return nil, fmt.Errorf("%w: %d of %d vertices claimed", ErrDisconnected, p.claims.len(), n)
	}

	// 3. Cost.
	actions, err := accounting.Actions(g, p.paths, o.ForkCost)
	if err != nil {
		return nil, fmt.Errorf("explore: costing paths: %w", err)
	}
	res := &Result{
		Policy:       o.Policy,
		ForkCost:     o.ForkCost,
		Paths:        p.paths,
		Actions:      actions,
		Totals:       accounting.Totals(actions),
		MaxTotalCost: accounting.MaxTotal(actions),
		CloneCount:   len(p.paths) - 1,
		Owners:       p.claims.owner,
	}
	p.log.Debug("plan done",
		zap.Int("agents", len(res.Paths)),
		zap.Int64("max_total_cost", res.MaxTotalCost))

	return res, nil
}

// PlanAll runs Plan once per policy, concurrently, and returns the results in
// Policies order. The graph is only read, so the runs share it.
func PlanAll(ctx context.Context, g *gridgraph.Graph, start gridgraph.Coord, opts ...Option) ([]*Result, error) {
	out := make([]*Result, len(Policies))
	eg, ctx := errgroup.WithContext(ctx)
	for i, pol := range Policies {
		i, pol := i, pol
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Plan(g, start, append(append([]Option{}, opts...), WithPolicy(pol))...)
			if err != nil {
				return fmt.Errorf("%s: %w", pol, err)
			}
			out[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// planner holds the state of one Plan call.
type planner struct {
	g      *gridgraph.Graph
	opts   Options
	claims *claimSet
	paths  [][]gridgraph.Coord
	target int
	log    *zap.Logger
	err    error
}

// branch is an unclaimed neighbour seen from a junction.
type branch struct {
	to      gridgraph.Coord
	entry   int64 // weight of the junction-to neighbour edge
	subtree int64 // unclaimed weight behind the neighbour
	load    int64 // entry + subtree
}

// walk dispatches to the configured policy.
func (p *planner) walk(agent int, at gridgraph.Coord) {
	switch p.opts.Policy {
	case PolicySerial:
		p.serial(agent, at)
	case PolicyAlwaysFork:
		p.alwaysFork(agent, at)
	case PolicyCostAware:
		p.costAware(agent, at)
	}
}

// branches lists the unclaimed neighbours of at in gridgraph order.
func (p *planner) branches(at gridgraph.Coord) []branch {
	var out []branch
	for _, n := range p.g.Neighbours(at) {
		if p.claims.claimed(n) {
			continue
		}
		entry := p.g.Weight(at, n)
		subtree := dfs.ReachableWeight(p.g, n, p.claims.claimed)
		out = append(out, branch{
			to:      n,
			entry:   entry,
			subtree: subtree,
			load:    entry + subtree,
		})
	}

	return out
}

func (p *planner) done() bool { return p.claims.len() == p.target }

// step claims n for agent and appends it. Returns false if n was taken.
func (p *planner) step(agent int, n gridgraph.Coord) bool {
	if !p.claims.claim(n, agent) {
		return false
	}
	p.paths[agent] = append(p.paths[agent], n)

	return true
}

// spawn creates a clone at junction at, steps it into b and explores it.
func (p *planner) spawn(at gridgraph.Coord, b branch) {
	if p.claims.claimed(b.to) {
		return
	}
	clone := len(p.paths)
	p.paths = append(p.paths, []gridgraph.Coord{at})
	p.step(clone, b.to)
	p.walk(clone, b.to)
}

// returnTo appends the tree path from the agent's current end back to junction.
func (p *planner) returnTo(agent int, junction gridgraph.Coord) {
	path := p.paths[agent]
	end := path[len(path)-1]
	if end == junction {
		return
	}
	back := dfs.PathBetween(p.g, end, junction)
	if back == nil {
		p.err = fmt.Errorf("%w: agent %d from %v to %v", ErrNoReturnPath, agent, end, junction)
		return
	}
	p.paths[agent] = append(path, back[1:]...)
}

// serial explores depth-first, smallest subtree first, appending at on unwind.
func (p *planner) serial(agent int, at gridgraph.Coord) {
	bs := p.branches(at)
	sort.SliceStable(bs, func(i, j int) bool { return bs[i].subtree < bs[j].subtree })
	for _, b := range bs {
		if p.done() {
			return
		}
		if !p.step(agent, b.to) {
			continue
		}
		p.serial(agent, b.to)
		if p.done() {
			return
		}
		p.paths[agent] = append(p.paths[agent], at)
	}
}

// alwaysFork keeps the largest subtree and forks every other branch.
func (p *planner) alwaysFork(agent int, at gridgraph.Coord) {
	for {
		bs := p.branches(at)
		if len(bs) == 0 {
			return
		}
		sort.SliceStable(bs, func(i, j int) bool { return bs[i].subtree > bs[j].subtree })
		for _, side := range bs[1:] {
			p.decision(at, side, bs[0], true)
			p.spawn(at, side)
		}
		if !p.step(agent, bs[0].to) {
			continue
		}
		at = bs[0].to
	}
}

// costAware forks side branches that pay off, detours into the rest and then
// follows the main branch.
func (p *planner) costAware(agent int, at gridgraph.Coord) {
	for p.err == nil {
		bs := p.branches(at)
		if len(bs) == 0 {
			return
		}
		sortHeaviestFirst(bs)
		main := bs[0]

		var detours []branch
		for _, side := range bs[1:] {
			fork := p.shouldFork(side, main)
			p.decision(at, side, main, fork)
			if fork {
				p.spawn(at, side)
			} else {
				detours = append(detours, side)
			}
		}

		sort.SliceStable(detours, func(i, j int) bool { return detours[i].load < detours[j].load })
		for _, d := range detours {
			if !p.step(agent, d.to) {
				continue
			}
			p.costAware(agent, d.to)
			p.returnTo(agent, at)
			if p.err != nil {
				return
			}
		}

		if !p.step(agent, main.to) {
			continue
		}
		at = main.to
	}
}

// shouldFork applies the cost-aware rule to one side branch.
func (p *planner) shouldFork(side, main branch) bool {
	c := p.opts.ForkCost
	if c >= 2*side.load {
		return false
	}

	return 2*side.entry > c || float64(side.load) >= p.opts.LoadRatio*float64(main.load)
}

func (p *planner) decision(at gridgraph.Coord, side, main branch, fork bool) {
	if ce := p.log.Check(zap.DebugLevel, "branch decision"); ce != nil {
		verdict := "detour"
		if fork {
			verdict = "fork"
		}
		ce.Write(
			zap.Stringer("junction", at),
			zap.Stringer("branch", side.to),
			zap.Int64("entry", side.entry),
			zap.Int64("subtree", side.subtree),
			zap.Int64("load", side.load),
			zap.Int64("main_load", main.load),
			zap.String("decision", verdict))
	}
}

// sortHeaviestFirst orders branches by load, descending; ties keep
// neighbour order.
func sortHeaviestFirst(bs []branch) {
	sort.SliceStable(bs, func(i, j int) bool { return bs[i].load > bs[j].load })
}
