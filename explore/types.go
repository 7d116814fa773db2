// SPDX-License-Identifier: MIT

package explore

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/clonemaze/gridgraph"
)

var (
	// ErrNilGraph is returned when Plan receives a nil graph.
	ErrNilGraph = errors.New("explore: graph is nil")

	// ErrStartNotFound indicates the start vertex is not in a non-empty graph.
	ErrStartNotFound = errors.New("explore: start vertex not found")

	// ErrNegativeForkCost is returned for a fork cost below zero.
	ErrNegativeForkCost = errors.New("explore: fork cost must be non-negative")

	// ErrBadLoadRatio is returned for a load ratio that is not positive.
	ErrBadLoadRatio = errors.New("explore: load ratio must be positive")

	// ErrUnknownPolicy is returned for an unrecognized policy.
	ErrUnknownPolicy = errors.New("explore: unknown policy")

	// ErrDisconnected indicates vertices unreachable from the start.
	ErrDisconnected = errors.New("explore: graph is disconnected")

	// ErrCyclicGraph indicates the input is not a forest.
	ErrCyclicGraph = errors.New("explore: graph contains a cycle")

	// ErrNoReturnPath indicates that no path back to a junction exists after a
	// detour. It signals a broken tree and is never expected on valid input.
	ErrNoReturnPath = errors.New("explore: no return path to junction")
)

// Policy selects how an agent handles a junction.
type Policy int

const (
	// PolicySerial never forks.
	PolicySerial Policy = iota
	// PolicyAlwaysFork forks every side branch.
	PolicyAlwaysFork
	// PolicyCostAware forks only where it is expected to pay off.
	PolicyCostAware
)

// Policies lists every policy in declaration order.
var Policies = []Policy{PolicySerial, PolicyAlwaysFork, PolicyCostAware}

// String returns the configuration name of p.
func (p Policy) String() string {
	switch p {
	case PolicySerial:
		return "serial"
	case PolicyAlwaysFork:
		return "always_fork"
	case PolicyCostAware:
		return "cost_aware"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps a configuration name to a Policy.
func ParsePolicy(s string) (Policy, error) {
	for _, p := range Policies {
		if p.String() == s {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// DefaultLoadRatio is the share of the main branch's load at which a side
// branch is forked regardless of its entry weight.
const DefaultLoadRatio = 0.6

// Options configures Plan.
type Options struct {
	Policy    Policy
	ForkCost  int64
	LoadRatio float64
	Logger    *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns cost-aware planning with zero fork cost, the default
// load ratio and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Policy:    PolicyCostAware,
		LoadRatio: DefaultLoadRatio,
		Logger:    zap.NewNop(),
	}
}

// WithPolicy selects the junction policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithForkCost sets the one-time cost of creating a clone.
func WithForkCost(c int64) Option {
	return func(o *Options) { o.ForkCost = c }
}

// WithLoadRatio sets the cost-aware load-balancing threshold.
func WithLoadRatio(r float64) Option {
	return func(o *Options) { o.LoadRatio = r }
}

// WithLogger routes branch decisions to l at debug level. nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is one planning run.
type Result struct {
	Policy   Policy
	ForkCost int64

	// Paths holds one vertex sequence per agent; index 0 is the original agent.
	Paths [][]gridgraph.Coord

	// Actions holds the per-agent cost lists (see package accounting).
	Actions [][]int64

	// Totals is the sum of each agent's actions.
	Totals []int64

	// MaxTotalCost is the worst-case completion cost over all agents.
	MaxTotalCost int64

	// CloneCount equals len(Paths) - 1.
	CloneCount int

	// Owners maps every vertex to the agent that claimed it.
	Owners map[gridgraph.Coord]int
}
