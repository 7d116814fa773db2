// SPDX-License-Identifier: MIT
// Package: clonemaze/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil              (constructors needing randomness fail with ErrNeedRandSource)
//   • weightFn = DefaultWeightFn  (every passage costs 1)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for every passage a constructor opens without an
	// explicit weight.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next passage weight and validates it.
func (cfg builderConfig) weight(method string) (int64, error) {
	w := cfg.weightFn(cfg.rng)
	if err := validateWeight(method, w); err != nil {
		return 0, err
	}

	return w, nil
}
