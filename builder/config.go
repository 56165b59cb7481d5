// SPDX-License-Identifier: MIT
// Package: lvlath-mst/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil                      (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn          (constant DefaultEdgeWeight)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
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

// weight draws the next edge weight.
func (c builderConfig) weight() int64 {
	return c.weightFn(c.rng)
}
