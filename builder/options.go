// SPDX-License-Identifier: MIT
// Package: navgraph/builder
//
// options.go - functional options for BuildGraph.

package builder

import (
	"math/rand"
)

// BuilderOption configures BuildGraph. Invalid values panic at construction.
type BuilderOption func(*builderConfig)

// WithRand installs a caller-owned RNG.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the connection cost generator.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
