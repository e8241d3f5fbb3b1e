// SPDX-License-Identifier: MIT
// Package: navgraph/builder
//
// config.go - immutable builder configuration resolved from options.

package builder

import "math/rand"

// builderConfig is resolved once per BuildGraph call and passed by value to
// every constructor.
type builderConfig struct {
	// rng drives stochastic constructors (RandomSparse) and weight functions.
	// nil unless WithSeed/WithRand was supplied.
	rng *rand.Rand

	// weightFn produces each connection cost. Default: constant DefaultEdgeWeight.
	weightFn WeightFn
}

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
