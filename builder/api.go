// SPDX-License-Identifier: MIT
// Package: navgraph/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(newNode, gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Never panic at build time; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/navgraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. newNode creates the payload for a node about to be stored at
// the given index. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect the graph's direction, loop and uniqueness policies.
//   - Preserve determinism for the same config and call order.
type Constructor[N any] func(g *core.Graph[N], cfg builderConfig, newNode func(idx int) N) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Each constructor adds its own fresh nodes; composing two constructors yields
// two disjoint components unless a later constructor links them.
//
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph[N any](newNode func(idx int) N, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor[N]) (*core.Graph[N], error) {
	if newNode == nil {
		return nil, fmt.Errorf("BuildGraph: nil node factory: %w", ErrConstructFailed)
	}
	g := core.NewGraph[N](gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg, newNode); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addNodes appends n fresh nodes and returns their indices in creation order.
func addNodes[N any](g *core.Graph[N], n int, newNode func(idx int) N) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = g.AddNode(newNode(g.NextFreeNodeIndex()))
	}

	return out
}

// connect adds from→to weighted by cfg.weightFn, wrapping failures with method context.
func connect[N any](g *core.Graph[N], cfg builderConfig, method string, from, to int) error {
	w := cfg.weightFn(cfg.rng)
	if _, err := g.AddConnection(from, to, w); err != nil {
		return fmt.Errorf("%s: AddConnection(%d→%d, w=%g): %w", method, from, to, w, err)
	}

	return nil
}
