// SPDX-License-Identifier: MIT
// Package: navgraph/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi-like sampling.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource); p ∈ {0,1}
//     is deterministic and needs no RNG.
//   - Undirected: unordered pairs {i,j}, i<j. Directed: ordered pairs (i,j),
//     self-loops only when the graph allows them. Pairs the uniqueness policy
//     would reject are skipped without drawing.
//
// Complexity: O(n²) trials.
//
// Determinism: trials run i asc, j asc, so a fixed seed reproduces the graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/navgraph/core"
)

// RandomSparse returns a Constructor that samples n nodes with independent
// connection probability p.
func RandomSparse[N any](n int, p float64) Constructor[N] {
	return func(g *core.Graph[N], cfg builderConfig, newNode func(int) N) error {
		if err := validateMin(methodRandomSparse, n, minRandomNodes); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > minProbability && p < maxProbability {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := addNodes(g, n, newNode)
		trial := func() bool {
			switch {
			case p == minProbability:
				return false
			case p == maxProbability:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}

		for i := 0; i < n; i++ {
			j := i + 1
			if g.Directed() {
				j = 0
			}
			for ; j < n; j++ {
				if i == j && !g.Looped() {
					continue
				}
				if !g.IsUniqueConnection(ids[i], ids[j]) {
					continue
				}
				if !trial() {
					continue
				}
				if err := connect(g, cfg, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
