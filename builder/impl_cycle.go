// SPDX-License-Identifier: MIT
// Package: navgraph/builder
//
// impl_cycle.go - Cycle(n): ring 0→1→…→n-1→0.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Adds n fresh nodes; connection i joins i→(i+1) mod n.
//   - Directed graphs get one arc per step; undirected ones get the mirror.
//
// Complexity: O(n) time, O(n) space for the index slice.

package builder

import "github.com/katalvlaran/navgraph/core"

// Cycle returns a Constructor that appends an n-node ring.
func Cycle[N any](n int) Constructor[N] {
	return func(g *core.Graph[N], cfg builderConfig, newNode func(int) N) error {
		if err := validateMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		ids := addNodes(g, n, newNode)
		for i := 0; i < n; i++ {
			if err := connect(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
