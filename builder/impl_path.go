// SPDX-License-Identifier: MIT
// Package: navgraph/builder
//
// impl_path.go - Path(n): chain 0→1→…→n-1.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - n-1 connections in index order.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/navgraph/core"

// Path returns a Constructor that appends an n-node chain.
func Path[N any](n int) Constructor[N] {
	return func(g *core.Graph[N], cfg builderConfig, newNode func(int) N) error {
		if err := validateMin(methodPath, n, minPathNodes); err != nil {
			return err
		}
		ids := addNodes(g, n, newNode)
		for i := 0; i+1 < n; i++ {
			if err := connect(g, cfg, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
