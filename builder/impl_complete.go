// SPDX-License-Identifier: MIT
// Package: navgraph/builder
//
// impl_complete.go - Complete(n): every pair of distinct nodes joined.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Undirected: one connection per unordered pair i<j.
//   - Directed: both i→j and j→i when the graph's uniqueness policy allows the
//     reverse; otherwise only i→j.
//
// Complexity: O(n²).

package builder

import "github.com/katalvlaran/navgraph/core"

// Complete returns a Constructor that appends the complete graph Kₙ.
func Complete[N any](n int) Constructor[N] {
	return func(g *core.Graph[N], cfg builderConfig, newNode func(int) N) error {
		if err := validateMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		ids := addNodes(g, n, newNode)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connect(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
				if g.Directed() && g.IsUniqueConnection(ids[j], ids[i]) {
					if err := connect(g, cfg, methodComplete, ids[j], ids[i]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
