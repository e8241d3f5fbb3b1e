// SPDX-License-Identifier: MIT
// Package: navgraph/builder
//
// impl_star.go - Star(n): one center joined to n-1 leaves.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The center is the first node created; spokes run center→leaf in creation order.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/navgraph/core"

// Star returns a Constructor that appends a center plus n-1 leaves.
func Star[N any](n int) Constructor[N] {
	return func(g *core.Graph[N], cfg builderConfig, newNode func(int) N) error {
		if err := validateMin(methodStar, n, minStarNodes); err != nil {
			return err
		}
		ids := addNodes(g, n, newNode)
		for _, leaf := range ids[1:] {
			if err := connect(g, cfg, methodStar, ids[0], leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
