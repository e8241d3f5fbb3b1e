// SPDX-License-Identifier: MIT
// Package: navgraph/builder
//
// impl_wheel.go - Wheel(n) = Cycle(n-1) plus a hub.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices), so the outer ring has at least 3 nodes.
//   - The ring is created first; the hub is the last node and spokes run hub→rim.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/navgraph/core"

// Wheel returns a Constructor that appends an n-node wheel.
func Wheel[N any](n int) Constructor[N] {
	return func(g *core.Graph[N], cfg builderConfig, newNode func(int) N) error {
		if err := validateMin(methodWheel, n, minWheelNodes); err != nil {
			return err
		}
		rim := addNodes(g, n-1, newNode)
		for i := range rim {
			if err := connect(g, cfg, methodWheel, rim[i], rim[(i+1)%len(rim)]); err != nil {
				return err
			}
		}
		hub := addNodes(g, 1, newNode)[0]
		for _, r := range rim {
			if err := connect(g, cfg, methodWheel, hub, r); err != nil {
				return err
			}
		}

		return nil
	}
}
