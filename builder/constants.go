// SPDX-License-Identifier: MIT
// Package: navgraph/builder
//
// constants.go - method tags and minimum sizes shared by constructors.

package builder

// Method tags prefix every constructor error.
const (
	methodCycle        = "Cycle"
	methodPath         = "Path"
	methodStar         = "Star"
	methodWheel        = "Wheel"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"
)

// Minimum node counts.
const (
	// A ring needs three nodes to avoid loops or parallel connections.
	minCycleNodes = 3
	// A path of fewer than two nodes has no connections.
	minPathNodes = 2
	// Center plus at least one leaf.
	minStarNodes = 2
	// Outer ring of n-1 ≥ 3 plus the hub.
	minWheelNodes = 4
	minCompleteNodes = 1
	minRandomNodes   = 1
)

// Probability bounds for RandomSparse, inclusive.
const (
	minProbability = 0.0
	maxProbability = 1.0
)
