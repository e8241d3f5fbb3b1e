// SPDX-License-Identifier: MIT
// Package: navgraph/builder
//
// validators.go - parameter checks shared by constructors.

package builder

import "fmt"

// validateMin returns ErrTooFewVertices wrapped with method context when got < min.
// Complexity: O(1).
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability returns ErrInvalidProbability unless p ∈ [0,1].
// NaN is rejected as well.
// Complexity: O(1).
func validateProbability(method string, p float64) error {
	if !(p >= minProbability && p <= maxProbability) {
		return fmt.Errorf("%s: p=%g not in [%.1f,%.1f]: %w", method, p, minProbability, maxProbability, ErrInvalidProbability)
	}

	return nil
}
