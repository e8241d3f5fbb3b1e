// Package eulerian classifies graphs by Eulerianity and builds Eulerian
// trails with Hierholzer's algorithm.
package eulerian

import (
	"context"
	"errors"
)

// Sentinel errors for trail construction.
var (
	// ErrNotEulerian is returned when FindTrail is asked for a NotEulerian graph.
	ErrNotEulerian = errors.New("eulerian: graph has no Eulerian trail")

	// ErrEulerianityMismatch is returned when the supplied classification
	// disagrees with the graph.
	ErrEulerianityMismatch = errors.New("eulerian: classification does not match graph")
)

// Eulerianity classifies whether a graph admits an Eulerian trail.
type Eulerianity int

const (
	// NotEulerian: no trail uses every connection exactly once.
	NotEulerian Eulerianity = iota
	// SemiEulerian: an open trail exists between the two odd (unbalanced) nodes.
	SemiEulerian
	// Eulerian: a closed circuit exists.
	Eulerian
)

// String returns the classification name.
func (e Eulerianity) String() string {
	switch e {
	case NotEulerian:
		return "not-eulerian"
	case SemiEulerian:
		return "semi-eulerian"
	case Eulerian:
		return "eulerian"
	default:
		return "unknown"
	}
}

// Option configures FindTrail.
type Option func(*Options)

// Options holds FindTrail parameters.
type Options struct {
	// Ctx allows cancellation; checked once per stack step.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
