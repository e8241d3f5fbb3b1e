// Package astar defines the graph contract, options, heuristics and sentinel
// errors for A* search over navgraph graphs.
package astar

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/navgraph/core"
	"github.com/paulmach/orb"
)

// Sentinel errors for A* execution.
var (
	// ErrNilGraph is returned if a nil graph is passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrStartNotFound is returned when the start index is not a live node.
	ErrStartNotFound = errors.New("astar: start node not found")

	// ErrGoalNotFound is returned when the goal index is not a live node.
	ErrGoalNotFound = errors.New("astar: goal node not found")

	// ErrNoPath is returned when the open set is exhausted before reaching the goal.
	ErrNoPath = errors.New("astar: no path between start and goal")
)

// Graph is the read-only view A* needs. spatial.Graph, gridgraph.GridGraph and
// navmesh graphs satisfy it.
type Graph interface {
	IsNodeValid(idx int) bool
	NodeConnections(idx int) []*core.Connection
	NodePos(idx int) orb.Point
}

// Scaler is implemented by graphs that know how world distance maps to cost
// units. FindPath takes the scale from it unless WithHeuristicScale is given.
// gridgraph.GridGraph implements it.
type Scaler interface {
	HeuristicScale() float64
}

// Heuristic estimates the remaining cost from the absolute axis deltas
// |dx|, |dy| between a node and the goal.
type Heuristic func(dx, dy float64) float64

// Manhattan returns dx + dy.
func Manhattan(dx, dy float64) float64 { return dx + dy }

// Euclidean returns the straight-line distance.
func Euclidean(dx, dy float64) float64 { return math.Sqrt(dx*dx + dy*dy) }

// SquaredEuclidean returns dx² + dy². It skips the square root and
// overestimates beyond unit distances, so paths may be suboptimal.
func SquaredEuclidean(dx, dy float64) float64 { return dx*dx + dy*dy }

// Octile returns the 8-way grid distance with diagonal steps of √2.
func Octile(dx, dy float64) float64 {
	return (dx + dy) + (math.Sqrt2-2)*math.Min(dx, dy)
}

// Chebyshev returns max(dx, dy).
func Chebyshev(dx, dy float64) float64 { return math.Max(dx, dy) }

// HeuristicKind enumerates the built-in heuristics for selection by UI or config.
type HeuristicKind int

const (
	KindManhattan HeuristicKind = iota
	KindEuclidean
	KindSquaredEuclidean
	KindOctile
	KindChebyshev
)

// Func returns the heuristic for k; unknown kinds fall back to Chebyshev.
func (k HeuristicKind) Func() Heuristic {
	switch k {
	case KindManhattan:
		return Manhattan
	case KindEuclidean:
		return Euclidean
	case KindSquaredEuclidean:
		return SquaredEuclidean
	case KindOctile:
		return Octile
	default:
		return Chebyshev
	}
}

// String returns the heuristic name.
func (k HeuristicKind) String() string {
	switch k {
	case KindManhattan:
		return "manhattan"
	case KindEuclidean:
		return "euclidean"
	case KindSquaredEuclidean:
		return "squared-euclidean"
	case KindOctile:
		return "octile"
	case KindChebyshev:
		return "chebyshev"
	default:
		return "unknown"
	}
}

// Option configures a FindPath call.
type Option func(*Options)

// Options holds parameters and callbacks for one search.
type Options struct {
	// Ctx allows cancellation; checked once per expansion.
	Ctx context.Context

	// Heuristic estimates remaining cost. Defaults to Chebyshev.
	Heuristic Heuristic

	// HeuristicScale multiplies heuristic values, mapping world distance to
	// cost units. Defaults to the graph's Scaler value, or 1 without one.
	HeuristicScale float64

	// OnExpand is called each time a node is closed, with its g-cost.
	OnExpand func(idx int, g float64)

	scaleSet bool
}

// DefaultOptions returns Options with Chebyshev, scale 1 and a background context.
//
// The heuristic receives |dx|, |dy| in world units, the same space as NodePos.
// FindPath replaces the scale with the graph's HeuristicScale when the graph
// implements Scaler and WithHeuristicScale was not given, so a grid with
// cellSize 10 compares 10 world units against one cell of step cost.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Heuristic:      Chebyshev,
		HeuristicScale: 1,
		OnExpand:       func(int, float64) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic sets the heuristic. Panics on nil.
func WithHeuristic(h Heuristic) Option {
	if h == nil {
		panic("astar: WithHeuristic(nil)")
	}

	return func(o *Options) { o.Heuristic = h }
}

// WithHeuristicScale multiplies every heuristic value by s. Panics unless s ≥ 0 and finite.
func WithHeuristicScale(s float64) Option {
	if !(s >= 0) || math.IsInf(s, 0) {
		panic("astar: WithHeuristicScale requires a finite s >= 0")
	}

	return func(o *Options) {
		o.HeuristicScale = s
		o.scaleSet = true
	}
}

// WithOnExpand registers a callback run whenever a node is closed.
func WithOnExpand(fn func(idx int, g float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result is a found path.
type Result struct {
	// Nodes lists node indices from start to goal inclusive.
	Nodes []int
	// Connections lists the traversed connections; len == len(Nodes)-1.
	Connections []*core.Connection
	// Cost is the sum of connection costs.
	Cost float64
	// Expanded counts closed nodes, reopenings included.
	Expanded int
}

// Points returns the world positions of the path nodes.
func (r *Result) Points(g Graph) []orb.Point {
	out := make([]orb.Point, len(r.Nodes))
	for i, idx := range r.Nodes {
		out[i] = g.NodePos(idx)
	}

	return out
}
