package spatial

import (
	"errors"
	"fmt"
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/katalvlaran/navgraph/core"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Default hit-test sizes in world units.
const (
	DefaultNodeRadius          = 3.0
	DefaultConnectionTolerance = 1.0

	// pickFactor scales the node radius into the click radius.
	pickFactor = 1.5
)

var (
	// ErrNotMovable indicates the payload type has no WithPosition method.
	ErrNotMovable = errors.New("spatial: node payload does not support WithPosition")
	// ErrNotColorable indicates the payload type has no WithColor method.
	ErrNotColorable = errors.New("spatial: node payload does not support WithColor")
)

// Mover is implemented by payloads that can be relocated.
type Mover[N any] interface {
	WithPosition(pos orb.Point) N
}

// Recolorer is implemented by payloads whose display color can be replaced.
type Recolorer[N any] interface {
	WithColor(c core.Color) N
}

// Option configures a spatial Graph.
type Option func(*config)

type config struct {
	nodeRadius    float64
	connTolerance float64
}

// WithNodeRadius sets the drawn node radius; clicks within 1.5× this radius hit the node.
// Panics if r is not positive.
func WithNodeRadius(r float64) Option {
	if !(r > 0) {
		panic("spatial: WithNodeRadius requires r > 0")
	}

	return func(c *config) { c.nodeRadius = r }
}

// WithConnectionTolerance sets the max perpendicular distance for ConnectionAtPosition.
// Panics if t is not positive.
func WithConnectionTolerance(t float64) Option {
	if !(t > 0) {
		panic("spatial: WithConnectionTolerance requires t > 0")
	}

	return func(c *config) { c.connTolerance = t }
}

// Graph is a core.Graph whose payloads have a world position.
//
// Hit tests are answered from two R-trees (nodes, connection segments) that are
// rebuilt lazily whenever Version() moved since the last query. Queries
// therefore mutate internal state and must not run concurrently.
type Graph[N core.Positioned] struct {
	*core.Graph[N]
	config

	nodeTree *rtreego.Rtree
	connTree *rtreego.Rtree
	indexed  uint64
}

// New creates an empty spatial graph.
func New[N core.Positioned](gopts []core.GraphOption, opts ...Option) *Graph[N] {
	return FromCore(core.NewGraph[N](gopts...), opts...)
}

// FromCore wraps an existing graph. The graph is shared, not copied.
func FromCore[N core.Positioned](g *core.Graph[N], opts ...Option) *Graph[N] {
	cfg := config{nodeRadius: DefaultNodeRadius, connTolerance: DefaultConnectionTolerance}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[N]{Graph: g, config: cfg}
}

// NodeRadius returns the configured node radius.
func (g *Graph[N]) NodeRadius() float64 { return g.nodeRadius }

// NodePos returns the world position of idx, or the zero point for invalid indices.
func (g *Graph[N]) NodePos(idx int) orb.Point {
	n, ok := g.Node(idx)
	if !ok {
		return orb.Point{}
	}

	return n.Position()
}

// NodeIdxAtWorldPos returns the node whose position lies within 1.5× the node
// radius of pos. The nearest candidate wins; equal distances go to the lower
// index. Returns core.InvalidNodeIndex when nothing is hit.
func (g *Graph[N]) NodeIdxAtWorldPos(pos orb.Point) int {
	g.ensureIndex()
	reach := g.nodeRadius * pickFactor

	best, bestDist := core.InvalidNodeIndex, math.Inf(1)
	for _, s := range g.nodeTree.SearchIntersect(toPoint(pos).ToRect(reach)) {
		e := s.(*nodeEntry)
		d := planar.Distance(e.pos, pos)
		if d > reach {
			continue
		}
		if d < bestDist || (d == bestDist && e.idx < best) {
			best, bestDist = e.idx, d
		}
	}

	return best
}

// NearestNode returns the live node closest to pos regardless of distance, or
// core.InvalidNodeIndex for an empty graph.
func (g *Graph[N]) NearestNode(pos orb.Point) int {
	if g.NodeCount() == 0 {
		return core.InvalidNodeIndex
	}
	g.ensureIndex()
	s := g.nodeTree.NearestNeighbor(toPoint(pos))
	if s == nil {
		return core.InvalidNodeIndex
	}

	return s.(*nodeEntry).idx
}

// ConnectionAtPosition returns the connection whose segment passes within the
// connection tolerance of pos. The nearest segment wins. Returns nil when
// nothing is hit. For undirected pairs the caller-created entry is returned.
func (g *Graph[N]) ConnectionAtPosition(pos orb.Point) *core.Connection {
	g.ensureIndex()

	var (
		hit      *connEntry
		bestDist = math.Inf(1)
	)
	for _, s := range g.connTree.SearchIntersect(toPoint(pos).ToRect(g.connTolerance)) {
		e := s.(*connEntry)
		d := planar.DistanceFromSegment(e.a, e.b, pos)
		if d >= g.connTolerance {
			continue
		}
		if d < bestDist || (d == bestDist && hit != nil && e.from < hit.from) {
			hit, bestDist = e, d
		}
	}
	if hit == nil {
		return nil
	}

	return g.Connection(hit.from, hit.to)
}

// SetConnectionCostsToDistance sets every connection's cost to the Euclidean
// distance between its endpoints. Mirrors follow automatically.
func (g *Graph[N]) SetConnectionCostsToDistance() {
	for _, c := range g.Connections() {
		// Distances are finite and non-negative, so SetCost cannot fail.
		_ = c.SetCost(planar.Distance(g.NodePos(c.From()), g.NodePos(c.To())))
	}
}

// SetNodePosition relocates idx. The payload type must implement Mover[N].
// Returns core.ErrInvalidNode or ErrNotMovable.
func (g *Graph[N]) SetNodePosition(idx int, pos orb.Point) error {
	n, ok := g.Node(idx)
	if !ok {
		return fmt.Errorf("%w: %d", core.ErrInvalidNode, idx)
	}
	m, ok := any(n).(Mover[N])
	if !ok {
		return ErrNotMovable
	}

	return g.SetNode(idx, m.WithPosition(pos))
}

// SetNodesColor recolors every listed node. The payload type must implement
// Recolorer[N]. Invalid indices are skipped.
func (g *Graph[N]) SetNodesColor(idxs []int, color core.Color) error {
	for _, idx := range idxs {
		n, ok := g.Node(idx)
		if !ok {
			continue
		}
		r, ok := any(n).(Recolorer[N])
		if !ok {
			return ErrNotColorable
		}
		if err := g.SetNode(idx, r.WithColor(color)); err != nil {
			return err
		}
	}

	return nil
}

// Clone returns a deep copy with the same options. Its index is built on first use.
func (g *Graph[N]) Clone() *Graph[N] {
	return &Graph[N]{Graph: g.Graph.Clone(), config: g.config}
}
