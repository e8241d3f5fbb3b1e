package spatial

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// R-tree branching factors: 2D, min 25, max 50 entries per node.
const (
	treeDim      = 2
	treeMinFill  = 25
	treeMaxFill  = 50
	pointPadding = 1e-6
)

// nodeEntry wraps a node position for R-tree storage.
type nodeEntry struct {
	idx  int
	pos  orb.Point
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *nodeEntry) Bounds() rtreego.Rect { return e.bbox }

// connEntry wraps a connection segment for R-tree storage.
type connEntry struct {
	from, to int
	a, b     orb.Point
	bbox     rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *connEntry) Bounds() rtreego.Rect { return e.bbox }

// toPoint converts an orb point for rtreego.
func toPoint(p orb.Point) rtreego.Point { return rtreego.Point{p[0], p[1]} }

// segmentBounds returns the axis-aligned box around a→b grown by pad on every side.
// NewRectFromPoints orders the corners, so any segment orientation is valid.
func segmentBounds(a, b orb.Point, pad float64) rtreego.Rect {
	bound := orb.MultiPoint{a, b}.Bound().Pad(pad)
	r, err := rtreego.NewRectFromPoints(toPoint(bound.Min), toPoint(bound.Max))
	if err != nil {
		// Unreachable for 2D points; fall back to a box around the first endpoint.
		return toPoint(a).ToRect(pad)
	}

	return r
}

// ensureIndex rebuilds both trees when the graph changed since the last build.
//
// Implementation:
//   - Stage 1: Compare Version() to the version of the last build.
//   - Stage 2: Bulk-load live nodes as near-point boxes.
//   - Stage 3: Bulk-load logical connections as padded segment boxes.
func (g *Graph[N]) ensureIndex() {
	if g.nodeTree != nil && g.indexed == g.Version() {
		return
	}

	nodes := make([]rtreego.Spatial, 0, g.NodeCount())
	for _, idx := range g.ActiveNodes() {
		p := g.NodePos(idx)
		nodes = append(nodes, &nodeEntry{idx: idx, pos: p, bbox: toPoint(p).ToRect(pointPadding)})
	}

	conns := make([]rtreego.Spatial, 0, g.ConnectionCount())
	for _, c := range g.Connections() {
		a, b := g.NodePos(c.From()), g.NodePos(c.To())
		conns = append(conns, &connEntry{
			from: c.From(), to: c.To(), a: a, b: b,
			bbox: segmentBounds(a, b, g.connTolerance),
		})
	}

	g.nodeTree = rtreego.NewTree(treeDim, treeMinFill, treeMaxFill, nodes...)
	g.connTree = rtreego.NewTree(treeDim, treeMinFill, treeMaxFill, conns...)
	g.indexed = g.Version()
}
