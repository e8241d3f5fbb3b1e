package navmesh

import (
	"context"
	"fmt"

	"github.com/dhconnelly/rtreego"
	"github.com/katalvlaran/navgraph/astar"
	"github.com/katalvlaran/navgraph/core"
	"github.com/katalvlaran/navgraph/internal/logging"
	"github.com/katalvlaran/navgraph/spatial"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/sirupsen/logrus"
)

const (
	treeDim     = 2
	treeMinFill = 25
	treeMaxFill = 50
	boxPadding  = 1e-9
)

// NavGraph is the portal graph of a triangulated walkable area. Nodes sit at
// the midpoints of lines shared by two or more triangles; nodes on the same
// triangle are connected with their Euclidean distance as cost.
type NavGraph struct {
	*spatial.Graph[Node]

	triangles []Triangle
	lineNode  map[int]int
	tree      *rtreego.Rtree
}

// Build creates the nav graph from an already triangulated mesh.
//
// Implementation:
//   - Stage 1: Count triangles per line; every line used by more than one
//     triangle becomes a node at its midpoint, in input line order.
//   - Stage 2: Per triangle, connect its nodes: 2 nodes → 1 connection,
//     3 nodes → 3 connections. Pairs already connected are skipped.
//   - Stage 3: Set every cost to the Euclidean distance.
//   - Stage 4: Bulk-load triangle bounds into an R-tree for point lookup.
//
// Returns ErrDuplicateLine or ErrUnknownLine for inconsistent input.
// Complexity: O(L + T log T).
func Build(lines []Line, triangles []Triangle, opts ...spatial.Option) (*NavGraph, error) {
	byIndex := make(map[int]Line, len(lines))
	for _, l := range lines {
		if _, dup := byIndex[l.Index]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateLine, l.Index)
		}
		byIndex[l.Index] = l
	}
	uses := make(map[int]int, len(lines))
	for ti, t := range triangles {
		for _, li := range t.Lines {
			if _, ok := byIndex[li]; !ok {
				return nil, fmt.Errorf("%w: triangle %d, line %d", ErrUnknownLine, ti, li)
			}
			uses[li]++
		}
	}

	ng := &NavGraph{
		Graph:     spatial.New[Node](nil, opts...),
		triangles: append([]Triangle(nil), triangles...),
		lineNode:  make(map[int]int),
	}
	for _, l := range lines {
		if uses[l.Index] > 1 {
			ng.lineNode[l.Index] = ng.AddNode(Node{Pos: l.Midpoint(), Line: l.Index, Color: core.DefaultNodeColor})
		}
	}

	for _, t := range ng.triangles {
		nodes := ng.portals(t)
		switch len(nodes) {
		case 2:
			ng.link(nodes[0], nodes[1])
		case 3:
			ng.link(nodes[0], nodes[1])
			ng.link(nodes[1], nodes[2])
			ng.link(nodes[2], nodes[0])
		}
	}
	ng.SetConnectionCostsToDistance()

	entries := make([]rtreego.Spatial, len(ng.triangles))
	for i, t := range ng.triangles {
		entries[i] = &triEntry{idx: i, bbox: triangleBounds(t)}
	}
	ng.tree = rtreego.NewTree(treeDim, treeMinFill, treeMaxFill, entries...)

	return ng, nil
}

// portals returns the nodes on t's lines in line order.
func (ng *NavGraph) portals(t Triangle) []int {
	out := make([]int, 0, 3)
	for _, li := range t.Lines {
		if idx, ok := ng.lineNode[li]; ok {
			out = append(out, idx)
		}
	}

	return out
}

func (ng *NavGraph) link(a, b int) {
	if a == b || !ng.IsUniqueConnection(a, b) {
		return
	}
	_, _ = ng.AddConnection(a, b, 0)
}

func triangleBounds(t Triangle) rtreego.Rect {
	b := orb.MultiPoint(t.Points[:]).Bound().Pad(boxPadding)
	r, err := rtreego.NewRectFromPoints(rtreego.Point{b.Min[0], b.Min[1]}, rtreego.Point{b.Max[0], b.Max[1]})
	if err != nil {
		return rtreego.Point{b.Min[0], b.Min[1]}.ToRect(boxPadding)
	}

	return r
}

// NodeIdxFromLineIdx returns the node sitting on line, or core.InvalidNodeIndex.
func (ng *NavGraph) NodeIdxFromLineIdx(line int) int {
	if idx, ok := ng.lineNode[line]; ok {
		return idx
	}

	return core.InvalidNodeIndex
}

// Triangles returns the mesh triangles in input order.
func (ng *NavGraph) Triangles() []Triangle { return ng.triangles }

// TriangleAt returns the index of the first triangle (input order) containing
// pos, boundary included, or -1.
func (ng *NavGraph) TriangleAt(pos orb.Point) int {
	best := -1
	for _, s := range ng.tree.SearchIntersect(rtreego.Point{pos[0], pos[1]}.ToRect(boxPadding)) {
		e := s.(*triEntry)
		if (best == -1 || e.idx < best) && planar.RingContains(ng.triangles[e.idx].Ring(), pos) {
			best = e.idx
		}
	}

	return best
}

// FindPath returns world points from from to to across the mesh.
//
// Implementation:
//   - Stage 1: Locate the triangles of from and to; same triangle → straight line.
//   - Stage 2: Clone the graph, add from and to as nodes, and connect each to the
//     portal nodes of its triangle.
//   - Stage 3: Run A* with h (nil → astar's default) on the clone.
//
// The receiver is not modified. Returns ErrOutsideMesh or astar.ErrNoPath.
func (ng *NavGraph) FindPath(ctx context.Context, from, to orb.Point, h astar.Heuristic) ([]orb.Point, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ft, tt := ng.TriangleAt(from), ng.TriangleAt(to)
	if ft < 0 {
		return nil, fmt.Errorf("%w: start %v", ErrOutsideMesh, [2]float64(from))
	}
	if tt < 0 {
		return nil, fmt.Errorf("%w: goal %v", ErrOutsideMesh, [2]float64(to))
	}
	if ft == tt {
		return []orb.Point{from, to}, nil
	}

	work := ng.Graph.Clone()
	start := work.AddNode(Node{Pos: from, Line: NoLine, Color: core.HighlightColor})
	goal := work.AddNode(Node{Pos: to, Line: NoLine, Color: core.HighlightColor})
	for _, p := range ng.portals(ng.triangles[ft]) {
		_, _ = work.AddConnection(start, p, planar.Distance(from, work.NodePos(p)))
	}
	for _, p := range ng.portals(ng.triangles[tt]) {
		_, _ = work.AddConnection(p, goal, planar.Distance(work.NodePos(p), to))
	}

	opts := []astar.Option{astar.WithContext(ctx)}
	if h != nil {
		opts = append(opts, astar.WithHeuristic(h))
	}
	res, err := astar.FindPath(work, start, goal, opts...)
	if err != nil {
		return nil, err
	}

	logging.Logger(ctx).WithFields(logrus.Fields{
		"triangles": [2]int{ft, tt},
		"points":    len(res.Nodes),
		"cost":      res.Cost,
	}).Debug("navmesh: path found")

	return res.Points(work), nil
}
