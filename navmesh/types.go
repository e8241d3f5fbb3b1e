package navmesh

import (
	"errors"

	"github.com/dhconnelly/rtreego"
	"github.com/katalvlaran/navgraph/core"
	"github.com/paulmach/orb"
)

// NoLine marks a node that does not sit on a mesh line (path endpoints).
const NoLine = -1

var (
	// ErrUnknownLine indicates a triangle referencing a line index not in the input.
	ErrUnknownLine = errors.New("navmesh: triangle references unknown line")
	// ErrDuplicateLine indicates two input lines sharing an index.
	ErrDuplicateLine = errors.New("navmesh: duplicate line index")
	// ErrOutsideMesh indicates a path endpoint that lies in no triangle.
	ErrOutsideMesh = errors.New("navmesh: point is outside the mesh")
)

// Line is one edge of the triangulated walkable area.
type Line struct {
	Index  int
	P1, P2 orb.Point
}

// Midpoint returns the centre of the line.
func (l Line) Midpoint() orb.Point {
	return orb.Point{(l.P1[0] + l.P2[0]) / 2, (l.P1[1] + l.P2[1]) / 2}
}

// Triangle is one cell of the triangulation; Lines holds the indices of its edges.
type Triangle struct {
	Points [3]orb.Point
	Lines  [3]int
}

// Ring returns the closed outline of t.
func (t Triangle) Ring() orb.Ring {
	return orb.Ring{t.Points[0], t.Points[1], t.Points[2], t.Points[0]}
}

// Node is a nav-graph node: a portal midpoint or a path endpoint.
type Node struct {
	Pos   orb.Point
	Line  int
	Color core.Color
}

// Position implements core.Positioned.
func (n Node) Position() orb.Point { return n.Pos }

// NodeColor implements core.Colored.
func (n Node) NodeColor() core.Color { return n.Color }

// WithColor implements spatial.Recolorer.
func (n Node) WithColor(c core.Color) Node {
	n.Color = c
	return n
}

// triEntry stores a triangle's bounding box in the R-tree.
type triEntry struct {
	idx  int
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *triEntry) Bounds() rtreego.Rect { return e.bbox }
