package spatial

import (
	"github.com/katalvlaran/navgraph/core"
	"github.com/paulmach/orb"
)

// Node is the default payload of a spatial graph.
type Node struct {
	Pos   orb.Point
	Color core.Color
}

// NewNode returns a node at pos with the default color.
func NewNode(pos orb.Point) Node {
	return Node{Pos: pos, Color: core.DefaultNodeColor}
}

// Position implements core.Positioned.
func (n Node) Position() orb.Point { return n.Pos }

// NodeColor implements core.Colored.
func (n Node) NodeColor() core.Color { return n.Color }

// WithPosition implements Mover.
func (n Node) WithPosition(pos orb.Point) Node {
	n.Pos = pos
	return n
}

// WithColor implements Recolorer.
func (n Node) WithColor(c core.Color) Node {
	n.Color = c
	return n
}
