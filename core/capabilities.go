package core

import (
	"math"

	"github.com/paulmach/orb"
)

// Positioned is implemented by node payloads that live at a 2D world position.
type Positioned interface {
	Position() orb.Point
}

// Coster is implemented by node payloads that carry a traversal cost.
// Costs at or above a grid's impassable threshold mark the node as blocked.
type Coster interface {
	TraversalCost() int
}

// Colored is implemented by node payloads that carry their own display color.
type Colored interface {
	NodeColor() Color
}

// Color is an RGBA display color with components in [0,1].
type Color struct {
	R, G, B, A float32
}

// Default display colors.
var (
	DefaultNodeColor       = Color{R: 0.7, G: 0.7, B: 0.7, A: 1}
	DefaultConnectionColor = Color{R: 0.25, G: 0.25, B: 0.25, A: 1}
	HighlightColor         = Color{R: 0.1, G: 0.8, B: 0.1, A: 1}
)

// Lerp blends c toward o by t in [0,1].
func (c Color) Lerp(o Color, t float32) Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}

func validCost(cost float64) bool {
	return cost >= 0 && !math.IsInf(cost, 0) && !math.IsNaN(cost)
}
