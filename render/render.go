// Package render walks graphs and flow fields and emits draw primitives to a
// caller-supplied Drawer. It owns no window, camera or batching; the Drawer
// decides what a circle or a segment looks like.
package render

import (
	"strconv"

	"github.com/katalvlaran/navgraph/core"
	"github.com/katalvlaran/navgraph/flowfield"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Drawer receives primitives in world coordinates.
type Drawer interface {
	DrawCircle(center orb.Point, radius float64, color core.Color)
	DrawSegment(a, b orb.Point, color core.Color)
	DrawDirection(origin, dir orb.Point, length float64, color core.Color)
	DrawString(pos orb.Point, text string, color core.Color)
}

// Options selects what Graph emits.
type Options struct {
	DrawNodes           bool
	DrawNodeNumbers     bool
	DrawConnections     bool
	DrawConnectionCosts bool

	// NodeRadius is the drawn circle radius; directed arrows use it as length.
	NodeRadius float64
	// ImpassableCost scales Coster shading; costs at or above it use ImpassableColor.
	ImpassableCost int

	NodeColor       core.Color
	LowCostColor    core.Color
	HighCostColor   core.Color
	ImpassableColor core.Color
	TextColor       core.Color
}

// DefaultOptions draws nodes, numbers and connections, without costs.
func DefaultOptions() Options {
	return Options{
		DrawNodes:       true,
		DrawNodeNumbers: true,
		DrawConnections: true,
		NodeRadius:      3,
		ImpassableCost:  255,
		NodeColor:       core.DefaultNodeColor,
		LowCostColor:    core.Color{R: 0.2, G: 0.8, B: 0.2, A: 1},
		HighCostColor:   core.Color{R: 0.8, G: 0.2, B: 0.2, A: 1},
		ImpassableColor: core.Color{R: 0, G: 0, B: 0, A: 1},
		TextColor:       core.Color{R: 1, G: 1, B: 1, A: 1},
	}
}

// Graph emits g's connections first, then its nodes, so nodes draw on top.
// pos maps a node index to its world position.
//
// The node color source is picked once per call from N: core.Colored payloads
// use their own color, core.Coster payloads a cost shade, others
// opts.NodeColor. Interface-typed N falls back to a per-node check.
func Graph[N any](d Drawer, g *core.Graph[N], pos func(idx int) orb.Point, opts Options) {
	if opts.DrawConnections {
		for _, c := range g.Connections() {
			a, b := pos(c.From()), pos(c.To())
			d.DrawSegment(a, b, c.Color())
			mid := orb.Point{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2}
			if g.Directed() {
				d.DrawDirection(mid, unit(a, b), opts.NodeRadius, c.Color())
			}
			if opts.DrawConnectionCosts {
				d.DrawString(mid, strconv.FormatFloat(c.Cost(), 'g', 4, 64), opts.TextColor)
			}
		}
	}
	if !opts.DrawNodes && !opts.DrawNodeNumbers {
		return
	}

	color := colorer[N](opts)
	for _, idx := range g.ActiveNodes() {
		n, _ := g.Node(idx)
		p := pos(idx)
		if opts.DrawNodes {
			d.DrawCircle(p, opts.NodeRadius, color(n))
		}
		if opts.DrawNodeNumbers {
			d.DrawString(p, strconv.Itoa(idx), opts.TextColor)
		}
	}
}

// colorer resolves the node color source for N.
func colorer[N any](opts Options) func(N) core.Color {
	var zero N
	switch any(zero).(type) {
	case core.Colored:
		return func(n N) core.Color { return any(n).(core.Colored).NodeColor() }
	case core.Coster:
		return func(n N) core.Color { return shade(any(n).(core.Coster).TraversalCost(), opts) }
	case nil:
		return func(n N) core.Color {
			switch v := any(n).(type) {
			case core.Colored:
				return v.NodeColor()
			case core.Coster:
				return shade(v.TraversalCost(), opts)
			default:
				return opts.NodeColor
			}
		}
	default:
		return func(N) core.Color { return opts.NodeColor }
	}
}

func shade(cost int, opts Options) core.Color {
	if opts.ImpassableCost <= 0 || cost >= opts.ImpassableCost {
		return opts.ImpassableColor
	}

	return opts.LowCostColor.Lerp(opts.HighCostColor, float32(cost)/float32(opts.ImpassableCost))
}

// Path emits one segment per consecutive pair of nodes.
func Path(d Drawer, pos func(idx int) orb.Point, nodes []int, color core.Color) {
	for i := 0; i+1 < len(nodes); i++ {
		d.DrawSegment(pos(nodes[i]), pos(nodes[i+1]), color)
	}
}

// FlowField emits one arrow per cell with a non-zero flow vector.
func FlowField(d Drawer, f *flowfield.Field, length float64, color core.Color) {
	g := f.CostGrid()
	for idx, dir := range f.Directions() {
		if dir == (orb.Point{}) {
			continue
		}
		d.DrawDirection(g.NodePos(idx), dir, length, color)
	}
}

// IntegrationCosts labels every reached cell with its integration cost.
func IntegrationCosts(d Drawer, f *flowfield.Field, color core.Color) {
	g := f.CostGrid()
	for idx := 0; idx < g.NodeSlots(); idx++ {
		if f.Reached(idx) {
			d.DrawString(g.NodePos(idx), strconv.FormatFloat(f.IntegrationCost(idx), 'g', 4, 64), color)
		}
	}
}

func unit(a, b orb.Point) orb.Point {
	l := planar.Distance(a, b)
	if l == 0 {
		return orb.Point{}
	}

	return orb.Point{(b[0] - a[0]) / l, (b[1] - a[1]) / l}
}
