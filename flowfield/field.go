package flowfield

import (
	"fmt"

	"github.com/katalvlaran/navgraph/core"
	"github.com/katalvlaran/navgraph/gridgraph"
	"github.com/paulmach/orb"
)

// Field owns a cost grid and its integration grid. Both share dimensions,
// cell size and origin, so an index means the same cell in either.
type Field struct {
	costs    *gridgraph.GridGraph[Cell]
	integ    *gridgraph.GridGraph[IntegrationCell]
	strategy Strategy
	goal     int

	// via[i] is the cell whose relaxation last lowered i, or core.InvalidNodeIndex.
	via []int
}

// New allocates a cols×rows field with every cell at cost 1 and nothing reached.
// Grid validation errors from gridgraph are returned wrapped.
func New(cols, rows int, cellSize float64, opts ...Option) (*Field, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	costs, err := gridgraph.NewGridGraph(cols, rows, cellSize, NewCell, o.grid)
	if err != nil {
		return nil, fmt.Errorf("flowfield: cost grid: %w", err)
	}
	io := o.grid
	io.Unconnected = true
	integ, err := gridgraph.NewGridGraph(cols, rows, cellSize, NewIntegrationCell, io)
	if err != nil {
		return nil, fmt.Errorf("flowfield: integration grid: %w", err)
	}

	f := &Field{costs: costs, integ: integ, strategy: o.strategy, goal: core.InvalidNodeIndex, via: make([]int, cols*rows)}
	for i := range f.via {
		f.via[i] = core.InvalidNodeIndex
	}

	return f, nil
}

// CostGrid exposes the cost grid. Payload edits must go through SetCost or
// gridgraph.SetCell so connections stay in sync.
func (f *Field) CostGrid() *gridgraph.GridGraph[Cell] { return f.costs }

// IntegrationGrid exposes the integration grid of the last Compute.
func (f *Field) IntegrationGrid() *gridgraph.GridGraph[IntegrationCell] { return f.integ }

// Strategy returns the propagation strategy.
func (f *Field) Strategy() Strategy { return f.strategy }

// Goal returns the goal of the last successful Compute, or core.InvalidNodeIndex.
func (f *Field) Goal() int { return f.goal }

// SetCost changes the traversal cost of idx and relinks the cell. Costs range
// from MinCost up; costs at or above the impassable threshold block the cell.
// Results of the last Compute are left as they are until the next one.
func (f *Field) SetCost(idx, cost int) error {
	cell, ok := f.costs.Node(idx)
	if !ok {
		return fmt.Errorf("%w: index %d", ErrBadCost, idx)
	}
	if cost < MinCost {
		return fmt.Errorf("%w: %d", ErrBadCost, cost)
	}
	cell.Cost = cost

	return f.costs.SetCell(idx, cell)
}

// SetImpassable blocks idx.
func (f *Field) SetImpassable(idx int) error {
	return f.SetCost(idx, f.costs.Options().ImpassableCost)
}

// Cost returns the traversal cost of idx; invalid indices report the impassable cost.
func (f *Field) Cost(idx int) int { return f.costs.TraversalCost(idx) }

// IntegrationCost returns the accumulated cost from idx to the goal, or
// Unreached.
func (f *Field) IntegrationCost(idx int) float64 {
	c, ok := f.integ.Node(idx)
	if !ok {
		return Unreached
	}

	return c.Cost
}

// Reached reports whether the last Compute propagated to idx.
func (f *Field) Reached(idx int) bool { return f.IntegrationCost(idx) != Unreached }

// Direction returns the unit flow vector of idx, or the zero vector.
func (f *Field) Direction(idx int) orb.Point {
	c, ok := f.costs.Node(idx)
	if !ok {
		return orb.Point{}
	}

	return c.Direction
}

// Directions returns the flow vector of every cell in index order.
func (f *Field) Directions() []orb.Point {
	out := make([]orb.Point, f.costs.NodeSlots())
	for i := range out {
		out[i] = f.Direction(i)
	}

	return out
}

// DirectionAtWorldPos returns the flow vector of the cell containing pos.
// ok is false when pos lies outside the grid.
func (f *Field) DirectionAtWorldPos(pos orb.Point) (dir orb.Point, ok bool) {
	idx := f.costs.NodeIdxAtWorldPos(pos)
	if idx == core.InvalidNodeIndex {
		return orb.Point{}, false
	}

	return f.Direction(idx), true
}
