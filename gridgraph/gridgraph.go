package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/navgraph/core"
	"github.com/paulmach/orb"
)

// GridGraph is a core.Graph whose nodes are the cells of a cols×rows grid.
//
// Node index == row*cols + col for the whole lifetime of the grid; cells are
// never removed. Connections follow adjacency ∩ passability and are rebuilt
// per cell through RefreshCell or wholesale through RegenerateConnections.
type GridGraph[N any] struct {
	*core.Graph[N]

	cols, rows int
	cellSize   float64
	opts       GridOptions
	offsets    [][2]int
}

// NewGridGraph allocates cols×rows cells, creating each payload with newNode(idx),
// then connects adjacent passable cells unless opts.Unconnected is set.
//
// Connection cost between a and b is step × (cost(a)+cost(b))/2 where step is
// opts.StraightCost or opts.DiagonalCost.
//
// Returns ErrEmptyGrid, ErrBadCellSize, ErrNilNodeFactory, ErrBadMoveCost or
// ErrBadImpassable for invalid input.
// Complexity: O(cols×rows×d), d = 4 or 8.
func NewGridGraph[N any](cols, rows int, cellSize float64, newNode func(idx int) N, opts GridOptions) (*GridGraph[N], error) {
	if cols <= 0 || rows <= 0 {
		return nil, ErrEmptyGrid
	}
	if !(cellSize > 0) || math.IsInf(cellSize, 0) {
		return nil, fmt.Errorf("%w: %v", ErrBadCellSize, cellSize)
	}
	if newNode == nil {
		return nil, ErrNilNodeFactory
	}
	if !validStep(opts.StraightCost) || !validStep(opts.DiagonalCost) {
		return nil, ErrBadMoveCost
	}
	if opts.ImpassableCost <= 0 {
		return nil, ErrBadImpassable
	}

	gopts := []core.GraphOption{core.WithDirected(opts.Directed)}
	if opts.Directed {
		gopts = append(gopts, core.WithUniqueness(core.UniqueOrdered))
	}
	gg := &GridGraph[N]{
		Graph:    core.NewGraph[N](gopts...),
		cols:     cols,
		rows:     rows,
		cellSize: cellSize,
		opts:     opts,
		offsets:  offsetsFor(opts.Conn),
	}
	for i := 0; i < cols*rows; i++ {
		gg.AddNode(newNode(i))
	}
	if !opts.Unconnected {
		gg.AddConnectionsToAdjacentCells()
	}

	return gg, nil
}

func validStep(c float64) bool {
	return c >= 0 && !math.IsInf(c, 0) && !math.IsNaN(c)
}

// Columns returns the grid width in cells.
func (gg *GridGraph[N]) Columns() int { return gg.cols }

// Rows returns the grid height in cells.
func (gg *GridGraph[N]) Rows() int { return gg.rows }

// CellSize returns the side length of a cell in world units.
func (gg *GridGraph[N]) CellSize() float64 { return gg.cellSize }

// Options returns the construction options.
func (gg *GridGraph[N]) Options() GridOptions { return gg.opts }

// InBounds reports whether (col,row) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph[N]) InBounds(col, row int) bool {
	return col >= 0 && col < gg.cols && row >= 0 && row < gg.rows
}

// Index maps (col,row) to a row-major index, or core.InvalidNodeIndex when out of bounds.
// Complexity: O(1).
func (gg *GridGraph[N]) Index(col, row int) int {
	if !gg.InBounds(col, row) {
		return core.InvalidNodeIndex
	}

	return row*gg.cols + col
}

// Coordinate converts a row-major index back to (col,row).
// Complexity: O(1).
func (gg *GridGraph[N]) Coordinate(idx int) (col, row int) {
	return idx % gg.cols, idx / gg.cols
}

// NodePos returns the world position of the centre of cell idx.
// Invalid indices yield the zero point.
func (gg *GridGraph[N]) NodePos(idx int) orb.Point {
	if !gg.IsNodeValid(idx) {
		return orb.Point{}
	}
	col, row := gg.Coordinate(idx)

	return orb.Point{
		gg.opts.Origin[0] + (float64(col)+0.5)*gg.cellSize,
		gg.opts.Origin[1] + (float64(row)+0.5)*gg.cellSize,
	}
}

// NodeIdxAtWorldPos returns the index of the cell containing pos, or
// core.InvalidNodeIndex when pos lies outside the grid.
func (gg *GridGraph[N]) NodeIdxAtWorldPos(pos orb.Point) int {
	fc := math.Floor((pos[0] - gg.opts.Origin[0]) / gg.cellSize)
	fr := math.Floor((pos[1] - gg.opts.Origin[1]) / gg.cellSize)
	if fc < 0 || fr < 0 || fc >= float64(gg.cols) || fr >= float64(gg.rows) {
		return core.InvalidNodeIndex
	}

	return gg.Index(int(fc), int(fr))
}

// TraversalCost returns the cost of entering cell idx. Payloads that do not
// implement core.Coster cost 1. Invalid indices report the impassable cost.
func (gg *GridGraph[N]) TraversalCost(idx int) int {
	n, ok := gg.Node(idx)
	if !ok {
		return gg.opts.ImpassableCost
	}
	if c, ok := any(n).(core.Coster); ok {
		return c.TraversalCost()
	}

	return 1
}

// IsPassable reports whether cell idx may be entered.
func (gg *GridGraph[N]) IsPassable(idx int) bool {
	return gg.TraversalCost(idx) < gg.opts.ImpassableCost
}

// Neighbors returns the in-bounds neighbor indices of idx in offset order,
// regardless of passability.
func (gg *GridGraph[N]) Neighbors(idx int) []int {
	if !gg.IsNodeValid(idx) {
		return nil
	}
	col, row := gg.Coordinate(idx)
	out := make([]int, 0, len(gg.offsets))
	for _, d := range gg.offsets {
		if n := gg.Index(col+d[0], row+d[1]); n != core.InvalidNodeIndex {
			out = append(out, n)
		}
	}

	return out
}

// AddConnectionsToAdjacentCells connects every passable cell to its passable
// neighbors. Pairs that already exist are left alone.
// Complexity: O(cols×rows×d).
func (gg *GridGraph[N]) AddConnectionsToAdjacentCells() {
	for idx := 0; idx < gg.cols*gg.rows; idx++ {
		gg.connectCell(idx)
	}
}

// RegenerateConnections drops every connection and rebuilds them from the
// current payload costs.
func (gg *GridGraph[N]) RegenerateConnections() {
	gg.ClearConnections()
	if !gg.opts.Unconnected {
		gg.AddConnectionsToAdjacentCells()
	}
}

// SetCell replaces the payload of idx and relinks its connections.
func (gg *GridGraph[N]) SetCell(idx int, n N) error {
	if err := gg.SetNode(idx, n); err != nil {
		return err
	}

	return gg.RefreshCell(idx)
}

// RefreshCell rebuilds the connections touching idx after its cost changed.
//
// Implementation:
//   - Stage 1: Drop every connection entering or leaving idx.
//   - Stage 2: If idx is passable, connect it to each passable neighbor in both directions.
func (gg *GridGraph[N]) RefreshCell(idx int) error {
	if err := gg.RemoveNodeConnections(idx); err != nil {
		return err
	}
	if gg.opts.Unconnected {
		return nil
	}
	gg.connectCell(idx)
	if gg.opts.Directed {
		for _, n := range gg.Neighbors(idx) {
			gg.link(n, idx)
		}
	}

	return nil
}

// connectCell links idx to each passable neighbor.
func (gg *GridGraph[N]) connectCell(idx int) {
	if !gg.IsPassable(idx) {
		return
	}
	for _, n := range gg.Neighbors(idx) {
		gg.link(idx, n)
	}
}

// link adds a→b with the averaged terrain cost if both are passable and the pair is new.
func (gg *GridGraph[N]) link(a, b int) {
	if !gg.IsPassable(a) || !gg.IsPassable(b) || !gg.IsUniqueConnection(a, b) {
		return
	}
	_, _ = gg.AddConnection(a, b, gg.ConnectionCost(a, b))
}

// HeuristicScale maps world distance to a lower bound on path cost for A*.
// A cell spans cellSize world units and one step costs at least the cheaper
// step multiplier, given traversal costs of at least 1.
func (gg *GridGraph[N]) HeuristicScale() float64 {
	step := gg.opts.StraightCost
	if gg.opts.Conn == Conn8 && gg.opts.DiagonalCost < step {
		step = gg.opts.DiagonalCost
	}

	return step / gg.cellSize
}

// ConnectionCost returns the cost of moving between adjacent cells a and b:
// step × (cost(a)+cost(b))/2. The result is symmetric in a and b.
func (gg *GridGraph[N]) ConnectionCost(a, b int) float64 {
	ac, ar := gg.Coordinate(a)
	bc, br := gg.Coordinate(b)
	step := gg.opts.StraightCost
	if ac != bc && ar != br {
		step = gg.opts.DiagonalCost
	}

	return step * float64(gg.TraversalCost(a)+gg.TraversalCost(b)) / 2
}
