package flowfield

import (
	"errors"
	"math"

	"github.com/katalvlaran/navgraph/gridgraph"
	"github.com/paulmach/orb"
)

// Unreached marks an integration cell the goal has not propagated to.
const Unreached = math.MaxFloat64

// MinCost is the cheapest traversal cost SetCost accepts.
const MinCost = 1

// Sentinel errors.
var (
	// ErrInvalidGoal indicates a goal index outside the grid.
	ErrInvalidGoal = errors.New("flowfield: goal index out of range")
	// ErrGoalImpassable indicates a goal cell at or above the impassable cost.
	ErrGoalImpassable = errors.New("flowfield: goal cell is impassable")
	// ErrBadCost indicates a cell cost below MinCost or an index outside the grid.
	ErrBadCost = errors.New("flowfield: invalid cell cost")
)

// Cell is a cost grid payload: the price of entering the cell and the flow
// direction derived by the last Compute.
type Cell struct {
	Cost      int
	Direction orb.Point
}

// NewCell is a node factory producing cost-1 cells.
func NewCell(int) Cell { return Cell{Cost: 1} }

// TraversalCost implements core.Coster.
func (c Cell) TraversalCost() int { return c.Cost }

// IntegrationCell is an integration grid payload: accumulated cost to the goal.
type IntegrationCell struct {
	Cost float64
}

// NewIntegrationCell is a node factory producing unreached cells.
func NewIntegrationCell(int) IntegrationCell { return IntegrationCell{Cost: Unreached} }

// TraversalCost implements core.Coster; the cost is truncated so render
// adapters can shade the integration field like a cost grid.
func (c IntegrationCell) TraversalCost() int {
	if c.Cost >= math.MaxInt32 {
		return math.MaxInt32
	}

	return int(c.Cost)
}

// Strategy selects the propagation order.
type Strategy int

const (
	// BreadthFirst relaxes through a FIFO queue, enqueuing a cell only if it is
	// not already queued. Cells may be improved and re-queued later.
	BreadthFirst Strategy = iota
	// Dijkstra always expands the cheapest frontier cell; each cell settles once.
	Dijkstra
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case BreadthFirst:
		return "breadth-first"
	case Dijkstra:
		return "dijkstra"
	default:
		return "unknown"
	}
}

// Option configures a Field at construction.
type Option func(*options)

type options struct {
	grid     gridgraph.GridOptions
	strategy Strategy
}

func defaultOptions() options {
	return options{grid: gridgraph.DefaultGridOptions(), strategy: BreadthFirst}
}

// WithConnectivity selects 4- or 8-neighbor movement. Default Conn8.
func WithConnectivity(c gridgraph.Connectivity) Option {
	return func(o *options) { o.grid.Conn = c }
}

// WithStraightCost sets the orthogonal step multiplier. Default 1.
func WithStraightCost(c float64) Option {
	return func(o *options) { o.grid.StraightCost = c }
}

// WithDiagonalCost sets the diagonal step multiplier. Default 1.5.
func WithDiagonalCost(c float64) Option {
	return func(o *options) { o.grid.DiagonalCost = c }
}

// WithImpassableCost sets the blocking threshold. Default 255.
func WithImpassableCost(c int) Option {
	return func(o *options) { o.grid.ImpassableCost = c }
}

// WithOrigin sets the world position of the grid's top-left corner.
func WithOrigin(p orb.Point) Option {
	return func(o *options) { o.grid.Origin = p }
}

// WithStrategy selects the propagation strategy. Default BreadthFirst.
func WithStrategy(s Strategy) Option {
	return func(o *options) { o.strategy = s }
}
