package gridgraph

import "github.com/paulmach/orb"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// DefaultImpassableCost is the traversal cost at or above which a cell is blocked.
const DefaultImpassableCost = 255

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// StraightCost is the step multiplier for orthogonal moves.
	StraightCost float64
	// DiagonalCost is the step multiplier for diagonal moves (Conn8 only).
	DiagonalCost float64
	// ImpassableCost marks cells with TraversalCost() >= ImpassableCost as blocked.
	ImpassableCost int
	// Directed stores each adjacency as two independent one-way connections.
	Directed bool
	// Origin is the world position of the grid's top-left corner.
	Origin orb.Point
	// Unconnected skips connection generation (e.g. integration fields).
	Unconnected bool
}

// DefaultGridOptions returns GridOptions with default settings:
// Conn=Conn8, StraightCost=1, DiagonalCost=1.5, ImpassableCost=255, undirected.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn:           Conn8,
		StraightCost:   1,
		DiagonalCost:   1.5,
		ImpassableCost: DefaultImpassableCost,
	}
}

// offsetsFor returns neighbor offsets as (dCol, dRow) in clockwise order from north.
func offsetsFor(c Connectivity) [][2]int {
	if c == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}
