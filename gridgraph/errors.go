package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrBadCellSize indicates a non-positive or non-finite cell size.
	ErrBadCellSize = errors.New("gridgraph: cell size must be positive and finite")
	// ErrNilNodeFactory indicates NewGridGraph was called without a node constructor.
	ErrNilNodeFactory = errors.New("gridgraph: node factory is nil")
	// ErrBadMoveCost indicates a negative or non-finite straight/diagonal step cost.
	ErrBadMoveCost = errors.New("gridgraph: step costs must be finite and non-negative")
	// ErrBadImpassable indicates a non-positive impassable threshold.
	ErrBadImpassable = errors.New("gridgraph: impassable cost must be positive")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no bridge exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)
