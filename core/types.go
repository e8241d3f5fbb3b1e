// Package core defines the central index-addressed Graph and Connection types,
// the node capabilities algorithms depend on, and the sentinel errors shared by
// every graph mutation.
//
// This file declares Connection, Color, Uniqueness, GraphOption, ConnectionOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrInvalidNode         - index is out of range or refers to a freed slot.
//	ErrDuplicateConnection - connection rejected by the graph's Uniqueness policy.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrBadCost             - negative, NaN or infinite connection cost.
//	ErrConnectionNotFound  - requested connection does not exist.
package core

import (
	"errors"
)

// InvalidNodeIndex is the sentinel index returned by queries that find no node.
const InvalidNodeIndex = -1

// Sentinel errors for core graph operations.
var (
	// ErrInvalidNode indicates an index that is out of range or freed.
	ErrInvalidNode = errors.New("core: invalid node index")

	// ErrDuplicateConnection indicates an equivalent connection already exists.
	ErrDuplicateConnection = errors.New("core: duplicate connection")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadCost indicates a negative, NaN or infinite connection cost.
	ErrBadCost = errors.New("core: connection cost must be finite and non-negative")

	// ErrConnectionNotFound indicates an operation referenced a non-existent connection.
	ErrConnectionNotFound = errors.New("core: connection not found")
)

// Uniqueness selects how AddConnection decides that two connections are equivalent.
type Uniqueness int

const (
	// UniqueUnordered allows at most one connection per unordered endpoint pair,
	// so (a,b) blocks a later (b,a) even in a directed graph.
	UniqueUnordered Uniqueness = iota
	// UniqueOrdered allows at most one connection per ordered endpoint pair.
	UniqueOrdered
	// AllowParallel accepts any number of parallel connections.
	AllowParallel
)

// String returns the policy name.
func (u Uniqueness) String() string {
	switch u {
	case UniqueUnordered:
		return "unique-unordered"
	case UniqueOrdered:
		return "unique-ordered"
	case AllowParallel:
		return "allow-parallel"
	default:
		return "unknown"
	}
}

// Connection is a directed, costed edge between two node indices.
//
// Fields are read through accessors. In an undirected graph every connection is
// linked to its mirror entry; SetCost and SetColor update both so the pair can
// never drift apart.
type Connection struct {
	from, to int
	cost     float64
	color    Color

	// mirror is the reverse entry of an undirected pair (nil otherwise).
	mirror *Connection
	// primary marks the entry created by the caller; mirrors are secondary.
	primary bool
}

// From returns the source node index.
func (c *Connection) From() int { return c.from }

// To returns the destination node index.
func (c *Connection) To() int { return c.to }

// Cost returns the traversal cost.
func (c *Connection) Cost() float64 { return c.cost }

// Color returns the display color.
func (c *Connection) Color() Color { return c.color }

// Mirror returns the reverse entry of an undirected pair, or nil.
func (c *Connection) Mirror() *Connection { return c.mirror }

// SetCost updates the cost of c and of its mirror.
// Returns ErrBadCost for negative, NaN or infinite values.
func (c *Connection) SetCost(cost float64) error {
	if !validCost(cost) {
		return ErrBadCost
	}
	c.cost = cost
	if c.mirror != nil {
		c.mirror.cost = cost
	}

	return nil
}

// SetColor updates the display color of c and of its mirror.
func (c *Connection) SetColor(color Color) {
	c.color = color
	if c.mirror != nil {
		c.mirror.color = color
	}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(o *graphOptions)

type graphOptions struct {
	directed   bool
	uniqueness Uniqueness
	allowLoops bool
}

// WithDirected sets whether connections are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(o *graphOptions) { o.directed = directed }
}

// WithUniqueness sets the duplicate-connection policy.
func WithUniqueness(u Uniqueness) GraphOption {
	return func(o *graphOptions) { o.uniqueness = u }
}

// WithLoops permits self-loops (connections from a node to itself).
func WithLoops() GraphOption {
	return func(o *graphOptions) { o.allowLoops = true }
}

// ConnectionOption configures a single connection when added.
type ConnectionOption func(c *Connection)

// WithColor sets the display color of a new connection.
func WithColor(color Color) ConnectionOption {
	return func(c *Connection) { c.color = color }
}

// Graph is an arena of optional node slots addressed by integer index.
//
// Slots freed by RemoveNode are recycled lowest-first by AddNode. Connections
// store index pairs only, so removing a node never leaves dangling references.
// Adjacency is kept per node in insertion order.
//
// Graph is not safe for concurrent use: mutations and algorithm runs need
// exclusive access to the instance.
type Graph[N any] struct {
	graphOptions

	nodes []N
	live  []bool
	free  []int

	// conns[i] holds the outgoing connections of node i in insertion order.
	conns     [][]*Connection
	connCount int

	version uint64
}

// NewGraph creates an empty Graph with the given options.
// By default the graph is undirected, UniqueUnordered and rejects self-loops.
// Complexity: O(1)
func NewGraph[N any](opts ...GraphOption) *Graph[N] {
	g := &Graph[N]{}
	for _, opt := range opts {
		opt(&g.graphOptions)
	}

	return g
}

// Directed reports whether connections are one-way.
func (g *Graph[N]) Directed() bool { return g.directed }

// Uniqueness reports the duplicate-connection policy.
func (g *Graph[N]) Uniqueness() Uniqueness { return g.uniqueness }

// Looped reports whether self-loops are permitted.
func (g *Graph[N]) Looped() bool { return g.allowLoops }

// Version returns a counter that changes on every structural mutation
// (node or connection added, removed or replaced). Derived indexes compare it
// to decide when to rebuild.
func (g *Graph[N]) Version() uint64 { return g.version }
