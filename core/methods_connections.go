// File: methods_connections.go
// Role: Connection lifecycle & queries.
//
// Determinism:
//   - NodeConnections() returns outgoing connections in insertion order.
//   - Connections() walks nodes ascending, then insertion order.
//
// Undirected invariant:
//   - AddConnection is the only way to create a connection, and it links the
//     mirror entry; every removal path detaches both halves together.
package core

import "fmt"

// AddConnection creates a connection from→to with the given cost.
//
// Steps:
//  1. Validate both endpoints (ErrInvalidNode).
//  2. Reject self-loops unless WithLoops (ErrLoopNotAllowed).
//  3. Reject negative/NaN/Inf costs (ErrBadCost).
//  4. Reject duplicates per Uniqueness (ErrDuplicateConnection).
//  5. Append to from's adjacency; in undirected mode append the linked mirror to to's.
//
// A self-loop in an undirected graph is stored once, without a mirror.
//
// Complexity: O(deg(from) + deg(to)) for the duplicate check.
func (g *Graph[N]) AddConnection(from, to int, cost float64, opts ...ConnectionOption) (*Connection, error) {
	if !g.IsNodeValid(from) || !g.IsNodeValid(to) {
		return nil, fmt.Errorf("%w: connection %d→%d", ErrInvalidNode, from, to)
	}
	if from == to && !g.allowLoops {
		return nil, ErrLoopNotAllowed
	}
	if !validCost(cost) {
		return nil, fmt.Errorf("%w: %v", ErrBadCost, cost)
	}
	if !g.IsUniqueConnection(from, to) {
		return nil, fmt.Errorf("%w: %d→%d", ErrDuplicateConnection, from, to)
	}

	c := &Connection{from: from, to: to, cost: cost, color: DefaultConnectionColor, primary: true}
	for _, opt := range opts {
		opt(c)
	}
	g.conns[from] = append(g.conns[from], c)

	if !g.directed && from != to {
		m := &Connection{from: to, to: from, cost: cost, color: c.color, mirror: c}
		c.mirror = m
		g.conns[to] = append(g.conns[to], m)
	}
	g.connCount++
	g.version++

	return c, nil
}

// IsUniqueConnection reports whether AddConnection(from, to, ...) would pass
// the duplicate check. It returns false when either endpoint is invalid.
func (g *Graph[N]) IsUniqueConnection(from, to int) bool {
	if !g.IsNodeValid(from) || !g.IsNodeValid(to) {
		return false
	}
	switch g.uniqueness {
	case AllowParallel:
		return true
	case UniqueOrdered:
		return g.Connection(from, to) == nil
	default:
		return g.Connection(from, to) == nil && g.Connection(to, from) == nil
	}
}

// Connection returns the first connection from→to, or nil.
func (g *Graph[N]) Connection(from, to int) *Connection {
	if !g.IsNodeValid(from) {
		return nil
	}
	for _, c := range g.conns[from] {
		if c.to == to {
			return c
		}
	}

	return nil
}

// HasConnection reports whether a connection from→to exists.
func (g *Graph[N]) HasConnection(from, to int) bool {
	return g.Connection(from, to) != nil
}

// NodeConnections returns the outgoing connections of idx in insertion order.
// The slice is a copy; the connections are live. Invalid indices yield nil.
func (g *Graph[N]) NodeConnections(idx int) []*Connection {
	if !g.IsNodeValid(idx) {
		return nil
	}

	return append([]*Connection(nil), g.conns[idx]...)
}

// Connections returns every logical connection once: mirrors of undirected
// pairs are skipped.
// Complexity: O(V + E).
func (g *Graph[N]) Connections() []*Connection {
	out := make([]*Connection, 0, g.connCount)
	for _, list := range g.conns {
		for _, c := range list {
			if c.primary {
				out = append(out, c)
			}
		}
	}

	return out
}

// ConnectionCount returns the number of logical connections.
func (g *Graph[N]) ConnectionCount() int { return g.connCount }

// RemoveConnection deletes the first connection from→to and its mirror.
// In an undirected graph either orientation of the pair removes both entries.
// Returns ErrConnectionNotFound if no such connection exists.
func (g *Graph[N]) RemoveConnection(from, to int) error {
	c := g.Connection(from, to)
	if c == nil {
		return fmt.Errorf("%w: %d→%d", ErrConnectionNotFound, from, to)
	}
	g.detach(c)

	return nil
}

// RemoveConnectionRef deletes exactly c (and its mirror).
// Returns ErrConnectionNotFound if c is nil or no longer stored in g.
func (g *Graph[N]) RemoveConnectionRef(c *Connection) error {
	if c == nil || !g.IsNodeValid(c.from) || indexOf(g.conns[c.from], c) < 0 {
		return ErrConnectionNotFound
	}
	g.detach(c)

	return nil
}

// RemoveNodeConnections deletes every connection leaving or entering idx.
// The node itself stays live.
//
// Complexity: O(V + E).
func (g *Graph[N]) RemoveNodeConnections(idx int) error {
	if !g.IsNodeValid(idx) {
		return fmt.Errorf("%w: %d", ErrInvalidNode, idx)
	}
	for len(g.conns[idx]) > 0 {
		g.detach(g.conns[idx][0])
	}
	for j := range g.conns {
		for k := 0; k < len(g.conns[j]); {
			if g.conns[j][k].to == idx {
				g.detach(g.conns[j][k])
				continue
			}
			k++
		}
	}

	return nil
}

// ClearConnections drops every connection but keeps all nodes.
func (g *Graph[N]) ClearConnections() {
	for i := range g.conns {
		g.conns[i] = nil
	}
	g.connCount = 0
	g.version++
}

// detach unlinks c and its mirror from adjacency storage.
func (g *Graph[N]) detach(c *Connection) {
	g.conns[c.from] = removeConn(g.conns[c.from], c)
	if m := c.mirror; m != nil {
		g.conns[m.from] = removeConn(g.conns[m.from], m)
		m.mirror = nil
		c.mirror = nil
	}
	g.connCount--
	g.version++
}

func indexOf(list []*Connection, c *Connection) int {
	for i, x := range list {
		if x == c {
			return i
		}
	}

	return -1
}

// removeConn deletes c from list preserving order.
func removeConn(list []*Connection, c *Connection) []*Connection {
	i := indexOf(list, c)
	if i < 0 {
		return list
	}
	copy(list[i:], list[i+1:])
	list[len(list)-1] = nil

	return list[:len(list)-1]
}
