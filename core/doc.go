// Package core provides the index-addressed Graph every navgraph algorithm runs on.
//
// A Graph[N] is an arena of node slots holding payloads of type N plus, per node,
// an ordered list of outgoing Connections. Indices are stable: removing a node
// frees its slot without shifting any other index, and the next AddNode reuses
// the lowest freed slot.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(bool)
//	    false (default): every connection is stored twice, once per endpoint.
//	    The two entries are linked, so SetCost/SetColor and removal always
//	    affect both.
//
//	– WithUniqueness(Uniqueness)
//	    UniqueUnordered (default) rejects (b,a) once (a,b) exists, even when directed.
//	    UniqueOrdered rejects only an exact (a,b) repeat.
//	    AllowParallel accepts multigraphs.
//
//	– WithLoops()
//	    Permits from == to.
//
// Capabilities:
//
// Algorithms never inspect concrete payload types. They ask for small
// interfaces instead: Positioned (world position), Coster (traversal cost),
// Colored (display color) and Cloner (deep copy on Graph.Clone).
//
// Errors:
//
//	ErrInvalidNode, ErrDuplicateConnection, ErrLoopNotAllowed, ErrBadCost,
//	ErrConnectionNotFound. All mutations wrap them with context; use errors.Is.
//
// Concurrency:
//
// A Graph is single-owner. Mutations and algorithm runs must not overlap.
//
// Example:
//
//	g := core.NewGraph[string]()
//	a := g.AddNode("A")
//	b := g.AddNode("B")
//	_, _ = g.AddConnection(a, b, 2.5)
//	fmt.Println(g.Connection(b, a).Cost()) // 2.5
package core
