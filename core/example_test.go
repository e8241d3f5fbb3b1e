package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/navgraph/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an undirected graph of named nodes:
	g := core.NewGraph[string]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")

	// 2) Connect them in a triangle:
	_, _ = g.AddConnection(a, b, 1)
	_, _ = g.AddConnection(b, c, 2)
	_, _ = g.AddConnection(c, a, 3)

	// 3) The mirror of an undirected connection is always present:
	fmt.Println("B→A cost:", g.Connection(b, a).Cost())

	// 4) Remove a node; its slot becomes the next free index:
	_ = g.RemoveNode(b)
	fmt.Println("active:", g.ActiveNodes(), "next:", g.NextFreeNodeIndex())
	fmt.Println("connections:", g.ConnectionCount())

	// Output:
	// B→A cost: 1
	// active: [0 2] next: 1
	// connections: 1
}

// ExampleGraph_uniqueness shows the default duplicate policy.
func ExampleGraph_uniqueness() {
	g := core.NewGraph[int](core.WithDirected(true))
	a, b := g.AddNode(0), g.AddNode(1)
	_, _ = g.AddConnection(a, b, 1)

	_, err := g.AddConnection(b, a, 1)
	fmt.Println(errors.Is(err, core.ErrDuplicateConnection))

	// Output:
	// true
}
