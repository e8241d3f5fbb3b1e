package spatial_test

import (
	"fmt"

	"github.com/katalvlaran/navgraph/spatial"
	"github.com/paulmach/orb"
)

// ExampleGraph_NodeIdxAtWorldPos picks nodes and connections by world position.
func ExampleGraph_NodeIdxAtWorldPos() {
	g := spatial.New[spatial.Node](nil)
	a := g.AddNode(spatial.NewNode(orb.Point{0, 0}))
	b := g.AddNode(spatial.NewNode(orb.Point{30, 40}))
	_, _ = g.AddConnection(a, b, 0)
	g.SetConnectionCostsToDistance()

	fmt.Println("hit:", g.NodeIdxAtWorldPos(orb.Point{31, 41}))
	fmt.Println("cost:", g.ConnectionAtPosition(orb.Point{15, 20}).Cost())

	// Output:
	// hit: 1
	// cost: 50
}
