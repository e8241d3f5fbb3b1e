package eulerian_test

import (
	"fmt"

	"github.com/katalvlaran/navgraph/core"
	"github.com/katalvlaran/navgraph/eulerian"
)

// ExampleFindTrail draws the "house" figure without lifting the pen.
func ExampleFindTrail() {
	// 0-1-2-3 square with a roof node 4 over 2 and 3, plus the 0-2 diagonal.
	g := core.NewGraph[string]()
	for _, s := range []string{"A", "B", "C", "D", "E"} {
		g.AddNode(s)
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {2, 4}, {4, 3}, {0, 2}} {
		_, _ = g.AddConnection(e[0], e[1], 1)
	}

	e := eulerian.IsEulerian(g)
	trail, err := eulerian.FindTrail(g, e)
	fmt.Println(e, err)
	fmt.Println(trail)

	// Output:
	// semi-eulerian <nil>
	// [0 1 2 3 0 2 4 3]
}
