package spatial_test

import (
	"testing"

	"github.com/katalvlaran/navgraph/core"
	"github.com/katalvlaran/navgraph/spatial"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square builds four nodes at the corners of a 10×10 square connected as a ring.
func square(t *testing.T) *spatial.Graph[spatial.Node] {
	t.Helper()
	g := spatial.New[spatial.Node](nil)
	for _, p := range []orb.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}} {
		g.AddNode(spatial.NewNode(p))
	}
	for i := 0; i < 4; i++ {
		_, err := g.AddConnection(i, (i+1)%4, 1)
		require.NoError(t, err)
	}

	return g
}

// TestGraph_NodeIdxAtWorldPos checks the 1.5× radius pick and nearest-wins.
func TestGraph_NodeIdxAtWorldPos(t *testing.T) {
	g := square(t)

	assert.Equal(t, 0, g.NodeIdxAtWorldPos(orb.Point{0, 0}))
	assert.Equal(t, 1, g.NodeIdxAtWorldPos(orb.Point{14, 0}))   // 4 ≤ 4.5
	assert.Equal(t, core.InvalidNodeIndex, g.NodeIdxAtWorldPos(orb.Point{15, 0}))
	assert.Equal(t, core.InvalidNodeIndex, g.NodeIdxAtWorldPos(orb.Point{5, 5}))

	// Two nodes in reach: the nearer wins.
	g.AddNode(spatial.NewNode(orb.Point{3, 0}))
	assert.Equal(t, 4, g.NodeIdxAtWorldPos(orb.Point{2, 0}))
	assert.Equal(t, 0, g.NodeIdxAtWorldPos(orb.Point{1, 0}))
}

// TestGraph_IndexFollowsMutations checks the lazy rebuild after removals and moves.
func TestGraph_IndexFollowsMutations(t *testing.T) {
	g := square(t)
	require.Equal(t, 2, g.NodeIdxAtWorldPos(orb.Point{10, 10}))

	require.NoError(t, g.RemoveNode(2))
	assert.Equal(t, core.InvalidNodeIndex, g.NodeIdxAtWorldPos(orb.Point{10, 10}))

	require.NoError(t, g.SetNodePosition(3, orb.Point{50, 50}))
	assert.Equal(t, 3, g.NodeIdxAtWorldPos(orb.Point{50, 51}))
	assert.Equal(t, core.InvalidNodeIndex, g.NodeIdxAtWorldPos(orb.Point{0, 10}))

	assert.ErrorIs(t, g.SetNodePosition(2, orb.Point{}), core.ErrInvalidNode)
}

// TestGraph_ConnectionAtPosition checks the perpendicular-distance hit test.
func TestGraph_ConnectionAtPosition(t *testing.T) {
	g := square(t)

	c := g.ConnectionAtPosition(orb.Point{5, 0.5})
	require.NotNil(t, c)
	assert.ElementsMatch(t, []int{0, 1}, []int{c.From(), c.To()})

	c = g.ConnectionAtPosition(orb.Point{9.6, 5})
	require.NotNil(t, c)
	assert.ElementsMatch(t, []int{1, 2}, []int{c.From(), c.To()})

	assert.Nil(t, g.ConnectionAtPosition(orb.Point{5, 5}))
	assert.Nil(t, g.ConnectionAtPosition(orb.Point{5, 1}))

	require.NoError(t, g.RemoveConnection(1, 0))
	assert.Nil(t, g.ConnectionAtPosition(orb.Point{5, 0.5}))
}

// TestGraph_NearestNode returns the closest node at any distance.
func TestGraph_NearestNode(t *testing.T) {
	g := square(t)
	assert.Equal(t, 2, g.NearestNode(orb.Point{100, 90}))
	assert.Equal(t, 3, g.NearestNode(orb.Point{-3, 8}))

	empty := spatial.New[spatial.Node](nil)
	assert.Equal(t, core.InvalidNodeIndex, empty.NearestNode(orb.Point{}))
}

// TestGraph_SetConnectionCostsToDistance checks Euclidean costs on both mirror entries.
func TestGraph_SetConnectionCostsToDistance(t *testing.T) {
	g := square(t)
	_, err := g.AddConnection(0, 2, 1)
	require.NoError(t, err)

	g.SetConnectionCostsToDistance()
	assert.Equal(t, 10.0, g.Connection(1, 0).Cost())
	assert.InDelta(t, 14.1421356, g.Connection(2, 0).Cost(), 1e-6)
}

// TestGraph_SetNodesColor recolors valid nodes only.
func TestGraph_SetNodesColor(t *testing.T) {
	g := square(t)
	require.NoError(t, g.SetNodesColor([]int{1, 3, 42}, core.HighlightColor))

	n1, _ := g.Node(1)
	n2, _ := g.Node(2)
	assert.Equal(t, core.HighlightColor, n1.Color)
	assert.Equal(t, core.DefaultNodeColor, n2.Color)
}

type fixed orb.Point

func (f fixed) Position() orb.Point { return orb.Point(f) }

// TestGraph_UnsupportedPayload returns capability errors.
func TestGraph_UnsupportedPayload(t *testing.T) {
	g := spatial.New[fixed](nil, spatial.WithNodeRadius(1))
	idx := g.AddNode(fixed{1, 1})

	assert.ErrorIs(t, g.SetNodePosition(idx, orb.Point{}), spatial.ErrNotMovable)
	assert.ErrorIs(t, g.SetNodesColor([]int{idx}, core.HighlightColor), spatial.ErrNotColorable)
	assert.Equal(t, idx, g.NodeIdxAtWorldPos(orb.Point{2.4, 1}))
}

// TestGraph_Clone keeps options and isolates mutations.
func TestGraph_Clone(t *testing.T) {
	g := spatial.New[spatial.Node](nil, spatial.WithNodeRadius(5))
	g.AddNode(spatial.NewNode(orb.Point{0, 0}))

	c := g.Clone()
	assert.Equal(t, 5.0, c.NodeRadius())
	c.AddNode(spatial.NewNode(orb.Point{100, 0}))
	assert.Equal(t, 1, g.NodeCount())
	assert.Equal(t, 1, c.NodeIdxAtWorldPos(orb.Point{100, 7}))
}

// TestOptions_Panic checks option constructors reject bad input.
func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { spatial.WithNodeRadius(0) })
	assert.Panics(t, func() { spatial.WithConnectionTolerance(-1) })
}
