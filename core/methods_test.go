// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"testing"

	"github.com/katalvlaran/navgraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// line builds an undirected chain of n string nodes with unit costs.
func line(t *testing.T, n int, opts ...core.GraphOption) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string](opts...)
	for i := 0; i < n; i++ {
		g.AddNode(string(rune('A' + i)))
	}
	for i := 0; i+1 < n; i++ {
		_, err := g.AddConnection(i, i+1, 1)
		require.NoError(t, err)
	}

	return g
}

// TestGraph_AddNodeReusesLowestFreeSlot checks arena index recycling.
func TestGraph_AddNodeReusesLowestFreeSlot(t *testing.T) {
	g := core.NewGraph[string]()
	for _, s := range []string{"A", "B", "C", "D"} {
		g.AddNode(s)
	}
	require.NoError(t, g.RemoveNode(2))
	require.NoError(t, g.RemoveNode(1))

	assert.False(t, g.IsNodeValid(1))
	assert.False(t, g.IsNodeValid(2))
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 4, g.NodeSlots())
	assert.Equal(t, 1, g.NextFreeNodeIndex())

	assert.Equal(t, 1, g.AddNode("E"))
	assert.Equal(t, 2, g.AddNode("F"))
	assert.Equal(t, 4, g.AddNode("G"))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, g.ActiveNodes())

	n, ok := g.Node(1)
	require.True(t, ok)
	assert.Equal(t, "E", n)
}

// TestGraph_InvalidIndices checks out-of-range and freed indices everywhere.
func TestGraph_InvalidIndices(t *testing.T) {
	g := line(t, 2)
	require.NoError(t, g.RemoveNode(1))

	for _, idx := range []int{core.InvalidNodeIndex, 1, 7} {
		assert.False(t, g.IsNodeValid(idx))
		_, ok := g.Node(idx)
		assert.False(t, ok)
		assert.Nil(t, g.NodeConnections(idx))
		assert.Zero(t, g.Degree(idx))
		assert.ErrorIs(t, g.RemoveNode(idx), core.ErrInvalidNode)
		assert.ErrorIs(t, g.SetNode(idx, "X"), core.ErrInvalidNode)
		_, err := g.AddConnection(0, idx, 1)
		assert.ErrorIs(t, err, core.ErrInvalidNode)
	}
}

// TestGraph_UndirectedMirror checks that both entries exist and stay in sync.
func TestGraph_UndirectedMirror(t *testing.T) {
	g := line(t, 2)

	ab := g.Connection(0, 1)
	ba := g.Connection(1, 0)
	require.NotNil(t, ab)
	require.NotNil(t, ba)
	assert.Same(t, ba, ab.Mirror())
	assert.Equal(t, 1, g.ConnectionCount())
	assert.Len(t, g.Connections(), 1)

	require.NoError(t, ba.SetCost(4))
	assert.Equal(t, 4.0, ab.Cost())

	ab.SetColor(core.HighlightColor)
	assert.Equal(t, core.HighlightColor, ba.Color())

	assert.ErrorIs(t, ab.SetCost(-1), core.ErrBadCost)
	assert.Equal(t, 4.0, ab.Cost())

	// Removing the reverse orientation drops both entries.
	require.NoError(t, g.RemoveConnection(1, 0))
	assert.Nil(t, g.Connection(0, 1))
	assert.Nil(t, g.Connection(1, 0))
	assert.Zero(t, g.ConnectionCount())
}

// TestGraph_AddConnectionValidation covers cost and loop rejection.
func TestGraph_AddConnectionValidation(t *testing.T) {
	g := line(t, 2)

	_, err := g.AddConnection(0, 0, 1)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	for _, bad := range []float64{-1, nan(), inf()} {
		_, err = g.AddConnection(1, 0, bad)
		assert.ErrorIs(t, err, core.ErrBadCost)
	}

	looped := core.NewGraph[int](core.WithLoops())
	a := looped.AddNode(0)
	c, err := looped.AddConnection(a, a, 2)
	require.NoError(t, err)
	assert.Nil(t, c.Mirror())
	assert.Equal(t, 1, looped.Degree(a))
}

// TestGraph_UniquenessPolicies checks each duplicate policy in directed mode.
func TestGraph_UniquenessPolicies(t *testing.T) {
	cases := []struct {
		policy       core.Uniqueness
		sameDir, rev bool // whether a repeat / reverse add is accepted
	}{
		{core.UniqueUnordered, false, false},
		{core.UniqueOrdered, false, true},
		{core.AllowParallel, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.policy.String(), func(t *testing.T) {
			g := core.NewGraph[int](core.WithDirected(true), core.WithUniqueness(tc.policy))
			a, b := g.AddNode(0), g.AddNode(1)
			_, err := g.AddConnection(a, b, 1)
			require.NoError(t, err)

			assert.Equal(t, tc.sameDir, g.IsUniqueConnection(a, b))
			_, err = g.AddConnection(a, b, 1)
			assert.Equal(t, tc.sameDir, err == nil)

			assert.Equal(t, tc.rev, g.IsUniqueConnection(b, a))
			_, err = g.AddConnection(b, a, 1)
			if tc.rev {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, core.ErrDuplicateConnection)
			}
		})
	}
}

// TestGraph_RemoveNodeDropsIncoming checks directed incoming connections are removed.
func TestGraph_RemoveNodeDropsIncoming(t *testing.T) {
	g := core.NewGraph[int](core.WithDirected(true), core.WithUniqueness(core.UniqueOrdered))
	a, b, c := g.AddNode(0), g.AddNode(1), g.AddNode(2)
	for _, p := range [][2]int{{a, b}, {c, b}, {b, c}} {
		_, err := g.AddConnection(p[0], p[1], 1)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, g.InDegree(b))

	require.NoError(t, g.RemoveNode(b))
	assert.Empty(t, g.NodeConnections(a))
	assert.Empty(t, g.NodeConnections(c))
	assert.Zero(t, g.ConnectionCount())

	for _, idx := range g.ActiveNodes() {
		for _, conn := range g.NodeConnections(idx) {
			assert.True(t, g.IsNodeValid(conn.To()))
		}
	}
}

// TestGraph_RemoveConnectionRef removes one parallel connection only.
func TestGraph_RemoveConnectionRef(t *testing.T) {
	g := core.NewGraph[int](core.WithUniqueness(core.AllowParallel))
	a, b := g.AddNode(0), g.AddNode(1)
	c1, err := g.AddConnection(a, b, 1)
	require.NoError(t, err)
	c2, err := g.AddConnection(a, b, 2)
	require.NoError(t, err)

	require.NoError(t, g.RemoveConnectionRef(c1))
	assert.ErrorIs(t, g.RemoveConnectionRef(c1), core.ErrConnectionNotFound)
	assert.ErrorIs(t, g.RemoveConnectionRef(nil), core.ErrConnectionNotFound)
	assert.Same(t, c2, g.Connection(a, b))
	assert.Equal(t, 1, g.Degree(b))
}

// TestGraph_ConnectionOrder checks insertion order of adjacency lists.
func TestGraph_ConnectionOrder(t *testing.T) {
	g := core.NewGraph[int]()
	hub := g.AddNode(0)
	for i := 1; i <= 4; i++ {
		g.AddNode(i)
	}
	for _, to := range []int{3, 1, 4, 2} {
		_, err := g.AddConnection(hub, to, float64(to))
		require.NoError(t, err)
	}

	var got []int
	for _, c := range g.NodeConnections(hub) {
		got = append(got, c.To())
	}
	assert.Equal(t, []int{3, 1, 4, 2}, got)
}

// TestGraph_ClearAndVersion checks that mutations move Version.
func TestGraph_ClearAndVersion(t *testing.T) {
	g := line(t, 3)
	v := g.Version()

	g.ClearConnections()
	assert.Greater(t, g.Version(), v)
	assert.Equal(t, 3, g.NodeCount())
	assert.Zero(t, g.ConnectionCount())
	assert.Empty(t, g.NodeConnections(1))

	g.Clear()
	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.NodeSlots())
	assert.Equal(t, 0, g.AddNode("Z"))
}
