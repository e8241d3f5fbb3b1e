package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/navgraph/gridgraph"
	"github.com/stretchr/testify/require"
)

// terrainGrid builds a grid from a text map: '.' ground, 'm' mud, '#' water.
func terrainGrid(tb testing.TB, conn gridgraph.Connectivity, rows ...string) *gridgraph.GridGraph[gridgraph.TerrainNode] {
	tb.Helper()
	cols := len(rows[0])
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = conn
	gg, err := gridgraph.NewGridGraph(cols, len(rows), 1, func(idx int) gridgraph.TerrainNode {
		switch rows[idx/cols][idx%cols] {
		case 'm':
			return gridgraph.TerrainNode{Terrain: gridgraph.Mud}
		case '#':
			return gridgraph.TerrainNode{Terrain: gridgraph.Water}
		default:
			return gridgraph.TerrainNode{Terrain: gridgraph.Ground}
		}
	}, opts)
	require.NoError(tb, err)

	return gg
}
