package astar_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/navgraph/astar"
	"github.com/katalvlaran/navgraph/core"
	"github.com/katalvlaran/navgraph/gridgraph"
	"github.com/katalvlaran/navgraph/internal/logging"
	"github.com/katalvlaran/navgraph/spatial"
	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// grid builds a cols×rows Conn8 grid of unit cells; terrain(idx) picks each cell's terrain.
func grid(t *testing.T, cols, rows int, diag float64, terrain func(int) gridgraph.TerrainType) *gridgraph.GridGraph[gridgraph.TerrainNode] {
	t.Helper()

	return sizedGrid(t, cols, rows, 1, diag, terrain)
}

// sizedGrid is grid with an explicit cell size.
func sizedGrid(t *testing.T, cols, rows int, cellSize, diag float64, terrain func(int) gridgraph.TerrainType) *gridgraph.GridGraph[gridgraph.TerrainNode] {
	t.Helper()
	opts := gridgraph.DefaultGridOptions()
	opts.DiagonalCost = diag
	gg, err := gridgraph.NewGridGraph(cols, rows, cellSize, func(idx int) gridgraph.TerrainNode {
		return gridgraph.TerrainNode{Terrain: terrain(idx)}
	}, opts)
	require.NoError(t, err)

	return gg
}

func ground(int) gridgraph.TerrainType { return gridgraph.Ground }

// bruteForce returns the cheapest simple-path cost from start to goal, or +Inf.
func bruteForce(g astar.Graph, start, goal int) float64 {
	best := math.Inf(1)
	seen := map[int]bool{start: true}
	var walk func(at int, cost float64)
	walk = func(at int, cost float64) {
		if cost >= best {
			return
		}
		if at == goal {
			best = cost
			return
		}
		for _, c := range g.NodeConnections(at) {
			if seen[c.To()] {
				continue
			}
			seen[c.To()] = true
			walk(c.To(), cost+c.Cost())
			seen[c.To()] = false
		}
	}
	walk(start, 0)

	return best
}

// TestFindPath_Validation covers input errors.
func TestFindPath_Validation(t *testing.T) {
	gg := grid(t, 2, 2, 1.5, ground)

	_, err := astar.FindPath(nil, 0, 1)
	assert.ErrorIs(t, err, astar.ErrNilGraph)
	_, err = astar.FindPath(gg, -1, 1)
	assert.ErrorIs(t, err, astar.ErrStartNotFound)
	_, err = astar.FindPath(gg, 0, 4)
	assert.ErrorIs(t, err, astar.ErrGoalNotFound)
}

// TestFindPath_StartIsGoal returns a single-node path.
func TestFindPath_StartIsGoal(t *testing.T) {
	gg := grid(t, 3, 3, 1.5, ground)

	res, err := astar.FindPath(gg, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, res.Nodes)
	assert.Empty(t, res.Connections)
	assert.Zero(t, res.Cost)
}

// TestFindPath_OpenGrid checks the 10×10 diagonal walk.
func TestFindPath_OpenGrid(t *testing.T) {
	gg := grid(t, 10, 10, 1, ground)

	res, err := astar.FindPath(gg, 0, 99)
	require.NoError(t, err)
	assert.Equal(t, 9.0, res.Cost)
	assert.Len(t, res.Nodes, 10)
	assert.Equal(t, 0, res.Nodes[0])
	assert.Equal(t, 99, res.Nodes[9])
	for i, c := range res.Connections {
		assert.Equal(t, res.Nodes[i], c.From())
		assert.Equal(t, res.Nodes[i+1], c.To())
	}
}

// TestFindPath_NoPath returns ErrNoPath behind a wall.
func TestFindPath_NoPath(t *testing.T) {
	gg := grid(t, 3, 3, 1.5, func(idx int) gridgraph.TerrainType {
		if idx%3 == 1 {
			return gridgraph.Water
		}
		return gridgraph.Ground
	})

	res, err := astar.FindPath(gg, 0, 2)
	assert.ErrorIs(t, err, astar.ErrNoPath)
	assert.Nil(t, res)

	// An impassable goal is a valid node without connections.
	_, err = astar.FindPath(gg, 0, 1)
	assert.ErrorIs(t, err, astar.ErrNoPath)
}

// TestFindPath_MatchesBruteForce compares against exhaustive search on random 3×3 terrain.
func TestFindPath_MatchesBruteForce(t *testing.T) {
	kinds := []astar.HeuristicKind{astar.KindChebyshev, astar.KindEuclidean, astar.KindOctile}
	rng := rand.New(rand.NewSource(7))
	terrains := []gridgraph.TerrainType{gridgraph.Ground, gridgraph.Ground, gridgraph.Mud, gridgraph.Water}

	for trial := 0; trial < 25; trial++ {
		cells := make([]gridgraph.TerrainType, 9)
		for i := range cells {
			cells[i] = terrains[rng.Intn(len(terrains))]
		}
		gg := grid(t, 3, 3, 1.5, func(idx int) gridgraph.TerrainType { return cells[idx] })

		for start := 0; start < 9; start++ {
			for goal := 0; goal < 9; goal++ {
				want := bruteForce(gg, start, goal)
				for _, k := range kinds {
					res, err := astar.FindPath(gg, start, goal, astar.WithHeuristic(k.Func()))
					if math.IsInf(want, 1) {
						assert.ErrorIs(t, err, astar.ErrNoPath, "trial %d %d→%d %s", trial, start, goal, k)
						continue
					}
					require.NoError(t, err, "trial %d %d→%d %s", trial, start, goal, k)
					assert.InDelta(t, want, res.Cost, 1e-9, "trial %d %d→%d %s", trial, start, goal, k)
				}
			}
		}
	}
}

// TestFindPath_LargeCellsMatchBruteForce checks the grid's heuristic scale
// keeps A* optimal when a cell spans many world units.
func TestFindPath_LargeCellsMatchBruteForce(t *testing.T) {
	kinds := []astar.HeuristicKind{astar.KindChebyshev, astar.KindOctile}
	rng := rand.New(rand.NewSource(19))
	terrains := []gridgraph.TerrainType{gridgraph.Ground, gridgraph.Ground, gridgraph.Mud, gridgraph.Water}

	for trial := 0; trial < 5; trial++ {
		cells := make([]gridgraph.TerrainType, 16)
		for i := range cells {
			cells[i] = terrains[rng.Intn(len(terrains))]
		}
		gg := sizedGrid(t, 4, 4, 10, 1.5, func(idx int) gridgraph.TerrainType { return cells[idx] })

		for start := 0; start < 16; start++ {
			for goal := 0; goal < 16; goal++ {
				want := bruteForce(gg, start, goal)
				for _, k := range kinds {
					res, err := astar.FindPath(gg, start, goal, astar.WithHeuristic(k.Func()))
					if math.IsInf(want, 1) {
						assert.ErrorIs(t, err, astar.ErrNoPath, "trial %d %d→%d %s", trial, start, goal, k)
						continue
					}
					require.NoError(t, err, "trial %d %d→%d %s", trial, start, goal, k)
					assert.InDelta(t, want, res.Cost, 1e-9, "trial %d %d→%d %s", trial, start, goal, k)
				}
			}
		}
	}
}

// TestFindPath_ExplicitScaleWins checks WithHeuristicScale overrides the grid's value.
func TestFindPath_ExplicitScaleWins(t *testing.T) {
	gg := sizedGrid(t, 6, 6, 10, 1.5, ground)

	var scaled, blind int
	res, err := astar.FindPath(gg, 0, 35, astar.WithOnExpand(func(int, float64) { scaled++ }))
	require.NoError(t, err)
	assert.Equal(t, 7.5, res.Cost)

	// Scale 0 turns the search into Dijkstra: same cost, more expansions.
	res, err = astar.FindPath(gg, 0, 35,
		astar.WithHeuristicScale(0),
		astar.WithOnExpand(func(int, float64) { blind++ }),
	)
	require.NoError(t, err)
	assert.Equal(t, 7.5, res.Cost)
	assert.Greater(t, blind, scaled)
}

// wallRow returns terrain for a 10×10 grid whose row 5 is water, except
// column gap when gap >= 0.
func wallRow(gap int) func(int) gridgraph.TerrainType {
	return func(idx int) gridgraph.TerrainType {
		if idx/10 == 5 && idx%10 != gap {
			return gridgraph.Water
		}
		return gridgraph.Ground
	}
}

// TestFindPath_RoutesThroughGap crosses a blocked row through its single gap.
func TestFindPath_RoutesThroughGap(t *testing.T) {
	gg := grid(t, 10, 10, 1.5, wallRow(7))
	start, goal, gap := gg.Index(2, 0), gg.Index(2, 9), gg.Index(7, 5)

	res, err := astar.FindPath(gg, start, goal)
	require.NoError(t, err)
	assert.Contains(t, res.Nodes, gap)
	for _, idx := range res.Nodes {
		assert.True(t, gg.IsPassable(idx), "blocked cell %d on path", idx)
	}
	// Octile (2,0)→(7,5) is 5 diagonals; (7,5)→(2,9) is 4 diagonals + 1 straight.
	assert.Equal(t, 14.5, res.Cost)
	assert.Equal(t, cheapest(gg, start, goal), res.Cost)
}

// TestFindPath_BlockedRow returns ErrNoPath when the row has no gap.
func TestFindPath_BlockedRow(t *testing.T) {
	gg := grid(t, 10, 10, 1.5, wallRow(-1))

	_, err := astar.FindPath(gg, gg.Index(2, 0), gg.Index(2, 9))
	assert.ErrorIs(t, err, astar.ErrNoPath)
}

// cheapest is a plain O(V²) Dijkstra over every node, used as a reference on
// grids too large for bruteForce.
func cheapest(g *gridgraph.GridGraph[gridgraph.TerrainNode], start, goal int) float64 {
	n := g.NodeSlots()
	dist := make([]float64, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[start] = 0
	for {
		u := -1
		for i := 0; i < n; i++ {
			if !done[i] && !math.IsInf(dist[i], 1) && (u < 0 || dist[i] < dist[u]) {
				u = i
			}
		}
		if u < 0 {
			return dist[goal]
		}
		done[u] = true
		for _, c := range g.NodeConnections(u) {
			if d := dist[u] + c.Cost(); d < dist[c.To()] {
				dist[c.To()] = d
			}
		}
	}
}

// TestFindPath_TieBreakFirstEncountered prefers the route pushed first.
func TestFindPath_TieBreakFirstEncountered(t *testing.T) {
	g := spatial.New[spatial.Node](nil)
	s := g.AddNode(spatial.NewNode(orb.Point{0, 0}))
	a := g.AddNode(spatial.NewNode(orb.Point{1, 1}))
	b := g.AddNode(spatial.NewNode(orb.Point{1, -1}))
	goal := g.AddNode(spatial.NewNode(orb.Point{2, 0}))
	for _, p := range [][2]int{{s, a}, {s, b}, {a, goal}, {b, goal}} {
		_, err := g.AddConnection(p[0], p[1], 1)
		require.NoError(t, err)
	}

	res, err := astar.FindPath(g, s, goal)
	require.NoError(t, err)
	assert.Equal(t, []int{s, a, goal}, res.Nodes)
}

// TestFindPath_ReopensClosedNode uses an inconsistent heuristic that closes B
// through the expensive route before the cheap one is found.
func TestFindPath_ReopensClosedNode(t *testing.T) {
	g := spatial.New[spatial.Node](nil)
	s := g.AddNode(spatial.NewNode(orb.Point{0, 0}))
	a := g.AddNode(spatial.NewNode(orb.Point{5, 0})) // h(A)=5, still admissible
	b := g.AddNode(spatial.NewNode(orb.Point{0, 0}))
	c := g.AddNode(spatial.NewNode(orb.Point{0, 0}))
	goal := g.AddNode(spatial.NewNode(orb.Point{0, 0}))
	for _, e := range []struct {
		from, to int
		cost     float64
	}{{s, a, 1}, {s, b, 4}, {a, b, 1}, {b, c, 1}, {c, goal, 5}} {
		_, err := g.AddConnection(e.from, e.to, e.cost)
		require.NoError(t, err)
	}

	var order []int
	res, err := astar.FindPath(g, s, goal,
		astar.WithHeuristic(astar.Manhattan),
		astar.WithOnExpand(func(idx int, _ float64) { order = append(order, idx) }),
	)
	require.NoError(t, err)
	assert.Equal(t, 8.0, res.Cost)
	assert.Equal(t, []int{s, a, b, c, goal}, res.Nodes)
	assert.Equal(t, []int{s, b, c, a, b, c}, order)
	assert.Equal(t, 6, res.Expanded)
}

// TestFindPath_Directed follows connection direction only.
func TestFindPath_Directed(t *testing.T) {
	g := spatial.New[spatial.Node]([]core.GraphOption{core.WithDirected(true)})
	a := g.AddNode(spatial.NewNode(orb.Point{0, 0}))
	b := g.AddNode(spatial.NewNode(orb.Point{1, 0}))
	_, err := g.AddConnection(a, b, 1)
	require.NoError(t, err)

	res, err := astar.FindPath(g, a, b)
	require.NoError(t, err)
	assert.Equal(t, []int{a, b}, res.Nodes)

	_, err = astar.FindPath(g, b, a)
	assert.ErrorIs(t, err, astar.ErrNoPath)
}

// TestFindPath_Canceled stops on a done context.
func TestFindPath_Canceled(t *testing.T) {
	gg := grid(t, 4, 4, 1.5, ground)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := astar.FindPath(gg, 0, 15, astar.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestFindPath_Logs emits a debug summary through the context logger.
func TestFindPath_Logs(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	ctx := logging.WithLogger(context.Background(), logger)
	gg := grid(t, 3, 1, 1.5, ground)

	_, err := astar.FindPath(gg, 0, 2, astar.WithContext(ctx))
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "astar: path found", entry.Message)
	assert.Equal(t, 2.0, entry.Data["cost"])
	assert.Equal(t, 0, entry.Data["start"])
}

// TestOptions_Panic checks option constructors reject bad input.
func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { astar.WithHeuristic(nil) })
	assert.Panics(t, func() { astar.WithHeuristicScale(-1) })
	assert.Panics(t, func() { astar.WithHeuristicScale(math.Inf(1)) })
}

// TestHeuristics checks the built-in formulas.
func TestHeuristics(t *testing.T) {
	assert.Equal(t, 7.0, astar.Manhattan(3, 4))
	assert.Equal(t, 5.0, astar.Euclidean(3, 4))
	assert.Equal(t, 25.0, astar.SquaredEuclidean(3, 4))
	assert.Equal(t, 4.0, astar.Chebyshev(3, 4))
	assert.InDelta(t, 1+3*math.Sqrt2, astar.Octile(3, 4), 1e-12)
	assert.Equal(t, "octile", astar.KindOctile.String())
	assert.Equal(t, 4.0, astar.HeuristicKind(42).Func()(3, 4))
}
