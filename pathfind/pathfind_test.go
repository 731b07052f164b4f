// Package pathfind_test contains unit tests for FindPath.
// These tests validate input checking, Dijkstra and A* agreement, FIFO
// tie-breaking, history-dependent costs, clamping and budgets.
package pathfind_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/homeostat/core"
	"github.com/katalvlaran/homeostat/gridgraph"
	"github.com/katalvlaran/homeostat/pathfind"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestFindPath_Validation(t *testing.T) {
	gg, _ := gridgraph.From2D([][]int{{0, 0, gridgraph.Blocked}}, gridgraph.Conn4)
	cases := []struct {
		name  string
		topo  core.Topology
		start core.NodeID
		goal  core.NodeID
		cost  pathfind.CostFunc
		opts  []pathfind.Option
		err   error
	}{
		{"NilTopology", nil, 0, 1, pathfind.BaseCost, nil, pathfind.ErrNilTopology},
		{"NilCost", gg, 0, 1, nil, nil, pathfind.ErrNilCost},
		{"HistoryTooLarge", gg, 0, 1, pathfind.BaseCost, []pathfind.Option{pathfind.WithHistory(pathfind.MaxHistory + 1)}, pathfind.ErrBadHistory},
		{"HistoryNegative", gg, 0, 1, pathfind.BaseCost, []pathfind.Option{pathfind.WithHistory(-1)}, pathfind.ErrBadHistory},
		{"ZeroBudget", gg, 0, 1, pathfind.BaseCost, []pathfind.Option{pathfind.WithMaxExpansions(0)}, pathfind.ErrBadBudget},
		{"NegativeCap", gg, 0, 1, pathfind.BaseCost, []pathfind.Option{pathfind.WithMaxCost(-1)}, pathfind.ErrBadBudget},
		{"WallGoal", gg, 0, 2, pathfind.BaseCost, nil, pathfind.ErrInvalidNode},
		{"OffGridStart", gg, 9, 1, pathfind.BaseCost, nil, pathfind.ErrInvalidNode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pathfind.FindPath(tc.topo, tc.start, tc.goal, tc.cost, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Fatalf("FindPath error = %v; want %v", err, tc.err)
			}
		})
	}
}

// ------------------------------------------------------------------------
// 2. Basic Functionality
// ------------------------------------------------------------------------

func TestFindPath_Triangle(t *testing.T) {
	// Graph: A-B(1), B-C(2), A-C(5), undirected.
	g := core.NewGraph()
	a, _ := g.AddNode("A", core.Point{})
	b, _ := g.AddNode("B", core.Point{X: 1})
	c, _ := g.AddNode("C", core.Point{X: 2})
	require.NoError(t, g.AddEdge(a, b, 1))
	require.NoError(t, g.AddEdge(b, c, 2))
	require.NoError(t, g.AddEdge(a, c, 5))

	res, err := pathfind.FindPath(g, a, c, pathfind.BaseCost)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, []core.NodeID{a, b, c}, res.Path.Nodes)
	require.Equal(t, 3.0, res.Path.Cost)
	require.Zero(t, res.Clamped)
}

func TestFindPath_StartIsGoal(t *testing.T) {
	gg, _ := gridgraph.Open(2, 2, gridgraph.Conn4)
	res, err := pathfind.FindPath(gg, 3, 3, pathfind.BaseCost)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, []core.NodeID{3}, res.Path.Nodes)
	require.Zero(t, res.Path.Cost)
}

func TestFindPath_AStarMatchesDijkstra(t *testing.T) {
	grid := make([][]int, 12)
	for y := range grid {
		grid[y] = make([]int, 12)
	}
	for y := 0; y < 9; y++ {
		grid[y][6] = gridgraph.Blocked
	}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn8)
	require.NoError(t, err)
	start, _ := gg.ID(0, 0)
	goal, _ := gg.ID(11, 0)

	dij, err := pathfind.FindPath(gg, start, goal, pathfind.BaseCost)
	require.NoError(t, err)
	ast, err := pathfind.FindPath(gg, start, goal, pathfind.BaseCost,
		pathfind.WithHeuristic(pathfind.Octile(gg, goal)))
	require.NoError(t, err)

	require.True(t, dij.Found)
	require.True(t, ast.Found)
	require.InDelta(t, dij.Path.Cost, ast.Path.Cost, 1e-9)
	require.Less(t, ast.Expanded, dij.Expanded)
	require.Equal(t, start, ast.Path.Nodes[0])
	require.Equal(t, goal, ast.Path.Nodes[len(ast.Path.Nodes)-1])
	for i := 1; i < ast.Path.Len(); i++ {
		require.NotEqual(t, ast.Path.Nodes[i-1], ast.Path.Nodes[i])
	}
}

func TestFindPath_DiagonalOnOpenGrid(t *testing.T) {
	gg, _ := gridgraph.Open(10, 10, gridgraph.Conn8)
	goal, _ := gg.ID(9, 9)
	res, err := pathfind.FindPath(gg, 0, goal, pathfind.BaseCost,
		pathfind.WithHeuristic(pathfind.Octile(gg, goal)))
	require.NoError(t, err)
	require.Equal(t, 10, res.Path.Len())
	require.InDelta(t, 9*math.Sqrt2, res.Path.Cost, 1e-9)
}

// ------------------------------------------------------------------------
// 3. Determinism: FIFO tie-breaking among equal priorities
// ------------------------------------------------------------------------

func TestFindPath_FIFOTies(t *testing.T) {
	// 3×3 Conn4 grid: six equal-cost routes from (0,0) to (2,2).
	// Neighbours are generated N, E, S, W, so east moves are queued first.
	gg, _ := gridgraph.Open(3, 3, gridgraph.Conn4)
	first, err := pathfind.FindPath(gg, 0, 8, pathfind.BaseCost)
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{0, 1, 2, 5, 8}, first.Path.Nodes)

	for i := 0; i < 5; i++ {
		again, _ := pathfind.FindPath(gg, 0, 8, pathfind.BaseCost)
		require.Equal(t, first, again)
	}
}

// ------------------------------------------------------------------------
// 4. History-dependent costs
// ------------------------------------------------------------------------

// repeatPenalty charges 5 extra for repeating the previous move's direction.
func repeatPenalty(t core.Topology) pathfind.CostFunc {
	return func(s pathfind.Step) float64 {
		c := s.Base
		if len(s.Trail) > 0 {
			prev := t.Position(s.From).Sub(t.Position(s.Trail[len(s.Trail)-1]))
			next := t.Position(s.To).Sub(t.Position(s.From))
			if prev == next {
				c += 5
			}
		}
		return c
	}
}

func TestFindPath_HistoryMakesCostExact(t *testing.T) {
	// 4×2 Conn4 grid, (0,0) → (3,0). Repeating a direction costs 5 more,
	// so the unique optimum zig-zags E,S,E,N,E at cost 5.
	gg, _ := gridgraph.Open(4, 2, gridgraph.Conn4)

	res, err := pathfind.FindPath(gg, 0, 3, repeatPenalty(gg), pathfind.WithHistory(1))
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, []core.NodeID{0, 1, 5, 6, 2, 3}, res.Path.Nodes)
	require.Equal(t, 5.0, res.Path.Cost)

	// Without history the cost function never sees a trail.
	flat, err := pathfind.FindPath(gg, 0, 3, repeatPenalty(gg))
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{0, 1, 2, 3}, flat.Path.Nodes)
}

func TestFindPath_TrailWindow(t *testing.T) {
	gg, _ := gridgraph.Open(5, 5, gridgraph.Conn8)
	goal, _ := gg.ID(4, 2)
	var sawEmpty bool
	cost := func(s pathfind.Step) float64 {
		require.LessOrEqual(t, len(s.Trail), 2)
		if len(s.Trail) == 0 {
			require.Equal(t, core.NodeID(0), s.From)
			sawEmpty = true
		} else {
			require.NotEqual(t, s.Trail[len(s.Trail)-1], s.To, "immediate reversal expanded")
		}
		return s.Base
	}
	res, err := pathfind.FindPath(gg, 0, goal, cost, pathfind.WithHistory(2))
	require.NoError(t, err)
	require.True(t, res.Found)
	require.True(t, sawEmpty)
}

func TestFindPath_CostCalledOncePerRelaxation(t *testing.T) {
	gg, _ := gridgraph.Open(6, 6, gridgraph.Conn8)
	goal, _ := gg.ID(5, 5)
	calls := 0
	cost := func(s pathfind.Step) float64 {
		calls++
		return s.Base
	}
	res, err := pathfind.FindPath(gg, 0, goal, cost)
	require.NoError(t, err)

	bound := 0
	for id := 0; id < 36; id++ {
		bound += len(gg.Neighbors(core.NodeID(id)))
	}
	require.Positive(t, calls)
	require.LessOrEqual(t, calls, bound)
	require.LessOrEqual(t, res.Expanded, 36)
}

// ------------------------------------------------------------------------
// 5. Defensive behavior: clamping, impassable moves, budgets, walls
// ------------------------------------------------------------------------

func TestFindPath_ClampsNegativeCost(t *testing.T) {
	gg, _ := gridgraph.Open(4, 1, gridgraph.Conn4)
	res, err := pathfind.FindPath(gg, 0, 3, func(pathfind.Step) float64 { return -2 })
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Zero(t, res.Path.Cost)
	require.Positive(t, res.Clamped)

	nan, err := pathfind.FindPath(gg, 0, 3, func(pathfind.Step) float64 { return math.NaN() })
	require.NoError(t, err)
	require.True(t, nan.Found)
	require.Positive(t, nan.Clamped)
}

func TestFindPath_InfiniteCostIsImpassable(t *testing.T) {
	gg, _ := gridgraph.Open(3, 2, gridgraph.Conn4)
	// Forbid entering (1,0); the route must detour through row 1.
	cost := func(s pathfind.Step) float64 {
		if s.To == 1 {
			return math.Inf(1)
		}
		return s.Base
	}
	res, err := pathfind.FindPath(gg, 0, 2, cost)
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{0, 3, 4, 5, 2}, res.Path.Nodes)
}

func TestFindPath_Budgets(t *testing.T) {
	gg, _ := gridgraph.Open(20, 20, gridgraph.Conn8)
	goal, _ := gg.ID(19, 19)

	res, err := pathfind.FindPath(gg, 0, goal, pathfind.BaseCost, pathfind.WithMaxExpansions(3))
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Equal(t, 3, res.Expanded)

	capped, err := pathfind.FindPath(gg, 0, goal, pathfind.BaseCost, pathfind.WithMaxCost(5))
	require.NoError(t, err)
	require.False(t, capped.Found)
}

func TestFindPath_WalledGoal(t *testing.T) {
	grid := [][]int{
		{0, 0, 0, 0},
		{0, 0, gridgraph.Blocked, gridgraph.Blocked},
		{0, 0, gridgraph.Blocked, 0},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn8)
	goal, _ := gg.ID(3, 2)
	res, err := pathfind.FindPath(gg, 0, goal, pathfind.BaseCost, pathfind.WithHistory(2))
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Empty(t, res.Path.Nodes)
	require.Positive(t, res.Expanded)
}

// ------------------------------------------------------------------------
// 6. Heuristics
// ------------------------------------------------------------------------

func TestHeuristics(t *testing.T) {
	gg, _ := gridgraph.Open(4, 2, gridgraph.Conn8)
	goal, _ := gg.ID(3, 1)
	require.InDelta(t, 3+(math.Sqrt2-1), pathfind.Octile(gg, goal)(0), 1e-12)
	require.InDelta(t, math.Sqrt(10), pathfind.Euclidean(gg, goal)(0), 1e-12)
	require.Equal(t, 4.0, pathfind.Manhattan(gg, goal)(0))
	require.Zero(t, pathfind.Octile(gg, goal)(goal))
}
