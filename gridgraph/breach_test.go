package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/homeostat/core"
	"github.com/katalvlaran/homeostat/gridgraph"
	"github.com/stretchr/testify/require"
)

// TestBreach_SealedGoal reports a single wall between the start region and a
// walled-off goal cell.
func TestBreach_SealedGoal(t *testing.T) {
	grid := [][]int{
		{0, 0, 0, 0},
		{0, 0, X, X},
		{0, 0, X, 0},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn8)
	goal, _ := gg.ID(3, 2)

	route, walls, err := gg.Breach(0, goal)
	require.NoError(t, err)
	require.Equal(t, 1, walls)
	require.Equal(t, core.NodeID(0), route[0])
	require.Equal(t, goal, route[len(route)-1])
}

// TestBreach_Reachable reports zero walls for connected cells.
func TestBreach_Reachable(t *testing.T) {
	gg, _ := gridgraph.Open(5, 1, gridgraph.Conn4)
	route, walls, err := gg.Breach(0, 4)
	require.NoError(t, err)
	require.Zero(t, walls)
	require.Equal(t, []core.NodeID{0, 1, 2, 3, 4}, route)
}

// TestBreach_Row converts three walls in a row.
func TestBreach_Row(t *testing.T) {
	gg, _ := gridgraph.From2D([][]int{{0, X, X, X, 0}}, gridgraph.Conn4)
	route, walls, err := gg.Breach(0, 4)
	require.NoError(t, err)
	require.Equal(t, 3, walls)
	require.Len(t, route, 5)
}

// TestBreach_OutOfRange rejects endpoints off the grid.
func TestBreach_OutOfRange(t *testing.T) {
	gg, _ := gridgraph.Open(2, 2, gridgraph.Conn4)
	_, _, err := gg.Breach(0, 4)
	require.ErrorIs(t, err, gridgraph.ErrNoPath)
}
