// File: gridgraph/components_test.go
package gridgraph_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/homeostat/gridgraph"
	"github.com/stretchr/testify/require"
)

const X = gridgraph.Blocked

// TestConnectedComponents_Simple4 tests ConnectedComponents on a 4×3 grid
// with orthogonal connectivity (Conn4).
//
// Grid (X = wall):
//
//	X 0 0 X
//	0 0 X X
//	X X 0 0
//
// Expected: 2 regions of sizes 4 and 2.
func TestConnectedComponents_Simple4(t *testing.T) {
	grid := [][]int{
		{X, 0, 0, X},
		{0, 0, X, X},
		{X, X, 0, 0},
	}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn4)
	require.NoError(t, err)

	comps := gg.ConnectedComponents()
	require.Len(t, comps, 2)
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	require.Equal(t, []int{2, 4}, sizes)
}

// TestConnectedComponents_CornerRule shows that Conn8 does not join regions
// touching only at a corner unless CutCorners is set.
//
//	0 X
//	X 0
func TestConnectedComponents_CornerRule(t *testing.T) {
	grid := [][]int{{0, X}, {X, 0}}
	strict, _ := gridgraph.From2D(grid, gridgraph.Conn8)
	require.Len(t, strict.ConnectedComponents(), 2)

	opts := gridgraph.DefaultGridOptions()
	opts.CutCorners = true
	loose, _ := gridgraph.NewGridGraph(grid, opts)
	require.Len(t, loose.ConnectedComponents(), 1)
	require.True(t, loose.Connected(0, 3))
	require.False(t, strict.Connected(0, 3))
}

// TestConnected_Walls checks Connected on walls and sealed cells.
func TestConnected_Walls(t *testing.T) {
	grid := [][]int{
		{0, 0, 0},
		{0, X, X},
		{0, X, 0},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn8)
	goal, _ := gg.ID(2, 2)
	require.False(t, gg.Connected(0, goal))
	require.False(t, gg.Connected(0, 4), "wall endpoint")
	require.True(t, gg.Connected(0, 6))
}
