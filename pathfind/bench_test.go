package pathfind_test

import (
	"testing"

	"github.com/katalvlaran/homeostat/gridgraph"
	"github.com/katalvlaran/homeostat/pathfind"
)

// BenchmarkFindPath_History2 measures an A* search over (node, trail) states
// on an open 64×64 grid.
func BenchmarkFindPath_History2(b *testing.B) {
	gg, _ := gridgraph.Open(64, 64, gridgraph.Conn8)
	goal, _ := gg.ID(63, 40)
	h := pathfind.Octile(gg, goal)
	cost := repeatPenalty(gg)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pathfind.FindPath(gg, 0, goal, cost,
			pathfind.WithHeuristic(h), pathfind.WithHistory(2)); err != nil {
			b.Fatal(err)
		}
	}
}
