package loop_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/homeostat/control"
	"github.com/katalvlaran/homeostat/gridgraph"
	"github.com/katalvlaran/homeostat/loop"
	"github.com/katalvlaran/homeostat/pathfind"
)

// ExampleAgent_Run shows the first cycle on an open grid: with no penalty
// the agent walks the straight diagonal, which scores as fully regular, and
// the controller responds by raising the weight.
func ExampleAgent_Run() {
	gg, _ := gridgraph.Open(10, 10, gridgraph.Conn8)
	goal, _ := gg.ID(9, 9)
	ctrl, _ := control.New(control.Config{TargetNorm: 0.25, ProportionalGain: 5, DecayRate: 0.01})
	a, _ := loop.New(gg, 0, goal, ctrl,
		loop.WithHistory(2),
		loop.WithHeuristic(pathfind.Octile(gg, goal)))

	recs, _ := a.Run(context.Background(), 2)
	for _, r := range recs {
		fmt.Printf("cycle=%d nodes=%d norm=%.2f weight=%.2f→%.2f\n",
			r.Cycle, r.PathLength, r.Norm, r.WeightUsed, r.Weight)
	}

	// Output:
	// cycle=1 nodes=10 norm=1.00 weight=0.00→3.75
	// cycle=2 nodes=19 norm=0.24 weight=3.75→3.67
}
