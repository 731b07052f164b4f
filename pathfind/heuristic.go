package pathfind

import (
	"math"

	"github.com/katalvlaran/homeostat/core"
)

// Octile is the 8-connected grid distance to goal: diagonal moves cost √2.
// Admissible whenever every move costs at least its Euclidean length.
func Octile(t core.Topology, goal core.NodeID) Heuristic {
	g := t.Position(goal)
	return func(from core.NodeID) float64 {
		d := t.Position(from).Sub(g)
		dx, dy := math.Abs(d.X), math.Abs(d.Y)
		return math.Max(dx, dy) + (math.Sqrt2-1)*math.Min(dx, dy)
	}
}

// Euclidean is the straight-line distance to goal.
func Euclidean(t core.Topology, goal core.NodeID) Heuristic {
	g := t.Position(goal)
	return func(from core.NodeID) float64 {
		return t.Position(from).Sub(g).Len()
	}
}

// Manhattan is the 4-connected grid distance to goal.
func Manhattan(t core.Topology, goal core.NodeID) Heuristic {
	g := t.Position(goal)
	return func(from core.NodeID) float64 {
		d := t.Position(from).Sub(g)
		return math.Abs(d.X) + math.Abs(d.Y)
	}
}
