package control

import (
	"github.com/katalvlaran/homeostat/core"
	"github.com/katalvlaran/homeostat/pathfind"
)

// StructuralContribution scores how much the move in s continues the recent
// direction of travel, in [0,1].
//
// The headings of the last window moves of the trail (from s.Trail and
// s.From) are averaged with the heading of the candidate move; the result
// is the squared length of that mean. With no usable history the bearing
// from s.From to goal stands in for the previous heading.
func StructuralContribution(t core.Topology, goal core.NodeID, s pathfind.Step, window int) float64 {
	from := t.Position(s.From)
	sum := unit(t.Position(s.To).Sub(from))
	count := 1

	if window > 0 && len(s.Trail) > 0 {
		// Moves: Trail[0]→Trail[1] … Trail[n-1]→From; keep the last window.
		first := len(s.Trail) - window
		if first < 0 {
			first = 0
		}
		for i := first; i < len(s.Trail); i++ {
			next := from
			if i+1 < len(s.Trail) {
				next = t.Position(s.Trail[i+1])
			}
			sum += unit(next.Sub(t.Position(s.Trail[i])))
			count++
		}
	} else {
		sum += unit(t.Position(goal).Sub(from))
		count++
	}
	mean := sum / complex(float64(count), 0)

	return real(mean)*real(mean) + imag(mean)*imag(mean)
}

// CostFunc prices moves for one search with the weight of p, captured by
// value: base + p.Weight · StructuralContribution.
func CostFunc(t core.Topology, goal core.NodeID, p Policy, window int) pathfind.CostFunc {
	w := p.Weight
	if w == 0 {
		return pathfind.BaseCost
	}
	return func(s pathfind.Step) float64 {
		return s.Base + w*StructuralContribution(t, goal, s, window)
	}
}

// unit returns d/|d| as a complex number, or 0 for a zero vector.
func unit(d core.Point) complex128 {
	m := d.Len()
	if m == 0 {
		return 0
	}
	return complex(d.X/m, d.Y/m)
}
