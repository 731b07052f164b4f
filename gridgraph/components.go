package gridgraph

import "github.com/katalvlaran/homeostat/core"

// ConnectedComponents finds all regions of open cells that are mutually
// reachable under the grid's movement rules (gg.Conn, CutCorners).
// Returns a slice of components; each component lists NodeIDs in BFS order,
// and components are ordered by their smallest row-major cell.
//
// To convert an id back to (x,y), use Coordinate(int(id)).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]core.NodeID {
	total := gg.Width * gg.Height
	seen := make([]bool, total)
	var comps [][]core.NodeID

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] || !gg.Valid(core.NodeID(i0)) {
			continue
		}
		// BFS to collect component
		queue := []core.NodeID{core.NodeID(i0)}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, arc := range gg.Neighbors(queue[qi]) {
				if !seen[arc.To] {
					seen[arc.To] = true
					queue = append(queue, arc.To)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// Connected reports whether b can be reached from a.
// Time: O(W·H·d) worst case.
func (gg *GridGraph) Connected(a, b core.NodeID) bool {
	if !gg.Valid(a) || !gg.Valid(b) {
		return false
	}
	seen := make([]bool, gg.Width*gg.Height)
	seen[a] = true
	queue := []core.NodeID{a}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == b {
			return true
		}
		for _, arc := range gg.Neighbors(u) {
			if !seen[arc.To] {
				seen[arc.To] = true
				queue = append(queue, arc.To)
			}
		}
	}

	return false
}
