package gridgraph

import (
	"container/list"
	"fmt"

	"github.com/katalvlaran/homeostat/core"
)

// Breach finds the fewest wall cells that must be opened so that goal
// becomes reachable from start, together with one such route.
// Each wall crossed costs 1; open cells cost 0. Moves follow gg.Conn, and
// corners may always be cut since any wall on the way is being removed.
// Returns the cell route (including start and goal) and the wall count; a
// reachable goal therefore reports 0 walls.
//
// Behavior:
//  1. Validate both endpoints are on the grid (walls allowed).
//  2. 0–1‐BFS from start:
//     • Moving into an open cell → cost 0
//     • Moving into a wall       → cost 1
//  3. Stop when goal is popped.
//  4. Reconstruct route via predecessors.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (gg *GridGraph) Breach(start, goal core.NodeID) (route []core.NodeID, walls int, err error) {
	total := gg.Width * gg.Height
	if start < 0 || int(start) >= total || goal < 0 || int(goal) >= total {
		return nil, 0, fmt.Errorf("%w: %d→%d", ErrNoPath, start, goal)
	}

	const inf = int(^uint(0) >> 1)
	dist := make([]int, total)
	prev := make([]int, total)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}
	wall := func(i int) int {
		x, y := gg.Coordinate(i)
		if gg.CellValues[y][x] == Blocked {
			return 1
		}
		return 0
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	dist[start] = wall(int(start))
	dq.PushFront(int(start))
	done := make([]bool, total)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue
		}
		done[u] = true
		if u == int(goal) {
			break
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.index(vx, vy)
			step := wall(v)
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// Reconstruct route
	for at := int(goal); at >= 0; at = prev[at] {
		route = append(route, core.NodeID(at))
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return route, dist[goal], nil
}
