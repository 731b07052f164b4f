package gridgraph

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/homeostat/core"
)

// Maze carves a perfect maze with randomized depth-first backtracking.
//
// The grid starts solid (every cell Blocked). Carving begins at (1,1) and
// moves two cells at a time, opening the wall cell in between, until every
// odd cell has been visited. An entrance at (0,1) and an exit at
// (width-1,height-2) are then opened, so exactly one simple route joins them.
// The maze uses Conn4 movement.
//
// The same rng seed always yields the same maze.
// Complexity: O(W×H) time and memory.
func Maze(width, height int, rng *rand.Rand) (gg *GridGraph, entrance, exit core.NodeID, err error) {
	if width < 3 || height < 3 || width%2 == 0 || height%2 == 0 {
		return nil, core.NoNode, core.NoNode, fmt.Errorf("%w: %dx%d", ErrMazeSize, width, height)
	}
	cells := make([][]int, height)
	for y := range cells {
		cells[y] = make([]int, width)
		for x := range cells[y] {
			cells[y][x] = Blocked
		}
	}

	type cell struct{ x, y int }
	cells[1][1] = 0
	stack := []cell{{1, 1}}
	dirs := [4][2]int{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })

		moved := false
		for _, d := range dirs {
			nx, ny := cur.x+d[0], cur.y+d[1]
			if nx <= 0 || nx >= width-1 || ny <= 0 || ny >= height-1 || cells[ny][nx] != Blocked {
				continue
			}
			cells[ny][nx] = 0
			cells[cur.y+d[1]/2][cur.x+d[0]/2] = 0
			stack = append(stack, cell{nx, ny})
			moved = true
			break
		}
		if !moved {
			stack = stack[:len(stack)-1] // backtrack
		}
	}
	cells[1][0] = 0
	cells[height-2][width-1] = 0

	gg, err = From2D(cells, Conn4)
	if err != nil {
		return nil, core.NoNode, core.NoNode, err
	}

	return gg, core.NodeID(gg.index(0, 1)), core.NodeID(gg.index(width-1, height-2)), nil
}
