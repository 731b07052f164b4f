package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/homeostat/core"
)

var (
	conn4Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	conn8Offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrBadTerrain for cells
// below Blocked or an invalid TerrainWeight.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.TerrainWeight < 0 || math.IsNaN(opts.TerrainWeight) || math.IsInf(opts.TerrainWeight, 0) {
		return nil, fmt.Errorf("%w: terrain weight %v", ErrBadTerrain, opts.TerrainWeight)
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		for x, v := range values[y] {
			if v < Blocked {
				return nil, fmt.Errorf("%w: cell (%d,%d)=%d", ErrBadTerrain, x, y, v)
			}
			cells[y][x] = v
		}
	}
	offsets := conn4Offsets
	if opts.Conn == Conn8 {
		offsets = conn8Offsets
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		TerrainWeight:   opts.TerrainWeight,
		CutCorners:      opts.CutCorners,
		neighborOffsets: offsets,
	}, nil
}

// From2D is NewGridGraph with default options and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// Open builds a wall-free, flat grid of the given size.
func Open(width, height int, conn Connectivity) (*GridGraph, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	values := make([][]int, height)
	for y := range values {
		values[y] = make([]int, width)
	}

	return From2D(values, conn)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// ID maps (x,y) to its NodeID, or ErrOutOfBounds.
func (gg *GridGraph) ID(x, y int) (core.NodeID, error) {
	if !gg.InBounds(x, y) {
		return core.NoNode, fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, x, y, gg.Width, gg.Height)
	}

	return core.NodeID(gg.index(x, y)), nil
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// open reports whether (x,y) is on the grid and not a wall.
func (gg *GridGraph) open(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] != Blocked
}

// Valid reports whether id is an open cell.
func (gg *GridGraph) Valid(id core.NodeID) bool {
	if id < 0 || int(id) >= gg.Width*gg.Height {
		return false
	}
	x, y := gg.Coordinate(int(id))

	return gg.open(x, y)
}

// Position returns the cell coordinate of id.
func (gg *GridGraph) Position(id core.NodeID) core.Point {
	x, y := gg.Coordinate(int(id))

	return core.Point{X: float64(x), Y: float64(y)}
}

// Neighbors returns the open cells reachable in one move from id, in offset
// order, with base cost step length × (1 + TerrainWeight × level).
// Walls and out-of-range ids yield nil.
// Complexity: O(d).
func (gg *GridGraph) Neighbors(id core.NodeID) []core.Arc {
	if !gg.Valid(id) {
		return nil
	}
	x, y := gg.Coordinate(int(id))
	out := make([]core.Arc, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if !gg.open(nx, ny) {
			continue
		}
		step := 1.0
		if d[0] != 0 && d[1] != 0 {
			// Diagonal: both orthogonal cells must be open unless corners may be cut.
			if !gg.CutCorners && (!gg.open(x+d[0], y) || !gg.open(x, y+d[1])) {
				continue
			}
			step = math.Sqrt2
		}
		level := float64(gg.CellValues[ny][nx])
		out = append(out, core.Arc{
			To:   core.NodeID(gg.index(nx, ny)),
			Cost: step * (1 + gg.TerrainWeight*level),
		})
	}

	return out
}

// ToCoreGraph converts the GridGraph into an undirected *core.Graph.
// Each open cell at (x,y) becomes a node labelled "x,y" at the same position.
// Edges carry the base cost of the move in each direction; since terrain
// cost depends on the entered cell, a directed graph is produced whenever
// TerrainWeight is non-zero.
// Complexity: O(W×H×d + E) time, Memory: O(W×H + E).
func (gg *GridGraph) ToCoreGraph() *core.Graph {
	var opts []core.GraphOption
	if gg.TerrainWeight != 0 {
		opts = append(opts, core.WithDirected())
	}
	g := core.NewGraph(opts...)
	ids := make(map[core.NodeID]core.NodeID, gg.Width*gg.Height)
	// Add all open cells
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.open(x, y) {
				continue
			}
			id, _ := g.AddNode(gg.vertexID(x, y), core.Point{X: float64(x), Y: float64(y)})
			ids[core.NodeID(gg.index(x, y))] = id
		}
	}
	// Add edges for each neighbor pair in row-major order
	for i := 0; i < gg.Width*gg.Height; i++ {
		u := core.NodeID(i)
		gu, ok := ids[u]
		if !ok {
			continue
		}
		for _, arc := range gg.Neighbors(u) {
			// Undirected graphs mirror edges; add each pair once.
			if !g.Directed() && arc.To < u {
				continue
			}
			_ = g.AddEdge(gu, ids[arc.To], arc.Cost)
		}
	}

	return g
}

// vertexID formats the label for cell (x,y).
func (gg *GridGraph) vertexID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

var _ core.Topology = (*GridGraph)(nil)
