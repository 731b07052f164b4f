// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph package of github.com/katalvlaran/homeostat.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadTerrain indicates an invalid terrain weight or cell value.
	ErrBadTerrain = errors.New("gridgraph: invalid terrain")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrNoPath indicates no breach path exists between two cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
	// ErrMazeSize indicates maze dimensions that are not odd and at least 3.
	ErrMazeSize = errors.New("gridgraph: maze width and height must be odd and ≥ 3")
)

// Blocked marks a wall cell.
const Blocked = -1

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// GridOptions contains tunable parameters for grid navigation.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// TerrainWeight is the extra cost per terrain level of the entered cell.
	TerrainWeight float64
	// CutCorners allows a diagonal move when an orthogonal neighbour is a wall.
	CutCorners bool
}

// DefaultGridOptions returns a GridOptions with default settings:
// Conn=Conn8, TerrainWeight=0, CutCorners=false.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn: Conn8,
	}
}

// GridGraph treats a 2D integer grid as a topology. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the input value.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	TerrainWeight   float64
	CutCorners      bool
	neighborOffsets [][2]int
}
