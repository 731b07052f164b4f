// Package gridgraph treats a 2D grid of cells as a navigable topology for
// the path search, with walls, terrain levels and 4- or 8-connectivity.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid. Cells equal to Blocked are
//     walls; values ≥ 0 are terrain levels that scale the cost of entering
//     the cell.
//   - Implements core.Topology: Neighbors, Valid, Position. NodeIDs are
//     row-major cell indices (y*Width + x).
//   - Identifies connected open regions.
//   - Breach computes the fewest walls separating two cells (0-1 BFS).
//   - Maze carves a random perfect maze by depth-first backtracking.
//   - ToCoreGraph exports the grid as an explicit *core.Graph.
//
// Costs:
//
//	base(a→b) = |b-a| × (1 + TerrainWeight × level(b))
//
//	so an open, flat grid costs 1 per orthogonal move and √2 per diagonal.
//
// Complexity:
//
//   - Neighbors:           O(d), d = 4 or 8.
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//   - Breach:              O(W×H×d), Memory: O(W×H).
//   - Maze:                O(W×H),   Memory: O(W×H).
//   - ToCoreGraph:         O(W×H×d), Memory: O(W×H + E).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.TerrainWeight: extra cost per terrain level (≥ 0).
//   - GridOptions.CutCorners: allow diagonal moves that squeeze past walls.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadTerrain: negative or non-finite TerrainWeight, or a cell below Blocked.
//   - ErrOutOfBounds: a coordinate outside the grid.
//   - ErrNoPath: Breach endpoints are not on the grid.
//   - ErrMazeSize: maze dimensions are not odd or smaller than 3.
package gridgraph
