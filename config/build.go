package config

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/homeostat/core"
	"github.com/katalvlaran/homeostat/gridgraph"
	"github.com/katalvlaran/homeostat/loop"
	"github.com/katalvlaran/homeostat/network"
	"github.com/katalvlaran/homeostat/pathfind"
	"github.com/katalvlaran/homeostat/report"
)

// DefaultStrategy names the single strategy of a file that lists none.
const DefaultStrategy = "default"

// BuildGrid constructs the grid described by g and resolves its endpoints.
//
// Steps:
//  1. Maze: generate it and use its entrance and exit.
//  2. Otherwise parse Cells, or open Width×Height cells.
//  3. Resolve Start/Goal, defaulting to opposite corners.
func BuildGrid(g Grid) (gg *gridgraph.GridGraph, start, goal core.NodeID, err error) {
	fail := func(err error) (*gridgraph.GridGraph, core.NodeID, core.NodeID, error) {
		return nil, core.NoNode, core.NoNode, fmt.Errorf("%w: grid: %w", ErrInvalid, err)
	}

	// 1) Maze
	if g.Maze {
		gg, start, goal, err = gridgraph.Maze(g.Width, g.Height, rand.New(rand.NewSource(g.Seed)))
		if err != nil {
			return fail(err)
		}
		return gg, start, goal, nil
	}

	// 2) Cells
	values, err := g.values()
	if err != nil {
		return fail(err)
	}
	opts := gridgraph.DefaultGridOptions()
	if g.Connectivity == 4 {
		opts.Conn = gridgraph.Conn4
	}
	opts.TerrainWeight = g.TerrainWeight
	opts.CutCorners = g.CutCorners
	if gg, err = gridgraph.NewGridGraph(values, opts); err != nil {
		return fail(err)
	}

	// 3) Endpoints
	sx, sy := 0, 0
	if len(g.Start) == 2 {
		sx, sy = g.Start[0], g.Start[1]
	}
	gx, gy := gg.Width-1, gg.Height-1
	if len(g.Goal) == 2 {
		gx, gy = g.Goal[0], g.Goal[1]
	}
	if start, err = gg.ID(sx, sy); err != nil {
		return fail(err)
	}
	if goal, err = gg.ID(gx, gy); err != nil {
		return fail(err)
	}

	return gg, start, goal, nil
}

// values turns Cells or Width×Height into a value matrix.
func (g Grid) values() ([][]int, error) {
	if len(g.Cells) == 0 {
		if g.Width <= 0 || g.Height <= 0 {
			return nil, gridgraph.ErrEmptyGrid
		}
		out := make([][]int, g.Height)
		for y := range out {
			out[y] = make([]int, g.Width)
		}
		return out, nil
	}
	out := make([][]int, len(g.Cells))
	for y, row := range g.Cells {
		out[y] = make([]int, 0, len(row))
		for x, ch := range row {
			switch {
			case ch == '.':
				out[y] = append(out[y], 0)
			case ch == '#':
				out[y] = append(out[y], gridgraph.Blocked)
			case ch >= '0' && ch <= '9':
				out[y] = append(out[y], int(ch-'0'))
			default:
				return nil, fmt.Errorf("%w: cell (%d,%d) = %q", gridgraph.ErrBadTerrain, x, y, ch)
			}
		}
	}

	return out, nil
}

// BuildGraph constructs the graph described by g and resolves its
// endpoints by label.
func BuildGraph(g Graph) (cg *core.Graph, start, goal core.NodeID, err error) {
	fail := func(err error) (*core.Graph, core.NodeID, core.NodeID, error) {
		return nil, core.NoNode, core.NoNode, fmt.Errorf("%w: graph: %w", ErrInvalid, err)
	}

	var opts []core.GraphOption
	if g.Directed {
		opts = append(opts, core.WithDirected())
	}
	cg = core.NewGraph(opts...)
	for _, n := range g.Nodes {
		if _, err = cg.AddNode(n.Label, core.Point{X: n.X, Y: n.Y}); err != nil {
			return fail(err)
		}
	}
	for _, e := range g.Edges {
		var eopts []core.EdgeOption
		if e.Capacity > 0 {
			eopts = append(eopts, core.WithCapacity(e.Capacity))
		}
		if err = cg.AddEdgeByLabel(e.From, e.To, e.Cost, eopts...); err != nil {
			return fail(err)
		}
	}
	if start, err = cg.Lookup(g.Start); err != nil {
		return fail(err)
	}
	if goal, err = cg.Lookup(g.Goal); err != nil {
		return fail(err)
	}

	return cg, start, goal, nil
}

// Scenario builds a fresh topology from the file's source. Grids get the
// octile (8-connected) or Manhattan (4-connected) heuristic. Graphs carry no
// heuristic, so heuristic_enabled has no effect on them: edge costs need not
// bound the straight-line distance. Graphs with RouteFlow are searched
// through a router.
func (f File) Scenario() (report.Scenario, error) {
	switch {
	case f.Grid != nil:
		gg, start, goal, err := BuildGrid(*f.Grid)
		if err != nil {
			return report.Scenario{}, err
		}
		h := pathfind.Octile(gg, goal)
		if gg.Conn == gridgraph.Conn4 {
			h = pathfind.Manhattan(gg, goal)
		}
		return report.Scenario{Topology: gg, Start: start, Goal: goal, Heuristic: h}, nil

	case f.Graph != nil:
		cg, start, goal, err := BuildGraph(*f.Graph)
		if err != nil {
			return report.Scenario{}, err
		}
		sc := report.Scenario{Topology: cg, Start: start, Goal: goal}
		if f.Graph.RouteFlow {
			r, err := network.NewRouter(cg)
			if err != nil {
				return report.Scenario{}, err
			}
			sc.Topology, sc.Router = r, r
		}
		return sc, nil

	default:
		return report.Scenario{}, fmt.Errorf("%w: no grid or graph source", ErrInvalid)
	}
}

// Builder returns a report.Builder that builds a fresh Scenario per strategy.
func (f File) Builder() report.Builder {
	return func(report.Strategy) (report.Scenario, error) { return f.Scenario() }
}

// ReportStrategies resolves the file's strategies against its top-level
// settings. A file without strategies yields one named DefaultStrategy.
func (f File) ReportStrategies() []report.Strategy {
	base := report.Strategy{
		Name:      DefaultStrategy,
		Control:   f.Control,
		History:   f.Search.History,
		Heuristic: f.Search.HeuristicEnabled,
	}
	if len(f.Strategies) == 0 {
		return []report.Strategy{base}
	}
	out := make([]report.Strategy, 0, len(f.Strategies))
	for _, s := range f.Strategies {
		rs := base
		rs.Name = s.Name
		if s.Control != nil {
			rs.Control = *s.Control
		}
		if s.History != nil {
			rs.History = *s.History
		}
		if s.HeuristicEnabled != nil {
			rs.Heuristic = *s.HeuristicEnabled
		}
		out = append(out, rs)
	}

	return out
}

// AgentOptions returns the loop options shared by every agent of the file:
// expansion budget and path encoding.
func (f File) AgentOptions() []loop.Option {
	return []loop.Option{
		loop.WithMaxExpansions(f.Search.MaxExpansions),
		loop.WithEncoding(f.Encoding()),
	}
}
