package network

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/homeostat/core"
	"github.com/katalvlaran/homeostat/pathfind"
)

// Sentinel errors for flow routing.
var (
	// ErrNilGraph indicates NewRouter was given no graph.
	ErrNilGraph = errors.New("network: graph is nil")

	// ErrShortPath indicates a path with fewer than two nodes.
	ErrShortPath = errors.New("network: path needs at least two nodes")

	// ErrNoEdge indicates two consecutive path nodes have no residual edge.
	ErrNoEdge = errors.New("network: no residual edge")

	// ErrUnbounded indicates a path whose every edge has unbounded capacity.
	ErrUnbounded = errors.New("network: unbounded path capacity")
)

// Router tracks flow on the edges of a graph. It implements core.Topology
// as the residual graph.
type Router struct {
	g *core.Graph

	mu   sync.RWMutex
	flow [][]int64 // NodeID → flow per outgoing edge, aligned with OutEdges
}

// NewRouter returns a router with zero flow on every edge of g.
func NewRouter(g *core.Graph) (*Router, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &Router{g: g}, nil
}

// Graph returns the underlying graph.
func (r *Router) Graph() *core.Graph { return r.g }

// Valid reports whether id names a node of the graph.
func (r *Router) Valid(id core.NodeID) bool { return r.g.Valid(id) }

// Position returns the coordinate of id.
func (r *Router) Position(id core.NodeID) core.Point { return r.g.Position(id) }

// Neighbors returns the outgoing arcs of id that still have residual
// capacity, in insertion order.
func (r *Router) Neighbors(id core.NodeID) []core.Arc {
	edges := r.g.OutEdges(id)
	if len(edges) == 0 {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]core.Arc, 0, len(edges))
	for i, e := range edges {
		if r.residual(id, i, e) > 0 {
			out = append(out, core.Arc{To: e.To, Cost: e.Cost})
		}
	}

	return out
}

// Route pushes the bottleneck residual capacity along nodes and returns
// the amount pushed.
//
// Steps:
//  1. For every hop pick the cheapest edge with residual capacity.
//  2. Take the minimum residual over the chosen edges.
//  3. Add it to each chosen edge.
//
// Nothing is pushed when any hop fails or when every chosen edge is
// unbounded (ErrUnbounded).
func (r *Router) Route(nodes []core.NodeID) (int64, error) {
	if len(nodes) < 2 {
		return 0, ErrShortPath
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	// 1) Choose one edge per hop.
	picks := make([]int, len(nodes)-1)
	bottleneck := core.Unbounded
	for h := 0; h+1 < len(nodes); h++ {
		u, v := nodes[h], nodes[h+1]
		best, bestCost, res := -1, 0.0, int64(0)
		for i, e := range r.g.OutEdges(u) {
			if e.To != v {
				continue
			}
			if rc := r.residual(u, i, e); rc > 0 && (best < 0 || e.Cost < bestCost) {
				best, bestCost, res = i, e.Cost, rc
			}
		}
		if best < 0 {
			return 0, fmt.Errorf("%w: %d→%d", ErrNoEdge, u, v)
		}
		picks[h] = best
		// 2) Bottleneck
		if res < bottleneck {
			bottleneck = res
		}
	}
	if bottleneck == core.Unbounded {
		return 0, fmt.Errorf("%w: %v", ErrUnbounded, nodes)
	}

	// 3) Push
	for h, i := range picks {
		r.grow(nodes[h], i)
		r.flow[nodes[h]][i] += bottleneck
	}

	return bottleneck, nil
}

// Flow returns the flow on from → to summed over parallel edges.
func (r *Router) Flow(from, to core.NodeID) int64 {
	edges := r.g.OutEdges(from)
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total int64
	for i, e := range edges {
		if e.To == to {
			total += r.load(from, i)
		}
	}

	return total
}

// Reset clears the flow on every edge.
func (r *Router) Reset() {
	r.mu.Lock()
	r.flow = nil
	r.mu.Unlock()
}

// Saturate routes cheapest source → sink paths until none remain and returns
// the total flow pushed. opts are passed to pathfind.FindPath; context
// cancellation is checked between paths.
func (r *Router) Saturate(ctx context.Context, source, sink core.NodeID, opts ...pathfind.Option) (int64, error) {
	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		res, err := pathfind.FindPath(r, source, sink, pathfind.BaseCost, opts...)
		if err != nil {
			return total, err
		}
		if !res.Found {
			return total, nil
		}
		if res.Path.Len() < 2 {
			return total, fmt.Errorf("%w: source equals sink", ErrUnbounded)
		}
		pushed, err := r.Route(res.Path.Nodes)
		if err != nil {
			return total, err
		}
		total += pushed
	}
}

// residual returns the spare capacity of the i-th edge of u; callers hold mu.
func (r *Router) residual(u core.NodeID, i int, e core.Edge) int64 {
	return e.Capacity - r.load(u, i)
}

// load returns the flow on the i-th edge of u; callers hold mu.
func (r *Router) load(u core.NodeID, i int) int64 {
	if int(u) >= len(r.flow) || i >= len(r.flow[u]) {
		return 0
	}
	return r.flow[u][i]
}

// grow sizes the counters so that flow[u][i] exists; callers hold mu.
func (r *Router) grow(u core.NodeID, i int) {
	for int(u) >= len(r.flow) {
		r.flow = append(r.flow, nil)
	}
	for i >= len(r.flow[u]) {
		r.flow[u] = append(r.flow[u], 0)
	}
}

var _ core.Topology = (*Router)(nil)
