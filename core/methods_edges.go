// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge, Neighbors, OutEdges, Edges, EdgeCount.
// Determinism:
//   - Neighbors/OutEdges return edges in insertion order.
//   - Edges() returns edges grouped by source NodeID, insertion order within.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge connects from → to with the given base cost. Undirected graphs
// also store the mirrored edge to → from with the same cost and capacity.
//
// Steps:
//  1. Validate cost, loop, capacity.
//  2. Lock, check both endpoints exist.
//  3. Append the forward edge and, if undirected, its twin.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to NodeID, cost float64, opts ...EdgeOption) error {
	// 1) Input validation
	if cost < 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
		return fmt.Errorf("%w: %v", ErrBadCost, cost)
	}
	if from == to {
		return ErrLoopNotAllowed
	}
	e := Edge{From: from, To: to, Cost: cost, Capacity: Unbounded}
	for _, opt := range opts {
		opt(&e)
	}
	if e.Capacity <= 0 {
		return fmt.Errorf("%w: %d", ErrBadCapacity, e.Capacity)
	}

	// 2) Endpoint checks
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.has(from) || !g.has(to) {
		return fmt.Errorf("%w: edge %d→%d", ErrNodeNotFound, from, to)
	}

	// 3) Store
	g.adj[from] = append(g.adj[from], e)
	if !g.directed {
		g.adj[to] = append(g.adj[to], Edge{From: to, To: from, Cost: cost, Capacity: e.Capacity})
	}
	g.edges++

	return nil
}

// AddEdgeByLabel is AddEdge addressed by node labels.
func (g *Graph) AddEdgeByLabel(from, to string, cost float64, opts ...EdgeOption) error {
	u, err := g.Lookup(from)
	if err != nil {
		return err
	}
	v, err := g.Lookup(to)
	if err != nil {
		return err
	}

	return g.AddEdge(u, v, cost, opts...)
}

// Neighbors returns the outgoing arcs of id in insertion order.
// Unknown identifiers yield nil.
func (g *Graph) Neighbors(id NodeID) []Arc {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(id) {
		return nil
	}
	out := make([]Arc, len(g.adj[id]))
	for i, e := range g.adj[id] {
		out[i] = Arc{To: e.To, Cost: e.Cost}
	}

	return out
}

// OutEdges returns a copy of the stored outgoing edges of id.
func (g *Graph) OutEdges(id NodeID) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(id) {
		return nil
	}
	out := make([]Edge, len(g.adj[id]))
	copy(out, g.adj[id])

	return out
}

// Edges returns every stored edge (twins included for undirected graphs).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge
	for _, list := range g.adj {
		out = append(out, list...)
	}

	return out
}

// EdgeCount returns the number of successful AddEdge calls.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}
