// Package core defines the graph model shared by every search in homeostat:
// node identifiers, planar positions, weighted arcs, the Topology interface,
// and an explicit, thread-safe weighted Graph.
//
// What:
//
//   - NodeID is a dense integer identifier. Grids derive it from row-major
//     cell order; Graph assigns it in insertion order.
//   - Point is a planar coordinate used by heuristics and path encoding.
//   - Arc is a (destination, base cost) pair returned by Topology.Neighbors.
//   - Topology is the read-only contract consumed by the search engine:
//     Neighbors, Valid, Position.
//   - Graph is an explicit vertex/edge list with labels, positions, costs and
//     optional integer capacities (used by the network router).
//
// Contract:
//
//   - Neighbors of an invalid node is an empty slice, never an error.
//     Callers treat an empty neighbour set as a dead end.
//   - Base costs are finite and non-negative; AddEdge rejects anything else.
//   - Neighbor order is insertion order, so searches over a Graph are
//     deterministic.
//
// Configuration Options (GraphOption):
//
//	– WithDirected()
//	    Edges are one-way. Without it AddEdge stores a mirrored twin.
//
// EdgeOptions:
//
//	– WithCapacity(c)
//	    Integer capacity for flow routing (default Unbounded).
//
// Errors:
//
//   - ErrEmptyLabel     - node label is the empty string.
//   - ErrDuplicateNode  - label already present.
//   - ErrNodeNotFound   - unknown label or identifier.
//   - ErrBadCost        - negative, NaN or infinite base cost.
//   - ErrBadCapacity    - capacity ≤ 0.
//   - ErrLoopNotAllowed - from == to.
//
// Concurrency:
//
//	A single sync.RWMutex guards node and edge storage; reads may proceed
//	in parallel with each other.
package core
