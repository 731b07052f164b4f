// Package network routes integer flow over an explicit core.Graph.
//
// A Router pairs a *core.Graph with a per-edge flow counter and presents the
// graph to the search engine as a residual view: an edge whose flow has
// reached its capacity disappears from Neighbors until Reset is called.
//
// What:
//
//   - Route(nodes) pushes the bottleneck amount along a found path and
//     returns it.
//   - Saturate(ctx, source, sink) repeats cheapest-path search and Route
//     until the sink is cut off, returning the total routed flow.
//   - Flow(from, to) reports the flow summed over parallel edges.
//   - Reset() clears every counter.
//
// Contract:
//
//   - Each stored edge carries its own capacity. An undirected twin is a
//     separate edge, so flow u→v never consumes capacity of v→u.
//   - Between consecutive path nodes Route uses the cheapest edge that still
//     has residual capacity; ties go to insertion order.
//   - Flow is never cancelled. Saturate is successive cheapest paths, not a
//     maximum-flow algorithm.
//
// Errors:
//
//   - ErrNilGraph  - NewRouter called with a nil graph.
//   - ErrShortPath - Route called with fewer than two nodes.
//   - ErrNoEdge    - consecutive path nodes have no residual edge.
//   - ErrUnbounded - Route or Saturate met a path made only of unbounded edges.
//
// Concurrency:
//
//	Router methods are safe for concurrent use. Searches must not overlap
//	with Route on the same router, since a residual view that changes
//	mid-search breaks the Topology contract.
package network
