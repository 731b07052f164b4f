// Package pathfind implements the best-first shortest-path engine used by
// every control cycle: A* when a heuristic is supplied, Dijkstra otherwise.
//
// The engine searches a core.Topology from start to goal with a pluggable
// CostFunc. The cost of a move may depend on the nodes visited just before
// it; WithHistory(k) makes the search state (node, last k predecessors) so
// that such costs stay exact instead of being approximated per node.
//
// Complexity:
//
//   - Time:  O((S + A) log S), S = states reached, A = arcs relaxed.
//     With History k on a graph of degree d, S ≤ V·d^k.
//   - Space: O(S + A) under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Ties on priority are broken by insertion order (FIFO), so equal
//     inputs always give the same path.
//   - The cost function is called exactly once per relaxation.
//   - Negative or NaN effective costs are clamped to zero and counted in
//     Result.Clamped. Positive infinity marks an impassable move.
//   - With History ≥ 1 a move straight back to the node just left is never
//     expanded.
//   - WithMaxExpansions bounds the work; hitting the budget reports the goal
//     as unreachable, as does WithMaxCost when the frontier exceeds the cap.
//   - An unreachable goal is Result.Found == false, not an error. Errors are
//     reserved for invalid inputs.
//
// Options:
//
//	– WithHeuristic(h):      A* with h (use Octile, Euclidean, Manhattan).
//	– WithHistory(k):        predecessor window kept in the state, 0..MaxHistory.
//	– WithMaxExpansions(n):  expansion budget, n > 0.
//	– WithMaxCost(c):        states costlier than c are not explored, c ≥ 0.
//
// Errors (sentinel):
//
//	– ErrNilTopology   topology is nil.
//	– ErrNilCost       cost function is nil.
//	– ErrInvalidNode   start or goal is not a valid node.
//	– ErrBadHistory    history outside 0..MaxHistory.
//	– ErrBadBudget     non-positive expansion budget or negative cost cap.
package pathfind
