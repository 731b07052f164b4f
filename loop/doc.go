// Package loop drives the closed feedback cycle that ties search, path
// scoring and control together.
//
// One cycle of an Agent:
//
//  1. Snapshot the controller Policy.
//  2. Search start → goal with control.CostFunc over that snapshot.
//  3. Encode the found path and score it with the Gowers U² estimator.
//  4. Optionally push flow along the path through a network.Router.
//  5. Feed the measured norm to the controller, producing the next Policy.
//
// Unreachable goal: when the search finds no path the controller observes
// the last valid measurement again. Before any path has ever been found the
// update is skipped and the weight stays where it is. Either way the cycle
// is recorded with Found=false and the loop carries on.
//
// Every cycle yields a Record. Records carry the run identifier, the agent
// name, the weight the search used and the weight the controller produced,
// so a stream of records from several agents can be reduced independently
// (see package report).
//
// Observability:
//
//   - Structured logging through log/slog; agents log to a discard handler
//     unless WithLogger is given.
//   - Prometheus collectors labelled by agent name: cycle counts by result,
//     penalty weight and measured norm gauges, path length, expansions and
//     cycle duration histograms, clamped cost counts.
//
// Concurrency:
//
//	An Agent owns its controller and estimator and is not safe for
//	concurrent use. Independent agents may run in parallel as long as they
//	do not share a controller or a router.
package loop
