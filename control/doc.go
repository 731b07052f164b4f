// Package control implements the strategist side of the loop: a
// proportional-with-decay controller that turns the measured U² norm of the
// last path into a structure penalty weight for the next search.
//
// Update law, applied once per cycle after a path has been scored:
//
//	error  = target - measured
//	weight = max(0, weight·(1 - decay) - gain·error)
//
// The penalty therefore grows while paths are more regular than the target
// and drains back toward zero once they are not. Weights below 1e-12 snap to
// zero so a settled loop reaches exactly zero in finitely many cycles. For
// measurements in [0,1] and 0 < decay < 1 the weight never exceeds
// max(initial, gain/decay).
//
// The weight reaches the search through CostFunc: each move costs
//
//	base + weight · StructuralContribution
//
// where the contribution is the squared length of the mean unit heading of
// the recent moves and the candidate move. It is 1 for a move that
// continues a straight run and drops as the route turns, so a high weight
// makes predictable continuation expensive.
//
// Modes: REGULATING while |error| > Tolerance, STABILIZING otherwise. Decay
// applies in both.
//
// Errors:
//
//   - ErrInvalidConfig:  a Config field outside its range (fatal at startup).
//   - ErrBadMeasurement: a non-finite measured norm.
package control
