// Package report compares control strategies by running each on its own
// agent and reducing the record stream to per-strategy summaries.
//
// Run builds a fresh topology and controller per Strategy and drives the
// agents concurrently with an errgroup; no policy or topology is shared
// between strategies. Aggregate is a pure reduction that works on any
// record stream, including one loaded from elsewhere.
//
// Averages of path length and norm are taken over cycles that found a
// path; a strategy that never found one reports zero averages.
package report
