package pathfind

import (
	"errors"
	"math"

	"github.com/katalvlaran/homeostat/core"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilTopology indicates that a nil topology was passed to FindPath.
	ErrNilTopology = errors.New("pathfind: topology is nil")

	// ErrNilCost indicates that no cost function was supplied.
	ErrNilCost = errors.New("pathfind: cost function is nil")

	// ErrInvalidNode indicates that start or goal is not a valid node.
	ErrInvalidNode = errors.New("pathfind: start or goal is not a valid node")

	// ErrBadHistory indicates a history window outside 0..MaxHistory.
	ErrBadHistory = errors.New("pathfind: history window out of range")

	// ErrBadBudget indicates a non-positive expansion budget or a negative cost cap.
	ErrBadBudget = errors.New("pathfind: search budget must be positive")
)

// MaxHistory is the largest predecessor window a search state can hold.
const MaxHistory = 4

// DefaultMaxExpansions bounds a search that was given no explicit budget.
const DefaultMaxExpansions = 1 << 22

// Step describes one candidate move handed to a CostFunc.
//
// Trail lists the nodes visited before From, oldest first, at most History
// of them. It is only valid for the duration of the call.
type Step struct {
	From, To core.NodeID
	Base     float64
	Trail    []core.NodeID
}

// CostFunc returns the effective cost of a move. It must be non-negative
// for the search to remain optimal; +Inf forbids the move.
type CostFunc func(Step) float64

// BaseCost is the CostFunc that returns the topology's base cost unchanged.
func BaseCost(s Step) float64 { return s.Base }

// Heuristic estimates the remaining cost from a node to the goal.
type Heuristic func(from core.NodeID) float64

// Path is an ordered node sequence from start to goal with its total cost.
type Path struct {
	Nodes []core.NodeID
	Cost  float64
}

// Len returns the number of nodes in the path.
func (p Path) Len() int { return len(p.Nodes) }

// Result is the outcome of one search.
type Result struct {
	Path     Path
	Found    bool // false when the goal is unreachable or a budget was hit
	Expanded int  // states expanded
	Clamped  int  // relaxations whose cost was clamped to zero
}

// Options configures the behavior of FindPath.
//
// Heuristic     – A* heuristic; nil runs Dijkstra.
// History       – predecessor window kept in each search state.
// MaxExpansions – expansion budget (> 0).
// MaxCost       – frontier cost cap (≥ 0), math.Inf(1) for none.
type Options struct {
	Heuristic     Heuristic
	History       int
	MaxExpansions int
	MaxCost       float64
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// WithHeuristic enables A* with h.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithHistory keeps the last k predecessors in each search state.
func WithHistory(k int) Option {
	return func(o *Options) {
		o.History = k
	}
}

// WithMaxExpansions sets the expansion budget.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		o.MaxExpansions = n
	}
}

// WithMaxCost stops exploring states whose priority exceeds c.
func WithMaxCost(c float64) Option {
	return func(o *Options) {
		o.MaxCost = c
	}
}

// DefaultOptions returns Options initialized with sensible defaults.
//
// Defaults:
//   - Heuristic:     nil (Dijkstra).
//   - History:       0 (node-only states).
//   - MaxExpansions: DefaultMaxExpansions.
//   - MaxCost:       +Inf.
func DefaultOptions() Options {
	return Options{
		MaxExpansions: DefaultMaxExpansions,
		MaxCost:       math.Inf(1),
	}
}

// validate checks option ranges.
func (o Options) validate() error {
	if o.History < 0 || o.History > MaxHistory {
		return ErrBadHistory
	}
	if o.MaxExpansions <= 0 || o.MaxCost < 0 || math.IsNaN(o.MaxCost) {
		return ErrBadBudget
	}

	return nil
}
