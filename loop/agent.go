package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/homeostat/control"
	"github.com/katalvlaran/homeostat/core"
	"github.com/katalvlaran/homeostat/gowers"
	"github.com/katalvlaran/homeostat/network"
	"github.com/katalvlaran/homeostat/pathfind"
)

// Sentinel errors for agent construction.
var (
	// ErrNilTopology indicates New was given no topology.
	ErrNilTopology = errors.New("loop: topology is nil")

	// ErrNilController indicates New was given no controller.
	ErrNilController = errors.New("loop: controller is nil")
)

// DefaultName is the agent name used when WithName is not given.
const DefaultName = "agent"

// DefaultHistory is the predecessor window used when WithHistory is not
// given. With no window the structural contribution falls back to the goal
// bearing, which ranks every shortest route the same on open ground.
const DefaultHistory = 2

// Record is the outcome of one cycle.
type Record struct {
	Run   uuid.UUID // identifies one Agent, shared by all its records
	Agent string
	Cycle int // 1-based cycle index of this agent

	Found      bool
	Path       []core.NodeID // nil when not Found
	PathLength int           // nodes on Path
	Cost       float64       // adjusted cost of Path
	Norm       float64       // U² norm of Path, 0 when not Found
	Degenerate bool          // Norm is the short-sequence sentinel

	Target     float64 // set-point
	WeightUsed float64 // weight the search ran with
	Weight     float64 // weight produced for the next cycle
	Error      float64 // Target - measured, from the latest update
	Mode       control.Mode

	Expanded int   // search states expanded
	Clamped  int   // move costs clamped to zero
	Flow     int64 // flow pushed through the router, 0 without one
}

// Option configures an Agent.
type Option func(*Agent)

// WithName labels records, logs and metrics of the agent.
func WithName(name string) Option {
	return func(a *Agent) { a.name = name }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Agent) { a.logger = l }
}

// WithHistory sets how many predecessor nodes the search tracks per state.
// The same count is the window of the structural contribution. The default
// is DefaultHistory; 0 scores moves against the goal bearing only.
func WithHistory(k int) Option {
	return func(a *Agent) { a.history = k }
}

// WithHeuristic switches the search to A* with h. Without it the search is
// Dijkstra.
func WithHeuristic(h pathfind.Heuristic) Option {
	return func(a *Agent) { a.heuristic = h }
}

// WithMaxExpansions bounds each search; an exhausted budget counts as an
// unreachable goal.
func WithMaxExpansions(n int) Option {
	return func(a *Agent) { a.maxExpansions = n }
}

// WithEncoding selects how paths are turned into sequences.
func WithEncoding(mode gowers.Encoding) Option {
	return func(a *Agent) { a.encoding = mode }
}

// WithRouter pushes flow along every found path. The router is reset at the
// start of each cycle. Pass the same router as the topology to search its
// residual view.
func WithRouter(r *network.Router) Option {
	return func(a *Agent) { a.router = r }
}

// WithRecorder registers fn to receive every record as it is produced.
func WithRecorder(fn func(Record)) Option {
	return func(a *Agent) { a.recorder = fn }
}

// Agent runs the feedback loop for one start/goal pair.
type Agent struct {
	name   string
	run    uuid.UUID
	logger *slog.Logger

	topo        core.Topology
	start, goal core.NodeID
	ctrl        *control.Controller
	est         *gowers.Estimator

	history       int
	heuristic     pathfind.Heuristic
	maxExpansions int
	encoding      gowers.Encoding
	router        *network.Router
	recorder      func(Record)

	cycle    int
	last     float64 // latest valid measurement
	measured bool    // last holds a value
	path     []core.NodeID
}

// New validates its arguments and returns an agent ready for cycle 1.
//
// Validation (in order):
//  1. topo and ctrl are non-nil (ErrNilTopology, ErrNilController).
//  2. History and budget are in range (pathfind.ErrBadHistory,
//     pathfind.ErrBadBudget).
//  3. start and goal are valid nodes of topo (pathfind.ErrInvalidNode).
func New(topo core.Topology, start, goal core.NodeID, ctrl *control.Controller, opts ...Option) (*Agent, error) {
	if topo == nil {
		return nil, ErrNilTopology
	}
	if ctrl == nil {
		return nil, ErrNilController
	}
	a := &Agent{
		name:          DefaultName,
		run:           uuid.New(),
		topo:          topo,
		start:         start,
		goal:          goal,
		ctrl:          ctrl,
		est:           gowers.NewEstimator(),
		history:       DefaultHistory,
		maxExpansions: pathfind.DefaultOptions().MaxExpansions,
		encoding:      gowers.Heading,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if a.history < 0 || a.history > pathfind.MaxHistory {
		return nil, fmt.Errorf("%w: %d", pathfind.ErrBadHistory, a.history)
	}
	if a.maxExpansions <= 0 {
		return nil, fmt.Errorf("%w: max expansions %d", pathfind.ErrBadBudget, a.maxExpansions)
	}
	if !topo.Valid(start) || !topo.Valid(goal) {
		return nil, fmt.Errorf("%w: %d→%d", pathfind.ErrInvalidNode, start, goal)
	}
	a.logger = a.logger.With(slog.String("agent", a.name), slog.String("run", a.run.String()))

	return a, nil
}

// Name returns the agent name.
func (a *Agent) Name() string { return a.name }

// RunID returns the identifier stamped on every record.
func (a *Agent) RunID() uuid.UUID { return a.run }

// Controller returns the controller the agent feeds.
func (a *Agent) Controller() *control.Controller { return a.ctrl }

// Cycles returns the number of completed cycles.
func (a *Agent) Cycles() int { return a.cycle }

// LastPath returns the most recent found path, held across unreachable
// cycles. It is nil until a path has been found.
func (a *Agent) LastPath() []core.NodeID { return a.path }

// Step runs one cycle. Errors are configuration faults; an unreachable goal
// is reported through Record.Found.
func (a *Agent) Step() (Record, error) {
	began := time.Now()

	// 1) Snapshot
	p := a.ctrl.Policy()
	rec := Record{
		Run:        a.run,
		Agent:      a.name,
		Cycle:      a.cycle + 1,
		Target:     p.Target,
		WeightUsed: p.Weight,
	}
	if a.router != nil {
		a.router.Reset()
	}

	// 2) Search
	res, err := pathfind.FindPath(a.topo, a.start, a.goal,
		control.CostFunc(a.topo, a.goal, p, a.history), a.searchOptions()...)
	if err != nil {
		return rec, fmt.Errorf("loop: cycle %d: %w", rec.Cycle, err)
	}
	rec.Expanded, rec.Clamped = res.Expanded, res.Clamped

	// 3) Measure and update
	next := p
	switch {
	case res.Found:
		m := a.est.Measure(gowers.EncodePath(a.topo, res.Path.Nodes, a.encoding))
		rec.Found = true
		rec.Path = res.Path.Nodes
		rec.PathLength = res.Path.Len()
		rec.Cost = res.Path.Cost
		rec.Norm = m.Norm
		rec.Degenerate = m.Degenerate
		a.path, a.last, a.measured = res.Path.Nodes, m.Norm, true

		if a.router != nil && res.Path.Len() > 1 {
			// 4) Flow
			if rec.Flow, err = a.router.Route(res.Path.Nodes); err != nil && !errors.Is(err, network.ErrUnbounded) {
				a.logger.Warn("route failed", slog.Int("cycle", rec.Cycle), slog.String("error", err.Error()))
			}
		}
		next, err = a.ctrl.Observe(m.Norm)
	case a.measured:
		next, err = a.ctrl.Observe(a.last)
	}
	if err != nil {
		return rec, fmt.Errorf("loop: cycle %d: %w", rec.Cycle, err)
	}

	// 5) Publish
	a.cycle = rec.Cycle
	rec.Weight, rec.Error, rec.Mode = next.Weight, next.Error, next.Mode
	a.observe(rec, p.Mode, time.Since(began))
	if a.recorder != nil {
		a.recorder(rec)
	}

	return rec, nil
}

// Run executes n cycles and returns their records. Cancellation is checked
// between cycles; the records completed so far are returned with ctx.Err().
func (a *Agent) Run(ctx context.Context, n int) ([]Record, error) {
	out := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		rec, err := a.Step()
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}

	return out, nil
}

func (a *Agent) searchOptions() []pathfind.Option {
	opts := []pathfind.Option{
		pathfind.WithHistory(a.history),
		pathfind.WithMaxExpansions(a.maxExpansions),
	}
	if a.heuristic != nil {
		opts = append(opts, pathfind.WithHeuristic(a.heuristic))
	}

	return opts
}

// observe logs rec and updates the collectors.
func (a *Agent) observe(rec Record, prevMode control.Mode, took time.Duration) {
	result := resultUnreachable
	if rec.Found {
		result = resultFound
		measuredNorm.WithLabelValues(a.name).Set(rec.Norm)
		pathLength.WithLabelValues(a.name).Observe(float64(rec.PathLength))
	}
	cyclesTotal.WithLabelValues(a.name, result).Inc()
	penaltyWeight.WithLabelValues(a.name).Set(rec.Weight)
	searchExpanded.WithLabelValues(a.name).Observe(float64(rec.Expanded))
	cycleDuration.WithLabelValues(a.name).Observe(took.Seconds())
	if rec.Clamped > 0 {
		clampedCosts.WithLabelValues(a.name).Add(float64(rec.Clamped))
		a.logger.Warn("negative move costs clamped",
			slog.Int("cycle", rec.Cycle),
			slog.Int("clamped", rec.Clamped))
	}

	if !rec.Found {
		a.logger.Info("goal unreachable",
			slog.Int("cycle", rec.Cycle),
			slog.Bool("reobserved", a.measured),
			slog.Float64("weight", rec.Weight))
		return
	}
	if rec.Mode != prevMode {
		a.logger.Info("mode changed",
			slog.Int("cycle", rec.Cycle),
			slog.String("from", prevMode.String()),
			slog.String("to", rec.Mode.String()))
	}
	a.logger.Debug("cycle",
		slog.Int("cycle", rec.Cycle),
		slog.Int("path_length", rec.PathLength),
		slog.Float64("norm", rec.Norm),
		slog.Float64("target", rec.Target),
		slog.Float64("weight_used", rec.WeightUsed),
		slog.Float64("weight", rec.Weight),
		slog.String("mode", rec.Mode.String()))
}
