package report

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/homeostat/control"
	"github.com/katalvlaran/homeostat/core"
	"github.com/katalvlaran/homeostat/loop"
	"github.com/katalvlaran/homeostat/network"
	"github.com/katalvlaran/homeostat/pathfind"
)

// Sentinel errors for strategy runs.
var (
	// ErrNoStrategies indicates Run was given an empty strategy list.
	ErrNoStrategies = errors.New("report: no strategies")

	// ErrUnnamedStrategy indicates a strategy without a name.
	ErrUnnamedStrategy = errors.New("report: strategy name is empty")

	// ErrDuplicateStrategy indicates two strategies share a name.
	ErrDuplicateStrategy = errors.New("report: duplicate strategy name")

	// ErrBadCycles indicates a non-positive cycle count.
	ErrBadCycles = errors.New("report: cycles must be positive")

	// ErrNilBuilder indicates Run was given no scenario builder.
	ErrNilBuilder = errors.New("report: scenario builder is nil")
)

// Strategy is one named way of running the loop.
type Strategy struct {
	Name      string
	Control   control.Config
	History   int  // 0 keeps loop.DefaultHistory
	Heuristic bool // use the scenario heuristic (A*) instead of Dijkstra
}

// Scenario is a topology with its endpoints, built fresh for each strategy.
type Scenario struct {
	Topology  core.Topology
	Start     core.NodeID
	Goal      core.NodeID
	Heuristic pathfind.Heuristic // used when Strategy.Heuristic is set
	Router    *network.Router    // optional; pushes flow along found paths
}

// Builder returns a new Scenario for s.
type Builder func(s Strategy) (Scenario, error)

// Summary is the reduction of one strategy's records.
type Summary struct {
	Name          string
	Cycles        int
	Found         int
	AvgPathLength float64
	AvgNorm       float64
	FinalWeight   float64
}

// Run executes cycles cycles of every strategy concurrently and returns all
// records, grouped by strategy in input order. opts are applied to every
// agent before the per-strategy settings.
//
// The first failing strategy cancels the others; its error is returned.
func Run(ctx context.Context, strategies []Strategy, cycles int, build Builder, opts ...loop.Option) ([]loop.Record, error) {
	// 1) Validate
	if len(strategies) == 0 {
		return nil, ErrNoStrategies
	}
	if cycles <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCycles, cycles)
	}
	if build == nil {
		return nil, ErrNilBuilder
	}
	seen := make(map[string]bool, len(strategies))
	for _, s := range strategies {
		if s.Name == "" {
			return nil, ErrUnnamedStrategy
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateStrategy, s.Name)
		}
		seen[s.Name] = true
	}

	// 2) One agent per strategy
	results := make([][]loop.Record, len(strategies))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range strategies {
		i, s := i, s // per-iteration copies (go directive lowered from 1.23 to 1.21)
		g.Go(func() error {
			recs, err := runOne(gctx, s, cycles, build, opts)
			if err != nil {
				return fmt.Errorf("report: strategy %q: %w", s.Name, err)
			}
			results[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// 3) Concatenate in input order
	out := make([]loop.Record, 0, len(strategies)*cycles)
	for _, recs := range results {
		out = append(out, recs...)
	}

	return out, nil
}

func runOne(ctx context.Context, s Strategy, cycles int, build Builder, opts []loop.Option) ([]loop.Record, error) {
	sc, err := build(s)
	if err != nil {
		return nil, err
	}
	ctrl, err := control.New(s.Control)
	if err != nil {
		return nil, err
	}
	agentOpts := append(append([]loop.Option{}, opts...), loop.WithName(s.Name))
	if s.History != 0 {
		agentOpts = append(agentOpts, loop.WithHistory(s.History))
	}
	if s.Heuristic && sc.Heuristic != nil {
		agentOpts = append(agentOpts, loop.WithHeuristic(sc.Heuristic))
	}
	if sc.Router != nil {
		agentOpts = append(agentOpts, loop.WithRouter(sc.Router))
	}
	a, err := loop.New(sc.Topology, sc.Start, sc.Goal, ctrl, agentOpts...)
	if err != nil {
		return nil, err
	}

	return a.Run(ctx, cycles)
}

// Aggregate reduces records to one Summary per agent name, sorted by name.
// FinalWeight is the weight produced by the highest cycle seen.
func Aggregate(records []loop.Record) []Summary {
	type acc struct {
		Summary
		lenSum, normSum float64
		lastCycle       int
	}
	by := make(map[string]*acc)
	for _, r := range records {
		a := by[r.Agent]
		if a == nil {
			a = &acc{Summary: Summary{Name: r.Agent}}
			by[r.Agent] = a
		}
		a.Cycles++
		if r.Found {
			a.Found++
			a.lenSum += float64(r.PathLength)
			a.normSum += r.Norm
		}
		if r.Cycle >= a.lastCycle {
			a.lastCycle = r.Cycle
			a.FinalWeight = r.Weight
		}
	}

	out := make([]Summary, 0, len(by))
	for _, a := range by {
		if a.Found > 0 {
			a.AvgPathLength = a.lenSum / float64(a.Found)
			a.AvgNorm = a.normSum / float64(a.Found)
		}
		out = append(out, a.Summary)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}
