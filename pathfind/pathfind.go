package pathfind

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/homeostat/core"
)

// FindPath computes a minimum-cost path from start to goal over t, pricing
// each move with cost.
//
// Preconditions and validation (in order):
//  1. t must be non-nil (ErrNilTopology).
//  2. cost must be non-nil (ErrNilCost).
//  3. Options must be in range (ErrBadHistory, ErrBadBudget).
//  4. start and goal must be valid nodes of t (ErrInvalidNode).
//
// An unreachable goal, an exhausted budget or a cost cap yields
// Result{Found: false} and a nil error.
//
// Complexity:
//
//   - Time:  O((S + A) log S)
//   - Space: O(S + A)
func FindPath(t core.Topology, start, goal core.NodeID, cost CostFunc, opts ...Option) (Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if t == nil {
		return Result{}, ErrNilTopology
	}
	if cost == nil {
		return Result{}, ErrNilCost
	}
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}
	if !t.Valid(start) || !t.Valid(goal) {
		return Result{}, fmt.Errorf("%w: %d→%d", ErrInvalidNode, start, goal)
	}

	// 2) Trivial search
	if start == goal {
		return Result{Path: Path{Nodes: []core.NodeID{start}}, Found: true}, nil
	}

	// 3) Run
	r := &runner{
		t:       t,
		goal:    goal,
		cost:    cost,
		options: cfg,
		index:   make(map[stateKey]int),
	}
	r.init(start)

	return r.process(), nil
}

// stateKey identifies a search state: a node plus its most recent
// predecessors, oldest first. Unused trail slots hold core.NoNode.
type stateKey struct {
	node  core.NodeID
	trail [MaxHistory]core.NodeID
	n     int
}

// state is an arena entry for one reached search state.
type state struct {
	key    stateKey
	g      float64
	parent int // index of the predecessor state, -1 for start
	closed bool
}

// runner holds the mutable state for a single search.
type runner struct {
	t       core.Topology
	goal    core.NodeID
	cost    CostFunc
	options Options

	states []state                 // arena of reached states
	index  map[stateKey]int        // state key → arena index
	pq     statePQ                 // frontier
	seq    uint64                  // next insertion sequence
	trail  [MaxHistory]core.NodeID // scratch for Step.Trail

	expanded int
	clamped  int
}

// init seeds the frontier with the start state.
func (r *runner) init(start core.NodeID) {
	k := stateKey{node: start}
	for i := range k.trail {
		k.trail[i] = core.NoNode
	}
	r.states = append(r.states, state{key: k, parent: -1})
	r.index[k] = 0
	heap.Init(&r.pq)
	r.push(0, 0)
}

// push queues state s with cost-so-far g.
func (r *runner) push(s int, g float64) {
	f := g
	if r.options.Heuristic != nil {
		f += r.options.Heuristic(r.states[s].key.node)
	}
	heap.Push(&r.pq, stateItem{state: s, f: f, g: g, seq: r.seq})
	r.seq++
}

// process is the core best-first loop.
//
// Loop termination conditions:
//
//   - A goal state is popped (Found).
//   - The heap becomes empty, the budget is spent, or the minimum priority
//     exceeds MaxCost (not Found).
func (r *runner) process() Result {
	for r.pq.Len() > 0 {
		// 1) Pop the best item; skip stale or closed entries.
		item := heap.Pop(&r.pq).(stateItem)
		st := &r.states[item.state]
		if st.closed || item.g > st.g {
			continue
		}

		// 2) Stop at the goal or at a cap.
		if st.key.node == r.goal {
			return Result{Path: r.reconstruct(item.state), Found: true, Expanded: r.expanded, Clamped: r.clamped}
		}
		if item.f > r.options.MaxCost || r.expanded >= r.options.MaxExpansions {
			break
		}

		// 3) Finalize and relax.
		st.closed = true
		r.expanded++
		r.relax(item.state)
	}

	return Result{Expanded: r.expanded, Clamped: r.clamped}
}

// relax prices every outgoing move of state s and queues improvements.
func (r *runner) relax(s int) {
	k := r.states[s].key
	g := r.states[s].g
	prev := core.NoNode
	if k.n > 0 {
		prev = k.trail[k.n-1]
	}
	copy(r.trail[:], k.trail[:k.n])
	trail := r.trail[:k.n]

	for _, arc := range r.t.Neighbors(k.node) {
		// No immediate reversal once history is tracked.
		if r.options.History > 0 && arc.To == prev {
			continue
		}
		nk := r.advance(k, arc.To)
		idx, seen := r.index[nk]
		if seen && r.states[idx].closed {
			continue
		}

		c := r.cost(Step{From: k.node, To: arc.To, Base: arc.Cost, Trail: trail})
		switch {
		case math.IsInf(c, 1):
			continue
		case c < 0 || math.IsNaN(c):
			c = 0
			r.clamped++
		}
		ng := g + c

		if !seen {
			idx = len(r.states)
			r.states = append(r.states, state{key: nk, g: ng, parent: s})
			r.index[nk] = idx
		} else if ng < r.states[idx].g {
			r.states[idx].g = ng
			r.states[idx].parent = s
		} else {
			continue
		}
		r.push(idx, ng)
	}
}

// advance returns the state reached by moving from k to next.
func (r *runner) advance(k stateKey, next core.NodeID) stateKey {
	nk := stateKey{node: next}
	for i := range nk.trail {
		nk.trail[i] = core.NoNode
	}
	h := r.options.History
	if h == 0 {
		return nk
	}
	// Window = k.trail[:k.n] + k.node, keep the last h.
	var buf [MaxHistory + 1]core.NodeID
	n := copy(buf[:], k.trail[:k.n])
	buf[n] = k.node
	n++
	from := 0
	if n > h {
		from = n - h
	}
	nk.n = copy(nk.trail[:], buf[from:n])

	return nk
}

// reconstruct walks parent links from s back to the start state.
func (r *runner) reconstruct(s int) Path {
	cost := r.states[s].g
	var nodes []core.NodeID
	for at := s; at >= 0; at = r.states[at].parent {
		nodes = append(nodes, r.states[at].key.node)
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return Path{Nodes: nodes, Cost: cost}
}
