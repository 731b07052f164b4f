package pathfind

// stateItem is a frontier entry: a state index with its priority.
type stateItem struct {
	state int     // index into runner.states
	f     float64 // g + h
	g     float64 // g at push time; stale entries have g > states[state].g
	seq   uint64  // insertion order for FIFO tie-breaking
}

// statePQ is a min-heap of stateItem ordered by (f, seq).
// We use the “lazy-decrease-key” approach: an improved state is pushed again
// and the outdated entry is ignored when popped.
type statePQ []stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less orders by priority, then by insertion sequence.
func (pq statePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(stateItem)) }

// Pop removes and returns the last element.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
