package core

import "fmt"

// AddNode registers a labelled node at position p and returns its identifier.
// Identifiers are dense and assigned in insertion order.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(label string, p Point) (NodeID, error) {
	if label == "" {
		return NoNode, ErrEmptyLabel
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.index[label]; ok {
		return NoNode, fmt.Errorf("%w: %q", ErrDuplicateNode, label)
	}
	id := NodeID(len(g.labels))
	g.labels = append(g.labels, label)
	g.points = append(g.points, p)
	g.adj = append(g.adj, nil)
	g.index[label] = id

	return id, nil
}

// Lookup returns the identifier registered for label.
func (g *Graph) Lookup(label string) (NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.index[label]
	if !ok {
		return NoNode, fmt.Errorf("%w: %q", ErrNodeNotFound, label)
	}

	return id, nil
}

// Label returns the label of id, or "" for an unknown identifier.
func (g *Graph) Label(id NodeID) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(id) {
		return ""
	}

	return g.labels[id]
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.labels)
}

// Valid reports whether id names a node of g.
func (g *Graph) Valid(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.has(id)
}

// Position returns the coordinate of id; unknown identifiers map to the origin.
func (g *Graph) Position(id NodeID) Point {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(id) {
		return Point{}
	}

	return g.points[id]
}

// has is the lock-free bounds check; callers hold g.mu.
func (g *Graph) has(id NodeID) bool {
	return id >= 0 && int(id) < len(g.labels)
}
