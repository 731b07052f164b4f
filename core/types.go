package core

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyLabel indicates that a node was added with an empty label.
	ErrEmptyLabel = errors.New("core: node label is empty")

	// ErrDuplicateNode indicates that a label is already registered.
	ErrDuplicateNode = errors.New("core: duplicate node label")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrBadCost indicates a negative or non-finite base cost.
	ErrBadCost = errors.New("core: edge cost must be finite and non-negative")

	// ErrBadCapacity indicates a non-positive edge capacity.
	ErrBadCapacity = errors.New("core: edge capacity must be positive")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// NodeID identifies a node within a single Topology.
type NodeID int

// NoNode is the zero-information identifier returned by failed lookups.
const NoNode NodeID = -1

// Unbounded is the default capacity of an edge.
const Unbounded int64 = math.MaxInt64

// Point is a planar position.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Len returns the Euclidean length of p seen as a vector.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Complex returns p as X + iY.
func (p Point) Complex() complex128 {
	return complex(p.X, p.Y)
}

// Arc is an outgoing connection as seen by a search: destination and base cost.
type Arc struct {
	To   NodeID
	Cost float64
}

// Topology is the read-only view of a graph consumed by the search engine.
//
// Implementations must not change between calls made during one search.
type Topology interface {
	// Neighbors returns the outgoing arcs of id. Invalid nodes yield nil.
	Neighbors(id NodeID) []Arc
	// Valid reports whether id names a traversable node.
	Valid(id NodeID) bool
	// Position returns the planar coordinate of id.
	Position(id NodeID) Point
}

// Edge is a stored connection of an explicit Graph.
//
// Undirected edges are stored as two Edge values, one per direction, each
// with its own capacity.
type Edge struct {
	From, To NodeID
	Cost     float64
	Capacity int64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected makes every edge one-way.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithCapacity sets the flow capacity of an edge.
func WithCapacity(c int64) EdgeOption {
	return func(e *Edge) { e.Capacity = c }
}

// Graph is an explicit weighted graph with labelled, positioned nodes.
// It implements Topology.
type Graph struct {
	mu sync.RWMutex

	directed bool

	labels []string          // NodeID → label
	points []Point           // NodeID → position
	index  map[string]NodeID // label → NodeID
	adj    [][]Edge          // NodeID → outgoing edges in insertion order
	edges  int               // number of AddEdge calls that succeeded
}

// NewGraph creates an empty Graph. By default edges are undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{index: make(map[string]NodeID)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	return g.directed
}

var _ Topology = (*Graph)(nil)
