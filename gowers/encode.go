package gowers

import (
	"fmt"
	"math"

	"github.com/katalvlaran/homeostat/core"
)

// Sequence is an encoded path, one complex value per move, unpadded.
type Sequence []complex128

// Encoding selects how a move becomes a complex value.
type Encoding int

const (
	// Heading encodes the unit direction of each move.
	Heading Encoding = iota
	// Displacement encodes the raw x/y displacement of each move.
	Displacement
)

// String returns the encoding name used in configuration files.
func (e Encoding) String() string {
	switch e {
	case Heading:
		return "heading"
	case Displacement:
		return "displacement"
	default:
		return fmt.Sprintf("encoding(%d)", int(e))
	}
}

// ParseEncoding maps "heading" or "displacement" to an Encoding.
func ParseEncoding(s string) (Encoding, error) {
	switch s {
	case "", "heading":
		return Heading, nil
	case "displacement":
		return Displacement, nil
	default:
		return Heading, fmt.Errorf("gowers: unknown encoding %q", s)
	}
}

// Encode maps successive position differences to complex values.
// The result has len(points)-1 elements (nil for fewer than two points).
func Encode(points []core.Point, mode Encoding) Sequence {
	if len(points) < 2 {
		return nil
	}
	seq := make(Sequence, len(points)-1)
	for i := 1; i < len(points); i++ {
		seq[i-1] = encodeMove(points[i].Sub(points[i-1]), mode)
	}

	return seq
}

// EncodePath resolves node positions through t and encodes the moves.
func EncodePath(t core.Topology, nodes []core.NodeID, mode Encoding) Sequence {
	if len(nodes) < 2 {
		return nil
	}
	seq := make(Sequence, len(nodes)-1)
	prev := t.Position(nodes[0])
	for i := 1; i < len(nodes); i++ {
		cur := t.Position(nodes[i])
		seq[i-1] = encodeMove(cur.Sub(prev), mode)
		prev = cur
	}

	return seq
}

func encodeMove(d core.Point, mode Encoding) complex128 {
	if mode == Displacement {
		return d.Complex()
	}
	m := d.Len()
	if m == 0 || math.IsNaN(m) {
		return 0
	}

	return complex(d.X/m, d.Y/m)
}
