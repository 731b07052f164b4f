package gowers_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/homeostat/core"
	"github.com/katalvlaran/homeostat/gowers"
	"github.com/katalvlaran/homeostat/gridgraph"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	pts := []core.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 1}}
	s := math.Sqrt2 / 2

	heading := gowers.Encode(pts, gowers.Heading)
	require.Len(t, heading, 3)
	require.InDelta(t, s, real(heading[0]), 1e-15)
	require.InDelta(t, s, imag(heading[0]), 1e-15)
	require.Equal(t, complex(1, 0), heading[1])
	require.Equal(t, complex(0, 0), heading[2], "zero-length move encodes 0")

	disp := gowers.Encode(pts, gowers.Displacement)
	require.Equal(t, gowers.Sequence{complex(1, 1), complex(2, 0), 0}, disp)

	require.Nil(t, gowers.Encode(pts[:1], gowers.Heading))
	require.Nil(t, gowers.Encode(nil, gowers.Heading))
}

func TestEncodePath(t *testing.T) {
	gg, _ := gridgraph.Open(4, 4, gridgraph.Conn8)
	nodes := []core.NodeID{0, 5, 6, 10}
	pts := make([]core.Point, len(nodes))
	for i, id := range nodes {
		pts[i] = gg.Position(id)
	}
	require.Equal(t, gowers.Encode(pts, gowers.Heading), gowers.EncodePath(gg, nodes, gowers.Heading))
	require.Equal(t, gowers.Encode(pts, gowers.Displacement), gowers.EncodePath(gg, nodes, gowers.Displacement))
	require.Nil(t, gowers.EncodePath(gg, nodes[:1], gowers.Heading))
}

func TestParseEncoding(t *testing.T) {
	for in, want := range map[string]gowers.Encoding{"": gowers.Heading, "heading": gowers.Heading, "displacement": gowers.Displacement} {
		got, err := gowers.ParseEncoding(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
		if in != "" {
			require.Equal(t, in, got.String())
		}
	}
	_, err := gowers.ParseEncoding("turns")
	require.Error(t, err)
}
