package loop

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homeostat/control"
	"github.com/katalvlaran/homeostat/gridgraph"
)

func TestAgent_Metrics(t *testing.T) {
	gg, err := gridgraph.Open(4, 4, gridgraph.Conn8)
	require.NoError(t, err)
	ctrl, err := control.New(control.Config{TargetNorm: 0.25, ProportionalGain: 5, DecayRate: 0.01})
	require.NoError(t, err)
	a, err := New(gg, 0, 15, ctrl, WithName("metrics-test"), WithHistory(2))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = a.Step()
		require.NoError(t, err)
	}

	require.Equal(t, 3.0, testutil.ToFloat64(cyclesTotal.WithLabelValues("metrics-test", resultFound)))
	require.Zero(t, testutil.ToFloat64(cyclesTotal.WithLabelValues("metrics-test", resultUnreachable)))
	require.Equal(t, ctrl.Policy().Weight, testutil.ToFloat64(penaltyWeight.WithLabelValues("metrics-test")))
}
