package control_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/homeostat/control"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	mod := func(f func(*control.Config)) control.Config {
		c := control.DefaultConfig()
		f(&c)
		return c
	}
	cases := []struct {
		name string
		cfg  control.Config
		ok   bool
	}{
		{"Default", control.DefaultConfig(), true},
		{"ZeroDecay", mod(func(c *control.Config) { c.DecayRate = 0 }), true},
		{"TargetAboveOne", mod(func(c *control.Config) { c.TargetNorm = 1.2 }), false},
		{"TargetNaN", mod(func(c *control.Config) { c.TargetNorm = math.NaN() }), false},
		{"ZeroGain", mod(func(c *control.Config) { c.ProportionalGain = 0 }), false},
		{"InfiniteGain", mod(func(c *control.Config) { c.ProportionalGain = math.Inf(1) }), false},
		{"DecayOne", mod(func(c *control.Config) { c.DecayRate = 1 }), false},
		{"DecayNegative", mod(func(c *control.Config) { c.DecayRate = -0.1 }), false},
		{"NegativeTolerance", mod(func(c *control.Config) { c.Tolerance = -1 }), false},
		{"NegativeWeight", mod(func(c *control.Config) { c.InitialWeight = -1 }), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, control.ErrInvalidConfig), "got %v", err)
			_, err = control.New(tc.cfg)
			require.ErrorIs(t, err, control.ErrInvalidConfig)
		})
	}
}

func TestController_Direction(t *testing.T) {
	c, err := control.New(control.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, 0.0, c.Policy().Weight)

	// More regular than the target: penalty grows by gain·(measured-target).
	p, err := c.Observe(1.0)
	require.NoError(t, err)
	require.InDelta(t, 5*0.75, p.Weight, 1e-12)
	require.InDelta(t, -0.75, p.Error, 1e-12)
	require.Equal(t, control.Regulating, p.Mode)
	require.Equal(t, 1, p.Cycle)

	// Less regular than the target: penalty decays and shrinks, clamped at 0.
	p, _ = c.Observe(0.0)
	require.InDelta(t, 3.75*0.99-1.25, p.Weight, 1e-12)
	for i := 0; i < 10; i++ {
		p, _ = c.Observe(0.0)
		require.GreaterOrEqual(t, p.Weight, 0.0)
	}
	require.Zero(t, p.Weight)
}

func TestController_ConvergesAtTarget(t *testing.T) {
	cfg := control.DefaultConfig()
	cfg.DecayRate = 0.1
	cfg.InitialWeight = 5
	c, err := control.New(cfg)
	require.NoError(t, err)

	p := c.Policy()
	cycles := 0
	for p.Weight > 0 {
		require.Less(t, cycles, 400, "weight did not reach zero")
		prev := p.Weight
		p, err = c.Observe(cfg.TargetNorm)
		require.NoError(t, err)
		require.LessOrEqual(t, p.Weight, prev)
		require.Equal(t, control.Stabilizing, p.Mode)
		cycles++
	}
	for i := 0; i < 10; i++ {
		p, _ = c.Observe(cfg.TargetNorm)
		require.Zero(t, p.Weight)
	}
}

func TestController_Bounded(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, cfg := range []control.Config{
		control.DefaultConfig(),
		{TargetNorm: 0, ProportionalGain: 50, DecayRate: 0.001, InitialWeight: 3},
		{TargetNorm: 0.85, ProportionalGain: 5, DecayRate: 0.05, Tolerance: 0.1},
	} {
		c, err := control.New(cfg)
		require.NoError(t, err)
		bound := math.Max(cfg.InitialWeight, cfg.ProportionalGain/cfg.DecayRate) + 1e-9
		for i := 0; i < 100000; i++ {
			m := rng.Float64()
			if i%1000 < 500 {
				m = 1 // long adversarial runs at maximal regularity
			}
			p, err := c.Observe(m)
			require.NoError(t, err)
			if p.Weight < 0 || p.Weight > bound {
				t.Fatalf("cycle %d: weight %v outside [0, %v]", i, p.Weight, bound)
			}
		}
	}
}

func TestController_Modes(t *testing.T) {
	cfg := control.DefaultConfig()
	cfg.Tolerance = 0.1
	c, _ := control.New(cfg)

	p, _ := c.Observe(0.3)
	require.Equal(t, control.Stabilizing, p.Mode)
	p, _ = c.Observe(0.36)
	require.Equal(t, control.Regulating, p.Mode)
	require.Equal(t, "REGULATING", p.Mode.String())
	require.Equal(t, "STABILIZING", control.Stabilizing.String())
}

func TestController_BadMeasurement(t *testing.T) {
	c, _ := control.New(control.DefaultConfig())
	before, _ := c.Observe(0.9)

	for _, m := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		p, err := c.Observe(m)
		require.ErrorIs(t, err, control.ErrBadMeasurement)
		require.Equal(t, before, p)
	}
	require.Equal(t, before, c.Policy())
}

func TestController_SnapshotIsolation(t *testing.T) {
	c, _ := control.New(control.DefaultConfig())
	snap := c.Policy()
	_, _ = c.Observe(1)
	require.Zero(t, snap.Weight, "a snapshot must not see later updates")

	c.Reset()
	require.Equal(t, snap, c.Policy())
	require.Equal(t, control.DefaultConfig(), c.Config())
}
