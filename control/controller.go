package control

import (
	"fmt"
	"math"
)

// weightEpsilon is the weight below which the penalty is treated as zero.
const weightEpsilon = 1e-12

// Mode is the informal operating regime of the controller.
type Mode int

const (
	// Regulating means the last error exceeded the tolerance.
	Regulating Mode = iota
	// Stabilizing means the last error was within the tolerance.
	Stabilizing
)

// String returns "REGULATING" or "STABILIZING".
func (m Mode) String() string {
	if m == Stabilizing {
		return "STABILIZING"
	}
	return "REGULATING"
}

// Policy is the immutable snapshot handed to one search.
type Policy struct {
	Weight   float64 // structure penalty weight, ≥ 0
	Target   float64 // set-point
	Measured float64 // norm observed to produce this policy
	Error    float64 // Target - Measured
	Mode     Mode
	Cycle    int // observations so far
}

// Controller owns the mutable loop state. It is not safe for concurrent
// use; each simulation needs its own.
type Controller struct {
	cfg    Config
	policy Policy
}

// New validates cfg and returns a controller at its initial weight.
func New(cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{cfg: cfg}
	c.Reset()

	return c, nil
}

// Config returns the configuration the controller was built with.
func (c *Controller) Config() Config { return c.cfg }

// Policy returns the current snapshot.
func (c *Controller) Policy() Policy { return c.policy }

// Reset restores the initial weight and clears the cycle count.
func (c *Controller) Reset() {
	c.policy = Policy{
		Weight: c.cfg.InitialWeight,
		Target: c.cfg.TargetNorm,
		Mode:   Regulating,
	}
}

// Observe folds one measured norm into the weight and returns the policy
// for the next search. A non-finite measurement leaves the state untouched.
func (c *Controller) Observe(measured float64) (Policy, error) {
	if !finite(measured) {
		return c.policy, fmt.Errorf("%w: %v", ErrBadMeasurement, measured)
	}
	e := c.cfg.TargetNorm - measured
	w := c.policy.Weight*(1-c.cfg.DecayRate) - c.cfg.ProportionalGain*e
	if w < weightEpsilon {
		w = 0
	}
	mode := Regulating
	if math.Abs(e) <= c.cfg.Tolerance {
		mode = Stabilizing
	}
	c.policy = Policy{
		Weight:   w,
		Target:   c.cfg.TargetNorm,
		Measured: measured,
		Error:    e,
		Mode:     mode,
		Cycle:    c.policy.Cycle + 1,
	}

	return c.policy, nil
}
