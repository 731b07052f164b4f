package control

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for the control package.
var (
	// ErrInvalidConfig indicates a configuration value outside its range.
	ErrInvalidConfig = errors.New("control: invalid configuration")

	// ErrBadMeasurement indicates a NaN or infinite measured norm.
	ErrBadMeasurement = errors.New("control: measured norm must be finite")
)

// Config holds the controller set-point and gains.
type Config struct {
	// TargetNorm is the set-point for the measured U² norm, in [0,1].
	TargetNorm float64 `yaml:"target_norm" validate:"gte=0,lte=1"`
	// ProportionalGain scales the reaction to the current error (> 0).
	ProportionalGain float64 `yaml:"proportional_gain" validate:"gt=0"`
	// DecayRate is the per-cycle leak of the weight, in [0,1).
	DecayRate float64 `yaml:"decay_rate" validate:"gte=0,lt=1"`
	// Tolerance is the |error| at or below which the loop counts as stabilizing.
	Tolerance float64 `yaml:"tolerance" validate:"gte=0"`
	// InitialWeight is the structure penalty used by the first search.
	InitialWeight float64 `yaml:"initial_weight" validate:"gte=0"`
}

// DefaultConfig returns the grid homeostasis settings: target 0.25,
// gain 5, decay 0.01, tolerance 0.05, starting weight 0.
func DefaultConfig() Config {
	return Config{
		TargetNorm:       0.25,
		ProportionalGain: 5.0,
		DecayRate:        0.01,
		Tolerance:        0.05,
		InitialWeight:    0,
	}
}

// Validate checks every field and reports the first violation.
func (c Config) Validate() error {
	if !finite(c.TargetNorm) || c.TargetNorm < 0 || c.TargetNorm > 1 {
		return fmt.Errorf("%w: target_norm must be in [0,1], got %v", ErrInvalidConfig, c.TargetNorm)
	}
	if !finite(c.ProportionalGain) || c.ProportionalGain <= 0 {
		return fmt.Errorf("%w: proportional_gain must be finite and > 0, got %v", ErrInvalidConfig, c.ProportionalGain)
	}
	if !finite(c.DecayRate) || c.DecayRate < 0 || c.DecayRate >= 1 {
		return fmt.Errorf("%w: decay_rate must be in [0,1), got %v", ErrInvalidConfig, c.DecayRate)
	}
	if !finite(c.Tolerance) || c.Tolerance < 0 {
		return fmt.Errorf("%w: tolerance must be finite and ≥ 0, got %v", ErrInvalidConfig, c.Tolerance)
	}
	if !finite(c.InitialWeight) || c.InitialWeight < 0 {
		return fmt.Errorf("%w: initial_weight must be finite and ≥ 0, got %v", ErrInvalidConfig, c.InitialWeight)
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
