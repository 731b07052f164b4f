package gowers

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/homeostat/spectral"
)

// MinSteps is the shortest sequence that is scored rather than treated as
// degenerate (four points, three moves).
const MinSteps = 3

// straightTolerance bounds the cross product of two unit headings that are
// considered the same direction.
const straightTolerance = 1e-9

// Measurement is the detailed outcome of scoring one sequence.
type Measurement struct {
	Norm       float64 // in [0,1]
	Degenerate bool    // Norm is the sentinel, not a computed value
	Steps      int     // len(sequence)
}

// Estimator computes U² scores with a reusable workspace.
type Estimator struct {
	ws *spectral.Workspace
}

// NewEstimator returns an Estimator with an empty workspace.
func NewEstimator() *Estimator {
	return &Estimator{ws: spectral.NewWorkspace()}
}

// Score returns the U² norm of seq in [0,1].
func (e *Estimator) Score(seq Sequence) float64 {
	return e.Measure(seq).Norm
}

// Score is a convenience wrapper using a fresh Estimator.
func Score(seq Sequence) float64 {
	return NewEstimator().Score(seq)
}

// Measure scores seq and reports whether the degenerate sentinel was used.
//
// Steps:
//  1. Degenerate check (length, energy) → sentinel.
//  2. Zero-pad f and |f| to N = NextPow2(2n).
//  3. Forward transforms; accumulate Σ|F|⁴ and Σ|A|⁴.
//  4. Ratio clamped into [0,1].
func (e *Estimator) Measure(seq Sequence) Measurement {
	n := len(seq)
	energy := 0.0
	for _, v := range seq {
		energy += real(v)*real(v) + imag(v)*imag(v)
	}
	if n < MinSteps || energy == 0 || math.IsNaN(energy) || math.IsInf(energy, 0) {
		return Measurement{Norm: sentinel(seq), Degenerate: true, Steps: n}
	}

	f, a, err := e.ws.Prepare(spectral.NextPow2(2 * n))
	if err != nil {
		return Measurement{Norm: sentinel(seq), Degenerate: true, Steps: n}
	}
	copy(f, seq)
	for i, v := range seq {
		a[i] = complex(cmplx.Abs(v), 0)
	}
	if err = e.ws.FFT(f); err != nil {
		return Measurement{Norm: sentinel(seq), Degenerate: true, Steps: n}
	}
	if err = e.ws.FFT(a); err != nil {
		return Measurement{Norm: sentinel(seq), Degenerate: true, Steps: n}
	}

	var num, den float64
	for k := range f {
		pf := real(f[k])*real(f[k]) + imag(f[k])*imag(f[k])
		pa := real(a[k])*real(a[k]) + imag(a[k])*imag(a[k])
		num += pf * pf
		den += pa * pa
	}

	return Measurement{Norm: clamp01(num / den), Steps: n}
}

// sentinel is 1 for a single straight run of moves, 0 otherwise.
func sentinel(seq Sequence) float64 {
	var ref complex128
	for _, v := range seq {
		m := cmplx.Abs(v)
		if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
			continue
		}
		u := v / complex(m, 0)
		if ref == 0 {
			ref = u
			continue
		}
		cross := real(ref)*imag(u) - imag(ref)*real(u)
		dot := real(ref)*real(u) + imag(ref)*imag(u)
		if math.Abs(cross) > straightTolerance || dot <= 0 {
			return 0
		}
	}
	if ref == 0 {
		return 0
	}

	return 1
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
