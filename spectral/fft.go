package spectral

import (
	"errors"
	"math"
	"math/bits"
)

// ErrNotPowerOfTwo indicates a transform length that is zero or not a power of two.
var ErrNotPowerOfTwo = errors.New("spectral: length must be a positive power of two")

// NextPow2 returns the smallest power of two ≥ n (1 for n ≤ 1).
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// IsPow2 reports whether n is a positive power of two.
func IsPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// FFT replaces x with its discrete Fourier transform
// X_k = Σ_j x_j e^{-2πi jk/N}.
func FFT(x []complex128) error {
	return transform(x, twiddles(len(x), false))
}

// IFFT replaces x with its inverse transform, scaled by 1/N so that
// IFFT(FFT(x)) == x up to rounding.
func IFFT(x []complex128) error {
	if err := transform(x, twiddles(len(x), true)); err != nil {
		return err
	}
	scale := complex(1/float64(len(x)), 0)
	for i := range x {
		x[i] *= scale
	}

	return nil
}

// twiddles computes e^{∓2πi k/N} for k < N/2.
func twiddles(n int, inverse bool) []complex128 {
	if !IsPow2(n) {
		return nil
	}
	sign := -1.0
	if inverse {
		sign = 1.0
	}
	w := make([]complex128, n/2)
	for k := range w {
		s, c := math.Sincos(sign * 2 * math.Pi * float64(k) / float64(n))
		w[k] = complex(c, s)
	}

	return w
}

// transform is the iterative Cooley–Tukey butterfly over precomputed twiddles.
//
// Steps:
//  1. Bit-reversal permutation.
//  2. log2(N) butterfly passes, span doubling each pass.
func transform(x []complex128, w []complex128) error {
	n := len(x)
	if !IsPow2(n) {
		return ErrNotPowerOfTwo
	}
	if n == 1 {
		return nil
	}

	// 1) Bit-reversal permutation
	shift := bits.UintSize - bits.Len(uint(n-1))
	for i := 0; i < n; i++ {
		j := int(bits.Reverse(uint(i)) >> shift)
		if j > i {
			x[i], x[j] = x[j], x[i]
		}
	}

	// 2) Butterflies
	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		stride := n / size
		for start := 0; start < n; start += size {
			for k := 0; k < half; k++ {
				t := w[k*stride] * x[start+k+half]
				u := x[start+k]
				x[start+k] = u + t
				x[start+k+half] = u - t
			}
		}
	}

	return nil
}

// Energy returns Σ|x_j|².
func Energy(x []complex128) float64 {
	var e float64
	for _, v := range x {
		e += real(v)*real(v) + imag(v)*imag(v)
	}
	return e
}
