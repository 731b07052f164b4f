// Package spectral provides the frequency-domain primitives behind the
// regularity estimator: an in-place iterative radix-2 FFT, its inverse,
// power-of-two sizing, and FFT-based linear autocorrelation.
//
// All transforms operate on caller-owned buffers. Workspace bundles the
// buffers one estimator needs so that repeated calls do not allocate once
// the workspace has grown to the largest size seen.
//
// Complexity:
//
//   - FFT, IFFT:        O(N log N) time, O(1) extra memory (twiddles cached per N).
//   - Autocorrelation:  O(N log N) with N = NextPow2(2n).
//
// Errors:
//
//   - ErrNotPowerOfTwo: transform length is zero or not a power of two.
package spectral
