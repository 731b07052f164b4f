package spectral_test

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/katalvlaran/homeostat/spectral"
	"github.com/stretchr/testify/require"
)

// naiveDFT is the O(N²) reference transform.
func naiveDFT(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		for j := 0; j < n; j++ {
			out[k] += x[j] * cmplx.Exp(complex(0, -2*math.Pi*float64(j*k)/float64(n)))
		}
	}
	return out
}

func randomSignal(rng *rand.Rand, n int) []complex128 {
	x := make([]complex128, n)
	for i := range x {
		x[i] = complex(rng.NormFloat64(), rng.NormFloat64())
	}
	return x
}

func requireClose(t *testing.T, want, got []complex128, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDelta(t, real(want[i]), real(got[i]), tol, "re[%d]", i)
		require.InDelta(t, imag(want[i]), imag(got[i]), tol, "im[%d]", i)
	}
}

func TestNextPow2(t *testing.T) {
	cases := []struct{ in, want int }{
		{-3, 1}, {0, 1}, {1, 1}, {2, 2}, {3, 4}, {4, 4}, {5, 8}, {17, 32}, {1024, 1024}, {1025, 2048},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, spectral.NextPow2(tc.in), "NextPow2(%d)", tc.in)
	}
	require.True(t, spectral.IsPow2(64))
	require.False(t, spectral.IsPow2(0))
	require.False(t, spectral.IsPow2(12))
}

func TestFFT_RejectsBadLength(t *testing.T) {
	for _, n := range []int{0, 3, 6, 12} {
		require.ErrorIs(t, spectral.FFT(make([]complex128, n)), spectral.ErrNotPowerOfTwo, "n=%d", n)
		require.ErrorIs(t, spectral.IFFT(make([]complex128, n)), spectral.ErrNotPowerOfTwo, "n=%d", n)
	}
}

func TestFFT_MatchesNaiveDFT(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, n := range []int{1, 2, 4, 8, 32, 128} {
		x := randomSignal(rng, n)
		want := naiveDFT(x)
		got := append([]complex128(nil), x...)
		require.NoError(t, spectral.FFT(got))
		requireClose(t, want, got, 1e-9)
	}
}

func TestIFFT_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	x := randomSignal(rng, 256)
	y := append([]complex128(nil), x...)
	require.NoError(t, spectral.FFT(y))
	require.NoError(t, spectral.IFFT(y))
	requireClose(t, x, y, 1e-12)
}

func TestEnergy_Parseval(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	x := randomSignal(rng, 64)
	X := append([]complex128(nil), x...)
	require.NoError(t, spectral.FFT(X))
	require.InDelta(t, spectral.Energy(x), spectral.Energy(X)/64, 1e-9)
}
