package spectral

// Workspace holds reusable transform buffers and cached twiddle factors.
// A Workspace is not safe for concurrent use.
type Workspace struct {
	n       int
	forward []complex128
	inverse []complex128
	bufs    [2][]complex128
}

// NewWorkspace returns an empty workspace; buffers grow on demand.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// Size returns the current transform length.
func (ws *Workspace) Size() int { return ws.n }

// Prepare sizes the workspace for transforms of length n (a power of two),
// zero-fills both buffers and returns them. Twiddles are recomputed only
// when n changes.
func (ws *Workspace) Prepare(n int) (a, b []complex128, err error) {
	if !IsPow2(n) {
		return nil, nil, ErrNotPowerOfTwo
	}
	if n != ws.n {
		ws.n = n
		ws.forward = twiddles(n, false)
		ws.inverse = twiddles(n, true)
	}
	for i := range ws.bufs {
		if cap(ws.bufs[i]) < n {
			ws.bufs[i] = make([]complex128, n)
		}
		ws.bufs[i] = ws.bufs[i][:n]
		clear(ws.bufs[i])
	}

	return ws.bufs[0], ws.bufs[1], nil
}

// FFT transforms x in place with the cached twiddles; len(x) must equal Size.
func (ws *Workspace) FFT(x []complex128) error {
	if len(x) != ws.n {
		return ErrNotPowerOfTwo
	}
	return transform(x, ws.forward)
}

// IFFT inverse-transforms x in place with the cached twiddles and 1/N scaling.
func (ws *Workspace) IFFT(x []complex128) error {
	if len(x) != ws.n {
		return ErrNotPowerOfTwo
	}
	if err := transform(x, ws.inverse); err != nil {
		return err
	}
	scale := complex(1/float64(ws.n), 0)
	for i := range x {
		x[i] *= scale
	}

	return nil
}

// Autocorrelation returns the linear autocorrelation
// r(h) = Σ_j x_{j+h} conj(x_j) for h = 0..len(x)-1,
// computed as IFFT(|FFT(x)|²) over a zero-padded length NextPow2(2n)
// (Wiener–Khinchin). The result is freshly allocated.
func (ws *Workspace) Autocorrelation(x []complex128) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, nil
	}
	buf, _, err := ws.Prepare(NextPow2(2 * n))
	if err != nil {
		return nil, err
	}
	copy(buf, x)
	if err = ws.FFT(buf); err != nil {
		return nil, err
	}
	for i, v := range buf {
		buf[i] = complex(real(v)*real(v)+imag(v)*imag(v), 0)
	}
	if err = ws.IFFT(buf); err != nil {
		return nil, err
	}
	out := make([]complex128, n)
	copy(out, buf[:n])

	return out, nil
}
