// Package gowers turns a path into a complex signal and scores how regular
// that signal is with an FFT-based Gowers U² uniformity measure.
//
// Encoding:
//
//	Each move p[i]→p[i+1] becomes one complex value. Heading encoding (the
//	default) keeps only the direction, (dx + i·dy)/|d|; Displacement keeps
//	the raw dx + i·dy. Zero-length moves encode 0. A path of m points gives a
//	Sequence of m-1 values. Equal paths give bit-identical sequences.
//
// Score:
//
//	The sequence f of length n is zero-padded to N = NextPow2(2n), so that
//	circular correlation equals linear correlation. With F = FFT(f) and
//	A = FFT(|f|):
//
//	    U²(f) = Σ_k |F_k|⁴ / Σ_k |A_k|⁴
//
//	By Parseval this is Σ_h |r(h)|² / Σ_h W(h)², where r is the
//	autocorrelation of f and W that of |f|. Since |r(h)| ≤ W(h) the value
//	lies in [0,1]; it is 1 exactly when consecutive moves turn by a
//	constant angle (a straight run turns by zero), and falls like 1/n for
//	independent random headings. For unit headings the expectation is
//
//	    E[U²] = 3(2n-1) / (3n + (n-1)(2n-1))
//
//	which drops below 0.3 from n = 10 moves on. Shorter random paths score
//	higher because the lag-0 term dominates: 0.53 at n = 5, 0.31 at n = 9.
//
// Degenerate input:
//
//	Fewer than MinSteps moves (fewer than four points) or a zero-energy
//	signal cannot be scored. Measure then reports Degenerate and a sentinel:
//	1.0 when every non-zero move shares one direction (a single straight
//	run), otherwise 0.0.
//
// Estimator keeps a spectral.Workspace so repeated scoring does not
// allocate. It is not safe for concurrent use; give each loop its own.
package gowers
