// Package wavelet implements the discrete wavelet transform (DWT) of complex
// signals in pure Go.
//
// The transform is computed with a two-channel filter bank: the signal is
// convolved with a low-pass and a high-pass decomposition filter and each
// result is decimated by two. Repeating the split on the low-pass output
// gives a multi-level pyramid of bands, which the inverse transform merges
// back level by level.
//
// # Features
//
//   - Single-level DWT and inverse DWT with exact length bookkeeping
//   - Multi-level cascaded decomposition and reconstruction
//   - Built-in Haar and Daubechies wavelets, or any even-length low-pass filter
//   - Convolution fused with decimation, so odd-indexed samples are never computed
//   - Optional SIMD acceleration via github.com/tphakala/simd
//   - FFT convolution for long filters via gonum
//   - Parallel multi-channel processing
//
// # Quick Start
//
// For one-shot use with a named wavelet:
//
//	bank, err := wavelet.NewFilterBank("db3")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tr, err := wavelet.Decompose(signal, bank, 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	restored, err := wavelet.Reconstruct(tr, bank)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	restored = tr.Trim(restored) // Exactly len(signal) samples
//
// For repeated use with a reusable transformer:
//
//	t, err := wavelet.New(&wavelet.Config{
//	    Wavelet:        "db4",
//	    Levels:         5,
//	    EnableParallel: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	transforms, err := t.DecomposeMulti(channels)
//
// # Filter Bank
//
// A [FilterBank] is derived from one coefficient table. The table normalized
// to unit energy is the reconstruction low-pass filter LoR; the
// decomposition low-pass filter LoD is its time reverse. The reconstruction
// high-pass filter is the quadrature mirror HiR = [QMF](LoR) and the
// decomposition high-pass filter HiD is its time reverse. A bank can also be
// built around a raw decomposition low-pass filter with
// [FilterBankFromLowPass].
//
// # Band Layout
//
// [Decompose] returns a [Transform] with levels+1 bands. Bands[0] is the
// coarsest approximation. Bands[levels] is the detail of the first (finest)
// split and Bands[1] the detail of the last (coarsest) one. Every split of an
// N-sample input yields two bands of ceil((N+K-1)/2) coefficients for K-tap
// filters.
//
// Because N and N+1 can produce bands of the same length, the transform
// records the original signal length so [Reconstruct] can return exactly
// N samples.
//
// # Thread Safety
//
// All package-level functions are pure and safe for concurrent use.
// A [Transformer] is immutable after [New] apart from its atomic statistics
// counters and may be shared between goroutines.
package wavelet
