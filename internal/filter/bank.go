// Package filter derives the four filters of a two-channel orthogonal wavelet
// filter bank from a single low-pass prototype and analyses their responses.
package filter

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/tphakala/go-wavelet/internal/mathutil"
	"github.com/tphakala/go-wavelet/internal/simdops"
)

// ErrInvalidFilter indicates coefficients that cannot form a filter bank.
var ErrInvalidFilter = errors.New("invalid filter")

// Bank holds the decomposition (analysis) and reconstruction (synthesis)
// filters of a two-channel filter bank. All four filters have the same length.
type Bank struct {
	LoD []float64 // Decomposition low-pass
	HiD []float64 // Decomposition high-pass
	LoR []float64 // Reconstruction low-pass
	HiR []float64 // Reconstruction high-pass
}

// QMF returns the quadrature mirror of a low-pass filter:
//
//	hp[k] = (-1)^k * lp[K-1-k]
//
// Applying QMF twice yields (-1)^(K-1) times the input, so even-length
// filters come back negated.
func QMF(lowPass []float64) []float64 {
	k := len(lowPass)
	hp := make([]float64, k)
	for i := range k {
		v := lowPass[k-1-i]
		if i%2 == 1 {
			v = -v
		}
		hp[i] = v
	}
	return hp
}

// Validate checks that coeffs can seed a filter bank: at least two taps and
// finite values. Any length is accepted; only even-length orthonormal filters
// give perfect reconstruction.
func Validate(coeffs []float64) error {
	if len(coeffs) < minTaps {
		return fmt.Errorf("%w: need at least %d taps, got %d", ErrInvalidFilter, minTaps, len(coeffs))
	}
	if !mathutil.AllFinite(coeffs) {
		return fmt.Errorf("%w: coefficients must be finite", ErrInvalidFilter)
	}
	return nil
}

// FromCoefficients builds a bank from a wavelet coefficient table.
//
// The table normalized to unit L2 norm is the reconstruction low-pass filter;
// its time reverse is the decomposition low-pass filter.
func FromCoefficients(coeffs []float64) (*Bank, error) {
	if err := Validate(coeffs); err != nil {
		return nil, err
	}
	loR, err := mathutil.Normalize(coeffs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}
	return fromReconstruction(loR), nil
}

// FromLowPass builds a bank whose decomposition low-pass filter is loD,
// used as given without normalization.
func FromLowPass(loD []float64) (*Bank, error) {
	if err := Validate(loD); err != nil {
		return nil, err
	}
	return fromReconstruction(mathutil.Reversed(loD)), nil
}

// fromReconstruction derives the remaining filters from the reconstruction
// low-pass filter. The reconstruction high-pass is its QMF and each
// decomposition filter is the time reverse of its reconstruction counterpart.
func fromReconstruction(loR []float64) *Bank {
	hiR := QMF(loR)
	return &Bank{
		LoD: mathutil.Reversed(loR),
		HiD: mathutil.Reversed(hiR),
		LoR: loR,
		HiR: hiR,
	}
}

// Len returns the number of taps in each filter.
func (b *Bank) Len() int {
	return len(b.LoR)
}

// Clone returns a deep copy of the bank.
func (b *Bank) Clone() *Bank {
	return &Bank{
		LoD: slices.Clone(b.LoD),
		HiD: slices.Clone(b.HiD),
		LoR: slices.Clone(b.LoR),
		HiR: slices.Clone(b.HiR),
	}
}

// DCGain returns the sum of the decomposition low-pass taps. It is sqrt(2)
// for a normalized orthogonal wavelet.
func (b *Bank) DCGain() float64 {
	return simdops.Float64Ops().Sum(b.LoD)
}

// OrthogonalityError returns the largest deviation of the reconstruction
// low-pass filter from the orthonormality conditions
//
//	sum_k h[k] h[k+2m] = delta(m)
//
// A value near zero means perfect reconstruction is achievable.
func (b *Bank) OrthogonalityError() float64 {
	ops := simdops.Float64Ops()
	h := b.LoR
	var worst float64
	for shift := 0; shift < len(h); shift += 2 {
		dot := ops.DotProductUnsafe(h[:len(h)-shift], h[shift:])
		want := 0.0
		if shift == 0 {
			want = 1
		}
		worst = math.Max(worst, math.Abs(dot-want))
	}
	return worst
}
