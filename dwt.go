package wavelet

import (
	"fmt"
	"slices"

	"github.com/tphakala/go-wavelet/internal/engine"
	"github.com/tphakala/go-wavelet/internal/mathutil"
	"github.com/tphakala/go-wavelet/internal/pipeline"
)

// MaxLevels returns the largest level count Decompose accepts for a signal of
// length n: floor(log2(n)), or 0 for n < 2.
func MaxLevels(n int) int {
	return pipeline.MaxLevels(n)
}

// DWT performs one level of the discrete wavelet transform.
//
// Both bands are computed from the same input with ConvolveAndSubsample, using
// the decomposition low-pass filter for the approximation and the
// decomposition high-pass filter for the detail. Each band holds
// ceil((N+K-1)/2) coefficients.
func DWT(signal []complex128, bank *FilterBank) (approx, detail []complex128, err error) {
	return dwt(engine.Direct{}, signal, bank)
}

// IDWT performs one level of the inverse discrete wavelet transform.
//
// Both bands are upsampled by zero insertion, convolved with the
// reconstruction filters and summed. The K-1 samples of filter delay are
// dropped from the front, leaving 2L-K+1 samples for bands of length L. For
// even K and a signal of even length N that is N+1 samples; the last one
// corresponds to the zero following the signal. Bands of an N+1 sample
// signal have the same length, so the extra sample is kept here and in
// Reconstruct; Transform.Trim removes it.
func IDWT(approx, detail []complex128, bank *FilterBank) ([]complex128, error) {
	return idwt(engine.Direct{}, approx, detail, bank)
}

// Decompose applies the DWT levels times, each time to the previous
// approximation.
//
// The returned transform holds levels+1 bands: Bands[0] is the final
// approximation and Bands[i] the detail from the level that ran when i
// levels remained, so Bands[levels] is the finest detail. levels must be in
// [0, MaxLevels(len(signal))]; zero returns the signal as the only band.
func Decompose(signal []complex128, bank *FilterBank, levels int) (*Transform, error) {
	return decompose(engine.Direct{}, signal, bank, levels)
}

// Reconstruct inverts Decompose.
//
// Starting from Bands[0], each detail band is merged in stored order with
// IDWT. Between levels the running approximation is cut to the length the
// next detail band expects: the planned length when SignalLen is known,
// otherwise by dropping one trailing sample when it is one longer than the
// band. The last level is returned as IDWT produces it, so a one-level
// Reconstruct equals IDWT of the same bands and the result may hold one
// sample beyond SignalLen; pass it through Transform.Trim for exactly
// SignalLen samples. Band lengths are checked against SignalLen when it is
// known. Transforms without detail bands are rejected.
func Reconstruct(t *Transform, bank *FilterBank) ([]complex128, error) {
	return reconstruct(engine.Direct{}, t, bank)
}

// DecomposeReal is Decompose for real-valued signals.
func DecomposeReal(signal []float64, bank *FilterBank, levels int) (*Transform, error) {
	return Decompose(FromReal(signal), bank, levels)
}

// ReconstructReal is Reconstruct returning only the real parts, cut to
// SignalLen.
func ReconstructReal(t *Transform, bank *FilterBank) ([]float64, error) {
	out, err := Reconstruct(t, bank)
	if err != nil {
		return nil, err
	}
	return ToReal(t.Trim(out)), nil
}

func checkBank(bank *FilterBank) error {
	if bank == nil || bank.Len() == 0 {
		return fmt.Errorf("%w: filter bank is empty", ErrInvalidArgument)
	}
	return nil
}

func dwt(conv engine.Convolver, signal []complex128, bank *FilterBank) (approx, detail []complex128, err error) {
	if err := checkBank(bank); err != nil {
		return nil, nil, err
	}

	approx, err = conv.ConvolveAndSubsample(signal, bank.LoD)
	if err != nil {
		return nil, nil, err
	}
	detail, err = conv.ConvolveAndSubsample(signal, bank.HiD)
	if err != nil {
		return nil, nil, err
	}
	return approx, detail, nil
}

func addComplex(x, y complex128) complex128 { return x + y }

func idwt(conv engine.Convolver, approx, detail []complex128, bank *FilterBank) ([]complex128, error) {
	if err := checkBank(bank); err != nil {
		return nil, err
	}
	if len(approx) == 0 || len(detail) == 0 {
		return nil, fmt.Errorf("%w: empty band", ErrInvalidArgument)
	}
	if len(approx) != len(detail) {
		return nil, fmt.Errorf("%w: approximation has %d coefficients, detail has %d",
			ErrInvalidArgument, len(approx), len(detail))
	}

	k := bank.Len()
	upLen := len(approx) * upsampleFactor
	if upLen < k {
		return nil, fmt.Errorf("%w: bands of %d coefficients are too short for a %d-tap filter",
			ErrInvalidArgument, len(approx), k)
	}

	lo, err := conv.Convolve(engine.Upsample(approx), bank.LoR)
	if err != nil {
		return nil, err
	}
	hi, err := conv.Convolve(engine.Upsample(detail), bank.HiR)
	if err != nil {
		return nil, err
	}

	return mathutil.Merge(lo[k-1:upLen], hi[k-1:upLen], addComplex), nil
}

func decompose(conv engine.Convolver, signal []complex128, bank *FilterBank, levels int) (*Transform, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}
	if err := checkBank(bank); err != nil {
		return nil, err
	}
	if maxLevels := MaxLevels(len(signal)); levels < 0 || levels > maxLevels {
		return nil, fmt.Errorf("%w: %d levels requested, signal of %d samples allows 0-%d",
			ErrTooManyLevels, levels, len(signal), maxLevels)
	}

	bands := make([][]complex128, levels+1)
	work := signal
	for level := levels; level >= 1; level-- {
		approx, detail, err := dwt(conv, work, bank)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", level, err)
		}
		bands[level] = detail
		work = approx
	}
	if levels == 0 {
		work = slices.Clone(signal)
	}
	bands[0] = work

	return &Transform{Bands: bands, SignalLen: len(signal)}, nil
}

func reconstruct(conv engine.Convolver, t *Transform, bank *FilterBank) ([]complex128, error) {
	if t == nil || len(t.Bands) == 0 {
		return nil, fmt.Errorf("%w: empty transform", ErrInvalidArgument)
	}
	if err := checkBank(bank); err != nil {
		return nil, err
	}
	levels := t.Levels()
	if levels == 0 {
		return nil, fmt.Errorf("%w: transform has no detail bands", ErrInvalidArgument)
	}

	var synthesis []pipeline.StageSpec
	if t.SignalLen > 0 {
		plan, err := pipeline.BuildPipeline(t.SignalLen, bank.Len(), levels)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
		if err := plan.CheckBands(t.bandLengths()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
		synthesis = plan.GetSynthesisStages()
	}

	work := t.Bands[0]
	for i := 1; i <= levels; i++ {
		detail := t.Bands[i]
		if len(work) == len(detail)+1 {
			work = work[:len(detail)]
		}

		next, err := idwt(conv, work, detail, bank)
		if err != nil {
			return nil, fmt.Errorf("band %d: %w", i, err)
		}
		// Known lengths: cut inner levels to the approximation they restore.
		if i < levels && synthesis != nil && len(next) > synthesis[i-1].OutputLen {
			next = next[:synthesis[i-1].OutputLen]
		}
		work = next
	}

	return work, nil
}
