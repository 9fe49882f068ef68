// Package pipeline plans the level cascade of a multi-level wavelet transform.
//
// A plan records, for every analysis level, how long the approximation that
// enters the level is and how long the two bands it produces are. The
// synthesis cascade replays the plan in reverse, so band lengths can be
// checked before any convolution runs.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-wavelet/internal/mathutil"
)

// Planning errors.
var (
	// ErrInvalidLength indicates a non-positive signal or filter length.
	ErrInvalidLength = errors.New("invalid length")

	// ErrTooManyLevels indicates a level count above floor(log2(signal length)).
	ErrTooManyLevels = errors.New("too many decomposition levels")

	// ErrBandMismatch indicates band lengths that do not match the plan.
	ErrBandMismatch = errors.New("band lengths do not match plan")
)

// StageType identifies the direction of a cascade stage.
type StageType int

const (
	// StageAnalysis splits an approximation into approximation and detail.
	StageAnalysis StageType = iota

	// StageSynthesis merges an approximation and a detail band.
	StageSynthesis
)

// String returns the stage type name.
func (t StageType) String() string {
	switch t {
	case StageAnalysis:
		return "analysis"
	case StageSynthesis:
		return "synthesis"
	default:
		return "unknown"
	}
}

// StageSpec describes one level of the cascade.
type StageSpec struct {
	Type      StageType
	Band      int // Index of the detail band in the transform (levels..1)
	InputLen  int // Length of the approximation entering the stage
	OutputLen int // Length of each band the stage produces
}

// Pipeline is the level schedule for one signal length and filter length.
type Pipeline struct {
	signalLen int
	stages    []StageSpec // Finest level first
}

// MaxLevels returns the largest level count allowed for a signal of length n.
func MaxLevels(n int) int {
	return max(0, mathutil.FloorLog2(n))
}

// bandLength mirrors the decimating convolution: a single sample passes
// through unchanged, otherwise ceil((n+k-1)/2).
func bandLength(n, k int) int {
	if n == 1 {
		return 1
	}
	return mathutil.CeilHalf(n + k - 1)
}

// BuildPipeline plans a levels-deep decomposition of a signal of length
// signalLen with filters of length filterLen.
func BuildPipeline(signalLen, filterLen, levels int) (*Pipeline, error) {
	if signalLen < 1 || filterLen < 1 {
		return nil, fmt.Errorf("%w: signal %d, filter %d", ErrInvalidLength, signalLen, filterLen)
	}
	if levels < 0 {
		return nil, fmt.Errorf("%w: negative level count %d", ErrTooManyLevels, levels)
	}
	if maxLevels := MaxLevels(signalLen); levels > maxLevels {
		return nil, fmt.Errorf("%w: %d levels requested, signal of %d samples allows %d",
			ErrTooManyLevels, levels, signalLen, maxLevels)
	}

	p := &Pipeline{
		signalLen: signalLen,
		stages:    make([]StageSpec, 0, max(levels, defaultStageCapacity)),
	}

	n := signalLen
	for band := levels; band >= 1; band-- {
		out := bandLength(n, filterLen)
		p.stages = append(p.stages, StageSpec{
			Type:      StageAnalysis,
			Band:      band,
			InputLen:  n,
			OutputLen: out,
		})
		n = out
	}

	return p, nil
}

// GetStages returns the analysis stages, finest level first.
func (p *Pipeline) GetStages() []StageSpec {
	return p.stages
}

// GetSynthesisStages returns the synthesis stages in execution order,
// coarsest level first. InputLen is the band length consumed and OutputLen
// the approximation length restored.
func (p *Pipeline) GetSynthesisStages() []StageSpec {
	out := make([]StageSpec, len(p.stages))
	for i, s := range p.stages {
		out[len(p.stages)-1-i] = StageSpec{
			Type:      StageSynthesis,
			Band:      s.Band,
			InputLen:  s.OutputLen,
			OutputLen: s.InputLen,
		}
	}
	return out
}

// BandLengths returns the expected length of every band in transform order:
// index 0 is the coarsest approximation, index i >= 1 the detail band i.
func (p *Pipeline) BandLengths() []int {
	lengths := make([]int, len(p.stages)+1)
	if len(p.stages) == 0 {
		lengths[0] = p.signalLen
		return lengths
	}
	for _, s := range p.stages {
		lengths[s.Band] = s.OutputLen
	}
	lengths[0] = p.stages[len(p.stages)-1].OutputLen
	return lengths
}

// CheckBands verifies that lengths matches BandLengths.
func (p *Pipeline) CheckBands(lengths []int) error {
	want := p.BandLengths()
	if len(lengths) != len(want) {
		return fmt.Errorf("%w: %d bands, expected %d", ErrBandMismatch, len(lengths), len(want))
	}
	for i, n := range lengths {
		if n != want[i] {
			return fmt.Errorf("%w: band %d has %d coefficients, expected %d", ErrBandMismatch, i, n, want[i])
		}
	}
	return nil
}
