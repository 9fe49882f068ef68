package wavelet

import (
	"fmt"

	"github.com/tphakala/go-wavelet/internal/engine"
	"github.com/tphakala/go-wavelet/internal/pipeline"
)

// LevelPlan describes one analysis level of a decomposition.
type LevelPlan struct {
	Band      int // Index of the detail band this level produces
	InputLen  int // Length of the approximation entering the level
	OutputLen int // Length of the approximation and detail it produces
}

// PlanLevels returns the level schedule of a levels-deep decomposition of a
// signal of length signalLen with filters of length filterLen, finest level
// first. It performs the same validation as Decompose without transforming
// anything.
func PlanLevels(signalLen, filterLen, levels int) ([]LevelPlan, error) {
	p, err := buildPlan(signalLen, filterLen, levels)
	if err != nil {
		return nil, err
	}

	stages := p.GetStages()
	out := make([]LevelPlan, len(stages))
	for i, s := range stages {
		out[i] = LevelPlan{Band: s.Band, InputLen: s.InputLen, OutputLen: s.OutputLen}
	}
	return out, nil
}

// BandLengths returns the length of every band Decompose would produce, in
// Transform.Bands order.
func BandLengths(signalLen, filterLen, levels int) ([]int, error) {
	p, err := buildPlan(signalLen, filterLen, levels)
	if err != nil {
		return nil, err
	}
	return p.BandLengths(), nil
}

func buildPlan(signalLen, filterLen, levels int) (*pipeline.Pipeline, error) {
	if signalLen < 1 {
		return nil, ErrEmptyInput
	}
	if filterLen < 1 {
		return nil, ErrEmptyFilter
	}
	p, err := pipeline.BuildPipeline(signalLen, filterLen, levels)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTooManyLevels, err)
	}
	return p, nil
}

// newConvolver maps a Method to its engine implementation.
func newConvolver(method Method, filterLen int) engine.Convolver {
	switch method {
	case MethodDirect:
		return engine.Direct{}
	case MethodFFT:
		return engine.FFT{}
	default:
		return engine.ForFilterLength(filterLen)
	}
}
