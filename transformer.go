package wavelet

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"sync/atomic"

	"github.com/tphakala/go-wavelet/internal/engine"
	"github.com/tphakala/go-wavelet/internal/filter"
	"golang.org/x/sync/errgroup"
)

// Transformer is a configured, reusable wavelet transform.
//
// The filter bank is derived once in New. A Transformer is safe for
// concurrent use; only its statistics counters change after construction.
type Transformer struct {
	config Config
	name   string
	bank   *FilterBank
	conv   engine.Convolver
	stats  statistics
}

// statistics holds processing counters, updated atomically.
type statistics struct {
	decomposed    atomic.Uint64 // Signals decomposed
	reconstructed atomic.Uint64 // Signals reconstructed
	samplesIn     atomic.Uint64 // Samples consumed by Decompose
	samplesOut    atomic.Uint64 // Samples produced by Reconstruct
	coefficients  atomic.Uint64 // Coefficients produced by Decompose
	failures      atomic.Uint64 // Calls that returned an error
}

// New creates a transformer with the specified configuration.
func New(config *Config) (*Transformer, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	t := &Transformer{config: *config}
	t.config.Filter = slices.Clone(config.Filter)

	var err error
	if config.Wavelet != "" {
		var w Wavelet
		if w, err = Lookup(config.Wavelet); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		t.name = w.Name
		t.bank, err = w.FilterBank()
	} else {
		t.name = customWaveletName
		t.bank, err = filter.FromLowPass(t.config.Filter)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	t.conv = newConvolver(config.Method, t.bank.Len())
	return t, nil
}

// levelsFor returns the level count used for a signal of length n.
func (t *Transformer) levelsFor(n int) int {
	if t.config.Levels == 0 {
		return MaxLevels(n)
	}
	return t.config.Levels
}

// Decompose decomposes signal into the configured number of levels.
func (t *Transformer) Decompose(signal []complex128) (*Transform, error) {
	tr, err := decompose(t.conv, signal, t.bank, t.levelsFor(len(signal)))
	if err != nil {
		t.stats.failures.Add(1)
		return nil, err
	}

	t.stats.decomposed.Add(1)
	t.stats.samplesIn.Add(uint64(len(signal)))
	t.stats.coefficients.Add(uint64(tr.Size()))
	return tr, nil
}

// Reconstruct inverts Decompose and returns exactly SignalLen samples when
// the length is known (see Transform.Trim).
func (t *Transformer) Reconstruct(tr *Transform) ([]complex128, error) {
	out, err := reconstruct(t.conv, tr, t.bank)
	if err != nil {
		t.stats.failures.Add(1)
		return nil, err
	}
	out = tr.Trim(out)

	t.stats.reconstructed.Add(1)
	t.stats.samplesOut.Add(uint64(len(out)))
	return out, nil
}

// DWT performs a single analysis level with the transformer's filter bank.
func (t *Transformer) DWT(signal []complex128) (approx, detail []complex128, err error) {
	return dwt(t.conv, signal, t.bank)
}

// IDWT performs a single synthesis level with the transformer's filter bank.
func (t *Transformer) IDWT(approx, detail []complex128) ([]complex128, error) {
	return idwt(t.conv, approx, detail, t.bank)
}

// DecomposeMulti decomposes several independent channels.
// When EnableParallel is set, channels are processed concurrently.
func (t *Transformer) DecomposeMulti(channels [][]complex128) ([]*Transform, error) {
	return t.DecomposeMultiContext(context.Background(), channels)
}

// DecomposeMultiContext is DecomposeMulti with cancellation. No new channel is
// started once ctx is done.
func (t *Transformer) DecomposeMultiContext(ctx context.Context, channels [][]complex128) ([]*Transform, error) {
	return forEachChannel(ctx, t, channels, t.Decompose)
}

// ReconstructMulti reconstructs several independent channels.
// When EnableParallel is set, channels are processed concurrently.
func (t *Transformer) ReconstructMulti(transforms []*Transform) ([][]complex128, error) {
	return t.ReconstructMultiContext(context.Background(), transforms)
}

// ReconstructMultiContext is ReconstructMulti with cancellation.
func (t *Transformer) ReconstructMultiContext(ctx context.Context, transforms []*Transform) ([][]complex128, error) {
	return forEachChannel(ctx, t, transforms, t.Reconstruct)
}

// forEachChannel applies fn to every input, sequentially or on an errgroup
// bounded by MaxWorkers. The first error cancels the remaining channels.
func forEachChannel[In, Out any](ctx context.Context, t *Transformer, inputs []In, fn func(In) (Out, error)) ([]Out, error) {
	outputs := make([]Out, len(inputs))

	// Sequential processing (default or when parallel disabled)
	if !t.config.EnableParallel || len(inputs) <= 1 {
		for ch, in := range inputs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			out, err := fn(in)
			if err != nil {
				return nil, fmt.Errorf("channel %d: %w", ch, err)
			}
			outputs[ch] = out
		}
		return outputs, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(t.workers())
	for ch, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := fn(in)
			if err != nil {
				return fmt.Errorf("channel %d: %w", ch, err)
			}
			outputs[ch] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

func (t *Transformer) workers() int {
	if t.config.MaxWorkers > 0 {
		return t.config.MaxWorkers
	}
	return runtime.GOMAXPROCS(0)
}

// Plan returns the level schedule for a signal of length n.
func (t *Transformer) Plan(n int) ([]LevelPlan, error) {
	return PlanLevels(n, t.bank.Len(), t.levelsFor(n))
}

// Bank returns a copy of the transformer's filter bank.
func (t *Transformer) Bank() *FilterBank {
	return t.bank.Clone()
}

// GetInfo returns information about the transformer.
func (t *Transformer) GetInfo() Info {
	return Info{
		Wavelet:      t.name,
		FilterLength: t.bank.Len(),
		Levels:       t.config.Levels,
		Method:       t.conv.Name(),
		Parallel:     t.config.EnableParallel,
		SIMDType:     engine.SIMDInfo(),
	}
}

// Statistics returns a snapshot of the processing counters.
func (t *Transformer) Statistics() map[string]uint64 {
	return map[string]uint64{
		"decomposed":    t.stats.decomposed.Load(),
		"reconstructed": t.stats.reconstructed.Load(),
		"samples_in":    t.stats.samplesIn.Load(),
		"samples_out":   t.stats.samplesOut.Load(),
		"coefficients":  t.stats.coefficients.Load(),
		"failures":      t.stats.failures.Load(),
	}
}

// ResetStatistics zeroes the processing counters.
func (t *Transformer) ResetStatistics() {
	t.stats.decomposed.Store(0)
	t.stats.reconstructed.Store(0)
	t.stats.samplesIn.Store(0)
	t.stats.samplesOut.Store(0)
	t.stats.coefficients.Store(0)
	t.stats.failures.Store(0)
}
