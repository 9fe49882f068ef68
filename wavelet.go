package wavelet

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-wavelet/internal/engine"
	"github.com/tphakala/go-wavelet/internal/filter"
)

// Common errors returned by the package.
var (
	// ErrInvalidArgument indicates arguments the transform cannot work with:
	// bad level counts, transforms without detail bands or mismatched bands.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTooManyLevels indicates a level count outside [0, floor(log2(N))].
	// It wraps ErrInvalidArgument.
	ErrTooManyLevels = fmt.Errorf("%w: too many decomposition levels", ErrInvalidArgument)

	// ErrEmptyInput indicates a zero-length signal.
	ErrEmptyInput = engine.ErrEmptyInput

	// ErrEmptyFilter indicates a zero-length filter.
	ErrEmptyFilter = engine.ErrEmptyFilter

	// ErrInvalidFilter indicates coefficients that cannot form a filter bank.
	ErrInvalidFilter = filter.ErrInvalidFilter

	// ErrUnknownWavelet indicates a wavelet name with no coefficient table.
	ErrUnknownWavelet = errors.New("unknown wavelet")

	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid wavelet configuration")
)

// Method selects the convolution implementation.
type Method int

const (
	// MethodAuto uses FFT convolution for long filters and the direct kernel
	// otherwise.
	MethodAuto Method = iota

	// MethodDirect always uses the time-domain SIMD kernel.
	MethodDirect

	// MethodFFT always uses FFT convolution.
	MethodFFT
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodDirect:
		return "direct"
	case MethodFFT:
		return "fft"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod converts a method name to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "", "auto":
		return MethodAuto, nil
	case "direct":
		return MethodDirect, nil
	case "fft":
		return MethodFFT, nil
	default:
		return MethodAuto, fmt.Errorf("%w: unknown method %q", ErrInvalidConfig, s)
	}
}

// Config holds transformer configuration.
type Config struct {
	// Wavelet names a built-in coefficient table (see Wavelets).
	// Exactly one of Wavelet and Filter must be set.
	Wavelet string

	// Filter is a decomposition low-pass filter used as given. It needs at
	// least two taps; only an even-length orthonormal filter reconstructs
	// perfectly.
	Filter []float64

	// Levels is the number of decomposition levels.
	// Zero selects the maximum allowed for each signal, floor(log2(N)).
	Levels int

	// Method selects the convolution implementation.
	Method Method

	// EnableParallel enables parallel channel processing in the Multi methods.
	// Has no effect on single signals.
	EnableParallel bool

	// MaxWorkers bounds the goroutines used for parallel channel processing.
	// Zero means GOMAXPROCS.
	MaxWorkers int
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Wavelet == "" && len(c.Filter) == 0 {
		return fmt.Errorf("%w: either a wavelet name or a filter is required", ErrInvalidConfig)
	}

	if c.Wavelet != "" && len(c.Filter) > 0 {
		return fmt.Errorf("%w: wavelet and filter are mutually exclusive", ErrInvalidConfig)
	}

	if c.Wavelet != "" {
		if _, err := Lookup(c.Wavelet); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	if len(c.Filter) > 0 {
		if err := filter.Validate(c.Filter); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	if c.Levels < 0 || c.Levels > maxLevels {
		return fmt.Errorf("%w: levels must be 0-%d", ErrInvalidConfig, maxLevels)
	}

	if c.Method < MethodAuto || c.Method > MethodFFT {
		return fmt.Errorf("%w: unknown method %d", ErrInvalidConfig, int(c.Method))
	}

	if c.MaxWorkers < 0 {
		return fmt.Errorf("%w: max workers must not be negative", ErrInvalidConfig)
	}

	return nil
}

// Info returns information about a transformer.
type Info struct {
	// Wavelet is the wavelet name, or "custom" for a user-supplied filter.
	Wavelet string

	// FilterLength is the number of taps in each filter of the bank.
	FilterLength int

	// Levels is the configured level count (0 = maximum per signal).
	Levels int

	// Method is the convolution implementation in use.
	Method string

	// Parallel reports whether multi-channel calls fan out.
	Parallel bool

	// SIMDType describes the SIMD instruction set in use.
	SIMDType string
}
