package wavelet

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tphakala/go-wavelet/internal/filter"
)

// Wavelet is a named wavelet coefficient table.
type Wavelet struct {
	Name         string
	Coefficients []float64
}

// Built-in Daubechies wavelets. The tables are the reconstruction low-pass
// filters; they are normalized when a filter bank is built, so any scale works.
var (
	// Haar is the Haar wavelet (Daubechies 1).
	Haar = Wavelet{
		Name:         "haar",
		Coefficients: []float64{1, 1},
	}

	// DB2 is the 4-tap Daubechies wavelet.
	DB2 = Wavelet{
		Name: "db2",
		Coefficients: []float64{
			0.48296291314469025, 0.836516303737469,
			0.22414386804185735, -0.12940952255092145,
		},
	}

	// DB3 is the 6-tap Daubechies wavelet, tabulated to four digits.
	DB3 = Wavelet{
		Name:         "db3",
		Coefficients: []float64{0.2352, 0.5706, 0.3252, -0.0955, -0.0604, 0.0249},
	}

	// DB4 is the 8-tap Daubechies wavelet.
	DB4 = Wavelet{
		Name: "db4",
		Coefficients: []float64{
			0.23037781330885523, 0.7148465705525415,
			0.6308807679295904, -0.02798376941698385,
			-0.18703481171888114, 0.030841381835986965,
			0.032883011666982945, -0.010597401784997278,
		},
	}
)

var registry = map[string]Wavelet{
	"haar": Haar,
	"db1":  Haar,
	"db2":  DB2,
	"db3":  DB3,
	"db4":  DB4,
}

// Lookup returns the wavelet registered under name. Names are case-insensitive.
// The returned coefficients are a copy.
func Lookup(name string) (Wavelet, error) {
	w, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Wavelet{}, fmt.Errorf("%w: %q", ErrUnknownWavelet, name)
	}
	return Wavelet{Name: w.Name, Coefficients: slices.Clone(w.Coefficients)}, nil
}

// Wavelets returns the registered wavelet names in sorted order.
func Wavelets() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// FilterBank holds the decomposition and reconstruction filters of a
// two-channel orthogonal filter bank:
//
//	LoR = coefficients / ||coefficients||
//	LoD = reverse(LoR)
//	HiR = QMF(LoR)
//	HiD = reverse(HiR)
type FilterBank = filter.Bank

// FilterBank builds the filter bank of w.
func (w Wavelet) FilterBank() (*FilterBank, error) {
	bank, err := filter.FromCoefficients(w.Coefficients)
	if err != nil {
		return nil, fmt.Errorf("wavelet %s: %w", w.Name, err)
	}
	return bank, nil
}

// NewFilterBank builds the filter bank of the wavelet registered under name.
func NewFilterBank(name string) (*FilterBank, error) {
	w, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return w.FilterBank()
}

// FilterBankFromLowPass builds a filter bank around a decomposition low-pass
// filter, used as given: LoR = reverse(loD) and the high-pass filters follow
// from LoR as for a named wavelet.
//
// Any length of at least two taps is accepted and the kernels handle odd
// lengths, but perfect reconstruction holds only for even-length orthonormal
// filters such as the built-in tables.
func FilterBankFromLowPass(loD []float64) (*FilterBank, error) {
	return filter.FromLowPass(loD)
}

// QMF returns the quadrature mirror filter hp[k] = (-1)^k * lp[K-1-k].
func QMF(lowPass []float64) []float64 {
	return filter.QMF(lowPass)
}
