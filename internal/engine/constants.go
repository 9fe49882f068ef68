package engine

// Filter bank constants.
const (
	// decimationFactor is the dyadic up/downsampling factor of every level.
	decimationFactor = 2
)

// FFT convolution constants.
const (
	// MinFilterForFFT is the filter length from which FFT convolution is
	// selected automatically. Wavelet filters are short, so the direct
	// kernel handles every built-in wavelet.
	MinFilterForFFT = 64
)
