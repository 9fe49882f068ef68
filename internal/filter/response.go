package filter

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Response holds the frequency response of a filter.
type Response struct {
	Frequencies []float64 // Normalized frequency (0 to 0.5, where 0.5 = Nyquist)
	Magnitude   []float64 // Linear magnitude
	Phase       []float64 // Phase in radians
}

// FrequencyResponse evaluates the DTFT of coeffs at numPoints frequencies
// evenly spaced from DC up to (but excluding) Nyquist.
//
// The DTFT is sampled with a real FFT of length 2*numPoints. Taps beyond the
// FFT length are folded back modulo that length, which leaves the sampled
// DTFT unchanged.
func FrequencyResponse(coeffs []float64, numPoints int) Response {
	if numPoints <= 0 {
		numPoints = defaultResponsePoints
	}
	fftSize := 2 * numPoints

	folded := make([]float64, fftSize)
	for n, h := range coeffs {
		folded[n%fftSize] += h
	}

	fft := fourier.NewFFT(fftSize)
	spectrum := fft.Coefficients(nil, folded)

	response := Response{
		Frequencies: make([]float64, numPoints),
		Magnitude:   make([]float64, numPoints),
		Phase:       make([]float64, numPoints),
	}
	for k := range numPoints {
		response.Frequencies[k] = float64(k) / float64(fftSize)
		response.Magnitude[k] = cmplx.Abs(spectrum[k])
		response.Phase[k] = cmplx.Phase(spectrum[k])
	}
	return response
}

// PowerComplementarityError returns the largest deviation of
// |H_lo(w)|^2 + |H_hi(w)|^2 from 2 over numPoints frequencies, using the
// decomposition filters of b.
func PowerComplementarityError(b *Bank, numPoints int) float64 {
	lo := FrequencyResponse(b.LoD, numPoints)
	hi := FrequencyResponse(b.HiD, numPoints)

	var worst float64
	for k := range lo.Magnitude {
		power := lo.Magnitude[k]*lo.Magnitude[k] + hi.Magnitude[k]*hi.Magnitude[k]
		worst = math.Max(worst, math.Abs(power-2))
	}
	return worst
}

// MagnitudeDB converts linear magnitude to decibels.
func MagnitudeDB(magnitude float64) float64 {
	if magnitude < minMagnitude {
		magnitude = minMagnitude
	}
	return dbMultiplier * math.Log10(magnitude)
}
