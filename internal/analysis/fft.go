package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/san-kum/ballsim/internal/sim"
)

// FFT transforms a real series of any length.
func FFT(data []float64) []complex128 {
	return fft.FFTReal(data)
}

// PowerSpectrum returns the magnitudes of the non-negative frequency bins
// below Nyquist.
func PowerSpectrum(data []float64) []float64 {
	f := FFT(data)
	ps := make([]float64, len(f)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(f[i])
	}
	return ps
}

// DominantPeriod returns the period, in seconds, of the strongest non-DC
// component of the per-sample contact counts. Samples must be evenly
// spaced. ok is false when the series is too short or flat.
func DominantPeriod(samples []sim.Sample) (period float64, ok bool) {
	if len(samples) < 4 {
		return 0, false
	}
	spacing := samples[1].Time - samples[0].Time
	if spacing <= 0 {
		return 0, false
	}

	mean := 0.0
	for _, s := range samples {
		mean += float64(s.Contacts)
	}
	mean /= float64(len(samples))

	data := make([]float64, len(samples))
	for i, s := range samples {
		data[i] = float64(s.Contacts) - mean
	}

	ps := PowerSpectrum(data)
	best, bestPow := 0, 0.0
	for k := 1; k < len(ps); k++ {
		if ps[k] > bestPow {
			best, bestPow = k, ps[k]
		}
	}
	if best == 0 || bestPow < 1e-9 {
		return 0, false
	}
	return float64(len(data)) * spacing / float64(best), true
}
