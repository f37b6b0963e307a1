package recursive

import (
	"math"
	"math/cmplx"
)

// Response computes the complex frequency response H(e^{-jw}) of the
// filter's transfer function at the given frequency (Hz) and sample
// rate (Hz):
//
//	H = ( sum_k b_k e^{-jwk} ) / ( sum_k a_k e^{-jwk} )
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate

	var num, den complex128
	for k := 0; k <= f.order; k++ {
		bk, _ := f.num.At(k)
		ak, _ := f.den.At(k)
		e := cmplx.Exp(complex(0, -w*float64(k)))
		num += complex(float64(bk), 0) * e
		den += complex(float64(ak), 0) * e
	}
	return num / den
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}

// Phase returns the phase response in radians at the given frequency,
// in [-pi, pi] under the H(e^{-jw}) convention.
func (f *Filter) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(f.Response(freqHz, sampleRate))
}

// ImpulseResponse computes n samples of the impulse response h[n] by
// feeding a unit impulse through the filter. The filter state is saved
// and restored, so this method does not disturb ongoing processing.
func (f *Filter) ImpulseResponse(n int) []float32 {
	if n <= 0 {
		return nil
	}
	savedIn, savedOut := f.State()
	f.Reset()

	ir := make([]float32, n)
	ir[0] = f.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = f.ProcessSample(0)
	}

	_ = f.SetState(savedIn, savedOut)
	return ir
}
