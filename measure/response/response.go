package response

import (
	"errors"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-filter/dsp/filter/recursive"
)

const defaultFFTSize = 1024

// Errors returned by measurement functions.
var (
	ErrNilFilter         = errors.New("response: filter must not be nil")
	ErrEmptyResponse     = errors.New("response: impulse response is empty")
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
	ErrInvalidFFTSize    = errors.New("response: fft size must be positive")
)

// Window selects the analysis window applied to the impulse response
// before the FFT.
type Window int

// Supported analysis windows.
const (
	WindowRectangular Window = iota
	WindowHann
)

// Config holds measurement parameters.
type Config struct {
	SampleRate float64
	FFTSize    int // rounded up to the next power of two; 0 selects 1024
	Window     Window
}

// Result holds the measured magnitude spectrum for bins 0..Nyquist.
type Result struct {
	Frequencies []float64 // bin center frequencies in Hz
	MagnitudeDB []float64 // 20*log10 |H| per bin
}

// Measure captures the filter's impulse response and returns its
// magnitude spectrum. The filter's processing state is saved and
// restored, so ongoing streaming is not disturbed.
func Measure(f *recursive.Filter, cfg Config) (Result, error) {
	if f == nil {
		return Result{}, ErrNilFilter
	}
	cfg, err := normalizeConfig(cfg)
	if err != nil {
		return Result{}, err
	}

	ir := f.ImpulseResponse(cfg.FFTSize)
	h := make([]float64, len(ir))
	for i, v := range ir {
		h[i] = float64(v)
	}

	return Spectrum(h, cfg)
}

// Spectrum computes the magnitude spectrum of an already-captured
// impulse response. The response is zero-padded (or truncated) to the
// configured FFT size.
func Spectrum(h []float64, cfg Config) (Result, error) {
	if len(h) == 0 {
		return Result{}, ErrEmptyResponse
	}
	cfg, err := normalizeConfig(cfg)
	if err != nil {
		return Result{}, err
	}

	n := len(h)
	if n > cfg.FFTSize {
		n = cfg.FFTSize
	}

	windowed := make([]float64, n)
	copy(windowed, h[:n])
	if cfg.Window == WindowHann {
		vecmath.MulBlockInPlace(windowed, hannCoeffs(n))
	}

	in := make([]complex128, cfg.FFTSize)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(cfg.FFTSize)
	if err != nil {
		return Result{}, err
	}

	out := make([]complex128, cfg.FFTSize)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, err
	}

	binCount := cfg.FFTSize/2 + 1
	re := make([]float64, binCount)
	im := make([]float64, binCount)
	for i := range binCount {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, binCount)
	vecmath.Magnitude(mag, re, im)

	binHz := cfg.SampleRate / float64(cfg.FFTSize)
	res := Result{
		Frequencies: make([]float64, binCount),
		MagnitudeDB: make([]float64, binCount),
	}
	for i := range binCount {
		res.Frequencies[i] = float64(i) * binHz
		res.MagnitudeDB[i] = 20 * math.Log10(mag[i])
	}

	return res, nil
}

func normalizeConfig(cfg Config) (Config, error) {
	if cfg.SampleRate <= 0 {
		return Config{}, ErrInvalidSampleRate
	}
	if cfg.FFTSize < 0 {
		return Config{}, ErrInvalidFFTSize
	}
	if cfg.FFTSize == 0 {
		cfg.FFTSize = defaultFFTSize
	}
	cfg.FFTSize = nextPowerOf2(cfg.FFTSize)
	return cfg, nil
}

func hannCoeffs(n int) []float64 {
	coeffs := make([]float64, n)
	if n == 1 {
		coeffs[0] = 1
		return coeffs
	}
	for i := range n {
		coeffs[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return coeffs
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
