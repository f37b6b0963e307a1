package recursive

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-filter/dsp/ring"
)

// Errors returned by filter construction and state restoration.
var (
	ErrEmptyCoeffs      = errors.New("recursive: coefficient slices must not be empty")
	ErrCoeffLenMismatch = errors.New("recursive: numerator and denominator must have equal length")
	ErrZeroLeadingCoeff = errors.New("recursive: leading denominator coefficient must be non-zero")
	ErrStateLenMismatch = errors.New("recursive: state length must equal order+1")
)

// Filter implements a general recursive digital filter (unified IIR/FIR
// direct form) evaluated one sample at a time:
//
//	y[n] = ( b0*x[n] + sum_{i=1..N} b_i*x[n-i] - sum_{i=1..N} a_i*y[n-i] ) / a0
//
// Coefficients and the rolling input/output histories live in four
// fixed-capacity ring buffers of identical length order+1. After New no
// allocation occurs on the sample path, so per-sample cost is bounded
// and proportional to the order.
type Filter struct {
	num   *ring.Buffer[float32]
	den   *ring.Buffer[float32]
	in    *ring.Buffer[float32]
	out   *ring.Buffer[float32]
	order int
}

// New creates a filter from numerator (feed-forward, b) and denominator
// (feedback, a) coefficients. Both slices must have the same length
// order+1 >= 1, and denominator[0] must be non-zero since every update
// divides by it. The coefficients are copied; both histories start at
// zero, so the filter converges from rest (use SetTo to start elsewhere).
//
// Note that the slices are one element longer than the filter order: a
// first-order system has two coefficients. A 5-point moving average is
//
//	numerator   = []float32{5, 0, 0, 0, 0}
//	denominator = []float32{1, 1, 1, 1, 1}
func New(numerator, denominator []float32) (*Filter, error) {
	if len(numerator) == 0 || len(denominator) == 0 {
		return nil, ErrEmptyCoeffs
	}
	if len(numerator) != len(denominator) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrCoeffLenMismatch, len(numerator), len(denominator))
	}
	if denominator[0] == 0 {
		return nil, ErrZeroLeadingCoeff
	}

	n := len(numerator)
	f := &Filter{order: n - 1}

	var err error
	if f.num, err = ring.New[float32](n); err != nil {
		return nil, err
	}
	if f.den, err = ring.New[float32](n); err != nil {
		return nil, err
	}
	if f.in, err = ring.New[float32](n); err != nil {
		return nil, err
	}
	if f.out, err = ring.New[float32](n); err != nil {
		return nil, err
	}

	for i := range n {
		_ = f.num.PushBack(numerator[i])
		_ = f.den.PushBack(denominator[i])
		_ = f.in.PushBack(0)
		_ = f.out.PushBack(0)
	}

	return f, nil
}

// ProcessSample feeds one new measurement into the filter and returns
// the filtered output.
//
// Coefficient i is paired with the i-th most recent sample prior to
// this call: b0 multiplies x itself, b1..bN multiply the stored input
// history newest-first, and a1..aN multiply the stored output history
// newest-first. The result is divided by a0. Afterwards the oldest
// input and output samples are evicted and x and the new output are
// appended, keeping both histories at length order+1.
//
// All arithmetic is single precision. Non-finite inputs propagate per
// IEEE-754; there is no error path.
func (f *Filter) ProcessSample(x float32) float32 {
	n := f.order + 1

	b0, _ := f.num.At(0)
	a0, _ := f.den.At(0)

	inSum := b0 * x
	var outSum float32

	// History is oldest-first: the i-th most recent previous sample
	// sits at logical index n-i.
	for i := 1; i < n; i++ {
		bi, _ := f.num.At(i)
		ai, _ := f.den.At(i)
		xi, _ := f.in.At(n - i)
		yi, _ := f.out.At(n - i)

		inSum += bi * xi
		outSum += ai * yi
	}

	y := (inSum - outSum) / a0

	_, _ = f.in.PopFront()
	_ = f.in.PushBack(x)
	_, _ = f.out.PopFront()
	_ = f.out.PushBack(y)

	return y
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float32) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float32) {
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// ShiftBy adds amount to every stored input and output history sample,
// re-biasing the filter's frame of reference (e.g. after the measured
// quantity's origin moved) while preserving its internal dynamics.
// Coefficients and history lengths are unchanged.
func (f *Filter) ShiftBy(amount float32) {
	n := f.order + 1
	for range n {
		xi, _ := f.in.PopFront()
		_ = f.in.PushBack(xi + amount)
		yi, _ := f.out.PopFront()
		_ = f.out.PushBack(yi + amount)
	}
}

// SetTo overwrites every input and output history sample with amount,
// forcing the filter to a steady-state output of amount without the
// transient a gradual convergence would require. Coefficients and
// history lengths are unchanged.
func (f *Filter) SetTo(amount float32) {
	f.in.Fill(amount)
	f.out.Fill(amount)
}

// Reset clears both histories to zero.
func (f *Filter) Reset() {
	f.SetTo(0)
}

// LastOutput returns the most recent filtered value without updating
// the filter. Before the first ProcessSample call this is the history
// value installed by New (zero) or SetTo.
func (f *Filter) LastOutput() float32 {
	y, _ := f.out.At(f.out.Len() - 1)
	return y
}

// Order returns the filter order N (coefficient slices have N+1 entries).
func (f *Filter) Order() int {
	return f.order
}

// Numerator returns a copy of the feed-forward coefficients b0..bN.
func (f *Filter) Numerator() []float32 {
	return f.num.Values()
}

// Denominator returns a copy of the feedback coefficients a0..aN.
func (f *Filter) Denominator() []float32 {
	return f.den.Values()
}

// State returns copies of the input and output histories, oldest first.
func (f *Filter) State() (in, out []float32) {
	return f.in.Values(), f.out.Values()
}

// SetState restores histories previously captured with State. Both
// slices must have length order+1.
func (f *Filter) SetState(in, out []float32) error {
	n := f.order + 1
	if len(in) != n || len(out) != n {
		return ErrStateLenMismatch
	}
	f.in.Reset()
	f.out.Reset()
	for i := range n {
		_ = f.in.PushBack(in[i])
		_ = f.out.PushBack(out[i])
	}
	return nil
}
