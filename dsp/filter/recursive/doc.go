// Package recursive provides a general recursive digital filter runtime.
//
// A [Filter] evaluates the direct-form difference equation
//
//	y[n] = ( b0*x[n] + sum b_i*x[n-i] - sum a_i*y[n-i] ) / a0
//
// one sample at a time over fixed-capacity ring-buffer state, unifying
// FIR (denominator = [a0, 0, ...]) and IIR behavior in one type. Memory
// is bounded at construction and per-sample cost is O(order), which
// suits real-time control loops: sensor smoothing, moving averages,
// low-pass/high-pass stages.
//
// This package provides the processing runtime only. Coefficients are
// supplied by the caller, not designed here.
package recursive
