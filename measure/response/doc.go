// Package response measures a filter's frequency response from its
// impulse response.
//
// [Measure] feeds a unit impulse through a filter (restoring its state
// afterwards), FFTs the captured response, and returns the magnitude
// spectrum for the non-negative-frequency bins. This complements the
// closed-form point evaluation available on the filter itself: the
// measured spectrum reflects what the running engine actually computes,
// single-precision arithmetic included.
package response
