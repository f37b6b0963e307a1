// Package ring provides a fixed-capacity double-ended ring buffer.
//
// A [Buffer] stores floating-point samples in logical order (index 0 is
// the oldest element) over a fixed backing array, supporting O(1)
// insertion and removal at both ends and O(1) indexed reads. It is the
// storage primitive for sliding-window filter state: capacity is fixed
// at construction and no allocation occurs afterwards.
package ring
