package ring

import (
	"errors"
	"fmt"
)

// Errors returned by Buffer operations.
var (
	ErrFull       = errors.New("ring: buffer is full")
	ErrEmpty      = errors.New("ring: buffer is empty")
	ErrOutOfRange = errors.New("ring: index out of range")
)

// Float constrains Buffer to floating-point sample types.
type Float interface {
	~float32 | ~float64
}

// Buffer is a fixed-capacity double-ended sample queue. Elements keep
// their logical order (index 0 = oldest) across wraparound; no allocation
// happens after New.
type Buffer[T Float] struct {
	data []T
	head int
	n    int
}

// New returns an empty Buffer of fixed capacity.
func New[T Float](capacity int) (*Buffer[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("ring: capacity must be > 0: %d", capacity)
	}
	return &Buffer[T]{data: make([]T, capacity)}, nil
}

// Len returns the current element count.
func (b *Buffer[T]) Len() int {
	return b.n
}

// Cap returns the fixed capacity.
func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

// Reset discards all elements. Capacity is unchanged.
func (b *Buffer[T]) Reset() {
	b.head = 0
	b.n = 0
}

// PushBack appends v as the newest element.
// Returns ErrFull if the buffer is at capacity.
func (b *Buffer[T]) PushBack(v T) error {
	if b.n == len(b.data) {
		return ErrFull
	}
	b.data[b.wrap(b.head+b.n)] = v
	b.n++
	return nil
}

// PushFront inserts v as the oldest element.
// Returns ErrFull if the buffer is at capacity.
func (b *Buffer[T]) PushFront(v T) error {
	if b.n == len(b.data) {
		return ErrFull
	}
	b.head = b.wrap(b.head - 1 + len(b.data))
	b.data[b.head] = v
	b.n++
	return nil
}

// PopBack removes and returns the newest element.
// Returns ErrEmpty if the buffer holds no elements.
func (b *Buffer[T]) PopBack() (T, error) {
	if b.n == 0 {
		var zero T
		return zero, ErrEmpty
	}
	b.n--
	return b.data[b.wrap(b.head+b.n)], nil
}

// PopFront removes and returns the oldest element.
// Returns ErrEmpty if the buffer holds no elements.
func (b *Buffer[T]) PopFront() (T, error) {
	if b.n == 0 {
		var zero T
		return zero, ErrEmpty
	}
	v := b.data[b.head]
	b.head = b.wrap(b.head + 1)
	b.n--
	return v, nil
}

// At returns the element at logical index i (0 = oldest) without
// removing it. Returns ErrOutOfRange if i is not in [0, Len).
func (b *Buffer[T]) At(i int) (T, error) {
	if i < 0 || i >= b.n {
		var zero T
		return zero, ErrOutOfRange
	}
	return b.data[b.wrap(b.head+i)], nil
}

// Fill overwrites every stored element with v. Length is unchanged.
func (b *Buffer[T]) Fill(v T) {
	for i := range b.n {
		b.data[b.wrap(b.head+i)] = v
	}
}

// Values returns a copy of the stored elements, oldest first.
func (b *Buffer[T]) Values() []T {
	out := make([]T, b.n)
	for i := range b.n {
		out[i] = b.data[b.wrap(b.head+i)]
	}
	return out
}

func (b *Buffer[T]) wrap(i int) int {
	if i >= len(b.data) {
		return i - len(b.data)
	}
	return i
}
