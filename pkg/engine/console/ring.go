package console

import "errors"

// ErrIndexOutOfRange is returned by Ring.Get for indexes outside [0, Len()).
var ErrIndexOutOfRange = errors.New("ring: index out of range")

// Ring is a fixed-capacity buffer that silently evicts its oldest element
// once full. Index 0 is always the most recently pushed element.
// Not safe for concurrent use; the console is owned by a single goroutine.
type Ring[T any] struct {
	items []T
	head  int // slot of the most recent element
	count int
}

// NewRing creates a ring buffer holding at most capacity elements.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring[T]{items: make([]T, capacity)}
}

// Push inserts v as the most recent element, evicting the oldest one
// if the buffer is already at capacity.
func (r *Ring[T]) Push(v T) {
	r.head = (r.head + 1) % len(r.items)
	r.items[r.head] = v
	if r.count < len(r.items) {
		r.count++
	}
}

// Get returns the i-th most recent element (0 = newest).
func (r *Ring[T]) Get(i int) (T, error) {
	if i < 0 || i >= r.count {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	n := len(r.items)
	return r.items[(r.head-i+n)%n], nil
}

// Len returns the current occupancy.
func (r *Ring[T]) Len() int {
	return r.count
}

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int {
	return len(r.items)
}

// Clear drops all elements.
func (r *Ring[T]) Clear() {
	r.count = 0
	r.head = 0
}
