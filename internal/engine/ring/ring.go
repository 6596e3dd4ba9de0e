// Package ring provides a fixed-capacity, most-recent-N sequence.
//
// Pushing onto a full Ring evicts the oldest element. Elements are indexed
// from the oldest (0) to the newest (Len()-1).
package ring

import "fmt"

// Ring is a bounded FIFO that keeps the most recent elements.
type Ring[T any] struct {
	items []T
	head  int // index of the oldest element in items
	n     int
}

// New creates a ring holding at most capacity elements (minimum 1).
func New[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring[T]{items: make([]T, capacity)}
}

// Len returns the number of elements held.
func (r *Ring[T]) Len() int { return r.n }

// Cap returns the maximum number of elements.
func (r *Ring[T]) Cap() int { return len(r.items) }

// Full reports whether the next Push evicts.
func (r *Ring[T]) Full() bool { return r.n == len(r.items) }

// Push appends v as the newest element. When the ring is full the oldest
// element is dropped and returned with ok set.
func (r *Ring[T]) Push(v T) (evicted T, ok bool) {
	if r.n < len(r.items) {
		r.items[r.slot(r.n)] = v
		r.n++
		return evicted, false
	}
	evicted = r.items[r.head]
	r.items[r.head] = v
	r.head = (r.head + 1) % len(r.items)
	return evicted, true
}

// At returns the element at index i, 0 being the oldest.
func (r *Ring[T]) At(i int) T {
	r.bounds(i)
	return r.items[r.slot(i)]
}

// Set replaces the element at index i.
func (r *Ring[T]) Set(i int, v T) {
	r.bounds(i)
	r.items[r.slot(i)] = v
}

// Last returns the newest element.
func (r *Ring[T]) Last() (T, bool) {
	var zero T
	if r.n == 0 {
		return zero, false
	}
	return r.items[r.slot(r.n-1)], true
}

// Truncate drops the newest elements so that at most n remain.
func (r *Ring[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	var zero T
	for r.n > n {
		r.n--
		r.items[r.slot(r.n)] = zero
	}
}

// Clear removes all elements.
func (r *Ring[T]) Clear() {
	clear(r.items)
	r.head = 0
	r.n = 0
}

// Slice returns the elements from oldest to newest.
func (r *Ring[T]) Slice() []T {
	out := make([]T, r.n)
	for i := range out {
		out[i] = r.items[r.slot(i)]
	}
	return out
}

func (r *Ring[T]) slot(i int) int {
	return (r.head + i) % len(r.items)
}

func (r *Ring[T]) bounds(i int) {
	if i < 0 || i >= r.n {
		panic(fmt.Sprintf("ring: index %d out of range [0,%d)", i, r.n))
	}
}
