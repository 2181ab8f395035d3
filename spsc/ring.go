// File: spsc/ring.go
//
// Typed single-producer/single-consumer ring with the same monotonic
// counter scheme as the byte-element registry. Padded to prevent false
// sharing between the producer and consumer counters.
// License: Apache-2.0

package spsc

import (
	"sync/atomic"

	"github.com/irqsoft/ringcore/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Ring[any])(nil)

// Ring is a lock-free ring buffer for one producer and one consumer.
// The producer owns head, the consumer owns tail; each side only reads
// the counter it does not own.
type Ring[T any] struct {
	data []T
	mask uint64
	head atomic.Uint64
	_    [64]byte // keep head and tail on separate cache lines
	tail atomic.Uint64
	_    [64]byte
}

// NewRing allocates a ring of power-of-two size.
func NewRing[T any](size uint64) *Ring[T] {
	if size == 0 || size&(size-1) != 0 {
		panic("spsc: ring size must be a power of two")
	}
	return &Ring[T]{
		data: make([]T, size),
		mask: size - 1,
	}
}

// Enqueue adds item; returns false if full. Producer side only.
func (r *Ring[T]) Enqueue(item T) bool {
	head := r.head.Load()
	tail := r.tail.Load()
	if head-tail == uint64(len(r.data)) {
		return false
	}
	r.data[head&r.mask] = item
	r.head.Store(head + 1)
	return true
}

// Dequeue removes and returns the oldest item; ok false if empty.
// Consumer side only.
func (r *Ring[T]) Dequeue() (T, bool) {
	head := r.head.Load()
	tail := r.tail.Load()
	if head-tail == 0 {
		var zero T
		return zero, false
	}
	item := r.data[tail&r.mask]
	r.tail.Store(tail + 1)
	return item, true
}

// Len returns the number of items currently in the buffer.
func (r *Ring[T]) Len() int {
	return int(r.head.Load() - r.tail.Load())
}

// Cap returns the fixed buffer capacity.
func (r *Ring[T]) Cap() int {
	return len(r.data)
}

// IsFull reports whether an Enqueue would currently fail.
func (r *Ring[T]) IsFull() bool {
	return r.head.Load()-r.tail.Load() == uint64(len(r.data))
}

// IsEmpty reports whether a Dequeue would currently fail.
func (r *Ring[T]) IsEmpty() bool {
	return r.head.Load()-r.tail.Load() == 0
}
