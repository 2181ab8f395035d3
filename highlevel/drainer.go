// File: highlevel/drainer.go
//
// Burst drain from a bounded lock-free ring into an unbounded spill
// queue. The ring stays small and wait-free for the producer; the
// consumer absorbs bursts here and processes them at leisure.
// License: Apache-2.0

package highlevel

import (
	"github.com/eapache/queue"

	"github.com/irqsoft/ringcore/api"
)

// Drainer moves elements from a ring into a growable FIFO. It belongs
// to the consumer context of the ring; only one goroutine may use a
// Drainer at a time.
type Drainer[T any] struct {
	ring  api.Ring[T]
	spill *queue.Queue
}

// NewDrainer wraps the consumer side of r.
func NewDrainer[T any](r api.Ring[T]) *Drainer[T] {
	return &Drainer[T]{
		ring:  r,
		spill: queue.New(),
	}
}

// Drain moves every currently available element out of the ring and
// returns how many were taken.
func (d *Drainer[T]) Drain() int {
	n := 0
	for {
		item, ok := d.ring.Dequeue()
		if !ok {
			return n
		}
		d.spill.Add(item)
		n++
	}
}

// Next returns the oldest drained element, draining the ring first if
// the spill queue is empty.
func (d *Drainer[T]) Next() (T, bool) {
	if d.spill.Length() == 0 {
		d.Drain()
	}
	if d.spill.Length() == 0 {
		var zero T
		return zero, false
	}
	return d.spill.Remove().(T), true
}

// Pending returns the number of drained, not yet consumed elements.
func (d *Drainer[T]) Pending() int {
	return d.spill.Length()
}
