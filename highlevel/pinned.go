// File: highlevel/pinned.go
//
// Dedicated consumer loop on a locked OS thread, optionally pinned to
// one logical CPU. Keeps poll latency low during bursts while backing
// off when the feed goes quiet.
// License: Apache-2.0

package highlevel

import (
	"runtime"

	"github.com/irqsoft/ringcore/api"
	"github.com/irqsoft/ringcore/internal/concurrency"
)

// stopCheckInterval bounds how many elements the loop consumes between
// looks at the stop channel, so a producer that never lets the ring go
// empty cannot keep the loop alive past stop.
const stopCheckInterval = 64

// RunPinned drains r with fn on its own locked OS thread until stop is
// closed, then closes the returned channel. cpu < 0 skips pinning.
// RunPinned owns the consumer side of r; no other goroutine may dequeue
// while it runs.
//
// Stop is observed on every empty poll and at least once every
// stopCheckInterval consumed elements. After stop, at most one ring's
// worth of remaining elements is drained: everything, once the producer
// has stopped; a still-active producer may see later elements
// abandoned in the ring.
func RunPinned[T any](cpu int, r api.Ring[T], fn func(T), stop <-chan struct{}) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		runtime.LockOSThread()
		_ = concurrency.PinThread(cpu) // best effort, no pin on failure
		defer func() {
			_ = concurrency.UnpinThread()
			runtime.UnlockOSThread()
			close(done)
		}()

		drainFinal := func() {
			for i := 0; i < r.Cap(); i++ {
				item, ok := r.Dequeue()
				if !ok {
					return
				}
				fn(item)
			}
		}

		backoff := concurrency.NewBackoff(256)
		consumed := 0
		for {
			item, ok := r.Dequeue()
			if ok {
				backoff.Hit()
				fn(item)
				consumed++
				if consumed >= stopCheckInterval {
					consumed = 0
					select {
					case <-stop:
						drainFinal()
						return
					default:
					}
				}
				continue
			}
			select {
			case <-stop:
				drainFinal()
				return
			default:
				backoff.Miss()
			}
		}
	}()
	return done
}
