// File: internal/concurrency/relax.go
//
// Spin-loop backoff. A short run of raw polls keeps latency low during
// bursts; past the budget the loop yields so an idle consumer does not
// starve the producer on a single core.
// License: Apache-2.0

package concurrency

import "runtime"

// Backoff tracks consecutive misses in a poll loop.
type Backoff struct {
	misses int
	budget int
}

// NewBackoff returns a Backoff that spins budget times before yielding.
func NewBackoff(budget int) *Backoff {
	if budget <= 0 {
		budget = 64
	}
	return &Backoff{budget: budget}
}

// Miss records a failed poll and yields once the budget is spent.
func (b *Backoff) Miss() {
	b.misses++
	if b.misses >= b.budget {
		b.misses = 0
		runtime.Gosched()
	}
}

// Hit resets the miss counter after a successful poll.
func (b *Backoff) Hit() {
	b.misses = 0
}
