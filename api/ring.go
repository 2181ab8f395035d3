// File: api/ring.go
//
// Lock-free single-producer/single-consumer ring contract.
// License: Apache-2.0

package api

// Ring is the contract for a fixed-capacity single-producer/single-consumer
// ring. Exactly one goroutine may call Enqueue and exactly one may call
// Dequeue; Len and Cap are safe from either side.
type Ring[T any] interface {
	// Enqueue adds an item, returns false if full. The item is dropped
	// on failure; there is no blocking or retry.
	Enqueue(item T) bool
	// Dequeue removes the oldest item, returns false if empty.
	Dequeue() (T, bool)
	// Len returns the current number of items.
	Len() int
	// Cap returns the fixed buffer capacity.
	Cap() int
	// IsFull reports whether an Enqueue would currently fail.
	IsFull() bool
	// IsEmpty reports whether a Dequeue would currently fail.
	IsEmpty() bool
}
