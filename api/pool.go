// File: api/pool.go
//
// Fixed-block allocation contract.
// License: Apache-2.0

package api

// FixedPool is a fixed-capacity block allocator. All blocks are allocated
// up front; Alloc and Free only flip ownership. The pool carries no
// concurrency contract of its own; callers synchronize externally.
type FixedPool[T any] interface {
	// Alloc takes one block from the pool, or ErrPoolExhausted.
	Alloc() (*T, error)
	// Free returns a block obtained from Alloc. Freeing a pointer the
	// pool does not own yields ErrForeignBlock.
	Free(*T) error
	// FreeCount returns the number of blocks currently available.
	FreeCount() int
	// Cap returns the total number of blocks.
	Cap() int
}

// PoolStats aggregates allocation counters for observability.
type PoolStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
}
