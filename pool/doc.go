// Package pool implements a fixed-capacity, bitmap-tracked block
// allocator. All blocks are allocated once at construction; Alloc and
// Free only flip ownership bits, so the pool never fragments and never
// touches the heap after New. Typical use is carving per-message scratch
// space at startup in systems that forbid run-time allocation.
//
// The pool has no concurrency contract. Unlike the spsc rings it is not
// safe for concurrent use; callers that share a pool across goroutines
// must synchronize externally.
//
// License: Apache-2.0
package pool
