// Package spsc implements fixed-capacity, lock-free single-producer/
// single-consumer circular buffers over caller-owned storage.
//
// The design moves fixed-size elements between two execution contexts
// that may preempt each other at any point, without locks and without
// run-time allocation. Each instance keeps two monotonically increasing
// counters: the producer owns head, the consumer owns tail. Neither
// counter is ever reduced modulo the capacity; only the address
// computation wraps, via a power-of-two mask. The unsigned difference
// head-tail is therefore always the exact fill level: 0 means empty,
// ElemCount means full. This holds because ElemCount is a power of two
// far below half the 64-bit counter range, so wraparound of the
// subtraction can never alias two distinct fill levels.
//
// Counter accesses go through atomic.Uint64. With a single writer per
// counter the relaxed load/store pair is all that is needed: a reader
// observes either the old or the new value, never a torn one, and the
// atomics stop the compiler from caching a counter that the other
// context can advance. Put stores head strictly after the element bytes
// are in place, so the consumer can never observe an index advance
// before the data exists.
//
// License: Apache-2.0
package spsc
