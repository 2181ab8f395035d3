// Package highlevel builds consumer-side conveniences on top of the
// spsc primitives: burst draining into an unbounded spill queue and a
// pinned drain loop for latency-sensitive consumers. Everything here
// runs strictly in the consumer context of the ring it wraps.
//
// License: Apache-2.0
package highlevel
