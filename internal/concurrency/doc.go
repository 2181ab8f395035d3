// Package concurrency holds the scheduling helpers used by consumer
// loops: spin backoff and per-thread CPU pinning. Pinning is best
// effort; on platforms without an affinity syscall it is a no-op.
//
// License: Apache-2.0
package concurrency
