// File: internal/concurrency/affinity_stub.go
//go:build !linux

// No-op affinity fallback for platforms without sched_setaffinity.
// License: Apache-2.0

package concurrency

// PinThread is a no-op on this platform.
func PinThread(cpu int) error {
	return nil
}

// UnpinThread is a no-op on this platform.
func UnpinThread() error {
	return nil
}
