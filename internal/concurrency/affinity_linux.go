// File: internal/concurrency/affinity_linux.go
//go:build linux

// Linux thread affinity via sched_setaffinity(2).
// License: Apache-2.0

package concurrency

import (
	"golang.org/x/sys/unix"
)

// PinThread binds the calling OS thread to the given logical CPU.
// The caller must hold runtime.LockOSThread for the pin to be
// meaningful. Errors (EPERM under cgroup restrictions, out-of-range
// CPU) are returned but safe to ignore; the fallback is simply no pin.
func PinThread(cpu int) error {
	if cpu < 0 {
		return nil
	}
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	return unix.SchedSetaffinity(0, &set)
}

// UnpinThread restores the calling thread to the full CPU set.
func UnpinThread() error {
	var set unix.CPUSet
	set.Zero()
	for cpu := 0; cpu < 1024; cpu++ {
		set.Set(cpu)
	}
	return unix.SchedSetaffinity(0, &set)
}
