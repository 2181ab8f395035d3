// Package control provides the runtime observation layer of ringcore:
// a concurrent-safe configuration store with reload listeners, a counter
// and gauge registry, and debug probes with JSON state export. None of
// it is wired into the lock-free data path; the facade feeds it from the
// outside so the core stays free of logging and side effects.
//
// License: Apache-2.0
package control
