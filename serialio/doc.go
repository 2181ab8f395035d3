// Package serialio provides a byte-stream driver view over one spsc
// ring instance, modeled on the classic receive path of a serial
// peripheral: an asynchronous handler context pushes bytes in as they
// arrive, the application context drains them at its own pace. The
// handler side never blocks; bytes that arrive while the ring is full
// are dropped and counted.
//
// License: Apache-2.0
package serialio
