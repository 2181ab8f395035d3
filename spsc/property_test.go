// File: spsc/property_test.go
//
// Property-based and concurrency tests for the byte-element registry.
// License: Apache-2.0

package spsc

import (
	"math/rand"
	"runtime"
	"sync"
	"testing"

	"go.uber.org/goleak"
)

// TestRegistryPropertyBased performs randomized put/get interleavings from
// a single goroutine and checks the ring against a model queue.
func TestRegistryPropertyBased(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		r := NewRegistry(1)
		h, err := r.Init(&Attrs{ElemSize: 1, ElemCount: 64, Storage: make([]byte, 64)})
		if err != nil {
			t.Fatalf("init: %v", err)
		}

		var model []byte
		next := byte(0)
		out := make([]byte, 1)
		for i := 0; i < 5000; i++ {
			switch rnd.Intn(2) {
			case 0:
				err := r.Put(h, []byte{next})
				if len(model) < 64 {
					if err != nil {
						t.Fatalf("put rejected below capacity: %v", err)
					}
					model = append(model, next)
				} else if err == nil {
					t.Fatal("put accepted at capacity")
				}
				next++
			case 1:
				err := r.Get(h, out)
				if len(model) > 0 {
					if err != nil {
						t.Fatalf("get rejected while non-empty: %v", err)
					}
					if out[0] != model[0] {
						t.Fatalf("FIFO violation: got %d, want %d", out[0], model[0])
					}
					model = model[1:]
				} else if err == nil {
					t.Fatal("get succeeded while empty")
				}
			}
			n, _ := r.Len(h)
			if n != len(model) {
				t.Fatalf("fill level drifted: ring %d, model %d", n, len(model))
			}
		}
	}
}

// TestRegistry_ConcurrentFIFO runs one producer goroutine against one
// consumer goroutine and verifies exactly-once, in-order delivery.
func TestRegistry_ConcurrentFIFO(t *testing.T) {
	defer goleak.VerifyNone(t)

	const total = 200000
	r := NewRegistry(1)
	h, err := r.Init(&Attrs{ElemSize: 4, ElemCount: 128, Storage: make([]byte, 4*128)})
	if err != nil {
		t.Fatalf("init: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		elem := make([]byte, 4)
		for i := uint32(0); i < total; {
			elem[0] = byte(i)
			elem[1] = byte(i >> 8)
			elem[2] = byte(i >> 16)
			elem[3] = byte(i >> 24)
			if r.Put(h, elem) == nil {
				i++
			} else {
				runtime.Gosched()
			}
		}
	}()

	out := make([]byte, 4)
	for want := uint32(0); want < total; {
		if r.Get(h, out) != nil {
			runtime.Gosched()
			continue
		}
		got := uint32(out[0]) | uint32(out[1])<<8 | uint32(out[2])<<16 | uint32(out[3])<<24
		if got != want {
			t.Fatalf("delivery out of order: got %d, want %d", got, want)
		}
		want++
	}
	wg.Wait()

	if n, _ := r.Len(h); n != 0 {
		t.Errorf("ring not drained: %d elements left", n)
	}
}

// TestRing_PropertyBased mirrors the registry property test for the
// typed ring.
func TestRing_PropertyBased(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		ring := NewRing[int](64)

		size := 0
		for i := 0; i < 5000; i++ {
			switch rnd.Intn(2) {
			case 0:
				if ring.Enqueue(rnd.Int()) {
					size++
				}
			case 1:
				if _, ok := ring.Dequeue(); ok {
					size--
				}
			}
			if size != ring.Len() {
				t.Fatalf("invariant failed: expected %d, got %d", size, ring.Len())
			}
			if ring.Len() < 0 || ring.Len() > 64 {
				t.Fatalf("ring length out of bounds: %d", ring.Len())
			}
		}
	}
}
