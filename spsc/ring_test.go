// File: spsc/ring_test.go
// License: Apache-2.0

package spsc

import (
	"runtime"
	"sync"
	"testing"
)

// TestRing_Correctness checks the basic enqueue/dequeue contract.
func TestRing_Correctness(t *testing.T) {
	r := NewRing[int](16)
	for i := 0; i < 16; i++ {
		if !r.Enqueue(i) {
			t.Fatalf("Enqueue failed at %d", i)
		}
	}
	if !r.IsFull() {
		t.Error("Expected buffer full")
	}
	if r.Enqueue(99) {
		t.Error("Enqueue succeeded on full buffer")
	}
	for i := 0; i < 16; i++ {
		val, ok := r.Dequeue()
		if !ok || val != i {
			t.Fatalf("Expected %d, got %d (ok=%v)", i, val, ok)
		}
	}
	if !r.IsEmpty() {
		t.Error("Expected buffer empty after full cycle")
	}
	if _, ok := r.Dequeue(); ok {
		t.Error("Dequeue succeeded on empty buffer")
	}
}

func TestRing_PanicsOnBadSize(t *testing.T) {
	for _, size := range []uint64{0, 3, 12, 100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewRing(%d) did not panic", size)
				}
			}()
			NewRing[int](size)
		}()
	}
}

// TestRing_SingleProducerSingleConsumer pushes a long monotonic sequence
// through a small ring and checks the consumer sees it intact.
func TestRing_SingleProducerSingleConsumer(t *testing.T) {
	r := NewRing[uint64](32)
	const items = 100000

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := uint64(0); i < items; {
			if r.Enqueue(i) {
				i++
			} else {
				runtime.Gosched()
			}
		}
	}()

	for want := uint64(0); want < items; {
		val, ok := r.Dequeue()
		if !ok {
			runtime.Gosched()
			continue
		}
		if val != want {
			t.Fatalf("Expected %d, got %d", want, val)
		}
		want++
	}
	wg.Wait()
}
