// File: spsc/registry_test.go
// License: Apache-2.0

package spsc

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irqsoft/ringcore/api"
)

func TestInit_Validation(t *testing.T) {
	r := NewRegistry(4)

	_, err := r.Init(nil)
	require.ErrorIs(t, err, api.ErrInvalidArgument, "nil attrs")

	_, err = r.Init(&Attrs{ElemSize: 1, ElemCount: 8, Storage: nil})
	require.ErrorIs(t, err, api.ErrInvalidArgument, "nil storage")

	_, err = r.Init(&Attrs{ElemSize: 0, ElemCount: 8, Storage: make([]byte, 8)})
	require.ErrorIs(t, err, api.ErrInvalidArgument, "zero element size")

	_, err = r.Init(&Attrs{ElemSize: 1, ElemCount: 6, Storage: make([]byte, 6)})
	require.ErrorIs(t, err, api.ErrInvalidArgument, "non power-of-two count")

	_, err = r.Init(&Attrs{ElemSize: 4, ElemCount: 8, Storage: make([]byte, 16)})
	require.ErrorIs(t, err, api.ErrInvalidArgument, "undersized storage")

	h, err := r.Init(&Attrs{ElemSize: 4, ElemCount: 8, Storage: make([]byte, 32)})
	require.NoError(t, err)
	require.Equal(t, Handle(0), h)
	require.Equal(t, 1, r.Allocated())
}

func TestInit_RegistryExhausted(t *testing.T) {
	const slots = 3
	r := NewRegistry(slots)
	attrs := &Attrs{ElemSize: 1, ElemCount: 8, Storage: make([]byte, 8)}

	for i := 0; i < slots; i++ {
		h, err := r.Init(attrs)
		require.NoError(t, err)
		require.Equal(t, Handle(i), h)
	}
	// The (K+1)-th call must fail even with perfectly valid arguments.
	_, err := r.Init(attrs)
	require.ErrorIs(t, err, api.ErrRegistryExhausted)
}

func TestPutGet_InvalidHandle(t *testing.T) {
	r := NewRegistry(2)
	h, err := r.Init(&Attrs{ElemSize: 1, ElemCount: 8, Storage: make([]byte, 8)})
	require.NoError(t, err)

	require.ErrorIs(t, r.Put(h+1, []byte{0}), api.ErrInvalidHandle)
	require.ErrorIs(t, r.Get(Handle(99), make([]byte, 1)), api.ErrInvalidHandle)
}

// TestPutGet_ByteScenario is the canonical capacity-8, one-byte-element
// walk-through: eight puts succeed, the ninth fails, eight gets drain in
// order, the ninth fails.
func TestPutGet_ByteScenario(t *testing.T) {
	r := NewRegistry(1)
	h, err := r.Init(&Attrs{ElemSize: 1, ElemCount: 8, Storage: make([]byte, 8)})
	require.NoError(t, err)

	for c := byte('a'); c <= 'h'; c++ {
		require.NoError(t, r.Put(h, []byte{c}), "put %q", c)
	}
	require.ErrorIs(t, r.Put(h, []byte{'i'}), api.ErrBufferFull)

	out := make([]byte, 1)
	for c := byte('a'); c <= 'h'; c++ {
		require.NoError(t, r.Get(h, out))
		require.Equal(t, c, out[0])
	}
	require.ErrorIs(t, r.Get(h, out), api.ErrBufferEmpty)
}

func TestPut_FullThenDrainOne(t *testing.T) {
	r := NewRegistry(1)
	h, err := r.Init(&Attrs{ElemSize: 1, ElemCount: 4, Storage: make([]byte, 4)})
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		require.NoError(t, r.Put(h, []byte{byte(i)}))
	}
	require.ErrorIs(t, r.Put(h, []byte{9}), api.ErrBufferFull)

	out := make([]byte, 1)
	require.NoError(t, r.Get(h, out))
	// Exactly one slot was released.
	require.NoError(t, r.Put(h, []byte{9}))
	require.ErrorIs(t, r.Put(h, []byte{10}), api.ErrBufferFull)
}

func TestGet_EmptyLeavesOutputUntouched(t *testing.T) {
	r := NewRegistry(1)
	h, err := r.Init(&Attrs{ElemSize: 4, ElemCount: 8, Storage: make([]byte, 32)})
	require.NoError(t, err)

	out := []byte{0xde, 0xad, 0xbe, 0xef}
	require.ErrorIs(t, r.Get(h, out), api.ErrBufferEmpty)
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, out)
}

func TestPutGet_RoundTripPayloads(t *testing.T) {
	const elemSize = 24
	r := NewRegistry(1)
	h, err := r.Init(&Attrs{ElemSize: elemSize, ElemCount: 16, Storage: make([]byte, elemSize*16)})
	require.NoError(t, err)

	rnd := rand.New(rand.NewSource(42))
	out := make([]byte, elemSize)
	for i := 0; i < 1000; i++ {
		elem := make([]byte, elemSize)
		rnd.Read(elem)
		require.NoError(t, r.Put(h, elem))
		require.NoError(t, r.Get(h, out))
		if !bytes.Equal(elem, out) {
			t.Fatalf("round trip %d: got % x, want % x", i, out, elem)
		}
	}
}

func TestPutGet_FIFOWithWraparound(t *testing.T) {
	const n = 8
	r := NewRegistry(1)
	h, err := r.Init(&Attrs{ElemSize: 2, ElemCount: n, Storage: make([]byte, 2*n)})
	require.NoError(t, err)

	// Keep the ring partially full while cycling far past the capacity,
	// so head and tail wrap the address mask many times.
	next := byte(0)
	expect := byte(0)
	out := make([]byte, 2)
	for round := 0; round < 100; round++ {
		for i := 0; i < 5; i++ {
			require.NoError(t, r.Put(h, []byte{next, ^next}))
			next++
		}
		for i := 0; i < 5; i++ {
			require.NoError(t, r.Get(h, out))
			require.Equal(t, expect, out[0])
			require.Equal(t, ^expect, out[1])
			expect++
		}
	}
	require.ErrorIs(t, r.Get(h, out), api.ErrBufferEmpty)
}

func TestPutGet_ShortSlicesRejected(t *testing.T) {
	r := NewRegistry(1)
	h, err := r.Init(&Attrs{ElemSize: 8, ElemCount: 4, Storage: make([]byte, 32)})
	require.NoError(t, err)

	require.ErrorIs(t, r.Put(h, make([]byte, 7)), api.ErrInvalidArgument)
	require.NoError(t, r.Put(h, make([]byte, 8)))
	require.ErrorIs(t, r.Get(h, make([]byte, 7)), api.ErrInvalidArgument)
}

func TestRegistry_IndependentInstances(t *testing.T) {
	r := NewRegistry(2)
	h1, err := r.Init(&Attrs{ElemSize: 1, ElemCount: 4, Storage: make([]byte, 4)})
	require.NoError(t, err)
	h2, err := r.Init(&Attrs{ElemSize: 1, ElemCount: 4, Storage: make([]byte, 4)})
	require.NoError(t, err)

	require.NoError(t, r.Put(h1, []byte{1}))
	require.NoError(t, r.Put(h2, []byte{2}))

	n1, err := r.Len(h1)
	require.NoError(t, err)
	require.Equal(t, 1, n1)

	out := make([]byte, 1)
	require.NoError(t, r.Get(h2, out))
	require.Equal(t, byte(2), out[0])
	require.ErrorIs(t, r.Get(h2, out), api.ErrBufferEmpty)

	require.NoError(t, r.Get(h1, out))
	require.Equal(t, byte(1), out[0])
}
