// File: spsc/registry.go
//
// Registry of byte-element ring buffer instances addressed by opaque
// handles. The registry is an explicit object so independent instances
// can coexist; there is no package-level ambient state.
// License: Apache-2.0

package spsc

import (
	"sync/atomic"

	"github.com/irqsoft/ringcore/api"
)

// Attrs is the caller-supplied configuration for one ring instance.
// The storage is borrowed, never copied or freed: it must stay alive
// and untouched by the caller for the lifetime of the instance.
type Attrs struct {
	ElemSize  int    // bytes per element, > 0
	ElemCount int    // capacity in elements, power of two
	Storage   []byte // backing memory, len >= ElemSize*ElemCount
}

// Handle identifies one ring instance within the Registry that created
// it. Handles are plain indices, meaningful only in-process, and are
// never reclaimed.
type Handle uint32

// block is the per-instance control block. Head and tail are padded
// apart so the producer and consumer counters do not share a cache line.
type block struct {
	elemSize  uint64
	elemCount uint64
	mask      uint64
	buf       []byte
	head      atomic.Uint64
	_         [64]byte
	tail      atomic.Uint64
	_         [64]byte
}

// full reports whether the instance holds elemCount elements. The
// unsigned difference is exact under the single-writer-per-counter rule;
// reading the counters in any order yields a value that was valid at
// some instant during the call.
func (b *block) full() bool {
	return b.head.Load()-b.tail.Load() == b.elemCount
}

// empty reports whether the instance holds no elements.
func (b *block) empty() bool {
	return b.head.Load()-b.tail.Load() == 0
}

// length returns the current fill level in elements.
func (b *block) length() uint64 {
	return b.head.Load() - b.tail.Load()
}

// Registry is a fixed-capacity collection of ring instances. Slots are
// handed out monotonically by Init; there is no free-list and no way to
// retire a handle. Init is not safe for concurrent use and is expected
// to run during startup, before the producer and consumer contexts
// begin operating.
type Registry struct {
	blocks []block
	used   uint32
}

// NewRegistry allocates a registry with room for capacity instances.
func NewRegistry(capacity int) *Registry {
	if capacity <= 0 {
		panic("spsc: registry capacity must be positive")
	}
	return &Registry{blocks: make([]block, capacity)}
}

// Init binds the next free control block to the given attributes and
// returns its handle. Preconditions are checked in order: non-nil attrs,
// non-nil storage and positive element size, power-of-two element count,
// sufficient storage length, then slot availability.
func (r *Registry) Init(attrs *Attrs) (Handle, error) {
	if attrs == nil {
		return 0, api.ErrInvalidArgument
	}
	if attrs.Storage == nil || attrs.ElemSize <= 0 {
		return 0, api.ErrInvalidArgument
	}
	n := attrs.ElemCount
	if n <= 0 || n&(n-1) != 0 {
		return 0, api.ErrInvalidArgument
	}
	if len(attrs.Storage) < attrs.ElemSize*n {
		return 0, api.ErrInvalidArgument
	}
	if int(r.used) >= len(r.blocks) {
		return 0, api.ErrRegistryExhausted
	}
	b := &r.blocks[r.used]
	b.elemSize = uint64(attrs.ElemSize)
	b.elemCount = uint64(n)
	b.mask = uint64(n) - 1
	b.buf = attrs.Storage
	b.head.Store(0)
	b.tail.Store(0)
	h := Handle(r.used)
	r.used++
	return h, nil
}

// lookup resolves a handle to its control block.
func (r *Registry) lookup(h Handle) (*block, error) {
	if uint32(h) >= r.used {
		return nil, api.ErrInvalidHandle
	}
	return &r.blocks[h], nil
}

// Put copies one element into the ring. Exactly ElemSize bytes are read
// from elem; a shorter slice is rejected. Only the producer context may
// call Put on a given handle. On ErrBufferFull the element is dropped;
// there is no blocking and no retry.
func (r *Registry) Put(h Handle, elem []byte) error {
	b, err := r.lookup(h)
	if err != nil {
		return err
	}
	if uint64(len(elem)) < b.elemSize {
		return api.ErrInvalidArgument
	}
	if b.full() {
		return api.ErrBufferFull
	}
	head := b.head.Load()
	off := (head & b.mask) * b.elemSize
	copy(b.buf[off:off+b.elemSize], elem)
	// Publish head only after the bytes are in place; the consumer must
	// never observe the index advance before the data exists.
	b.head.Store(head + 1)
	return nil
}

// Get copies the oldest element out of the ring into out. Exactly
// ElemSize bytes are written; a shorter out slice is rejected. Only the
// consumer context may call Get on a given handle. On ErrBufferEmpty the
// output slice is left untouched.
func (r *Registry) Get(h Handle, out []byte) error {
	b, err := r.lookup(h)
	if err != nil {
		return err
	}
	if uint64(len(out)) < b.elemSize {
		return api.ErrInvalidArgument
	}
	if b.empty() {
		return api.ErrBufferEmpty
	}
	tail := b.tail.Load()
	off := (tail & b.mask) * b.elemSize
	copy(out, b.buf[off:off+b.elemSize])
	// Release the slot only after the bytes are copied out, or the
	// producer could overwrite them mid-read.
	b.tail.Store(tail + 1)
	return nil
}

// Len returns the number of elements currently stored under h.
func (r *Registry) Len(h Handle) (int, error) {
	b, err := r.lookup(h)
	if err != nil {
		return 0, err
	}
	return int(b.length()), nil
}

// Cap returns the element capacity of the instance under h.
func (r *Registry) Cap(h Handle) (int, error) {
	b, err := r.lookup(h)
	if err != nil {
		return 0, err
	}
	return int(b.elemCount), nil
}

// ElemSize returns the element size in bytes of the instance under h.
func (r *Registry) ElemSize(h Handle) (int, error) {
	b, err := r.lookup(h)
	if err != nil {
		return 0, err
	}
	return int(b.elemSize), nil
}

// Allocated returns how many registry slots have been handed out.
func (r *Registry) Allocated() int {
	return int(r.used)
}

// Capacity returns the fixed number of registry slots.
func (r *Registry) Capacity() int {
	return len(r.blocks)
}
