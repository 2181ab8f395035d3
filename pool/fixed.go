// File: pool/fixed.go
//
// Bitmap-tracked fixed-block allocator.
// License: Apache-2.0

package pool

import (
	"sync/atomic"

	"github.com/irqsoft/ringcore/api"
)

const bitsPerWord = 8

// Ensure compile-time interface compliance.
var _ api.FixedPool[any] = (*Fixed[any])(nil)

// Fixed is a fixed-capacity pool of T blocks. A set bit in the info
// bitmap marks a free block.
type Fixed[T any] struct {
	elems []T
	info  []uint8
	free  int

	totalAlloc atomic.Int64
	totalFree  atomic.Int64
}

// NewFixed allocates a pool of size blocks. All blocks start free.
func NewFixed[T any](size int) *Fixed[T] {
	if size <= 0 {
		panic("pool: size must be positive")
	}
	p := &Fixed[T]{
		elems: make([]T, size),
		info:  make([]uint8, (size+bitsPerWord-1)/bitsPerWord),
		free:  size,
	}
	for i := range p.info {
		p.info[i] = 0xFF
	}
	return p
}

// Alloc takes the first free block from the pool.
func (p *Fixed[T]) Alloc() (*T, error) {
	if p.free <= 0 {
		return nil, api.ErrPoolExhausted
	}
	for i := range p.elems {
		if p.testBit(i) {
			p.clrBit(i)
			p.free--
			p.totalAlloc.Add(1)
			return &p.elems[i], nil
		}
	}
	return nil, api.ErrPoolExhausted
}

// Free returns a block to the pool. Double frees are tolerated and do
// not corrupt the free count.
func (p *Fixed[T]) Free(ptr *T) error {
	if ptr == nil {
		return api.ErrForeignBlock
	}
	for i := range p.elems {
		if ptr == &p.elems[i] {
			if !p.testBit(i) {
				p.setBit(i)
				p.free++
				p.totalFree.Add(1)
			}
			return nil
		}
	}
	return api.ErrForeignBlock
}

// FreeCount returns the number of blocks currently available.
func (p *Fixed[T]) FreeCount() int {
	return p.free
}

// Cap returns the total number of blocks in the pool.
func (p *Fixed[T]) Cap() int {
	return len(p.elems)
}

// Stats reports cumulative allocation counters.
func (p *Fixed[T]) Stats() api.PoolStats {
	return api.PoolStats{
		TotalAlloc: p.totalAlloc.Load(),
		TotalFree:  p.totalFree.Load(),
		InUse:      int64(len(p.elems) - p.free),
	}
}

func (p *Fixed[T]) testBit(i int) bool {
	return p.info[i/bitsPerWord]&(1<<(i%bitsPerWord)) != 0
}

func (p *Fixed[T]) setBit(i int) {
	p.info[i/bitsPerWord] |= 1 << (i % bitsPerWord)
}

func (p *Fixed[T]) clrBit(i int) {
	p.info[i/bitsPerWord] &^= 1 << (i % bitsPerWord)
}
