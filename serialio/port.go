// File: serialio/port.go
//
// Byte-stream port over a single-producer/single-consumer ring.
// License: Apache-2.0

package serialio

import (
	"io"
	"sync/atomic"

	"github.com/irqsoft/ringcore/api"
	"github.com/irqsoft/ringcore/spsc"
)

// Port binds a receive ring to a producer (handler) side and a consumer
// (application) side. PutByte and Feed belong to the handler context,
// GetByte and Read to the application context; the usual single-writer
// rule of the underlying ring applies.
type Port struct {
	reg     *spsc.Registry
	h       spsc.Handle
	closed  atomic.Bool
	dropped atomic.Uint64
}

// Ensure Port satisfies io.Reader for drain loops.
var _ io.Reader = (*Port)(nil)

// NewPort allocates a ring of depth bytes in reg and returns the bound
// port. Depth must be a power of two. The port owns its backing storage,
// mirroring a driver that declares its receive memory statically.
func NewPort(reg *spsc.Registry, depth int) (*Port, error) {
	h, err := reg.Init(&spsc.Attrs{
		ElemSize:  1,
		ElemCount: depth,
		Storage:   make([]byte, depth),
	})
	if err != nil {
		return nil, err
	}
	return &Port{reg: reg, h: h}, nil
}

// PutByte pushes one received byte from the handler context. A full
// ring drops the byte; the drop is counted, never retried.
func (p *Port) PutByte(b byte) error {
	if p.closed.Load() {
		return api.ErrPortClosed
	}
	if err := p.reg.Put(p.h, []byte{b}); err != nil {
		p.dropped.Add(1)
		return err
	}
	return nil
}

// Feed pushes a burst of bytes from the handler context and returns how
// many were accepted. The remainder is dropped, as a real receive
// interrupt would overrun.
func (p *Port) Feed(data []byte) (int, error) {
	if p.closed.Load() {
		return 0, api.ErrPortClosed
	}
	for i := range data {
		if err := p.reg.Put(p.h, data[i:i+1]); err != nil {
			p.dropped.Add(uint64(len(data) - i))
			return i, err
		}
	}
	return len(data), nil
}

// GetByte pops the oldest received byte from the application context.
// An empty ring yields ErrBufferEmpty immediately; after Close the
// remaining bytes stay readable until drained.
func (p *Port) GetByte() (byte, error) {
	var b [1]byte
	if err := p.reg.Get(p.h, b[:]); err != nil {
		if p.closed.Load() && err == api.ErrBufferEmpty {
			return 0, api.ErrPortClosed
		}
		return 0, err
	}
	return b[0], nil
}

// Read drains up to len(buf) currently available bytes. It never
// blocks: with data pending it returns a short read, on an open empty
// port it returns ErrBufferEmpty, and on a closed drained port io.EOF.
// A zero-length buf reads nothing and reports no state, per io.Reader.
func (p *Port) Read(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	n := 0
	for n < len(buf) {
		if err := p.reg.Get(p.h, buf[n:n+1]); err != nil {
			break
		}
		n++
	}
	if n > 0 {
		return n, nil
	}
	if p.closed.Load() {
		return 0, io.EOF
	}
	return 0, api.ErrBufferEmpty
}

// Close stops the producer side. Buffered bytes remain readable;
// Read reports io.EOF once they are gone.
func (p *Port) Close() error {
	p.closed.Store(true)
	return nil
}

// Dropped returns how many bytes overran the ring since creation.
func (p *Port) Dropped() uint64 {
	return p.dropped.Load()
}

// Buffered returns the number of bytes waiting to be read.
func (p *Port) Buffered() int {
	n, _ := p.reg.Len(p.h)
	return n
}
