// File: facade/ringcore.go
// Unified facade layer for the ringcore library.
// License: Apache-2.0
//
// RingSystem aggregates a registry of ring instances with the control
// plane (config, metrics, debug probes) behind a single object. The
// facade counts puts, gets, and drops around the core operations so the
// lock-free core itself stays free of instrumentation.

package facade

import (
	"fmt"
	"sync/atomic"

	"github.com/irqsoft/ringcore/adapters"
	"github.com/irqsoft/ringcore/api"
	"github.com/irqsoft/ringcore/highlevel"
	"github.com/irqsoft/ringcore/spsc"
)

// Config holds parameters immutable per run.
type Config struct {
	RegistryCapacity int  // Maximum number of ring instances
	DefaultElemSize  int  // Element size in bytes for Open(nil)
	DefaultElemCount int  // Element count for Open(nil), power of two
	EnableMetrics    bool // Whether to count puts/gets/drops
	EnableDebug      bool // Whether to register per-ring debug probes
	CPUAffinity      int  // Logical CPU for DrainPinned loops; -1 disables pinning
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		RegistryCapacity: 16,
		DefaultElemSize:  1,    // byte-stream elements
		DefaultElemCount: 1024, // 1 KiB receive ring
		EnableMetrics:    true,
		EnableDebug:      true,
		CPUAffinity:      -1, // no pinning unless asked for
	}
}

// RingSystem is the main facade type.
type RingSystem struct {
	registry *spsc.Registry
	control  *adapters.ControlAdapter
	cfg      *Config
}

// New constructs a RingSystem with the given configuration.
func New(cfg *Config) *RingSystem {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	sys := &RingSystem{
		registry: spsc.NewRegistry(cfg.RegistryCapacity),
		control:  adapters.NewControlAdapter(),
		cfg:      cfg,
	}
	sys.control.SetConfig(map[string]any{
		"registry.capacity": cfg.RegistryCapacity,
		"ring.elem_size":    cfg.DefaultElemSize,
		"ring.elem_count":   cfg.DefaultElemCount,
		"metrics.enabled":   cfg.EnableMetrics,
		"debug.enabled":     cfg.EnableDebug,
		"affinity.cpu":      cfg.CPUAffinity,
	})
	if cfg.EnableDebug {
		sys.control.RegisterDebugProbe("registry", func() any {
			return map[string]any{
				"allocated": sys.registry.Allocated(),
				"capacity":  sys.registry.Capacity(),
			}
		})
	}
	return sys
}

// Control returns the runtime control surface.
func (s *RingSystem) Control() api.Control {
	return s.control
}

// DrainPinned starts a dedicated drain loop for r, pinned according to
// the system's CPUAffinity setting. See highlevel.RunPinned for the
// loop's stop semantics.
func DrainPinned[T any](s *RingSystem, r api.Ring[T], fn func(T), stop <-chan struct{}) <-chan struct{} {
	return highlevel.RunPinned(s.cfg.CPUAffinity, r, fn, stop)
}

// DebugJSON serializes the current debug probe state.
func (s *RingSystem) DebugJSON() ([]byte, error) {
	return s.control.DumpDebugJSON()
}

// Registry exposes the underlying registry for callers that want the
// raw handle-based operations.
func (s *RingSystem) Registry() *spsc.Registry {
	return s.registry
}

// Open initializes one ring instance from attrs and returns a Conduit
// bound to it. A nil attrs requests the configured default geometry,
// with the facade allocating the backing storage. Like Registry.Init,
// Open belongs in the startup phase, before producer and consumer
// contexts run. Failures come back as coded api.Error values wrapping
// the registry sentinel.
func (s *RingSystem) Open(attrs *spsc.Attrs) (*Conduit, error) {
	if attrs == nil {
		attrs = &spsc.Attrs{
			ElemSize:  s.cfg.DefaultElemSize,
			ElemCount: s.cfg.DefaultElemCount,
		}
		// A config without a usable default geometry falls through to
		// Init's validation with nil storage.
		if attrs.ElemSize > 0 && attrs.ElemCount > 0 {
			attrs.Storage = make([]byte, attrs.ElemSize*attrs.ElemCount)
		}
	}
	h, err := s.registry.Init(attrs)
	if err != nil {
		return nil, api.WrapError(api.CodeOf(err), err).
			WithContext("allocated", s.registry.Allocated()).
			WithContext("capacity", s.registry.Capacity())
	}
	c := &Conduit{sys: s, h: h}
	if s.cfg.EnableMetrics {
		m := s.control.Metrics()
		prefix := fmt.Sprintf("ring.%d.", h)
		c.putOK = m.Counter(prefix + "put")
		c.putDrop = m.Counter(prefix + "put_dropped")
		c.getOK = m.Counter(prefix + "get")
		c.getEmpty = m.Counter(prefix + "get_empty")
	}
	if s.cfg.EnableDebug {
		name := fmt.Sprintf("ring.%d", h)
		s.control.RegisterDebugProbe(name, func() any {
			n, _ := s.registry.Len(h)
			cp, _ := s.registry.Cap(h)
			return map[string]any{"len": n, "cap": cp}
		})
	}
	return c, nil
}

// Conduit is one opened ring instance. Put belongs to the producer
// context, Get to the consumer context; the counters it bumps are
// atomic, so instrumentation does not weaken the core's contract.
type Conduit struct {
	sys *RingSystem
	h   spsc.Handle

	putOK    *atomic.Int64
	putDrop  *atomic.Int64
	getOK    *atomic.Int64
	getEmpty *atomic.Int64
}

// Handle returns the raw handle for use with Registry directly.
func (c *Conduit) Handle() spsc.Handle {
	return c.h
}

// Put copies one element into the ring, counting outcomes.
func (c *Conduit) Put(elem []byte) error {
	err := c.sys.registry.Put(c.h, elem)
	switch {
	case err == nil:
		if c.putOK != nil {
			c.putOK.Add(1)
		}
	case err == api.ErrBufferFull:
		if c.putDrop != nil {
			c.putDrop.Add(1)
		}
	}
	return err
}

// Get copies the oldest element out of the ring, counting outcomes.
func (c *Conduit) Get(out []byte) error {
	err := c.sys.registry.Get(c.h, out)
	switch {
	case err == nil:
		if c.getOK != nil {
			c.getOK.Add(1)
		}
	case err == api.ErrBufferEmpty:
		if c.getEmpty != nil {
			c.getEmpty.Add(1)
		}
	}
	return err
}

// Len returns the current fill level of the instance.
func (c *Conduit) Len() int {
	n, _ := c.sys.registry.Len(c.h)
	return n
}
