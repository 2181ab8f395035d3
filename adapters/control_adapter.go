// File: adapters/control_adapter.go
//
// Control adapter implementing api.Control over the control package
// primitives.
// License: Apache-2.0

package adapters

import (
	"github.com/irqsoft/ringcore/api"
	"github.com/irqsoft/ringcore/control"
)

// ControlAdapter bundles config, metrics, and debug probes behind the
// api.Control surface.
type ControlAdapter struct {
	config  *control.ConfigStore
	metrics *control.MetricsRegistry
	debug   *control.DebugProbes
}

// Ensure compile-time compliance.
var _ api.Control = (*ControlAdapter)(nil)

// NewControlAdapter wires fresh control primitives together and
// registers the process-level runtime probes.
func NewControlAdapter() *ControlAdapter {
	adapter := &ControlAdapter{
		config:  control.NewConfigStore(),
		metrics: control.NewMetricsRegistry(),
		debug:   control.NewDebugProbes(),
	}
	control.RegisterRuntimeProbes(adapter.debug)
	return adapter
}

func (c *ControlAdapter) GetConfig() map[string]any {
	return c.config.GetSnapshot()
}

func (c *ControlAdapter) SetConfig(cfg map[string]any) error {
	c.config.SetConfig(cfg)
	return nil
}

// Stats merges metric and probe output into one snapshot; probe keys
// are prefixed to keep the namespaces apart.
func (c *ControlAdapter) Stats() map[string]any {
	stats := c.metrics.GetSnapshot()
	combined := make(map[string]any, len(stats))
	for k, v := range stats {
		combined[k] = v
	}
	for k, v := range c.debug.DumpState() {
		combined["debug."+k] = v
	}
	return combined
}

func (c *ControlAdapter) OnReload(fn func()) {
	c.config.OnReload(fn)
}

func (c *ControlAdapter) RegisterDebugProbe(name string, fn func() any) {
	c.debug.RegisterProbe(name, fn)
}

// Metrics exposes the underlying registry for hot-path counter caching.
func (c *ControlAdapter) Metrics() *control.MetricsRegistry {
	return c.metrics
}

// DumpDebugJSON serializes the current probe state.
func (c *ControlAdapter) DumpDebugJSON() ([]byte, error) {
	return c.debug.DumpJSON()
}
