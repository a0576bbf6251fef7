// Package telemetry provides telemetry implementations that do not depend on
// a rendering backend.
package telemetry

import (
	"context"

	"github.com/westkit/westnix/internal/core/ports"
)

// Noop is a no-op implementation of ports.Telemetry.
type Noop struct{}

// NewNoop creates a new Noop telemetry.
func NewNoop() *Noop {
	return &Noop{}
}

// Record returns a vertex that discards everything.
func (n *Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, NoopVertex{}
}

// Close does nothing.
func (n *Noop) Close() error {
	return nil
}

// NoopVertex is a no-op implementation of ports.Vertex.
type NoopVertex struct{}

// Write discards p and reports it written.
func (NoopVertex) Write(p []byte) (int, error) {
	return len(p), nil
}

// Cached does nothing.
func (NoopVertex) Cached() {}

// Complete does nothing.
func (NoopVertex) Complete(error) {}
