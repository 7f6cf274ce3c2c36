// Package telemetry provides tracer implementations for job lifecycle
// recording.
package telemetry

import (
	"context"

	"go.trai.ch/nobs/internal/core/ports"
)

// NoopTracer is a no-op implementation of ports.Tracer.
type NoopTracer struct{}

// NewNoopTracer creates a new NoopTracer.
func NewNoopTracer() *NoopTracer {
	return &NoopTracer{}
}

// Start returns a no-op span.
func (t *NoopTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, &NoopSpan{}
}

// Close does nothing.
func (t *NoopTracer) Close() error { return nil }

// NoopSpan is a no-op implementation of ports.Span.
type NoopSpan struct{}

// RecordError does nothing.
func (s *NoopSpan) RecordError(_ error) {}

// End does nothing.
func (s *NoopSpan) End() {}
