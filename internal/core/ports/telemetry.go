package ports

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for recording job lifecycles.
type Tracer interface {
	// Start opens a span for a unit of work.
	Start(ctx context.Context, name string) (context.Context, Span)

	// Close flushes and closes the recording session.
	Close() error
}

// Span represents one recorded unit of work.
type Span interface {
	// RecordError marks the span as failed.
	RecordError(err error)

	// End completes the span.
	End()
}
