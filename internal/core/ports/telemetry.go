package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry is the entry point for recording per-source progress.
type Telemetry interface {
	// Record starts recording a new vertex.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one unit of work. Writes carry its log output.
type Vertex interface {
	io.Writer
	// Cached marks the vertex as served from cache.
	Cached()
	// Complete marks the vertex as finished (successfully or with an error).
	Complete(err error)
}
