package ports

import (
	"context"

	"github.com/westkit/westnix/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=blobs.go -destination=mocks/mock_blobs.go -package=mocks

// BlobProvider lists the binary artifacts declared by the given projects.
// A missing descriptor is "no blobs", never an error.
type BlobProvider interface {
	Blobs(topDir string, projects []domain.Project) ([]domain.BlobEntry, error)
}

// ModuleDetector reports whether a checked-out project tree declares a
// module descriptor at the fixed relative location.
type ModuleDetector interface {
	HasModuleDescriptor(topDir string, project domain.Project) bool
}

// BlobFetcher downloads blob artifacts into the workspace.
type BlobFetcher interface {
	// Fetch downloads every blob that is missing or fails verification.
	Fetch(ctx context.Context, blobs []domain.BlobEntry) error
}
