// Package ports defines the core interfaces for the application.
package ports

import "github.com/westkit/westnix/internal/core/domain"

// ManifestLoader resolves a workspace starting from a directory inside it.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load walks up from startDir to the workspace marker, reads the
	// workspace configuration and parses the manifest it points at.
	Load(startDir string) (*domain.Workspace, error)
}
