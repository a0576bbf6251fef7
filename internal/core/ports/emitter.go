package ports

import "github.com/westkit/westnix/internal/core/domain"

// Emitter renders a resolved plan into the build expression file.
//
//go:generate go run go.uber.org/mock/mockgen -source=emitter.go -destination=mocks/mock_emitter.go -package=mocks
type Emitter interface {
	// Emit writes the rendered plan to path. The write is atomic and is
	// skipped entirely when the rendered bytes match the existing file.
	Emit(path string, plan *domain.Plan) error
}
