package ports

import "github.com/westkit/westnix/internal/core/domain"

// CacheStore persists the project hash cache between runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache_store.go -destination=mocks/mock_cache_store.go -package=mocks
type CacheStore interface {
	// Load reads the cache at path. A missing or unreadable file yields an
	// empty cache; loading never fails.
	Load(path string) domain.HashCache

	// Save overwrites path with exactly the given entries. Callers invoke it
	// at most once per run, after the expression write succeeded.
	Save(path string, cache domain.HashCache) error
}
