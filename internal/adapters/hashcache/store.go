// Package hashcache persists resolved project hashes between runs as a flat
// JSON file next to the manifest.
package hashcache

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/westkit/westnix/internal/core/domain"
	"go.trai.ch/zerr"
)

// fileSchema is the on-disk layout. Unknown top-level keys are ignored on
// read so newer writers do not break older readers.
type fileSchema struct {
	ProjectHashes map[string]domain.CacheEntry `json:"project_hashes"`
}

// Store implements ports.CacheStore using a flat JSON file.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the cache at path. A missing or malformed file degrades to an
// empty cache: a cold start and a corrupted cache are indistinguishable on
// purpose, both just cost one prefetch per source. Entries without a usable
// hash are dropped for the same reason.
func (s *Store) Load(path string) domain.HashCache {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return domain.HashCache{}
	}

	var file fileSchema
	if err := json.Unmarshal(data, &file); err != nil {
		return domain.HashCache{}
	}

	cache := make(domain.HashCache, len(file.ProjectHashes))
	for key, entry := range file.ProjectHashes {
		if entry.ContentHash() == "" {
			continue
		}
		cache[key] = entry
	}
	return cache
}

// Save overwrites path with exactly the given entries. encoding/json sorts
// map keys, so an unchanged cache serializes to unchanged bytes.
func (s *Store) Save(path string, cache domain.HashCache) error {
	data, err := json.MarshalIndent(fileSchema{ProjectHashes: cache}, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal hash cache")
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create cache directory"), "path", path)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(filepath.Clean(path), data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write hash cache"), "path", path)
	}
	return nil
}
