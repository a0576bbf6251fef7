package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// FetchStrategy identifies how a pinned revision is fetched. It is mixed
// into the cache key so entries produced under a different strategy can
// never be mistaken for one another.
const FetchStrategy = "fetchgit"

// BranchName is the pseudo-branch pinned to the requested revision. It makes
// the fetch reproducible independent of upstream branch movement.
const BranchName = "west-nix"

// CacheKey derives the stable identity of a (url, revision) source under the
// fixed fetch strategy. Fields are NUL-separated before hashing to rule out
// concatenation collisions.
func CacheKey(url, revision string) string {
	h := sha256.New()
	for _, part := range []string{FetchStrategy, url, revision, BranchName} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// CacheEntry records a resolved content hash. URL and Rev are stored for
// human inspection of the cache file only; the hash is authoritative and
// treated as an opaque string.
type CacheEntry struct {
	URL string `json:"url"`
	Rev string `json:"rev"`
	// Hash is an SRI-style content hash as reported by the prefetch tool.
	Hash string `json:"hash,omitempty"`
	// SHA256 is the legacy field name used by older cache files. It is read
	// for compatibility but never written for new entries.
	SHA256 string `json:"sha256,omitempty"`
}

// ContentHash returns the authoritative hash, preferring the current field
// over the legacy one.
func (e CacheEntry) ContentHash() string {
	if e.Hash != "" {
		return e.Hash
	}
	return e.SHA256
}

// HashCache maps cache keys to resolved entries.
type HashCache map[string]CacheEntry
