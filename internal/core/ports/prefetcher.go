package ports

import "context"

// Prefetcher resolves the content hash of a remote source pinned to a
// revision. Implementations invoke an external tool; failures are fatal for
// the run and must never be silently substituted.
//
//go:generate go run go.uber.org/mock/mockgen -source=prefetcher.go -destination=mocks/mock_prefetcher.go -package=mocks
type Prefetcher interface {
	// Prefetch fetches (url, revision) under the fixed pseudo-branch and
	// returns the content hash reported by the tool.
	Prefetch(ctx context.Context, url, revision string) (string, error)
}
