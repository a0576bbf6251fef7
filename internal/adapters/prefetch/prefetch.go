// Package prefetch resolves content hashes by invoking nix-prefetch-git.
package prefetch

import (
	"context"
	"encoding/json"
	"os/exec"
	"strings"

	"github.com/westkit/westnix/internal/core/domain"
	"go.trai.ch/zerr"
)

// Git implements ports.Prefetcher by shelling out to nix-prefetch-git.
type Git struct{}

// NewGit creates a new Git prefetcher.
func NewGit() *Git {
	return &Git{}
}

// prefetchOutput is the subset of nix-prefetch-git's JSON output we consume.
// Newer versions report an SRI hash, older ones only a bare sha256.
type prefetchOutput struct {
	Hash   string `json:"hash"`
	SHA256 string `json:"sha256"`
}

// Prefetch fetches (url, revision) under the fixed pseudo-branch and returns
// the reported content hash. Non-zero exit and unparsable output are both
// fatal; the offending url and revision travel with the error.
func (g *Git) Prefetch(ctx context.Context, url, revision string) (string, error) {
	//nolint:gosec // Arguments are passed positionally, never through a shell
	cmd := exec.CommandContext(ctx, "nix-prefetch-git",
		"--url", url,
		"--rev", revision,
		"--branch-name", domain.BranchName,
		"--quiet",
	)

	output, err := cmd.Output()
	if err != nil {
		prefetchErr := zerr.Wrap(domain.ErrPrefetchFailed, "nix-prefetch-git did not complete")
		prefetchErr = zerr.With(prefetchErr, "url", url)
		prefetchErr = zerr.With(prefetchErr, "rev", revision)
		prefetchErr = zerr.With(prefetchErr, "error", err.Error())
		if exitErr, ok := err.(*exec.ExitError); ok {
			prefetchErr = zerr.With(prefetchErr, "stderr", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", prefetchErr
	}

	var result prefetchOutput
	if err := json.Unmarshal(output, &result); err != nil {
		parseErr := zerr.Wrap(err, "failed to parse nix-prefetch-git output")
		parseErr = zerr.With(parseErr, "url", url)
		return "", zerr.With(parseErr, "rev", revision)
	}

	hash := result.Hash
	if hash == "" {
		hash = result.SHA256
	}
	if hash == "" {
		emptyErr := zerr.Wrap(domain.ErrPrefetchFailed, "no hash in nix-prefetch-git output")
		emptyErr = zerr.With(emptyErr, "url", url)
		return "", zerr.With(emptyErr, "rev", revision)
	}
	return hash, nil
}
