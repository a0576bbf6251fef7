package prefetch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/westkit/westnix/internal/adapters/prefetch"
	"github.com/westkit/westnix/internal/core/domain"
)

// stubTool installs a fake nix-prefetch-git on PATH for the duration of the
// test and returns the file its arguments are recorded into.
func stubTool(t *testing.T, script string) string {
	t.Helper()
	dir := t.TempDir()
	argsFile := filepath.Join(dir, "args")

	body := "#!/bin/sh\necho \"$@\" > " + argsFile + "\n" + script + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nix-prefetch-git"), []byte(body), 0o755)) //nolint:gosec // Test stub must be executable

	t.Setenv("PATH", dir)
	return argsFile
}

func TestGit_Prefetch_SRIHash(t *testing.T) {
	argsFile := stubTool(t, `echo '{"url": "https://example.com/r", "rev": "deadbeef", "hash": "sha256-abc123"}'`)

	hash, err := prefetch.NewGit().Prefetch(context.Background(), "https://example.com/r", "deadbeef")
	require.NoError(t, err)
	assert.Equal(t, "sha256-abc123", hash)

	args, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Equal(t,
		"--url https://example.com/r --rev deadbeef --branch-name west-nix --quiet\n",
		string(args))
}

func TestGit_Prefetch_LegacySHA256Only(t *testing.T) {
	stubTool(t, `echo '{"sha256": "0123abcd"}'`)

	hash, err := prefetch.NewGit().Prefetch(context.Background(), "https://example.com/r", "deadbeef")
	require.NoError(t, err)
	assert.Equal(t, "0123abcd", hash)
}

func TestGit_Prefetch_NonZeroExit(t *testing.T) {
	stubTool(t, "echo 'fatal: not found' >&2\nexit 1")

	_, err := prefetch.NewGit().Prefetch(context.Background(), "https://example.com/r", "deadbeef")
	require.ErrorIs(t, err, domain.ErrPrefetchFailed)
}

func TestGit_Prefetch_UnparsableOutput(t *testing.T) {
	stubTool(t, "echo 'this is not json'")

	_, err := prefetch.NewGit().Prefetch(context.Background(), "https://example.com/r", "deadbeef")
	require.Error(t, err)
}

func TestGit_Prefetch_EmptyHash(t *testing.T) {
	stubTool(t, `echo '{"url": "https://example.com/r"}'`)

	_, err := prefetch.NewGit().Prefetch(context.Background(), "https://example.com/r", "deadbeef")
	require.ErrorIs(t, err, domain.ErrPrefetchFailed)
}
