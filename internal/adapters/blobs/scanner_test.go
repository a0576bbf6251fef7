package blobs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/westkit/westnix/internal/adapters/blobs"
	"github.com/westkit/westnix/internal/core/domain"
)

func writeDescriptor(t *testing.T, topDir, projectPath, content string) {
	t.Helper()
	dir := filepath.Join(topDir, projectPath, "zephyr")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "module.yml"), []byte(content), 0o600))
}

func TestScanner_HasModuleDescriptor(t *testing.T) {
	topDir := t.TempDir()
	writeDescriptor(t, topDir, "modules/hal", "build: {}\n")

	scanner := blobs.NewScanner()
	assert.True(t, scanner.HasModuleDescriptor(topDir, domain.Project{Name: "hal", Path: "modules/hal"}))
	assert.False(t, scanner.HasModuleDescriptor(topDir, domain.Project{Name: "missing", Path: "modules/missing"}))
}

func TestScanner_Blobs(t *testing.T) {
	topDir := t.TempDir()
	writeDescriptor(t, topDir, "modules/hal", `
blobs:
  - path: lib/fw.bin
    url: https://example.com/fw.bin
    sha256: abc123
  - path: lib/other.bin
    url: https://example.com/other.bin
`)
	writeDescriptor(t, topDir, "modules/fs", "build: {}\n")

	scanner := blobs.NewScanner()
	entries, err := scanner.Blobs(topDir, []domain.Project{
		{Name: "hal", Path: "modules/hal"},
		{Name: "fs", Path: "modules/fs"},
		{Name: "no-descriptor", Path: "modules/none"},
	})
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, filepath.Join(topDir, "modules/hal/zephyr/blobs/lib/fw.bin"), entries[0].Path)
	assert.Equal(t, "https://example.com/fw.bin", entries[0].URL)
	assert.Equal(t, "abc123", entries[0].SHA256)
	assert.Empty(t, entries[1].SHA256)
}

func TestScanner_Blobs_SkipsIncompleteEntries(t *testing.T) {
	topDir := t.TempDir()
	writeDescriptor(t, topDir, "hal", `
blobs:
  - path: lib/no-url.bin
  - url: https://example.com/no-path.bin
`)

	scanner := blobs.NewScanner()
	entries, err := scanner.Blobs(topDir, []domain.Project{{Name: "hal", Path: "hal"}})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestScanner_Blobs_InvalidDescriptor(t *testing.T) {
	topDir := t.TempDir()
	writeDescriptor(t, topDir, "hal", "blobs: [not: valid")

	scanner := blobs.NewScanner()
	_, err := scanner.Blobs(topDir, []domain.Project{{Name: "hal", Path: "hal"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse module descriptor")
}
