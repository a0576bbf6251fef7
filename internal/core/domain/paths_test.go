package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/westkit/westnix/internal/core/domain"
)

func TestRelativeSourcePath_ManifestAtRoot(t *testing.T) {
	rel, err := domain.RelativeSourcePath("/work", "/work", "modules/hal")
	require.NoError(t, err)
	assert.Equal(t, "modules/hal", rel)
}

func TestRelativeSourcePath_NestedManifest(t *testing.T) {
	rel, err := domain.RelativeSourcePath("/work", "/work/firmware", "modules/hal")
	require.NoError(t, err)
	assert.Equal(t, "../modules/hal", rel)

	// A sibling of the manifest directory.
	rel, err = domain.RelativeSourcePath("/work", "/work/firmware", "firmware/app")
	require.NoError(t, err)
	assert.Equal(t, "app", rel)
}

func TestPlaceholderRelative(t *testing.T) {
	rel, err := domain.PlaceholderRelative("/work", "/work/zephyr")
	require.NoError(t, err)
	assert.Equal(t, domain.PlaceholderPath("zephyr"), rel)

	rel, err = domain.PlaceholderRelative("/work", "/work")
	require.NoError(t, err)
	assert.Equal(t, domain.PlaceholderPath("."), rel)
}

func TestPlaceholderRelative_OutsideWorkspace(t *testing.T) {
	_, err := domain.PlaceholderRelative("/work", "/elsewhere/zephyr")
	require.ErrorIs(t, err, domain.ErrPathOutsideWorkspace)

	_, err = domain.PlaceholderRelative("/work", "/")
	require.ErrorIs(t, err, domain.ErrPathOutsideWorkspace)
}
