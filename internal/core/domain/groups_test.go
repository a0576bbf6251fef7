package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/westkit/westnix/internal/core/domain"
)

func TestParseGroupFilter(t *testing.T) {
	filter, err := domain.ParseGroupFilter("+audio,-debug, +video ,")
	require.NoError(t, err)
	assert.Equal(t, domain.GroupFilter{"+audio", "-debug", "+video"}, filter)
}

func TestParseGroupFilter_Empty(t *testing.T) {
	filter, err := domain.ParseGroupFilter("")
	require.NoError(t, err)
	assert.Empty(t, filter)
}

func TestParseGroupFilter_InvalidToken(t *testing.T) {
	_, err := domain.ParseGroupFilter("audio")
	require.ErrorIs(t, err, domain.ErrInvalidGroupFilter)

	_, err = domain.ParseGroupFilter("+")
	require.ErrorIs(t, err, domain.ErrInvalidGroupFilter)
}

func TestGroupFilter_LastTokenWins(t *testing.T) {
	filter := domain.GroupFilter{"-debug", "+debug"}
	assert.True(t, filter.Enabled("debug"))

	filter = domain.GroupFilter{"+debug", "-debug"}
	assert.False(t, filter.Enabled("debug"))
}

func TestGroupFilter_Active(t *testing.T) {
	filter := domain.GroupFilter{"-optional"}

	ungrouped := domain.Project{Name: "core"}
	assert.True(t, filter.Active(ungrouped), "projects without groups are always active")

	disabled := domain.Project{Name: "extra", Groups: []string{"optional"}}
	assert.False(t, filter.Active(disabled))

	partial := domain.Project{Name: "mixed", Groups: []string{"optional", "audio"}}
	assert.True(t, filter.Active(partial), "one enabled group keeps the project active")
}

func TestWorkspace_ActiveProjects(t *testing.T) {
	ws := &domain.Workspace{
		Filter: domain.GroupFilter{"-optional"},
		Projects: []domain.Project{
			{Name: "p1"},
			{Name: "p2", Groups: []string{"optional"}},
			{Name: "p3"},
		},
	}

	active := ws.ActiveProjects()
	require.Len(t, active, 2)
	assert.Equal(t, "p1", active[0].Name)
	assert.Equal(t, "p3", active[1].Name)

	// An extra token overrides the workspace filter.
	active = ws.ActiveProjects("+optional")
	require.Len(t, active, 3)
	assert.Equal(t, "p2", active[1].Name, "manifest order is preserved")
}
