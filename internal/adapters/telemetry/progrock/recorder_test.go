package progrock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/westkit/westnix/internal/adapters/telemetry/progrock"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecorder_Integration(t *testing.T) {
	recorder := progrock.New()

	ctx := context.Background()
	_, vertex := recorder.Record(ctx, "zephyr")

	msg := []byte("prefetching https://example.com/zephyr at v1\n")
	n, err := vertex.Write(msg)
	require.NoError(t, err)
	assert.Equal(t, len(msg), n)

	vertex.Complete(nil)

	require.NoError(t, recorder.Close())
}

func TestRecorder_CachedVertex(t *testing.T) {
	recorder := progrock.New()

	_, vertex := recorder.Record(context.Background(), "hal")
	vertex.Cached()
	vertex.Complete(nil)

	require.NoError(t, recorder.Close())
}
