package prefetch

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/westkit/westnix/internal/core/ports"
)

const NodeID graft.ID = "adapter.prefetcher"

func init() {
	graft.Register(graft.Node[ports.Prefetcher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Prefetcher, error) {
			return NewGit(), nil
		},
	})
}
