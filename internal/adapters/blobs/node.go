package blobs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/westkit/westnix/internal/adapters/logger"
	"github.com/westkit/westnix/internal/core/ports"
)

const (
	ProviderNodeID graft.ID = "adapter.blobs.provider"
	DetectorNodeID graft.ID = "adapter.blobs.detector"
	FetcherNodeID  graft.ID = "adapter.blobs.fetcher"
)

func init() {
	graft.Register(graft.Node[ports.BlobProvider]{
		ID:        ProviderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BlobProvider, error) {
			return NewScanner(), nil
		},
	})

	graft.Register(graft.Node[ports.ModuleDetector]{
		ID:        DetectorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ModuleDetector, error) {
			return NewScanner(), nil
		},
	})

	graft.Register(graft.Node[ports.BlobFetcher]{
		ID:        FetcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.BlobFetcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFetcher(log), nil
		},
	})
}
