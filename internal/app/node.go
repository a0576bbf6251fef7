package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/westkit/westnix/internal/adapters/blobs"     //nolint:depguard // Wired in app layer
	"github.com/westkit/westnix/internal/adapters/hashcache" //nolint:depguard // Wired in app layer
	"github.com/westkit/westnix/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/westkit/westnix/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"github.com/westkit/westnix/internal/adapters/nix"       //nolint:depguard // Wired in app layer
	"github.com/westkit/westnix/internal/core/ports"
	"github.com/westkit/westnix/internal/engine/planner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			manifest.NodeID,
			hashcache.NodeID,
			blobs.ProviderNodeID,
			blobs.FetcherNodeID,
			planner.NodeID,
			nix.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ManifestLoader](ctx)
	if err != nil {
		return nil, err
	}
	cacheStore, err := graft.Dep[ports.CacheStore](ctx)
	if err != nil {
		return nil, err
	}
	provider, err := graft.Dep[ports.BlobProvider](ctx)
	if err != nil {
		return nil, err
	}
	fetcher, err := graft.Dep[ports.BlobFetcher](ctx)
	if err != nil {
		return nil, err
	}
	plan, err := graft.Dep[*planner.Planner](ctx)
	if err != nil {
		return nil, err
	}
	emitter, err := graft.Dep[ports.Emitter](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, cacheStore, provider, fetcher, plan, emitter, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return &Components{
		App:    a,
		Logger: log,
	}, nil
}
