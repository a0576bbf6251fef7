package planner

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/westkit/westnix/internal/adapters/blobs"
	"github.com/westkit/westnix/internal/adapters/prefetch"
	"github.com/westkit/westnix/internal/adapters/telemetry/progrock"
	"github.com/westkit/westnix/internal/core/ports"
)

const NodeID graft.ID = "engine.planner"

func init() {
	graft.Register(graft.Node[*Planner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			prefetch.NodeID,
			blobs.DetectorNodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Planner, error) {
			prefetcher, err := graft.Dep[ports.Prefetcher](ctx)
			if err != nil {
				return nil, err
			}
			detector, err := graft.Dep[ports.ModuleDetector](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return New(prefetcher, detector, telemetry), nil
		},
	})
}
