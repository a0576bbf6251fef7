// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/westkit/westnix/internal/adapters/blobs"
	_ "github.com/westkit/westnix/internal/adapters/hashcache"
	_ "github.com/westkit/westnix/internal/adapters/logger"
	_ "github.com/westkit/westnix/internal/adapters/manifest"
	_ "github.com/westkit/westnix/internal/adapters/nix"
	_ "github.com/westkit/westnix/internal/adapters/prefetch"
	_ "github.com/westkit/westnix/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "github.com/westkit/westnix/internal/app"
	_ "github.com/westkit/westnix/internal/engine/planner"
)
