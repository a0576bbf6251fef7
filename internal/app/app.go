// Package app implements the application layer for westnix.
package app

import (
	"context"
	"path/filepath"

	"github.com/westkit/westnix/internal/core/domain"
	"github.com/westkit/westnix/internal/core/ports"
	"github.com/westkit/westnix/internal/engine/planner"
	"go.trai.ch/zerr"
)

const (
	// OutputFile is the name of the generated expression, written into the
	// manifest directory.
	OutputFile = "west.nix"
	// DefaultCacheFile is the default hash cache name, kept next to the
	// manifest so it travels with the generated expression.
	DefaultCacheFile = "west-nix-cache.json"
)

// GenerateOptions carry the per-invocation settings for a generation run.
type GenerateOptions struct {
	// StartDir is where workspace discovery begins. Empty means the current
	// directory.
	StartDir string
	// CacheFile overrides the hash cache location.
	CacheFile string
	// GroupFilter holds extra +group/-group tokens, applied after the
	// workspace's own filter.
	GroupFilter []string
	// ZephyrBase enables the environment export fragment. It is passed in
	// explicitly so the core never reads ambient process state.
	ZephyrBase string
}

// App wires the resolution pipeline together.
type App struct {
	loader     ports.ManifestLoader
	cacheStore ports.CacheStore
	blobs      ports.BlobProvider
	fetcher    ports.BlobFetcher
	planner    *planner.Planner
	emitter    ports.Emitter
	logger     ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ManifestLoader,
	cacheStore ports.CacheStore,
	blobs ports.BlobProvider,
	fetcher ports.BlobFetcher,
	plan *planner.Planner,
	emitter ports.Emitter,
	logger ports.Logger,
) *App {
	return &App{
		loader:     loader,
		cacheStore: cacheStore,
		blobs:      blobs,
		fetcher:    fetcher,
		planner:    plan,
		emitter:    emitter,
		logger:     logger,
	}
}

// Generate resolves the workspace and writes the build expression. The hash
// cache is persisted only after the expression write succeeded, and then
// contains exactly the entries used by this run; any earlier failure leaves
// both the expression and the cache file untouched.
func (a *App) Generate(ctx context.Context, opts GenerateOptions) error {
	startDir := opts.StartDir
	if startDir == "" {
		startDir = "."
	}

	ws, err := a.loader.Load(startDir)
	if err != nil {
		return zerr.Wrap(err, "failed to load workspace")
	}

	cachePath := opts.CacheFile
	if cachePath == "" {
		cachePath = filepath.Join(ws.ManifestDir, DefaultCacheFile)
	}
	cache := a.cacheStore.Load(cachePath)

	active := ws.ActiveProjects(opts.GroupFilter...)
	blobs, err := a.blobs.Blobs(ws.TopDir, active)
	if err != nil {
		return zerr.Wrap(err, "failed to collect blobs")
	}

	plan, used, err := a.planner.Plan(ctx, ws, blobs, cache, planner.Options{
		GroupFilter: opts.GroupFilter,
		ZephyrBase:  opts.ZephyrBase,
	})
	if err != nil {
		return err
	}

	if err := a.emitter.Emit(filepath.Join(ws.ManifestDir, OutputFile), plan); err != nil {
		return err
	}

	return a.cacheStore.Save(cachePath, used)
}

// Blobs returns the blob entries declared by the active projects.
func (a *App) Blobs(opts GenerateOptions) ([]domain.BlobEntry, error) {
	startDir := opts.StartDir
	if startDir == "" {
		startDir = "."
	}

	ws, err := a.loader.Load(startDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load workspace")
	}

	blobs, err := a.blobs.Blobs(ws.TopDir, ws.ActiveProjects(opts.GroupFilter...))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to collect blobs")
	}
	return blobs, nil
}

// FetchBlobs downloads the active projects' blobs into the workspace.
func (a *App) FetchBlobs(ctx context.Context, opts GenerateOptions) error {
	blobs, err := a.Blobs(opts)
	if err != nil {
		return err
	}
	return a.fetcher.Fetch(ctx, blobs)
}
