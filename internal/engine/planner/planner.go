// Package planner resolves the active project list into an ordered link plan
// and the cache entries backing it.
package planner

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/westkit/westnix/internal/core/domain"
	"github.com/westkit/westnix/internal/core/ports"
)

// Options configure a single planning run.
type Options struct {
	// GroupFilter holds extra +group/-group tokens, applied after the
	// workspace's own filter.
	GroupFilter []string
	// ZephyrBase enables the environment export fragment when non-empty. It
	// must be an absolute path inside the workspace.
	ZephyrBase string
}

// Planner builds the link plan, resolving source hashes through the cache
// and the prefetcher.
type Planner struct {
	prefetcher ports.Prefetcher
	detector   ports.ModuleDetector
	telemetry  ports.Telemetry
}

// New creates a new Planner.
func New(prefetcher ports.Prefetcher, detector ports.ModuleDetector, telemetry ports.Telemetry) *Planner {
	return &Planner{
		prefetcher: prefetcher,
		detector:   detector,
		telemetry:  telemetry,
	}
}

// Plan resolves the workspace into link operations: one per active project
// in manifest order, then one per blob in the given order. It returns the
// cache entries actually used this run; the loaded cache is never mutated,
// so a run that fails halfway leaves no trace.
func (p *Planner) Plan(
	ctx context.Context,
	ws *domain.Workspace,
	blobs []domain.BlobEntry,
	cache domain.HashCache,
	opts Options,
) (*domain.Plan, domain.HashCache, error) {
	used := make(domain.HashCache)
	plan := &domain.Plan{}
	var modules []domain.PlaceholderPath

	for _, project := range ws.ActiveProjects(opts.GroupFilter...) {
		op, err := p.projectOp(ctx, ws, project, cache, used)
		if err != nil {
			return nil, nil, err
		}
		plan.Ops = append(plan.Ops, op)

		if p.detector.HasModuleDescriptor(ws.TopDir, project) {
			modules = append(modules, domain.PlaceholderPath(filepath.ToSlash(project.Path)))
		}
	}

	for _, blob := range blobs {
		dest, err := domain.PlaceholderRelative(ws.TopDir, blob.Path)
		if err != nil {
			return nil, nil, err
		}
		plan.Ops = append(plan.Ops, domain.LinkOp{
			Dest: string(dest),
			Source: domain.Source{
				Kind: domain.SourceBlob,
				URL:  blob.URL,
				Hash: blob.SHA256,
			},
		})
	}

	if opts.ZephyrBase != "" {
		base, err := domain.PlaceholderRelative(ws.TopDir, opts.ZephyrBase)
		if err != nil {
			return nil, nil, err
		}
		plan.Env = &domain.EnvExport{Base: base, Modules: modules}
	}

	return plan, used, nil
}

// projectOp builds the overlay operation for one project. Local projects
// link their workspace tree; remote projects fetch by resolved hash.
func (p *Planner) projectOp(
	ctx context.Context,
	ws *domain.Workspace,
	project domain.Project,
	cache, used domain.HashCache,
) (domain.LinkOp, error) {
	if !project.Remote() {
		rel, err := domain.RelativeSourcePath(ws.TopDir, ws.ManifestDir, project.Path)
		if err != nil {
			return domain.LinkOp{}, err
		}
		return domain.LinkOp{
			Dest:   project.Path,
			IsDir:  true,
			Source: domain.Source{Kind: domain.SourceLocal, Path: rel},
		}, nil
	}

	hash, err := p.resolveHash(ctx, project, cache, used)
	if err != nil {
		return domain.LinkOp{}, err
	}
	return domain.LinkOp{
		Dest:  project.Path,
		IsDir: true,
		Source: domain.Source{
			Kind:     domain.SourceGit,
			URL:      project.URL,
			Revision: project.Revision,
			Hash:     hash,
		},
	}, nil
}

// resolveHash consults the run-local accumulator first (two projects pinning
// the same source prefetch once), then the loaded cache, then the external
// tool. New hashes land in the accumulator only.
func (p *Planner) resolveHash(ctx context.Context, project domain.Project, cache, used domain.HashCache) (string, error) {
	key := domain.CacheKey(project.URL, project.Revision)

	if entry, ok := used[key]; ok {
		return entry.ContentHash(), nil
	}

	if entry, ok := cache[key]; ok {
		used[key] = entry
		_, vertex := p.telemetry.Record(ctx, project.Name)
		vertex.Cached()
		vertex.Complete(nil)
		return entry.ContentHash(), nil
	}

	_, vertex := p.telemetry.Record(ctx, project.Name)
	fmt.Fprintf(vertex, "prefetching %s at %s\n", project.URL, project.Revision)
	hash, err := p.prefetcher.Prefetch(ctx, project.URL, project.Revision)
	vertex.Complete(err)
	if err != nil {
		return "", err
	}

	used[key] = domain.CacheEntry{URL: project.URL, Rev: project.Revision, Hash: hash}
	return hash, nil
}
