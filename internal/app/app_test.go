package app_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/westkit/westnix/internal/adapters/telemetry"
	"github.com/westkit/westnix/internal/app"
	"github.com/westkit/westnix/internal/core/domain"
	"github.com/westkit/westnix/internal/core/ports/mocks"
	"github.com/westkit/westnix/internal/engine/planner"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader     *mocks.MockManifestLoader
	cacheStore *mocks.MockCacheStore
	blobs      *mocks.MockBlobProvider
	fetcher    *mocks.MockBlobFetcher
	prefetcher *mocks.MockPrefetcher
	detector   *mocks.MockModuleDetector
	emitter    *mocks.MockEmitter
	app        *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		loader:     mocks.NewMockManifestLoader(ctrl),
		cacheStore: mocks.NewMockCacheStore(ctrl),
		blobs:      mocks.NewMockBlobProvider(ctrl),
		fetcher:    mocks.NewMockBlobFetcher(ctrl),
		prefetcher: mocks.NewMockPrefetcher(ctrl),
		detector:   mocks.NewMockModuleDetector(ctrl),
		emitter:    mocks.NewMockEmitter(ctrl),
	}
	f.detector.EXPECT().HasModuleDescriptor(gomock.Any(), gomock.Any()).Return(false).AnyTimes()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	plan := planner.New(f.prefetcher, f.detector, telemetry.NewNoop())
	f.app = app.New(f.loader, f.cacheStore, f.blobs, f.fetcher, plan, f.emitter, logger)
	return f
}

func remoteProject(name string) domain.Project {
	return domain.Project{
		Name:     name,
		Path:     name,
		URL:      "https://example.com/" + name,
		Revision: "v1",
	}
}

func entryFor(p domain.Project, hash string) (string, domain.CacheEntry) {
	return domain.CacheKey(p.URL, p.Revision), domain.CacheEntry{URL: p.URL, Rev: p.Revision, Hash: hash}
}

func TestGenerate_SavesExactlyUsedEntries(t *testing.T) {
	f := newFixture(t)

	// The manifest pins B and D. The loaded cache knows A, B and C: A and C
	// must be dropped, D freshly prefetched.
	b := remoteProject("b")
	d := remoteProject("d")
	ws := &domain.Workspace{TopDir: "/ws", ManifestDir: "/ws", Projects: []domain.Project{b, d}}

	keyA, entryA := entryFor(remoteProject("a"), "ha")
	keyB, entryB := entryFor(b, "hb")
	keyC, entryC := entryFor(remoteProject("c"), "hc")
	keyD := domain.CacheKey(d.URL, d.Revision)

	cachePath := filepath.Join("/ws", app.DefaultCacheFile)
	outputPath := filepath.Join("/ws", app.OutputFile)

	f.loader.EXPECT().Load(".").Return(ws, nil)
	f.cacheStore.EXPECT().Load(cachePath).Return(domain.HashCache{
		keyA: entryA, keyB: entryB, keyC: entryC,
	})
	f.blobs.EXPECT().Blobs("/ws", ws.Projects).Return(nil, nil)
	f.prefetcher.EXPECT().Prefetch(gomock.Any(), d.URL, d.Revision).Return("hd", nil)
	f.emitter.EXPECT().Emit(outputPath, gomock.Any()).Return(nil)
	f.cacheStore.EXPECT().Save(cachePath, domain.HashCache{
		keyB: entryB,
		keyD: {URL: d.URL, Rev: d.Revision, Hash: "hd"},
	}).Return(nil)

	require.NoError(t, f.app.Generate(context.Background(), app.GenerateOptions{}))
}

func TestGenerate_CacheFileOverride(t *testing.T) {
	f := newFixture(t)

	ws := &domain.Workspace{TopDir: "/ws", ManifestDir: "/ws"}
	f.loader.EXPECT().Load("/ws/app").Return(ws, nil)
	f.cacheStore.EXPECT().Load("/tmp/custom-cache.json").Return(domain.HashCache{})
	f.blobs.EXPECT().Blobs("/ws", gomock.Any()).Return(nil, nil)
	f.emitter.EXPECT().Emit(filepath.Join("/ws", app.OutputFile), gomock.Any()).Return(nil)
	f.cacheStore.EXPECT().Save("/tmp/custom-cache.json", domain.HashCache{}).Return(nil)

	require.NoError(t, f.app.Generate(context.Background(), app.GenerateOptions{
		StartDir:  "/ws/app",
		CacheFile: "/tmp/custom-cache.json",
	}))
}

func TestGenerate_PrefetchFailureSkipsEmitAndSave(t *testing.T) {
	f := newFixture(t)

	p := remoteProject("p")
	ws := &domain.Workspace{TopDir: "/ws", ManifestDir: "/ws", Projects: []domain.Project{p}}

	f.loader.EXPECT().Load(".").Return(ws, nil)
	f.cacheStore.EXPECT().Load(gomock.Any()).Return(domain.HashCache{})
	f.blobs.EXPECT().Blobs("/ws", gomock.Any()).Return(nil, nil)
	f.prefetcher.EXPECT().
		Prefetch(gomock.Any(), p.URL, p.Revision).
		Return("", zerr.Wrap(domain.ErrPrefetchFailed, "tool exited"))

	err := f.app.Generate(context.Background(), app.GenerateOptions{})
	require.ErrorIs(t, err, domain.ErrPrefetchFailed)
}

func TestGenerate_EmitFailureSkipsSave(t *testing.T) {
	f := newFixture(t)

	p := remoteProject("p")
	ws := &domain.Workspace{TopDir: "/ws", ManifestDir: "/ws", Projects: []domain.Project{p}}
	key, entry := entryFor(p, "hp")

	f.loader.EXPECT().Load(".").Return(ws, nil)
	f.cacheStore.EXPECT().Load(gomock.Any()).Return(domain.HashCache{key: entry})
	f.blobs.EXPECT().Blobs("/ws", gomock.Any()).Return(nil, nil)
	f.emitter.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(zerr.New("disk full"))

	err := f.app.Generate(context.Background(), app.GenerateOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestGenerate_WorkspaceNotFound(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(".").Return(nil, zerr.Wrap(domain.ErrWorkspaceNotFound, "no marker"))

	err := f.app.Generate(context.Background(), app.GenerateOptions{})
	require.ErrorIs(t, err, domain.ErrWorkspaceNotFound)
}

func TestGenerate_GroupFilterNarrowsBlobScan(t *testing.T) {
	f := newFixture(t)

	kept := remoteProject("kept")
	dropped := remoteProject("dropped")
	dropped.Groups = []string{"optional"}
	ws := &domain.Workspace{TopDir: "/ws", ManifestDir: "/ws", Projects: []domain.Project{kept, dropped}}
	key, entry := entryFor(kept, "hk")

	f.loader.EXPECT().Load(".").Return(ws, nil)
	f.cacheStore.EXPECT().Load(gomock.Any()).Return(domain.HashCache{key: entry})
	// The run's filter disables the optional group, so the blob scan never
	// sees the dropped project.
	f.blobs.EXPECT().Blobs("/ws", []domain.Project{kept}).Return(nil, nil)
	f.emitter.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)
	f.cacheStore.EXPECT().Save(gomock.Any(), domain.HashCache{key: entry}).Return(nil)

	require.NoError(t, f.app.Generate(context.Background(), app.GenerateOptions{
		GroupFilter: []string{"-optional"},
	}))
}

func TestBlobs_ListsActiveProjectBlobs(t *testing.T) {
	f := newFixture(t)

	p := remoteProject("hal")
	ws := &domain.Workspace{TopDir: "/ws", ManifestDir: "/ws", Projects: []domain.Project{p}}
	want := []domain.BlobEntry{{Path: "/ws/hal/zephyr/blobs/fw.bin", URL: "https://example.com/fw.bin"}}

	f.loader.EXPECT().Load(".").Return(ws, nil)
	f.blobs.EXPECT().Blobs("/ws", []domain.Project{p}).Return(want, nil)

	got, err := f.app.Blobs(app.GenerateOptions{})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFetchBlobs_ForwardsToFetcher(t *testing.T) {
	f := newFixture(t)

	p := remoteProject("hal")
	ws := &domain.Workspace{TopDir: "/ws", ManifestDir: "/ws", Projects: []domain.Project{p}}
	entries := []domain.BlobEntry{{Path: "/ws/hal/zephyr/blobs/fw.bin", URL: "https://example.com/fw.bin"}}

	f.loader.EXPECT().Load(".").Return(ws, nil)
	f.blobs.EXPECT().Blobs("/ws", gomock.Any()).Return(entries, nil)
	f.fetcher.EXPECT().Fetch(gomock.Any(), entries).Return(nil)

	require.NoError(t, f.app.FetchBlobs(context.Background(), app.GenerateOptions{}))
}
