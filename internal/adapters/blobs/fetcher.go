package blobs

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/westkit/westnix/internal/core/domain"
	"github.com/westkit/westnix/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// defaultConcurrency bounds parallel downloads.
const defaultConcurrency = 4

// Fetcher downloads blobs over HTTP and verifies their checksums before
// moving them into place.
type Fetcher struct {
	client *http.Client
	logger ports.Logger
	limit  int
}

// NewFetcher creates a new Fetcher.
func NewFetcher(logger ports.Logger) *Fetcher {
	return &Fetcher{
		client: http.DefaultClient,
		logger: logger,
		limit:  defaultConcurrency,
	}
}

// Fetch downloads every blob that is missing or fails verification. Blobs
// already present with a matching digest are skipped.
func (f *Fetcher) Fetch(ctx context.Context, entries []domain.BlobEntry) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.limit)

	for _, blob := range entries {
		g.Go(func() error {
			return f.fetchOne(ctx, blob)
		})
	}
	return g.Wait()
}

func (f *Fetcher) fetchOne(ctx context.Context, blob domain.BlobEntry) error {
	if f.verified(blob) {
		f.logger.Info(fmt.Sprintf("blob up to date: %s", blob.Path))
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, blob.URL, nil)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to build blob request"), "url", blob.URL)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to download blob"), "url", blob.URL)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(zerr.New("unexpected blob response status"), "url", blob.URL)
		return zerr.With(statusErr, "status", resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(blob.Path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create blob directory"), "path", blob.Path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(blob.Path), ".blob-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temporary blob file"), "path", blob.Path)
	}
	tmpPath := tmp.Name()

	digest := sha256.New()
	if _, err := io.Copy(tmp, io.TeeReader(resp.Body, digest)); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return zerr.With(zerr.Wrap(err, "failed to write blob"), "path", blob.Path)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.With(zerr.Wrap(err, "failed to close blob file"), "path", blob.Path)
	}

	if blob.SHA256 != "" {
		got := hex.EncodeToString(digest.Sum(nil))
		if got != blob.SHA256 {
			_ = os.Remove(tmpPath)
			sumErr := zerr.With(zerr.Wrap(domain.ErrBlobChecksumMismatch, "downloaded blob does not match its declared digest"), "url", blob.URL)
			sumErr = zerr.With(sumErr, "expected", blob.SHA256)
			return zerr.With(sumErr, "got", got)
		}
	}

	if err := os.Rename(tmpPath, blob.Path); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.With(zerr.Wrap(err, "failed to move blob into place"), "path", blob.Path)
	}

	f.logger.Info(fmt.Sprintf("fetched blob: %s", blob.Path))
	return nil
}

// verified reports whether the blob already exists with the declared digest.
// Without a declared digest only existence counts.
func (f *Fetcher) verified(blob domain.BlobEntry) bool {
	file, err := os.Open(blob.Path)
	if err != nil {
		return false
	}
	defer func() { _ = file.Close() }()

	if blob.SHA256 == "" {
		return true
	}

	digest := sha256.New()
	if _, err := io.Copy(digest, file); err != nil {
		return false
	}
	return hex.EncodeToString(digest.Sum(nil)) == blob.SHA256
}
