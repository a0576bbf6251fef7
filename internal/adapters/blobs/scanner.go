// Package blobs scans module descriptors for binary artifacts and fetches
// them into the workspace.
package blobs

import (
	"os"
	"path/filepath"

	"github.com/westkit/westnix/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// descriptorPath is the fixed location of a module descriptor inside a
	// checked-out project tree.
	descriptorPath = "zephyr/module.yml"
	// blobDir is where fetched blobs live inside a project tree.
	blobDir = "zephyr/blobs"
)

// moduleDescriptor mirrors the subset of the module.yml schema we consume.
type moduleDescriptor struct {
	Blobs []blobDTO `yaml:"blobs"`
}

type blobDTO struct {
	Path   string `yaml:"path"`
	URL    string `yaml:"url"`
	SHA256 string `yaml:"sha256"`
}

// Scanner locates module descriptors in checked-out project trees. It
// implements both ports.BlobProvider and ports.ModuleDetector.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// HasModuleDescriptor reports whether the project's checkout declares a
// module descriptor.
func (s *Scanner) HasModuleDescriptor(topDir string, project domain.Project) bool {
	info, err := os.Stat(filepath.Join(topDir, project.Path, descriptorPath))
	return err == nil && !info.IsDir()
}

// Blobs returns the blob entries declared by the given projects, in project
// order. Projects without a descriptor, and descriptors without a blobs
// section, contribute nothing.
func (s *Scanner) Blobs(topDir string, projects []domain.Project) ([]domain.BlobEntry, error) {
	var entries []domain.BlobEntry
	for _, project := range projects {
		data, err := os.ReadFile(filepath.Join(topDir, project.Path, descriptorPath)) //nolint:gosec // Paths come from the parsed manifest
		if err != nil {
			continue
		}

		var desc moduleDescriptor
		if err := yaml.Unmarshal(data, &desc); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to parse module descriptor"), "project", project.Name)
		}

		for _, blob := range desc.Blobs {
			if blob.URL == "" || blob.Path == "" {
				continue
			}
			entries = append(entries, domain.BlobEntry{
				Path:   filepath.Join(topDir, project.Path, blobDir, blob.Path),
				URL:    blob.URL,
				SHA256: blob.SHA256,
			})
		}
	}
	return entries, nil
}
