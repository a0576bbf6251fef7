// Package manifest loads west workspaces: the marker directory, the
// workspace configuration and the manifest file itself.
package manifest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-ini/ini"
	"github.com/westkit/westnix/internal/core/domain"
	"github.com/westkit/westnix/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// markerDir marks the workspace root.
	markerDir = ".west"
	// configName is the workspace configuration file inside the marker.
	configName = "config"
	// defaultManifestFile is used when the configuration names no other.
	defaultManifestFile = "west.yml"
	// defaultRevision applies to remote projects without an explicit or
	// defaulted revision.
	defaultRevision = "master"
)

// Loader implements ports.ManifestLoader.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load walks up from startDir to the directory containing the workspace
// marker, reads the workspace configuration and parses the manifest it
// points at.
func (l *Loader) Load(startDir string) (*domain.Workspace, error) {
	topDir, err := findTopDir(startDir)
	if err != nil {
		return nil, err
	}

	cfg, err := readConfig(filepath.Join(topDir, markerDir, configName))
	if err != nil {
		return nil, err
	}

	manifestDir := filepath.Join(topDir, cfg.manifestPath)
	manifestFile := filepath.Join(manifestDir, cfg.manifestFile)
	data, err := os.ReadFile(manifestFile) //nolint:gosec // Path is derived from the discovered workspace
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", manifestFile)
	}

	var root westManifest
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse manifest"), "path", manifestFile)
	}

	projects, err := resolveProjects(root.Manifest, cfg.manifestPath)
	if err != nil {
		return nil, err
	}

	filter, err := domain.ParseGroupFilter(cfg.groupFilter)
	if err != nil {
		return nil, err
	}

	return &domain.Workspace{
		TopDir:      topDir,
		ManifestDir: manifestDir,
		Filter:      filter,
		Projects:    projects,
	}, nil
}

// findTopDir walks up from startDir until it finds the marker directory.
func findTopDir(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve start directory")
	}

	for {
		if info, err := os.Stat(filepath.Join(dir, markerDir)); err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached the filesystem root
			notFoundErr := zerr.Wrap(domain.ErrWorkspaceNotFound, "no .west marker between start directory and filesystem root")
			return "", zerr.With(notFoundErr, "start_dir", startDir)
		}
		dir = parent
	}
}

type workspaceConfig struct {
	manifestPath string
	manifestFile string
	groupFilter  string
}

// readConfig reads the workspace configuration, an INI file as written by
// west init. A missing file falls back to defaults; a present but unreadable
// one is an error.
func readConfig(path string) (workspaceConfig, error) {
	cfg := workspaceConfig{manifestFile: defaultManifestFile}

	file, err := ini.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, zerr.With(zerr.Wrap(err, "failed to read workspace config"), "path", path)
	}

	section := file.Section("manifest")
	cfg.manifestPath = section.Key("path").String()
	if v := section.Key("file").String(); v != "" {
		cfg.manifestFile = v
	}
	cfg.groupFilter = section.Key("group-filter").String()
	return cfg, nil
}

// invalidManifest builds a structural validation error with the sentinel in
// its chain, so callers can match it with errors.Is.
func invalidManifest(reason string) error {
	return zerr.Wrap(domain.ErrInvalidManifest, reason)
}

// resolveProjects converts the parsed manifest into domain projects,
// validating west's structural rules. The manifest repository itself comes
// first so it is linked before anything that may overlay into it.
func resolveProjects(m manifestSection, manifestPath string) ([]domain.Project, error) {
	remotes := make(map[string]string, len(m.Remotes))
	for _, remote := range m.Remotes {
		if remote.Name == "" || remote.URLBase == "" {
			return nil, invalidManifest("remote missing name or url-base")
		}
		if _, dup := remotes[remote.Name]; dup {
			return nil, zerr.With(invalidManifest("duplicate remote"), "remote", remote.Name)
		}
		remotes[remote.Name] = remote.URLBase
	}

	defaultRev := m.Defaults.Revision
	if defaultRev == "" {
		defaultRev = defaultRevision
	}

	selfPath := m.Self.Path
	if selfPath == "" {
		selfPath = manifestPath
	}

	projects := make([]domain.Project, 0, len(m.Projects)+1)
	seenNames := make(map[string]bool)
	seenPaths := make(map[string]bool)

	if selfPath != "" {
		projects = append(projects, domain.Project{Name: "manifest", Path: selfPath})
		seenNames["manifest"] = true
		seenPaths[selfPath] = true
	}

	for _, dto := range m.Projects {
		project, err := resolveProject(dto, m.Defaults.Remote, remotes, defaultRev)
		if err != nil {
			return nil, err
		}
		if seenNames[project.Name] {
			return nil, zerr.With(invalidManifest("duplicate project name"), "project", project.Name)
		}
		if seenPaths[project.Path] {
			return nil, zerr.With(invalidManifest("duplicate project path"), "path", project.Path)
		}
		seenNames[project.Name] = true
		seenPaths[project.Path] = true
		projects = append(projects, project)
	}
	return projects, nil
}

func resolveProject(dto projectDTO, defaultRemote string, remotes map[string]string, defaultRev string) (domain.Project, error) {
	if dto.Name == "" {
		return domain.Project{}, invalidManifest("project missing name")
	}
	if dto.URL != "" && (dto.Remote != "" || dto.RepoPath != "") {
		invErr := invalidManifest("url and remote/repo-path are mutually exclusive")
		return domain.Project{}, zerr.With(invErr, "project", dto.Name)
	}

	url := dto.URL
	if url == "" {
		remoteName := dto.Remote
		if remoteName == "" {
			remoteName = defaultRemote
		}
		if remoteName != "" {
			base, ok := remotes[remoteName]
			if !ok {
				invErr := zerr.With(invalidManifest("unknown remote"), "project", dto.Name)
				return domain.Project{}, zerr.With(invErr, "remote", remoteName)
			}
			repoPath := dto.RepoPath
			if repoPath == "" {
				repoPath = dto.Name
			}
			url = strings.TrimSuffix(base, "/") + "/" + repoPath
		} else if dto.RepoPath != "" {
			invErr := invalidManifest("repo-path without a remote")
			return domain.Project{}, zerr.With(invErr, "project", dto.Name)
		}
	}

	path := dto.Path
	if path == "" {
		path = dto.Name
	}

	revision := dto.Revision
	if revision == "" {
		revision = defaultRev
	}
	if url == "" {
		// Purely local source: a revision has no meaning.
		revision = ""
	}

	return domain.Project{
		Name:     dto.Name,
		Path:     path,
		URL:      url,
		Revision: revision,
		Groups:   dto.Groups,
	}, nil
}
