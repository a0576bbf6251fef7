// Package domain contains the core types for westnix.
package domain

// Project is one source entry of the resolved manifest.
type Project struct {
	// Name identifies the project within the manifest.
	Name string
	// Path is the workspace-relative checkout directory.
	Path string
	// URL is the git remote; empty for purely local sources.
	URL string
	// Revision is the pinned git revision. Meaningful only when URL is set.
	Revision string
	// Groups the project belongs to. Projects without groups are always active.
	Groups []string
}

// Remote reports whether the project is fetched from a git remote.
func (p Project) Remote() bool {
	return p.URL != ""
}

// Workspace describes a discovered west-style workspace.
type Workspace struct {
	// TopDir is the absolute workspace root (the directory holding .west).
	TopDir string
	// ManifestDir is the absolute directory containing the manifest file.
	// The generated expression and the hash cache live next to it.
	ManifestDir string
	// Filter is the group filter from the workspace configuration.
	Filter GroupFilter
	// Projects in manifest order, with the manifest repository first.
	Projects []Project
}

// ActiveProjects returns the projects that survive the group filter, in
// manifest order. Extra filter tokens are applied after the workspace's own,
// so they win on conflict.
func (w *Workspace) ActiveProjects(extra ...string) []Project {
	filter := make(GroupFilter, 0, len(w.Filter)+len(extra))
	filter = append(filter, w.Filter...)
	filter = append(filter, extra...)

	active := make([]Project, 0, len(w.Projects))
	for _, p := range w.Projects {
		if filter.Active(p) {
			active = append(active, p)
		}
	}
	return active
}
