package domain

// SourceKind classifies where a link operation's content comes from.
type SourceKind int

const (
	// SourceLocal is a directory that already exists in the workspace.
	SourceLocal SourceKind = iota
	// SourceGit is a git repository pinned to a revision.
	SourceGit
	// SourceBlob is a single downloadable file with a known checksum.
	SourceBlob
)

// Source describes the origin of a link operation.
type Source struct {
	Kind SourceKind

	// Path is the source location relative to the emitted expression file.
	// Set for SourceLocal only.
	Path string

	// URL, Revision and Hash parameterize the fetch directive for SourceGit.
	// SourceBlob uses URL and Hash (a hex sha256) only.
	URL      string
	Revision string
	Hash     string
}

// LinkOp materializes one source at one destination of the output layout.
type LinkOp struct {
	// Dest is the workspace-relative destination path.
	Dest string
	// IsDir selects a directory overlay; otherwise a single-file symlink.
	IsDir bool
	// Source is where the content comes from.
	Source Source
}

// Plan is the ordered result of resolving a workspace: one operation per
// active project, then one per blob. Plans live for a single run and are
// never persisted.
type Plan struct {
	Ops []LinkOp
	// Env is the optional environment export metadata. Nil disables the
	// export fragment entirely.
	Env *EnvExport
}

// EnvExport lists the base directory and module roots written into the
// output's environment file. Paths are workspace-root-relative and rendered
// against the output placeholder at emit time.
type EnvExport struct {
	Base    PlaceholderPath
	Modules []PlaceholderPath
}
