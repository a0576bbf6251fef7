package domain

// BlobEntry is a binary artifact declared by a module descriptor. Blobs are
// linked into the output next to their owning project and can be fetched
// into the workspace for local development.
type BlobEntry struct {
	// Path is the absolute destination path inside the workspace.
	Path string
	// URL the blob is downloaded from.
	URL string
	// SHA256 is the hex digest of the blob contents.
	SHA256 string
}
