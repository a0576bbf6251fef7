package domain

import "go.trai.ch/zerr"

var (
	// ErrWorkspaceNotFound is returned when no workspace marker directory is
	// found between the start directory and the filesystem root.
	ErrWorkspaceNotFound = zerr.New("workspace not found")

	// ErrInvalidManifest is returned when the manifest violates a structural
	// rule (duplicate names, conflicting remote specifications, ...).
	ErrInvalidManifest = zerr.New("invalid manifest")

	// ErrInvalidGroupFilter is returned for filter tokens that do not start
	// with '+' or '-'.
	ErrInvalidGroupFilter = zerr.New("invalid group filter")

	// ErrPrefetchFailed is returned when the external prefetch tool exits
	// non-zero or reports no usable hash.
	ErrPrefetchFailed = zerr.New("prefetch failed")

	// ErrPathOutsideWorkspace is returned when a path that must be expressed
	// relative to the workspace root lies outside of it.
	ErrPathOutsideWorkspace = zerr.New("path outside workspace")

	// ErrBlobChecksumMismatch is returned when a downloaded blob does not
	// match its declared digest.
	ErrBlobChecksumMismatch = zerr.New("blob checksum mismatch")
)
