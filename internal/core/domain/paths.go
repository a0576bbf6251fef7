package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// PlaceholderPath is a path under the build output, stored relative to the
// workspace root. The emitter prefixes it with the output placeholder once
// the final store location is known.
type PlaceholderPath string

// RelativeSourcePath expresses a local project's on-disk location relative
// to the directory the generated expression lives in, since the expression
// is evaluated relative to its own location. The result always uses forward
// slashes.
func RelativeSourcePath(topDir, manifestDir, projectPath string) (string, error) {
	rel, err := filepath.Rel(manifestDir, filepath.Join(topDir, projectPath))
	if err != nil {
		relErr := zerr.Wrap(err, "local source is not reachable from the manifest directory")
		relErr = zerr.With(relErr, "manifest_dir", manifestDir)
		return "", zerr.With(relErr, "project_path", projectPath)
	}
	return filepath.ToSlash(rel), nil
}

// PlaceholderRelative expresses an absolute path relative to the workspace
// root. Paths outside the root are a configuration error: falling back to an
// absolute path would leak the build machine's layout into the output and
// break reproducibility.
func PlaceholderRelative(topDir, abs string) (PlaceholderPath, error) {
	rel, err := filepath.Rel(topDir, abs)
	if err == nil && (rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))) {
		err = ErrPathOutsideWorkspace
	}
	if err != nil {
		relErr := zerr.Wrap(err, "cannot express path relative to the workspace root")
		relErr = zerr.With(relErr, "top_dir", topDir)
		return "", zerr.With(relErr, "path", abs)
	}
	return PlaceholderPath(filepath.ToSlash(rel)), nil
}
