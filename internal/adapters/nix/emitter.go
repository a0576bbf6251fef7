// Package nix renders the resolved link plan as a Nix build expression.
package nix

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/westkit/westnix/internal/core/domain"
	"github.com/westkit/westnix/internal/core/ports"
	"go.trai.ch/zerr"
)

// envFile is where the export fragment writes its variables, relative to the
// output placeholder.
const envFile = "env"

const preamble = `{ pkgs ? import <nixpkgs> { } }:

let
  inherit (pkgs) fetchgit fetchurl runCommand;
  lndir = "${pkgs.xorg.lndir}/bin/lndir";
in
runCommand "west-workspace" { } ''
  mkdir -p $out
`

// Emitter implements ports.Emitter.
type Emitter struct {
	logger ports.Logger
}

// NewEmitter creates a new Emitter.
func NewEmitter(logger ports.Logger) *Emitter {
	return &Emitter{logger: logger}
}

// Emit writes the rendered plan to p. The write goes through a temp file in
// the same directory plus a rename, so a failed run never leaves a truncated
// expression behind. When the rendered bytes match the existing file the
// write is skipped entirely to keep timestamps stable.
func (e *Emitter) Emit(p string, plan *domain.Plan) error {
	rendered := Render(plan)

	if existing, err := os.ReadFile(filepath.Clean(p)); err == nil {
		if xxhash.Sum64(existing) == xxhash.Sum64(rendered) {
			e.logger.Info("expression unchanged, skipping write")
			return nil
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(p), ".west-nix-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temporary expression file"), "path", p)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(rendered); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return zerr.With(zerr.Wrap(err, "failed to write expression"), "path", p)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.With(zerr.Wrap(err, "failed to close expression file"), "path", p)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.With(zerr.Wrap(err, "failed to set expression file mode"), "path", p)
	}
	if err := os.Rename(tmpPath, p); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.With(zerr.Wrap(err, "failed to move expression into place"), "path", p)
	}
	return nil
}

// Render produces the expression bytes for a plan. The output is a pure
// function of the plan, so identical input yields identical bytes.
func Render(plan *domain.Plan) []byte {
	var b strings.Builder
	b.WriteString("# Generated by westnix. Do not edit.\n")
	b.WriteString(preamble)

	for _, op := range plan.Ops {
		writeOp(&b, op)
	}
	if plan.Env != nil {
		writeEnv(&b, plan.Env)
	}

	b.WriteString("''\n")
	return []byte(b.String())
}

func writeOp(b *strings.Builder, op domain.LinkOp) {
	if op.IsDir {
		fmt.Fprintf(b, "  mkdir -p %s\n", outPath(op.Dest))
		fmt.Fprintf(b, "  ${lndir} -silent %s %s\n", sourceExpr(op.Source), outPath(op.Dest))
		return
	}
	fmt.Fprintf(b, "  mkdir -p %s\n", outPath(path.Dir(op.Dest)))
	fmt.Fprintf(b, "  ln -s %s %s\n", sourceExpr(op.Source), outPath(op.Dest))
}

func writeEnv(b *strings.Builder, env *domain.EnvExport) {
	modules := make([]string, len(env.Modules))
	for i, module := range env.Modules {
		modules[i] = placeholder(module)
	}
	b.WriteString("  {\n")
	fmt.Fprintf(b, "    echo ZEPHYR_BASE=%s\n", placeholder(env.Base))
	fmt.Fprintf(b, "    echo ZEPHYR_MODULES=%s\n", strings.Join(modules, `\;`))
	fmt.Fprintf(b, "  } > $out/%s\n", envFile)
}

// sourceExpr renders the Nix expression a link operation reads from. The
// interpolated store path is additionally single-quoted for the shell.
func sourceExpr(src domain.Source) string {
	switch src.Kind {
	case domain.SourceGit:
		return fmt.Sprintf("'${fetchgit { url = %s; rev = %s; branchName = %s; %s }}'",
			domain.NixString(src.URL),
			domain.NixString(src.Revision),
			domain.NixString(domain.BranchName),
			hashAttr(src.Hash))
	case domain.SourceBlob:
		return fmt.Sprintf("'${fetchurl { url = %s; %s }}'",
			domain.NixString(src.URL), hashAttr(src.Hash))
	default:
		// Path concatenation instead of a bare path literal: the string part
		// takes normal escaping, which a literal would not.
		return fmt.Sprintf("'${./. + %s}'", domain.NixString("/"+src.Path))
	}
}

// hashAttr picks the fetcher attribute matching the hash format: SRI hashes
// carry their algorithm prefix, bare hex digests are sha256.
func hashAttr(hash string) string {
	if strings.Contains(hash, "-") {
		return fmt.Sprintf("hash = %s;", domain.NixString(hash))
	}
	return fmt.Sprintf("sha256 = %s;", domain.NixString(hash))
}

// outPath renders a workspace-relative destination as a shell word rooted at
// the output placeholder.
func outPath(p string) string {
	return placeholder(domain.PlaceholderPath(p))
}

// placeholder prefixes a workspace-root-relative path with the output
// placeholder, quoting everything but the placeholder itself.
func placeholder(p domain.PlaceholderPath) string {
	if p == "." || p == "" {
		return `"$out"`
	}
	return `"$out"` + indent(domain.ShellQuote("/"+string(p)))
}

// indent escapes literal text for inclusion in a Nix indented string, where
// a doubled single quote and ${ are the only active sequences.
func indent(s string) string {
	s = strings.ReplaceAll(s, "''", "'''")
	return strings.ReplaceAll(s, "${", "''${")
}
