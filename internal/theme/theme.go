// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package theme implements saved-theme naming and the import pipeline that
// extracts a color/font theme from a PowerPoint file. The extractor itself
// is an opaque collaborator: a Python script shipped as an embedded asset,
// run with (source, name, themes dir) and expected to print exactly one
// line, the absolute path of the theme file it wrote.
package theme

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/make-deck/internal/scratch"
	"github.com/pdiddy/make-deck/internal/toolchain"
	"github.com/pdiddy/make-deck/pkg/types"
)

//go:embed extract_theme.py
var extractScript []byte

// Ext is the extension of saved theme files under the themes directory.
const Ext = ".latex"

// DefaultDir returns the per-user themes directory, ~/.make_deck/themes.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".make_deck", "themes"), nil
}

// Sanitize turns an arbitrary name into a filesystem-safe theme name:
// lowercase, runs of non-alphanumerics collapsed to a single underscore,
// no leading or trailing underscore. Sanitizing is idempotent.
func Sanitize(name string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
		default:
			pending = true
		}
	}
	return b.String()
}

// DeriveName picks the theme name for an import: the explicit name when
// given, otherwise the source file's basename with its extension stripped.
// Either way the result is sanitized.
func DeriveName(cfg types.ImportConfig) string {
	name := cfg.Name
	if name == "" {
		base := filepath.Base(cfg.SourcePath)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return Sanitize(name)
}

// Path returns where the named saved theme lives under the themes
// directory. The name is sanitized before use.
func Path(themesDir, name string) string {
	return filepath.Join(themesDir, Sanitize(name)+Ext)
}

// Importer runs the theme extraction pipeline.
type Importer struct {
	Runner    toolchain.Runner
	ThemesDir string

	// ErrOut receives the extractor's stderr stream and status lines.
	ErrOut io.Writer
}

// Import extracts a theme from the configured PowerPoint file and returns
// the path of the saved theme file as printed by the extractor.
func (im *Importer) Import(cfg types.ImportConfig) (string, error) {
	if _, err := os.Stat(cfg.SourcePath); err != nil {
		return "", fmt.Errorf("import file %s: %w", cfg.SourcePath, err)
	}

	name := DeriveName(cfg)
	if name == "" {
		return "", fmt.Errorf("cannot derive a usable theme name from %q; pass --name", cfg.SourcePath)
	}

	python, err := toolchain.FindPython(im.Runner)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(im.ThemesDir, 0o755); err != nil {
		return "", fmt.Errorf("creating themes directory %s: %w", im.ThemesDir, err)
	}

	dir, err := scratch.New()
	if err != nil {
		return "", err
	}
	defer dir.Remove()

	script, err := dir.WriteFile("extract_theme.py", extractScript)
	if err != nil {
		return "", err
	}

	// Stdout carries the extractor's single-line contract: the path of
	// the theme file it wrote. Stderr streams through to the user.
	var out bytes.Buffer
	args := []string{script, cfg.SourcePath, name, im.ThemesDir}
	if err := im.Runner.Run(python, args, &out, im.ErrOut); err != nil {
		return "", fmt.Errorf("theme extraction failed: %w", err)
	}

	path := strings.TrimSpace(out.String())
	if path == "" {
		return "", fmt.Errorf("theme extractor exited cleanly but printed no output path")
	}
	return path, nil
}
