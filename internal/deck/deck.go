// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package deck implements build mode: composing and running a pandoc
// invocation that turns a Markdown file into a themed beamer PDF. The
// LaTeX template ships as an embedded asset and is materialized verbatim
// into a scratch directory, because pandoc wants a filesystem path.
package deck

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/pdiddy/make-deck/internal/scratch"
	"github.com/pdiddy/make-deck/internal/theme"
	"github.com/pdiddy/make-deck/internal/toolchain"
	"github.com/pdiddy/make-deck/pkg/types"
)

//go:embed template.latex
var beamerTemplate []byte

// dateFmt renders "26 August 2026"; month names are English regardless of
// the host locale.
const dateFmt = "02 January 2006"

// Result describes a finished build.
type Result struct {
	// OutputPath is the PDF pandoc was asked to write.
	OutputPath string

	// Pages is the validated page count; zero when verification was off.
	Pages int
}

// Builder renders Markdown decks through pandoc.
type Builder struct {
	Runner    toolchain.Runner
	Config    types.PandocConfig
	ThemesDir string

	// Out and ErrOut receive pandoc's stdout and stderr streams plus the
	// builder's own status lines.
	Out    io.Writer
	ErrOut io.Writer

	// Now is the clock used for the date metadata field; nil means
	// time.Now. Tests pin it.
	Now func() time.Time
}

// Build runs one full render: validate inputs, discover tools, materialize
// the template, compose the pandoc argument vector, and invoke it. A
// missing saved theme fails before pandoc runs; missing engines fail
// before any temporary file is written.
func (b *Builder) Build(cfg types.BuildConfig) (Result, error) {
	if _, err := os.Stat(cfg.InputPath); err != nil {
		return Result{}, fmt.Errorf("input file %s: %w", cfg.InputPath, err)
	}

	cfg = b.resolveTheme(cfg)

	themeFilePath := ""
	if cfg.ThemeFile != "" {
		themeFilePath = theme.Path(b.ThemesDir, cfg.ThemeFile)
		if _, err := os.Stat(themeFilePath); err != nil {
			return Result{}, fmt.Errorf(
				"saved theme %q not found at %s; import it first with --import-theme",
				cfg.ThemeFile, themeFilePath)
		}
	}

	pandoc, err := toolchain.FindPandoc(b.Runner)
	if err != nil {
		return Result{}, err
	}
	engine, err := toolchain.FindEngine(b.Runner)
	if err != nil {
		return Result{}, err
	}

	dir, err := scratch.New()
	if err != nil {
		return Result{}, err
	}
	defer dir.Remove()

	templatePath, err := dir.WriteFile("template.latex", beamerTemplate)
	if err != nil {
		return Result{}, err
	}

	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	args := composeArgs(cfg, b.Config, engine, templatePath, themeFilePath, now().Format(dateFmt))

	if err := b.Runner.Run(pandoc, args, b.Out, b.ErrOut); err != nil {
		return Result{}, fmt.Errorf("pandoc failed: %w", err)
	}

	res := Result{OutputPath: cfg.OutputPath}
	if cfg.Verify {
		pages, err := verifyPDF(cfg.OutputPath)
		if err != nil {
			return Result{}, fmt.Errorf("verifying %s: %w", cfg.OutputPath, err)
		}
		res.Pages = pages
	}
	return res, nil
}

// resolveTheme fills empty theme fields from the deck's front matter, then
// from the configured default. Malformed front matter only warns; pandoc
// stays the authority on the document itself.
func (b *Builder) resolveTheme(cfg types.BuildConfig) types.BuildConfig {
	if cfg.Theme != "" && cfg.ThemeFile != "" {
		return cfg
	}
	fm, err := readFrontMatter(cfg.InputPath)
	if err != nil {
		fmt.Fprintf(b.ErrOut, "warning: ignoring deck front matter: %v\n", err)
	}
	if cfg.Theme == "" {
		cfg.Theme = fm.Theme
	}
	if cfg.ThemeFile == "" {
		cfg.ThemeFile = fm.ThemeFile
	}
	if cfg.Theme == "" {
		cfg.Theme = b.Config.DefaultTheme
	}
	return cfg
}

// composeArgs builds the ordered pandoc argument vector. The saved-theme
// include is appended after all other flags so it can override earlier
// styling; input and output paths trail as positionals.
func composeArgs(cfg types.BuildConfig, pc types.PandocConfig, engine, templatePath, themeFilePath, date string) []string {
	args := []string{
		"-s",
		"--dpi=" + strconv.Itoa(pc.DPI),
		"--slide-level=" + strconv.Itoa(pc.SlideLevel),
		"--toc",
		"--listings",
		"--shift-heading-level-by=0",
		"--highlight-style=" + pc.HighlightStyle,
		"-t", "beamer",
		"-f", pc.InputFormat,
		"-V", "aspectratio=" + pc.AspectRatio,
		"--pdf-engine", engine,
		"--template", templatePath,
		"-V", "theme=" + cfg.Theme,
		"-M", "date=" + date,
	}
	if themeFilePath != "" {
		args = append(args, "-H", themeFilePath)
	}
	return append(args, cfg.InputPath, "-o", cfg.OutputPath)
}
