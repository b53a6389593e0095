// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the make-deck CLI: a convenience
// wrapper that assembles a pandoc invocation to turn Markdown into a
// themed PDF slide deck, and imports color/font themes from PowerPoint
// files for reuse.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/make-deck/internal/deck"
	"github.com/pdiddy/make-deck/internal/logger"
	"github.com/pdiddy/make-deck/internal/scratch"
	"github.com/pdiddy/make-deck/internal/theme"
	"github.com/pdiddy/make-deck/internal/toolchain"
	"github.com/pdiddy/make-deck/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// defaultRunner executes external tools; tests swap in a fake.
var defaultRunner = toolchain.Default

// usageError marks argument problems so main can reprint the usage text
// after the error message.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "make-deck <input.md> <output.pdf>",
		Short: "Build themed PDF slide decks from Markdown",
		Long: `make-deck wraps pandoc to render a Markdown file into a themed beamer PDF
slide deck. The heavy lifting is delegated to pandoc and a TeX engine
(tectonic, lualatex, or xelatex, preferred in that order).

A color/font theme can be extracted from an existing PowerPoint file with
--import-theme and applied to later builds with --theme-file.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initConfig(cmd)
		},
		RunE: runRoot,
	}

	cmd.Flags().String("theme", "", "beamer theme name (default: deck front matter, then config)")
	cmd.Flags().String("theme-file", "", "saved theme to include on top of the base template")
	cmd.Flags().Bool("watch", false, "rebuild whenever the input file changes")
	cmd.Flags().Bool("verify", false, "validate the produced PDF and report its page count")
	cmd.Flags().String("import-theme", "", "extract a theme from a PowerPoint file instead of building")
	cmd.Flags().String("name", "", "theme name for --import-theme (default: derived from the file name)")

	cmd.PersistentFlags().String("config", "", "config file (default: ./make-deck.yaml or ~/.config/make-deck/)")
	cmd.PersistentFlags().Bool("verbose", false, "enable debug output")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &usageError{err}
	})

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func initConfig(cmd *cobra.Command) {
	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("make-deck")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "make-deck"))
		}
	}

	viper.SetEnvPrefix("MAKE_DECK")
	viper.AutomaticEnv()

	pc := types.DefaultPandocConfig()
	viper.SetDefault("themes_dir", "")
	viper.SetDefault("pandoc.default_theme", pc.DefaultTheme)
	viper.SetDefault("pandoc.dpi", pc.DPI)
	viper.SetDefault("pandoc.slide_level", pc.SlideLevel)
	viper.SetDefault("pandoc.highlight_style", pc.HighlightStyle)
	viper.SetDefault("pandoc.aspect_ratio", pc.AspectRatio)
	viper.SetDefault("pandoc.input_format", pc.InputFormat)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		logger.Warn("config file %s not read: %v\n", cfgFile, err)
	}
}

// pandocConfig reads the rendering policy from viper; defaults were set
// in initConfig.
func pandocConfig() types.PandocConfig {
	return types.PandocConfig{
		DefaultTheme:   viper.GetString("pandoc.default_theme"),
		DPI:            viper.GetInt("pandoc.dpi"),
		SlideLevel:     viper.GetInt("pandoc.slide_level"),
		HighlightStyle: viper.GetString("pandoc.highlight_style"),
		AspectRatio:    viper.GetString("pandoc.aspect_ratio"),
		InputFormat:    viper.GetString("pandoc.input_format"),
	}
}

func themesDir() (string, error) {
	if dir := viper.GetString("themes_dir"); dir != "" {
		return dir, nil
	}
	return theme.DefaultDir()
}

func runRoot(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger.Init(verbose)

	if importPath, _ := cmd.Flags().GetString("import-theme"); importPath != "" {
		return runImport(cmd, args, importPath)
	}
	return runBuild(cmd, args)
}

func runBuild(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return &usageError{errors.New("requires input and output arguments")}
	}
	if len(args) > 2 {
		return &usageError{fmt.Errorf("unexpected argument %q", args[2])}
	}
	if cmd.Flags().Changed("name") {
		return &usageError{errors.New("--name is only valid with --import-theme")}
	}

	dir, err := themesDir()
	if err != nil {
		return err
	}

	themeName, _ := cmd.Flags().GetString("theme")
	themeFile, _ := cmd.Flags().GetString("theme-file")
	watch, _ := cmd.Flags().GetBool("watch")
	verify, _ := cmd.Flags().GetBool("verify")
	cfg := types.BuildConfig{
		InputPath:  args[0],
		OutputPath: args[1],
		Theme:      themeName,
		ThemeFile:  themeFile,
		Watch:      watch,
		Verify:     verify,
	}

	b := &deck.Builder{
		Runner:    defaultRunner,
		Config:    pandocConfig(),
		ThemesDir: dir,
		Out:       os.Stdout,
		ErrOut:    os.Stderr,
	}
	logger.Debug("themes dir: %s\n", dir)

	if cfg.Watch {
		return b.Watch(cmd.Context(), cfg)
	}

	res, err := b.Build(cfg)
	if err != nil {
		return err
	}
	if res.Pages > 0 {
		logger.Info("Created %s (%d pages)\n", res.OutputPath, res.Pages)
	} else {
		logger.Info("Created %s\n", res.OutputPath)
	}
	return nil
}

func runImport(cmd *cobra.Command, args []string, importPath string) error {
	if len(args) > 0 {
		return &usageError{fmt.Errorf("unexpected argument %q with --import-theme", args[0])}
	}
	for _, f := range []string{"theme", "theme-file", "watch", "verify"} {
		if cmd.Flags().Changed(f) {
			return &usageError{fmt.Errorf("--%s cannot be combined with --import-theme", f)}
		}
	}

	dir, err := themesDir()
	if err != nil {
		return err
	}
	name, _ := cmd.Flags().GetString("name")

	im := &theme.Importer{
		Runner:    defaultRunner,
		ThemesDir: dir,
		ErrOut:    os.Stderr,
	}
	logger.Debug("themes dir: %s\n", dir)

	path, err := im.Import(types.ImportConfig{SourcePath: importPath, Name: name})
	if err != nil {
		return err
	}
	logger.Info("Saved theme %s\n", path)
	return nil
}

func main() {
	// os.Exit bypasses deferred cleanup, so live scratch directories are
	// tracked in a registry the signal handler drains.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		scratch.CleanAll()
		os.Exit(1)
	}()

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		logger.Error("Error: %v\n", err)
		var ue *usageError
		if errors.As(err, &ue) {
			fmt.Fprint(os.Stderr, root.UsageString())
		}
		os.Exit(1)
	}
}
