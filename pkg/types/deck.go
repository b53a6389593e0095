package types

// BuildConfig describes one build-mode invocation: a Markdown source
// rendered to a themed PDF deck. At most one of BuildConfig/ImportConfig
// is populated per run.
type BuildConfig struct {
	// InputPath is the Markdown source file.
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputPath is the PDF file to produce.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Theme is the beamer theme name. Empty means: resolve from deck
	// front matter, then fall back to the configured default.
	Theme string `json:"theme,omitempty" yaml:"theme,omitempty"`

	// ThemeFile names a saved theme to include on top of the base
	// template. Empty means no saved theme.
	ThemeFile string `json:"theme_file,omitempty" yaml:"theme_file,omitempty"`

	// Watch rebuilds the deck whenever the input file changes.
	Watch bool `json:"watch" yaml:"watch"`

	// Verify validates the produced PDF after a successful render.
	Verify bool `json:"verify" yaml:"verify"`
}

// ImportConfig describes one import-mode invocation: a color/font theme
// extracted from a PowerPoint file and saved for later builds.
type ImportConfig struct {
	// SourcePath is the PowerPoint file to extract from.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// Name is the explicit theme name. Empty means: derive from the
	// source filename.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}
