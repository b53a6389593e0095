package types

// PandocConfig holds the rendering policy passed to pandoc. Every field
// has a default; a config file or environment variable can override any
// of them.
type PandocConfig struct {
	// DefaultTheme is the beamer theme used when neither a flag nor deck
	// front matter names one.
	DefaultTheme string `json:"default_theme" yaml:"default_theme"`

	// DPI is the image resolution passed to pandoc.
	DPI int `json:"dpi" yaml:"dpi"`

	// SlideLevel is the heading level that starts a new slide.
	SlideLevel int `json:"slide_level" yaml:"slide_level"`

	// HighlightStyle is the syntax highlighting style for code listings.
	HighlightStyle string `json:"highlight_style" yaml:"highlight_style"`

	// AspectRatio is the beamer aspectratio variable (e.g. "169" for 16:9).
	AspectRatio string `json:"aspect_ratio" yaml:"aspect_ratio"`

	// InputFormat is the pandoc input format specifier, a Markdown flavor
	// plus extensions.
	InputFormat string `json:"input_format" yaml:"input_format"`
}

// DefaultPandocConfig returns the built-in rendering policy.
func DefaultPandocConfig() PandocConfig {
	return PandocConfig{
		DefaultTheme:   "default",
		DPI:            300,
		SlideLevel:     2,
		HighlightStyle: "tango",
		AspectRatio:    "169",
		InputFormat:    "markdown+smart+emoji",
	}
}
