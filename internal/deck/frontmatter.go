// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package deck

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// frontMatter holds the theme fields a deck may pin in its leading YAML
// block. Everything else in the block belongs to pandoc.
type frontMatter struct {
	Theme     string `yaml:"theme"`
	ThemeFile string `yaml:"theme-file"`
}

const fmDelim = "---"

// readFrontMatter extracts the leading YAML block of a Markdown file, if
// any. A file without front matter yields the zero value and no error; a
// malformed block yields an error the caller may downgrade to a warning.
func readFrontMatter(path string) (frontMatter, error) {
	var fm frontMatter

	data, err := os.ReadFile(path)
	if err != nil {
		return fm, fmt.Errorf("reading deck: %w", err)
	}

	lines := strings.SplitAfter(string(data), "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r\n") != fmDelim {
		return fm, nil
	}

	var block strings.Builder
	closed := false
	for _, line := range lines[1:] {
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed == fmDelim || trimmed == "..." {
			closed = true
			break
		}
		block.WriteString(line)
	}
	if !closed {
		return fm, fmt.Errorf("unterminated front matter block")
	}

	if err := yaml.Unmarshal([]byte(block.String()), &fm); err != nil {
		return frontMatter{}, fmt.Errorf("parsing front matter: %w", err)
	}
	return fm, nil
}
