// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFrontMatter(t *testing.T) {
	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "deck.md")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	tests := []struct {
		name    string
		content string
		want    frontMatter
		wantErr bool
	}{
		{
			name:    "theme and theme-file",
			content: "---\ntitle: Q3 Review\ntheme: metropolis\ntheme-file: corp\n---\n# Hi\n",
			want:    frontMatter{Theme: "metropolis", ThemeFile: "corp"},
		},
		{
			name:    "block closed by ellipsis",
			content: "---\ntheme: madrid\n...\n# Hi\n",
			want:    frontMatter{Theme: "madrid"},
		},
		{
			name:    "no front matter",
			content: "# Hi\n\nplain deck\n",
			want:    frontMatter{},
		},
		{
			name:    "unrelated keys ignored",
			content: "---\ntitle: X\nauthor: Y\n---\n# Hi\n",
			want:    frontMatter{},
		},
		{
			name:    "horizontal rule mid-document is not front matter",
			content: "# Hi\n\n---\n\nmore\n",
			want:    frontMatter{},
		},
		{
			name:    "unterminated block",
			content: "---\ntheme: madrid\n# Hi\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			content: "---\ntheme: [unclosed\n---\n# Hi\n",
			wantErr: true,
		},
		{
			name:    "empty file",
			content: "",
			want:    frontMatter{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readFrontMatter(write(t, tt.content))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadFrontMatterMissingFile(t *testing.T) {
	_, err := readFrontMatter(filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)
}
