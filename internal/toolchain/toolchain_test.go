// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package toolchain

import (
	"errors"
	"io"
	"strings"
	"testing"
)

// mockRunner records calls and returns configured responses.
type mockRunner struct {
	availableBins map[string]bool // binary -> whether LookPath succeeds
	runFunc       func(name string, args []string, stdout, stderr io.Writer) error
	runCalls      int
}

func (m *mockRunner) LookPath(file string) (string, error) {
	if m.availableBins[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockRunner) Run(name string, args []string, stdout, stderr io.Writer) error {
	m.runCalls++
	if m.runFunc != nil {
		return m.runFunc(name, args, stdout, stderr)
	}
	return nil
}

func TestFindEngine(t *testing.T) {
	tests := []struct {
		name    string
		bins    map[string]bool
		want    string
		wantErr bool
	}{
		{
			name: "tectonic preferred when all present",
			bins: map[string]bool{"tectonic": true, "lualatex": true, "xelatex": true},
			want: "tectonic",
		},
		{
			name: "lualatex fallback when tectonic missing",
			bins: map[string]bool{"lualatex": true, "xelatex": true},
			want: "lualatex",
		},
		{
			name: "xelatex last resort",
			bins: map[string]bool{"xelatex": true},
			want: "xelatex",
		},
		{
			name:    "none available",
			bins:    map[string]bool{},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &mockRunner{availableBins: tt.bins}
			got, err := FindEngine(r)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				for _, e := range []string{"tectonic", "lualatex", "xelatex"} {
					if !strings.Contains(err.Error(), e) {
						t.Errorf("error should list candidate %q, got: %v", e, err)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got engine %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFindPandoc(t *testing.T) {
	r := &mockRunner{availableBins: map[string]bool{"pandoc": true}}
	name, err := FindPandoc(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "pandoc" {
		t.Errorf("got %q, want %q", name, "pandoc")
	}

	r = &mockRunner{availableBins: map[string]bool{}}
	if _, err := FindPandoc(r); err == nil {
		t.Fatal("expected error when pandoc missing")
	} else if !strings.Contains(err.Error(), "pandoc.org") {
		t.Errorf("error should carry an install hint, got: %v", err)
	}
}

func TestFindPython(t *testing.T) {
	r := &mockRunner{availableBins: map[string]bool{"python3": true}}
	name, err := FindPython(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "python3" {
		t.Errorf("got %q, want %q", name, "python3")
	}

	r = &mockRunner{availableBins: map[string]bool{}}
	if _, err := FindPython(r); err == nil {
		t.Fatal("expected error when python3 missing")
	} else if !strings.Contains(err.Error(), "install") {
		t.Errorf("error should carry an install hint, got: %v", err)
	}
}
