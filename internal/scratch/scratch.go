// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scratch manages uniquely-named temporary directories that must
// never outlive the process. Every live directory is tracked in a
// process-wide registry so a signal handler can remove them all before
// os.Exit, which bypasses deferred cleanup.
package scratch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	mu   sync.Mutex
	live = map[string]struct{}{}
)

// Dir is a scoped temporary directory. Remove is idempotent and safe to
// call from both a defer and the signal path.
type Dir struct {
	path string
}

// New creates a fresh scratch directory under the OS temp location and
// registers it for cleanup.
func New() (*Dir, error) {
	path, err := os.MkdirTemp("", "make-deck-")
	if err != nil {
		return nil, fmt.Errorf("creating scratch directory: %w", err)
	}
	mu.Lock()
	live[path] = struct{}{}
	mu.Unlock()
	return &Dir{path: path}, nil
}

// Path returns the directory's absolute path.
func (d *Dir) Path() string { return d.path }

// WriteFile writes data verbatim to a named file inside the directory and
// returns the file's full path.
func (d *Dir) WriteFile(name string, data []byte) (string, error) {
	path := filepath.Join(d.path, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// Remove deletes the directory and everything in it, and unregisters it.
// Calling Remove twice is harmless.
func (d *Dir) Remove() error {
	mu.Lock()
	delete(live, d.path)
	mu.Unlock()
	return os.RemoveAll(d.path)
}

// CleanAll removes every live scratch directory. Called from the signal
// handler on SIGINT/SIGTERM.
func CleanAll() {
	mu.Lock()
	paths := make([]string, 0, len(live))
	for p := range live {
		paths = append(paths, p)
	}
	live = map[string]struct{}{}
	mu.Unlock()

	for _, p := range paths {
		_ = os.RemoveAll(p)
	}
}
