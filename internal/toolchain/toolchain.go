// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package toolchain implements external tool discovery and execution.
// Discovery is presence-on-PATH only: no tool is invoked or version-probed,
// and results are not cached across runs.
package toolchain

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
)

const (
	binPandoc = "pandoc"
	binPython = "python3"
)

// engines lists the supported PDF rendering engines in strict preference
// order; the first one found on PATH wins.
var engines = []string{"tectonic", "lualatex", "xelatex"}

// engineHints maps each engine to an install suggestion for the error
// message shown when none is found.
var engineHints = map[string]string{
	"tectonic": "cargo install tectonic (or brew install tectonic)",
	"lualatex": "install TeX Live (texlive-luatex)",
	"xelatex":  "install TeX Live (texlive-xetex)",
}

// Runner abstracts PATH lookup and child process execution so tests can
// substitute a fake without invoking real binaries.
type Runner interface {
	// LookPath reports where the named binary lives on PATH.
	LookPath(file string) (string, error)

	// Run executes the command with the child's stdout and stderr wired
	// to the given writers, blocking until it exits. A nil writer
	// discards that stream.
	Run(name string, args []string, stdout, stderr io.Writer) error
}

// osRunner is the production Runner backed by os/exec.
type osRunner struct{}

func (o *osRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osRunner) Run(name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// Default is the production runner used by the CLI.
var Default Runner = &osRunner{}

// FindPandoc verifies the document converter is on PATH and returns its
// binary name. Absence is fatal for a build before any other work starts.
func FindPandoc(r Runner) (string, error) {
	if _, err := r.LookPath(binPandoc); err != nil {
		return "", fmt.Errorf(
			"pandoc not found on PATH; install it first (see https://pandoc.org/installing.html)")
	}
	return binPandoc, nil
}

// FindEngine picks the first available PDF rendering engine in preference
// order. When none is found the error names every candidate with an
// install hint.
func FindEngine(r Runner) (string, error) {
	for _, e := range engines {
		if _, err := r.LookPath(e); err == nil {
			return e, nil
		}
	}

	hints := make([]string, 0, len(engines))
	for _, e := range engines {
		hints = append(hints, fmt.Sprintf("%s (%s)", e, engineHints[e]))
	}
	return "", fmt.Errorf("no PDF engine found on PATH; install one of: %s",
		strings.Join(hints, ", "))
}

// FindPython verifies the scripting interpreter needed by theme import is
// on PATH and returns its binary name.
func FindPython(r Runner) (string, error) {
	if _, err := r.LookPath(binPython); err != nil {
		return "", fmt.Errorf(
			"python3 not found on PATH; install it first (e.g. apt install python3 or brew install python)")
	}
	return binPython, nil
}
