// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger provides colored level printers for the CLI surface.
// Internal packages report status through injected io.Writers; only the
// command layer colors its output.
package logger

import (
	"os"

	"github.com/fatih/color"
)

// Info prints success and progress lines in green to stdout.
var Info = color.New(color.FgGreen).PrintfFunc()

var (
	warnf  = color.New(color.FgHiMagenta).FprintfFunc()
	errorf = color.New(color.FgRed).FprintfFunc()
)

// Warn prints cautionary lines in magenta to stderr.
func Warn(format string, a ...any) {
	warnf(os.Stderr, format, a...)
}

// Error prints failure lines in red to stderr.
func Error(format string, a ...any) {
	errorf(os.Stderr, format, a...)
}

// Debug prints trace lines in cyan to stderr when enabled via Init;
// otherwise it is a no-op.
var Debug func(format string, a ...any) = func(string, ...any) {}

// Init enables or disables debug output.
func Init(verbose bool) {
	if verbose {
		debugf := color.New(color.FgCyan).FprintfFunc()
		Debug = func(format string, a ...any) {
			debugf(os.Stderr, format, a...)
		}
	} else {
		Debug = func(string, ...any) {}
	}
}
