// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package deck

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pdiddy/make-deck/pkg/types"
)

// debounce absorbs the burst of events editors emit on save before a
// rebuild starts.
const debounce = 200 * time.Millisecond

// Watch builds the deck once, then rebuilds it whenever the input file
// changes, until ctx is canceled. The watch is on the input's directory
// rather than the file itself: editors typically replace the file on save,
// which would drop a file-level watch. Rebuild failures are reported and
// watching continues.
func (b *Builder) Watch(ctx context.Context, cfg types.BuildConfig) error {
	abs, err := filepath.Abs(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", cfg.InputPath, err)
	}

	b.buildAndReport(cfg)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	fmt.Fprintf(b.Out, "watching %s for changes\n", cfg.InputPath)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if filepath.Base(event.Name) != filepath.Base(abs) {
				continue
			}
			time.Sleep(debounce)
			b.buildAndReport(cfg)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(b.ErrOut, "watch error: %v\n", err)

		case <-ctx.Done():
			return nil
		}
	}
}

// buildAndReport runs one build and prints its outcome without stopping
// the watch on failure.
func (b *Builder) buildAndReport(cfg types.BuildConfig) {
	res, err := b.Build(cfg)
	if err != nil {
		fmt.Fprintf(b.ErrOut, "rebuild failed: %v\n", err)
		return
	}
	if res.Pages > 0 {
		fmt.Fprintf(b.Out, "rebuilt %s (%d pages)\n", res.OutputPath, res.Pages)
	} else {
		fmt.Fprintf(b.Out, "rebuilt %s\n", res.OutputPath)
	}
}
