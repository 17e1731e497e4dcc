package termui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceDelay collapses bursts of file events into one run.
var DebounceDelay = 100 * time.Millisecond

// Watch calls run with the contents of path once, then again after every change, until ctx is
// done. The parent directory is watched so editors that replace the file are followed.
func Watch(ctx context.Context, path string, run func(data []byte, err error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to initialize watcher: %w", err)
	}
	defer w.Close()

	target := filepath.Clean(path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	run(os.ReadFile(target))

	var debounce *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.NewTimer(DebounceDelay)
			fire = debounce.C
		case <-fire:
			fire = nil
			run(os.ReadFile(target))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			run(nil, fmt.Errorf("watch error: %w", err))
		}
	}
}
