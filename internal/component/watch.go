package component

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/roach88/relpredict/internal/record"
)

// Watch monitors path and calls onChange with the reloaded components each
// time the file is written or replaced. It runs until ctx is cancelled.
//
// The parent directory is watched rather than the file, so atomic saves
// (write a temp file, rename it over path) keep being seen.
//
// If a reload fails the errors are logged and onChange is not called; the
// caller keeps whatever it last received.
func Watch(ctx context.Context, l *Loader, path string, onChange func([]record.Record)) error {
	path = filepath.Clean(path)
	if _, err := os.Stat(path); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	slog.Info("watching component file", "path", path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				slog.Info("component file moved away, waiting for it to return", "path", path)
				continue
			}
			// A rename onto path shows up as Create.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			components, errs := l.LoadFile(path)
			if len(errs) > 0 {
				slog.Error("component reload failed", "path", path, "error", errors.Join(errs...))
				continue
			}

			slog.Info("component file reloaded", "path", path, "components", len(components))
			onChange(components)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("component watcher error", "error", err)
		}
	}
}
