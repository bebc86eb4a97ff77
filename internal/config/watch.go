package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads path whenever it is written or replaced and passes every
// valid result to onChange. Invalid files are reported to onError and the
// previous config stays in effect. Watch blocks until ctx is done.
//
// The parent directory is watched rather than the file, so editors that save
// by renaming a temp file over the original are picked up.
func Watch(ctx context.Context, path string, onChange func(GameConfig), onError func(error)) error {
	if onError == nil {
		onError = func(error) {}
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: cannot create watcher: %w", err)
	}
	defer w.Close() //nolint:errcheck // Best-effort cleanup

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("config: cannot watch %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			cfg, err := ReadFile(abs)
			if err != nil {
				onError(err)
				continue
			}
			onChange(cfg)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			onError(fmt.Errorf("config: watcher: %w", err))
		}
	}
}
