package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the file at path whenever it is written or replaced and
// passes each valid result to onChange. Invalid edits are logged and the
// previous config stays in effect. Watching stops when ctx is done.
//
// onChange runs on the watcher goroutine.
func Watch(ctx context.Context, path string, log *slog.Logger, onChange func(Config)) error {
	if log == nil {
		log = slog.Default()
	}
	log = log.With("component", "config")

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	// Editors often replace the file instead of writing it in place, so
	// watch the directory and filter by name.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return fmt.Errorf("watch config: %w", err)
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				cfg, err := Load(abs)
				if err != nil {
					log.Error("config reload failed", "err", err)
					continue
				}
				log.Info("config reloaded", "path", abs)
				onChange(cfg)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Error("config watcher", "err", err)
			}
		}
	}()
	return nil
}
