package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce collapses the burst of events editors emit for one save.
const debounce = 100 * time.Millisecond

// Watch reloads path whenever it changes on disk and sends each config that
// parses and validates. Invalid edits are logged and skipped so a typo never
// replaces a working configuration. The directory is watched rather than the
// file so editors that save by rename are handled. The channel is closed
// when ctx is done.
func Watch(ctx context.Context, path string, logger *slog.Logger) (<-chan Config, error) {
	if logger == nil {
		logger = slog.Default()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	out := make(chan Config, 1)
	go func() {
		defer close(out)
		defer w.Close()

		var (
			timer   *time.Timer
			trigger <-chan time.Time
		)
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounce)
				} else {
					timer.Reset(debounce)
				}
				trigger = timer.C

			case <-trigger:
				trigger = nil
				cfg, err := Load(abs)
				if err != nil {
					logger.Warn("config reload rejected", "path", abs, "err", err)
					continue
				}
				logger.Info("config reloaded",
					"path", abs,
					"speed", cfg.Movement.Speed,
					"threshold", cfg.Movement.Threshold)
				select {
				case out <- cfg:
				case <-ctx.Done():
					return
				}

			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher error", "path", abs, "err", err)
			}
		}
	}()

	return out, nil
}
