// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 250 * time.Millisecond

// =============================================================================
// CONFIG WATCHER
// =============================================================================

// Watcher reloads the config file whenever it changes on disk. Editors
// tend to write a file in several steps, so events are debounced and the
// file is only parsed once it has been quiet for the debounce interval.
//
// Successful reloads arrive on Updates and failures on Errors. Both
// channels hold one value; a newer value replaces an unread older one.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger
	fs       *fsnotify.Watcher

	updates chan *Config
	errors  chan error

	closeOnce sync.Once
}

// NewWatcher watches the directory holding path. The directory is watched
// rather than the file so that atomic replace-by-rename saves are seen.
func NewWatcher(path string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	dir := filepath.Dir(absPath)
	if err := fs.Add(dir); err != nil {
		fs.Close()
		return nil, fmt.Errorf("failed to watch config directory %s: %w", dir, err)
	}

	return &Watcher{
		path:     absPath,
		debounce: debounce,
		logger:   logger,
		fs:       fs,
		updates:  make(chan *Config, 1),
		errors:   make(chan error, 1),
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Updates delivers each successfully reloaded configuration. It is closed
// when Run returns.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Errors delivers reload and watch failures. It is closed when Run returns.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Run processes file events until ctx is cancelled or Close is called.
// The underlying file watcher is released when Run returns.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.updates)
	defer close(w.errors)
	defer w.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	w.logger.Debug("config watcher started", slog.String("path", w.path))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}

			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create):
				if timer == nil {
					timer = time.NewTimer(w.debounce)
				} else {
					timer.Reset(w.debounce)
				}
				fire = timer.C
			case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
				w.logger.Warn("config file removed", slog.String("path", w.path))
			}

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("config watcher error", slog.String("error", err.Error()))
			w.sendError(err)
		}
	}
}

// Close stops the watcher. Run returns shortly afterwards.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) reload() {
	cfg, err := LoadFromPath(w.path)
	if err != nil {
		w.logger.Warn("config reload failed", slog.String("path", w.path), slog.String("error", err.Error()))
		w.sendError(err)
		return
	}
	w.logger.Info("config reloaded", slog.String("path", w.path), slog.String("theme", cfg.UI.Theme))

	// Run is the only sender, so after the drain the send cannot block.
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
}

func (w *Watcher) sendError(err error) {
	select {
	case <-w.errors:
	default:
	}
	w.errors <- err
}
