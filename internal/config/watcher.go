// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// watcher.go - Live config reload for the shimmer demo.
//
// Watches the config file's directory (editors replace files via rename, so
// watching the file itself would miss atomic saves) and reloads on changes
// to the file. A rate limiter paces editor write bursts: reloads never run
// more than once per interval, but no change is dropped, so the last save
// always wins.
package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// reloadInterval caps how often file changes trigger a reload.
const reloadInterval = 500 * time.Millisecond

// Watcher reloads a config file when it changes on disk.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	limiter  *rate.Limiter
	onChange func(*Config)
	cancel   context.CancelFunc
	done     chan struct{}
}

// Watch starts watching path and invokes onChange with the freshly loaded
// config after each change. Invalid intermediate states (half-written files)
// are skipped; the previous config stays active. Close the returned Watcher
// to stop. The callback runs on the watcher goroutine.
func Watch(ctx context.Context, path string, onChange func(*Config)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file: atomic saves recreate the file.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)

	w := &Watcher{
		path:     filepath.Clean(path),
		watcher:  fsw,
		limiter:  rate.NewLimiter(rate.Every(reloadInterval), 1),
		onChange: onChange,
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	go w.processEvents(ctx)

	return w, nil
}

// Close stops watching and waits for the event goroutine to exit.
func (w *Watcher) Close() error {
	w.cancel()
	err := w.watcher.Close()
	<-w.done
	return err
}

// processEvents handles file system events until the context is canceled.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			// Wait rather than drop: a truncate-then-write save delivers two
			// events, and dropping the second would leave the stale content
			// applied forever.
			if err := w.limiter.Wait(ctx); err != nil {
				return
			}
			w.reload()

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the demo keeps its current config.
		}
	}
}

// reload re-reads the config file and hands it to the callback. Load errors
// are swallowed: a save mid-edit shouldn't kill the running demo.
func (w *Watcher) reload() {
	cfg, err := LoadFromPath(w.path)
	if err != nil {
		return
	}
	w.onChange(cfg)
}
