// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// watchTimeout is generous because CI filesystems deliver fsnotify events
// with wildly varying latency.
const watchTimeout = 5 * time.Second

// waitForText reads reloaded configs until one carries the wanted demo text.
// Platforms may deliver more than one event per save, so intermediate reloads
// are tolerated.
func waitForText(t *testing.T, changes <-chan *Config, want string) {
	t.Helper()
	deadline := time.After(watchTimeout)
	for {
		select {
		case cfg := <-changes:
			if cfg.Demo.Text == want {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for reload with Demo.Text = %q", want)
		}
	}
}

func TestConfig_WatcherDetectsChanges(t *testing.T) {
	clearShimmerEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, SaveTOML(Default(), path))

	changes := make(chan *Config, 4)
	w, err := Watch(context.Background(), path, func(cfg *Config) {
		changes <- cfg
	})
	require.NoError(t, err)
	defer w.Close()

	updated := Default()
	updated.Demo.Text = "Reloaded"
	require.NoError(t, SaveTOML(updated, path))

	waitForText(t, changes, "Reloaded")
}

func TestConfig_WatcherIgnoresSiblingFiles(t *testing.T) {
	clearShimmerEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, SaveTOML(Default(), path))

	changes := make(chan *Config, 4)
	w, err := Watch(context.Background(), path, func(cfg *Config) {
		changes <- cfg
	})
	require.NoError(t, err)
	defer w.Close()

	// Touching another file in the watched directory must not fire the
	// callback or consume the reload budget.
	sibling := Default()
	sibling.Demo.Text = "Sibling"
	require.NoError(t, SaveTOML(sibling, filepath.Join(dir, "other.toml")))

	select {
	case cfg := <-changes:
		t.Fatalf("unexpected reload from sibling file (Demo.Text = %q)", cfg.Demo.Text)
	case <-time.After(300 * time.Millisecond):
	}

	// A real change still gets through.
	updated := Default()
	updated.Demo.Text = "Real change"
	require.NoError(t, SaveTOML(updated, path))

	waitForText(t, changes, "Real change")
}

func TestConfig_WatcherSkipsInvalidFile(t *testing.T) {
	clearShimmerEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, SaveTOML(Default(), path))

	changes := make(chan *Config, 4)
	w, err := Watch(context.Background(), path, func(cfg *Config) {
		changes <- cfg
	})
	require.NoError(t, err)
	defer w.Close()

	// A save that fails validation is swallowed; the demo keeps running on
	// its current config.
	bad := Default()
	bad.Demo.FPS = 9999
	require.NoError(t, SaveTOML(bad, path))

	select {
	case cfg := <-changes:
		t.Fatalf("unexpected reload from invalid file (FPS = %d)", cfg.Demo.FPS)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestConfig_WatcherClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, SaveTOML(Default(), path))

	w, err := Watch(context.Background(), path, func(*Config) {})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- w.Close() }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(watchTimeout):
		t.Fatal("Close did not return")
	}
}

func TestConfig_WatcherContextCancelStops(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, SaveTOML(Default(), path))

	ctx, cancel := context.WithCancel(context.Background())
	w, err := Watch(ctx, path, func(*Config) {})
	require.NoError(t, err)
	defer w.Close()

	cancel()

	select {
	case <-w.done:
	case <-time.After(watchTimeout):
		t.Fatal("event loop did not stop after context cancel")
	}
}

func TestConfig_WatcherMissingDirectory(t *testing.T) {
	_, err := Watch(context.Background(), filepath.Join(t.TempDir(), "missing", "config.toml"), func(*Config) {})
	require.Error(t, err)
}
