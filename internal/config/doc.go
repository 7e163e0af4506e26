// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for the
// shimmer demo binary.
//
// Supports TOML configuration with sensible defaults, environment variable
// overrides, and validation. The core shimmer library never reads this
// package; only cmd/shimmer-demo does.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - DemoConfig: Demo appearance and animation settings
//   - LogConfig: Logging verbosity
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (SHIMMER_*)
//   - ~/.shimmer/config.toml
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	text := cfg.Demo.Text
//	fps := cfg.Demo.FPS
//
// Watch for live edits:
//
//	w, err := config.Watch(ctx, path, func(cfg *config.Config) {
//	    // re-apply settings
//	})
package config
