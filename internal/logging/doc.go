// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging provides structured logging for the shimmer demo.
//
// The package wraps zap with convenience functions. By default it is
// silent: the demo draws on stdout and unsolicited log lines would tear
// the frame. Logging only activates when a level is set explicitly or
// through the SHIMMER_LOG_LEVEL environment variable, and all output goes
// to stderr so the rendered animation stays clean.
//
// # Log Levels
//
//   - Debug: per-reload detail, capability probes
//   - Info: lifecycle events (startup, config reloads, shutdown)
//   - Warn: non-fatal issues (reload skipped, invalid config ignored)
//   - Error: startup failures
//
// # Usage
//
// Initialize at startup, flush at exit:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// Log with structured fields:
//
//	logging.Info("config reloaded",
//	    zap.String("path", path),
//	    zap.Int("fps", cfg.Demo.FPS),
//	)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use once Initialize has
// returned. The underlying zap logger handles synchronization.
package logging
