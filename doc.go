// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package shimmer renders an animated highlight that sweeps across a line of
// terminal text, for busy/loading indicators in TUI applications.
//
// A band of brightened color moves left to right across the characters and
// loops continuously. The package is a pure styling layer: it maps
// (text, base style, time or phase) to a sequence of styled runs and leaves
// painting, frame timing, and layout to the caller (typically lipgloss and
// bubbletea).
//
// # Key Types
//
//   - Run: a contiguous text fragment plus the lipgloss.Style applied to it
//   - Effect: a configured shimmer instance (sweep period, band width, padding)
//   - Option: functional options for New
//
// # Entry Points
//
// Wall-clock driven (phase derived from time since first use):
//
//	runs := shimmer.Runs("Loading...", baseStyle)
//	line := shimmer.Text("Loading...", baseStyle)
//
// Frame driven (caller supplies the phase, e.g. from a bubbletea tick):
//
//	runs := shimmer.RunsAtPhase("Loading...", baseStyle, phase)
//	line := shimmer.TextAtPhase("Loading...", baseStyle, phase)
//
// # Color Handling
//
// On terminals with 24-bit color support the base foreground is blended
// toward the highlight color per character, producing a smooth gradient. On
// restricted terminals the effect degrades to three ANSI tiers (dim gray,
// gray, bold white) so the sweep stays visible.
//
// True-color support is detected once per process from NO_COLOR,
// CLICOLOR_FORCE, CLICOLOR, and COLORTERM, in that order of precedence. Use
// ForceTrueColor to override detection (e.g. in tests or behind a CLI flag).
//
// # Concurrency
//
// All functions are safe for concurrent use. The only shared state is a pair
// of process-wide caches (animation start time, color capability) guarded by
// sync.Once; every call returns immediately and performs no I/O beyond the
// one-time environment reads.
package shimmer
