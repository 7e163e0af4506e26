// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// capability.go - Terminal true-color capability detection.
//
// USABILITY: color degradation on restricted terminals
//
// The shimmer effect picks one of two rendering paths: a smooth 24-bit RGB
// blend, or a quantized 3-tier ANSI fallback. Which path applies is decided
// once per process from environment signals and cached; the environment is
// never re-read afterward.
//
// Precedence (first match wins):
//   - NO_COLOR present (any value)          -> no true color
//   - CLICOLOR_FORCE present and not "0"    -> true color
//   - CLICOLOR set to "0"                   -> no true color
//   - COLORTERM contains truecolor or 24bit -> true color
//   - otherwise                             -> no true color
//
// See https://no-color.org/ and https://bixense.com/clicolors/ for the
// conventions these variables follow.
package shimmer

import (
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// =============================================================================
// TRUE COLOR DETECTION
// =============================================================================

var (
	// trueColorEnabled caches the capability decision
	trueColorEnabled bool
	trueColorOnce    sync.Once
)

// TrueColorSupported reports whether the terminal advertises 24-bit color
// support. The decision is computed once per process and cached.
func TrueColorSupported() bool {
	trueColorOnce.Do(func() {
		trueColorEnabled = detectTrueColor()
	})
	return trueColorEnabled
}

// detectTrueColor inspects the environment. Called at most once.
func detectTrueColor() bool {
	// NO_COLOR takes precedence; presence alone disables, even when empty.
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	// CLICOLOR_FORCE overrides terminal hints unless set to the literal "0".
	if v, ok := os.LookupEnv("CLICOLOR_FORCE"); ok && v != "0" {
		return true
	}

	// CLICOLOR=0 requests basic color only.
	if os.Getenv("CLICOLOR") == "0" {
		return false
	}

	ct := strings.ToLower(os.Getenv("COLORTERM"))
	return strings.Contains(ct, "truecolor") || strings.Contains(ct, "24bit")
}

// ForceTrueColor overrides capability detection for the rest of the process.
// Intended for tests and for CLI flags that let users pin a rendering path.
func ForceTrueColor(enabled bool) {
	trueColorEnabled = enabled
	// Reset the once so it doesn't re-compute
	trueColorOnce = sync.Once{}
	trueColorOnce.Do(func() {
		trueColorEnabled = enabled
	})
}

// resetTrueColor clears the cached decision so the next TrueColorSupported
// call re-reads the environment. Only used by tests.
func resetTrueColor() {
	trueColorOnce = sync.Once{}
}

// =============================================================================
// BACKGROUND DARKNESS
// =============================================================================

var (
	// darkBackground caches the background query needed to resolve
	// lipgloss.AdaptiveColor foregrounds
	darkBackground     bool
	darkBackgroundOnce sync.Once
)

// backgroundIsDark reports whether the terminal background is dark. Queried
// from termenv once per process; adaptive base colors resolve against it.
func backgroundIsDark() bool {
	darkBackgroundOnce.Do(func() {
		darkBackground = termenv.HasDarkBackground()
	})
	return darkBackground
}

// forceDarkBackground overrides background detection. Only used by tests.
func forceDarkBackground(dark bool) {
	darkBackground = dark
	darkBackgroundOnce = sync.Once{}
	darkBackgroundOnce.Do(func() {
		darkBackground = dark
	})
}

// resetDarkBackground clears the cached background query. Only used by tests.
func resetDarkBackground() {
	darkBackgroundOnce = sync.Once{}
}

// =============================================================================
// TERMENV BRIDGE
// =============================================================================

// Profile returns the termenv color profile consistent with the cached
// capability decision, for callers that integrate with termenv directly.
// When detection denies true color the reported profile is capped at
// ANSI256 even if termenv itself would claim more.
func Profile() termenv.Profile {
	if TrueColorSupported() {
		return termenv.TrueColor
	}
	p := termenv.ColorProfile()
	if p == termenv.TrueColor {
		return termenv.ANSI256
	}
	return p
}
