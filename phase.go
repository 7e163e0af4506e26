// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// phase.go - Sweep phase derivation for the shimmer effect.
//
// The phase is a float in [0,1) describing how far the highlight band has
// traveled through one sweep cycle. It comes from one of two sources:
//   - wall-clock time elapsed since the first shimmer call in this process,
//     divided by the sweep period (Runs, Text)
//   - an explicit caller-supplied value, reduced to [0,1) (RunsAtPhase,
//     TextAtPhase)
package shimmer

import (
	"math"
	"sync"
	"time"
)

// =============================================================================
// PROCESS ANIMATION CLOCK
// =============================================================================

var (
	// processStart anchors all wall-clock phases. Set on first use, read-only
	// afterward; every Effect in the process shares it so concurrent shimmer
	// lines stay in step.
	processStart     time.Time
	processStartOnce sync.Once
)

// processElapsed returns the time elapsed since the first shimmer call.
func processElapsed() time.Duration {
	processStartOnce.Do(func() {
		processStart = time.Now()
	})
	return time.Since(processStart)
}

// Phase returns the current wall-clock sweep phase of the default effect,
// in [0,1). Useful for callers that want to display or log the sweep
// position alongside the styled text.
func Phase() float64 {
	return defaultEffect.phaseNow()
}

// phaseNow derives the wall-clock phase for this effect's sweep period.
// A non-positive period disables the animation (phase is always 0).
func (e *Effect) phaseNow() float64 {
	if e.sweepPeriod <= 0 {
		return 0
	}
	return mod1(processElapsed().Seconds() / e.sweepPeriod.Seconds())
}

// =============================================================================
// PHASE NORMALIZATION
// =============================================================================

// mod1 reduces x to [0,1) using Euclidean modulo, so negative inputs wrap
// to the equivalent forward position rather than producing a negative phase.
// Non-finite inputs degrade to 0.
func mod1(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	m := math.Mod(x, 1.0)
	if m < 0 {
		m++
	}
	// A tiny negative remainder can round up to exactly 1.0 after the
	// adjustment; fold it back onto the start of the cycle.
	if m >= 1 {
		return 0
	}
	return m
}
