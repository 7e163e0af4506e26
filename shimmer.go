// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// shimmer.go - Core shimmer effect: styled run production and compaction.
//
// The effect maps every character of the input to a highlight intensity
// (distance from the sweep center through the raised-cosine band), resolves
// the intensity to a concrete style, and merges consecutive characters that
// share an identical style into a single run. Callers receive the minimal
// run sequence; concatenating the fragments always reproduces the input.
package shimmer

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// =============================================================================
// EFFECT CONFIGURATION
// =============================================================================

const (
	// DefaultSweepPeriod is how long one full left-to-right sweep takes in
	// wall-clock mode.
	DefaultSweepPeriod = 2 * time.Second

	// DefaultBandHalfWidth is the maximum distance from the sweep center, in
	// characters, that still receives highlight.
	DefaultBandHalfWidth = 5

	// DefaultPadding extends the sweep axis by this many virtual positions on
	// each side of the text, so the band visibly enters and exits instead of
	// snapping between edges.
	DefaultPadding = 10

	// highlightAttenuation scales the blend amount so a full-intensity
	// character keeps a trace of the base hue instead of washing out.
	highlightAttenuation = 0.9
)

// Fallback tiers for terminals without 24-bit color, quantizing intensity
// into three visible steps.
const (
	fallbackDimMax = 0.2
	fallbackMidMax = 0.6

	fallbackDim = "8"  // ANSI dark gray
	fallbackMid = "7"  // ANSI gray
	fallbackHot = "15" // ANSI bright white
)

// Run is a contiguous text fragment sharing one exact style. Consecutive
// runs returned by this package always differ in style.
type Run struct {
	Text  string
	Style lipgloss.Style
}

// Render returns the fragment with its style applied.
func (r Run) Render() string {
	return r.Style.Render(r.Text)
}

// Effect is a configured shimmer instance. The zero value is not usable;
// construct with New. Effects are immutable after construction and safe for
// concurrent use.
type Effect struct {
	sweepPeriod   time.Duration
	bandHalfWidth int
	padding       int
	highlight     colorful.Color
	intensity     []float64
	trueColor     *bool // nil means use process-wide detection
}

// Option configures an Effect.
type Option func(*Effect)

// WithSweepPeriod sets the duration of one full sweep in wall-clock mode.
// Non-positive periods disable the animation (phase stays 0).
func WithSweepPeriod(d time.Duration) Option {
	return func(e *Effect) { e.sweepPeriod = d }
}

// WithBandHalfWidth sets the highlight band half-width in characters.
// Non-positive widths yield zero intensity everywhere.
func WithBandHalfWidth(n int) Option {
	return func(e *Effect) { e.bandHalfWidth = n }
}

// WithPadding sets the number of virtual positions on each side of the text.
// Negative values are treated as 0.
func WithPadding(n int) Option {
	return func(e *Effect) { e.padding = n }
}

// WithHighlight sets the color the base foreground blends toward at full
// intensity. Accepts hex ("#ffffff") or ANSI index ("15") tokens; defaults
// to pure white.
func WithHighlight(c lipgloss.Color) Option {
	return func(e *Effect) {
		r, g, b := colorTokenRGB(string(c))
		e.highlight = colorful.Color{
			R: float64(r) / 255.0,
			G: float64(g) / 255.0,
			B: float64(b) / 255.0,
		}
	}
}

// WithTrueColor pins the rendering path for this effect, bypassing the
// process-wide capability detection.
func WithTrueColor(enabled bool) Option {
	return func(e *Effect) { e.trueColor = &enabled }
}

// New constructs an Effect, precomputing its intensity table.
func New(opts ...Option) *Effect {
	e := &Effect{
		sweepPeriod:   DefaultSweepPeriod,
		bandHalfWidth: DefaultBandHalfWidth,
		padding:       DefaultPadding,
		highlight:     colorful.Color{R: 1, G: 1, B: 1},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.padding < 0 {
		e.padding = 0
	}
	e.intensity = buildIntensityTable(e.bandHalfWidth)
	return e
}

// defaultEffect backs the package-level entry points.
var defaultEffect = New()

// =============================================================================
// ENTRY POINTS
// =============================================================================

// Runs renders text with the default effect, deriving the sweep position
// from wall-clock time since first use. The returned fragments concatenate
// to the input text.
func Runs(text string, base lipgloss.Style) []Run {
	return defaultEffect.Runs(text, base)
}

// RunsAtPhase renders text with the default effect at an explicit phase,
// for callers driving the animation from their own frame ticks. The phase
// is reduced to [0,1); negative and out-of-range values wrap.
func RunsAtPhase(text string, base lipgloss.Style, phase float64) []Run {
	return defaultEffect.RunsAtPhase(text, base, phase)
}

// Text renders text with the default effect and returns the styled runs
// joined into a single string.
func Text(text string, base lipgloss.Style) string {
	return defaultEffect.Text(text, base)
}

// TextAtPhase is Text at an explicit phase.
func TextAtPhase(text string, base lipgloss.Style, phase float64) string {
	return defaultEffect.TextAtPhase(text, base, phase)
}

// Runs renders text at the current wall-clock phase.
func (e *Effect) Runs(text string, base lipgloss.Style) []Run {
	return e.render(text, base, e.phaseNow())
}

// RunsAtPhase renders text at an explicit phase, reduced to [0,1).
func (e *Effect) RunsAtPhase(text string, base lipgloss.Style, phase float64) []Run {
	return e.render(text, base, mod1(phase))
}

// Text renders text at the current wall-clock phase as one styled string.
func (e *Effect) Text(text string, base lipgloss.Style) string {
	return joinRuns(e.Runs(text, base))
}

// TextAtPhase renders text at an explicit phase as one styled string.
func (e *Effect) TextAtPhase(text string, base lipgloss.Style, phase float64) string {
	return joinRuns(e.RunsAtPhase(text, base, phase))
}

// =============================================================================
// RENDERING
// =============================================================================

// styleKey identifies a computed style for run merging. Two characters
// belong to the same run iff their keys are equal; the key holds the
// resolved foreground and modifiers with the base's own values folded
// in, so it never distinguishes styles that render identically.
type styleKey struct {
	fg    string
	bold  bool
	faint bool
}

// render walks the text once, assigning each character a style from its
// distance to the sweep center and flushing a run whenever the style
// changes. phase must already be normalized to [0,1).
func (e *Effect) render(text string, base lipgloss.Style, phase float64) []Run {
	chars := []rune(text)
	if len(chars) == 0 {
		return nil
	}

	// The sweep travels an extended axis covering the padding on both
	// sides; character i sits at virtual position i+padding.
	period := len(chars) + 2*e.padding
	center := int(phase * float64(period))

	trueColor := e.trueColorEnabled()
	baseR, baseG, baseB := resolveForeground(base.GetForeground())
	baseBold, baseFaint := base.GetBold(), base.GetFaint()

	var (
		runs    []Run
		pending strings.Builder
		current styleKey
		style   lipgloss.Style
		started bool
	)

	for i, ch := range chars {
		distance := i + e.padding - center
		if distance < 0 {
			distance = -distance
		}

		key := e.styleKeyFor(e.intensityFor(distance), trueColor, baseR, baseG, baseB)
		// Runs merge on computed style, and a modifier the base already
		// carries makes the effect's a no-op: fold it into the key.
		key.bold = key.bold || baseBold
		key.faint = key.faint || baseFaint
		if !started {
			current, style, started = key, applyKey(base, key), true
		} else if key != current {
			runs = append(runs, Run{Text: pending.String(), Style: style})
			pending.Reset()
			current, style = key, applyKey(base, key)
		}
		pending.WriteRune(ch)
	}

	return append(runs, Run{Text: pending.String(), Style: style})
}

// styleKeyFor maps an intensity level to the style key for the active
// rendering path.
func (e *Effect) styleKeyFor(level float64, trueColor bool, baseR, baseG, baseB uint8) styleKey {
	if trueColor {
		amount := clamp01(level) * highlightAttenuation
		r, g, b := blendToward(baseR, baseG, baseB, e.highlight, amount)
		return styleKey{fg: rgbHex(r, g, b), bold: level > 0}
	}

	switch {
	case level < fallbackDimMax:
		return styleKey{fg: fallbackDim, faint: true}
	case level < fallbackMidMax:
		return styleKey{fg: fallbackMid}
	default:
		return styleKey{fg: fallbackHot, bold: true}
	}
}

// applyKey derives the concrete style from the base, preserving whatever
// unrelated attributes the caller set (background, underline, padding).
func applyKey(base lipgloss.Style, key styleKey) lipgloss.Style {
	s := base.Foreground(lipgloss.Color(key.fg))
	if key.bold {
		s = s.Bold(true)
	}
	if key.faint {
		s = s.Faint(true)
	}
	return s
}

// trueColorEnabled resolves the rendering path: a per-effect override wins,
// otherwise the process-wide cached detection applies.
func (e *Effect) trueColorEnabled() bool {
	if e.trueColor != nil {
		return *e.trueColor
	}
	return TrueColorSupported()
}

// joinRuns renders each run and concatenates the results.
func joinRuns(runs []Run) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Render())
	}
	return sb.String()
}
