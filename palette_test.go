// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shimmer

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// =============================================================================
// ANSI PALETTE TESTS
// =============================================================================

func TestANSIIndexRGB(t *testing.T) {
	tests := []struct {
		name    string
		idx     int
		r, g, b uint8
	}{
		{"black", 0, 0, 0, 0},
		{"red", 1, 170, 0, 0},
		{"yellow", 3, 170, 85, 0},
		{"gray", 7, 170, 170, 170},
		{"dark gray", 8, 85, 85, 85},
		{"bright red", 9, 255, 85, 85},
		{"white", 15, 255, 255, 255},
		{"cube origin", 16, 0, 0, 0},
		{"cube blue", 21, 0, 0, 255},
		{"cube green", 46, 0, 255, 0},
		{"cube red", 196, 255, 0, 0},
		{"cube white", 231, 255, 255, 255},
		{"gray ramp start", 232, 8, 8, 8},
		{"gray ramp end", 255, 238, 238, 238},
		{"out of range high", 256, 128, 128, 128},
		{"out of range negative", -1, 128, 128, 128},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, g, b := ansiIndexRGB(tc.idx)
			if r != tc.r || g != tc.g || b != tc.b {
				t.Errorf("ansiIndexRGB(%d) = (%d, %d, %d), want (%d, %d, %d)",
					tc.idx, r, g, b, tc.r, tc.g, tc.b)
			}
		})
	}
}

func TestColorTokenRGB(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		r, g, b uint8
	}{
		{"hex lowercase", "#ff8800", 255, 136, 0},
		{"hex uppercase", "#FF8800", 255, 136, 0},
		{"hex short form", "#fff", 255, 255, 255},
		{"ansi index", "12", 85, 85, 255},
		{"cube index", "21", 0, 0, 255},
		{"whitespace trimmed", " 7 ", 170, 170, 170},
		{"empty", "", 128, 128, 128},
		{"invalid hex", "#zzzzzz", 128, 128, 128},
		{"not a number", "bogus", 128, 128, 128},
		{"index out of range", "300", 128, 128, 128},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, g, b := colorTokenRGB(tc.token)
			if r != tc.r || g != tc.g || b != tc.b {
				t.Errorf("colorTokenRGB(%q) = (%d, %d, %d), want (%d, %d, %d)",
					tc.token, r, g, b, tc.r, tc.g, tc.b)
			}
		})
	}
}

// =============================================================================
// FOREGROUND RESOLUTION TESTS
// =============================================================================

func TestResolveForegroundBasic(t *testing.T) {
	tests := []struct {
		name    string
		fg      lipgloss.TerminalColor
		r, g, b uint8
	}{
		{"nil", nil, 128, 128, 128},
		{"no color", lipgloss.NoColor{}, 128, 128, 128},
		{"hex", lipgloss.Color("#102030"), 16, 32, 48},
		{"named ansi", lipgloss.Color("1"), 170, 0, 0},
		{"ansi color type", lipgloss.ANSIColor(8), 85, 85, 85},
		{"unparseable token", lipgloss.Color("chartreuse"), 128, 128, 128},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, g, b := resolveForeground(tc.fg)
			if r != tc.r || g != tc.g || b != tc.b {
				t.Errorf("resolveForeground(%v) = (%d, %d, %d), want (%d, %d, %d)",
					tc.fg, r, g, b, tc.r, tc.g, tc.b)
			}
		})
	}
}

func TestResolveForegroundUnsetStyle(t *testing.T) {
	r, g, b := resolveForeground(lipgloss.NewStyle().GetForeground())
	if r != 128 || g != 128 || b != 128 {
		t.Errorf("unset foreground = (%d, %d, %d), want neutral gray (128, 128, 128)", r, g, b)
	}
}

func TestResolveForegroundAdaptive(t *testing.T) {
	t.Cleanup(resetDarkBackground)

	fg := lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"}

	forceDarkBackground(true)
	if r, g, b := resolveForeground(fg); r != 255 || g != 255 || b != 255 {
		t.Errorf("dark background adaptive = (%d, %d, %d), want (255, 255, 255)", r, g, b)
	}

	forceDarkBackground(false)
	if r, g, b := resolveForeground(fg); r != 0 || g != 0 || b != 0 {
		t.Errorf("light background adaptive = (%d, %d, %d), want (0, 0, 0)", r, g, b)
	}
}

func TestResolveForegroundComplete(t *testing.T) {
	t.Cleanup(resetTrueColor)

	fg := lipgloss.CompleteColor{TrueColor: "#0000ff", ANSI256: "21", ANSI: "4"}

	ForceTrueColor(true)
	if r, g, b := resolveForeground(fg); r != 0 || g != 0 || b != 255 {
		t.Errorf("complete color (true color) = (%d, %d, %d), want (0, 0, 255)", r, g, b)
	}
}

func TestResolveForegroundCompleteAdaptive(t *testing.T) {
	t.Cleanup(resetTrueColor)
	t.Cleanup(resetDarkBackground)

	fg := lipgloss.CompleteAdaptiveColor{
		Light: lipgloss.CompleteColor{TrueColor: "#111111", ANSI256: "233", ANSI: "0"},
		Dark:  lipgloss.CompleteColor{TrueColor: "#eeeeee", ANSI256: "255", ANSI: "15"},
	}

	ForceTrueColor(true)
	forceDarkBackground(true)
	if r, g, b := resolveForeground(fg); r != 0xee || g != 0xee || b != 0xee {
		t.Errorf("complete adaptive (dark) = (%d, %d, %d), want (238, 238, 238)", r, g, b)
	}

	forceDarkBackground(false)
	if r, g, b := resolveForeground(fg); r != 0x11 || g != 0x11 || b != 0x11 {
		t.Errorf("complete adaptive (light) = (%d, %d, %d), want (17, 17, 17)", r, g, b)
	}
}

// =============================================================================
// BLEND TESTS
// =============================================================================

func TestBlendToward(t *testing.T) {
	white := colorful.Color{R: 1, G: 1, B: 1}

	tests := []struct {
		name    string
		r, g, b uint8
		amount  float64
		wantR   uint8
		wantG   uint8
		wantB   uint8
	}{
		{"zero amount keeps base", 170, 10, 0, 0.0, 170, 10, 0},
		{"full amount reaches target", 170, 10, 0, 1.0, 255, 255, 255},
		{"half blend from black", 0, 0, 0, 0.5, 128, 128, 128},
		{"attenuated blend from black", 0, 0, 0, 0.9, 230, 230, 230},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, g, b := blendToward(tc.r, tc.g, tc.b, white, tc.amount)
			if r != tc.wantR || g != tc.wantG || b != tc.wantB {
				t.Errorf("blendToward(%d, %d, %d, white, %v) = (%d, %d, %d), want (%d, %d, %d)",
					tc.r, tc.g, tc.b, tc.amount, r, g, b, tc.wantR, tc.wantG, tc.wantB)
			}
		})
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    string
	}{
		{255, 136, 0, "#ff8800"},
		{0, 0, 0, "#000000"},
		{255, 255, 255, "#ffffff"},
		{128, 128, 128, "#808080"},
	}

	for _, tc := range tests {
		if got := rgbHex(tc.r, tc.g, tc.b); got != tc.want {
			t.Errorf("rgbHex(%d, %d, %d) = %q, want %q", tc.r, tc.g, tc.b, got, tc.want)
		}
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{1.5, 1},
	}

	for _, tc := range tests {
		if got := clamp01(tc.in); got != tc.want {
			t.Errorf("clamp01(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
