// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// palette.go - Foreground color resolution and highlight blending.
//
// The true-color rendering path needs the base style's foreground as plain
// RGB so it can be blended toward the highlight color. lipgloss styles can
// carry hex strings, ANSI palette indices, adaptive light/dark pairs, or
// profile-complete colors; everything funnels through resolveForeground,
// which maps any of them to 8-bit RGB channels.
//
// Palette indices resolve through the standard VGA table for 0-15, the
// 6x6x6 color cube for 16-231, and the grayscale ramp for 232-255. Anything
// unrecognized falls back to a neutral mid gray so the effect still renders.
package shimmer

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// =============================================================================
// ANSI PALETTE
// =============================================================================

// Neutral fallback for missing or unrecognized foregrounds.
const (
	defaultGrayR uint8 = 128
	defaultGrayG uint8 = 128
	defaultGrayB uint8 = 128
)

// vgaPalette holds the standard VGA approximations for the 16 named ANSI
// colors (indices 0-15).
var vgaPalette = [16][3]uint8{
	{0, 0, 0},       // 0 black
	{170, 0, 0},     // 1 red
	{0, 170, 0},     // 2 green
	{170, 85, 0},    // 3 yellow
	{0, 0, 170},     // 4 blue
	{170, 0, 170},   // 5 magenta
	{0, 170, 170},   // 6 cyan
	{170, 170, 170}, // 7 gray
	{85, 85, 85},    // 8 dark gray
	{255, 85, 85},   // 9 bright red
	{85, 255, 85},   // 10 bright green
	{255, 255, 85},  // 11 bright yellow
	{85, 85, 255},   // 12 bright blue
	{255, 85, 255},  // 13 bright magenta
	{85, 255, 255},  // 14 bright cyan
	{255, 255, 255}, // 15 white
}

// ansiIndexRGB maps a 256-color palette index to RGB. Out-of-range indices
// yield the neutral gray fallback.
func ansiIndexRGB(idx int) (r, g, b uint8) {
	switch {
	case idx >= 0 && idx < 16:
		c := vgaPalette[idx]
		return c[0], c[1], c[2]

	case idx >= 16 && idx < 232:
		// 6x6x6 color cube. Channel values are 0 or 55+40*v.
		n := idx - 16
		scale := func(v int) uint8 {
			if v == 0 {
				return 0
			}
			return uint8(55 + 40*v)
		}
		return scale(n / 36 % 6), scale(n / 6 % 6), scale(n % 6)

	case idx >= 232 && idx < 256:
		// Grayscale ramp from 8 to 238 in steps of 10.
		v := uint8(8 + 10*(idx-232))
		return v, v, v

	default:
		return defaultGrayR, defaultGrayG, defaultGrayB
	}
}

// =============================================================================
// FOREGROUND RESOLUTION
// =============================================================================

// resolveForeground maps a lipgloss foreground to 8-bit RGB channels.
// A nil, unset, or unrecognized color resolves to neutral gray.
func resolveForeground(c lipgloss.TerminalColor) (r, g, b uint8) {
	switch fg := c.(type) {
	case nil:
		return defaultGrayR, defaultGrayG, defaultGrayB

	case lipgloss.NoColor:
		return defaultGrayR, defaultGrayG, defaultGrayB

	case lipgloss.Color:
		return colorTokenRGB(string(fg))

	case lipgloss.ANSIColor:
		return ansiIndexRGB(int(fg))

	case lipgloss.AdaptiveColor:
		if backgroundIsDark() {
			return colorTokenRGB(fg.Dark)
		}
		return colorTokenRGB(fg.Light)

	case lipgloss.CompleteColor:
		return completeRGB(fg)

	case lipgloss.CompleteAdaptiveColor:
		if backgroundIsDark() {
			return completeRGB(fg.Dark)
		}
		return completeRGB(fg.Light)

	default:
		// Any other color.Color implementation: downsample its channels.
		if cc, ok := c.(color.Color); ok {
			r32, g32, b32, _ := cc.RGBA()
			return uint8(r32 >> 8), uint8(g32 >> 8), uint8(b32 >> 8)
		}
		return defaultGrayR, defaultGrayG, defaultGrayB
	}
}

// colorTokenRGB parses a lipgloss color token: either "#rrggbb" hex or a
// decimal ANSI palette index.
func colorTokenRGB(token string) (r, g, b uint8) {
	token = strings.TrimSpace(token)
	if token == "" {
		return defaultGrayR, defaultGrayG, defaultGrayB
	}

	if strings.HasPrefix(token, "#") {
		c, err := colorful.Hex(token)
		if err != nil {
			return defaultGrayR, defaultGrayG, defaultGrayB
		}
		return c.RGB255()
	}

	idx, err := strconv.Atoi(token)
	if err != nil {
		return defaultGrayR, defaultGrayG, defaultGrayB
	}
	return ansiIndexRGB(idx)
}

// completeRGB picks the variant of a CompleteColor matching the detected
// profile and resolves it.
func completeRGB(c lipgloss.CompleteColor) (r, g, b uint8) {
	var token string
	switch Profile() {
	case termenv.TrueColor:
		token = c.TrueColor
	case termenv.ANSI256:
		token = c.ANSI256
	default:
		token = c.ANSI
	}
	return colorTokenRGB(token)
}

// =============================================================================
// HIGHLIGHT BLENDING
// =============================================================================

// blendToward linearly interpolates each channel from the base color toward
// the target by amount in [0,1], rounding to the nearest integer and
// clamping to [0,255].
func blendToward(r, g, b uint8, target colorful.Color, amount float64) (uint8, uint8, uint8) {
	base := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
	return base.BlendRgb(target, amount).Clamped().RGB255()
}

// rgbHex renders RGB channels as a lowercase "#rrggbb" token, the form
// lipgloss.Color expects for 24-bit foregrounds.
func rgbHex(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// clamp01 clamps x to [0,1].
func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
