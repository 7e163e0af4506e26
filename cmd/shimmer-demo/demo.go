// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// demo.go - Bubble Tea model driving the shimmer animation loop.
//
// The model owns the effect instance and the frame counter. In the default
// frame-clocked mode the sweep phase is derived from elapsed frames, so the
// animation speed tracks the configured frame rate exactly; with --wallclock
// the effect derives the phase from process time instead, which keeps
// multiple shimmer lines in lockstep across components.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	runewidth "github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"

	shimmer "github.com/jeranaias/shimmer-tui"
	"github.com/jeranaias/shimmer-tui/internal/config"
)

var hudStyle = lipgloss.NewStyle().Faint(true)

// frameMsg advances the animation by one frame.
type frameMsg time.Time

// reloadMsg carries a config freshly reloaded from disk.
type reloadMsg struct {
	cfg *config.Config
}

// demo is the Bubble Tea model for the animated showcase.
type demo struct {
	cfg    *config.Config
	effect *shimmer.Effect
	base   lipgloss.Style
	spin   spinner.Model

	frame     int
	paused    bool
	wallclock bool
	trueColor *bool // nil until toggled with 't'

	width  int
	height int
	start  time.Time
}

func newDemo(cfg *config.Config, wallclock bool) demo {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}

	return demo{
		cfg:       cfg,
		effect:    buildEffect(cfg, nil),
		base:      baseStyle(cfg),
		spin:      s,
		wallclock: wallclock,
		start:     time.Now(),
	}
}

// buildEffect constructs the shimmer effect for the given config. A non-nil
// forced value pins the rendering path, overriding the config's mode.
func buildEffect(cfg *config.Config, forced *bool) *shimmer.Effect {
	opts := []shimmer.Option{
		shimmer.WithSweepPeriod(time.Duration(cfg.Demo.SweepSeconds * float64(time.Second))),
		shimmer.WithBandHalfWidth(cfg.Demo.BandHalfWidth),
		shimmer.WithPadding(cfg.Demo.Padding),
		shimmer.WithHighlight(lipgloss.Color(cfg.Demo.Highlight)),
	}

	if forced != nil {
		opts = append(opts, shimmer.WithTrueColor(*forced))
	} else {
		switch strings.ToLower(cfg.Demo.TrueColor) {
		case "on":
			opts = append(opts, shimmer.WithTrueColor(true))
		case "off":
			opts = append(opts, shimmer.WithTrueColor(false))
		}
	}

	return shimmer.New(opts...)
}

// baseStyle is the resting style the highlight blends away from.
func baseStyle(cfg *config.Config) lipgloss.Style {
	if cfg.Demo.BaseColor == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Demo.BaseColor))
}

// trueColorActive reports which rendering path the effect currently uses.
func (m demo) trueColorActive() bool {
	if m.trueColor != nil {
		return *m.trueColor
	}
	switch strings.ToLower(m.cfg.Demo.TrueColor) {
	case "on":
		return true
	case "off":
		return false
	default:
		return shimmer.TrueColorSupported()
	}
}

// fps returns the configured frame rate, guarding against zero so the tick
// command never divides by it.
func (m demo) fps() int {
	if m.cfg.Demo.FPS < 1 {
		return 30
	}
	return m.cfg.Demo.FPS
}

// phase derives the sweep position from elapsed frames.
func (m demo) phase() float64 {
	sweep := m.cfg.Demo.SweepSeconds
	if sweep <= 0 {
		return 0
	}
	return float64(m.frame) / float64(m.fps()) / sweep
}

func (m demo) frameCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps()), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Init starts the frame loop and the HUD spinner.
func (m demo) Init() tea.Cmd {
	return tea.Batch(m.frameCmd(), m.spin.Tick)
}

// Update handles input, frame ticks, and live config reloads.
func (m demo) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "p", " ":
			m.paused = !m.paused
		case "t":
			next := !m.trueColorActive()
			m.trueColor = &next
			m.effect = buildEffect(m.cfg, m.trueColor)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case frameMsg:
		if !m.paused {
			m.frame++
		}
		return m, m.frameCmd()

	case reloadMsg:
		m.cfg = msg.cfg
		m.effect = buildEffect(m.cfg, m.trueColor)
		m.base = baseStyle(m.cfg)
	}

	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return m, cmd
}

// View renders the shimmer line centered in the window with a status line
// at the bottom.
func (m demo) View() string {
	width := m.width
	if width == 0 {
		width = 80
	}
	height := m.height
	if height == 0 {
		height = 24
	}

	// Compose combining marks so the per-character sweep math sees what the
	// terminal will actually draw.
	text := norm.NFC.String(m.cfg.Demo.Text)
	if runewidth.StringWidth(text) > width-2 {
		text = runewidth.Truncate(text, width-2, "...")
	}

	var line string
	if m.wallclock {
		line = m.effect.Text(text, m.base)
	} else {
		line = m.effect.TextAtPhase(text, m.base, m.phase())
	}

	hud := m.renderHUD(width)

	centered := lipgloss.Place(
		width, height-lipgloss.Height(hud),
		lipgloss.Center, lipgloss.Center,
		line,
	)

	return centered + "\n" + hud
}

// renderHUD renders the bottom status line.
func (m demo) renderHUD(width int) string {
	state := "running"
	if m.paused {
		state = "paused"
	}

	clock := "frame clock"
	if m.wallclock {
		clock = "wall clock"
	}

	path := "ansi fallback"
	if m.trueColorActive() {
		path = "true color"
	}

	status := fmt.Sprintf("%s %s  |  %s  |  %s (%s)  |  %d fps  |  %s  |  [q] quit [t] color [p] pause",
		m.spin.View(), state, clock, path, profileName(shimmer.Profile()),
		m.fps(), time.Since(m.start).Truncate(time.Second))

	return hudStyle.Render(runewidth.Truncate(status, width, ""))
}
