// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package main provides the shimmer demo - an interactive showcase for the
animated text highlight effect.

# Overview

The demo is a terminal application built with Bubble Tea that renders a
line of text with a moving shimmer highlight. It doubles as a workbench
for the library: the sweep can be driven from frame ticks or wall-clock
time, the rendering path can be flipped between 24-bit color and the
ANSI fallback at runtime, and the configuration file can be edited live
with changes applied on save.

# Commands

	shimmer-demo            Run the animated demo (default)
	shimmer-demo curve      Plot the highlight intensity falloff
	shimmer-demo caps       Report detected terminal color capabilities
	shimmer-demo version    Print version information

# Key Bindings

	q, ctrl+c   Quit
	t           Toggle between true color and ANSI fallback rendering
	p, space    Pause and resume the sweep

# Configuration

Settings load from ~/.shimmer/config.toml, with SHIMMER_* environment
variables and command-line flags layered on top (flags win). Run with
--watch to reload the file whenever it changes on disk.

	[demo]
	text = "Loading..."
	fps = 30
	sweep_seconds = 2.0
	band_half_width = 5
	padding = 10
	highlight = "#ffffff"
	truecolor = "auto"

# Building

Build with version information:

	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)" ./cmd/shimmer-demo

# Architecture

The command consists of four main components:

  - main.go: Entry point, cobra command tree, config/flag layering
  - demo.go: Bubble Tea model driving the animation loop
  - curve.go: Intensity falloff plot (asciigraph)
  - caps.go: Terminal capability report

# Dependencies

  - github.com/charmbracelet/bubbletea - TUI framework
  - github.com/charmbracelet/bubbles - Spinner component
  - github.com/charmbracelet/lipgloss - Terminal styling and layout
  - github.com/spf13/cobra - Command-line interface
  - github.com/guptarohit/asciigraph - Terminal plots
*/
package main
