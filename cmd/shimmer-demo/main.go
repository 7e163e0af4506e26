// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	shimmer "github.com/jeranaias/shimmer-tui"
	"github.com/jeranaias/shimmer-tui/internal/config"
	"github.com/jeranaias/shimmer-tui/internal/logging"
)

// Version information (set at build time)
var (
	Version   = "0.2.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shimmer-demo",
	Short: "Animated shimmer text demo",
	Long: `An interactive showcase for the shimmer text effect.

Renders a line of text with a highlight band sweeping across it. The band
fades in from the left padding, crosses the text, and fades out on the
right before wrapping around. On terminals with 24-bit color support the
highlight blends the base color toward white; elsewhere it falls back to
three ANSI gray tiers.`,
	Example: `  # Run with settings from ~/.shimmer/config.toml
  shimmer-demo

  # Custom text at 60 frames per second
  shimmer-demo --text "Synchronizing replicas" --fps 60

  # Force the ANSI fallback path and reload config on save
  shimmer-demo --truecolor off --watch

  # Drive the sweep from wall-clock time instead of frame ticks
  shimmer-demo --wallclock`,
	Version:      Version,
	SilenceUsage: true,
	RunE:         runDemo,
}

// Demo flags
var (
	flagConfig    string
	flagText      string
	flagFPS       int
	flagTrueColor string
	flagWallclock bool
	flagWatch     bool
)

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to config file (default ~/.shimmer/config.toml)")
	rootCmd.Flags().StringVar(&flagText, "text", "", "Text to render (overrides config)")
	rootCmd.Flags().IntVar(&flagFPS, "fps", 0, "Frame rate, 1-120 (overrides config)")
	rootCmd.Flags().StringVar(&flagTrueColor, "truecolor", "", "Rendering path: auto, on, off (overrides config)")
	rootCmd.Flags().BoolVar(&flagWallclock, "wallclock", false, "Derive the sweep from wall-clock time instead of frame ticks")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes on disk")

	rootCmd.AddCommand(curveCmd)
	rootCmd.AddCommand(capsCmd)
	rootCmd.AddCommand(versionCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadDemoConfig()
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// The loaded level already folds in SHIMMER_LOG_LEVEL via the config's
	// env overrides; empty stays silent.
	if err := logging.Initialize(cfg.Log.Level); err != nil {
		return err
	}
	defer logging.Sync()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("shimmer-demo requires an interactive terminal")
	}
	logging.LogCapabilities(shimmer.TrueColorSupported(), profileName(shimmer.Profile()))

	p := tea.NewProgram(
		newDemo(cfg, flagWallclock),
		tea.WithAltScreen(),
	)

	if flagWatch {
		watcher, err := config.Watch(context.Background(), path, func(next *config.Config) {
			logging.LogReload(path, next.Demo.FPS, next.Demo.SweepSeconds, next.Demo.Text)
			p.Send(reloadMsg{cfg: next})
		})
		if err != nil {
			return fmt.Errorf("failed to watch config: %w", err)
		}
		defer watcher.Close()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running demo: %w", err)
	}
	return nil
}

// loadDemoConfig resolves the config path (explicit flag or the default
// location) and loads it. The path is returned for the --watch watcher.
func loadDemoConfig() (*config.Config, string, error) {
	if flagConfig != "" {
		cfg, err := config.LoadFromPath(flagConfig)
		return cfg, flagConfig, err
	}

	path, err := config.ConfigPath()
	if err != nil {
		return nil, "", err
	}
	if flagWatch {
		// The watcher needs the directory to exist even if the file
		// hasn't been written yet.
		if err := config.EnsureConfigDir(); err != nil {
			return nil, "", err
		}
	}
	cfg, err := config.LoadFromPath(path)
	return cfg, path, err
}

// applyFlagOverrides layers explicitly set flags over the loaded config.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("text") {
		cfg.Demo.Text = flagText
	}
	if cmd.Flags().Changed("fps") {
		cfg.Demo.FPS = flagFPS
	}
	if cmd.Flags().Changed("truecolor") {
		cfg.Demo.TrueColor = flagTrueColor
	}
}

// Version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("shimmer-demo %s (commit: %s, built: %s)\n", Version, GitCommit, BuildDate)
	},
}
