// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Configuration structures, loading, and validation for the
// shimmer demo.
//
// Configuration file location:
//   - ~/.shimmer/config.toml
//
// Environment overrides (applied after file load):
//   - SHIMMER_TEXT, SHIMMER_FPS, SHIMMER_TRUECOLOR, SHIMMER_LOG_LEVEL
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/shimmer-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete shimmer demo configuration.
type Config struct {
	// Demo appearance and animation settings
	Demo DemoConfig `toml:"demo"`

	// Logging configuration
	Log LogConfig `toml:"log"`
}

// DemoConfig contains the demo's appearance and animation settings.
type DemoConfig struct {
	// Text is the line the shimmer sweeps across
	Text string `toml:"text"`
	// FPS is the frame rate of the demo's render ticks (1-120)
	FPS int `toml:"fps"`
	// SweepSeconds is the duration of one full sweep; 0 freezes the animation
	SweepSeconds float64 `toml:"sweep_seconds"`
	// BandHalfWidth is the highlight band half-width in characters
	BandHalfWidth int `toml:"band_half_width"`
	// Padding is the number of virtual sweep positions on each side of the text
	Padding int `toml:"padding"`
	// Highlight is the color the sweep blends toward ("#rrggbb" or ANSI index)
	Highlight string `toml:"highlight"`
	// BaseColor is the resting foreground ("#rrggbb" or ANSI index, empty = terminal default)
	BaseColor string `toml:"base_color"`
	// TrueColor selects the rendering path: "auto", "on", or "off"
	TrueColor string `toml:"truecolor"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	// Level is the zap log level: "", "debug", "info", "warn", "error".
	// Empty means silent.
	Level string `toml:"level"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Demo: DemoConfig{
			Text:          "Loading...",
			FPS:           30,
			SweepSeconds:  2.0,
			BandHalfWidth: 5,
			Padding:       10,
			Highlight:     "#ffffff",
			BaseColor:     "",
			TrueColor:     "auto",
		},
		Log: LogConfig{
			Level: "",
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the shimmer configuration directory (~/.shimmer).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".shimmer"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir creates the configuration directory if needed.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the default config file. A missing file is
// not an error: defaults apply. Environment overrides are applied last.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from an explicit path. A missing file
// yields defaults; a malformed or invalid file is an error.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file over the given config.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// fillDefaults back-fills zero values that have non-zero defaults, so a
// partial config file doesn't zero out settings the demo needs.
func (c *Config) fillDefaults() {
	def := Default()

	if c.Demo.Text == "" {
		c.Demo.Text = def.Demo.Text
	}
	if c.Demo.FPS == 0 {
		c.Demo.FPS = def.Demo.FPS
	}
	if c.Demo.Highlight == "" {
		c.Demo.Highlight = def.Demo.Highlight
	}
	if c.Demo.TrueColor == "" {
		c.Demo.TrueColor = def.Demo.TrueColor
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes the configuration to the default config file.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration to an explicit TOML path. The write is
// atomic so watchers and crashed saves never observe a partial file.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode TOML: %w", err)
	}
	return util.WriteFileAtomic(path, buf.Bytes(), 0644)
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.Demo.FPS < 1 || c.Demo.FPS > 120 {
		errs = append(errs, ValidationError{
			Field:   "demo.fps",
			Message: fmt.Sprintf("invalid frame rate %d, must be between 1 and 120", c.Demo.FPS),
		})
	}

	if c.Demo.SweepSeconds < 0 {
		errs = append(errs, ValidationError{
			Field:   "demo.sweep_seconds",
			Message: fmt.Sprintf("invalid sweep duration %v, must be >= 0 (0 freezes the sweep)", c.Demo.SweepSeconds),
		})
	}

	if c.Demo.BandHalfWidth < 0 {
		errs = append(errs, ValidationError{
			Field:   "demo.band_half_width",
			Message: fmt.Sprintf("invalid band half-width %d, must be >= 0", c.Demo.BandHalfWidth),
		})
	}

	if c.Demo.Padding < 0 {
		errs = append(errs, ValidationError{
			Field:   "demo.padding",
			Message: fmt.Sprintf("invalid padding %d, must be >= 0", c.Demo.Padding),
		})
	}

	if err := validateColorToken(c.Demo.Highlight); err != nil {
		errs = append(errs, ValidationError{Field: "demo.highlight", Message: err.Error()})
	}
	if c.Demo.BaseColor != "" {
		if err := validateColorToken(c.Demo.BaseColor); err != nil {
			errs = append(errs, ValidationError{Field: "demo.base_color", Message: err.Error()})
		}
	}

	validTrueColor := map[string]bool{"auto": true, "on": true, "off": true}
	if !validTrueColor[strings.ToLower(c.Demo.TrueColor)] {
		errs = append(errs, ValidationError{
			Field:   "demo.truecolor",
			Message: fmt.Sprintf("invalid mode '%s', must be one of: auto, on, off", c.Demo.TrueColor),
		})
	}

	if c.Log.Level != "" {
		validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
		if !validLevels[strings.ToLower(c.Log.Level)] {
			errs = append(errs, ValidationError{
				Field:   "log.level",
				Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Log.Level),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// validateColorToken accepts "#rrggbb" / "#rgb" hex or a 0-255 ANSI index.
func validateColorToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("empty color token")
	}

	if strings.HasPrefix(token, "#") {
		hex := token[1:]
		if len(hex) != 3 && len(hex) != 6 {
			return fmt.Errorf("invalid hex color '%s', want #rgb or #rrggbb", token)
		}
		for _, ch := range hex {
			isHex := (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
			if !isHex {
				return fmt.Errorf("invalid hex color '%s', want #rgb or #rrggbb", token)
			}
		}
		return nil
	}

	idx, err := strconv.Atoi(token)
	if err != nil || idx < 0 || idx > 255 {
		return fmt.Errorf("invalid color '%s', want #rrggbb hex or ANSI index 0-255", token)
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - SHIMMER_TEXT: overrides demo.text
//   - SHIMMER_FPS: overrides demo.fps
//   - SHIMMER_TRUECOLOR: overrides demo.truecolor ("auto", "on", "off")
//   - SHIMMER_LOG_LEVEL: overrides log.level
func (c *Config) ApplyEnvOverrides() {
	if text := os.Getenv("SHIMMER_TEXT"); text != "" {
		c.Demo.Text = text
	}

	if fps := os.Getenv("SHIMMER_FPS"); fps != "" {
		if n, err := strconv.Atoi(fps); err == nil {
			c.Demo.FPS = n
		}
	}

	if mode := os.Getenv("SHIMMER_TRUECOLOR"); mode != "" {
		c.Demo.TrueColor = strings.ToLower(mode)
	}

	if level := os.Getenv("SHIMMER_LOG_LEVEL"); level != "" {
		c.Log.Level = strings.ToLower(level)
	}
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			// Fall back to defaults rather than failing the caller
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfigMu.Lock()
		globalConfig = cfg
		globalConfigMu.Unlock()
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
// This should only be used in tests to reset state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
