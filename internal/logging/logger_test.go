// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"os"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	os.Unsetenv(LogLevelEnvVar)

	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize(\"\") = %v, want nil", err)
	}

	lg := GetLogger()
	if lg == nil {
		t.Fatal("GetLogger() returned nil")
	}
	if lg.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("silent logger should not be enabled at any level")
	}

	// Helpers must be safe to call in silent mode.
	LogReload("/tmp/config.toml", 30, 2.0, "Loading...")
	LogCapabilities(true, "TrueColor")
	Sync()
}

func TestInitializeLevels(t *testing.T) {
	tests := []struct {
		level   string
		debugOn bool
		infoOn  bool
		warnOn  bool
	}{
		{"debug", true, true, true},
		{"info", false, true, true},
		{"warn", false, false, true},
		{"error", false, false, false},
		// Unknown but explicitly set levels log at info.
		{"chatty", false, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			if err := Initialize(tc.level); err != nil {
				t.Fatalf("Initialize(%q) = %v, want nil", tc.level, err)
			}

			core := GetLogger().Core()
			if got := core.Enabled(zapcore.DebugLevel); got != tc.debugOn {
				t.Errorf("Enabled(debug) = %v, want %v", got, tc.debugOn)
			}
			if got := core.Enabled(zapcore.InfoLevel); got != tc.infoOn {
				t.Errorf("Enabled(info) = %v, want %v", got, tc.infoOn)
			}
			if got := core.Enabled(zapcore.WarnLevel); got != tc.warnOn {
				t.Errorf("Enabled(warn) = %v, want %v", got, tc.warnOn)
			}
		})
	}

	// Leave the package silent for any tests that follow.
	logger = zap.NewNop()
}

func TestInitializeFromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")

	if err := InitializeFromEnv(); err != nil {
		t.Fatalf("InitializeFromEnv() = %v, want nil", err)
	}

	core := GetLogger().Core()
	if core.Enabled(zapcore.InfoLevel) {
		t.Error("warn-level logger should not be enabled at info")
	}
	if !core.Enabled(zapcore.WarnLevel) {
		t.Error("warn-level logger should be enabled at warn")
	}

	logger = zap.NewNop()
}
