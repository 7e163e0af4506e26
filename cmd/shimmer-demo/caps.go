// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	shimmer "github.com/jeranaias/shimmer-tui"
)

var capsCmd = &cobra.Command{
	Use:   "caps",
	Short: "Report detected terminal color capabilities",
	Long: `Report the environment variables and detection results that decide
which rendering path the shimmer effect uses in this terminal.`,
	Run: runCaps,
}

func runCaps(cmd *cobra.Command, args []string) {
	fmt.Println("Environment:")
	for _, key := range []string{"NO_COLOR", "CLICOLOR_FORCE", "CLICOLOR", "COLORTERM"} {
		if value, ok := os.LookupEnv(key); ok {
			fmt.Printf("  %-15s = %q\n", key, value)
		} else {
			fmt.Printf("  %-15s   (unset)\n", key)
		}
	}

	fmt.Println()
	fmt.Println("Detection:")
	fmt.Printf("  stdout is a TTY   %t\n", term.IsTerminal(int(os.Stdout.Fd())))
	fmt.Printf("  true color        %t\n", shimmer.TrueColorSupported())
	fmt.Printf("  termenv profile   %s\n", profileName(shimmer.Profile()))
}

// profileName names a termenv profile for display.
func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "TrueColor"
	case termenv.ANSI256:
		return "ANSI256"
	case termenv.ANSI:
		return "ANSI"
	default:
		return "Ascii"
	}
}
