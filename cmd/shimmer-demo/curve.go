// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	shimmer "github.com/jeranaias/shimmer-tui"
)

var curveHalfWidth int

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Plot the highlight intensity falloff",
	Long: `Plot the raised-cosine intensity curve the shimmer band applies.

Each point is the brightness of a character at that distance from the sweep
center: 1.0 at the center, fading smoothly to 0.0 at the band edge.`,
	RunE: runCurve,
}

func init() {
	curveCmd.Flags().IntVar(&curveHalfWidth, "half-width", shimmer.DefaultBandHalfWidth, "Band half-width in characters")
}

func runCurve(cmd *cobra.Command, args []string) error {
	if curveHalfWidth < 0 {
		return fmt.Errorf("half-width must be >= 0, got %d", curveHalfWidth)
	}

	graph := asciigraph.Plot(intensityCurve(curveHalfWidth),
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("intensity by distance from sweep center (half-width %d)", curveHalfWidth)),
	)
	fmt.Println(graph)
	return nil
}

// intensityCurve samples the intensity at every integer distance across the
// band, from one edge through the center to the other edge.
func intensityCurve(halfWidth int) []float64 {
	data := make([]float64, 0, 2*halfWidth+1)
	for d := -halfWidth; d <= halfWidth; d++ {
		data = append(data, shimmer.IntensityAt(d, halfWidth))
	}
	return data
}
