// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// intensity.go - Raised-cosine highlight intensity for the shimmer band.
//
// Each character's brightness depends only on its integer distance from the
// sweep center. The falloff is a raised cosine (Hann window): 1.0 at the
// center, 0.0 at the band edge, smooth at both ends so the highlight has no
// visible hard edge. Since the domain is the small finite set
// 0..bandHalfWidth, each Effect precomputes the curve into a lookup table at
// construction.
package shimmer

import "math"

// IntensityAt returns the highlight intensity in [0,1] for a character at
// the given distance from the sweep center, for a band of the given
// half-width. Distance may be negative (the band is symmetric). A
// non-positive half-width yields 0 everywhere.
func IntensityAt(distance, bandHalfWidth int) float64 {
	if bandHalfWidth <= 0 {
		return 0
	}
	if distance < 0 {
		distance = -distance
	}
	if distance > bandHalfWidth {
		return 0
	}
	return 0.5 * (1 + math.Cos(math.Pi*float64(distance)/float64(bandHalfWidth)))
}

// buildIntensityTable precomputes IntensityAt for all distances
// 0..bandHalfWidth. Returns nil for a non-positive half-width, which the
// lookup path treats as zero intensity everywhere.
func buildIntensityTable(bandHalfWidth int) []float64 {
	if bandHalfWidth <= 0 {
		return nil
	}
	table := make([]float64, bandHalfWidth+1)
	for d := range table {
		table[d] = IntensityAt(d, bandHalfWidth)
	}
	return table
}

// intensityFor looks up the intensity for a non-negative distance. Distances
// beyond the table (or any distance when the table is nil) are outside the
// band and yield 0.
func (e *Effect) intensityFor(distance int) float64 {
	if distance >= len(e.intensity) {
		return 0
	}
	return e.intensity[distance]
}
