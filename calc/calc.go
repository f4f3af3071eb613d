// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package calc

import "math"

// Clamp limits value to the closed interval [min, max].
func Clamp(value, min, max float64) float64 {
	return math.Max(min, math.Min(value, max))
}

// InRange reports whether value lies in [min, max].
func InRange(value, min, max float64) bool {
	return value >= min && value <= max
}

// Lerp interpolates linearly between start and stop.
// t = 0 yields start, t = 1 yields stop; t is not clamped.
func Lerp(start, stop, t float64) float64 {
	return start + (stop-start)*t
}

// Normalize maps value from [min, max] onto [0, 1] and clamps the result.
//
// A degenerate range (min == max) returns 0.
func Normalize(value, min, max float64) float64 {
	if min == max {
		return 0
	}
	return Clamp((value-min)/(max-min), 0, 1)
}

// Map re-maps value from the input range onto the output range.
// The result is not clamped, so values outside the input range extrapolate.
//
// A degenerate input range (inputMin == inputMax) returns outputMin.
func Map(value, inputMin, inputMax, outputMin, outputMax float64) float64 {
	if inputMin == inputMax {
		return outputMin
	}
	return (value-inputMin)/(inputMax-inputMin)*(outputMax-outputMin) + outputMin
}

// Distance returns the Euclidean distance between (x1, y1) and (x2, y2).
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(DistanceSq(x1, y1, x2, y2))
}

// DistanceSq returns the squared distance between two points.
// Prefer it for comparisons, it skips the square root.
func DistanceSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
