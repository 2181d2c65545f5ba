// SPDX-License-Identifier: MIT

// Package interp provides scalar interpolation helpers: linear (Lerp) and
// Hermite smoothstep (Herp) interpolation, Clamp, and a sign-preserving
// fractional part (Fract).
//
// All functions are pure and total over float64; NaN inputs propagate.
package interp

import "math"

// Lerp interpolates linearly: start*(1-t) + end*t.
// t is not clamped; values outside [0,1] extrapolate.
func Lerp(start, end, t float64) float64 {
	return start*(1-t) + end*t
}

// Herp interpolates along the smoothstep cubic 3t²-2t³ fed into Lerp.
func Herp(start, end, t float64) float64 {
	curve := t * t * (3 - 2*t)

	return Lerp(start, end, curve)
}

// InverseLerp returns t such that Lerp(start, end, t) == v.
// Returns NaN when start == end (every t maps to the same value).
func InverseLerp(start, end, v float64) float64 {
	if start == end {
		return math.NaN()
	}

	return (v - start) / (end - start)
}

// Clamp limits x to [lo, hi] as min(max(x, lo), hi).
// When lo > hi the result is hi.
func Clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}

// Fract returns the fractional part of x with the sign of x:
// sign(x) * (|x| - floor(|x|)). Fract(-3.25) == -0.25, unlike x - floor(x).
func Fract(x float64) float64 {
	a := math.Abs(x)

	return sign(x) * (a - math.Floor(a))
}

// sign mirrors signum: -1, 0 or 1 (NaN stays NaN).
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x
	}
}
