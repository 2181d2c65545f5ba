// SPDX-License-Identifier: MIT

// Package vector provides dense float64 vector primitives: dot and cross
// products, magnitude, normalization, scaling, addition, subtraction,
// projection and reflection.
//
// Every function is generic over V ~[]float64, so plain []float64, the
// package's Vector type and any caller-defined named slice share one
// implementation. Fixed-size arrays are passed as slices (arr[:]); Cross3
// covers the [3]float64 case directly.
//
// Inputs are never mutated and every result is freshly allocated.
// Binary operations return ErrDimensionMismatch when lengths differ.
//
// Usage:
//
//	d, err := vector.Dot([]float64{1, 3, 3, -1}, []float64{4, 0, 4, 4}) // 12
//	n := vector.Normalize(vector.Vector{3, 4})                          // [0.6 0.8]
//
// Complexity: every operation is O(n) time and O(n) space for its result.
package vector
