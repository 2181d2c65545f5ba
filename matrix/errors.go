// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels wrapped with an operation tag
// ("Det: matrix: matrix is not square"), and tests match them via errors.Is.
// No operation panics on user-triggered error conditions; panics are reserved
// for nonsensical Option values (programmer error).

package matrix

import "errors"

// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> index -> squareness -> singularity.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are < 1,
	// including the empty minor of a 1-row or 1-column matrix.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add on different shapes, Mul where a.Cols != b.Rows, or a backing
	// slice whose length differs from rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when the determinant is zero
	// (or within the configured singular tolerance).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Dense was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value rejected by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// ErrIndexOutOfBounds is an alias of ErrOutOfRange.
//
// Deprecated: use ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange
