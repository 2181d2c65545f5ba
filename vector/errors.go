// SPDX-License-Identifier: MIT

package vector

import "errors"

var (
	// ErrDimensionMismatch indicates operands of a binary operation differ in length.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrInvalidDimension indicates an operand has a length the operation
	// cannot accept (Cross requires exactly 3).
	ErrInvalidDimension = errors.New("vector: invalid dimension")

	// ErrDegenerate indicates a zero-length basis vector (Proj onto 0).
	ErrDegenerate = errors.New("vector: degenerate input")
)
