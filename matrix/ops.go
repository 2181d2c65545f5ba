// SPDX-License-Identifier: MIT
// Package matrix: element-wise arithmetic, products and transpose.
//
// Purpose:
//   - Identity, Add, Sub, Scale, Mul, MatVec, Transpose over *Dense.
//   - All functions validate through validators.go, never mutate operands,
//     and return freshly allocated results.
//
// Notes:
//   - Mul and MatVec are defined in terms of vector.Dot over row/column
//     copies, so they share the vector package's dimension contract.
//   - Errors are wrapped with the op* tag via matrixErrorf; match with errors.Is.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/vector"
)

// Operation name constants for unified error wrapping.
const (
	opIdentity  = "Identity"
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Identity returns the n×n identity matrix.
//
// Errors: ErrInvalidDimensions if n < 1.
// Complexity: Time O(n²), Space O(n²).
func Identity(n int) (*Dense, error) {
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		res.data[i*n+i] = 1
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: single flat loop over the backing slices.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	for k := range res.data {
		res.data[k] = a.data[k] + b.data[k]
	}

	return res, nil
}

// Sub computes C = A - B as Add(A, Scale(-1, B)).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	neg, err := Scale(-1, b)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res, err := Add(a, neg)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return res, nil
}

// Scale returns a new matrix whose elements are s * m[i,j].
// s = 0 yields an explicit zero matrix; NaN/Inf propagate.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(s float64, m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for k, v := range m.data {
		res.data[k] = s * v
	}

	return res, nil
}

// Mul performs matrix multiplication C = A × B.
// MAIN DESCRIPTION:
//   - C[i,j] is the dot product of row i of A and column j of B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (A.Cols == B.Rows).
//   - Stage 2: materialize every column of B once.
//   - Stage 3: for each row of A, dot against each cached column.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*n*c), Space O(r*c + n*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	cols := make([][]float64, b.c)
	var j int
	for j = 0; j < b.c; j++ {
		if cols[j], err = b.Col(j); err != nil {
			return nil, matrixErrorf(opMul, err)
		}
	}

	var row []float64
	var v float64
	for i := 0; i < a.r; i++ {
		if row, err = a.Row(i); err != nil {
			return nil, matrixErrorf(opMul, err)
		}
		for j = 0; j < b.c; j++ {
			if v, err = vector.Dot(row, cols[j]); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("cell (%d,%d): %w", i, j, err))
			}
			res.data[i*b.c+j] = v
		}
	}

	return res, nil
}

// MatVec computes y = m * x; len(y) == m.Rows().
//
// Contract: m non-nil; len(x) == m.Cols().
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r).
func MatVec[V ~[]float64](m *Dense, x V) (V, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(len(x), m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make(V, m.r)
	for i := 0; i < m.r; i++ {
		row, err := m.Row(i)
		if err != nil {
			return nil, matrixErrorf(opMatVec, err)
		}
		if y[i], err = vector.Dot(row, []float64(x)); err != nil {
			return nil, matrixErrorf(opMatVec, err)
		}
	}

	return y, nil
}

// Transpose returns a new cols×rows matrix with T[j,i] = m[i,j].
// Transpose(Transpose(m)) equals m exactly.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res, nil
}
