// SPDX-License-Identifier: MIT
// Package matrix: minors, determinant, adjugate and inverse by cofactor expansion.
//
// Purpose:
//   - SubMatrix, Det, Adj, Inverse built on recursive Laplace expansion.
//
// Complexity:
//   - Det is O(n!) time; each recursion level allocates an independent minor.
//     Intended for small matrices (n <= ~10). Adj costs n² determinants of
//     size n-1.
//
// Notes:
//   - Singularity is the exact test det == 0 unless WithSingularTolerance
//     is passed to Inverse. No pivoting, no factorization.

package matrix

import (
	"fmt"
	"math"
)

const (
	opSubMatrix = "SubMatrix"
	opDet       = "Det"
	opAdj       = "Adj"
	opInverse   = "Inverse"
)

// SubMatrix returns the minor of m with row `row` and column `col` removed.
// MAIN DESCRIPTION:
//   - The remaining rows and columns keep their relative order.
//
// Implementation:
//   - Stage 1: bounds-check (row, col) through At.
//   - Stage 2: allocate (r-1)×(c-1); a 1-row or 1-column m has no minor.
//   - Stage 3: copy every cell outside the excluded row/column in row-major order.
//
// Errors: ErrNilMatrix, ErrOutOfRange, ErrInvalidDimensions.
// Complexity: Time O(r*c), Space O((r-1)*(c-1)).
func SubMatrix(m *Dense, row, col int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}
	if _, err := m.At(row, col); err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}
	res, err := NewDense(m.r-1, m.c-1)
	if err != nil {
		return nil, matrixErrorf(opSubMatrix, fmt.Errorf("minor of %dx%d: %w", m.r, m.c, err))
	}

	var i, j, k int
	for i = 0; i < m.r; i++ {
		if i == row {
			continue
		}
		for j = 0; j < m.c; j++ {
			if j == col {
				continue
			}
			res.data[k] = m.data[i*m.c+j]
			k++
		}
	}

	return res, nil
}

// Det computes the determinant of a square matrix.
//
// Implementation:
//   - 1×1: the sole element.
//   - 2×2: ad - bc.
//   - n×n: expansion along row 0, Σ flip * m[0,i] * Det(minor(0,i)),
//     with flip starting at +1 and alternating.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(n!), Space O(n²) live at any recursion depth.
func Det(m *Dense) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return det(m)
}

// det assumes m is square and non-nil.
func det(m *Dense) (float64, error) {
	switch m.r {
	case 1:
		return m.data[0], nil
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2], nil
	}

	var sum float64
	flip := -1.0
	for i := 0; i < m.c; i++ {
		flip *= -1
		minor, err := SubMatrix(m, 0, i)
		if err != nil {
			return 0, matrixErrorf(opDet, err)
		}
		d, err := det(minor)
		if err != nil {
			return 0, err
		}
		sum += flip * m.data[i] * d
	}

	return sum, nil
}

// Adj returns the adjugate: the transpose of the cofactor matrix
// C[r,c] = (-1)^(r+c) * Det(SubMatrix(m, r, c)).
//
// The 1×1 adjugate is [1]: its only minor is empty and the empty
// determinant is 1, which keeps Inverse valid for 1×1 inputs.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: n² determinants of order n-1.
func Adj(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAdj, err)
	}
	n := m.r
	if n == 1 {
		return Identity(1)
	}

	cof, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opAdj, err)
	}
	var (
		r, c  int
		minor *Dense
		d     float64
	)
	for r = 0; r < n; r++ {
		for c = 0; c < n; c++ {
			if minor, err = SubMatrix(m, r, c); err != nil {
				return nil, matrixErrorf(opAdj, err)
			}
			if d, err = det(minor); err != nil {
				return nil, matrixErrorf(opAdj, err)
			}
			cof.data[r*n+c] = math.Pow(-1, float64(r+c)) * d
		}
	}

	res, err := Transpose(cof)
	if err != nil {
		return nil, matrixErrorf(opAdj, err)
	}

	return res, nil
}

// Inverse returns m⁻¹ = Adj(m) / Det(m).
// MAIN DESCRIPTION:
//   - Exact singularity rule by default: det == 0 fails, anything else
//     inverts, even when the result is numerically meaningless.
//   - WithSingularTolerance(eps) widens the rule to |det| <= eps.
//
// Implementation:
//   - Stage 1: ValidateSquare.
//   - Stage 2: det; compare against the singular tolerance.
//   - Stage 3: Scale(1/det, Adj(m)).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: dominated by Adj.
func Inverse(m *Dense, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	d, err := det(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if d == 0 || math.Abs(d) <= o.singularTol {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det=%g: %w", d, ErrSingular))
	}

	adj, err := Adj(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	res, err := Scale(1/d, adj)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return res, nil
}
