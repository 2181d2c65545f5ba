// SPDX-License-Identifier: MIT
// Package matrix: interop with gonum.org/v1/gonum/mat.
//
// Both directions copy; neither side aliases the other's storage.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense of the same shape.
//
// Errors: ErrNilMatrix.
func ToGonum(m *Dense) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return mat.NewDense(m.r, m.c, cp), nil
}

// FromGonum copies any gonum matrix into a new *Dense.
// Non-contiguous sources (views, transposes) are read through At.
//
// Errors: ErrInvalidDimensions when src is nil or has an empty dimension.
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrInvalidDimensions)
	}
	r, c := src.Dims()
	res, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, fmt.Errorf("dims %dx%d: %w", r, c, err))
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = res.Set(i, j, src.At(i, j)); err != nil {
				return nil, matrixErrorf(opFromGonum, err)
			}
		}
	}

	return res, nil
}
