// SPDX-License-Identifier: MIT

package matrix

import "math"

const opAllClose = "AllClose"

// AllClose reports whether |a[i,j]-b[i,j]| <= atol + rtol*|b[i,j]| for every cell.
// NaN is never close to anything; equal infinities are.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	var x, y float64
	for k := range a.data {
		x, y = a.data[k], b.data[k]
		if math.IsNaN(x) || math.IsNaN(y) {
			return false, nil
		}
		if x == y { // covers matching ±Inf
			continue
		}
		if math.Abs(x-y) > atol+rtol*math.Abs(y) {
			return false, nil
		}
	}

	return true, nil
}
