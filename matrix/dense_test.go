// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestNewDense_DefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 6},
	} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			require.Len(t, m.RawData(), tc.rows*tc.cols)
			for _, v := range m.RawData() {
				require.Zero(t, v)
			}
			r, c := m.Shape()
			assert.Equal(t, tc.rows, r)
			assert.Equal(t, tc.cols, c)
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{0, -1}, {0, 3}, {3, 0}, {-2, 2},
	} {
		_, err := matrix.NewDense(tc.rows, tc.cols)
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "%dx%d", tc.rows, tc.cols)
	}
}

func TestNewDenseFrom_Validation(t *testing.T) {
	// dimensions are checked before data length
	_, err := matrix.NewDenseFrom(0, -1, make([]float64, 2))
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom(1, 1, make([]float64, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(2, 2, nil)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDense_AtRowMajor(t *testing.T) {
	m := MustFrom(t, 3, 3,
		1, 2, 3,
		4, 5, 6,
		7, 8, 9)
	want := 1.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, want, MustAt(t, m, i, j), "(%d,%d)", i, j)
			want++
		}
	}
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 3, m.Cols())
}

func TestDense_OutOfRange(t *testing.T) {
	m := MustDense(t, 3, 3)
	for _, ij := range [][2]int{{0, -1}, {-1, 0}, {3, 0}, {0, 3}, {5, 5}} {
		_, err := m.At(ij[0], ij[1])
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, "At%v", ij)
		assert.ErrorIs(t, m.Set(ij[0], ij[1], 8), matrix.ErrIndexOutOfBounds, "Set%v", ij)
	}
	_, err := m.Row(3)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_SetThenAt(t *testing.T) {
	m := MustDense(t, 3, 3)
	v := 1.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.NoError(t, m.Set(i, j, v))
			v++
		}
	}
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, m.RawData())
}

func TestDense_RowColAreCopies(t *testing.T) {
	m := MustFrom(t, 2, 3, 1, 2, 3, 4, 5, 6)

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, row)

	col, err := m.Col(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6}, col)

	row[0], col[0] = 100, 100
	assert.Equal(t, 4.0, MustAt(t, m, 1, 0))
	assert.Equal(t, 3.0, MustAt(t, m, 0, 2))
}

func TestDense_RawDataAliases(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	m := MustFrom(t, 2, 2, data...)

	// NewDenseFrom takes ownership without copying.
	data[0] = 9
	assert.Equal(t, 9.0, MustAt(t, m, 0, 0))

	m.RawData()[3] = 7
	assert.Equal(t, 7.0, MustAt(t, m, 1, 1))
}

func TestDense_CloneEqualString(t *testing.T) {
	m := MustFrom(t, 2, 2, 1, 2, 3, 4)
	cp := m.Clone()
	require.True(t, m.Equal(cp))

	require.NoError(t, cp.Set(0, 0, -1))
	assert.False(t, m.Equal(cp))
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))

	assert.False(t, m.Equal(MustFrom(t, 1, 4, 1, 2, 3, 4)))
	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
