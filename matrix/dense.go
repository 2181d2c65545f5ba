// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row/Col return errors
//     instead of panicking.
//   - Expose the backing slice through RawData as a documented escape hatch.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; NewDenseFrom: O(1) (no copy, O(r*c) with
//     the NaN/Inf policy on); At/Set: O(1); Row/Col/Clone: O(len).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxRow = "Row"
	ctxCol = "Col"
	ctxNew = "NewDenseFrom"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps a sentinel with a uniform Dense context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of float64 values.
//   - r,c hold dimensions (both >= 1 for every Dense reachable by callers).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
//
// A Dense never changes shape. It is not safe for concurrent mutation;
// concurrent readers of a matrix nobody writes to are fine.
type Dense struct {
	r, c           int
	data           []float64
	validateNaNInf bool
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
//
// Implementation:
//   - Stage 1: validate rows>=1 && cols>=1; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and apply the numeric policy.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFrom wraps data as an r×c matrix in row-major order.
// MAIN DESCRIPTION:
//   - Ownership of data moves to the matrix; no defensive copy is made.
//     Callers that keep writing to data will see those writes through the
//     matrix (and vice versa). Pass a copy if that matters.
//
// Implementation:
//   - Stage 1: validate rows>=1 && cols>=1 (ErrInvalidDimensions).
//   - Stage 2: validate len(data) == rows*cols (ErrDimensionMismatch).
//   - Stage 3: when the NaN/Inf policy is on, scan data (ErrNaNInf).
//
// Complexity: Time O(1) (O(r*c) with the policy on), Space O(1).
func NewDenseFrom(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s: len(data)=%d, want %d: %w", ctxNew, len(data), rows*cols, ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for k, v := range data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf(ctxNew, k/cols, k%cols, ErrNaNInf)
			}
		}
	}

	return &Dense{r: rows, c: cols, data: data, validateNaNInf: o.validateNaNInf}, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Row is checked before column.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col). It is the only in-place mutator besides RawData.
//
// Errors:
//   - ErrOutOfRange for bad indices.
//   - ErrNaNInf for non-finite v, only when WithValidateNaNInf was used.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns a fresh copy of row r (never a view).
func (m *Dense) Row(r int) ([]float64, error) {
	if r < 0 || r >= m.r {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxRow, r, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[r*m.c:(r+1)*m.c])

	return out, nil
}

// Col returns a fresh copy of column c (never a view).
func (m *Dense) Col(c int) ([]float64, error) {
	if c < 0 || c >= m.c {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxCol, c, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+c]
	}

	return out, nil
}

// RawData returns the live row-major backing slice.
//
// This is an explicit escape hatch: writes through the returned slice
// bypass bounds checks and the NaN/Inf policy, and are visible to every
// holder of the matrix. Use Row/Col for value copies.
func (m *Dense) RawData() []float64 { return m.data }

// Clone returns a deep copy with the same numeric policy.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// Equal reports exact shape and element equality. NaN is never equal.
func (m *Dense) Equal(other *Dense) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != other.data[k] {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line, for diagnostics only.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
