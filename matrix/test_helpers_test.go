// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures (MustDense, MustFrom, RandomDominant).
//   - Tolerance comparisons through go-cmp so failures print a readable diff.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// delta is the absolute tolerance used for float comparisons in this package.
const delta = 1e-4

// MustDense allocates an r×c zero *Dense or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// MustFrom wraps data as an r×c *Dense or fails the test.
func MustFrom(tb testing.TB, r, c int, data ...float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(tb, err)

	return m
}

// MustIdentity returns Identity(n) or fails the test.
func MustIdentity(tb testing.TB, n int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.Identity(n)
	require.NoError(tb, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(tb testing.TB, m *matrix.Dense, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// RandomDominant fills an n×n matrix with values in [-1,1) plus n on the
// diagonal, which keeps it comfortably non-singular for oracle checks.
func RandomDominant(tb testing.TB, n int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n*n)
	for k := range data {
		data[k] = rng.Float64()*2 - 1
	}
	for i := 0; i < n; i++ {
		data[i*n+i] += float64(n)
	}

	return MustFrom(tb, n, n, data...)
}

// RequireApprox compares two float slices within delta using go-cmp.
func RequireApprox(tb testing.TB, want, got []float64) {
	tb.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, delta)); diff != "" {
		tb.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

// RequireClose asserts AllClose(got, want, 0, delta).
func RequireClose(tb testing.TB, want, got *matrix.Dense) {
	tb.Helper()
	ok, err := matrix.AllClose(got, want, 0, delta)
	require.NoError(tb, err)
	require.Truef(tb, ok, "matrices differ:\nwant:\n%vgot:\n%v", want, got)
}
