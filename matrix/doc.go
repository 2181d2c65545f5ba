// Package matrix provides a dense, row-major float64 matrix and the
// classic small-matrix algebra built on it.
//
// The matrix package provides:
//
//   - Dense: fixed-shape r×c storage with bounds-checked At/Set, copying
//     Row/Col accessors and a RawData escape hatch to the live buffer.
//   - Arithmetic: Identity, Add, Sub, Scale, Mul, MatVec, Transpose.
//   - Cofactor algebra: SubMatrix (minors), Det (recursive Laplace
//     expansion), Adj (adjugate) and Inverse (Adj / Det).
//   - AllClose for tolerance comparisons and ToGonum/FromGonum for handing
//     data to gonum when larger problems need real factorizations.
//
// Every operation returns a fresh *Dense and leaves its operands untouched.
// Failures are sentinel errors (ErrInvalidDimensions, ErrDimensionMismatch,
// ErrOutOfRange, ErrNonSquare, ErrSingular, ErrNilMatrix) wrapped with the
// operation name; match them with errors.Is.
//
// Det is O(n!). That is a deliberate choice for small matrices; use
// ToGonum for anything beyond ~10×10.
//
// See the examples in this package for usage patterns.
package matrix
