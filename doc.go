// Package linalg is a small linear-algebra toolkit for dense float64 data.
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/: Dense row-major matrix, arithmetic, determinant, adjugate, inverse
//	vector/: dot/cross product, magnitude, normalize, projection, reflection
//	interp/: Lerp, Herp (smoothstep), Clamp, Fract
//
// Quick example:
//
//	m, _ := matrix.NewDenseFrom(2, 2, []float64{2, 2, 4, 5})
//	inv, _ := matrix.Inverse(m)  // [[2.5 -1] [-2 1]]
//	x, _ := matrix.MatVec(inv, []float64{2, 4})
//
// Every operation is synchronous and pure: no goroutines, no I/O, no
// global state. See examples/circuit_currents for an end-to-end program.
package linalg
