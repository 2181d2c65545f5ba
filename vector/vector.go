// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

// Vector is an ordered sequence of float64 components.
type Vector []float64

const (
	opDot     = "Dot"
	opCross   = "Cross"
	opAdd     = "Add"
	opSub     = "Sub"
	opProj    = "Proj"
	opReflect = "Reflect"
)

// crossDim is the only dimension the cross product is defined for here.
const crossDim = 3

func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

func sameLen(tag string, a, b int) error {
	if a != b {
		return vectorErrorf(tag, fmt.Errorf("len %d vs %d: %w", a, b, ErrDimensionMismatch))
	}

	return nil
}

// Dot returns Σ a[i]*b[i]. Empty vectors give 0.
//
// Errors: ErrDimensionMismatch when len(a) != len(b).
func Dot[V ~[]float64](a, b V) (float64, error) {
	if err := sameLen(opDot, len(a), len(b)); err != nil {
		return 0, err
	}

	return dot(a, b), nil
}

// dot assumes equal lengths.
func dot[V ~[]float64](a, b V) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// Cross returns the 3D cross product a × b.
//
// Errors: ErrInvalidDimension unless both operands have length 3.
func Cross[V ~[]float64](a, b V) (V, error) {
	if len(a) != crossDim || len(b) != crossDim {
		return nil, vectorErrorf(opCross, fmt.Errorf("len %d, %d: %w", len(a), len(b), ErrInvalidDimension))
	}
	c := Cross3([3]float64{a[0], a[1], a[2]}, [3]float64{b[0], b[1], b[2]})

	return V{c[0], c[1], c[2]}, nil
}

// Cross3 is the array form of Cross; the length is fixed by the type.
func Cross3(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Magnitude returns the Euclidean length sqrt(Dot(v, v)).
func Magnitude[V ~[]float64](v V) float64 {
	return math.Sqrt(dot(v, v))
}

// Normalize divides every component by Magnitude(v).
//
// A zero vector is not an error: the division yields NaN components
// (0/0) following IEEE-754. Callers that need a unit vector must check
// Magnitude first.
func Normalize[V ~[]float64](v V) V {
	mag := Magnitude(v)

	return V(lo.Map([]float64(v), func(x float64, _ int) float64 { return x / mag }))
}

// Scale returns s*v.
func Scale[V ~[]float64](s float64, v V) V {
	return V(lo.Map([]float64(v), func(x float64, _ int) float64 { return s * x }))
}

// Add returns a + b element-wise.
//
// Errors: ErrDimensionMismatch when len(a) != len(b).
func Add[V ~[]float64](a, b V) (V, error) {
	if err := sameLen(opAdd, len(a), len(b)); err != nil {
		return nil, err
	}

	return V(lo.Map([]float64(a), func(x float64, i int) float64 { return x + b[i] })), nil
}

// Sub returns a - b, defined as Add(a, Scale(-1, b)).
//
// Errors: ErrDimensionMismatch when len(a) != len(b).
func Sub[V ~[]float64](a, b V) (V, error) {
	out, err := Add(a, Scale(-1, b))
	if err != nil {
		return nil, vectorErrorf(opSub, err)
	}

	return out, nil
}

// Proj returns the projection of b onto a: (a·b / a·a) * a.
//
// Errors:
//   - ErrDimensionMismatch when len(a) != len(b).
//   - ErrDegenerate when a·a == 0 exactly (projection onto the zero vector).
func Proj[V ~[]float64](a, b V) (V, error) {
	if err := sameLen(opProj, len(a), len(b)); err != nil {
		return nil, err
	}
	denom := dot(a, a)
	if denom == 0 {
		return nil, vectorErrorf(opProj, ErrDegenerate)
	}

	return Scale(dot(a, b)/denom, a), nil
}

// Reflect reflects the incident vector a about the normal b: a - 2(b·a)b.
// b is not required to be unit length; a non-unit normal scales the result.
//
// Errors: ErrDimensionMismatch when len(a) != len(b).
func Reflect[V ~[]float64](a, b V) (V, error) {
	if err := sameLen(opReflect, len(a), len(b)); err != nil {
		return nil, err
	}
	k := 2 * dot(b, a)

	return V(lo.Map([]float64(a), func(x float64, i int) float64 { return x - k*b[i] })), nil
}
