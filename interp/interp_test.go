// SPDX-License-Identifier: MIT

package interp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/linalg/interp"
)

const delta = 1e-4

func TestLerp(t *testing.T) {
	for _, tc := range []struct{ start, end, t, want float64 }{
		{0, 0, 0, 0},
		{-1, 1, 0.5, 0},
		{0, 1, 0, 0},
		{0, 1, 1, 1},
		{0, 1, 0.5, 0.5},
		{0, 100, 0.25, 25},
		{-100, 100, 0.25, -50},
	} {
		assert.InDelta(t, tc.want, interp.Lerp(tc.start, tc.end, tc.t), delta, "%+v", tc)
	}
}

func TestHerp(t *testing.T) {
	for _, tc := range []struct{ start, end, t, want float64 }{
		{0, 0, 0, 0},
		{-1, 1, 0.5, 0},
		{0, 1, 0, 0},
		{0, 1, 1, 1},
		{0, 1, 0.5, 0.5},
		{0, 100, 0.25, 15.625},
	} {
		assert.InDelta(t, tc.want, interp.Herp(tc.start, tc.end, tc.t), delta, "%+v", tc)
	}
}

func TestInverseLerp(t *testing.T) {
	assert.InDelta(t, 0.25, interp.InverseLerp(0, 100, 25), delta)
	assert.InDelta(t, 0.25, interp.InverseLerp(-100, 100, -50), delta)
	assert.True(t, math.IsNaN(interp.InverseLerp(3, 3, 3)))
}

func TestClamp(t *testing.T) {
	for _, tc := range []struct{ x, want float64 }{
		{2, 2},
		{9.9, 9.9},
		{10, 10},
		{10000, 10},
		{-10000, -10},
		{10.9999, 10},
	} {
		assert.InDelta(t, tc.want, interp.Clamp(tc.x, -10, 10), delta, "x=%v", tc.x)
	}
}

func TestFract(t *testing.T) {
	for _, tc := range []struct{ x, want float64 }{
		{3.14159, 0.14159},
		{-3.14159, -0.14159},
		{0.1, 0.1},
		{0, 0},
		{-1, 0},
		{3, 0},
		{-3.25, -0.25},
	} {
		assert.InDelta(t, tc.want, interp.Fract(tc.x), delta, "x=%v", tc.x)
	}
	assert.True(t, math.IsNaN(interp.Fract(math.NaN())))
}
