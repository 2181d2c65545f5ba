// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles finite-value validation in Set and NewDenseFrom.
	// Off by default: Set fails only on bad indices unless the caller opts in.
	DefaultValidateNaNInf = false

	// DefaultSingularTolerance is the |det| threshold at or below which Inverse
	// reports ErrSingular. Zero means the exact det == 0 rule.
	DefaultSingularTolerance = 0.0
)

const panicSingularTolInvalid = "matrix: WithSingularTolerance: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	validateNaNInf bool    // DefaultValidateNaNInf
	singularTol    float64 // >= 0; DefaultSingularTolerance
}

// ValidateNaNInf reports whether NaN/±Inf writes are rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// SingularTolerance returns the |det| threshold used by Inverse.
func (o Options) SingularTolerance() float64 { return o.singularTol }

// WithValidateNaNInf enables rejection of NaN/±Inf in Set and NewDenseFrom.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-value policy (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithSingularTolerance makes Inverse treat |det| <= eps as singular.
//
// Behavior highlights:
//   - eps == 0 keeps the exact-equality rule (the default).
//   - eps > 0 is an explicit deviation: near-singular matrices that would
//     otherwise invert to huge values now fail with ErrSingular.
//
// Panics if eps is negative, NaN or ±Inf.
func WithSingularTolerance(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicSingularTolInvalid)
	}

	return func(o *Options) { o.singularTol = eps }
}

// NewOptions resolves opts on top of the defaults and returns the result.
// Useful for inspecting the effective configuration in tests.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		singularTol:    DefaultSingularTolerance,
	}
}

// gatherOptions applies user options in order; nil options are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
