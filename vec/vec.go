// SPDX-License-Identifier: MIT
package vec

import (
	"github.com/katalvlaran/hepvec/mathlib"
)

// Default tolerances for the predicate methods. The angular predicates
// (IsParallel, IsAntiparallel, IsPerpendicular, and the causal classifiers)
// take one absolute tolerance; IsClose takes a relative and an absolute
// one.
const (
	DefaultTolerance = 1e-5
	DefaultRtol      = 1e-5
	DefaultAtol      = 1e-8
)

// Option configures a constructor.
type Option func(*options)

type options struct {
	lib mathlib.Lib
}

// WithLib selects the math backend for a new vector. The default is
// mathlib.Default (IEEE double precision).
func WithLib(lib mathlib.Lib) Option {
	return func(o *options) { o.lib = lib }
}

func buildOptions(opts []Option) options {
	o := options{lib: mathlib.Default}
	for _, apply := range opts {
		apply(&o)
	}

	return o
}

// The dispatch tables cover the full kind cross-product, so the only error
// an operation can return for vectors built by this package is a backend
// mismatch. That is a programmer error here, hence the panics.

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func mustFloat(v float64, err error) float64 {
	must(err)

	return v
}

func mustBool(b bool, err error) bool {
	must(err)

	return b
}

// tolOrDefault reads an optional per-call tolerance override.
func tolOrDefault(tol []float64) float64 {
	if len(tol) > 0 {
		return tol[0]
	}

	return DefaultTolerance
}

// closeTols reads optional rtol/atol overrides for IsClose.
func closeTols(tols []float64) (rtol, atol float64) {
	rtol, atol = DefaultRtol, DefaultAtol
	if len(tols) > 0 {
		rtol = tols[0]
	}
	if len(tols) > 1 {
		atol = tols[1]
	}

	return rtol, atol
}
