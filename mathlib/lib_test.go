package mathlib_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hepvec/mathlib"
	"github.com/stretchr/testify/assert"
)

// TestFloat64_Sign verifies the three-valued sign convention and NaN
// propagation.
func TestFloat64_Sign(t *testing.T) {
	lib := mathlib.Float64{}

	assert.Equal(t, 1.0, lib.Sign(2.5), "positive input must give +1")
	assert.Equal(t, -1.0, lib.Sign(-0.1), "negative input must give -1")
	assert.Equal(t, 0.0, lib.Sign(0), "zero must give 0")
	assert.True(t, math.IsNaN(lib.Sign(math.NaN())), "NaN must propagate")
}

// TestFloat64_NaNToNum checks all three substitution slots and that finite
// values pass through untouched.
func TestFloat64_NaNToNum(t *testing.T) {
	lib := mathlib.Float64{}
	inf := math.Inf(1)

	assert.Equal(t, 0.0, lib.NaNToNum(math.NaN(), 0, inf, -inf), "NaN slot")
	assert.Equal(t, 99.0, lib.NaNToNum(inf, 0, 99, -inf), "+Inf slot")
	assert.Equal(t, -99.0, lib.NaNToNum(-inf, 0, inf, -99), "-Inf slot")
	assert.Equal(t, 1.25, lib.NaNToNum(1.25, 0, inf, -inf), "finite passthrough")

	// Passing ±Inf as the replacements keeps infinities as-is.
	assert.True(t, math.IsInf(lib.NaNToNum(inf, 0, inf, -inf), 1), "keep +Inf")
}

// TestFloat64_IsClose exercises the tolerance formula and the NaN/Inf edges.
func TestFloat64_IsClose(t *testing.T) {
	lib := mathlib.Float64{}

	assert.True(t, lib.IsClose(1.0, 1.0+1e-9, 1e-5, 1e-8, false), "within rtol")
	assert.False(t, lib.IsClose(1.0, 1.1, 1e-5, 1e-8, false), "outside rtol")
	assert.True(t, lib.IsClose(0, 1e-9, 0, 1e-8, false), "within atol at zero")

	nan := math.NaN()
	assert.False(t, lib.IsClose(nan, nan, 1e-5, 1e-8, false), "NaN != NaN by default")
	assert.True(t, lib.IsClose(nan, nan, 1e-5, 1e-8, true), "equalNaN opt-in")

	inf := math.Inf(1)
	assert.True(t, lib.IsClose(inf, inf, 1e-5, 1e-8, false), "+Inf == +Inf")
	assert.False(t, lib.IsClose(inf, -inf, 1e-5, 1e-8, false), "+Inf != -Inf")
	assert.False(t, lib.IsClose(inf, 1, 1e-5, 1e-8, false), "+Inf != finite")
}

// TestFloat64_CopySign pins the sign-transfer semantics kernels rely on for
// the signed invariant-mass policy.
func TestFloat64_CopySign(t *testing.T) {
	lib := mathlib.Float64{}

	assert.Equal(t, -3.0, lib.CopySign(3, -2), "negative sign source")
	assert.Equal(t, 3.0, lib.CopySign(-3, 2), "positive sign source")
}

// TestFloat32_DistinctBackend documents that Float32 is a genuinely
// different backend: same inputs, measurably different output precision,
// and a different interface identity.
func TestFloat32_DistinctBackend(t *testing.T) {
	var l64 mathlib.Lib = mathlib.Float64{}
	var l32 mathlib.Lib = mathlib.Float32{}

	assert.NotEqual(t, l64, l32, "backend identities must differ")

	exact := l64.Sqrt(2)
	rounded := l32.Sqrt(2)
	assert.InDelta(t, exact, rounded, 1e-6, "same value up to single precision")
	assert.NotEqual(t, exact, rounded, "but not bit-identical")
}
