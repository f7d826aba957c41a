// SPDX-License-Identifier: MIT
package mathlib

// Lib is the backend-agnostic set of elementary math primitives kernels are
// restricted to calling. Kernels receive a Lib as their first argument and
// never reach for the math package directly.
//
// The contract mirrors the needs of the kernel corpus exactly; nothing more:
//
//   - elementary functions: Sqrt, Exp, Log, trig, hyperbolics and inverses
//   - ArcTan2(y, x) with the usual quadrant convention
//   - Absolute, Sign (−1, 0 or +1), CopySign(magnitude, sign)
//   - IsClose — tolerant comparison: |a−b| ≤ atol + rtol·|b|, with optional
//     NaN==NaN equality
//   - NaNToNum — substitution of non-finite values: NaN→nan, +Inf→posinf,
//     −Inf→neginf (pass ±Inf to keep infinities as-is)
//   - Maximum, Minimum, and the constants Pi and Inf
//
// Implementations must be stateless comparable values; vectors carry their
// Lib and binary operations compare the two by interface equality.
type Lib interface {
	Sqrt(x float64) float64
	Exp(x float64) float64
	Log(x float64) float64

	Sin(x float64) float64
	Cos(x float64) float64
	Tan(x float64) float64
	Sinh(x float64) float64
	Cosh(x float64) float64
	Tanh(x float64) float64
	ArcSin(x float64) float64
	ArcCos(x float64) float64
	ArcTan(x float64) float64
	ArcTan2(y, x float64) float64
	ArcSinh(x float64) float64
	ArcCosh(x float64) float64
	ArcTanh(x float64) float64

	Absolute(x float64) float64
	Sign(x float64) float64
	CopySign(magnitude, sign float64) float64
	IsClose(a, b, rtol, atol float64, equalNaN bool) bool
	NaNToNum(x, nan, posinf, neginf float64) float64
	Maximum(a, b float64) float64
	Minimum(a, b float64) float64

	Pi() float64
	Inf() float64
}

// Default is the backend used when none is specified: IEEE double precision.
var Default Lib = Float64{}
