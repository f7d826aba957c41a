// SPDX-License-Identifier: MIT
package mathlib

import "math"

// Float64 is the default backend: IEEE double precision via the standard
// math package. The zero value is ready to use.
type Float64 struct{}

func (Float64) Sqrt(x float64) float64    { return math.Sqrt(x) }
func (Float64) Exp(x float64) float64     { return math.Exp(x) }
func (Float64) Log(x float64) float64     { return math.Log(x) }
func (Float64) Sin(x float64) float64     { return math.Sin(x) }
func (Float64) Cos(x float64) float64     { return math.Cos(x) }
func (Float64) Tan(x float64) float64     { return math.Tan(x) }
func (Float64) Sinh(x float64) float64    { return math.Sinh(x) }
func (Float64) Cosh(x float64) float64    { return math.Cosh(x) }
func (Float64) Tanh(x float64) float64    { return math.Tanh(x) }
func (Float64) ArcSin(x float64) float64  { return math.Asin(x) }
func (Float64) ArcCos(x float64) float64  { return math.Acos(x) }
func (Float64) ArcTan(x float64) float64  { return math.Atan(x) }
func (Float64) ArcTan2(y, x float64) float64 { return math.Atan2(y, x) }
func (Float64) ArcSinh(x float64) float64 { return math.Asinh(x) }
func (Float64) ArcCosh(x float64) float64 { return math.Acosh(x) }
func (Float64) ArcTanh(x float64) float64 { return math.Atanh(x) }

func (Float64) Absolute(x float64) float64 { return math.Abs(x) }

// Sign returns −1, 0 or +1 for finite x, and NaN for NaN.
func (Float64) Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	case math.IsNaN(x):
		return x
	default:
		return 0
	}
}

func (Float64) CopySign(magnitude, sign float64) float64 {
	return math.Copysign(magnitude, sign)
}

// IsClose reports |a−b| ≤ atol + rtol·|b|. Infinities of the same sign
// compare close; NaNs compare close only when equalNaN is set.
func (Float64) IsClose(a, b, rtol, atol float64, equalNaN bool) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return equalNaN && math.IsNaN(a) && math.IsNaN(b)
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// NaNToNum substitutes non-finite values: NaN→nan, +Inf→posinf, −Inf→neginf.
// Passing ±Inf as the respective replacement keeps infinities untouched.
func (Float64) NaNToNum(x, nan, posinf, neginf float64) float64 {
	switch {
	case math.IsNaN(x):
		return nan
	case math.IsInf(x, 1):
		return posinf
	case math.IsInf(x, -1):
		return neginf
	default:
		return x
	}
}

func (Float64) Maximum(a, b float64) float64 { return math.Max(a, b) }
func (Float64) Minimum(a, b float64) float64 { return math.Min(a, b) }

func (Float64) Pi() float64  { return math.Pi }
func (Float64) Inf() float64 { return math.Inf(1) }
