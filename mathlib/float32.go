// SPDX-License-Identifier: MIT
package mathlib

import "math"

// Float32 evaluates every elementary function in single precision and widens
// the result back to float64. It exists as a genuinely distinct backend:
// vectors built on Float32 refuse to mix with Float64 vectors in binary
// operations, and its reduced precision makes the backend boundary visible
// in tests.
type Float32 struct{}

// f32 rounds through single precision.
func f32(x float64) float64 { return float64(float32(x)) }

func (Float32) Sqrt(x float64) float64    { return f32(math.Sqrt(f32(x))) }
func (Float32) Exp(x float64) float64     { return f32(math.Exp(f32(x))) }
func (Float32) Log(x float64) float64     { return f32(math.Log(f32(x))) }
func (Float32) Sin(x float64) float64     { return f32(math.Sin(f32(x))) }
func (Float32) Cos(x float64) float64     { return f32(math.Cos(f32(x))) }
func (Float32) Tan(x float64) float64     { return f32(math.Tan(f32(x))) }
func (Float32) Sinh(x float64) float64    { return f32(math.Sinh(f32(x))) }
func (Float32) Cosh(x float64) float64    { return f32(math.Cosh(f32(x))) }
func (Float32) Tanh(x float64) float64    { return f32(math.Tanh(f32(x))) }
func (Float32) ArcSin(x float64) float64  { return f32(math.Asin(f32(x))) }
func (Float32) ArcCos(x float64) float64  { return f32(math.Acos(f32(x))) }
func (Float32) ArcTan(x float64) float64  { return f32(math.Atan(f32(x))) }
func (Float32) ArcTan2(y, x float64) float64 { return f32(math.Atan2(f32(y), f32(x))) }
func (Float32) ArcSinh(x float64) float64 { return f32(math.Asinh(f32(x))) }
func (Float32) ArcCosh(x float64) float64 { return f32(math.Acosh(f32(x))) }
func (Float32) ArcTanh(x float64) float64 { return f32(math.Atanh(f32(x))) }

func (Float32) Absolute(x float64) float64 { return math.Abs(f32(x)) }

func (Float32) Sign(x float64) float64 { return Float64{}.Sign(x) }

func (Float32) CopySign(magnitude, sign float64) float64 {
	return math.Copysign(f32(magnitude), sign)
}

func (Float32) IsClose(a, b, rtol, atol float64, equalNaN bool) bool {
	return Float64{}.IsClose(f32(a), f32(b), rtol, atol, equalNaN)
}

func (Float32) NaNToNum(x, nan, posinf, neginf float64) float64 {
	return f32(Float64{}.NaNToNum(x, nan, posinf, neginf))
}

func (Float32) Maximum(a, b float64) float64 { return math.Max(f32(a), f32(b)) }
func (Float32) Minimum(a, b float64) float64 { return math.Min(f32(a), f32(b)) }

func (Float32) Pi() float64  { return f32(math.Pi) }
func (Float32) Inf() float64 { return math.Inf(1) }
