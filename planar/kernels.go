// SPDX-License-Identifier: MIT
// Package planar: native kernels. Pure functions over (lib, raw components)
// with straight-line arithmetic only — no branches, no loops — so the same
// source serves any mathlib backend. Numeric edge policy is explicit per
// kernel (nan_to_num substitutions), never an exception.

package planar

import (
	"github.com/katalvlaran/hepvec/coords"
	"github.com/katalvlaran/hepvec/mathlib"
)

// Kernel signatures, one per operand/result shape.
type (
	// ScalarKernel maps one azimuthal operand to a scalar.
	ScalarKernel = func(lib mathlib.Lib, a, b float64) float64
	// VectorKernel maps one azimuthal operand to new azimuthal components.
	VectorKernel = func(lib mathlib.Lib, a, b float64) (float64, float64)
	// ParamVectorKernel is a VectorKernel with a leading free parameter
	// (rotation angle, scale factor).
	ParamVectorKernel = func(lib mathlib.Lib, p, a, b float64) (float64, float64)
	// TransformKernel applies a 2×2 matrix given by its elements.
	TransformKernel = func(lib mathlib.Lib, xx, xy, yx, yy, a, b float64) (float64, float64)
	// ScalarKernel2 maps two azimuthal operands to a scalar.
	ScalarKernel2 = func(lib mathlib.Lib, a1, b1, a2, b2 float64) float64
	// VectorKernel2 maps two azimuthal operands to new azimuthal components.
	VectorKernel2 = func(lib mathlib.Lib, a1, b1, a2, b2 float64) (float64, float64)
	// BoolKernel2 is a two-operand predicate.
	BoolKernel2 = func(lib mathlib.Lib, a1, b1, a2, b2 float64) bool
	// TolBoolKernel2 is a two-operand predicate with a leading tolerance.
	TolBoolKernel2 = func(lib mathlib.Lib, tol, a1, b1, a2, b2 float64) bool
	// CloseKernel2 is the tolerant-equality predicate shape.
	CloseKernel2 = func(lib mathlib.Lib, rtol, atol float64, equalNaN bool, a1, b1, a2, b2 float64) bool
)

// rectify wraps an angle into (−π, π]. Expressed through arctan2 so the
// kernel stays straight-line and uses lib primitives only.
func rectify(lib mathlib.Lib, phi float64) float64 {
	return lib.ArcTan2(lib.Sin(phi), lib.Cos(phi))
}

// Coordinate conversion kernels. These are both the public coordinate
// operations and the converters the generation passes compose with.

func xFromXY(lib mathlib.Lib, x, y float64) float64 { return x }

func xFromRhoPhi(lib mathlib.Lib, rho, phi float64) float64 { return rho * lib.Cos(phi) }

func yFromXY(lib mathlib.Lib, x, y float64) float64 { return y }

func yFromRhoPhi(lib mathlib.Lib, rho, phi float64) float64 { return rho * lib.Sin(phi) }

func rho2FromXY(lib mathlib.Lib, x, y float64) float64 { return x*x + y*y }

func rho2FromRhoPhi(lib mathlib.Lib, rho, phi float64) float64 { return rho * rho }

func rhoFromXY(lib mathlib.Lib, x, y float64) float64 { return lib.Sqrt(rho2FromXY(lib, x, y)) }

func rhoFromRhoPhi(lib mathlib.Lib, rho, phi float64) float64 { return rho }

func phiFromXY(lib mathlib.Lib, x, y float64) float64 { return lib.ArcTan2(y, x) }

func phiFromRhoPhi(lib mathlib.Lib, rho, phi float64) float64 { return phi }

// XYConverters returns the kernels producing Cartesian x and y from
// components of kind az. This is the composition hook the spatial and
// lorentz generation passes build on.
func XYConverters(az coords.AzimuthalKind) (toX, toY ScalarKernel) {
	if az == coords.KindRhoPhi {
		return xFromRhoPhi, yFromRhoPhi
	}

	return xFromXY, yFromXY
}

// RhoKernel returns the transverse-magnitude kernel for kind az, used by
// predicate factories here and in spatial.
func RhoKernel(az coords.AzimuthalKind) ScalarKernel {
	if az == coords.KindRhoPhi {
		return rhoFromRhoPhi
	}

	return rhoFromXY
}

// PhiKernel returns the azimuthal-angle kernel for kind az.
func PhiKernel(az coords.AzimuthalKind) ScalarKernel {
	if az == coords.KindRhoPhi {
		return phiFromRhoPhi
	}

	return phiFromXY
}

// Dot product.

func dotXYXY(lib mathlib.Lib, x1, y1, x2, y2 float64) float64 {
	return x1*x2 + y1*y2
}

// Polar operands never leave polar form: |v1||v2|cos(Δφ).
func dotRhoPhiRhoPhi(lib mathlib.Lib, rho1, phi1, rho2, phi2 float64) float64 {
	return rho1 * rho2 * lib.Cos(phi1-phi2)
}

// Addition.

func addXYXY(lib mathlib.Lib, x1, y1, x2, y2 float64) (float64, float64) {
	return x1 + x2, y1 + y2
}

// Polar addition resolved in the frame of operand 1, keeping polar form.
func addRhoPhiRhoPhi(lib mathlib.Lib, rho1, phi1, rho2, phi2 float64) (float64, float64) {
	diff := phi2 - phi1
	u := rho2 * lib.Cos(diff)
	v := rho2 * lib.Sin(diff)

	return lib.Sqrt((rho1+u)*(rho1+u) + v*v), rectify(lib, phi1+lib.ArcTan2(v, rho1+u))
}

// Subtraction.

func subtractXYXY(lib mathlib.Lib, x1, y1, x2, y2 float64) (float64, float64) {
	return x1 - x2, y1 - y2
}

// Polar subtraction is polar addition of the π-turned second operand.
func subtractRhoPhiRhoPhi(lib mathlib.Lib, rho1, phi1, rho2, phi2 float64) (float64, float64) {
	return addRhoPhiRhoPhi(lib, rho1, phi1, rho2, rectify(lib, phi2+lib.Pi()))
}

// Angular difference, wrapped into (−π, π].

func deltaPhiXYXY(lib mathlib.Lib, x1, y1, x2, y2 float64) float64 {
	return rectify(lib, phiFromXY(lib, x1, y1)-phiFromXY(lib, x2, y2))
}

func deltaPhiRhoPhiRhoPhi(lib mathlib.Lib, rho1, phi1, rho2, phi2 float64) float64 {
	return rectify(lib, phi1-phi2)
}

// Rotation about the z axis. Each kind keeps its own representation.

func rotateZXY(lib mathlib.Lib, angle, x, y float64) (float64, float64) {
	s := lib.Sin(angle)
	c := lib.Cos(angle)

	return c*x - s*y, s*x + c*y
}

func rotateZRhoPhi(lib mathlib.Lib, angle, rho, phi float64) (float64, float64) {
	return rho, rectify(lib, phi+angle)
}

// Scaling by a signed factor. A negative factor turns a polar vector by π
// instead of producing a negative rho.

func scaleXY(lib mathlib.Lib, factor, x, y float64) (float64, float64) {
	return x * factor, y * factor
}

func scaleRhoPhi(lib mathlib.Lib, factor, rho, phi float64) (float64, float64) {
	absfactor := lib.Absolute(factor)
	turnIfNegative := -0.5 * (lib.Sign(factor) - 1) * lib.Pi()

	return rho * absfactor, rectify(lib, phi+turnIfNegative)
}

// Unit vector. The zero vector maps to zero components, not NaN.

func unitXY(lib mathlib.Lib, x, y float64) (float64, float64) {
	norm := rhoFromXY(lib, x, y)
	inf := lib.Inf()

	return lib.NaNToNum(x/norm, 0, inf, -inf), lib.NaNToNum(y/norm, 0, inf, -inf)
}

func unitRhoPhi(lib mathlib.Lib, rho, phi float64) (float64, float64) {
	return 1, phi
}

// Linear transformation by an explicit 2×2 matrix, always Cartesian.

func transform2DXY(lib mathlib.Lib, xx, xy, yx, yy, x, y float64) (float64, float64) {
	return xx*x + xy*y, yx*x + yy*y
}

// Exact equality on raw components; mixed-kind combinations are generated
// by converting operand 2 into operand 1's representation.

func equalXYXY(lib mathlib.Lib, x1, y1, x2, y2 float64) bool {
	return x1 == x2 && y1 == y2
}

func equalRhoPhiRhoPhi(lib mathlib.Lib, rho1, phi1, rho2, phi2 float64) bool {
	return rho1 == rho2 && phi1 == phi2
}

// Tolerant equality, component-wise.

func isCloseXYXY(lib mathlib.Lib, rtol, atol float64, equalNaN bool, x1, y1, x2, y2 float64) bool {
	return lib.IsClose(x1, x2, rtol, atol, equalNaN) &&
		lib.IsClose(y1, y2, rtol, atol, equalNaN)
}

func isCloseRhoPhiRhoPhi(lib mathlib.Lib, rtol, atol float64, equalNaN bool, rho1, phi1, rho2, phi2 float64) bool {
	return lib.IsClose(rho1, rho2, rtol, atol, equalNaN) &&
		lib.IsClose(phi1, phi2, rtol, atol, equalNaN)
}
