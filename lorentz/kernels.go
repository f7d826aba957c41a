// SPDX-License-Identifier: MIT
// Package lorentz: kernel shapes and the temporal converters every
// generation pass composes with. There is no hand-written per-signature
// grid here: the temporal axis has two kinds, and each converter below is a
// factory over the operand's spatial signature.

package lorentz

import (
	"github.com/katalvlaran/hepvec/coords"
	"github.com/katalvlaran/hepvec/mathlib"
	"github.com/katalvlaran/hepvec/spatial"
)

// Kernel signatures. Operands carry four raw components (a, b azimuthal, c
// longitudinal, d temporal).
type (
	// ScalarKernel maps one Lorentz operand to a scalar.
	ScalarKernel = func(lib mathlib.Lib, a, b, c, d float64) float64
	// VectorKernel maps one Lorentz operand to new Lorentz components.
	VectorKernel = func(lib mathlib.Lib, a, b, c, d float64) (float64, float64, float64, float64)
	// ParamVectorKernel is a VectorKernel with a leading free parameter
	// (boost velocity, boost gamma, scale factor).
	ParamVectorKernel = func(lib mathlib.Lib, p, a, b, c, d float64) (float64, float64, float64, float64)
	// Beta3Kernel maps one Lorentz operand to spatial velocity components.
	Beta3Kernel = func(lib mathlib.Lib, a, b, c, d float64) (float64, float64, float64)
	// TransformKernel applies an explicit 4×4 matrix.
	TransformKernel = func(lib mathlib.Lib, m Matrix4, a, b, c, d float64) (float64, float64, float64, float64)
	// BoostVectorKernel boosts operand 1 by the velocity 3-vector given as
	// operand 2's raw spatial components.
	BoostVectorKernel = func(lib mathlib.Lib, a1, b1, c1, d1, a2, b2, c2 float64) (float64, float64, float64, float64)
	// ScalarKernel2 maps two Lorentz operands to a scalar.
	ScalarKernel2 = func(lib mathlib.Lib, a1, b1, c1, d1, a2, b2, c2, d2 float64) float64
	// VectorKernel2 maps two Lorentz operands to new Lorentz components.
	VectorKernel2 = func(lib mathlib.Lib, a1, b1, c1, d1, a2, b2, c2, d2 float64) (float64, float64, float64, float64)
	// BoolKernel2 is a two-operand predicate.
	BoolKernel2 = func(lib mathlib.Lib, a1, b1, c1, d1, a2, b2, c2, d2 float64) bool
	// TolBoolKernel is a one-operand predicate with a leading tolerance
	// (causal classification).
	TolBoolKernel = func(lib mathlib.Lib, tol, a, b, c, d float64) bool
	// CloseKernel2 is the tolerant-equality predicate shape.
	CloseKernel2 = func(lib mathlib.Lib, rtol, atol float64, equalNaN bool, a1, b1, c1, d1, a2, b2, c2, d2 float64) bool
)

// Matrix4 is an explicit 4×4 transformation, row major, rows and columns
// ordered (x, y, z, t).
type Matrix4 struct {
	XX, XY, XZ, XT float64
	YX, YY, YZ, YT float64
	ZX, ZY, ZZ, ZT float64
	TX, TY, TZ, TT float64
}

// TKernel returns the coordinate-time converter for signature sig. For tau
// operands: t = sqrt(copysign(tau², tau) + mag²), so a negative (spacelike)
// tau reduces rather than grows the recovered t.
func TKernel(sig coords.LorentzSig) ScalarKernel {
	if sig.Tem == coords.KindT {
		return func(lib mathlib.Lib, a, b, c, d float64) float64 { return d }
	}
	mag2 := spatial.Mag2Kernel(sig.Spatial())

	return func(lib mathlib.Lib, a, b, c, d float64) float64 {
		return lib.Sqrt(lib.CopySign(d*d, d) + mag2(lib, a, b, c))
	}
}

// T2Kernel returns the squared-coordinate-time converter for sig.
func T2Kernel(sig coords.LorentzSig) ScalarKernel {
	if sig.Tem == coords.KindT {
		return func(lib mathlib.Lib, a, b, c, d float64) float64 { return d * d }
	}
	mag2 := spatial.Mag2Kernel(sig.Spatial())

	return func(lib mathlib.Lib, a, b, c, d float64) float64 {
		return lib.CopySign(d*d, d) + mag2(lib, a, b, c)
	}
}

// TauKernel returns the signed proper-time converter for sig.
func TauKernel(sig coords.LorentzSig) ScalarKernel {
	if sig.Tem == coords.KindTau {
		return func(lib mathlib.Lib, a, b, c, d float64) float64 { return d }
	}
	tau2 := Tau2Kernel(sig)

	return func(lib mathlib.Lib, a, b, c, d float64) float64 {
		squared := tau2(lib, a, b, c, d)

		return lib.CopySign(lib.Sqrt(lib.Absolute(squared)), squared)
	}
}

// Tau2Kernel returns the signed squared-proper-time converter for sig:
// t² − mag² for t operands, copysign(tau², tau) for tau operands.
func Tau2Kernel(sig coords.LorentzSig) ScalarKernel {
	if sig.Tem == coords.KindTau {
		return func(lib mathlib.Lib, a, b, c, d float64) float64 {
			return lib.CopySign(d*d, d)
		}
	}
	mag2 := spatial.Mag2Kernel(sig.Spatial())

	return func(lib mathlib.Lib, a, b, c, d float64) float64 {
		return d*d - mag2(lib, a, b, c)
	}
}

// XYZTConverters returns kernels producing Cartesian x, y, z, t from raw
// components of signature sig.
func XYZTConverters(sig coords.LorentzSig) (toX, toY, toZ, toT ScalarKernel) {
	spX, spY, spZ := spatial.XYZConverters(sig.Spatial())
	toX = func(lib mathlib.Lib, a, b, c, d float64) float64 { return spX(lib, a, b, c) }
	toY = func(lib mathlib.Lib, a, b, c, d float64) float64 { return spY(lib, a, b, c) }
	toZ = func(lib mathlib.Lib, a, b, c, d float64) float64 { return spZ(lib, a, b, c) }

	return toX, toY, toZ, TKernel(sig)
}

// tauFromT recovers a signed tau from result components in spatial
// signature sp plus a coordinate time. Used when both operands of a binary
// operation are tau-kind, so the result stays tau-kind.
func tauFromT(sp coords.SpatialSig) func(lib mathlib.Lib, a, b, c, t float64) float64 {
	mag2 := spatial.Mag2Kernel(sp)

	return func(lib mathlib.Lib, a, b, c, t float64) float64 {
		squared := t*t - mag2(lib, a, b, c)

		return lib.CopySign(lib.Sqrt(lib.Absolute(squared)), squared)
	}
}

// rectify wraps an angle into (−π, π].
func rectify(lib mathlib.Lib, phi float64) float64 {
	return lib.ArcTan2(lib.Sin(phi), lib.Cos(phi))
}
