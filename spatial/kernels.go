// SPDX-License-Identifier: MIT
// Package spatial: native kernels and per-axis converters. Same contract as
// package planar's kernels: straight-line arithmetic over (lib, raw
// components), explicit nan_to_num substitution for every degenerate
// division.

package spatial

import (
	"github.com/katalvlaran/hepvec/coords"
	"github.com/katalvlaran/hepvec/mathlib"
	"github.com/katalvlaran/hepvec/planar"
)

// Kernel signatures. Operands carry three raw components (a, b azimuthal in
// kind order, c longitudinal).
type (
	// ScalarKernel maps one spatial operand to a scalar.
	ScalarKernel = func(lib mathlib.Lib, a, b, c float64) float64
	// VectorKernel maps one spatial operand to new spatial components.
	VectorKernel = func(lib mathlib.Lib, a, b, c float64) (float64, float64, float64)
	// ParamVectorKernel is a VectorKernel with a leading free parameter.
	ParamVectorKernel = func(lib mathlib.Lib, p, a, b, c float64) (float64, float64, float64)
	// EulerKernel rotates by three intrinsic angles (phi, theta, psi).
	EulerKernel = func(lib mathlib.Lib, phi, theta, psi, a, b, c float64) (float64, float64, float64)
	// QuaternionKernel rotates by quaternion components (u, i, j, k).
	QuaternionKernel = func(lib mathlib.Lib, u, i, j, k, a, b, c float64) (float64, float64, float64)
	// TransformKernel applies a 3×3 matrix given by its elements.
	TransformKernel = func(lib mathlib.Lib, xx, xy, xz, yx, yy, yz, zx, zy, zz, a, b, c float64) (float64, float64, float64)
	// ScalarKernel2 maps two spatial operands to a scalar.
	ScalarKernel2 = func(lib mathlib.Lib, a1, b1, c1, a2, b2, c2 float64) float64
	// VectorKernel2 maps two spatial operands to new spatial components.
	VectorKernel2 = func(lib mathlib.Lib, a1, b1, c1, a2, b2, c2 float64) (float64, float64, float64)
	// AxisVectorKernel2 rotates operand 2 about operand 1 by a leading angle.
	AxisVectorKernel2 = func(lib mathlib.Lib, angle, a1, b1, c1, a2, b2, c2 float64) (float64, float64, float64)
	// BoolKernel2 is a two-operand predicate.
	BoolKernel2 = func(lib mathlib.Lib, a1, b1, c1, a2, b2, c2 float64) bool
	// TolBoolKernel2 is a two-operand predicate with a leading tolerance.
	TolBoolKernel2 = func(lib mathlib.Lib, tol, a1, b1, c1, a2, b2, c2 float64) bool
	// CloseKernel2 is the tolerant-equality predicate shape.
	CloseKernel2 = func(lib mathlib.Lib, rtol, atol float64, equalNaN bool, a1, b1, c1, a2, b2, c2 float64) bool
)

// Azimuthal converters reused from package planar. These are plain kind
// switches, safe at package-variable initialization.
var (
	xFromRhoPhi, yFromRhoPhi = planar.XYConverters(coords.KindRhoPhi)
	rhoFromXY                = planar.RhoKernel(coords.KindXY)
)

// Longitudinal converters, one per (azimuthal, longitudinal) signature.

func zXYZ(lib mathlib.Lib, x, y, z float64) float64 { return z }

// A purely transverse vector (theta = π/2) gets z = 0, not NaN; theta = 0
// on a zero-rho vector keeps the ±Inf.
func zXYTheta(lib mathlib.Lib, x, y, theta float64) float64 {
	inf := lib.Inf()

	return lib.NaNToNum(rhoFromXY(lib, x, y)/lib.Tan(theta), 0, inf, -inf)
}

func zXYEta(lib mathlib.Lib, x, y, eta float64) float64 {
	return rhoFromXY(lib, x, y) * lib.Sinh(eta)
}

func zRhoPhiZ(lib mathlib.Lib, rho, phi, z float64) float64 { return z }

func zRhoPhiTheta(lib mathlib.Lib, rho, phi, theta float64) float64 {
	inf := lib.Inf()

	return lib.NaNToNum(rho/lib.Tan(theta), 0, inf, -inf)
}

func zRhoPhiEta(lib mathlib.Lib, rho, phi, eta float64) float64 {
	return rho * lib.Sinh(eta)
}

func thetaXYZ(lib mathlib.Lib, x, y, z float64) float64 {
	return lib.ArcTan2(rhoFromXY(lib, x, y), z)
}

func thetaXYTheta(lib mathlib.Lib, x, y, theta float64) float64 { return theta }

func thetaXYEta(lib mathlib.Lib, x, y, eta float64) float64 {
	return 2 * lib.ArcTan(lib.Exp(-eta))
}

func thetaRhoPhiZ(lib mathlib.Lib, rho, phi, z float64) float64 {
	return lib.ArcTan2(rho, z)
}

func thetaRhoPhiTheta(lib mathlib.Lib, rho, phi, theta float64) float64 { return theta }

func thetaRhoPhiEta(lib mathlib.Lib, rho, phi, eta float64) float64 {
	return 2 * lib.ArcTan(lib.Exp(-eta))
}

// The zero vector gets eta = 0; a vector on the beamline keeps ±Inf.
func etaXYZ(lib mathlib.Lib, x, y, z float64) float64 {
	inf := lib.Inf()

	return lib.NaNToNum(lib.ArcTanh(z/lib.Sqrt(x*x+y*y+z*z)), 0, inf, -inf)
}

func etaXYTheta(lib mathlib.Lib, x, y, theta float64) float64 {
	inf := lib.Inf()

	return lib.NaNToNum(-lib.Log(lib.Tan(0.5*theta)), 0, inf, -inf)
}

func etaXYEta(lib mathlib.Lib, x, y, eta float64) float64 { return eta }

func etaRhoPhiZ(lib mathlib.Lib, rho, phi, z float64) float64 {
	inf := lib.Inf()

	return lib.NaNToNum(lib.ArcTanh(z/lib.Sqrt(rho*rho+z*z)), 0, inf, -inf)
}

func etaRhoPhiTheta(lib mathlib.Lib, rho, phi, theta float64) float64 {
	return -lib.Log(lib.Tan(0.5 * theta))
}

func etaRhoPhiEta(lib mathlib.Lib, rho, phi, eta float64) float64 { return eta }

// Direction cosine along z. The zero vector points "up" by convention:
// costheta = 1.
func cosThetaXYZ(lib mathlib.Lib, x, y, z float64) float64 {
	inf := lib.Inf()

	return lib.NaNToNum(z/magXYZ(lib, x, y, z), 1, inf, -inf)
}

func cosThetaXYTheta(lib mathlib.Lib, x, y, theta float64) float64 {
	return lib.Cos(theta)
}

func cosThetaXYEta(lib mathlib.Lib, x, y, eta float64) float64 {
	return lib.Cos(thetaXYEta(lib, x, y, eta))
}

func cosThetaRhoPhiZ(lib mathlib.Lib, rho, phi, z float64) float64 {
	inf := lib.Inf()

	return lib.NaNToNum(z/magRhoPhiZ(lib, rho, phi, z), 1, inf, -inf)
}

func cosThetaRhoPhiTheta(lib mathlib.Lib, rho, phi, theta float64) float64 {
	return lib.Cos(theta)
}

func cosThetaRhoPhiEta(lib mathlib.Lib, rho, phi, eta float64) float64 {
	return lib.Cos(thetaRhoPhiEta(lib, rho, phi, eta))
}

// Cotangent of the polar angle. The zero vector maps to +Inf (beamline
// limit).
func cotThetaXYZ(lib mathlib.Lib, x, y, z float64) float64 {
	inf := lib.Inf()

	return lib.NaNToNum(z/rhoFromXY(lib, x, y), inf, inf, -inf)
}

func cotThetaXYTheta(lib mathlib.Lib, x, y, theta float64) float64 {
	return 1 / lib.Tan(theta)
}

func cotThetaXYEta(lib mathlib.Lib, x, y, eta float64) float64 {
	return 1 / lib.Tan(thetaXYEta(lib, x, y, eta))
}

func cotThetaRhoPhiZ(lib mathlib.Lib, rho, phi, z float64) float64 {
	inf := lib.Inf()

	return lib.NaNToNum(z/rho, inf, inf, -inf)
}

func cotThetaRhoPhiTheta(lib mathlib.Lib, rho, phi, theta float64) float64 {
	return 1 / lib.Tan(theta)
}

func cotThetaRhoPhiEta(lib mathlib.Lib, rho, phi, eta float64) float64 {
	return 1 / lib.Tan(thetaRhoPhiEta(lib, rho, phi, eta))
}

// Magnitude and squared magnitude. Angle-parameterized forms avoid the
// round trip through z.

func mag2XYZ(lib mathlib.Lib, x, y, z float64) float64 { return x*x + y*y + z*z }

func mag2XYTheta(lib mathlib.Lib, x, y, theta float64) float64 {
	sintheta := lib.Sin(theta)

	return (x*x + y*y) / (sintheta * sintheta)
}

func mag2XYEta(lib mathlib.Lib, x, y, eta float64) float64 {
	expmeta := lib.Exp(-eta)
	invsintheta := 0.5 * (1 + expmeta*expmeta) / expmeta

	return (x*x + y*y) * invsintheta * invsintheta
}

func mag2RhoPhiZ(lib mathlib.Lib, rho, phi, z float64) float64 { return rho*rho + z*z }

func mag2RhoPhiTheta(lib mathlib.Lib, rho, phi, theta float64) float64 {
	sintheta := lib.Sin(theta)

	return rho * rho / (sintheta * sintheta)
}

func mag2RhoPhiEta(lib mathlib.Lib, rho, phi, eta float64) float64 {
	expmeta := lib.Exp(-eta)
	invsintheta := 0.5 * (1 + expmeta*expmeta) / expmeta

	return rho * rho * invsintheta * invsintheta
}

func magXYZ(lib mathlib.Lib, x, y, z float64) float64 {
	return lib.Sqrt(mag2XYZ(lib, x, y, z))
}

func magXYTheta(lib mathlib.Lib, x, y, theta float64) float64 {
	return rhoFromXY(lib, x, y) / lib.Absolute(lib.Sin(theta))
}

func magXYEta(lib mathlib.Lib, x, y, eta float64) float64 {
	expmeta := lib.Exp(-eta)
	invsintheta := 0.5 * (1 + expmeta*expmeta) / expmeta

	return rhoFromXY(lib, x, y) * invsintheta
}

func magRhoPhiZ(lib mathlib.Lib, rho, phi, z float64) float64 {
	return lib.Sqrt(mag2RhoPhiZ(lib, rho, phi, z))
}

func magRhoPhiTheta(lib mathlib.Lib, rho, phi, theta float64) float64 {
	return rho / lib.Absolute(lib.Sin(theta))
}

func magRhoPhiEta(lib mathlib.Lib, rho, phi, eta float64) float64 {
	expmeta := lib.Exp(-eta)
	invsintheta := 0.5 * (1 + expmeta*expmeta) / expmeta

	return rho * invsintheta
}

// Binary natives, Cartesian canonical form.

func dotXYZXYZ(lib mathlib.Lib, x1, y1, z1, x2, y2, z2 float64) float64 {
	return x1*x2 + y1*y2 + z1*z2
}

// Same-kind cylindrical operands never leave their representation.
func dotRhoPhiZRhoPhiZ(lib mathlib.Lib, rho1, phi1, z1, rho2, phi2, z2 float64) float64 {
	return rho1*rho2*lib.Cos(phi1-phi2) + z1*z2
}

func crossXYZXYZ(lib mathlib.Lib, x1, y1, z1, x2, y2, z2 float64) (float64, float64, float64) {
	return y1*z2 - z1*y2, z1*x2 - x1*z2, x1*y2 - y1*x2
}

func addXYZXYZ(lib mathlib.Lib, x1, y1, z1, x2, y2, z2 float64) (float64, float64, float64) {
	return x1 + x2, y1 + y2, z1 + z2
}

func subtractXYZXYZ(lib mathlib.Lib, x1, y1, z1, x2, y2, z2 float64) (float64, float64, float64) {
	return x1 - x2, y1 - y2, z1 - z2
}

func equalXYZXYZ(lib mathlib.Lib, x1, y1, z1, x2, y2, z2 float64) bool {
	return x1 == x2 && y1 == y2 && z1 == z2
}

func isCloseXYZXYZ(lib mathlib.Lib, rtol, atol float64, equalNaN bool, x1, y1, z1, x2, y2, z2 float64) bool {
	return lib.IsClose(x1, x2, rtol, atol, equalNaN) &&
		lib.IsClose(y1, y2, rtol, atol, equalNaN) &&
		lib.IsClose(z1, z2, rtol, atol, equalNaN)
}

// Unary vector natives. Scale and Unit preserve the operand's
// representation across all six signatures, so each is hand-written.

func scaleXYZ(lib mathlib.Lib, factor, x, y, z float64) (float64, float64, float64) {
	return x * factor, y * factor, z * factor
}

// Negative factors flip theta through |θ + (sign−1)π/2| instead of leaving
// the [0, π] range.
func scaleXYTheta(lib mathlib.Lib, factor, x, y, theta float64) (float64, float64, float64) {
	sign := lib.Sign(factor)
	flipIfNegative := lib.Absolute(theta + 0.5*(sign-1)*lib.Pi())

	return x * factor, y * factor, flipIfNegative
}

func scaleXYEta(lib mathlib.Lib, factor, x, y, eta float64) (float64, float64, float64) {
	return x * factor, y * factor, eta * lib.Sign(factor)
}

func scaleRhoPhiZ(lib mathlib.Lib, factor, rho, phi, z float64) (float64, float64, float64) {
	absfactor := lib.Absolute(factor)
	turnIfNegative := -0.5 * (lib.Sign(factor) - 1) * lib.Pi()

	return rho * absfactor, rectify(lib, phi+turnIfNegative), z * factor
}

func scaleRhoPhiTheta(lib mathlib.Lib, factor, rho, phi, theta float64) (float64, float64, float64) {
	sign := lib.Sign(factor)
	turnIfNegative := -0.5 * (sign - 1) * lib.Pi()
	flipIfNegative := lib.Absolute(theta + 0.5*(sign-1)*lib.Pi())

	return rho * lib.Absolute(factor), rectify(lib, phi+turnIfNegative), flipIfNegative
}

func scaleRhoPhiEta(lib mathlib.Lib, factor, rho, phi, eta float64) (float64, float64, float64) {
	sign := lib.Sign(factor)
	turnIfNegative := -0.5 * (sign - 1) * lib.Pi()

	return rho * lib.Absolute(factor), rectify(lib, phi+turnIfNegative), eta * sign
}

func unitXYZ(lib mathlib.Lib, x, y, z float64) (float64, float64, float64) {
	norm := magXYZ(lib, x, y, z)
	inf := lib.Inf()

	return lib.NaNToNum(x/norm, 0, inf, -inf),
		lib.NaNToNum(y/norm, 0, inf, -inf),
		lib.NaNToNum(z/norm, 0, inf, -inf)
}

func unitXYTheta(lib mathlib.Lib, x, y, theta float64) (float64, float64, float64) {
	norm := magXYTheta(lib, x, y, theta)
	inf := lib.Inf()

	return lib.NaNToNum(x/norm, 0, inf, -inf), lib.NaNToNum(y/norm, 0, inf, -inf), theta
}

func unitXYEta(lib mathlib.Lib, x, y, eta float64) (float64, float64, float64) {
	norm := magXYEta(lib, x, y, eta)
	inf := lib.Inf()

	return lib.NaNToNum(x/norm, 0, inf, -inf), lib.NaNToNum(y/norm, 0, inf, -inf), eta
}

func unitRhoPhiZ(lib mathlib.Lib, rho, phi, z float64) (float64, float64, float64) {
	norm := magRhoPhiZ(lib, rho, phi, z)
	inf := lib.Inf()

	return lib.NaNToNum(rho/norm, 0, inf, -inf), phi, lib.NaNToNum(z/norm, 0, inf, -inf)
}

func unitRhoPhiTheta(lib mathlib.Lib, rho, phi, theta float64) (float64, float64, float64) {
	norm := magRhoPhiTheta(lib, rho, phi, theta)
	inf := lib.Inf()

	return lib.NaNToNum(rho/norm, 0, inf, -inf), phi, theta
}

func unitRhoPhiEta(lib mathlib.Lib, rho, phi, eta float64) (float64, float64, float64) {
	norm := magRhoPhiEta(lib, rho, phi, eta)
	inf := lib.Inf()

	return lib.NaNToNum(rho/norm, 0, inf, -inf), phi, eta
}

// Rotations and transforms, Cartesian canonical form. Non-Cartesian
// operands are converted by the generation pass and come back xy_z.

func rotateXXYZ(lib mathlib.Lib, angle, x, y, z float64) (float64, float64, float64) {
	s := lib.Sin(angle)
	c := lib.Cos(angle)

	return x, c*y - s*z, s*y + c*z
}

func rotateYXYZ(lib mathlib.Lib, angle, x, y, z float64) (float64, float64, float64) {
	s := lib.Sin(angle)
	c := lib.Cos(angle)

	return c*x + s*z, y, -s*x + c*z
}

// Rodrigues rotation of operand 2 about the (normalized) axis given by
// operand 1.
func rotateAxisXYZXYZ(lib mathlib.Lib, angle, x1, y1, z1, x2, y2, z2 float64) (float64, float64, float64) {
	norm := lib.Sqrt(x1*x1 + y1*y1 + z1*z1)
	ux := x1 / norm
	uy := y1 / norm
	uz := z1 / norm
	c := lib.Cos(angle)
	s := lib.Sin(angle)
	c1 := 1 - c
	xp := (c+ux*ux*c1)*x2 + (ux*uy*c1-uz*s)*y2 + (ux*uz*c1+uy*s)*z2
	yp := (ux*uy*c1+uz*s)*x2 + (c+uy*uy*c1)*y2 + (uy*uz*c1-ux*s)*z2
	zp := (ux*uz*c1-uy*s)*x2 + (uy*uz*c1+ux*s)*y2 + (c+uz*uz*c1)*z2

	return xp, yp, zp
}

func rotateQuaternionXYZ(lib mathlib.Lib, u, i, j, k, x, y, z float64) (float64, float64, float64) {
	q00 := u * u
	q01 := u * i
	q02 := u * j
	q03 := u * k
	q11 := i * i
	q12 := i * j
	q13 := i * k
	q22 := j * j
	q23 := j * k
	q33 := k * k
	xp := (q00+q11-q22-q33)*x + 2*(q12-q03)*y + 2*(q02+q13)*z
	yp := 2*(q12+q03)*x + (q00-q11+q22-q33)*y + 2*(q23-q01)*z
	zp := 2*(q13-q02)*x + 2*(q23+q01)*y + (q00-q11-q22+q33)*z

	return xp, yp, zp
}

func transform3DXYZ(lib mathlib.Lib, xx, xy, xz, yx, yy, yz, zx, zy, zz, x, y, z float64) (float64, float64, float64) {
	return xx*x + xy*y + xz*z, yx*x + yy*y + yz*z, zx*x + zy*y + zz*z
}

// rectify wraps an angle into (−π, π], same expression as package planar's.
func rectify(lib mathlib.Lib, phi float64) float64 {
	return lib.ArcTan2(lib.Sin(phi), lib.Cos(phi))
}

// Converter lookup by signature. Plain switches (no table dependency), so
// they are safe during this package's own init and exported for the lorentz
// generation pass.

// XYZConverters returns kernels producing Cartesian x, y, z from raw
// components of signature sig.
func XYZConverters(sig coords.SpatialSig) (toX, toY, toZ ScalarKernel) {
	azX, azY := planar.XYConverters(sig.Az)
	toX = func(lib mathlib.Lib, a, b, c float64) float64 { return azX(lib, a, b) }
	toY = func(lib mathlib.Lib, a, b, c float64) float64 { return azY(lib, a, b) }

	return toX, toY, ZKernel(sig)
}

// ZKernel returns the Cartesian-z converter for signature sig.
func ZKernel(sig coords.SpatialSig) ScalarKernel {
	return pick(sig, zXYZ, zXYTheta, zXYEta, zRhoPhiZ, zRhoPhiTheta, zRhoPhiEta)
}

// ThetaKernel returns the polar-angle converter for signature sig.
func ThetaKernel(sig coords.SpatialSig) ScalarKernel {
	return pick(sig, thetaXYZ, thetaXYTheta, thetaXYEta, thetaRhoPhiZ, thetaRhoPhiTheta, thetaRhoPhiEta)
}

// EtaKernel returns the pseudorapidity converter for signature sig.
func EtaKernel(sig coords.SpatialSig) ScalarKernel {
	return pick(sig, etaXYZ, etaXYTheta, etaXYEta, etaRhoPhiZ, etaRhoPhiTheta, etaRhoPhiEta)
}

// MagKernel returns the magnitude kernel for signature sig, used by the
// lorentz temporal conversions.
func MagKernel(sig coords.SpatialSig) ScalarKernel {
	return pick(sig, magXYZ, magXYTheta, magXYEta, magRhoPhiZ, magRhoPhiTheta, magRhoPhiEta)
}

// Mag2Kernel returns the squared-magnitude kernel for signature sig.
func Mag2Kernel(sig coords.SpatialSig) ScalarKernel {
	return pick(sig, mag2XYZ, mag2XYTheta, mag2XYEta, mag2RhoPhiZ, mag2RhoPhiTheta, mag2RhoPhiEta)
}

// lonFromZ returns the kernel recovering a longitudinal element of kind
// sig.Lon from azimuthal elements of kind sig.Az plus a Cartesian z. Used
// by same-kind Add/Subtract to convert the summed z back.
func lonFromZ(sig coords.SpatialSig) func(lib mathlib.Lib, a, b, z float64) float64 {
	switch sig.Lon {
	case coords.KindZ:
		return func(lib mathlib.Lib, a, b, z float64) float64 { return z }
	case coords.KindTheta:
		if sig.Az == coords.KindRhoPhi {
			return thetaRhoPhiZ
		}

		return thetaXYZ
	default:
		if sig.Az == coords.KindRhoPhi {
			return etaRhoPhiZ
		}

		return etaXYZ
	}
}

// pick maps the 2×3 signature grid onto the six kernels in enumeration
// order (xy_z, xy_theta, xy_eta, rhophi_z, rhophi_theta, rhophi_eta).
func pick(sig coords.SpatialSig, xyZ, xyTheta, xyEta, rpZ, rpTheta, rpEta ScalarKernel) ScalarKernel {
	if sig.Az == coords.KindRhoPhi {
		switch sig.Lon {
		case coords.KindZ:
			return rpZ
		case coords.KindTheta:
			return rpTheta
		default:
			return rpEta
		}
	}
	switch sig.Lon {
	case coords.KindZ:
		return xyZ
	case coords.KindTheta:
		return xyTheta
	default:
		return xyEta
	}
}
