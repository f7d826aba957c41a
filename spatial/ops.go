// SPDX-License-Identifier: MIT
// Package spatial: caller-facing operations, same resolve-run-rewrap shape
// as package planar's.

package spatial

import (
	"github.com/katalvlaran/hepvec/coords"
	"github.com/katalvlaran/hepvec/dispatch"
)

// Matrix3 is an explicit 3×3 linear transformation, row major.
type Matrix3 struct {
	XX, XY, XZ float64
	YX, YY, YZ float64
	ZX, ZY, ZZ float64
}

// Quaternion holds rotation quaternion components. Unit norm is the
// caller's responsibility; a non-unit quaternion scales as well as rotates.
type Quaternion struct {
	U, I, J, K float64
}

// components flattens a spatial operand into its raw elements.
func components(v coords.Spatial) (a, b, c float64) {
	a, b = v.Azimuthal().AzimuthalElements()

	return a, b, v.Longitudinal().LongitudinalElement()
}

// result rebuilds spatial components from a declared result signature.
func result(sig coords.SpatialSig, a, b, c float64) (coords.Azimuthal, coords.Longitudinal) {
	return coords.NewAzimuthal(sig.Az, a, b), coords.NewLongitudinal(sig.Lon, c)
}

// Z returns the Cartesian longitudinal component.
func Z(v coords.Spatial) (float64, error) { return scalar(ZTable, v) }

// Theta returns the polar angle measured from the +z axis, in [0, π].
func Theta(v coords.Spatial) (float64, error) { return scalar(ThetaTable, v) }

// Eta returns the pseudorapidity −ln tan(θ/2). The zero vector yields 0; a
// vector on the beamline yields ±Inf.
func Eta(v coords.Spatial) (float64, error) { return scalar(EtaTable, v) }

// CosTheta returns the direction cosine z/|v|. The zero vector yields 1.
func CosTheta(v coords.Spatial) (float64, error) { return scalar(CosThetaTable, v) }

// CotTheta returns z/ρ. A vector on the beamline yields ±Inf.
func CotTheta(v coords.Spatial) (float64, error) { return scalar(CotThetaTable, v) }

// Mag returns the 3D magnitude.
func Mag(v coords.Spatial) (float64, error) { return scalar(MagTable, v) }

// Mag2 returns the squared 3D magnitude.
func Mag2(v coords.Spatial) (float64, error) { return scalar(Mag2Table, v) }

// Dot returns the 3D scalar product.
func Dot(v1, v2 coords.Spatial) (float64, error) { return scalar2(DotTable, v1, v2) }

// DeltaAngle returns the opening angle between v1 and v2, in [0, π].
func DeltaAngle(v1, v2 coords.Spatial) (float64, error) { return scalar2(DeltaAngleTable, v1, v2) }

// DeltaEta returns the signed pseudorapidity difference η1 − η2.
func DeltaEta(v1, v2 coords.Spatial) (float64, error) { return scalar2(DeltaEtaTable, v1, v2) }

// DeltaR returns the η-φ cone distance sqrt(Δφ² + Δη²).
func DeltaR(v1, v2 coords.Spatial) (float64, error) { return scalar2(DeltaRTable, v1, v2) }

// DeltaR2 returns the squared η-φ cone distance.
func DeltaR2(v1, v2 coords.Spatial) (float64, error) { return scalar2(DeltaR2Table, v1, v2) }

// Add returns the component sum. Same-signature operands keep their
// representation; mixed operands come back xy_z.
func Add(v1, v2 coords.Spatial) (coords.Azimuthal, coords.Longitudinal, error) {
	return vector2(AddTable, v1, v2)
}

// Subtract returns the component difference, with the same result-kind rule
// as Add.
func Subtract(v1, v2 coords.Spatial) (coords.Azimuthal, coords.Longitudinal, error) {
	return vector2(SubtractTable, v1, v2)
}

// Cross returns the 3D cross product v1 × v2, always in xy_z components.
func Cross(v1, v2 coords.Spatial) (coords.Azimuthal, coords.Longitudinal, error) {
	return vector2(CrossTable, v1, v2)
}

// Scale multiplies by a signed factor, preserving the operand's
// representation. Negative factors turn φ by π and flip θ instead of
// producing negative magnitudes.
func Scale(v coords.Spatial, factor float64) (coords.Azimuthal, coords.Longitudinal, error) {
	return unaryParam(ScaleTable, v, factor)
}

// Unit returns v normalized to unit magnitude, preserving its
// representation. The zero vector yields zero components.
func Unit(v coords.Spatial) (coords.Azimuthal, coords.Longitudinal, error) {
	fn, sig, err := UnitTable.Resolve(coords.SigOfSpatial(v))
	if err != nil {
		return nil, nil, err
	}
	a, b, c := components(v)
	ra, rb, rc := fn(v.Lib(), a, b, c)
	az, lon := result(sig, ra, rb, rc)

	return az, lon, nil
}

// RotateX rotates counterclockwise about the x axis. Non-Cartesian operands
// come back in xy_z components.
func RotateX(v coords.Spatial, angle float64) (coords.Azimuthal, coords.Longitudinal, error) {
	return unaryParam(RotateXTable, v, angle)
}

// RotateY rotates counterclockwise about the y axis.
func RotateY(v coords.Spatial, angle float64) (coords.Azimuthal, coords.Longitudinal, error) {
	return unaryParam(RotateYTable, v, angle)
}

// RotateAxis rotates v about the axis direction by angle (Rodrigues
// formula; the axis need not be normalized). Result is always xy_z.
func RotateAxis(v coords.Spatial, axis coords.Spatial, angle float64) (coords.Azimuthal, coords.Longitudinal, error) {
	lib, err := dispatch.SharedLib(v.Lib(), axis.Lib())
	if err != nil {
		return nil, nil, err
	}
	key := coords.SpatialPair{V1: coords.SigOfSpatial(axis), V2: coords.SigOfSpatial(v)}
	fn, sig, err := RotateAxisTable.Resolve(key)
	if err != nil {
		return nil, nil, err
	}
	a1, b1, c1 := components(axis)
	a2, b2, c2 := components(v)
	ra, rb, rc := fn(lib, angle, a1, b1, c1, a2, b2, c2)
	az, lon := result(sig, ra, rb, rc)

	return az, lon, nil
}

// RotateEuler applies an intrinsic Euler rotation by (phi, theta, psi) in
// the given axis order. Result is always xy_z.
func RotateEuler(v coords.Spatial, phi, theta, psi float64, order EulerOrder) (coords.Azimuthal, coords.Longitudinal, error) {
	key := EulerSig{Sig: coords.SigOfSpatial(v), Order: order}
	fn, sig, err := RotateEulerTable.Resolve(key)
	if err != nil {
		return nil, nil, err
	}
	a, b, c := components(v)
	ra, rb, rc := fn(v.Lib(), phi, theta, psi, a, b, c)
	az, lon := result(sig, ra, rb, rc)

	return az, lon, nil
}

// RotateNautical applies the yaw-pitch-roll convention, which is the zyx
// intrinsic Euler order with the angles rearranged.
func RotateNautical(v coords.Spatial, yaw, pitch, roll float64) (coords.Azimuthal, coords.Longitudinal, error) {
	return RotateEuler(v, roll, pitch, yaw, OrderZYX)
}

// RotateQuaternion rotates by the quaternion q. Result is always xy_z.
func RotateQuaternion(v coords.Spatial, q Quaternion) (coords.Azimuthal, coords.Longitudinal, error) {
	fn, sig, err := RotateQuaternionTable.Resolve(coords.SigOfSpatial(v))
	if err != nil {
		return nil, nil, err
	}
	a, b, c := components(v)
	ra, rb, rc := fn(v.Lib(), q.U, q.I, q.J, q.K, a, b, c)
	az, lon := result(sig, ra, rb, rc)

	return az, lon, nil
}

// Transform3D applies m to v. Result is always xy_z.
func Transform3D(v coords.Spatial, m Matrix3) (coords.Azimuthal, coords.Longitudinal, error) {
	fn, sig, err := Transform3DTable.Resolve(coords.SigOfSpatial(v))
	if err != nil {
		return nil, nil, err
	}
	a, b, c := components(v)
	ra, rb, rc := fn(v.Lib(), m.XX, m.XY, m.XZ, m.YX, m.YY, m.YZ, m.ZX, m.ZY, m.ZZ, a, b, c)
	az, lon := result(sig, ra, rb, rc)

	return az, lon, nil
}

// Equal reports exact component equality after bringing both operands into
// a common representation. Prefer IsClose for floating-point comparisons.
func Equal(v1, v2 coords.Spatial) (bool, error) {
	lib, err := dispatch.SharedLib(v1.Lib(), v2.Lib())
	if err != nil {
		return false, err
	}
	key := coords.SpatialPair{V1: coords.SigOfSpatial(v1), V2: coords.SigOfSpatial(v2)}
	fn, _, err := EqualTable.Resolve(key)
	if err != nil {
		return false, err
	}
	a1, b1, c1 := components(v1)
	a2, b2, c2 := components(v2)

	return fn(lib, a1, b1, c1, a2, b2, c2), nil
}

// NotEqual is the negation of Equal.
func NotEqual(v1, v2 coords.Spatial) (bool, error) {
	eq, err := Equal(v1, v2)

	return !eq, err
}

// IsClose reports component-wise tolerant equality.
func IsClose(v1, v2 coords.Spatial, rtol, atol float64, equalNaN bool) (bool, error) {
	lib, err := dispatch.SharedLib(v1.Lib(), v2.Lib())
	if err != nil {
		return false, err
	}
	key := coords.SpatialPair{V1: coords.SigOfSpatial(v1), V2: coords.SigOfSpatial(v2)}
	fn, _, err := IsCloseTable.Resolve(key)
	if err != nil {
		return false, err
	}
	a1, b1, c1 := components(v1)
	a2, b2, c2 := components(v2)

	return fn(lib, rtol, atol, equalNaN, a1, b1, c1, a2, b2, c2), nil
}

// IsParallel reports whether v1 and v2 point the same way within the
// angular tolerance.
func IsParallel(v1, v2 coords.Spatial, tol float64) (bool, error) {
	return predicate2(IsParallelTable, v1, v2, tol)
}

// IsAntiparallel reports whether v1 and v2 point opposite ways within the
// angular tolerance.
func IsAntiparallel(v1, v2 coords.Spatial, tol float64) (bool, error) {
	return predicate2(IsAntiparallelTable, v1, v2, tol)
}

// IsPerpendicular reports whether v1 and v2 are orthogonal within the
// angular tolerance.
func IsPerpendicular(v1, v2 coords.Spatial, tol float64) (bool, error) {
	return predicate2(IsPerpendicularTable, v1, v2, tol)
}

// Shared plumbing.

func scalar(
	tbl *dispatch.Table[coords.SpatialSig, ScalarKernel, coords.ScalarKind],
	v coords.Spatial,
) (float64, error) {
	fn, _, err := tbl.Resolve(coords.SigOfSpatial(v))
	if err != nil {
		return 0, err
	}
	a, b, c := components(v)

	return fn(v.Lib(), a, b, c), nil
}

func scalar2(
	tbl *dispatch.Table[coords.SpatialPair, ScalarKernel2, coords.ScalarKind],
	v1, v2 coords.Spatial,
) (float64, error) {
	lib, err := dispatch.SharedLib(v1.Lib(), v2.Lib())
	if err != nil {
		return 0, err
	}
	key := coords.SpatialPair{V1: coords.SigOfSpatial(v1), V2: coords.SigOfSpatial(v2)}
	fn, _, err := tbl.Resolve(key)
	if err != nil {
		return 0, err
	}
	a1, b1, c1 := components(v1)
	a2, b2, c2 := components(v2)

	return fn(lib, a1, b1, c1, a2, b2, c2), nil
}

func vector2(
	tbl *dispatch.Table[coords.SpatialPair, VectorKernel2, coords.SpatialSig],
	v1, v2 coords.Spatial,
) (coords.Azimuthal, coords.Longitudinal, error) {
	lib, err := dispatch.SharedLib(v1.Lib(), v2.Lib())
	if err != nil {
		return nil, nil, err
	}
	key := coords.SpatialPair{V1: coords.SigOfSpatial(v1), V2: coords.SigOfSpatial(v2)}
	fn, sig, err := tbl.Resolve(key)
	if err != nil {
		return nil, nil, err
	}
	a1, b1, c1 := components(v1)
	a2, b2, c2 := components(v2)
	ra, rb, rc := fn(lib, a1, b1, c1, a2, b2, c2)
	az, lon := result(sig, ra, rb, rc)

	return az, lon, nil
}

func unaryParam(
	tbl *dispatch.Table[coords.SpatialSig, ParamVectorKernel, coords.SpatialSig],
	v coords.Spatial, p float64,
) (coords.Azimuthal, coords.Longitudinal, error) {
	fn, sig, err := tbl.Resolve(coords.SigOfSpatial(v))
	if err != nil {
		return nil, nil, err
	}
	a, b, c := components(v)
	ra, rb, rc := fn(v.Lib(), p, a, b, c)
	az, lon := result(sig, ra, rb, rc)

	return az, lon, nil
}

func predicate2(
	tbl *dispatch.Table[coords.SpatialPair, TolBoolKernel2, coords.ScalarKind],
	v1, v2 coords.Spatial, tol float64,
) (bool, error) {
	lib, err := dispatch.SharedLib(v1.Lib(), v2.Lib())
	if err != nil {
		return false, err
	}
	key := coords.SpatialPair{V1: coords.SigOfSpatial(v1), V2: coords.SigOfSpatial(v2)}
	fn, _, err := tbl.Resolve(key)
	if err != nil {
		return false, err
	}
	a1, b1, c1 := components(v1)
	a2, b2, c2 := components(v2)

	return fn(lib, tol, a1, b1, c1, a2, b2, c2), nil
}
