// SPDX-License-Identifier: MIT
package vec

import (
	"github.com/katalvlaran/hepvec/coords"
	"github.com/katalvlaran/hepvec/mathlib"
	"github.com/katalvlaran/hepvec/planar"
	"github.com/katalvlaran/hepvec/spatial"
)

// Vector3 is a spatial vector: azimuthal plus longitudinal components and a
// math backend.
type Vector3 struct {
	lib mathlib.Lib
	az  coords.Azimuthal
	lon coords.Longitudinal
}

// XYZ builds a Cartesian spatial vector.
func XYZ(x, y, z float64, opts ...Option) Vector3 {
	return NewVector3(coords.XY{X: x, Y: y}, coords.Z(z), opts...)
}

// RhoPhiZ builds a cylindrical spatial vector.
func RhoPhiZ(rho, phi, z float64, opts ...Option) Vector3 {
	return NewVector3(coords.RhoPhi{Rho: rho, Phi: phi}, coords.Z(z), opts...)
}

// RhoPhiTheta builds a spatial vector from the transverse magnitude, the
// azimuthal angle and the polar angle.
func RhoPhiTheta(rho, phi, theta float64, opts ...Option) Vector3 {
	return NewVector3(coords.RhoPhi{Rho: rho, Phi: phi}, coords.Theta(theta), opts...)
}

// RhoPhiEta builds a spatial vector from the transverse magnitude, the
// azimuthal angle and the pseudorapidity.
func RhoPhiEta(rho, phi, eta float64, opts ...Option) Vector3 {
	return NewVector3(coords.RhoPhi{Rho: rho, Phi: phi}, coords.Eta(eta), opts...)
}

// NewVector3 builds a spatial vector from ready-made components.
func NewVector3(az coords.Azimuthal, lon coords.Longitudinal, opts ...Option) Vector3 {
	o := buildOptions(opts)

	return Vector3{lib: o.lib, az: az, lon: lon}
}

// Lib returns the vector's math backend.
func (v Vector3) Lib() mathlib.Lib { return v.lib }

// Azimuthal returns the stored azimuthal component.
func (v Vector3) Azimuthal() coords.Azimuthal { return v.az }

// Longitudinal returns the stored longitudinal component.
func (v Vector3) Longitudinal() coords.Longitudinal { return v.lon }

// Planar observables.

// X returns the Cartesian x component.
func (v Vector3) X() float64 { return mustFloat(planar.X(v)) }

// Y returns the Cartesian y component.
func (v Vector3) Y() float64 { return mustFloat(planar.Y(v)) }

// Rho returns the transverse magnitude.
func (v Vector3) Rho() float64 { return mustFloat(planar.Rho(v)) }

// Rho2 returns the squared transverse magnitude.
func (v Vector3) Rho2() float64 { return mustFloat(planar.Rho2(v)) }

// Phi returns the azimuthal angle, in (−π, π].
func (v Vector3) Phi() float64 { return mustFloat(planar.Phi(v)) }

// Spatial observables.

// Z returns the Cartesian longitudinal component.
func (v Vector3) Z() float64 { return mustFloat(spatial.Z(v)) }

// Theta returns the polar angle, in [0, π].
func (v Vector3) Theta() float64 { return mustFloat(spatial.Theta(v)) }

// Eta returns the pseudorapidity.
func (v Vector3) Eta() float64 { return mustFloat(spatial.Eta(v)) }

// CosTheta returns the direction cosine z/|v|.
func (v Vector3) CosTheta() float64 { return mustFloat(spatial.CosTheta(v)) }

// CotTheta returns z/ρ.
func (v Vector3) CotTheta() float64 { return mustFloat(spatial.CotTheta(v)) }

// Mag returns the 3D magnitude.
func (v Vector3) Mag() float64 { return mustFloat(spatial.Mag(v)) }

// Mag2 returns the squared 3D magnitude.
func (v Vector3) Mag2() float64 { return mustFloat(spatial.Mag2(v)) }

// Vector-valued operations.

func (v Vector3) rewrap(az coords.Azimuthal, lon coords.Longitudinal, err error) Vector3 {
	must(err)

	return Vector3{lib: v.lib, az: az, lon: lon}
}

// Add returns v + u. Same-signature operands keep their representation;
// mixed operands come back Cartesian.
func (v Vector3) Add(u Vector3) Vector3 { return v.rewrap(spatial.Add(v, u)) }

// Subtract returns v − u, with the same result-kind rule as Add.
func (v Vector3) Subtract(u Vector3) Vector3 { return v.rewrap(spatial.Subtract(v, u)) }

// Cross returns the cross product v × u, always Cartesian.
func (v Vector3) Cross(u Vector3) Vector3 { return v.rewrap(spatial.Cross(v, u)) }

// Scale multiplies by a signed factor, preserving the representation.
func (v Vector3) Scale(factor float64) Vector3 { return v.rewrap(spatial.Scale(v, factor)) }

// Unit returns v normalized to unit magnitude, preserving the
// representation.
func (v Vector3) Unit() Vector3 { return v.rewrap(spatial.Unit(v)) }

// RotateX rotates counterclockwise about the x axis.
func (v Vector3) RotateX(angle float64) Vector3 { return v.rewrap(spatial.RotateX(v, angle)) }

// RotateY rotates counterclockwise about the y axis.
func (v Vector3) RotateY(angle float64) Vector3 { return v.rewrap(spatial.RotateY(v, angle)) }

// RotateZ rotates counterclockwise about the z axis; the longitudinal
// component is untouched.
func (v Vector3) RotateZ(angle float64) Vector3 {
	az, err := planar.RotateZ(v, angle)
	must(err)

	return Vector3{lib: v.lib, az: az, lon: v.lon}
}

// RotateAxis rotates about the axis direction by angle.
func (v Vector3) RotateAxis(axis Vector3, angle float64) Vector3 {
	return v.rewrap(spatial.RotateAxis(v, axis, angle))
}

// RotateEuler applies an intrinsic Euler rotation by (phi, theta, psi) in
// the given axis order.
func (v Vector3) RotateEuler(phi, theta, psi float64, order spatial.EulerOrder) Vector3 {
	return v.rewrap(spatial.RotateEuler(v, phi, theta, psi, order))
}

// RotateNautical applies the yaw-pitch-roll convention.
func (v Vector3) RotateNautical(yaw, pitch, roll float64) Vector3 {
	return v.rewrap(spatial.RotateNautical(v, yaw, pitch, roll))
}

// RotateQuaternion rotates by the quaternion q.
func (v Vector3) RotateQuaternion(q spatial.Quaternion) Vector3 {
	return v.rewrap(spatial.RotateQuaternion(v, q))
}

// Transform3D applies an explicit 3×3 matrix. Result is always Cartesian.
func (v Vector3) Transform3D(m spatial.Matrix3) Vector3 {
	return v.rewrap(spatial.Transform3D(v, m))
}

// Scalars and predicates.

// Dot returns the 3D scalar product.
func (v Vector3) Dot(u Vector3) float64 { return mustFloat(spatial.Dot(v, u)) }

// DeltaPhi returns the azimuthal separation, wrapped to (−π, π].
func (v Vector3) DeltaPhi(u Vector3) float64 { return mustFloat(planar.DeltaPhi(v, u)) }

// DeltaAngle returns the opening angle, in [0, π].
func (v Vector3) DeltaAngle(u Vector3) float64 { return mustFloat(spatial.DeltaAngle(v, u)) }

// DeltaEta returns the signed pseudorapidity difference.
func (v Vector3) DeltaEta(u Vector3) float64 { return mustFloat(spatial.DeltaEta(v, u)) }

// DeltaR returns the η-φ cone distance.
func (v Vector3) DeltaR(u Vector3) float64 { return mustFloat(spatial.DeltaR(v, u)) }

// DeltaR2 returns the squared η-φ cone distance.
func (v Vector3) DeltaR2(u Vector3) float64 { return mustFloat(spatial.DeltaR2(v, u)) }

// Equal reports exact component equality after representation alignment.
func (v Vector3) Equal(u Vector3) bool { return mustBool(spatial.Equal(v, u)) }

// NotEqual is the negation of Equal.
func (v Vector3) NotEqual(u Vector3) bool { return !v.Equal(u) }

// IsClose reports tolerant equality. Optional overrides: tols[0] is the
// relative tolerance, tols[1] the absolute one.
func (v Vector3) IsClose(u Vector3, tols ...float64) bool {
	rtol, atol := closeTols(tols)

	return mustBool(spatial.IsClose(v, u, rtol, atol, false))
}

// IsParallel reports whether v and u point the same way within tol.
func (v Vector3) IsParallel(u Vector3, tol ...float64) bool {
	return mustBool(spatial.IsParallel(v, u, tolOrDefault(tol)))
}

// IsAntiparallel reports whether v and u point opposite ways within tol.
func (v Vector3) IsAntiparallel(u Vector3, tol ...float64) bool {
	return mustBool(spatial.IsAntiparallel(v, u, tolOrDefault(tol)))
}

// IsPerpendicular reports whether v and u are orthogonal within tol.
func (v Vector3) IsPerpendicular(u Vector3, tol ...float64) bool {
	return mustBool(spatial.IsPerpendicular(v, u, tolOrDefault(tol)))
}

// To re-expresses v in the given kind combination.
func (v Vector3) To(az coords.AzimuthalKind, lon coords.LongitudinalKind) Vector3 {
	return Vector3{lib: v.lib, az: convertAzimuthal(v, az), lon: convertLongitudinal(v, lon)}
}

// convertLongitudinal rebuilds a spatial operand's longitudinal component
// in the target kind.
func convertLongitudinal(v coords.Spatial, lon coords.LongitudinalKind) coords.Longitudinal {
	if v.Longitudinal().LongitudinalKind() == lon {
		return v.Longitudinal()
	}
	switch lon {
	case coords.KindZ:
		return coords.Z(mustFloat(spatial.Z(v)))
	case coords.KindTheta:
		return coords.Theta(mustFloat(spatial.Theta(v)))
	default:
		return coords.Eta(mustFloat(spatial.Eta(v)))
	}
}
