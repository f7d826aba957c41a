// SPDX-License-Identifier: MIT
package vec

import (
	"github.com/katalvlaran/hepvec/coords"
	"github.com/katalvlaran/hepvec/lorentz"
	"github.com/katalvlaran/hepvec/mathlib"
	"github.com/katalvlaran/hepvec/planar"
	"github.com/katalvlaran/hepvec/spatial"
)

// Vector4 is a Lorentz vector: azimuthal, longitudinal and temporal
// components plus a math backend. As a four-momentum, x/y/z/t read as
// px/py/pz/E and tau as the invariant mass.
type Vector4 struct {
	lib mathlib.Lib
	az  coords.Azimuthal
	lon coords.Longitudinal
	tem coords.Temporal
}

// XYZT builds a Cartesian Lorentz vector with coordinate time.
func XYZT(x, y, z, t float64, opts ...Option) Vector4 {
	return NewVector4(coords.XY{X: x, Y: y}, coords.Z(z), coords.T(t), opts...)
}

// XYZTau builds a Cartesian Lorentz vector with (signed) proper time.
func XYZTau(x, y, z, tau float64, opts ...Option) Vector4 {
	return NewVector4(coords.XY{X: x, Y: y}, coords.Z(z), coords.Tau(tau), opts...)
}

// RhoPhiEtaT builds a Lorentz vector in collider coordinates with
// coordinate time (energy).
func RhoPhiEtaT(rho, phi, eta, t float64, opts ...Option) Vector4 {
	return NewVector4(coords.RhoPhi{Rho: rho, Phi: phi}, coords.Eta(eta), coords.T(t), opts...)
}

// RhoPhiEtaTau builds a Lorentz vector in collider coordinates with proper
// time (mass).
func RhoPhiEtaTau(rho, phi, eta, tau float64, opts ...Option) Vector4 {
	return NewVector4(coords.RhoPhi{Rho: rho, Phi: phi}, coords.Eta(eta), coords.Tau(tau), opts...)
}

// PtEtaPhiE is the momentum-style synonym of RhoPhiEtaT.
func PtEtaPhiE(pt, eta, phi, energy float64, opts ...Option) Vector4 {
	return RhoPhiEtaT(pt, phi, eta, energy, opts...)
}

// PtEtaPhiM is the momentum-style synonym of RhoPhiEtaTau.
func PtEtaPhiM(pt, eta, phi, mass float64, opts ...Option) Vector4 {
	return RhoPhiEtaTau(pt, phi, eta, mass, opts...)
}

// NewVector4 builds a Lorentz vector from ready-made components.
func NewVector4(az coords.Azimuthal, lon coords.Longitudinal, tem coords.Temporal, opts ...Option) Vector4 {
	o := buildOptions(opts)

	return Vector4{lib: o.lib, az: az, lon: lon, tem: tem}
}

// Lib returns the vector's math backend.
func (v Vector4) Lib() mathlib.Lib { return v.lib }

// Azimuthal returns the stored azimuthal component.
func (v Vector4) Azimuthal() coords.Azimuthal { return v.az }

// Longitudinal returns the stored longitudinal component.
func (v Vector4) Longitudinal() coords.Longitudinal { return v.lon }

// Temporal returns the stored temporal component.
func (v Vector4) Temporal() coords.Temporal { return v.tem }

// Planar and spatial observables.

// X returns the Cartesian x component.
func (v Vector4) X() float64 { return mustFloat(planar.X(v)) }

// Y returns the Cartesian y component.
func (v Vector4) Y() float64 { return mustFloat(planar.Y(v)) }

// Rho returns the transverse magnitude.
func (v Vector4) Rho() float64 { return mustFloat(planar.Rho(v)) }

// Rho2 returns the squared transverse magnitude.
func (v Vector4) Rho2() float64 { return mustFloat(planar.Rho2(v)) }

// Phi returns the azimuthal angle, in (−π, π].
func (v Vector4) Phi() float64 { return mustFloat(planar.Phi(v)) }

// Z returns the Cartesian longitudinal component.
func (v Vector4) Z() float64 { return mustFloat(spatial.Z(v)) }

// Theta returns the polar angle, in [0, π].
func (v Vector4) Theta() float64 { return mustFloat(spatial.Theta(v)) }

// Eta returns the pseudorapidity.
func (v Vector4) Eta() float64 { return mustFloat(spatial.Eta(v)) }

// Mag returns the 3D magnitude of the spatial part.
func (v Vector4) Mag() float64 { return mustFloat(spatial.Mag(v)) }

// Mag2 returns the squared 3D magnitude of the spatial part.
func (v Vector4) Mag2() float64 { return mustFloat(spatial.Mag2(v)) }

// Temporal observables.

// T returns the coordinate time.
func (v Vector4) T() float64 { return mustFloat(lorentz.T(v)) }

// T2 returns the squared coordinate time.
func (v Vector4) T2() float64 { return mustFloat(lorentz.T2(v)) }

// Tau returns the signed proper time.
func (v Vector4) Tau() float64 { return mustFloat(lorentz.Tau(v)) }

// Tau2 returns the signed squared proper time.
func (v Vector4) Tau2() float64 { return mustFloat(lorentz.Tau2(v)) }

// Beta returns the speed |v|/t.
func (v Vector4) Beta() float64 { return mustFloat(lorentz.Beta(v)) }

// Gamma returns the time-dilation factor t/tau.
func (v Vector4) Gamma() float64 { return mustFloat(lorentz.Gamma(v)) }

// Rapidity returns 0.5 ln((t+z)/(t−z)).
func (v Vector4) Rapidity() float64 { return mustFloat(lorentz.Rapidity(v)) }

// Et returns the transverse energy.
func (v Vector4) Et() float64 { return mustFloat(lorentz.Et(v)) }

// Et2 returns the squared transverse energy.
func (v Vector4) Et2() float64 { return mustFloat(lorentz.Et2(v)) }

// Mt returns the transverse mass.
func (v Vector4) Mt() float64 { return mustFloat(lorentz.Mt(v)) }

// Mt2 returns the squared transverse mass.
func (v Vector4) Mt2() float64 { return mustFloat(lorentz.Mt2(v)) }

// Momentum synonyms.

// Pt is the momentum-style synonym of Rho.
func (v Vector4) Pt() float64 { return v.Rho() }

// Pt2 is the momentum-style synonym of Rho2.
func (v Vector4) Pt2() float64 { return v.Rho2() }

// Energy is the momentum-style synonym of T.
func (v Vector4) Energy() float64 { return v.T() }

// Energy2 is the momentum-style synonym of T2.
func (v Vector4) Energy2() float64 { return v.T2() }

// Mass is the momentum-style synonym of Tau.
func (v Vector4) Mass() float64 { return v.Tau() }

// Mass2 is the momentum-style synonym of Tau2.
func (v Vector4) Mass2() float64 { return v.Tau2() }

// Vector-valued operations.

func (v Vector4) rewrap(az coords.Azimuthal, lon coords.Longitudinal, tem coords.Temporal, err error) Vector4 {
	must(err)

	return Vector4{lib: v.lib, az: az, lon: lon, tem: tem}
}

// Add returns v + u. The temporal result is t-kind unless both operands
// carry tau.
func (v Vector4) Add(u Vector4) Vector4 { return v.rewrap(lorentz.Add(v, u)) }

// Subtract returns v − u, with the same result-kind rule as Add.
func (v Vector4) Subtract(u Vector4) Vector4 { return v.rewrap(lorentz.Subtract(v, u)) }

// Scale multiplies all four components by a signed factor, preserving the
// representation.
func (v Vector4) Scale(factor float64) Vector4 { return v.rewrap(lorentz.Scale(v, factor)) }

// Unit returns v normalized to |tau| = 1.
func (v Vector4) Unit() Vector4 { return v.rewrap(lorentz.Unit(v)) }

// ToBeta3 returns the velocity 3-vector v/t in the operand's spatial
// representation.
func (v Vector4) ToBeta3() Vector3 {
	az, lon, err := lorentz.ToBeta3(v)
	must(err)

	return Vector3{lib: v.lib, az: az, lon: lon}
}

// RotateZ rotates the azimuthal part; longitudinal and temporal components
// are untouched.
func (v Vector4) RotateZ(angle float64) Vector4 {
	az, err := planar.RotateZ(v, angle)
	must(err)

	return Vector4{lib: v.lib, az: az, lon: v.lon, tem: v.tem}
}

// RotateX rotates the spatial part about the x axis; a tau temporal
// component is untouched, a t component too (rotations do not mix space and
// time).
func (v Vector4) RotateX(angle float64) Vector4 {
	az, lon, err := spatial.RotateX(v, angle)
	must(err)

	return Vector4{lib: v.lib, az: az, lon: lon, tem: v.tem}
}

// RotateY rotates the spatial part about the y axis.
func (v Vector4) RotateY(angle float64) Vector4 {
	az, lon, err := spatial.RotateY(v, angle)
	must(err)

	return Vector4{lib: v.lib, az: az, lon: lon, tem: v.tem}
}

// RotateAxis rotates the spatial part about the axis direction by angle.
func (v Vector4) RotateAxis(axis Vector3, angle float64) Vector4 {
	az, lon, err := spatial.RotateAxis(v, axis, angle)
	must(err)

	return Vector4{lib: v.lib, az: az, lon: lon, tem: v.tem}
}

// BoostX boosts along the x axis by velocity beta.
func (v Vector4) BoostX(beta float64) Vector4 { return v.rewrap(lorentz.BoostXBeta(v, beta)) }

// BoostXGamma boosts along the x axis by a signed time-dilation factor.
func (v Vector4) BoostXGamma(gamma float64) Vector4 { return v.rewrap(lorentz.BoostXGamma(v, gamma)) }

// BoostY boosts along the y axis by velocity beta.
func (v Vector4) BoostY(beta float64) Vector4 { return v.rewrap(lorentz.BoostYBeta(v, beta)) }

// BoostYGamma boosts along the y axis by a signed time-dilation factor.
func (v Vector4) BoostYGamma(gamma float64) Vector4 { return v.rewrap(lorentz.BoostYGamma(v, gamma)) }

// BoostZ boosts along the z axis by velocity beta.
func (v Vector4) BoostZ(beta float64) Vector4 { return v.rewrap(lorentz.BoostZBeta(v, beta)) }

// BoostZGamma boosts along the z axis by a signed time-dilation factor.
func (v Vector4) BoostZGamma(gamma float64) Vector4 { return v.rewrap(lorentz.BoostZGamma(v, gamma)) }

// BoostBeta3 boosts by the velocity 3-vector beta3.
func (v Vector4) BoostBeta3(beta3 Vector3) Vector4 { return v.rewrap(lorentz.BoostBeta3(v, beta3)) }

// BoostP4 boosts into the frame moving with the four-momentum p4.
func (v Vector4) BoostP4(p4 Vector4) Vector4 { return v.rewrap(lorentz.BoostP4(v, p4)) }

// BoostCM boosts into p4's center-of-momentum frame: the opposite of
// BoostP4.
func (v Vector4) BoostCM(p4 Vector4) Vector4 { return v.BoostBeta3(p4.ToBeta3().Scale(-1)) }

// Transform4D applies an explicit 4×4 matrix.
func (v Vector4) Transform4D(m lorentz.Matrix4) Vector4 { return v.rewrap(lorentz.Transform4D(v, m)) }

// Scalars and predicates.

// Dot returns the Minkowski scalar product.
func (v Vector4) Dot(u Vector4) float64 { return mustFloat(lorentz.Dot(v, u)) }

// DeltaPhi returns the azimuthal separation, wrapped to (−π, π].
func (v Vector4) DeltaPhi(u Vector4) float64 { return mustFloat(planar.DeltaPhi(v, u)) }

// DeltaR returns the η-φ cone distance of the spatial parts.
func (v Vector4) DeltaR(u Vector4) float64 { return mustFloat(spatial.DeltaR(v, u)) }

// DeltaR2 returns the squared η-φ cone distance of the spatial parts.
func (v Vector4) DeltaR2(u Vector4) float64 { return mustFloat(spatial.DeltaR2(v, u)) }

// DeltaRapidityPhi returns the rapidity-φ cone distance.
func (v Vector4) DeltaRapidityPhi(u Vector4) float64 {
	return mustFloat(lorentz.DeltaRapidityPhi(v, u))
}

// DeltaRapidityPhi2 returns the squared rapidity-φ cone distance.
func (v Vector4) DeltaRapidityPhi2(u Vector4) float64 {
	return mustFloat(lorentz.DeltaRapidityPhi2(v, u))
}

// Equal reports exact component equality after representation alignment.
func (v Vector4) Equal(u Vector4) bool { return mustBool(lorentz.Equal(v, u)) }

// NotEqual is the negation of Equal.
func (v Vector4) NotEqual(u Vector4) bool { return !v.Equal(u) }

// IsClose reports tolerant equality. Optional overrides: tols[0] is the
// relative tolerance, tols[1] the absolute one.
func (v Vector4) IsClose(u Vector4, tols ...float64) bool {
	rtol, atol := closeTols(tols)

	return mustBool(lorentz.IsClose(v, u, rtol, atol, false))
}

// IsTimelike reports tau² > tol.
func (v Vector4) IsTimelike(tol ...float64) bool {
	return mustBool(lorentz.IsTimelike(v, tolOrDefault(tol)))
}

// IsSpacelike reports tau² < −tol.
func (v Vector4) IsSpacelike(tol ...float64) bool {
	return mustBool(lorentz.IsSpacelike(v, tolOrDefault(tol)))
}

// IsLightlike reports |tau²| < tol.
func (v Vector4) IsLightlike(tol ...float64) bool {
	return mustBool(lorentz.IsLightlike(v, tolOrDefault(tol)))
}

// To re-expresses v in the given kind combination.
func (v Vector4) To(az coords.AzimuthalKind, lon coords.LongitudinalKind, tem coords.TemporalKind) Vector4 {
	return Vector4{
		lib: v.lib,
		az:  convertAzimuthal(v, az),
		lon: convertLongitudinal(v, lon),
		tem: convertTemporal(v, tem),
	}
}

// convertTemporal rebuilds a Lorentz operand's temporal component in the
// target kind.
func convertTemporal(v coords.Lorentz, tem coords.TemporalKind) coords.Temporal {
	if v.Temporal().TemporalKind() == tem {
		return v.Temporal()
	}
	if tem == coords.KindT {
		return coords.T(mustFloat(lorentz.T(v)))
	}

	return coords.Tau(mustFloat(lorentz.Tau(v)))
}
