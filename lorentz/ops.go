// SPDX-License-Identifier: MIT
// Package lorentz: caller-facing operations, same resolve-run-rewrap shape
// as the planar and spatial packages.

package lorentz

import (
	"github.com/katalvlaran/hepvec/coords"
	"github.com/katalvlaran/hepvec/dispatch"
)

// components flattens a Lorentz operand into its raw elements.
func components(v coords.Lorentz) (a, b, c, d float64) {
	a, b = v.Azimuthal().AzimuthalElements()

	return a, b, v.Longitudinal().LongitudinalElement(), v.Temporal().TemporalElement()
}

// result rebuilds Lorentz components from a declared result signature.
func result(sig coords.LorentzSig, a, b, c, d float64) (coords.Azimuthal, coords.Longitudinal, coords.Temporal) {
	return coords.NewAzimuthal(sig.Az, a, b),
		coords.NewLongitudinal(sig.Lon, c),
		coords.NewTemporal(sig.Tem, d)
}

// T returns the coordinate time (energy, for a four-momentum).
func T(v coords.Lorentz) (float64, error) { return scalar(TTable, v) }

// T2 returns the squared coordinate time.
func T2(v coords.Lorentz) (float64, error) { return scalar(T2Table, v) }

// Tau returns the signed proper time (mass): copysign(sqrt(|t²−mag²|),
// t²−mag²), so spacelike vectors yield a negative tau rather than NaN.
func Tau(v coords.Lorentz) (float64, error) { return scalar(TauTable, v) }

// Tau2 returns the signed squared proper time t² − mag².
func Tau2(v coords.Lorentz) (float64, error) { return scalar(Tau2Table, v) }

// Beta returns the speed |v|/t. The zero vector yields 0.
func Beta(v coords.Lorentz) (float64, error) { return scalar(BetaTable, v) }

// Gamma returns the time-dilation factor t/tau. A lightlike vector yields
// +Inf.
func Gamma(v coords.Lorentz) (float64, error) { return scalar(GammaTable, v) }

// Rapidity returns 0.5 ln((t+z)/(t−z)).
func Rapidity(v coords.Lorentz) (float64, error) { return scalar(RapidityTable, v) }

// Et returns the transverse energy t·ρ/|v|.
func Et(v coords.Lorentz) (float64, error) { return scalar(EtTable, v) }

// Et2 returns the squared transverse energy.
func Et2(v coords.Lorentz) (float64, error) { return scalar(Et2Table, v) }

// Mt returns the transverse mass sqrt(Mt²).
func Mt(v coords.Lorentz) (float64, error) { return scalar(MtTable, v) }

// Mt2 returns the squared transverse mass t² − z². On tau operands the
// value is clamped at zero.
func Mt2(v coords.Lorentz) (float64, error) { return scalar(Mt2Table, v) }

// Dot returns the Minkowski scalar product t1·t2 − x1·x2 − y1·y2 − z1·z2.
func Dot(v1, v2 coords.Lorentz) (float64, error) { return scalar2(DotTable, v1, v2) }

// DeltaRapidityPhi returns the rapidity-φ cone distance
// sqrt(Δrapidity² + Δφ²).
func DeltaRapidityPhi(v1, v2 coords.Lorentz) (float64, error) {
	return scalar2(DeltaRapidityPhiTable, v1, v2)
}

// DeltaRapidityPhi2 returns the squared rapidity-φ cone distance.
func DeltaRapidityPhi2(v1, v2 coords.Lorentz) (float64, error) {
	return scalar2(DeltaRapidityPhi2Table, v1, v2)
}

// Add returns the component sum. The spatial part follows the spatial
// result rule; the temporal part is t-kind unless both operands carry tau,
// in which case the result keeps a recovered signed tau.
func Add(v1, v2 coords.Lorentz) (coords.Azimuthal, coords.Longitudinal, coords.Temporal, error) {
	return vector2(AddTable, v1, v2)
}

// Subtract returns the component difference, with the same result-kind rule
// as Add.
func Subtract(v1, v2 coords.Lorentz) (coords.Azimuthal, coords.Longitudinal, coords.Temporal, error) {
	return vector2(SubtractTable, v1, v2)
}

// Scale multiplies all four components by a signed factor, preserving the
// operand's representation.
func Scale(v coords.Lorentz, factor float64) (coords.Azimuthal, coords.Longitudinal, coords.Temporal, error) {
	return unaryParam(ScaleTable, v, factor)
}

// Unit returns v normalized to |tau| = 1, in xy_z spatial components with
// the operand's temporal kind.
func Unit(v coords.Lorentz) (coords.Azimuthal, coords.Longitudinal, coords.Temporal, error) {
	fn, sig, err := UnitTable.Resolve(coords.SigOfLorentz(v))
	if err != nil {
		return nil, nil, nil, err
	}
	a, b, c, d := components(v)
	ra, rb, rc, rd := fn(v.Lib(), a, b, c, d)
	az, lon, tem := result(sig, ra, rb, rc, rd)

	return az, lon, tem, nil
}

// ToBeta3 returns the velocity 3-vector v/t, keeping the operand's spatial
// representation.
func ToBeta3(v coords.Lorentz) (coords.Azimuthal, coords.Longitudinal, error) {
	fn, sig, err := ToBeta3Table.Resolve(coords.SigOfLorentz(v))
	if err != nil {
		return nil, nil, err
	}
	a, b, c, d := components(v)
	ra, rb, rc := fn(v.Lib(), a, b, c, d)

	return coords.NewAzimuthal(sig.Az, ra, rb), coords.NewLongitudinal(sig.Lon, rc), nil
}

// BoostXBeta boosts along the x axis by velocity beta.
func BoostXBeta(v coords.Lorentz, beta float64) (coords.Azimuthal, coords.Longitudinal, coords.Temporal, error) {
	return unaryParam(BoostXBetaTable, v, beta)
}

// BoostXGamma boosts along the x axis by a signed time-dilation factor; the
// sign picks the direction.
func BoostXGamma(v coords.Lorentz, gamma float64) (coords.Azimuthal, coords.Longitudinal, coords.Temporal, error) {
	return unaryParam(BoostXGammaTable, v, gamma)
}

// BoostYBeta boosts along the y axis by velocity beta.
func BoostYBeta(v coords.Lorentz, beta float64) (coords.Azimuthal, coords.Longitudinal, coords.Temporal, error) {
	return unaryParam(BoostYBetaTable, v, beta)
}

// BoostYGamma boosts along the y axis by a signed time-dilation factor.
func BoostYGamma(v coords.Lorentz, gamma float64) (coords.Azimuthal, coords.Longitudinal, coords.Temporal, error) {
	return unaryParam(BoostYGammaTable, v, gamma)
}

// BoostZBeta boosts along the z axis by velocity beta.
func BoostZBeta(v coords.Lorentz, beta float64) (coords.Azimuthal, coords.Longitudinal, coords.Temporal, error) {
	return unaryParam(BoostZBetaTable, v, beta)
}

// BoostZGamma boosts along the z axis by a signed time-dilation factor.
func BoostZGamma(v coords.Lorentz, gamma float64) (coords.Azimuthal, coords.Longitudinal, coords.Temporal, error) {
	return unaryParam(BoostZGammaTable, v, gamma)
}

// BoostBeta3 boosts v by the velocity 3-vector beta3. Result is xy_z with
// v's temporal kind; a tau operand keeps its tau, since proper time is
// boost invariant.
func BoostBeta3(v coords.Lorentz, beta3 coords.Spatial) (coords.Azimuthal, coords.Longitudinal, coords.Temporal, error) {
	lib, err := dispatch.SharedLib(v.Lib(), beta3.Lib())
	if err != nil {
		return nil, nil, nil, err
	}
	key := coords.BoostSig{V: coords.SigOfLorentz(v), B: coords.SigOfSpatial(beta3)}
	fn, sig, err := BoostBeta3Table.Resolve(key)
	if err != nil {
		return nil, nil, nil, err
	}
	a1, b1, c1, d1 := components(v)
	a2, b2 := beta3.Azimuthal().AzimuthalElements()
	c2 := beta3.Longitudinal().LongitudinalElement()
	ra, rb, rc, rd := fn(lib, a1, b1, c1, d1, a2, b2, c2)
	az, lon, tem := result(sig, ra, rb, rc, rd)

	return az, lon, tem, nil
}

// BoostP4 boosts v into the frame moving with the four-momentum p4:
// gamma = E/m, velocity direction p/|p|.
func BoostP4(v, p4 coords.Lorentz) (coords.Azimuthal, coords.Longitudinal, coords.Temporal, error) {
	return vector2(BoostP4Table, v, p4)
}

// Transform4D applies m to v. The spatial result is always xy_z; a tau
// operand keeps its tau and only the spatial rows of m apply.
func Transform4D(v coords.Lorentz, m Matrix4) (coords.Azimuthal, coords.Longitudinal, coords.Temporal, error) {
	fn, sig, err := Transform4DTable.Resolve(coords.SigOfLorentz(v))
	if err != nil {
		return nil, nil, nil, err
	}
	a, b, c, d := components(v)
	ra, rb, rc, rd := fn(v.Lib(), m, a, b, c, d)
	az, lon, tem := result(sig, ra, rb, rc, rd)

	return az, lon, tem, nil
}

// Equal reports exact component equality after bringing both operands into
// a common representation. Prefer IsClose for floating-point comparisons.
func Equal(v1, v2 coords.Lorentz) (bool, error) {
	lib, err := dispatch.SharedLib(v1.Lib(), v2.Lib())
	if err != nil {
		return false, err
	}
	key := coords.LorentzPair{V1: coords.SigOfLorentz(v1), V2: coords.SigOfLorentz(v2)}
	fn, _, err := EqualTable.Resolve(key)
	if err != nil {
		return false, err
	}
	a1, b1, c1, d1 := components(v1)
	a2, b2, c2, d2 := components(v2)

	return fn(lib, a1, b1, c1, d1, a2, b2, c2, d2), nil
}

// NotEqual is the negation of Equal.
func NotEqual(v1, v2 coords.Lorentz) (bool, error) {
	eq, err := Equal(v1, v2)

	return !eq, err
}

// IsClose reports component-wise tolerant equality.
func IsClose(v1, v2 coords.Lorentz, rtol, atol float64, equalNaN bool) (bool, error) {
	lib, err := dispatch.SharedLib(v1.Lib(), v2.Lib())
	if err != nil {
		return false, err
	}
	key := coords.LorentzPair{V1: coords.SigOfLorentz(v1), V2: coords.SigOfLorentz(v2)}
	fn, _, err := IsCloseTable.Resolve(key)
	if err != nil {
		return false, err
	}
	a1, b1, c1, d1 := components(v1)
	a2, b2, c2, d2 := components(v2)

	return fn(lib, rtol, atol, equalNaN, a1, b1, c1, d1, a2, b2, c2, d2), nil
}

// IsTimelike reports tau² > |tol|.
func IsTimelike(v coords.Lorentz, tol float64) (bool, error) {
	return predicate(IsTimelikeTable, v, tol)
}

// IsSpacelike reports tau² < −|tol|.
func IsSpacelike(v coords.Lorentz, tol float64) (bool, error) {
	return predicate(IsSpacelikeTable, v, tol)
}

// IsLightlike reports |tau²| < |tol|.
func IsLightlike(v coords.Lorentz, tol float64) (bool, error) {
	return predicate(IsLightlikeTable, v, tol)
}

// Shared plumbing.

func scalar(
	tbl *dispatch.Table[coords.LorentzSig, ScalarKernel, coords.ScalarKind],
	v coords.Lorentz,
) (float64, error) {
	fn, _, err := tbl.Resolve(coords.SigOfLorentz(v))
	if err != nil {
		return 0, err
	}
	a, b, c, d := components(v)

	return fn(v.Lib(), a, b, c, d), nil
}

func scalar2(
	tbl *dispatch.Table[coords.LorentzPair, ScalarKernel2, coords.ScalarKind],
	v1, v2 coords.Lorentz,
) (float64, error) {
	lib, err := dispatch.SharedLib(v1.Lib(), v2.Lib())
	if err != nil {
		return 0, err
	}
	key := coords.LorentzPair{V1: coords.SigOfLorentz(v1), V2: coords.SigOfLorentz(v2)}
	fn, _, err := tbl.Resolve(key)
	if err != nil {
		return 0, err
	}
	a1, b1, c1, d1 := components(v1)
	a2, b2, c2, d2 := components(v2)

	return fn(lib, a1, b1, c1, d1, a2, b2, c2, d2), nil
}

func vector2(
	tbl *dispatch.Table[coords.LorentzPair, VectorKernel2, coords.LorentzSig],
	v1, v2 coords.Lorentz,
) (coords.Azimuthal, coords.Longitudinal, coords.Temporal, error) {
	lib, err := dispatch.SharedLib(v1.Lib(), v2.Lib())
	if err != nil {
		return nil, nil, nil, err
	}
	key := coords.LorentzPair{V1: coords.SigOfLorentz(v1), V2: coords.SigOfLorentz(v2)}
	fn, sig, err := tbl.Resolve(key)
	if err != nil {
		return nil, nil, nil, err
	}
	a1, b1, c1, d1 := components(v1)
	a2, b2, c2, d2 := components(v2)
	ra, rb, rc, rd := fn(lib, a1, b1, c1, d1, a2, b2, c2, d2)
	az, lon, tem := result(sig, ra, rb, rc, rd)

	return az, lon, tem, nil
}

func unaryParam(
	tbl *dispatch.Table[coords.LorentzSig, ParamVectorKernel, coords.LorentzSig],
	v coords.Lorentz, p float64,
) (coords.Azimuthal, coords.Longitudinal, coords.Temporal, error) {
	fn, sig, err := tbl.Resolve(coords.SigOfLorentz(v))
	if err != nil {
		return nil, nil, nil, err
	}
	a, b, c, d := components(v)
	ra, rb, rc, rd := fn(v.Lib(), p, a, b, c, d)
	az, lon, tem := result(sig, ra, rb, rc, rd)

	return az, lon, tem, nil
}

func predicate(
	tbl *dispatch.Table[coords.LorentzSig, TolBoolKernel, coords.ScalarKind],
	v coords.Lorentz, tol float64,
) (bool, error) {
	fn, _, err := tbl.Resolve(coords.SigOfLorentz(v))
	if err != nil {
		return false, err
	}
	a, b, c, d := components(v)

	return fn(v.Lib(), tol, a, b, c, d), nil
}
