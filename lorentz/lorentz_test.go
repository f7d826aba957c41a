package lorentz_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hepvec/coords"
	"github.com/katalvlaran/hepvec/dispatch"
	"github.com/katalvlaran/hepvec/lorentz"
	"github.com/katalvlaran/hepvec/mathlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lv is a minimal Lorentz operand for tests.
type lv struct {
	lib mathlib.Lib
	az  coords.Azimuthal
	lon coords.Longitudinal
	tem coords.Temporal
}

func (v lv) Lib() mathlib.Lib                  { return v.lib }
func (v lv) Azimuthal() coords.Azimuthal       { return v.az }
func (v lv) Longitudinal() coords.Longitudinal { return v.lon }
func (v lv) Temporal() coords.Temporal         { return v.tem }

func xyzt(x, y, z, t float64) lv {
	return lv{lib: mathlib.Default, az: coords.XY{X: x, Y: y}, lon: coords.Z(z), tem: coords.T(t)}
}

// allForms re-expresses (x, y, z, t) in every one of the twelve signatures.
// The vector must be off the beamline; a spacelike vector gets a negative
// tau.
func allForms(x, y, z, t float64) map[string]lv {
	rho := math.Hypot(x, y)
	phi := math.Atan2(y, x)
	theta := math.Atan2(rho, z)
	eta := math.Asinh(z / rho)
	tau2 := t*t - (x*x + y*y + z*z)
	tau := math.Copysign(math.Sqrt(math.Abs(tau2)), tau2)

	azs := map[string]coords.Azimuthal{
		"xy":     coords.XY{X: x, Y: y},
		"rhophi": coords.RhoPhi{Rho: rho, Phi: phi},
	}
	lons := map[string]coords.Longitudinal{
		"z":     coords.Z(z),
		"theta": coords.Theta(theta),
		"eta":   coords.Eta(eta),
	}
	tems := map[string]coords.Temporal{
		"t":   coords.T(t),
		"tau": coords.Tau(tau),
	}

	forms := make(map[string]lv, 12)
	for an, az := range azs {
		for ln, lon := range lons {
			for tn, tem := range tems {
				forms[an+"_"+ln+"_"+tn] = lv{lib: mathlib.Default, az: az, lon: lon, tem: tem}
			}
		}
	}

	return forms
}

const delta = 1e-9

// TestTables_Complete verifies full cross-product coverage: 12 unary
// signatures, 144 binary, 72 velocity boosts (12 × 6).
func TestTables_Complete(t *testing.T) {
	for _, tbl := range []interface {
		Len() int
		Op() string
	}{
		lorentz.TTable, lorentz.T2Table, lorentz.TauTable, lorentz.Tau2Table,
		lorentz.BetaTable, lorentz.GammaTable, lorentz.RapidityTable,
		lorentz.EtTable, lorentz.Et2Table, lorentz.MtTable, lorentz.Mt2Table,
		lorentz.ScaleTable, lorentz.UnitTable, lorentz.ToBeta3Table,
		lorentz.Transform4DTable,
		lorentz.BoostXBetaTable, lorentz.BoostXGammaTable,
		lorentz.BoostYBetaTable, lorentz.BoostYGammaTable,
		lorentz.BoostZBetaTable, lorentz.BoostZGammaTable,
		lorentz.IsTimelikeTable, lorentz.IsSpacelikeTable, lorentz.IsLightlikeTable,
	} {
		assert.Equalf(t, 12, tbl.Len(), "%s covers all twelve signatures", tbl.Op())
	}
	for _, tbl := range []interface {
		Len() int
		Op() string
	}{
		lorentz.DotTable, lorentz.DeltaRapidityPhiTable, lorentz.DeltaRapidityPhi2Table,
		lorentz.AddTable, lorentz.SubtractTable, lorentz.BoostP4Table,
		lorentz.EqualTable, lorentz.IsCloseTable,
	} {
		assert.Equalf(t, 144, tbl.Len(), "%s covers the 12×12 cross-product", tbl.Op())
	}
	assert.Equal(t, 72, lorentz.BoostBeta3Table.Len(), "boostBeta3 covers 12 × 6 signatures")
}

// TestCoordinates_AllForms checks every temporal observable agrees across
// all twelve representations of one timelike vector.
func TestCoordinates_AllForms(t *testing.T) {
	const x, y, z, tee = 3.0, 4.0, 10.0, 20.0
	mag2 := x*x + y*y + z*z
	tau := math.Sqrt(tee*tee - mag2)

	for name, v := range allForms(x, y, z, tee) {
		t.Run(name, func(t *testing.T) {
			got, err := lorentz.T(v)
			require.NoError(t, err)
			assert.InDelta(t, tee, got, delta, "t")

			got, err = lorentz.T2(v)
			require.NoError(t, err)
			assert.InDelta(t, tee*tee, got, 1e-8, "t2")

			got, err = lorentz.Tau(v)
			require.NoError(t, err)
			assert.InDelta(t, tau, got, delta, "tau")

			got, err = lorentz.Tau2(v)
			require.NoError(t, err)
			assert.InDelta(t, tau*tau, got, 1e-8, "tau2")

			got, err = lorentz.Beta(v)
			require.NoError(t, err)
			assert.InDelta(t, math.Sqrt(mag2)/tee, got, delta, "beta")

			got, err = lorentz.Gamma(v)
			require.NoError(t, err)
			assert.InDelta(t, tee/tau, got, delta, "gamma")

			got, err = lorentz.Rapidity(v)
			require.NoError(t, err)
			assert.InDelta(t, 0.5*math.Log((tee+z)/(tee-z)), got, delta, "rapidity")

			got, err = lorentz.Et2(v)
			require.NoError(t, err)
			assert.InDelta(t, tee*tee*25/mag2, got, 1e-8, "Et2")

			got, err = lorentz.Et(v)
			require.NoError(t, err)
			assert.InDelta(t, math.Sqrt(tee*tee*25/mag2), got, delta, "Et")

			got, err = lorentz.Mt2(v)
			require.NoError(t, err)
			assert.InDelta(t, tee*tee-z*z, got, 1e-8, "Mt2")

			got, err = lorentz.Mt(v)
			require.NoError(t, err)
			assert.InDelta(t, math.Sqrt(tee*tee-z*z), got, delta, "Mt")
		})
	}
}

// TestSignedTau pins the spacelike substitution: tau carries the sign of
// tau² instead of going NaN, and the round trip back to t preserves it.
func TestSignedTau(t *testing.T) {
	spacelike := xyzt(3, 4, 0, 4) // tau² = 16 − 25 = −9

	tau, err := lorentz.Tau(spacelike)
	require.NoError(t, err)
	assert.InDelta(t, -3, tau, delta, "spacelike tau is negative, not NaN")

	tau2, err := lorentz.Tau2(spacelike)
	require.NoError(t, err)
	assert.InDelta(t, -9, tau2, delta)

	// The tau representation of the same vector must recover t = 4.
	asTau := lv{lib: mathlib.Default, az: coords.XY{X: 3, Y: 4}, lon: coords.Z(0), tem: coords.Tau(-3)}
	tee, err := lorentz.T(asTau)
	require.NoError(t, err)
	assert.InDelta(t, 4, tee, delta, "negative tau reduces the recovered t")

	// Mt² on the tau branch is clamped at zero.
	squeezed := lv{lib: mathlib.Default, az: coords.XY{X: 0, Y: 0}, lon: coords.Z(5), tem: coords.Tau(-3)}
	mt2, err := lorentz.Mt2(squeezed)
	require.NoError(t, err)
	assert.Zero(t, mt2, "tau-branch Mt2 never goes negative")
}

// TestDegenerateCoordinates pins beta of the zero vector and gamma of a
// lightlike vector.
func TestDegenerateCoordinates(t *testing.T) {
	zero := xyzt(0, 0, 0, 0)
	beta, err := lorentz.Beta(zero)
	require.NoError(t, err)
	assert.Zero(t, beta, "beta of the zero vector is 0")

	light := xyzt(3, 4, 0, 5)
	gamma, err := lorentz.Gamma(light)
	require.NoError(t, err)
	assert.True(t, math.IsInf(gamma, 1), "gamma of a lightlike vector is +Inf")
}

// TestDot_AllCombinations checks the generated kernels against the native
// Cartesian value over all 144 signature pairs.
func TestDot_AllCombinations(t *testing.T) {
	// The second operand is spacelike, so its tau forms carry a negative
	// proper time.
	lhs := allForms(0.1, 0.2, 0.3, 0.4)
	rhs := allForms(0.5, 0.6, 0.7, 0.8)
	want := 0.4*0.8 - (0.1*0.5 + 0.2*0.6 + 0.3*0.7) // −0.06

	for n1, v1 := range lhs {
		for n2, v2 := range rhs {
			got, err := lorentz.Dot(v1, v2)
			require.NoErrorf(t, err, "%s × %s", n1, n2)
			assert.InDeltaf(t, want, got, 1e-8, "%s × %s", n1, n2)
		}
	}
}

// TestAddSubtract covers the temporal result-kind rule: any t operand makes
// the sum t-kind; two tau operands keep a recovered tau.
func TestAddSubtract(t *testing.T) {
	forms1 := allForms(1, 2, 3, 10)
	forms2 := allForms(4, 0.5, 2, 5)

	az, lon, tem, err := lorentz.Add(forms1["xy_z_t"], forms2["xy_z_t"])
	require.NoError(t, err)
	x, y := az.AzimuthalElements()
	assert.InDelta(t, 5, x, delta)
	assert.InDelta(t, 2.5, y, delta)
	assert.InDelta(t, 5, lon.LongitudinalElement(), delta)
	assert.Equal(t, coords.KindT, tem.TemporalKind())
	assert.InDelta(t, 15, tem.TemporalElement(), delta)

	// Mixed temporal kinds still come back t.
	_, _, tem, err = lorentz.Add(forms1["rhophi_eta_tau"], forms2["xy_z_t"])
	require.NoError(t, err)
	assert.Equal(t, coords.KindT, tem.TemporalKind())
	assert.InDelta(t, 15, tem.TemporalElement(), delta)

	// Both tau: the result is tau-kind with tau recovered from the summed
	// components.
	az, lon, tem, err = lorentz.Add(forms1["xy_z_tau"], forms2["xy_z_tau"])
	require.NoError(t, err)
	assert.Equal(t, coords.KindTau, tem.TemporalKind())
	wantTau2 := 15.0*15 - (25 + 2.5*2.5 + 25)
	assert.InDelta(t, math.Sqrt(wantTau2), tem.TemporalElement(), delta)

	// Subtract round trip through converted signatures.
	sum := lv{lib: mathlib.Default, az: az, lon: lon, tem: tem}
	az, lon, tem, err = lorentz.Subtract(sum, forms2["rhophi_theta_tau"])
	require.NoError(t, err)
	back := lv{lib: mathlib.Default, az: az, lon: lon, tem: tem}
	ok, err := lorentz.IsClose(back, forms1["xy_z_t"], 1e-9, 1e-12, false)
	require.NoError(t, err)
	assert.True(t, ok, "(a + b) − b must recover a")
}

// TestScale preserves the representation and scales all four components.
func TestScale(t *testing.T) {
	forms := allForms(1, 2, 3, 10)

	az, lon, tem, err := lorentz.Scale(forms["rhophi_eta_tau"], 2)
	require.NoError(t, err)
	assert.Equal(t, coords.KindRhoPhi, az.AzimuthalKind())
	assert.Equal(t, coords.KindEta, lon.LongitudinalKind())
	assert.Equal(t, coords.KindTau, tem.TemporalKind())
	rho, _ := az.AzimuthalElements()
	assert.InDelta(t, 2*math.Hypot(1, 2), rho, delta)
	assert.InDelta(t, 2*forms["rhophi_eta_tau"].tem.TemporalElement(), tem.TemporalElement(), delta)
}

// TestUnit normalizes to |tau| = 1 with the temporal kind preserved.
func TestUnit(t *testing.T) {
	for name, v := range allForms(1, 2, 3, 10) {
		az, lon, tem, err := lorentz.Unit(v)
		require.NoErrorf(t, err, name)
		assert.Equal(t, coords.KindXY, az.AzimuthalKind())
		assert.Equal(t, coords.KindZ, lon.LongitudinalKind())
		assert.Equalf(t, v.tem.TemporalKind(), tem.TemporalKind(), "%s keeps temporal kind", name)

		unit := lv{lib: mathlib.Default, az: az, lon: lon, tem: tem}
		tau, err := lorentz.Tau(unit)
		require.NoError(t, err)
		assert.InDeltaf(t, 1, tau, 1e-9, "%s unit tau", name)
	}
}

// TestToBeta3 checks the velocity extraction and its representation rule:
// only the length-like components divide by t.
func TestToBeta3(t *testing.T) {
	forms := allForms(3, 4, 10, 20)

	az, lon, err := lorentz.ToBeta3(forms["xy_z_t"])
	require.NoError(t, err)
	x, y := az.AzimuthalElements()
	assert.InDelta(t, 3.0/20, x, delta)
	assert.InDelta(t, 4.0/20, y, delta)
	assert.InDelta(t, 10.0/20, lon.LongitudinalElement(), delta)

	az, lon, err = lorentz.ToBeta3(forms["rhophi_theta_tau"])
	require.NoError(t, err)
	assert.Equal(t, coords.KindRhoPhi, az.AzimuthalKind())
	assert.Equal(t, coords.KindTheta, lon.LongitudinalKind())
	rho, phi := az.AzimuthalElements()
	assert.InDelta(t, 5.0/20, rho, delta, "rho scales")
	assert.InDelta(t, math.Atan2(4, 3), phi, delta, "phi does not")
	assert.InDelta(t, math.Atan2(5, 10), lon.LongitudinalElement(), delta, "theta does not")
}

// TestAxisBoosts checks the z boost against the explicit formula and the
// beta/gamma parameterizations against each other.
func TestAxisBoosts(t *testing.T) {
	v := xyzt(1, 2, 3, 10)
	beta := 0.6
	gamma := 1 / math.Sqrt(1-beta*beta)

	az, lon, tem, err := lorentz.BoostZBeta(v, beta)
	require.NoError(t, err)
	x, y := az.AzimuthalElements()
	assert.InDelta(t, 1, x, delta)
	assert.InDelta(t, 2, y, delta)
	assert.InDelta(t, gamma*(3+beta*10), lon.LongitudinalElement(), delta)
	assert.InDelta(t, gamma*(10+beta*3), tem.TemporalElement(), delta)

	az2, lon2, tem2, err := lorentz.BoostZGamma(v, gamma)
	require.NoError(t, err)
	x2, y2 := az2.AzimuthalElements()
	assert.InDelta(t, x, x2, delta)
	assert.InDelta(t, y, y2, delta)
	assert.InDelta(t, lon.LongitudinalElement(), lon2.LongitudinalElement(), delta)
	assert.InDelta(t, tem.TemporalElement(), tem2.TemporalElement(), delta)

	// A negative gamma boosts the other way; boosting back restores v.
	boosted := lv{lib: mathlib.Default, az: az, lon: lon, tem: tem}
	az, lon, tem, err = lorentz.BoostZGamma(boosted, -gamma)
	require.NoError(t, err)
	back := lv{lib: mathlib.Default, az: az, lon: lon, tem: tem}
	ok, err := lorentz.IsClose(back, v, 1e-9, 1e-12, false)
	require.NoError(t, err)
	assert.True(t, ok, "opposite gamma must undo the boost")

	// BoostX moves t into x.
	az, _, tem, err = lorentz.BoostXBeta(v, beta)
	require.NoError(t, err)
	x, _ = az.AzimuthalElements()
	assert.InDelta(t, gamma*(1+beta*10), x, delta)
	assert.InDelta(t, gamma*(10+beta*1), tem.TemporalElement(), delta)
}

// TestBoostTauInvariant: a tau operand keeps its proper time through any
// boost.
func TestBoostTauInvariant(t *testing.T) {
	v := allForms(1, 2, 3, 10)["xy_z_tau"]

	_, _, tem, err := lorentz.BoostZBeta(v, 0.6)
	require.NoError(t, err)
	assert.Equal(t, coords.KindTau, tem.TemporalKind())
	assert.InDelta(t, v.tem.TemporalElement(), tem.TemporalElement(), delta,
		"proper time is boost invariant")
}

// TestBoostBeta3 must agree with the single-axis boost when the velocity
// lies on an axis, over converted velocity signatures too.
func TestBoostBeta3(t *testing.T) {
	v := xyzt(1, 2, 3, 10)
	beta3 := spatialOperand{
		lib: mathlib.Default,
		az:  coords.RhoPhi{Rho: 0, Phi: 0},
		lon: coords.Z(0.6),
	}

	az, lon, tem, err := lorentz.BoostBeta3(v, beta3)
	require.NoError(t, err)

	wantAz, wantLon, wantTem, err := lorentz.BoostZBeta(v, 0.6)
	require.NoError(t, err)
	x, y := az.AzimuthalElements()
	wx, wy := wantAz.AzimuthalElements()
	assert.InDelta(t, wx, x, delta)
	assert.InDelta(t, wy, y, delta)
	assert.InDelta(t, wantLon.LongitudinalElement(), lon.LongitudinalElement(), delta)
	assert.InDelta(t, wantTem.TemporalElement(), tem.TemporalElement(), delta)
}

// spatialOperand adapts raw components to the spatial interface for the
// velocity argument of BoostBeta3.
type spatialOperand struct {
	lib mathlib.Lib
	az  coords.Azimuthal
	lon coords.Longitudinal
}

func (v spatialOperand) Lib() mathlib.Lib                  { return v.lib }
func (v spatialOperand) Azimuthal() coords.Azimuthal       { return v.az }
func (v spatialOperand) Longitudinal() coords.Longitudinal { return v.lon }

// TestBoostP4 boosts the rest-frame vector of a four-momentum by that
// four-momentum and must recover the momentum itself.
func TestBoostP4(t *testing.T) {
	p4 := xyzt(3, 4, 10, 20)
	mass := math.Sqrt(20*20 - 125)
	rest := xyzt(0, 0, 0, mass)

	az, lon, tem, err := lorentz.BoostP4(rest, p4)
	require.NoError(t, err)
	boosted := lv{lib: mathlib.Default, az: az, lon: lon, tem: tem}

	ok, err := lorentz.IsClose(boosted, p4, 1e-9, 1e-12, false)
	require.NoError(t, err)
	assert.True(t, ok, "boosting the rest vector by p4 recovers p4")
}

// TestTransform4D applies a full matrix to a t operand and checks a tau
// operand only sees the spatial rows.
func TestTransform4D(t *testing.T) {
	m := lorentz.Matrix4{XX: -1, YY: 1, ZZ: 1, TT: 2}

	az, lon, tem, err := lorentz.Transform4D(xyzt(1, 2, 3, 10), m)
	require.NoError(t, err)
	x, y := az.AzimuthalElements()
	assert.InDelta(t, -1, x, delta)
	assert.InDelta(t, 2, y, delta)
	assert.InDelta(t, 3, lon.LongitudinalElement(), delta)
	assert.InDelta(t, 20, tem.TemporalElement(), delta)

	tauV := allForms(1, 2, 3, 10)["xy_z_tau"]
	_, _, tem, err = lorentz.Transform4D(tauV, m)
	require.NoError(t, err)
	assert.Equal(t, coords.KindTau, tem.TemporalKind())
	assert.InDelta(t, tauV.tem.TemporalElement(), tem.TemporalElement(), delta,
		"tau operands keep tau through a transform")
}

// TestDeltaRapidityPhi checks the rapidity-φ separation.
func TestDeltaRapidityPhi(t *testing.T) {
	v1 := xyzt(1, 0, 1, 10)
	v2 := xyzt(0, 1, 2, 10)

	rap1 := 0.5 * math.Log(11.0/9)
	rap2 := 0.5 * math.Log(12.0/8)
	want2 := (rap1-rap2)*(rap1-rap2) + (math.Pi/2)*(math.Pi/2)

	got2, err := lorentz.DeltaRapidityPhi2(v1, v2)
	require.NoError(t, err)
	assert.InDelta(t, want2, got2, delta)

	got, err := lorentz.DeltaRapidityPhi(v1, v2)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(want2), got, delta)
}

// TestCausalPredicates classifies timelike, spacelike, and lightlike
// vectors across representations.
func TestCausalPredicates(t *testing.T) {
	tol := 1e-5

	for name, v := range allForms(3, 4, 10, 20) {
		ok, err := lorentz.IsTimelike(v, tol)
		require.NoErrorf(t, err, name)
		assert.Truef(t, ok, "%s is timelike", name)
	}

	space := xyzt(3, 4, 0, 4)
	ok, err := lorentz.IsSpacelike(space, tol)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = lorentz.IsTimelike(space, tol)
	require.NoError(t, err)
	assert.False(t, ok)

	light := xyzt(3, 4, 0, 5)
	ok, err = lorentz.IsLightlike(light, tol)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = lorentz.IsSpacelike(light, tol)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestEquality covers exact and tolerant comparison across
// representations.
func TestEquality(t *testing.T) {
	forms := allForms(1, 2, 3, 10)

	eq, err := lorentz.Equal(forms["xy_z_t"], forms["xy_z_t"])
	require.NoError(t, err)
	assert.True(t, eq)

	ok, err := lorentz.IsClose(forms["rhophi_theta_tau"], forms["xy_eta_t"], 1e-9, 1e-12, false)
	require.NoError(t, err)
	assert.True(t, ok, "the same event is close across representations")

	ne, err := lorentz.NotEqual(forms["xy_z_t"], xyzt(1, 2, 3, 11))
	require.NoError(t, err)
	assert.True(t, ne)
}

// TestBackendMismatch verifies the sentinel on binary operations.
func TestBackendMismatch(t *testing.T) {
	a := xyzt(1, 2, 3, 10)
	b := lv{lib: mathlib.Float32{}, az: coords.XY{X: 1, Y: 2}, lon: coords.Z(3), tem: coords.T(10)}

	_, err := lorentz.Dot(a, b)
	assert.ErrorIs(t, err, dispatch.ErrBackendMismatch)

	_, _, _, err = lorentz.Add(a, b)
	assert.ErrorIs(t, err, dispatch.ErrBackendMismatch)
}
