package spatial_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hepvec/coords"
	"github.com/katalvlaran/hepvec/dispatch"
	"github.com/katalvlaran/hepvec/mathlib"
	"github.com/katalvlaran/hepvec/planar"
	"github.com/katalvlaran/hepvec/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sv is a minimal spatial operand for tests.
type sv struct {
	lib mathlib.Lib
	az  coords.Azimuthal
	lon coords.Longitudinal
}

func (v sv) Lib() mathlib.Lib                  { return v.lib }
func (v sv) Azimuthal() coords.Azimuthal       { return v.az }
func (v sv) Longitudinal() coords.Longitudinal { return v.lon }

func xyz(x, y, z float64) sv {
	return sv{lib: mathlib.Default, az: coords.XY{X: x, Y: y}, lon: coords.Z(z)}
}

// allForms re-expresses (x, y, z) in every one of the six signatures.
func allForms(x, y, z float64) map[string]sv {
	rho := math.Hypot(x, y)
	phi := math.Atan2(y, x)
	theta := math.Atan2(rho, z)
	eta := math.Asinh(z / rho)

	return map[string]sv{
		"xy_z":         xyz(x, y, z),
		"xy_theta":     {lib: mathlib.Default, az: coords.XY{X: x, Y: y}, lon: coords.Theta(theta)},
		"xy_eta":       {lib: mathlib.Default, az: coords.XY{X: x, Y: y}, lon: coords.Eta(eta)},
		"rhophi_z":     {lib: mathlib.Default, az: coords.RhoPhi{Rho: rho, Phi: phi}, lon: coords.Z(z)},
		"rhophi_theta": {lib: mathlib.Default, az: coords.RhoPhi{Rho: rho, Phi: phi}, lon: coords.Theta(theta)},
		"rhophi_eta":   {lib: mathlib.Default, az: coords.RhoPhi{Rho: rho, Phi: phi}, lon: coords.Eta(eta)},
	}
}

const delta = 1e-9

// TestTables_Complete verifies full cross-product coverage: 6 unary
// signatures, 36 binary, 72 euler (6 signatures × 12 orders).
func TestTables_Complete(t *testing.T) {
	for _, tbl := range []interface {
		Len() int
		Op() string
	}{
		spatial.ZTable, spatial.ThetaTable, spatial.EtaTable, spatial.CosThetaTable,
		spatial.CotThetaTable, spatial.MagTable, spatial.Mag2Table,
		spatial.ScaleTable, spatial.UnitTable, spatial.RotateXTable, spatial.RotateYTable,
		spatial.RotateQuaternionTable, spatial.Transform3DTable,
	} {
		assert.Equalf(t, 6, tbl.Len(), "%s covers all six signatures", tbl.Op())
	}
	for _, tbl := range []interface {
		Len() int
		Op() string
	}{
		spatial.DotTable, spatial.DeltaAngleTable, spatial.DeltaEtaTable,
		spatial.DeltaRTable, spatial.DeltaR2Table, spatial.AddTable,
		spatial.SubtractTable, spatial.CrossTable, spatial.RotateAxisTable,
		spatial.EqualTable, spatial.IsCloseTable, spatial.IsParallelTable,
		spatial.IsAntiparallelTable, spatial.IsPerpendicularTable,
	} {
		assert.Equalf(t, 36, tbl.Len(), "%s covers the 6×6 cross-product", tbl.Op())
	}
	assert.Equal(t, 72, spatial.RotateEulerTable.Len(), "euler covers 6 signatures × 12 orders")
}

// TestCoordinates_AllForms checks every observable agrees across all six
// representations of one vector.
func TestCoordinates_AllForms(t *testing.T) {
	const x, y, z = 3.0, 4.0, 10.0
	mag := math.Sqrt(x*x + y*y + z*z)
	theta := math.Atan2(5, z)
	eta := math.Asinh(z / 5)

	for name, v := range allForms(x, y, z) {
		t.Run(name, func(t *testing.T) {
			got, err := spatial.Z(v)
			require.NoError(t, err)
			assert.InDelta(t, z, got, delta, "z")

			got, err = spatial.Theta(v)
			require.NoError(t, err)
			assert.InDelta(t, theta, got, delta, "theta")

			got, err = spatial.Eta(v)
			require.NoError(t, err)
			assert.InDelta(t, eta, got, delta, "eta")

			got, err = spatial.Mag(v)
			require.NoError(t, err)
			assert.InDelta(t, mag, got, delta, "mag")

			got, err = spatial.Mag2(v)
			require.NoError(t, err)
			assert.InDelta(t, mag*mag, got, 1e-8, "mag2")

			got, err = spatial.CosTheta(v)
			require.NoError(t, err)
			assert.InDelta(t, z/mag, got, delta, "costheta")

			got, err = spatial.CotTheta(v)
			require.NoError(t, err)
			assert.InDelta(t, z/5, got, delta, "cottheta")
		})
	}
}

// TestDegenerateCoordinates pins the substitution rules for vectors on the
// beamline and the zero vector.
func TestDegenerateCoordinates(t *testing.T) {
	beam := xyz(0, 0, 2)
	eta, err := spatial.Eta(beam)
	require.NoError(t, err)
	assert.True(t, math.IsInf(eta, 1), "eta on the +z beamline is +Inf")

	cot, err := spatial.CotTheta(beam)
	require.NoError(t, err)
	assert.True(t, math.IsInf(cot, 1), "cottheta on the beamline is +Inf")

	zero := xyz(0, 0, 0)
	eta, err = spatial.Eta(zero)
	require.NoError(t, err)
	assert.Zero(t, eta, "eta of the zero vector is 0")

	cos, err := spatial.CosTheta(zero)
	require.NoError(t, err)
	assert.Equal(t, 1.0, cos, "costheta of the zero vector is 1")
}

// TestDot_AllCombinations checks the generated kernels against the native
// Cartesian value over all 36 signature pairs.
func TestDot_AllCombinations(t *testing.T) {
	lhs := allForms(1, 2, 3)
	rhs := allForms(-4, 0.5, 2)
	want := 1*(-4.0) + 2*0.5 + 3*2.0

	for n1, v1 := range lhs {
		for n2, v2 := range rhs {
			got, err := spatial.Dot(v1, v2)
			require.NoErrorf(t, err, "%s × %s", n1, n2)
			assert.InDeltaf(t, want, got, 1e-8, "%s × %s", n1, n2)
		}
	}
}

// TestCross checks the native kernel, a generated combination, and the
// anticommutativity property.
func TestCross(t *testing.T) {
	a := xyz(1, 2, 3)
	b := xyz(-4, 0.5, 2)

	az, lon, err := spatial.Cross(a, b)
	require.NoError(t, err)
	cx, cy := az.AzimuthalElements()
	assert.InDelta(t, 2*2-3*0.5, cx, delta)
	assert.InDelta(t, 3*(-4)-1*2, cy, delta)
	assert.InDelta(t, 1*0.5-2*(-4), lon.LongitudinalElement(), delta)

	// v × v = 0 through a converted signature.
	forms := allForms(1, 2, 3)
	az, lon, err = spatial.Cross(forms["rhophi_eta"], forms["xy_z"])
	require.NoError(t, err)
	cx, cy = az.AzimuthalElements()
	assert.InDelta(t, 0, cx, delta)
	assert.InDelta(t, 0, cy, delta)
	assert.InDelta(t, 0, lon.LongitudinalElement(), delta)
}

// TestAdd_SameKindKeepsRepresentation checks both the value and the
// result-kind rule.
func TestAdd_SameKindKeepsRepresentation(t *testing.T) {
	forms1 := allForms(1, 2, 3)
	forms2 := allForms(-4, 0.5, 2)

	for name := range forms1 {
		az, lon, err := spatial.Add(forms1[name], forms2[name])
		require.NoErrorf(t, err, "%s + %s", name, name)
		assert.Equalf(t, forms1[name].az.AzimuthalKind(), az.AzimuthalKind(),
			"%s result keeps azimuthal kind", name)
		assert.Equalf(t, forms1[name].lon.LongitudinalKind(), lon.LongitudinalKind(),
			"%s result keeps longitudinal kind", name)

		got := sv{lib: mathlib.Default, az: az, lon: lon}
		x, err := planar.X(got)
		require.NoError(t, err)
		assert.InDeltaf(t, -3, x, 1e-9, "%s sum x", name)
		z, err := spatial.Z(got)
		require.NoError(t, err)
		assert.InDeltaf(t, 5, z, 1e-9, "%s sum z", name)
	}

	// Mixed signatures come back xy_z.
	az, lon, err := spatial.Add(forms1["xy_theta"], forms2["rhophi_eta"])
	require.NoError(t, err)
	assert.Equal(t, coords.KindXY, az.AzimuthalKind())
	assert.Equal(t, coords.KindZ, lon.LongitudinalKind())
}

// TestSubtract_RoundTrip: (a + b) − b == a within tolerance, through a
// non-Cartesian representation.
func TestSubtract_RoundTrip(t *testing.T) {
	a := allForms(1, 2, 3)["rhophi_theta"]
	b := allForms(-4, 0.5, 2)["rhophi_theta"]

	sumAz, sumLon, err := spatial.Add(a, b)
	require.NoError(t, err)
	sum := sv{lib: mathlib.Default, az: sumAz, lon: sumLon}

	diffAz, diffLon, err := spatial.Subtract(sum, b)
	require.NoError(t, err)
	diff := sv{lib: mathlib.Default, az: diffAz, lon: diffLon}

	ok, err := spatial.IsClose(diff, a, 1e-9, 1e-12, false)
	require.NoError(t, err)
	assert.True(t, ok, "(a + b) − b must recover a")
}

// TestScale_NegativeFactor checks the θ-flip and η-sign rules.
func TestScale_NegativeFactor(t *testing.T) {
	forms := allForms(1, 2, 3)

	az, lon, err := spatial.Scale(forms["xy_theta"], -2)
	require.NoError(t, err)
	x, _ := az.AzimuthalElements()
	assert.InDelta(t, -2, x, delta)
	theta0 := forms["xy_theta"].lon.LongitudinalElement()
	assert.InDelta(t, math.Pi-theta0, lon.LongitudinalElement(), delta,
		"negative factor flips theta")

	az, lon, err = spatial.Scale(forms["rhophi_eta"], -2)
	require.NoError(t, err)
	rho, phi := az.AzimuthalElements()
	assert.InDelta(t, 2*math.Hypot(1, 2), rho, delta, "rho stays nonnegative")
	assert.InDelta(t, math.Atan2(2, 1)-math.Pi, phi, delta, "phi turns by π")
	eta0 := forms["rhophi_eta"].lon.LongitudinalElement()
	assert.InDelta(t, -eta0, lon.LongitudinalElement(), delta, "eta flips sign")
}

// TestUnit covers magnitude one, representation preservation, and the zero
// vector.
func TestUnit(t *testing.T) {
	for name, v := range allForms(1, 2, 3) {
		az, lon, err := spatial.Unit(v)
		require.NoErrorf(t, err, name)
		assert.Equal(t, v.az.AzimuthalKind(), az.AzimuthalKind())
		assert.Equal(t, v.lon.LongitudinalKind(), lon.LongitudinalKind())

		mag, err := spatial.Mag(sv{lib: mathlib.Default, az: az, lon: lon})
		require.NoError(t, err)
		assert.InDeltaf(t, 1, mag, 1e-9, "%s unit magnitude", name)
	}

	az, lon, err := spatial.Unit(xyz(0, 0, 0))
	require.NoError(t, err)
	x, y := az.AzimuthalElements()
	assert.Zero(t, x)
	assert.Zero(t, y)
	assert.Zero(t, lon.LongitudinalElement())
}

// TestRotations checks axis rotations against known images and mutual
// consistency.
func TestRotations(t *testing.T) {
	v := xyz(0, 0, 1)

	az, lon, err := spatial.RotateX(v, math.Pi/2)
	require.NoError(t, err)
	_, y := az.AzimuthalElements()
	assert.InDelta(t, -1, y, delta, "rotateX moves +z to −y")
	assert.InDelta(t, 0, lon.LongitudinalElement(), delta)

	az, lon, err = spatial.RotateY(v, math.Pi/2)
	require.NoError(t, err)
	x, _ := az.AzimuthalElements()
	assert.InDelta(t, 1, x, delta, "rotateY moves +z to +x")
	assert.InDelta(t, 0, lon.LongitudinalElement(), delta)

	// RotateAxis about z must agree with planar RotateZ semantics.
	axis := xyz(0, 0, 5)
	az, lon, err = spatial.RotateAxis(xyz(1, 0, 7), axis, math.Pi/2)
	require.NoError(t, err)
	x, y = az.AzimuthalElements()
	assert.InDelta(t, 0, x, delta)
	assert.InDelta(t, 1, y, delta)
	assert.InDelta(t, 7, lon.LongitudinalElement(), delta, "axis rotation preserves the axis component")

	// Quaternion for the same rotation: angle π/2 about z.
	half := math.Pi / 4
	q := spatial.Quaternion{U: math.Cos(half), K: math.Sin(half)}
	az, lon, err = spatial.RotateQuaternion(xyz(1, 0, 7), q)
	require.NoError(t, err)
	x, y = az.AzimuthalElements()
	assert.InDelta(t, 0, x, delta)
	assert.InDelta(t, 1, y, delta)
	assert.InDelta(t, 7, lon.LongitudinalElement(), delta)
}

// TestRotateEuler_Inverse checks that reversed angles in the reversed order
// undo a proper Euler rotation, for a converted signature too.
func TestRotateEuler_Inverse(t *testing.T) {
	v := allForms(1, 2, 3)["rhophi_z"]

	az, lon, err := spatial.RotateEuler(v, 0.3, 1.1, -0.4, spatial.OrderZXZ)
	require.NoError(t, err)
	rotated := sv{lib: mathlib.Default, az: az, lon: lon}

	az, lon, err = spatial.RotateEuler(rotated, 0.4, -1.1, -0.3, spatial.OrderZXZ)
	require.NoError(t, err)
	back := sv{lib: mathlib.Default, az: az, lon: lon}

	ok, err := spatial.IsClose(back, xyz(1, 2, 3), 1e-9, 1e-12, false)
	require.NoError(t, err)
	assert.True(t, ok, "inverse euler angles must undo the rotation")
}

// TestTransform3D applies a reflection matrix.
func TestTransform3D(t *testing.T) {
	m := spatial.Matrix3{XX: -1, YY: 1, ZZ: 1}
	az, lon, err := spatial.Transform3D(xyz(1, 2, 3), m)
	require.NoError(t, err)
	x, y := az.AzimuthalElements()
	assert.InDelta(t, -1, x, delta)
	assert.InDelta(t, 2, y, delta)
	assert.InDelta(t, 3, lon.LongitudinalElement(), delta)
}

// TestDeltaObservables checks the η-φ separations.
func TestDeltaObservables(t *testing.T) {
	v1 := xyz(1, 0, 1)
	v2 := xyz(0, 1, 2)

	angle, err := spatial.DeltaAngle(v1, v2)
	require.NoError(t, err)
	want := math.Acos(2 / (math.Sqrt(2) * math.Sqrt(5)))
	assert.InDelta(t, want, angle, delta)

	deta, err := spatial.DeltaEta(v1, v2)
	require.NoError(t, err)
	wantDeta := math.Asinh(1) - math.Asinh(2)
	assert.InDelta(t, wantDeta, deta, delta)

	dr2, err := spatial.DeltaR2(v1, v2)
	require.NoError(t, err)
	wantDR2 := (math.Pi/2)*(math.Pi/2) + wantDeta*wantDeta
	assert.InDelta(t, wantDR2, dr2, delta)

	dr, err := spatial.DeltaR(v1, v2)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(wantDR2), dr, delta)
}

// TestPredicates covers parallel/antiparallel/perpendicular across mixed
// representations.
func TestPredicates(t *testing.T) {
	tol := 1e-5
	forms := allForms(1, 2, 3)

	ok, err := spatial.IsParallel(forms["rhophi_eta"], xyz(2, 4, 6), tol)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = spatial.IsAntiparallel(forms["xy_theta"], xyz(-1, -2, -3), tol)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = spatial.IsPerpendicular(xyz(1, 0, 0), xyz(0, 3, 4), tol)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = spatial.IsParallel(xyz(1, 0, 0), xyz(0, 1, 0), tol)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestEquality covers exact and tolerant comparison across
// representations.
func TestEquality(t *testing.T) {
	forms := allForms(1, 2, 3)

	eq, err := spatial.Equal(forms["xy_z"], forms["xy_z"])
	require.NoError(t, err)
	assert.True(t, eq)

	ok, err := spatial.IsClose(forms["rhophi_theta"], forms["xy_eta"], 1e-9, 1e-12, false)
	require.NoError(t, err)
	assert.True(t, ok, "the same point is close across representations")

	ne, err := spatial.NotEqual(forms["xy_z"], xyz(1, 2, 4))
	require.NoError(t, err)
	assert.True(t, ne)
}

// TestBackendMismatch verifies the sentinel on binary operations.
func TestBackendMismatch(t *testing.T) {
	a := xyz(1, 2, 3)
	b := sv{lib: mathlib.Float32{}, az: coords.XY{X: 1, Y: 2}, lon: coords.Z(3)}

	_, err := spatial.Dot(a, b)
	assert.ErrorIs(t, err, dispatch.ErrBackendMismatch)

	_, _, err = spatial.Cross(a, b)
	assert.ErrorIs(t, err, dispatch.ErrBackendMismatch)
}
