package vec_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hepvec/coords"
	"github.com/katalvlaran/hepvec/mathlib"
	"github.com/katalvlaran/hepvec/planar"
	"github.com/katalvlaran/hepvec/spatial"
	"github.com/katalvlaran/hepvec/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

// TestVector2 covers construction, observables, arithmetic and the
// representation rules at the object layer.
func TestVector2(t *testing.T) {
	v := vec.XY(3, 4)
	assert.InDelta(t, 5, v.Rho(), delta)
	assert.InDelta(t, math.Atan2(4, 3), v.Phi(), delta)

	p := vec.RhoPhi(5, math.Atan2(4, 3))
	assert.InDelta(t, 3, p.X(), delta)
	assert.InDelta(t, 4, p.Y(), delta)
	assert.True(t, v.IsClose(p), "same point across representations")

	sum := p.Add(vec.RhoPhi(1, 0.5))
	assert.Equal(t, coords.KindRhoPhi, sum.Azimuthal().AzimuthalKind(),
		"same-kind addition keeps the polar representation")

	mixed := p.Add(vec.XY(1, 1))
	assert.Equal(t, coords.KindXY, mixed.Azimuthal().AzimuthalKind(),
		"mixed addition comes back Cartesian")

	rotated := v.RotateZ(math.Pi / 2)
	assert.InDelta(t, -4, rotated.X(), delta)
	assert.InDelta(t, 3, rotated.Y(), delta)

	assert.InDelta(t, 25, v.Dot(vec.XY(3, 4)), delta)
	assert.True(t, v.IsParallel(vec.XY(6, 8)))
	assert.True(t, v.IsPerpendicular(vec.XY(-4, 3)))
	assert.InDelta(t, 1, v.Unit().Rho(), delta)
}

// TestVector3 covers the spatial surface and the embedded planar
// operations.
func TestVector3(t *testing.T) {
	v := vec.XYZ(3, 4, 10)
	assert.InDelta(t, 10, v.Z(), delta)
	assert.InDelta(t, math.Sqrt(125), v.Mag(), delta)
	assert.InDelta(t, math.Asinh(2), v.Eta(), delta)
	assert.InDelta(t, 5, v.Rho(), delta, "planar observable on a 3D vector")

	collider := vec.RhoPhiEta(5, math.Atan2(4, 3), math.Asinh(2))
	assert.True(t, v.IsClose(collider))

	cross := vec.XYZ(1, 0, 0).Cross(vec.XYZ(0, 1, 0))
	assert.InDelta(t, 1, cross.Z(), delta)

	// RotateZ on a 3D vector leaves the longitudinal component alone.
	rotated := collider.RotateZ(0.7)
	assert.Equal(t, coords.KindEta, rotated.Longitudinal().LongitudinalKind())
	assert.InDelta(t, collider.Eta(), rotated.Eta(), delta)
	assert.InDelta(t, collider.Phi()+0.7, rotated.Phi(), delta)

	back := v.RotateEuler(0.3, 1.1, -0.4, spatial.OrderZXZ).
		RotateEuler(0.4, -1.1, -0.3, spatial.OrderZXZ)
	assert.True(t, back.IsClose(v), "inverse euler angles undo the rotation")
}

// TestVector4 covers the kinematic surface and the momentum synonyms.
func TestVector4(t *testing.T) {
	p := vec.XYZT(3, 4, 10, 20)
	assert.InDelta(t, 20, p.Energy(), delta)
	assert.InDelta(t, math.Sqrt(275), p.Mass(), delta)
	assert.InDelta(t, 5, p.Pt(), delta)
	assert.InDelta(t, math.Sqrt(125)/20, p.Beta(), delta)
	assert.InDelta(t, 20/math.Sqrt(275), p.Gamma(), delta)
	assert.InDelta(t, 0.5*math.Log(30.0/10), p.Rapidity(), delta)

	m := vec.PtEtaPhiM(5, math.Asinh(2), math.Atan2(4, 3), math.Sqrt(275))
	assert.True(t, p.IsClose(m), "Cartesian and collider forms agree")

	assert.True(t, p.IsTimelike())
	assert.True(t, vec.XYZT(3, 4, 0, 5).IsLightlike())
	assert.True(t, vec.XYZT(3, 4, 0, 4).IsSpacelike())

	// Boost round trip.
	boosted := p.BoostZ(0.6)
	assert.True(t, boosted.BoostZ(-0.6).IsClose(p), "opposite boosts cancel")
	assert.InDelta(t, p.Mass(), boosted.Mass(), 1e-8, "mass is boost invariant")

	// Boosting the rest vector of p by p recovers p.
	rest := vec.XYZT(0, 0, 0, p.Mass())
	assert.True(t, rest.BoostP4(p).IsClose(p))

	// BoostCM brings p to rest.
	atRest := p.BoostCM(p)
	assert.InDelta(t, 0, atRest.Mag(), 1e-8)
	assert.InDelta(t, p.Mass(), atRest.Energy(), 1e-8)
}

// TestTo checks the round-trip property of coordinate conversion.
func TestTo(t *testing.T) {
	p := vec.XYZT(3, 4, 10, 20)

	for _, az := range coords.AzimuthalKinds() {
		for _, lon := range coords.LongitudinalKinds() {
			for _, tem := range coords.TemporalKinds() {
				conv := p.To(az, lon, tem)
				assert.Equal(t, az, conv.Azimuthal().AzimuthalKind())
				assert.Equal(t, lon, conv.Longitudinal().LongitudinalKind())
				assert.Equal(t, tem, conv.Temporal().TemporalKind())

				back := conv.To(coords.KindXY, coords.KindZ, coords.KindT)
				assert.Truef(t, back.IsClose(p, 1e-9, 1e-12),
					"round trip through %s_%s_%s", az, lon, tem)
			}
		}
	}

	v2 := vec.XY(3, 4).To(coords.KindRhoPhi)
	assert.InDelta(t, 5, v2.Rho(), delta)
	v3 := vec.XYZ(3, 4, 10).To(coords.KindRhoPhi, coords.KindTheta)
	assert.InDelta(t, math.Atan2(5, 10), v3.Longitudinal().LongitudinalElement(), delta)
}

// TestAddTemporalKinds pins the object-layer temporal result rule.
func TestAddTemporalKinds(t *testing.T) {
	a := vec.XYZT(1, 2, 3, 10)
	b := vec.XYZTau(4, 0.5, 2, math.Sqrt(25-20.25))

	sum := a.Add(b)
	assert.Equal(t, coords.KindT, sum.Temporal().TemporalKind(),
		"any t operand makes the sum t-kind")

	aTau := a.To(coords.KindXY, coords.KindZ, coords.KindTau)
	sumTau := aTau.Add(b)
	assert.Equal(t, coords.KindTau, sumTau.Temporal().TemporalKind(),
		"two tau operands keep tau")
	assert.True(t, sum.IsClose(sumTau, 1e-9, 1e-12))
}

// TestWithLib checks backend selection and the mismatch panic.
func TestWithLib(t *testing.T) {
	f32 := vec.XY(3, 4, vec.WithLib(mathlib.Float32{}))
	assert.Equal(t, mathlib.Float32{}, f32.Lib())
	assert.InDelta(t, float64(float32(5)), f32.Rho(), 1e-6)

	assert.Panics(t, func() {
		vec.XY(1, 2).Dot(f32)
	}, "mixing backends panics at the object layer")
}

// TestDefaultTolerances: the documented defaults drive the predicate
// methods.
func TestDefaultTolerances(t *testing.T) {
	v := vec.XY(1, 0)
	nearly := vec.XY(1, 5e-6)

	assert.True(t, v.IsParallel(nearly))
	assert.False(t, v.IsParallel(nearly, 1e-12), "per-call override tightens the cut")

	assert.True(t, v.IsClose(vec.XY(1, 1e-9)))
	assert.False(t, v.IsClose(vec.XY(1, 1e-9), 1e-12, 1e-12))
}

// TestTransformMatrices exercises the matrix entry points end to end.
func TestTransformMatrices(t *testing.T) {
	v2 := vec.XY(1, 2).Transform2D(planar.Matrix2{XX: 0, XY: -1, YX: 1, YY: 0})
	assert.InDelta(t, -2, v2.X(), delta)
	assert.InDelta(t, 1, v2.Y(), delta)

	v3 := vec.XYZ(1, 2, 3).Transform3D(spatial.Matrix3{XX: -1, YY: 1, ZZ: 1})
	assert.InDelta(t, -1, v3.X(), delta)

	require.InDelta(t, 1, vec.XYZ(1, 2, 3).Unit().Mag(), delta)
}
