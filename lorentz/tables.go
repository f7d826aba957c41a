// SPDX-License-Identifier: MIT
// Package lorentz: dispatch tables and generation factories. All 12 unary
// and 144 binary combinations are generated; boosts against a velocity
// 3-vector add a 12×6 grid keyed by BoostSig.

package lorentz

import (
	"github.com/katalvlaran/hepvec/coords"
	"github.com/katalvlaran/hepvec/dispatch"
	"github.com/katalvlaran/hepvec/mathlib"
	"github.com/katalvlaran/hepvec/planar"
	"github.com/katalvlaran/hepvec/spatial"
)

var (
	TTable        = dispatch.NewTable[coords.LorentzSig, ScalarKernel, coords.ScalarKind]("lorentz.t")
	T2Table       = dispatch.NewTable[coords.LorentzSig, ScalarKernel, coords.ScalarKind]("lorentz.t2")
	TauTable      = dispatch.NewTable[coords.LorentzSig, ScalarKernel, coords.ScalarKind]("lorentz.tau")
	Tau2Table     = dispatch.NewTable[coords.LorentzSig, ScalarKernel, coords.ScalarKind]("lorentz.tau2")
	BetaTable     = dispatch.NewTable[coords.LorentzSig, ScalarKernel, coords.ScalarKind]("lorentz.beta")
	GammaTable    = dispatch.NewTable[coords.LorentzSig, ScalarKernel, coords.ScalarKind]("lorentz.gamma")
	RapidityTable = dispatch.NewTable[coords.LorentzSig, ScalarKernel, coords.ScalarKind]("lorentz.rapidity")
	EtTable       = dispatch.NewTable[coords.LorentzSig, ScalarKernel, coords.ScalarKind]("lorentz.Et")
	Et2Table      = dispatch.NewTable[coords.LorentzSig, ScalarKernel, coords.ScalarKind]("lorentz.Et2")
	MtTable       = dispatch.NewTable[coords.LorentzSig, ScalarKernel, coords.ScalarKind]("lorentz.Mt")
	Mt2Table      = dispatch.NewTable[coords.LorentzSig, ScalarKernel, coords.ScalarKind]("lorentz.Mt2")

	ScaleTable       = dispatch.NewTable[coords.LorentzSig, ParamVectorKernel, coords.LorentzSig]("lorentz.scale")
	UnitTable        = dispatch.NewTable[coords.LorentzSig, VectorKernel, coords.LorentzSig]("lorentz.unit")
	ToBeta3Table     = dispatch.NewTable[coords.LorentzSig, Beta3Kernel, coords.SpatialSig]("lorentz.toBeta3")
	Transform4DTable = dispatch.NewTable[coords.LorentzSig, TransformKernel, coords.LorentzSig]("lorentz.transform4D")

	BoostXBetaTable  = dispatch.NewTable[coords.LorentzSig, ParamVectorKernel, coords.LorentzSig]("lorentz.boostX(beta)")
	BoostXGammaTable = dispatch.NewTable[coords.LorentzSig, ParamVectorKernel, coords.LorentzSig]("lorentz.boostX(gamma)")
	BoostYBetaTable  = dispatch.NewTable[coords.LorentzSig, ParamVectorKernel, coords.LorentzSig]("lorentz.boostY(beta)")
	BoostYGammaTable = dispatch.NewTable[coords.LorentzSig, ParamVectorKernel, coords.LorentzSig]("lorentz.boostY(gamma)")
	BoostZBetaTable  = dispatch.NewTable[coords.LorentzSig, ParamVectorKernel, coords.LorentzSig]("lorentz.boostZ(beta)")
	BoostZGammaTable = dispatch.NewTable[coords.LorentzSig, ParamVectorKernel, coords.LorentzSig]("lorentz.boostZ(gamma)")

	BoostBeta3Table = dispatch.NewTable[coords.BoostSig, BoostVectorKernel, coords.LorentzSig]("lorentz.boostBeta3")
	BoostP4Table    = dispatch.NewTable[coords.LorentzPair, VectorKernel2, coords.LorentzSig]("lorentz.boostP4")

	DotTable               = dispatch.NewTable[coords.LorentzPair, ScalarKernel2, coords.ScalarKind]("lorentz.dot")
	DeltaRapidityPhiTable  = dispatch.NewTable[coords.LorentzPair, ScalarKernel2, coords.ScalarKind]("lorentz.deltaRapidityPhi")
	DeltaRapidityPhi2Table = dispatch.NewTable[coords.LorentzPair, ScalarKernel2, coords.ScalarKind]("lorentz.deltaRapidityPhi2")

	AddTable      = dispatch.NewTable[coords.LorentzPair, VectorKernel2, coords.LorentzSig]("lorentz.add")
	SubtractTable = dispatch.NewTable[coords.LorentzPair, VectorKernel2, coords.LorentzSig]("lorentz.subtract")

	EqualTable   = dispatch.NewTable[coords.LorentzPair, BoolKernel2, coords.ScalarKind]("lorentz.equal")
	IsCloseTable = dispatch.NewTable[coords.LorentzPair, CloseKernel2, coords.ScalarKind]("lorentz.isclose")

	IsTimelikeTable  = dispatch.NewTable[coords.LorentzSig, TolBoolKernel, coords.ScalarKind]("lorentz.isTimelike")
	IsSpacelikeTable = dispatch.NewTable[coords.LorentzSig, TolBoolKernel, coords.ScalarKind]("lorentz.isSpacelike")
	IsLightlikeTable = dispatch.NewTable[coords.LorentzSig, TolBoolKernel, coords.ScalarKind]("lorentz.isLightlike")
)

// axis selectors for the single-axis boosts.
const (
	axisX = iota
	axisY
	axisZ
)

func init() {
	registerScalars()
	registerUnaryVectors()
	registerBinary()
	registerPredicates()
}

func registerScalars() {
	for _, sig := range coords.LorentzSigs() {
		TTable.Register(sig, TKernel(sig), coords.Float)
		T2Table.Register(sig, T2Kernel(sig), coords.Float)
		TauTable.Register(sig, TauKernel(sig), coords.Float)
		Tau2Table.Register(sig, Tau2Kernel(sig), coords.Float)
		BetaTable.Register(sig, composeBeta(sig), coords.Float)
		GammaTable.Register(sig, composeGamma(sig), coords.Float)
		RapidityTable.Register(sig, composeRapidity(sig), coords.Float)
		Et2Table.Register(sig, composeEt2(sig), coords.Float)
		Mt2Table.Register(sig, composeMt2(sig), coords.Float)
	}
	// Et and Mt compose from the completed squared tables.
	for _, sig := range coords.LorentzSigs() {
		EtTable.Register(sig, composeSqrtOf(Et2Table, sig), coords.Float)
		MtTable.Register(sig, composeSqrtOf(Mt2Table, sig), coords.Float)
	}
}

func registerUnaryVectors() {
	for _, sig := range coords.LorentzSigs() {
		spScale, spSig := spatial.ScaleTable.Kernel(sig.Spatial())
		ScaleTable.Register(sig, composeScale(spScale),
			coords.LorentzSig{Az: spSig.Az, Lon: spSig.Lon, Tem: sig.Tem})

		UnitTable.Register(sig, composeUnit(sig), cartesianWith(sig.Tem))
		ToBeta3Table.Register(sig, composeToBeta3(sig), sig.Spatial())
		Transform4DTable.Register(sig, composeTransform4D(sig), cartesianWith(sig.Tem))

		BoostXBetaTable.Register(sig, composeAxisBoost(sig, axisX, false), cartesianWith(sig.Tem))
		BoostXGammaTable.Register(sig, composeAxisBoost(sig, axisX, true), cartesianWith(sig.Tem))
		BoostYBetaTable.Register(sig, composeAxisBoost(sig, axisY, false), cartesianWith(sig.Tem))
		BoostYGammaTable.Register(sig, composeAxisBoost(sig, axisY, true), cartesianWith(sig.Tem))
		BoostZBetaTable.Register(sig, composeAxisBoost(sig, axisZ, false), cartesianWith(sig.Tem))
		BoostZGammaTable.Register(sig, composeAxisBoost(sig, axisZ, true), cartesianWith(sig.Tem))

		for _, bsig := range coords.SpatialSigs() {
			key := coords.BoostSig{V: sig, B: bsig}
			BoostBeta3Table.Register(key, composeBoostBeta3(sig, bsig), cartesianWith(sig.Tem))
		}
	}
}

func registerBinary() {
	for _, s1 := range coords.LorentzSigs() {
		for _, s2 := range coords.LorentzSigs() {
			key := coords.LorentzPair{V1: s1, V2: s2}

			DotTable.Register(key, composeDot(s1, s2), coords.Float)

			sumFn, sumSig := composeSum(s1, s2, false)
			AddTable.Register(key, sumFn, sumSig)
			diffFn, diffSig := composeSum(s1, s2, true)
			SubtractTable.Register(key, diffFn, diffSig)

			EqualTable.Register(key, composeEqual(s1, s2), coords.Bool)
			IsCloseTable.Register(key, composeIsClose(s1, s2), coords.Bool)

			DeltaRapidityPhi2Table.Register(key, composeDeltaRapidityPhi2(s1, s2), coords.Float)

			BoostP4Table.Register(key, composeBoostP4(s1, s2), cartesianWith(s1.Tem))
		}
	}
	for _, s1 := range coords.LorentzSigs() {
		for _, s2 := range coords.LorentzSigs() {
			key := coords.LorentzPair{V1: s1, V2: s2}
			DeltaRapidityPhiTable.Register(key, composeDeltaRapidityPhi(key), coords.Float)
		}
	}
}

func registerPredicates() {
	for _, sig := range coords.LorentzSigs() {
		selfDot, _ := DotTable.Kernel(coords.LorentzPair{V1: sig, V2: sig})
		IsTimelikeTable.Register(sig, composeIsTimelike(selfDot), coords.Bool)
		IsSpacelikeTable.Register(sig, composeIsSpacelike(selfDot), coords.Bool)
		IsLightlikeTable.Register(sig, composeIsLightlike(selfDot), coords.Bool)
	}
}

// cartesianWith is the declared result signature of operations that always
// come back in xy_z spatial components with the operand's temporal kind.
func cartesianWith(tem coords.TemporalKind) coords.LorentzSig {
	return coords.LorentzSig{Az: coords.KindXY, Lon: coords.KindZ, Tem: tem}
}

// Scalar factories.

// composeBeta: |v| / t, with the zero vector mapping to beta = 0.
func composeBeta(sig coords.LorentzSig) ScalarKernel {
	mag := spatial.MagKernel(sig.Spatial())
	toT := TKernel(sig)

	return func(lib mathlib.Lib, a, b, c, d float64) float64 {
		inf := lib.Inf()

		return lib.NaNToNum(mag(lib, a, b, c)/toT(lib, a, b, c, d), 0, inf, -inf)
	}
}

// composeGamma: t / tau, with a lightlike vector mapping to +Inf.
func composeGamma(sig coords.LorentzSig) ScalarKernel {
	toT := TKernel(sig)
	toTau := TauKernel(sig)

	return func(lib mathlib.Lib, a, b, c, d float64) float64 {
		inf := lib.Inf()

		return lib.NaNToNum(toT(lib, a, b, c, d)/toTau(lib, a, b, c, d), inf, inf, -inf)
	}
}

// composeRapidity: 0.5 ln((t+z)/(t−z)).
func composeRapidity(sig coords.LorentzSig) ScalarKernel {
	toZ := spatial.ZKernel(sig.Spatial())
	toT := TKernel(sig)

	return func(lib mathlib.Lib, a, b, c, d float64) float64 {
		z := toZ(lib, a, b, c)
		t := toT(lib, a, b, c, d)

		return 0.5 * lib.Log((t+z)/(t-z))
	}
}

// composeEt2: transverse energy squared, t²·ρ²/(ρ²+z²).
func composeEt2(sig coords.LorentzSig) ScalarKernel {
	rho2, _ := planar.Rho2Table.Kernel(sig.Az)
	toZ := spatial.ZKernel(sig.Spatial())
	t2 := T2Kernel(sig)

	return func(lib mathlib.Lib, a, b, c, d float64) float64 {
		pt2 := rho2(lib, a, b)
		z := toZ(lib, a, b, c)

		return t2(lib, a, b, c, d) * pt2 / (pt2 + z*z)
	}
}

// composeMt2: transverse mass squared. The t branch is t² − z²; the tau
// branch is clamped at zero so a spacelike tau cannot produce a negative
// transverse mass.
func composeMt2(sig coords.LorentzSig) ScalarKernel {
	if sig.Tem == coords.KindT {
		toZ := spatial.ZKernel(sig.Spatial())

		return func(lib mathlib.Lib, a, b, c, d float64) float64 {
			z := toZ(lib, a, b, c)

			return d*d - z*z
		}
	}
	rho2, _ := planar.Rho2Table.Kernel(sig.Az)
	tau2 := Tau2Kernel(sig)

	return func(lib mathlib.Lib, a, b, c, d float64) float64 {
		return lib.Maximum(tau2(lib, a, b, c, d)+rho2(lib, a, b), 0)
	}
}

func composeSqrtOf(
	tbl *dispatch.Table[coords.LorentzSig, ScalarKernel, coords.ScalarKind],
	sig coords.LorentzSig,
) ScalarKernel {
	squared, _ := tbl.Kernel(sig)

	return func(lib mathlib.Lib, a, b, c, d float64) float64 {
		return lib.Sqrt(squared(lib, a, b, c, d))
	}
}

// Unary vector factories.

func composeScale(spScale spatial.ParamVectorKernel) ParamVectorKernel {
	return func(lib mathlib.Lib, factor, a, b, c, d float64) (float64, float64, float64, float64) {
		ra, rb, rc := spScale(lib, factor, a, b, c)

		return ra, rb, rc, d * factor
	}
}

// composeUnit normalizes to |tau| = 1. The t branch divides all four
// Cartesian components by sqrt(|tau²|); the tau branch keeps the sign of
// tau as the new temporal component.
func composeUnit(sig coords.LorentzSig) VectorKernel {
	toX, toY, toZ, _ := XYZTConverters(sig)
	if sig.Tem == coords.KindTau {
		return func(lib mathlib.Lib, a, b, c, d float64) (float64, float64, float64, float64) {
			norm := lib.Absolute(d)
			inf := lib.Inf()

			return lib.NaNToNum(toX(lib, a, b, c, d)/norm, 0, inf, -inf),
				lib.NaNToNum(toY(lib, a, b, c, d)/norm, 0, inf, -inf),
				lib.NaNToNum(toZ(lib, a, b, c, d)/norm, 0, inf, -inf),
				lib.CopySign(1, d)
		}
	}
	tau2 := Tau2Kernel(sig)
	toT := TKernel(sig)

	return func(lib mathlib.Lib, a, b, c, d float64) (float64, float64, float64, float64) {
		norm := lib.Sqrt(lib.Absolute(tau2(lib, a, b, c, d)))
		inf := lib.Inf()

		return lib.NaNToNum(toX(lib, a, b, c, d)/norm, 0, inf, -inf),
			lib.NaNToNum(toY(lib, a, b, c, d)/norm, 0, inf, -inf),
			lib.NaNToNum(toZ(lib, a, b, c, d)/norm, 0, inf, -inf),
			lib.NaNToNum(toT(lib, a, b, c, d)/norm, 0, inf, -inf)
	}
}

// composeToBeta3 divides the length-like components by t and keeps the
// angular ones, so the velocity stays in the operand's spatial
// representation.
func composeToBeta3(sig coords.LorentzSig) Beta3Kernel {
	toT := TKernel(sig)
	divB := sig.Az == coords.KindXY // y scales; phi does not
	divC := sig.Lon == coords.KindZ // z scales; theta and eta do not

	return func(lib mathlib.Lib, a, b, c, d float64) (float64, float64, float64) {
		t := toT(lib, a, b, c, d)
		ra := a / t // x or rho, both length-like
		rb := b
		if divB {
			rb = b / t
		}
		rc := c
		if divC {
			rc = c / t
		}

		return ra, rb, rc
	}
}

func composeTransform4D(sig coords.LorentzSig) TransformKernel {
	toX, toY, toZ, toT := XYZTConverters(sig)
	if sig.Tem == coords.KindTau {
		return func(lib mathlib.Lib, m Matrix4, a, b, c, d float64) (float64, float64, float64, float64) {
			x := toX(lib, a, b, c, d)
			y := toY(lib, a, b, c, d)
			z := toZ(lib, a, b, c, d)
			tee := toT(lib, a, b, c, d)

			return m.XX*x + m.XY*y + m.XZ*z + m.XT*tee,
				m.YX*x + m.YY*y + m.YZ*z + m.YT*tee,
				m.ZX*x + m.ZY*y + m.ZZ*z + m.ZT*tee,
				d
		}
	}

	return func(lib mathlib.Lib, m Matrix4, a, b, c, d float64) (float64, float64, float64, float64) {
		x := toX(lib, a, b, c, d)
		y := toY(lib, a, b, c, d)
		z := toZ(lib, a, b, c, d)
		tee := toT(lib, a, b, c, d)

		return m.XX*x + m.XY*y + m.XZ*z + m.XT*tee,
			m.YX*x + m.YY*y + m.YZ*z + m.YT*tee,
			m.ZX*x + m.ZY*y + m.ZZ*z + m.ZT*tee,
			m.TX*x + m.TY*y + m.TZ*z + m.TT*tee
	}
}

// composeAxisBoost builds the single-axis boosts. The beta form takes the
// velocity, the gamma form takes a signed time-dilation factor whose sign
// picks the direction. Tau operands keep their tau unchanged: proper time
// is invariant under a boost.
func composeAxisBoost(sig coords.LorentzSig, axis int, gammaParam bool) ParamVectorKernel {
	toX, toY, toZ, toT := XYZTConverters(sig)
	keepTau := sig.Tem == coords.KindTau

	return func(lib mathlib.Lib, p, a, b, c, d float64) (float64, float64, float64, float64) {
		var gam, bgam float64
		if gammaParam {
			gam = lib.Absolute(p)
			bgam = lib.CopySign(lib.Sqrt(gam*gam-1), p)
		} else {
			gam = 1 / lib.Sqrt(1-p*p)
			bgam = p * gam
		}
		x := toX(lib, a, b, c, d)
		y := toY(lib, a, b, c, d)
		z := toZ(lib, a, b, c, d)
		tee := toT(lib, a, b, c, d)

		var tp float64
		switch axis {
		case axisX:
			x, tp = gam*x+bgam*tee, bgam*x+gam*tee
		case axisY:
			y, tp = gam*y+bgam*tee, bgam*y+gam*tee
		default:
			z, tp = gam*z+bgam*tee, bgam*z+gam*tee
		}
		if keepTau {
			return x, y, z, d
		}

		return x, y, z, tp
	}
}

// composeBoostBeta3 builds the general velocity boost: a symmetric 4×4
// matrix from the velocity components, applied Cartesian.
func composeBoostBeta3(sig coords.LorentzSig, bsig coords.SpatialSig) BoostVectorKernel {
	toX, toY, toZ, toT := XYZTConverters(sig)
	bX, bY, bZ := spatial.XYZConverters(bsig)
	keepTau := sig.Tem == coords.KindTau

	return func(lib mathlib.Lib, a1, b1, c1, d1, a2, b2, c2 float64) (float64, float64, float64, float64) {
		betax := bX(lib, a2, b2, c2)
		betay := bY(lib, a2, b2, c2)
		betaz := bZ(lib, a2, b2, c2)
		bp2 := betax*betax + betay*betay + betaz*betaz
		gamma := 1 / lib.Sqrt(1-bp2)
		bgam := gamma * gamma / (1 + gamma)

		x := toX(lib, a1, b1, c1, d1)
		y := toY(lib, a1, b1, c1, d1)
		z := toZ(lib, a1, b1, c1, d1)
		tee := toT(lib, a1, b1, c1, d1)

		xp := (1+bgam*betax*betax)*x + bgam*betax*betay*y + bgam*betax*betaz*z + gamma*betax*tee
		yp := bgam*betay*betax*x + (1+bgam*betay*betay)*y + bgam*betay*betaz*z + gamma*betay*tee
		zp := bgam*betaz*betax*x + bgam*betaz*betay*y + (1+bgam*betaz*betaz)*z + gamma*betaz*tee
		if keepTau {
			return xp, yp, zp, d1
		}
		tp := gamma*betax*x + gamma*betay*y + gamma*betaz*z + gamma*tee

		return xp, yp, zp, tp
	}
}

// composeBoostP4 boosts operand 1 into the rest frame direction of the
// four-momentum operand 2: gamma = E/m, velocity = p/m.
func composeBoostP4(s1, s2 coords.LorentzSig) VectorKernel2 {
	toX1, toY1, toZ1, toT1 := XYZTConverters(s1)
	toX2, toY2, toZ2, _ := XYZTConverters(s2)
	toE := TKernel(s2)
	toM := TauKernel(s2)
	toM2 := Tau2Kernel(s2)
	keepTau := s1.Tem == coords.KindTau

	return func(lib mathlib.Lib, a1, b1, c1, d1, a2, b2, c2, d2 float64) (float64, float64, float64, float64) {
		energy := toE(lib, a2, b2, c2, d2)
		mass := toM(lib, a2, b2, c2, d2)
		mass2 := toM2(lib, a2, b2, c2, d2)
		gamma := energy / mass
		mass2Gamma1 := mass2 * (gamma + 1)
		px := toX2(lib, a2, b2, c2, d2)
		py := toY2(lib, a2, b2, c2, d2)
		pz := toZ2(lib, a2, b2, c2, d2)

		x := toX1(lib, a1, b1, c1, d1)
		y := toY1(lib, a1, b1, c1, d1)
		z := toZ1(lib, a1, b1, c1, d1)
		tee := toT1(lib, a1, b1, c1, d1)

		xp := (1+px*px/mass2Gamma1)*x + px*py/mass2Gamma1*y + px*pz/mass2Gamma1*z + px/mass*tee
		yp := py*px/mass2Gamma1*x + (1+py*py/mass2Gamma1)*y + py*pz/mass2Gamma1*z + py/mass*tee
		zp := pz*px/mass2Gamma1*x + pz*py/mass2Gamma1*y + (1+pz*pz/mass2Gamma1)*z + pz/mass*tee
		if keepTau {
			return xp, yp, zp, d1
		}
		tp := px/mass*x + py/mass*y + pz/mass*z + gamma*tee

		return xp, yp, zp, tp
	}
}

// Binary factories.

// composeDot: t1·t2 − spatial dot, the (+,−,−,−) metric.
func composeDot(s1, s2 coords.LorentzSig) ScalarKernel2 {
	spDot, _ := spatial.DotTable.Kernel(coords.SpatialPair{V1: s1.Spatial(), V2: s2.Spatial()})
	toT1 := TKernel(s1)
	toT2 := TKernel(s2)

	return func(lib mathlib.Lib, a1, b1, c1, d1, a2, b2, c2, d2 float64) float64 {
		return toT1(lib, a1, b1, c1, d1)*toT2(lib, a2, b2, c2, d2) -
			spDot(lib, a1, b1, c1, a2, b2, c2)
	}
}

// composeSum builds Add (negate false) and Subtract (negate true). The
// spatial part follows the spatial tables' result rule; the temporal part
// is t1±t2 whenever either operand is t-kind, and a recovered signed tau
// when both are tau-kind.
func composeSum(s1, s2 coords.LorentzSig, negate bool) (VectorKernel2, coords.LorentzSig) {
	pair := coords.SpatialPair{V1: s1.Spatial(), V2: s2.Spatial()}
	spFn, spSig := spatial.AddTable.Kernel(pair)
	if negate {
		spFn, spSig = spatial.SubtractTable.Kernel(pair)
	}
	toT1 := TKernel(s1)
	toT2 := TKernel(s2)
	tSign := 1.0
	if negate {
		tSign = -1.0
	}

	if s1.Tem == coords.KindT || s2.Tem == coords.KindT {
		kernel := func(lib mathlib.Lib, a1, b1, c1, d1, a2, b2, c2, d2 float64) (float64, float64, float64, float64) {
			ra, rb, rc := spFn(lib, a1, b1, c1, a2, b2, c2)

			return ra, rb, rc, toT1(lib, a1, b1, c1, d1) + tSign*toT2(lib, a2, b2, c2, d2)
		}

		return kernel, coords.LorentzSig{Az: spSig.Az, Lon: spSig.Lon, Tem: coords.KindT}
	}

	backToTau := tauFromT(spSig)
	kernel := func(lib mathlib.Lib, a1, b1, c1, d1, a2, b2, c2, d2 float64) (float64, float64, float64, float64) {
		ra, rb, rc := spFn(lib, a1, b1, c1, a2, b2, c2)
		tsum := toT1(lib, a1, b1, c1, d1) + tSign*toT2(lib, a2, b2, c2, d2)

		return ra, rb, rc, backToTau(lib, ra, rb, rc, tsum)
	}

	return kernel, coords.LorentzSig{Az: spSig.Az, Lon: spSig.Lon, Tem: coords.KindTau}
}

// composeEqual: spatial equality plus temporal equality, comparing raw
// temporal components when the kinds match and coordinate times otherwise.
func composeEqual(s1, s2 coords.LorentzSig) BoolKernel2 {
	spEq, _ := spatial.EqualTable.Kernel(coords.SpatialPair{V1: s1.Spatial(), V2: s2.Spatial()})
	if s1.Tem == s2.Tem {
		return func(lib mathlib.Lib, a1, b1, c1, d1, a2, b2, c2, d2 float64) bool {
			return d1 == d2 && spEq(lib, a1, b1, c1, a2, b2, c2)
		}
	}
	toT1 := TKernel(s1)
	toT2 := TKernel(s2)

	return func(lib mathlib.Lib, a1, b1, c1, d1, a2, b2, c2, d2 float64) bool {
		return toT1(lib, a1, b1, c1, d1) == toT2(lib, a2, b2, c2, d2) &&
			spEq(lib, a1, b1, c1, a2, b2, c2)
	}
}

func composeIsClose(s1, s2 coords.LorentzSig) CloseKernel2 {
	spClose, _ := spatial.IsCloseTable.Kernel(coords.SpatialPair{V1: s1.Spatial(), V2: s2.Spatial()})
	if s1.Tem == s2.Tem {
		return func(lib mathlib.Lib, rtol, atol float64, equalNaN bool, a1, b1, c1, d1, a2, b2, c2, d2 float64) bool {
			return lib.IsClose(d1, d2, rtol, atol, equalNaN) &&
				spClose(lib, rtol, atol, equalNaN, a1, b1, c1, a2, b2, c2)
		}
	}
	toT1 := TKernel(s1)
	toT2 := TKernel(s2)

	return func(lib mathlib.Lib, rtol, atol float64, equalNaN bool, a1, b1, c1, d1, a2, b2, c2, d2 float64) bool {
		return lib.IsClose(toT1(lib, a1, b1, c1, d1), toT2(lib, a2, b2, c2, d2), rtol, atol, equalNaN) &&
			spClose(lib, rtol, atol, equalNaN, a1, b1, c1, a2, b2, c2)
	}
}

func composeDeltaRapidityPhi2(s1, s2 coords.LorentzSig) ScalarKernel2 {
	rap1, _ := RapidityTable.Kernel(s1)
	rap2, _ := RapidityTable.Kernel(s2)
	phi1 := planar.PhiKernel(s1.Az)
	phi2 := planar.PhiKernel(s2.Az)

	return func(lib mathlib.Lib, a1, b1, c1, d1, a2, b2, c2, d2 float64) float64 {
		drap := rap1(lib, a1, b1, c1, d1) - rap2(lib, a2, b2, c2, d2)
		dphi := rectify(lib, phi1(lib, a1, b1)-phi2(lib, a2, b2))

		return drap*drap + dphi*dphi
	}
}

func composeDeltaRapidityPhi(key coords.LorentzPair) ScalarKernel2 {
	squared, _ := DeltaRapidityPhi2Table.Kernel(key)

	return func(lib mathlib.Lib, a1, b1, c1, d1, a2, b2, c2, d2 float64) float64 {
		return lib.Sqrt(squared(lib, a1, b1, c1, d1, a2, b2, c2, d2))
	}
}

// Causal-classification factories. All three compare the vector's Minkowski
// norm against the tolerance.

func composeIsTimelike(selfDot ScalarKernel2) TolBoolKernel {
	return func(lib mathlib.Lib, tol, a, b, c, d float64) bool {
		return selfDot(lib, a, b, c, d, a, b, c, d) > lib.Absolute(tol)
	}
}

func composeIsSpacelike(selfDot ScalarKernel2) TolBoolKernel {
	return func(lib mathlib.Lib, tol, a, b, c, d float64) bool {
		return selfDot(lib, a, b, c, d, a, b, c, d) < -lib.Absolute(tol)
	}
}

func composeIsLightlike(selfDot ScalarKernel2) TolBoolKernel {
	return func(lib mathlib.Lib, tol, a, b, c, d float64) bool {
		return lib.Absolute(selfDot(lib, a, b, c, d, a, b, c, d)) < lib.Absolute(tol)
	}
}
