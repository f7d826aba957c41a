// SPDX-License-Identifier: MIT
// Package spatial: dispatch tables. Registration order matters only within
// this file: coordinate tables first, because the binary generation passes
// compose from them.

package spatial

import (
	"github.com/katalvlaran/hepvec/coords"
	"github.com/katalvlaran/hepvec/dispatch"
	"github.com/katalvlaran/hepvec/mathlib"
	"github.com/katalvlaran/hepvec/planar"
)

// EulerSig keys RotateEuler dispatch: the operand signature plus the axis
// order.
type EulerSig struct {
	Sig   coords.SpatialSig
	Order EulerOrder
}

func (s EulerSig) String() string {
	return s.Sig.String() + " " + string(s.Order)
}

var (
	ZTable        = dispatch.NewTable[coords.SpatialSig, ScalarKernel, coords.ScalarKind]("spatial.z")
	ThetaTable    = dispatch.NewTable[coords.SpatialSig, ScalarKernel, coords.ScalarKind]("spatial.theta")
	EtaTable      = dispatch.NewTable[coords.SpatialSig, ScalarKernel, coords.ScalarKind]("spatial.eta")
	CosThetaTable = dispatch.NewTable[coords.SpatialSig, ScalarKernel, coords.ScalarKind]("spatial.costheta")
	CotThetaTable = dispatch.NewTable[coords.SpatialSig, ScalarKernel, coords.ScalarKind]("spatial.cottheta")
	MagTable      = dispatch.NewTable[coords.SpatialSig, ScalarKernel, coords.ScalarKind]("spatial.mag")
	Mag2Table     = dispatch.NewTable[coords.SpatialSig, ScalarKernel, coords.ScalarKind]("spatial.mag2")

	ScaleTable            = dispatch.NewTable[coords.SpatialSig, ParamVectorKernel, coords.SpatialSig]("spatial.scale")
	UnitTable             = dispatch.NewTable[coords.SpatialSig, VectorKernel, coords.SpatialSig]("spatial.unit")
	RotateXTable          = dispatch.NewTable[coords.SpatialSig, ParamVectorKernel, coords.SpatialSig]("spatial.rotateX")
	RotateYTable          = dispatch.NewTable[coords.SpatialSig, ParamVectorKernel, coords.SpatialSig]("spatial.rotateY")
	RotateEulerTable      = dispatch.NewTable[EulerSig, EulerKernel, coords.SpatialSig]("spatial.rotateEuler")
	RotateQuaternionTable = dispatch.NewTable[coords.SpatialSig, QuaternionKernel, coords.SpatialSig]("spatial.rotateQuaternion")
	Transform3DTable      = dispatch.NewTable[coords.SpatialSig, TransformKernel, coords.SpatialSig]("spatial.transform3D")

	DotTable        = dispatch.NewTable[coords.SpatialPair, ScalarKernel2, coords.ScalarKind]("spatial.dot")
	DeltaAngleTable = dispatch.NewTable[coords.SpatialPair, ScalarKernel2, coords.ScalarKind]("spatial.deltaangle")
	DeltaEtaTable   = dispatch.NewTable[coords.SpatialPair, ScalarKernel2, coords.ScalarKind]("spatial.deltaeta")
	DeltaRTable     = dispatch.NewTable[coords.SpatialPair, ScalarKernel2, coords.ScalarKind]("spatial.deltaR")
	DeltaR2Table    = dispatch.NewTable[coords.SpatialPair, ScalarKernel2, coords.ScalarKind]("spatial.deltaR2")

	AddTable      = dispatch.NewTable[coords.SpatialPair, VectorKernel2, coords.SpatialSig]("spatial.add")
	SubtractTable = dispatch.NewTable[coords.SpatialPair, VectorKernel2, coords.SpatialSig]("spatial.subtract")
	CrossTable    = dispatch.NewTable[coords.SpatialPair, VectorKernel2, coords.SpatialSig]("spatial.cross")

	RotateAxisTable = dispatch.NewTable[coords.SpatialPair, AxisVectorKernel2, coords.SpatialSig]("spatial.rotateAxis")

	EqualTable   = dispatch.NewTable[coords.SpatialPair, BoolKernel2, coords.ScalarKind]("spatial.equal")
	IsCloseTable = dispatch.NewTable[coords.SpatialPair, CloseKernel2, coords.ScalarKind]("spatial.isclose")

	IsParallelTable      = dispatch.NewTable[coords.SpatialPair, TolBoolKernel2, coords.ScalarKind]("spatial.isParallel")
	IsAntiparallelTable  = dispatch.NewTable[coords.SpatialPair, TolBoolKernel2, coords.ScalarKind]("spatial.isAntiparallel")
	IsPerpendicularTable = dispatch.NewTable[coords.SpatialPair, TolBoolKernel2, coords.ScalarKind]("spatial.isPerpendicular")
)

// xyzSig is the canonical Cartesian signature every conversion targets.
var xyzSig = coords.SpatialSig{Az: coords.KindXY, Lon: coords.KindZ}

func init() {
	registerCoordinates()
	registerUnary()
	registerBinary()
	registerPredicates()
}

func registerCoordinates() {
	for _, sig := range coords.SpatialSigs() {
		ZTable.Register(sig, ZKernel(sig), coords.Float)
		ThetaTable.Register(sig, ThetaKernel(sig), coords.Float)
		EtaTable.Register(sig, EtaKernel(sig), coords.Float)
		MagTable.Register(sig, MagKernel(sig), coords.Float)
		Mag2Table.Register(sig, Mag2Kernel(sig), coords.Float)
	}

	xyZ := xyzSig
	xyTheta := coords.SpatialSig{Az: coords.KindXY, Lon: coords.KindTheta}
	xyEta := coords.SpatialSig{Az: coords.KindXY, Lon: coords.KindEta}
	rpZ := coords.SpatialSig{Az: coords.KindRhoPhi, Lon: coords.KindZ}
	rpTheta := coords.SpatialSig{Az: coords.KindRhoPhi, Lon: coords.KindTheta}
	rpEta := coords.SpatialSig{Az: coords.KindRhoPhi, Lon: coords.KindEta}

	CosThetaTable.Register(xyZ, cosThetaXYZ, coords.Float)
	CosThetaTable.Register(xyTheta, cosThetaXYTheta, coords.Float)
	CosThetaTable.Register(xyEta, cosThetaXYEta, coords.Float)
	CosThetaTable.Register(rpZ, cosThetaRhoPhiZ, coords.Float)
	CosThetaTable.Register(rpTheta, cosThetaRhoPhiTheta, coords.Float)
	CosThetaTable.Register(rpEta, cosThetaRhoPhiEta, coords.Float)

	CotThetaTable.Register(xyZ, cotThetaXYZ, coords.Float)
	CotThetaTable.Register(xyTheta, cotThetaXYTheta, coords.Float)
	CotThetaTable.Register(xyEta, cotThetaXYEta, coords.Float)
	CotThetaTable.Register(rpZ, cotThetaRhoPhiZ, coords.Float)
	CotThetaTable.Register(rpTheta, cotThetaRhoPhiTheta, coords.Float)
	CotThetaTable.Register(rpEta, cotThetaRhoPhiEta, coords.Float)
}

func registerUnary() {
	xyTheta := coords.SpatialSig{Az: coords.KindXY, Lon: coords.KindTheta}
	xyEta := coords.SpatialSig{Az: coords.KindXY, Lon: coords.KindEta}
	rpZ := coords.SpatialSig{Az: coords.KindRhoPhi, Lon: coords.KindZ}
	rpTheta := coords.SpatialSig{Az: coords.KindRhoPhi, Lon: coords.KindTheta}
	rpEta := coords.SpatialSig{Az: coords.KindRhoPhi, Lon: coords.KindEta}

	// Scale and Unit keep the operand's representation, all six natives.
	ScaleTable.Register(xyzSig, scaleXYZ, xyzSig)
	ScaleTable.Register(xyTheta, scaleXYTheta, xyTheta)
	ScaleTable.Register(xyEta, scaleXYEta, xyEta)
	ScaleTable.Register(rpZ, scaleRhoPhiZ, rpZ)
	ScaleTable.Register(rpTheta, scaleRhoPhiTheta, rpTheta)
	ScaleTable.Register(rpEta, scaleRhoPhiEta, rpEta)

	UnitTable.Register(xyzSig, unitXYZ, xyzSig)
	UnitTable.Register(xyTheta, unitXYTheta, xyTheta)
	UnitTable.Register(xyEta, unitXYEta, xyEta)
	UnitTable.Register(rpZ, unitRhoPhiZ, rpZ)
	UnitTable.Register(rpTheta, unitRhoPhiTheta, rpTheta)
	UnitTable.Register(rpEta, unitRhoPhiEta, rpEta)

	// Rotations and transforms are native in xy_z only; converted operands
	// come back Cartesian.
	RotateXTable.Register(xyzSig, rotateXXYZ, xyzSig)
	RotateYTable.Register(xyzSig, rotateYXYZ, xyzSig)
	RotateQuaternionTable.Register(xyzSig, rotateQuaternionXYZ, xyzSig)
	Transform3DTable.Register(xyzSig, transform3DXYZ, xyzSig)
	for _, order := range EulerOrders() {
		RotateEulerTable.Register(EulerSig{Sig: xyzSig, Order: order}, eulerNative(order), xyzSig)
	}

	for _, sig := range coords.SpatialSigs() {
		if sig == xyzSig {
			continue
		}
		RotateXTable.Register(sig, composeParamVector(rotateXXYZ, sig), xyzSig)
		RotateYTable.Register(sig, composeParamVector(rotateYXYZ, sig), xyzSig)
		RotateQuaternionTable.Register(sig, composeQuaternion(sig), xyzSig)
		Transform3DTable.Register(sig, composeTransform3D(sig), xyzSig)
		for _, order := range EulerOrders() {
			RotateEulerTable.Register(EulerSig{Sig: sig, Order: order}, composeEuler(order, sig), xyzSig)
		}
	}
}

func registerBinary() {
	xyzPair := coords.SpatialPair{V1: xyzSig, V2: xyzSig}
	rpZ := coords.SpatialSig{Az: coords.KindRhoPhi, Lon: coords.KindZ}

	DotTable.Register(xyzPair, dotXYZXYZ, coords.Float)
	DotTable.Register(coords.SpatialPair{V1: rpZ, V2: rpZ}, dotRhoPhiZRhoPhiZ, coords.Float)

	CrossTable.Register(xyzPair, crossXYZXYZ, xyzSig)

	AddTable.Register(xyzPair, addXYZXYZ, xyzSig)
	SubtractTable.Register(xyzPair, subtractXYZXYZ, xyzSig)

	EqualTable.Register(xyzPair, equalXYZXYZ, coords.Bool)
	IsCloseTable.Register(xyzPair, isCloseXYZXYZ, coords.Bool)

	// Same-kind specializations: Add/Subtract keep the operands'
	// representation, Equal/IsClose compare raw components directly.
	for _, sig := range coords.SpatialSigs() {
		key := coords.SpatialPair{V1: sig, V2: sig}
		if !AddTable.Has(key) {
			AddTable.Register(key, composeSameKindSum(sig, false), sig)
			SubtractTable.Register(key, composeSameKindSum(sig, true), sig)
		}
		if !EqualTable.Has(key) {
			EqualTable.Register(key, sameKindEqual, coords.Bool)
			IsCloseTable.Register(key, sameKindIsClose, coords.Bool)
		}
	}

	for _, s1 := range coords.SpatialSigs() {
		for _, s2 := range coords.SpatialSigs() {
			key := coords.SpatialPair{V1: s1, V2: s2}
			if !DotTable.Has(key) {
				DotTable.Register(key, composeDot(s1, s2), coords.Float)
			}
			if !CrossTable.Has(key) {
				CrossTable.Register(key, composeCross(s1, s2), xyzSig)
			}
			if !AddTable.Has(key) {
				AddTable.Register(key, composeSum(s1, s2, false), xyzSig)
				SubtractTable.Register(key, composeSum(s1, s2, true), xyzSig)
			}
			if !EqualTable.Has(key) {
				EqualTable.Register(key, composeEqual(s1, s2), coords.Bool)
				IsCloseTable.Register(key, composeIsClose(s1, s2), coords.Bool)
			}

			RotateAxisTable.Register(key, composeRotateAxis(s1, s2), xyzSig)
			DeltaAngleTable.Register(key, composeDeltaAngle(s1, s2), coords.Float)
			DeltaEtaTable.Register(key, composeDeltaEta(s1, s2), coords.Float)
			DeltaR2Table.Register(key, composeDeltaR2(s1, s2), coords.Float)
		}
	}

	// DeltaR composes from the already complete DeltaR2 entries.
	for _, s1 := range coords.SpatialSigs() {
		for _, s2 := range coords.SpatialSigs() {
			key := coords.SpatialPair{V1: s1, V2: s2}
			DeltaRTable.Register(key, composeDeltaR(key), coords.Float)
		}
	}
}

func registerPredicates() {
	for _, s1 := range coords.SpatialSigs() {
		for _, s2 := range coords.SpatialSigs() {
			key := coords.SpatialPair{V1: s1, V2: s2}
			IsParallelTable.Register(key, composeIsParallel(s1, s2), coords.Bool)
			IsAntiparallelTable.Register(key, composeIsAntiparallel(s1, s2), coords.Bool)
			IsPerpendicularTable.Register(key, composeIsPerpendicular(s1, s2), coords.Bool)
		}
	}
}

// Factories.

func composeDot(s1, s2 coords.SpatialSig) ScalarKernel2 {
	toX1, toY1, toZ1 := XYZConverters(s1)
	toX2, toY2, toZ2 := XYZConverters(s2)

	return func(lib mathlib.Lib, a1, b1, c1, a2, b2, c2 float64) float64 {
		return dotXYZXYZ(lib,
			toX1(lib, a1, b1, c1), toY1(lib, a1, b1, c1), toZ1(lib, a1, b1, c1),
			toX2(lib, a2, b2, c2), toY2(lib, a2, b2, c2), toZ2(lib, a2, b2, c2))
	}
}

func composeCross(s1, s2 coords.SpatialSig) VectorKernel2 {
	toX1, toY1, toZ1 := XYZConverters(s1)
	toX2, toY2, toZ2 := XYZConverters(s2)

	return func(lib mathlib.Lib, a1, b1, c1, a2, b2, c2 float64) (float64, float64, float64) {
		return crossXYZXYZ(lib,
			toX1(lib, a1, b1, c1), toY1(lib, a1, b1, c1), toZ1(lib, a1, b1, c1),
			toX2(lib, a2, b2, c2), toY2(lib, a2, b2, c2), toZ2(lib, a2, b2, c2))
	}
}

// composeSum builds mixed-kind Add/Subtract: convert both operands to
// Cartesian and combine.
func composeSum(s1, s2 coords.SpatialSig, negate bool) VectorKernel2 {
	toX1, toY1, toZ1 := XYZConverters(s1)
	toX2, toY2, toZ2 := XYZConverters(s2)
	native := addXYZXYZ
	if negate {
		native = subtractXYZXYZ
	}

	return func(lib mathlib.Lib, a1, b1, c1, a2, b2, c2 float64) (float64, float64, float64) {
		return native(lib,
			toX1(lib, a1, b1, c1), toY1(lib, a1, b1, c1), toZ1(lib, a1, b1, c1),
			toX2(lib, a2, b2, c2), toY2(lib, a2, b2, c2), toZ2(lib, a2, b2, c2))
	}
}

// composeSameKindSum keeps the operands' shared representation: the
// azimuthal axes combine through the planar same-kind kernel, the
// longitudinal axes combine in z and convert back.
func composeSameKindSum(sig coords.SpatialSig, negate bool) VectorKernel2 {
	azPair := coords.AzimuthalPair{A1: sig.Az, A2: sig.Az}
	azCombine, _ := planar.AddTable.Kernel(azPair)
	if negate {
		azCombine, _ = planar.SubtractTable.Kernel(azPair)
	}
	toZ := ZKernel(sig)
	backFromZ := lonFromZ(sig)
	zSign := 1.0
	if negate {
		zSign = -1.0
	}

	return func(lib mathlib.Lib, a1, b1, c1, a2, b2, c2 float64) (float64, float64, float64) {
		a, b := azCombine(lib, a1, b1, a2, b2)
		zsum := toZ(lib, a1, b1, c1) + zSign*toZ(lib, a2, b2, c2)

		return a, b, backFromZ(lib, a, b, zsum)
	}
}

func sameKindEqual(lib mathlib.Lib, a1, b1, c1, a2, b2, c2 float64) bool {
	return a1 == a2 && b1 == b2 && c1 == c2
}

func sameKindIsClose(lib mathlib.Lib, rtol, atol float64, equalNaN bool, a1, b1, c1, a2, b2, c2 float64) bool {
	return lib.IsClose(a1, a2, rtol, atol, equalNaN) &&
		lib.IsClose(b1, b2, rtol, atol, equalNaN) &&
		lib.IsClose(c1, c2, rtol, atol, equalNaN)
}

func composeEqual(s1, s2 coords.SpatialSig) BoolKernel2 {
	toX1, toY1, toZ1 := XYZConverters(s1)
	toX2, toY2, toZ2 := XYZConverters(s2)

	return func(lib mathlib.Lib, a1, b1, c1, a2, b2, c2 float64) bool {
		return equalXYZXYZ(lib,
			toX1(lib, a1, b1, c1), toY1(lib, a1, b1, c1), toZ1(lib, a1, b1, c1),
			toX2(lib, a2, b2, c2), toY2(lib, a2, b2, c2), toZ2(lib, a2, b2, c2))
	}
}

func composeIsClose(s1, s2 coords.SpatialSig) CloseKernel2 {
	toX1, toY1, toZ1 := XYZConverters(s1)
	toX2, toY2, toZ2 := XYZConverters(s2)

	return func(lib mathlib.Lib, rtol, atol float64, equalNaN bool, a1, b1, c1, a2, b2, c2 float64) bool {
		return isCloseXYZXYZ(lib, rtol, atol, equalNaN,
			toX1(lib, a1, b1, c1), toY1(lib, a1, b1, c1), toZ1(lib, a1, b1, c1),
			toX2(lib, a2, b2, c2), toY2(lib, a2, b2, c2), toZ2(lib, a2, b2, c2))
	}
}

func composeParamVector(native ParamVectorKernel, sig coords.SpatialSig) ParamVectorKernel {
	toX, toY, toZ := XYZConverters(sig)

	return func(lib mathlib.Lib, p, a, b, c float64) (float64, float64, float64) {
		return native(lib, p, toX(lib, a, b, c), toY(lib, a, b, c), toZ(lib, a, b, c))
	}
}

func composeQuaternion(sig coords.SpatialSig) QuaternionKernel {
	toX, toY, toZ := XYZConverters(sig)

	return func(lib mathlib.Lib, u, i, j, k, a, b, c float64) (float64, float64, float64) {
		return rotateQuaternionXYZ(lib, u, i, j, k,
			toX(lib, a, b, c), toY(lib, a, b, c), toZ(lib, a, b, c))
	}
}

func composeEuler(order EulerOrder, sig coords.SpatialSig) EulerKernel {
	native := eulerNative(order)
	toX, toY, toZ := XYZConverters(sig)

	return func(lib mathlib.Lib, phi, theta, psi, a, b, c float64) (float64, float64, float64) {
		return native(lib, phi, theta, psi,
			toX(lib, a, b, c), toY(lib, a, b, c), toZ(lib, a, b, c))
	}
}

func composeTransform3D(sig coords.SpatialSig) TransformKernel {
	toX, toY, toZ := XYZConverters(sig)

	return func(lib mathlib.Lib, xx, xy, xz, yx, yy, yz, zx, zy, zz, a, b, c float64) (float64, float64, float64) {
		return transform3DXYZ(lib, xx, xy, xz, yx, yy, yz, zx, zy, zz,
			toX(lib, a, b, c), toY(lib, a, b, c), toZ(lib, a, b, c))
	}
}

func composeRotateAxis(s1, s2 coords.SpatialSig) AxisVectorKernel2 {
	toX1, toY1, toZ1 := XYZConverters(s1)
	toX2, toY2, toZ2 := XYZConverters(s2)

	return func(lib mathlib.Lib, angle, a1, b1, c1, a2, b2, c2 float64) (float64, float64, float64) {
		return rotateAxisXYZXYZ(lib, angle,
			toX1(lib, a1, b1, c1), toY1(lib, a1, b1, c1), toZ1(lib, a1, b1, c1),
			toX2(lib, a2, b2, c2), toY2(lib, a2, b2, c2), toZ2(lib, a2, b2, c2))
	}
}

func composeDeltaAngle(s1, s2 coords.SpatialSig) ScalarKernel2 {
	dot, _ := DotTable.Kernel(coords.SpatialPair{V1: s1, V2: s2})
	mag1 := MagKernel(s1)
	mag2 := MagKernel(s2)

	return func(lib mathlib.Lib, a1, b1, c1, a2, b2, c2 float64) float64 {
		return lib.ArcCos(dot(lib, a1, b1, c1, a2, b2, c2) /
			mag1(lib, a1, b1, c1) / mag2(lib, a2, b2, c2))
	}
}

func composeDeltaEta(s1, s2 coords.SpatialSig) ScalarKernel2 {
	eta1 := EtaKernel(s1)
	eta2 := EtaKernel(s2)

	return func(lib mathlib.Lib, a1, b1, c1, a2, b2, c2 float64) float64 {
		return eta1(lib, a1, b1, c1) - eta2(lib, a2, b2, c2)
	}
}

func composeDeltaR2(s1, s2 coords.SpatialSig) ScalarKernel2 {
	phi1 := planar.PhiKernel(s1.Az)
	phi2 := planar.PhiKernel(s2.Az)
	eta1 := EtaKernel(s1)
	eta2 := EtaKernel(s2)

	return func(lib mathlib.Lib, a1, b1, c1, a2, b2, c2 float64) float64 {
		dphi := rectify(lib, phi1(lib, a1, b1)-phi2(lib, a2, b2))
		deta := eta1(lib, a1, b1, c1) - eta2(lib, a2, b2, c2)

		return dphi*dphi + deta*deta
	}
}

func composeDeltaR(key coords.SpatialPair) ScalarKernel2 {
	dr2, _ := DeltaR2Table.Kernel(key)

	return func(lib mathlib.Lib, a1, b1, c1, a2, b2, c2 float64) float64 {
		return lib.Sqrt(dr2(lib, a1, b1, c1, a2, b2, c2))
	}
}

func composeIsParallel(s1, s2 coords.SpatialSig) TolBoolKernel2 {
	dot, _ := DotTable.Kernel(coords.SpatialPair{V1: s1, V2: s2})
	mag1 := MagKernel(s1)
	mag2 := MagKernel(s2)

	return func(lib mathlib.Lib, tol, a1, b1, c1, a2, b2, c2 float64) bool {
		return dot(lib, a1, b1, c1, a2, b2, c2) >
			(1-lib.Absolute(tol))*mag1(lib, a1, b1, c1)*mag2(lib, a2, b2, c2)
	}
}

func composeIsAntiparallel(s1, s2 coords.SpatialSig) TolBoolKernel2 {
	dot, _ := DotTable.Kernel(coords.SpatialPair{V1: s1, V2: s2})
	mag1 := MagKernel(s1)
	mag2 := MagKernel(s2)

	return func(lib mathlib.Lib, tol, a1, b1, c1, a2, b2, c2 float64) bool {
		return dot(lib, a1, b1, c1, a2, b2, c2) <
			(lib.Absolute(tol)-1)*mag1(lib, a1, b1, c1)*mag2(lib, a2, b2, c2)
	}
}

func composeIsPerpendicular(s1, s2 coords.SpatialSig) TolBoolKernel2 {
	dot, _ := DotTable.Kernel(coords.SpatialPair{V1: s1, V2: s2})
	mag1 := MagKernel(s1)
	mag2 := MagKernel(s2)

	return func(lib mathlib.Lib, tol, a1, b1, c1, a2, b2, c2 float64) bool {
		return dot(lib, a1, b1, c1, a2, b2, c2) <
			lib.Absolute(tol)*mag1(lib, a1, b1, c1)*mag2(lib, a2, b2, c2)
	}
}
