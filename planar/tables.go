// SPDX-License-Identifier: MIT
// Package planar: dispatch tables. Native kernels and same-kind
// specializations are registered first; a compose-then-register pass then
// fills the remaining kind combinations with synthesized conversion
// wrappers. All closures are built by factories parameterized by the kind
// combination — never by capturing loop variables.

package planar

import (
	"github.com/katalvlaran/hepvec/coords"
	"github.com/katalvlaran/hepvec/dispatch"
	"github.com/katalvlaran/hepvec/mathlib"
)

// Per-operation dispatch tables. Read-only after init; exported so that the
// spatial/lorentz generation passes and exhaustiveness tests can reach the
// registered kernels directly.
var (
	XTable    = dispatch.NewTable[coords.AzimuthalKind, ScalarKernel, coords.ScalarKind]("planar.x")
	YTable    = dispatch.NewTable[coords.AzimuthalKind, ScalarKernel, coords.ScalarKind]("planar.y")
	RhoTable  = dispatch.NewTable[coords.AzimuthalKind, ScalarKernel, coords.ScalarKind]("planar.rho")
	Rho2Table = dispatch.NewTable[coords.AzimuthalKind, ScalarKernel, coords.ScalarKind]("planar.rho2")
	PhiTable  = dispatch.NewTable[coords.AzimuthalKind, ScalarKernel, coords.ScalarKind]("planar.phi")

	UnitTable        = dispatch.NewTable[coords.AzimuthalKind, VectorKernel, coords.AzimuthalKind]("planar.unit")
	RotateZTable     = dispatch.NewTable[coords.AzimuthalKind, ParamVectorKernel, coords.AzimuthalKind]("planar.rotateZ")
	ScaleTable       = dispatch.NewTable[coords.AzimuthalKind, ParamVectorKernel, coords.AzimuthalKind]("planar.scale")
	Transform2DTable = dispatch.NewTable[coords.AzimuthalKind, TransformKernel, coords.AzimuthalKind]("planar.transform2D")

	DotTable      = dispatch.NewTable[coords.AzimuthalPair, ScalarKernel2, coords.ScalarKind]("planar.dot")
	DeltaPhiTable = dispatch.NewTable[coords.AzimuthalPair, ScalarKernel2, coords.ScalarKind]("planar.deltaphi")

	AddTable      = dispatch.NewTable[coords.AzimuthalPair, VectorKernel2, coords.AzimuthalKind]("planar.add")
	SubtractTable = dispatch.NewTable[coords.AzimuthalPair, VectorKernel2, coords.AzimuthalKind]("planar.subtract")

	EqualTable   = dispatch.NewTable[coords.AzimuthalPair, BoolKernel2, coords.ScalarKind]("planar.equal")
	IsCloseTable = dispatch.NewTable[coords.AzimuthalPair, CloseKernel2, coords.ScalarKind]("planar.isclose")

	IsParallelTable      = dispatch.NewTable[coords.AzimuthalPair, TolBoolKernel2, coords.ScalarKind]("planar.isParallel")
	IsAntiparallelTable  = dispatch.NewTable[coords.AzimuthalPair, TolBoolKernel2, coords.ScalarKind]("planar.isAntiparallel")
	IsPerpendicularTable = dispatch.NewTable[coords.AzimuthalPair, TolBoolKernel2, coords.ScalarKind]("planar.isPerpendicular")
)

func init() {
	registerCoordinates()
	registerUnary()
	registerBinary()
	registerPredicates()
}

// registerCoordinates fills the coordinate tables; every combination is
// native here, there is nothing to generate.
func registerCoordinates() {
	XTable.Register(coords.KindXY, xFromXY, coords.Float)
	XTable.Register(coords.KindRhoPhi, xFromRhoPhi, coords.Float)
	YTable.Register(coords.KindXY, yFromXY, coords.Float)
	YTable.Register(coords.KindRhoPhi, yFromRhoPhi, coords.Float)
	RhoTable.Register(coords.KindXY, rhoFromXY, coords.Float)
	RhoTable.Register(coords.KindRhoPhi, rhoFromRhoPhi, coords.Float)
	Rho2Table.Register(coords.KindXY, rho2FromXY, coords.Float)
	Rho2Table.Register(coords.KindRhoPhi, rho2FromRhoPhi, coords.Float)
	PhiTable.Register(coords.KindXY, phiFromXY, coords.Float)
	PhiTable.Register(coords.KindRhoPhi, phiFromRhoPhi, coords.Float)
}

// registerUnary fills the single-operand vector operations. Both kinds are
// native for unit/rotateZ/scale (each keeps its own representation);
// transform2D is native in Cartesian and generated for polar.
func registerUnary() {
	UnitTable.Register(coords.KindXY, unitXY, coords.KindXY)
	UnitTable.Register(coords.KindRhoPhi, unitRhoPhi, coords.KindRhoPhi)

	RotateZTable.Register(coords.KindXY, rotateZXY, coords.KindXY)
	RotateZTable.Register(coords.KindRhoPhi, rotateZRhoPhi, coords.KindRhoPhi)

	ScaleTable.Register(coords.KindXY, scaleXY, coords.KindXY)
	ScaleTable.Register(coords.KindRhoPhi, scaleRhoPhi, coords.KindRhoPhi)

	Transform2DTable.Register(coords.KindXY, transform2DXY, coords.KindXY)
	Transform2DTable.Register(coords.KindRhoPhi, composeTransform2D(coords.KindRhoPhi), coords.KindXY)
}

// registerBinary fills the two-operand operations: native Cartesian kernel,
// same-kind polar specialization, generated mixed combinations.
func registerBinary() {
	xyxy := coords.AzimuthalPair{A1: coords.KindXY, A2: coords.KindXY}
	polar := coords.AzimuthalPair{A1: coords.KindRhoPhi, A2: coords.KindRhoPhi}

	DotTable.Register(xyxy, dotXYXY, coords.Float)
	DotTable.Register(polar, dotRhoPhiRhoPhi, coords.Float)

	DeltaPhiTable.Register(xyxy, deltaPhiXYXY, coords.Float)
	DeltaPhiTable.Register(polar, deltaPhiRhoPhiRhoPhi, coords.Float)

	AddTable.Register(xyxy, addXYXY, coords.KindXY)
	AddTable.Register(polar, addRhoPhiRhoPhi, coords.KindRhoPhi)

	SubtractTable.Register(xyxy, subtractXYXY, coords.KindXY)
	SubtractTable.Register(polar, subtractRhoPhiRhoPhi, coords.KindRhoPhi)

	EqualTable.Register(xyxy, equalXYXY, coords.Bool)
	EqualTable.Register(polar, equalRhoPhiRhoPhi, coords.Bool)

	IsCloseTable.Register(xyxy, isCloseXYXY, coords.Bool)
	IsCloseTable.Register(polar, isCloseRhoPhiRhoPhi, coords.Bool)

	for _, a1 := range coords.AzimuthalKinds() {
		for _, a2 := range coords.AzimuthalKinds() {
			key := coords.AzimuthalPair{A1: a1, A2: a2}
			if !DotTable.Has(key) {
				DotTable.Register(key, composeDot(a1, a2), coords.Float)
			}
			if !DeltaPhiTable.Has(key) {
				DeltaPhiTable.Register(key, composeDeltaPhi(a1, a2), coords.Float)
			}
			if !AddTable.Has(key) {
				AddTable.Register(key, composeAdd(a1, a2), coords.KindXY)
			}
			if !SubtractTable.Has(key) {
				SubtractTable.Register(key, composeSubtract(a1, a2), coords.KindXY)
			}
			if !EqualTable.Has(key) {
				EqualTable.Register(key, composeEqual(a1, a2), coords.Bool)
			}
			if !IsCloseTable.Has(key) {
				IsCloseTable.Register(key, composeIsClose(a1, a2), coords.Bool)
			}
		}
	}
}

// registerPredicates fills the tolerance predicates. Every combination is
// generated: the predicate body is the same algebraic comparison for each,
// built from the dot and rho kernels already registered for that
// combination.
func registerPredicates() {
	for _, a1 := range coords.AzimuthalKinds() {
		for _, a2 := range coords.AzimuthalKinds() {
			key := coords.AzimuthalPair{A1: a1, A2: a2}
			IsParallelTable.Register(key, composeIsParallel(a1, a2), coords.Bool)
			IsAntiparallelTable.Register(key, composeIsAntiparallel(a1, a2), coords.Bool)
			IsPerpendicularTable.Register(key, composeIsPerpendicular(a1, a2), coords.Bool)
		}
	}
}

// Factories. Each takes the kind combination, binds the needed converters
// once, and returns a freshly constructed kernel for that combination.

func composeDot(a1, a2 coords.AzimuthalKind) ScalarKernel2 {
	toX1, toY1 := XYConverters(a1)
	toX2, toY2 := XYConverters(a2)

	return func(lib mathlib.Lib, c11, c12, c21, c22 float64) float64 {
		return dotXYXY(lib,
			toX1(lib, c11, c12), toY1(lib, c11, c12),
			toX2(lib, c21, c22), toY2(lib, c21, c22))
	}
}

func composeDeltaPhi(a1, a2 coords.AzimuthalKind) ScalarKernel2 {
	toPhi1 := PhiKernel(a1)
	toPhi2 := PhiKernel(a2)

	return func(lib mathlib.Lib, c11, c12, c21, c22 float64) float64 {
		return rectify(lib, toPhi1(lib, c11, c12)-toPhi2(lib, c21, c22))
	}
}

func composeAdd(a1, a2 coords.AzimuthalKind) VectorKernel2 {
	toX1, toY1 := XYConverters(a1)
	toX2, toY2 := XYConverters(a2)

	return func(lib mathlib.Lib, c11, c12, c21, c22 float64) (float64, float64) {
		return addXYXY(lib,
			toX1(lib, c11, c12), toY1(lib, c11, c12),
			toX2(lib, c21, c22), toY2(lib, c21, c22))
	}
}

func composeSubtract(a1, a2 coords.AzimuthalKind) VectorKernel2 {
	toX1, toY1 := XYConverters(a1)
	toX2, toY2 := XYConverters(a2)

	return func(lib mathlib.Lib, c11, c12, c21, c22 float64) (float64, float64) {
		return subtractXYXY(lib,
			toX1(lib, c11, c12), toY1(lib, c11, c12),
			toX2(lib, c21, c22), toY2(lib, c21, c22))
	}
}

func composeEqual(a1, a2 coords.AzimuthalKind) BoolKernel2 {
	toX1, toY1 := XYConverters(a1)
	toX2, toY2 := XYConverters(a2)

	return func(lib mathlib.Lib, c11, c12, c21, c22 float64) bool {
		return equalXYXY(lib,
			toX1(lib, c11, c12), toY1(lib, c11, c12),
			toX2(lib, c21, c22), toY2(lib, c21, c22))
	}
}

func composeIsClose(a1, a2 coords.AzimuthalKind) CloseKernel2 {
	toX1, toY1 := XYConverters(a1)
	toX2, toY2 := XYConverters(a2)

	return func(lib mathlib.Lib, rtol, atol float64, equalNaN bool, c11, c12, c21, c22 float64) bool {
		return isCloseXYXY(lib, rtol, atol, equalNaN,
			toX1(lib, c11, c12), toY1(lib, c11, c12),
			toX2(lib, c21, c22), toY2(lib, c21, c22))
	}
}

func composeIsParallel(a1, a2 coords.AzimuthalKind) TolBoolKernel2 {
	dot, _ := DotTable.Kernel(coords.AzimuthalPair{A1: a1, A2: a2})
	rho1 := RhoKernel(a1)
	rho2 := RhoKernel(a2)

	return func(lib mathlib.Lib, tol, c11, c12, c21, c22 float64) bool {
		return dot(lib, c11, c12, c21, c22) >
			(1-lib.Absolute(tol))*rho1(lib, c11, c12)*rho2(lib, c21, c22)
	}
}

func composeIsAntiparallel(a1, a2 coords.AzimuthalKind) TolBoolKernel2 {
	dot, _ := DotTable.Kernel(coords.AzimuthalPair{A1: a1, A2: a2})
	rho1 := RhoKernel(a1)
	rho2 := RhoKernel(a2)

	return func(lib mathlib.Lib, tol, c11, c12, c21, c22 float64) bool {
		return dot(lib, c11, c12, c21, c22) <
			(lib.Absolute(tol)-1)*rho1(lib, c11, c12)*rho2(lib, c21, c22)
	}
}

func composeIsPerpendicular(a1, a2 coords.AzimuthalKind) TolBoolKernel2 {
	dot, _ := DotTable.Kernel(coords.AzimuthalPair{A1: a1, A2: a2})
	rho1 := RhoKernel(a1)
	rho2 := RhoKernel(a2)

	return func(lib mathlib.Lib, tol, c11, c12, c21, c22 float64) bool {
		return dot(lib, c11, c12, c21, c22) <
			lib.Absolute(tol)*rho1(lib, c11, c12)*rho2(lib, c21, c22)
	}
}

func composeTransform2D(az coords.AzimuthalKind) TransformKernel {
	toX, toY := XYConverters(az)

	return func(lib mathlib.Lib, xx, xy, yx, yy, a, b float64) (float64, float64) {
		return transform2DXY(lib, xx, xy, yx, yy, toX(lib, a, b), toY(lib, a, b))
	}
}
