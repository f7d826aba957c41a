// SPDX-License-Identifier: MIT
// Package planar: caller-facing operations. Each function extracts the
// operand signature, resolves a kernel from the operation's dispatch table,
// runs it, and re-wraps the raw result in the declared result kind. Binary
// operations verify the operands share a math backend first.

package planar

import (
	"github.com/katalvlaran/hepvec/coords"
	"github.com/katalvlaran/hepvec/dispatch"
)

// Matrix2 is an explicit 2×2 linear transformation, row major.
type Matrix2 struct {
	XX, XY float64
	YX, YY float64
}

// X returns the Cartesian x component of v's azimuthal axis.
func X(v coords.Planar) (float64, error) {
	fn, _, err := XTable.Resolve(coords.SigOfPlanar(v))
	if err != nil {
		return 0, err
	}
	a, b := v.Azimuthal().AzimuthalElements()

	return fn(v.Lib(), a, b), nil
}

// Y returns the Cartesian y component of v's azimuthal axis.
func Y(v coords.Planar) (float64, error) {
	fn, _, err := YTable.Resolve(coords.SigOfPlanar(v))
	if err != nil {
		return 0, err
	}
	a, b := v.Azimuthal().AzimuthalElements()

	return fn(v.Lib(), a, b), nil
}

// Rho returns the transverse magnitude sqrt(x² + y²).
func Rho(v coords.Planar) (float64, error) {
	fn, _, err := RhoTable.Resolve(coords.SigOfPlanar(v))
	if err != nil {
		return 0, err
	}
	a, b := v.Azimuthal().AzimuthalElements()

	return fn(v.Lib(), a, b), nil
}

// Rho2 returns the squared transverse magnitude x² + y².
func Rho2(v coords.Planar) (float64, error) {
	fn, _, err := Rho2Table.Resolve(coords.SigOfPlanar(v))
	if err != nil {
		return 0, err
	}
	a, b := v.Azimuthal().AzimuthalElements()

	return fn(v.Lib(), a, b), nil
}

// Phi returns the azimuthal angle atan2(y, x), in (−π, π].
func Phi(v coords.Planar) (float64, error) {
	fn, _, err := PhiTable.Resolve(coords.SigOfPlanar(v))
	if err != nil {
		return 0, err
	}
	a, b := v.Azimuthal().AzimuthalElements()

	return fn(v.Lib(), a, b), nil
}

// Dot returns the 2D scalar product of the azimuthal axes of v1 and v2.
func Dot(v1, v2 coords.Planar) (float64, error) {
	lib, err := dispatch.SharedLib(v1.Lib(), v2.Lib())
	if err != nil {
		return 0, err
	}
	key := coords.AzimuthalPair{A1: coords.SigOfPlanar(v1), A2: coords.SigOfPlanar(v2)}
	fn, _, err := DotTable.Resolve(key)
	if err != nil {
		return 0, err
	}
	a1, b1 := v1.Azimuthal().AzimuthalElements()
	a2, b2 := v2.Azimuthal().AzimuthalElements()

	return fn(lib, a1, b1, a2, b2), nil
}

// DeltaPhi returns the signed azimuthal separation φ1 − φ2, wrapped into
// (−π, π].
func DeltaPhi(v1, v2 coords.Planar) (float64, error) {
	lib, err := dispatch.SharedLib(v1.Lib(), v2.Lib())
	if err != nil {
		return 0, err
	}
	key := coords.AzimuthalPair{A1: coords.SigOfPlanar(v1), A2: coords.SigOfPlanar(v2)}
	fn, _, err := DeltaPhiTable.Resolve(key)
	if err != nil {
		return 0, err
	}
	a1, b1 := v1.Azimuthal().AzimuthalElements()
	a2, b2 := v2.Azimuthal().AzimuthalElements()

	return fn(lib, a1, b1, a2, b2), nil
}

// Add returns the azimuthal components of v1 + v2. Same-kind operands keep
// their representation; mixed operands come back Cartesian.
func Add(v1, v2 coords.Planar) (coords.Azimuthal, error) {
	return binaryVector(AddTable, v1, v2)
}

// Subtract returns the azimuthal components of v1 − v2, with the same
// result-kind rule as Add.
func Subtract(v1, v2 coords.Planar) (coords.Azimuthal, error) {
	return binaryVector(SubtractTable, v1, v2)
}

// Scale multiplies the azimuthal axis by a signed factor, preserving the
// operand's representation. A negative factor turns a polar vector by π
// rather than producing a negative rho.
func Scale(v coords.Planar, factor float64) (coords.Azimuthal, error) {
	return unaryParam(ScaleTable, v, factor)
}

// RotateZ rotates the azimuthal axis counterclockwise by angle, preserving
// the operand's representation.
func RotateZ(v coords.Planar, angle float64) (coords.Azimuthal, error) {
	return unaryParam(RotateZTable, v, angle)
}

// Unit returns v's azimuthal axis normalized to unit length, preserving the
// operand's representation. The zero vector yields zero components.
func Unit(v coords.Planar) (coords.Azimuthal, error) {
	fn, kind, err := UnitTable.Resolve(coords.SigOfPlanar(v))
	if err != nil {
		return nil, err
	}
	a, b := v.Azimuthal().AzimuthalElements()
	ra, rb := fn(v.Lib(), a, b)

	return coords.NewAzimuthal(kind, ra, rb), nil
}

// Transform2D applies m to v's azimuthal axis. The result is always
// Cartesian.
func Transform2D(v coords.Planar, m Matrix2) (coords.Azimuthal, error) {
	fn, kind, err := Transform2DTable.Resolve(coords.SigOfPlanar(v))
	if err != nil {
		return nil, err
	}
	a, b := v.Azimuthal().AzimuthalElements()
	ra, rb := fn(v.Lib(), m.XX, m.XY, m.YX, m.YY, a, b)

	return coords.NewAzimuthal(kind, ra, rb), nil
}

// Equal reports exact component equality after bringing both operands into
// a common representation. Prefer IsClose for floating-point comparisons.
func Equal(v1, v2 coords.Planar) (bool, error) {
	lib, err := dispatch.SharedLib(v1.Lib(), v2.Lib())
	if err != nil {
		return false, err
	}
	key := coords.AzimuthalPair{A1: coords.SigOfPlanar(v1), A2: coords.SigOfPlanar(v2)}
	fn, _, err := EqualTable.Resolve(key)
	if err != nil {
		return false, err
	}
	a1, b1 := v1.Azimuthal().AzimuthalElements()
	a2, b2 := v2.Azimuthal().AzimuthalElements()

	return fn(lib, a1, b1, a2, b2), nil
}

// NotEqual is the negation of Equal.
func NotEqual(v1, v2 coords.Planar) (bool, error) {
	eq, err := Equal(v1, v2)

	return !eq, err
}

// IsClose reports component-wise tolerant equality: for each component,
// |a − b| ≤ atol + rtol·|b|. With equalNaN, NaN compares equal to NaN.
func IsClose(v1, v2 coords.Planar, rtol, atol float64, equalNaN bool) (bool, error) {
	lib, err := dispatch.SharedLib(v1.Lib(), v2.Lib())
	if err != nil {
		return false, err
	}
	key := coords.AzimuthalPair{A1: coords.SigOfPlanar(v1), A2: coords.SigOfPlanar(v2)}
	fn, _, err := IsCloseTable.Resolve(key)
	if err != nil {
		return false, err
	}
	a1, b1 := v1.Azimuthal().AzimuthalElements()
	a2, b2 := v2.Azimuthal().AzimuthalElements()

	return fn(lib, rtol, atol, equalNaN, a1, b1, a2, b2), nil
}

// IsParallel reports whether v1 and v2 point the same way within the
// angular tolerance: dot > (1 − |tol|)·|v1|·|v2|.
func IsParallel(v1, v2 coords.Planar, tol float64) (bool, error) {
	return binaryPredicate(IsParallelTable, v1, v2, tol)
}

// IsAntiparallel reports whether v1 and v2 point opposite ways within the
// angular tolerance: dot < (|tol| − 1)·|v1|·|v2|.
func IsAntiparallel(v1, v2 coords.Planar, tol float64) (bool, error) {
	return binaryPredicate(IsAntiparallelTable, v1, v2, tol)
}

// IsPerpendicular reports whether v1 and v2 are orthogonal within the
// angular tolerance: dot < |tol|·|v1|·|v2|.
func IsPerpendicular(v1, v2 coords.Planar, tol float64) (bool, error) {
	return binaryPredicate(IsPerpendicularTable, v1, v2, tol)
}

// Shared resolve-run-rewrap plumbing.

func unaryParam(
	tbl *dispatch.Table[coords.AzimuthalKind, ParamVectorKernel, coords.AzimuthalKind],
	v coords.Planar, p float64,
) (coords.Azimuthal, error) {
	fn, kind, err := tbl.Resolve(coords.SigOfPlanar(v))
	if err != nil {
		return nil, err
	}
	a, b := v.Azimuthal().AzimuthalElements()
	ra, rb := fn(v.Lib(), p, a, b)

	return coords.NewAzimuthal(kind, ra, rb), nil
}

func binaryVector(
	tbl *dispatch.Table[coords.AzimuthalPair, VectorKernel2, coords.AzimuthalKind],
	v1, v2 coords.Planar,
) (coords.Azimuthal, error) {
	lib, err := dispatch.SharedLib(v1.Lib(), v2.Lib())
	if err != nil {
		return nil, err
	}
	key := coords.AzimuthalPair{A1: coords.SigOfPlanar(v1), A2: coords.SigOfPlanar(v2)}
	fn, kind, err := tbl.Resolve(key)
	if err != nil {
		return nil, err
	}
	a1, b1 := v1.Azimuthal().AzimuthalElements()
	a2, b2 := v2.Azimuthal().AzimuthalElements()
	ra, rb := fn(lib, a1, b1, a2, b2)

	return coords.NewAzimuthal(kind, ra, rb), nil
}

func binaryPredicate(
	tbl *dispatch.Table[coords.AzimuthalPair, TolBoolKernel2, coords.ScalarKind],
	v1, v2 coords.Planar, tol float64,
) (bool, error) {
	lib, err := dispatch.SharedLib(v1.Lib(), v2.Lib())
	if err != nil {
		return false, err
	}
	key := coords.AzimuthalPair{A1: coords.SigOfPlanar(v1), A2: coords.SigOfPlanar(v2)}
	fn, _, err := tbl.Resolve(key)
	if err != nil {
		return false, err
	}
	a1, b1 := v1.Azimuthal().AzimuthalElements()
	a2, b2 := v2.Azimuthal().AzimuthalElements()

	return fn(lib, tol, a1, b1, a2, b2), nil
}
