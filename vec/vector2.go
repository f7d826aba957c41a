// SPDX-License-Identifier: MIT
package vec

import (
	"github.com/katalvlaran/hepvec/coords"
	"github.com/katalvlaran/hepvec/mathlib"
	"github.com/katalvlaran/hepvec/planar"
)

// Vector2 is a planar vector: one azimuthal component pair plus a math
// backend. The zero value is unusable; build through XY, RhoPhi or
// NewVector2.
type Vector2 struct {
	lib mathlib.Lib
	az  coords.Azimuthal
}

// XY builds a Cartesian planar vector.
func XY(x, y float64, opts ...Option) Vector2 {
	return NewVector2(coords.XY{X: x, Y: y}, opts...)
}

// RhoPhi builds a polar planar vector from the transverse magnitude and the
// azimuthal angle.
func RhoPhi(rho, phi float64, opts ...Option) Vector2 {
	return NewVector2(coords.RhoPhi{Rho: rho, Phi: phi}, opts...)
}

// NewVector2 builds a planar vector from a ready-made azimuthal component.
func NewVector2(az coords.Azimuthal, opts ...Option) Vector2 {
	o := buildOptions(opts)

	return Vector2{lib: o.lib, az: az}
}

// Lib returns the vector's math backend.
func (v Vector2) Lib() mathlib.Lib { return v.lib }

// Azimuthal returns the stored azimuthal component.
func (v Vector2) Azimuthal() coords.Azimuthal { return v.az }

// X returns the Cartesian x component.
func (v Vector2) X() float64 { return mustFloat(planar.X(v)) }

// Y returns the Cartesian y component.
func (v Vector2) Y() float64 { return mustFloat(planar.Y(v)) }

// Rho returns the transverse magnitude.
func (v Vector2) Rho() float64 { return mustFloat(planar.Rho(v)) }

// Rho2 returns the squared transverse magnitude.
func (v Vector2) Rho2() float64 { return mustFloat(planar.Rho2(v)) }

// Phi returns the azimuthal angle, in (−π, π].
func (v Vector2) Phi() float64 { return mustFloat(planar.Phi(v)) }

// Add returns v + u. Same-kind operands keep their representation; mixed
// operands come back Cartesian.
func (v Vector2) Add(u Vector2) Vector2 {
	az, err := planar.Add(v, u)
	must(err)

	return Vector2{lib: v.lib, az: az}
}

// Subtract returns v − u, with the same result-kind rule as Add.
func (v Vector2) Subtract(u Vector2) Vector2 {
	az, err := planar.Subtract(v, u)
	must(err)

	return Vector2{lib: v.lib, az: az}
}

// Scale multiplies by a signed factor, preserving the representation.
func (v Vector2) Scale(factor float64) Vector2 {
	az, err := planar.Scale(v, factor)
	must(err)

	return Vector2{lib: v.lib, az: az}
}

// Unit returns v normalized to unit magnitude. The zero vector yields zero
// components.
func (v Vector2) Unit() Vector2 {
	az, err := planar.Unit(v)
	must(err)

	return Vector2{lib: v.lib, az: az}
}

// RotateZ rotates counterclockwise by angle.
func (v Vector2) RotateZ(angle float64) Vector2 {
	az, err := planar.RotateZ(v, angle)
	must(err)

	return Vector2{lib: v.lib, az: az}
}

// Transform2D applies an explicit 2×2 matrix. Result is always Cartesian.
func (v Vector2) Transform2D(m planar.Matrix2) Vector2 {
	az, err := planar.Transform2D(v, m)
	must(err)

	return Vector2{lib: v.lib, az: az}
}

// Dot returns the scalar product.
func (v Vector2) Dot(u Vector2) float64 { return mustFloat(planar.Dot(v, u)) }

// DeltaPhi returns the azimuthal separation φ1 − φ2, wrapped to (−π, π].
func (v Vector2) DeltaPhi(u Vector2) float64 { return mustFloat(planar.DeltaPhi(v, u)) }

// Equal reports exact component equality after representation alignment.
func (v Vector2) Equal(u Vector2) bool { return mustBool(planar.Equal(v, u)) }

// NotEqual is the negation of Equal.
func (v Vector2) NotEqual(u Vector2) bool { return !v.Equal(u) }

// IsClose reports tolerant equality. Optional overrides: tols[0] is the
// relative tolerance, tols[1] the absolute one.
func (v Vector2) IsClose(u Vector2, tols ...float64) bool {
	rtol, atol := closeTols(tols)

	return mustBool(planar.IsClose(v, u, rtol, atol, false))
}

// IsParallel reports whether v and u point the same way within tol
// (DefaultTolerance when omitted).
func (v Vector2) IsParallel(u Vector2, tol ...float64) bool {
	return mustBool(planar.IsParallel(v, u, tolOrDefault(tol)))
}

// IsAntiparallel reports whether v and u point opposite ways within tol.
func (v Vector2) IsAntiparallel(u Vector2, tol ...float64) bool {
	return mustBool(planar.IsAntiparallel(v, u, tolOrDefault(tol)))
}

// IsPerpendicular reports whether v and u are orthogonal within tol.
func (v Vector2) IsPerpendicular(u Vector2, tol ...float64) bool {
	return mustBool(planar.IsPerpendicular(v, u, tolOrDefault(tol)))
}

// To re-expresses v in the azimuthal kind az.
func (v Vector2) To(az coords.AzimuthalKind) Vector2 {
	return Vector2{lib: v.lib, az: convertAzimuthal(v, az)}
}

// convertAzimuthal rebuilds a planar operand's azimuthal component in the
// target kind. Shared by the To methods of all three vector flavors.
func convertAzimuthal(v coords.Planar, az coords.AzimuthalKind) coords.Azimuthal {
	if v.Azimuthal().AzimuthalKind() == az {
		return v.Azimuthal()
	}
	if az == coords.KindXY {
		return coords.XY{X: mustFloat(planar.X(v)), Y: mustFloat(planar.Y(v))}
	}

	return coords.RhoPhi{Rho: mustFloat(planar.Rho(v)), Phi: mustFloat(planar.Phi(v))}
}
