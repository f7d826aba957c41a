// SPDX-License-Identifier: MIT
package coords

import "fmt"

// Azimuthal is the in-plane component pair of a vector, in one of the two
// azimuthal parameterizations. Elements are returned in the kind's declared
// order: (x, y) for KindXY, (rho, phi) for KindRhoPhi.
type Azimuthal interface {
	AzimuthalKind() AzimuthalKind
	AzimuthalElements() (float64, float64)
}

// XY holds Cartesian azimuthal components.
type XY struct {
	X, Y float64
}

func (XY) AzimuthalKind() AzimuthalKind { return KindXY }

func (a XY) AzimuthalElements() (float64, float64) { return a.X, a.Y }

// RhoPhi holds polar azimuthal components.
type RhoPhi struct {
	Rho, Phi float64
}

func (RhoPhi) AzimuthalKind() AzimuthalKind { return KindRhoPhi }

func (a RhoPhi) AzimuthalElements() (float64, float64) { return a.Rho, a.Phi }

// Longitudinal is the out-of-plane component of a vector.
type Longitudinal interface {
	LongitudinalKind() LongitudinalKind
	LongitudinalElement() float64
}

// Z is the Cartesian longitudinal component.
type Z float64

func (Z) LongitudinalKind() LongitudinalKind { return KindZ }

func (c Z) LongitudinalElement() float64 { return float64(c) }

// Theta is the polar-angle longitudinal component.
type Theta float64

func (Theta) LongitudinalKind() LongitudinalKind { return KindTheta }

func (c Theta) LongitudinalElement() float64 { return float64(c) }

// Eta is the pseudorapidity longitudinal component.
type Eta float64

func (Eta) LongitudinalKind() LongitudinalKind { return KindEta }

func (c Eta) LongitudinalElement() float64 { return float64(c) }

// Temporal is the time-like component of a vector.
type Temporal interface {
	TemporalKind() TemporalKind
	TemporalElement() float64
}

// T is the coordinate-time temporal component.
type T float64

func (T) TemporalKind() TemporalKind { return KindT }

func (c T) TemporalElement() float64 { return float64(c) }

// Tau is the proper-time temporal component.
type Tau float64

func (Tau) TemporalKind() TemporalKind { return KindTau }

func (c Tau) TemporalElement() float64 { return float64(c) }

// NewAzimuthal rebuilds an azimuthal component from a declared result kind
// and raw elements in that kind's order. Kinds come from dispatch entries,
// so an unknown value is a registration bug: it panics.
func NewAzimuthal(kind AzimuthalKind, a, b float64) Azimuthal {
	switch kind {
	case KindXY:
		return XY{X: a, Y: b}
	case KindRhoPhi:
		return RhoPhi{Rho: a, Phi: b}
	default:
		panic(fmt.Sprintf("coords: unknown azimuthal kind %d", kind))
	}
}

// NewLongitudinal rebuilds a longitudinal component from a declared result
// kind and its raw element.
func NewLongitudinal(kind LongitudinalKind, c float64) Longitudinal {
	switch kind {
	case KindZ:
		return Z(c)
	case KindTheta:
		return Theta(c)
	case KindEta:
		return Eta(c)
	default:
		panic(fmt.Sprintf("coords: unknown longitudinal kind %d", kind))
	}
}

// NewTemporal rebuilds a temporal component from a declared result kind and
// its raw element.
func NewTemporal(kind TemporalKind, d float64) Temporal {
	switch kind {
	case KindT:
		return T(d)
	case KindTau:
		return Tau(d)
	default:
		panic(fmt.Sprintf("coords: unknown temporal kind %d", kind))
	}
}
