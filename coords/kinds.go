// SPDX-License-Identifier: MIT
package coords

// AzimuthalKind selects the parameterization of the in-plane axis.
type AzimuthalKind uint8

const (
	// KindXY — Cartesian components (x, y).
	KindXY AzimuthalKind = iota
	// KindRhoPhi — polar components (rho, phi), rho ≥ 0, phi ∈ (−π, π].
	KindRhoPhi
)

// String returns the lowercase tag used in signatures and error messages.
func (k AzimuthalKind) String() string {
	switch k {
	case KindXY:
		return "xy"
	case KindRhoPhi:
		return "rhophi"
	default:
		return "azimuthal(?)"
	}
}

// LongitudinalKind selects the parameterization of the out-of-plane axis.
type LongitudinalKind uint8

const (
	// KindZ — Cartesian z component.
	KindZ LongitudinalKind = iota
	// KindTheta — polar angle θ ∈ [0, π] measured from the +z axis.
	KindTheta
	// KindEta — pseudorapidity η = −ln tan(θ/2).
	KindEta
)

func (k LongitudinalKind) String() string {
	switch k {
	case KindZ:
		return "z"
	case KindTheta:
		return "theta"
	case KindEta:
		return "eta"
	default:
		return "longitudinal(?)"
	}
}

// TemporalKind selects the parameterization of the time-like axis.
type TemporalKind uint8

const (
	// KindT — coordinate time (energy, for momentum vectors).
	KindT TemporalKind = iota
	// KindTau — proper time (invariant mass); sign encodes spacelike vs
	// timelike separation.
	KindTau
)

func (k TemporalKind) String() string {
	switch k {
	case KindT:
		return "t"
	case KindTau:
		return "tau"
	default:
		return "temporal(?)"
	}
}

// ScalarKind declares the result of a scalar-valued kernel in a dispatch
// entry, mirroring the per-axis kind declarations of vector-valued kernels.
type ScalarKind uint8

const (
	// Float — a numeric scalar result.
	Float ScalarKind = iota
	// Bool — a predicate result.
	Bool
)

func (k ScalarKind) String() string {
	if k == Bool {
		return "bool"
	}

	return "float"
}

// AzimuthalKinds lists every azimuthal kind in registration order.
// The returned slice is fresh on every call; callers may mutate it.
func AzimuthalKinds() []AzimuthalKind {
	return []AzimuthalKind{KindXY, KindRhoPhi}
}

// LongitudinalKinds lists every longitudinal kind in registration order.
func LongitudinalKinds() []LongitudinalKind {
	return []LongitudinalKind{KindZ, KindTheta, KindEta}
}

// TemporalKinds lists every temporal kind in registration order.
func TemporalKinds() []TemporalKind {
	return []TemporalKind{KindT, KindTau}
}
