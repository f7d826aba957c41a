// Package coords defines the coordinate-kind tags, the raw component types,
// and the dispatch signatures that drive kernel resolution across hepvec.
//
// 🚀 The model
//
//	A vector has up to three independent axes, always in this canonical
//	order: azimuthal (in-plane direction), longitudinal (out-of-plane),
//	temporal (time-like). Each axis can be parameterized in a small, closed
//	set of kinds:
//	  • AzimuthalKind:    KindXY | KindRhoPhi
//	  • LongitudinalKind: KindZ | KindTheta | KindEta
//	  • TemporalKind:     KindT | KindTau
//
// Kinds are pure dispatch keys — immutable, enumerable, never carrying data.
// The data lives in component values (XY, RhoPhi, Z, Theta, Eta, T, Tau)
// which report their kind and their ordered raw elements.
//
// Signatures (SpatialSig, LorentzSig and the pair types) are the comparable
// keys dispatch tables are indexed by: one kind per axis per operand,
// operand 1 before operand 2. Their String forms appear verbatim in
// dispatch errors, e.g. "rhophi_theta_tau".
//
// The Planar / Spatial / Lorentz interfaces are the accessor contract any
// object must satisfy to participate in dispatch: expose a mathlib.Lib and
// the per-axis components. The vec package provides the concrete
// scalar-backed implementation.
package coords
