// Package hepvec is a multi-coordinate-system vector algebra library for
// physics computations: 2D planar, 3D spatial and 4D Lorentz vectors.
//
// 🚀 What is hepvec?
//
//	A library where every geometric and kinematic operation — dot products,
//	rotations, boosts, distance metrics, coordinate conversions — is written
//	exactly once for a canonical ("native") coordinate combination, and
//	extended to every other combination by composing per-axis conversion
//	kernels, resolved at call time from the operands' coordinate kinds:
//	  • Azimuthal:     Cartesian XY or polar RhoPhi
//	  • Longitudinal:  z, polar angle θ, or pseudorapidity η
//	  • Temporal:      coordinate time t or proper time τ
//
// ✨ Why choose hepvec?
//
//   - Exhaustive by construction – every kind combination (2×3×2 per vector,
//     and their pairwise products for binary operations) is enumerated and
//     registered at init time; an unsupported combination is a descriptive
//     error, never a silent fallback
//   - Backend-agnostic kernels – straight-line arithmetic plus a small
//     elementary-math interface (mathlib.Lib); plug in a different backend
//     without touching a single kernel
//   - Well-defined degenerate values – division by zero, η at zero transverse
//     momentum, negative mass-squared: each has an explicit numeric policy
//     instead of an exception
//   - Pure Go – no cgo, the only dependency is testify (tests)
//
// Under the hood, everything is organized under these subpackages:
//
//	mathlib/  — the elementary math interface every kernel computes through
//	coords/   — coordinate-kind tags, component types, dispatch signatures
//	dispatch/ — the kind-tuple → kernel lookup table and resolver
//	planar/   — 2D operations (azimuthal axis)
//	spatial/  — 3D operations (azimuthal + longitudinal axes)
//	lorentz/  — 4D operations (azimuthal + longitudinal + temporal axes)
//	vec/      — concrete Vector2 / Vector3 / Vector4 value types
//
// Quick example:
//
//	p := vec.XYZT(3, 4, 10, 20)
//	p.Mass()      // invariant mass, sqrt(t² − x² − y² − z²)
//	p.BoostZ(0.5) // same vector in a frame moving along z
//
//	go get github.com/katalvlaran/hepvec
package hepvec
