// Package mathlib defines the elementary math interface ("lib") that every
// compute kernel in hepvec calls through, plus the concrete scalar backends.
//
// 🚀 What is a lib?
//
//	Kernels in planar/, spatial/ and lorentz/ are straight-line arithmetic:
//	no branches, no loops, and no direct calls into the standard library.
//	Every elementary function they need — trig, hyperbolics, sqrt, sign,
//	NaN substitution, tolerant comparison — comes from the Lib interface
//	passed as the kernel's first argument. The same kernel source therefore
//	runs unmodified against any backend that satisfies Lib.
//
// ✨ Backends:
//   - Float64 — IEEE double precision via the math package; the default
//   - Float32 — single-precision evaluation (results widened to float64);
//     useful where a deliberately distinct backend is needed
//
// Backend identity matters: binary operations refuse to mix vectors whose
// Lib values differ (see dispatch.SharedLib). Implementations must be
// stateless comparable values so that interface equality is meaningful.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hepvec/mathlib"
//
//	lib := mathlib.Default          // Float64{}
//	r := lib.Sqrt(x*x + y*y)
package mathlib
