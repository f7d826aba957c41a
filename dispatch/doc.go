// Package dispatch implements the kind-tuple → kernel lookup at the heart
// of hepvec.
//
// 🚀 How dispatch works
//
//	Every operation owns a Table keyed by its operands' coordinate-kind
//	signature (see coords). Tables are populated exactly once, during
//	package initialization: first the hand-written native kernels, then a
//	generation pass that fills the remaining kind combinations with
//	synthesized conversion wrappers. After init the tables are read-only,
//	so concurrent lookups need no synchronization.
//
//	Resolution is an exact-match map lookup — O(1), no fallback search, no
//	fuzzy matching. A missing signature is an error naming the operation
//	and the exact combination (the combination space is finite and fully
//	enumerated, so a miss is either an unsupported extension or a
//	registration bug, never something to retry).
//
// ⚙️ Contract:
//
//	tbl := dispatch.NewTable[coords.SpatialSig, magKernel, coords.ScalarKind]("spatial.mag")
//	tbl.Register(sig, kernel, coords.Float)     // init time; panics on duplicates
//	fn, ret, err := tbl.Resolve(sig)            // call time; ErrUnsupportedSignature on miss
//
// Errors:
//   - ErrUnsupportedSignature — no entry for the requested kind combination.
//   - ErrBackendMismatch — binary operation invoked across two different
//     math backends (see SharedLib); never silently coerced.
package dispatch
