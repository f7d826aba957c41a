// Package vec provides the concrete vector objects of hepvec: Vector2,
// Vector3 and Vector4 value types holding scalar components in any
// coordinate-kind combination.
//
// 🧭 Shape of the layer
//
//	Each type stores its math backend plus one component pair/triple/
//	quadruple from package coords, so a vector remembers the representation
//	it was built in. Methods are thin glue over the operation functions in
//	planar, spatial and lorentz: extract, dispatch, re-wrap. The result of a
//	vector-valued method is a new value in whatever representation the
//	operation's result rule declares.
//
// Construction goes through the parameterized constructors:
//
//	v := vec.XYZ(1, 2, 3)
//	p := vec.PtEtaPhiM(50, 1.2, 0.4, 0.105)
//	w := vec.RhoPhi(2, math.Pi/3, vec.WithLib(mathlib.Float32{}))
//
// Binary methods panic on a backend mismatch: mixing backends is a
// programmer error at this layer. Callers who need the sentinel error
// instead should use the operation functions directly.
//
// Tolerance-taking predicates default to DefaultTolerance (angular
// predicates) and DefaultRtol/DefaultAtol (IsClose); pass explicit values
// to override per call.
package vec
