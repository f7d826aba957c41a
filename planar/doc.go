// Package planar implements the 2D operations of hepvec: everything that
// depends only on a vector's azimuthal axis.
//
// 🚀 Operations
//
//	Coordinates:  X, Y, Rho, Rho2, Phi
//	New vectors:  Add, Subtract, Scale, Unit, RotateZ, Transform2D
//	Scalars:      Dot, DeltaPhi
//	Predicates:   Equal, NotEqual, IsClose, IsParallel, IsAntiparallel,
//	              IsPerpendicular
//
// Every operation dispatches on the operands' azimuthal kind (xy or
// rhophi). Native kernels are hand-written for the Cartesian combination
// and for same-kind polar specializations (a polar dot product never leaves
// polar coordinates); the remaining combinations are synthesized at init
// time by composing the x/y conversion kernels with the native kernel.
//
// Spatial and Lorentz vectors are valid operands for every function here —
// planar operations simply ignore the other axes.
//
// ⚙️ Usage:
//
//	d, err := planar.Dot(v1, v2)          // scalar
//	az, err := planar.RotateZ(v, math.Pi) // coords.Azimuthal result
//
// Errors are limited to dispatch.ErrUnsupportedSignature (impossible for
// vectors built from coords kinds — the cross-product is fully registered)
// and dispatch.ErrBackendMismatch on binary operations.
package planar
