// Package spatial implements the 3D operations of hepvec: everything that
// depends on a vector's azimuthal and longitudinal axes.
//
// 🚀 Operations
//
//	Coordinates:  Z, Theta, Eta, CosTheta, CotTheta, Mag, Mag2
//	New vectors:  Add, Subtract, Scale, Unit, Cross, RotateX, RotateY,
//	              RotateAxis, RotateEuler, RotateQuaternion, Transform3D
//	Scalars:      Dot, DeltaAngle, DeltaEta, DeltaR, DeltaR2
//	Predicates:   Equal, NotEqual, IsClose, IsParallel, IsAntiparallel,
//	              IsPerpendicular
//
// Dispatch keys are (azimuthal, longitudinal) kind pairs: 6 unary
// signatures, 36 binary. Native kernels cover the Cartesian xy_z forms and
// cheap same-kind specializations; the rest of the cross-product is
// synthesized at init by composing per-axis converters with the natives.
// Rotations and transforms always return xy_z components unless the operand
// is already Cartesian-native.
//
// RotateZ lives in package planar: it touches only the azimuthal axis and
// applies to spatial vectors through interface embedding, as does every
// other planar operation.
//
// Degenerate inputs follow fixed substitution rules rather than erroring:
// the zero vector's Unit is zero, Eta of a purely transverse vector is 0,
// CotTheta of a vector on the beamline is ±Inf.
package spatial
