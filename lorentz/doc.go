// Package lorentz implements the 4D operations of hepvec: everything that
// depends on a vector's temporal axis, with the Minkowski metric
// (+,−,−,−).
//
// 🚀 Operations
//
//	Coordinates:  T, T2, Tau, Tau2, Beta, Gamma, Rapidity, Et, Et2, Mt, Mt2
//	New vectors:  Add, Subtract, Scale, Unit, ToBeta3, BoostX/Y/Z (beta and
//	              gamma forms), BoostBeta3, BoostP4, Transform4D
//	Scalars:      Dot, DeltaRapidityPhi, DeltaRapidityPhi2
//	Predicates:   Equal, NotEqual, IsClose, IsTimelike, IsSpacelike,
//	              IsLightlike
//
// Dispatch keys are full kind triples: 12 unary signatures, 144 binary.
// Everything is generated at init by composing the temporal converters with
// the spatial and planar kernels; the temporal axis has only two kinds (t,
// tau) and the conversion between them runs through tau² = t² − mag².
//
// Proper time is SIGNED: tau = copysign(sqrt(|tau²|), tau²), so spacelike
// vectors carry a negative tau instead of a NaN. Mt² on the tau branch is
// clamped at zero. Gamma of a lightlike vector is +Inf, Beta of the zero
// vector is 0.
//
// Planar and spatial operations apply to Lorentz vectors through interface
// embedding.
package lorentz
