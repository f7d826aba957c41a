// SPDX-License-Identifier: MIT
package coords

// Dispatch signatures: comparable keys identifying the coordinate-kind
// combination of an operation's operands. One kind per axis per operand,
// axes in canonical order (azimuthal, longitudinal, temporal), operand 1
// before operand 2. String forms appear verbatim in dispatch errors.

// AzimuthalPair keys binary planar operations.
type AzimuthalPair struct {
	A1, A2 AzimuthalKind
}

func (p AzimuthalPair) String() string {
	return p.A1.String() + " × " + p.A2.String()
}

// SpatialSig keys unary spatial operations.
type SpatialSig struct {
	Az  AzimuthalKind
	Lon LongitudinalKind
}

func (s SpatialSig) String() string {
	return s.Az.String() + "_" + s.Lon.String()
}

// SpatialPair keys binary spatial operations.
type SpatialPair struct {
	V1, V2 SpatialSig
}

func (p SpatialPair) String() string {
	return p.V1.String() + " × " + p.V2.String()
}

// LorentzSig keys unary Lorentz operations.
type LorentzSig struct {
	Az  AzimuthalKind
	Lon LongitudinalKind
	Tem TemporalKind
}

func (s LorentzSig) String() string {
	return s.Az.String() + "_" + s.Lon.String() + "_" + s.Tem.String()
}

// Spatial returns the signature of the spatial part, used when a Lorentz
// operation delegates to a spatial kernel.
func (s LorentzSig) Spatial() SpatialSig {
	return SpatialSig{Az: s.Az, Lon: s.Lon}
}

// LorentzPair keys binary Lorentz operations.
type LorentzPair struct {
	V1, V2 LorentzSig
}

func (p LorentzPair) String() string {
	return p.V1.String() + " × " + p.V2.String()
}

// BoostSig keys operations taking a Lorentz vector and a spatial parameter
// vector (a velocity 3-vector).
type BoostSig struct {
	V LorentzSig
	B SpatialSig
}

func (s BoostSig) String() string {
	return s.V.String() + " × " + s.B.String()
}

// SpatialSigs enumerates the full 2×3 unary cross-product in registration
// order. Fresh slice per call.
func SpatialSigs() []SpatialSig {
	sigs := make([]SpatialSig, 0, 6)
	for _, az := range AzimuthalKinds() {
		for _, lon := range LongitudinalKinds() {
			sigs = append(sigs, SpatialSig{Az: az, Lon: lon})
		}
	}

	return sigs
}

// LorentzSigs enumerates the full 2×3×2 unary cross-product in registration
// order.
func LorentzSigs() []LorentzSig {
	sigs := make([]LorentzSig, 0, 12)
	for _, az := range AzimuthalKinds() {
		for _, lon := range LongitudinalKinds() {
			for _, tem := range TemporalKinds() {
				sigs = append(sigs, LorentzSig{Az: az, Lon: lon, Tem: tem})
			}
		}
	}

	return sigs
}

// SigOfPlanar extracts the azimuthal kind of a live operand.
func SigOfPlanar(v Planar) AzimuthalKind {
	return v.Azimuthal().AzimuthalKind()
}

// SigOfSpatial extracts the (azimuthal, longitudinal) kind pair of a live
// operand.
func SigOfSpatial(v Spatial) SpatialSig {
	return SpatialSig{
		Az:  v.Azimuthal().AzimuthalKind(),
		Lon: v.Longitudinal().LongitudinalKind(),
	}
}

// SigOfLorentz extracts the full kind triple of a live operand.
func SigOfLorentz(v Lorentz) LorentzSig {
	return LorentzSig{
		Az:  v.Azimuthal().AzimuthalKind(),
		Lon: v.Longitudinal().LongitudinalKind(),
		Tem: v.Temporal().TemporalKind(),
	}
}
