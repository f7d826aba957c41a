// SPDX-License-Identifier: MIT
package coords

import "github.com/katalvlaran/hepvec/mathlib"

// Planar is the accessor contract for any object with an azimuthal axis.
// Operations read the backend and the per-axis components through these
// methods only; how the object stores them is its own business.
type Planar interface {
	// Lib returns the object's math backend. Implementations must return
	// comparable, stateless values so binary operations can verify both
	// operands share a backend.
	Lib() mathlib.Lib
	Azimuthal() Azimuthal
}

// Spatial is the accessor contract for objects with azimuthal and
// longitudinal axes. Every Spatial is also a valid operand for planar
// operations.
type Spatial interface {
	Planar
	Longitudinal() Longitudinal
}

// Lorentz is the accessor contract for objects with all three axes. Every
// Lorentz is also a valid operand for planar and spatial operations.
type Lorentz interface {
	Spatial
	Temporal() Temporal
}
