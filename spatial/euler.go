// SPDX-License-Identifier: MIT
// Package spatial: intrinsic Euler rotations, one kernel per axis order.
// Angle convention: active rotation by (phi, theta, psi) applied in the
// order named, which is why every kernel negates the sines up front. The
// matrix entries follow the standard intrinsic-rotation expansions.

package spatial

import "github.com/katalvlaran/hepvec/mathlib"

// EulerOrder names one of the twelve intrinsic axis orders.
type EulerOrder string

// Proper Euler orders (first and third axis equal) and Tait-Bryan orders.
const (
	OrderXZX EulerOrder = "xzx"
	OrderXYX EulerOrder = "xyx"
	OrderYXY EulerOrder = "yxy"
	OrderYZY EulerOrder = "yzy"
	OrderZYZ EulerOrder = "zyz"
	OrderZXZ EulerOrder = "zxz"
	OrderXZY EulerOrder = "xzy"
	OrderXYZ EulerOrder = "xyz"
	OrderYXZ EulerOrder = "yxz"
	OrderYZX EulerOrder = "yzx"
	OrderZYX EulerOrder = "zyx"
	OrderZXY EulerOrder = "zxy"
)

// EulerOrders enumerates all twelve orders in registration order.
func EulerOrders() []EulerOrder {
	return []EulerOrder{
		OrderXZX, OrderXYX, OrderYXY, OrderYZY, OrderZYZ, OrderZXZ,
		OrderXZY, OrderXYZ, OrderYXZ, OrderYZX, OrderZYX, OrderZXY,
	}
}

// eulerTrig is the shared prologue: cosines of the three angles and the
// negated sines.
func eulerTrig(lib mathlib.Lib, phi, theta, psi float64) (c1, s1, c2, s2, c3, s3 float64) {
	c1 = lib.Cos(psi)
	s1 = -lib.Sin(psi)
	c2 = lib.Cos(theta)
	s2 = -lib.Sin(theta)
	c3 = lib.Cos(phi)
	s3 = -lib.Sin(phi)

	return c1, s1, c2, s2, c3, s3
}

func eulerXZX(lib mathlib.Lib, phi, theta, psi, x, y, z float64) (float64, float64, float64) {
	c1, s1, c2, s2, c3, s3 := eulerTrig(lib, phi, theta, psi)
	xp := c2*x + (-c3*s2)*y + (s2*s3)*z
	yp := (c1*s2)*x + (c1*c2*c3-s1*s3)*y + (-c3*s1-c1*c2*s3)*z
	zp := (s1*s2)*x + (c1*s3+c2*c3*s1)*y + (c1*c3-c2*s1*s3)*z

	return xp, yp, zp
}

func eulerXYX(lib mathlib.Lib, phi, theta, psi, x, y, z float64) (float64, float64, float64) {
	c1, s1, c2, s2, c3, s3 := eulerTrig(lib, phi, theta, psi)
	xp := c2*x + (s2*s3)*y + (c3*s2)*z
	yp := (s1*s2)*x + (c1*c3-c2*s1*s3)*y + (-c1*s3-c2*c3*s1)*z
	zp := (-c1*s2)*x + (c3*s1+c1*c2*s3)*y + (c1*c2*c3-s1*s3)*z

	return xp, yp, zp
}

func eulerYXY(lib mathlib.Lib, phi, theta, psi, x, y, z float64) (float64, float64, float64) {
	c1, s1, c2, s2, c3, s3 := eulerTrig(lib, phi, theta, psi)
	xp := (c1*c3-c2*s1*s3)*x + (s1*s2)*y + (c1*s3+c2*c3*s1)*z
	yp := (s2*s3)*x + c2*y + (-c3*s2)*z
	zp := (-c3*s1-c1*c2*s3)*x + (c1*s2)*y + (c1*c2*c3-s1*s3)*z

	return xp, yp, zp
}

func eulerYZY(lib mathlib.Lib, phi, theta, psi, x, y, z float64) (float64, float64, float64) {
	c1, s1, c2, s2, c3, s3 := eulerTrig(lib, phi, theta, psi)
	xp := (c1*c2*c3-s1*s3)*x + (-c1*s2)*y + (c3*s1+c1*c2*s3)*z
	yp := (c3*s2)*x + c2*y + (s2*s3)*z
	zp := (-c1*s3-c2*c3*s1)*x + (s1*s2)*y + (c1*c3-c2*s1*s3)*z

	return xp, yp, zp
}

func eulerZYZ(lib mathlib.Lib, phi, theta, psi, x, y, z float64) (float64, float64, float64) {
	c1, s1, c2, s2, c3, s3 := eulerTrig(lib, phi, theta, psi)
	xp := (c1*c2*c3-s1*s3)*x + (-c3*s1-c1*c2*s3)*y + (c1*s2)*z
	yp := (c1*s3+c2*c3*s1)*x + (c1*c3-c2*s1*s3)*y + (s1*s2)*z
	zp := (-c3*s2)*x + (s2*s3)*y + c2*z

	return xp, yp, zp
}

func eulerZXZ(lib mathlib.Lib, phi, theta, psi, x, y, z float64) (float64, float64, float64) {
	c1, s1, c2, s2, c3, s3 := eulerTrig(lib, phi, theta, psi)
	xp := (c1*c3-c2*s1*s3)*x + (-c1*s3-c2*c3*s1)*y + (s1*s2)*z
	yp := (c3*s1+c1*c2*s3)*x + (c1*c2*c3-s1*s3)*y + (-c1*s2)*z
	zp := (s2*s3)*x + (c3*s2)*y + c2*z

	return xp, yp, zp
}

func eulerXZY(lib mathlib.Lib, phi, theta, psi, x, y, z float64) (float64, float64, float64) {
	c1, s1, c2, s2, c3, s3 := eulerTrig(lib, phi, theta, psi)
	xp := (c2*c3)*x + (-s2)*y + (c2*s3)*z
	yp := (s1*s3+c1*c3*s2)*x + (c1*c2)*y + (c1*s2*s3-c3*s1)*z
	zp := (c3*s1*s2-c1*s3)*x + (c2*s1)*y + (c1*c3+s1*s2*s3)*z

	return xp, yp, zp
}

func eulerXYZ(lib mathlib.Lib, phi, theta, psi, x, y, z float64) (float64, float64, float64) {
	c1, s1, c2, s2, c3, s3 := eulerTrig(lib, phi, theta, psi)
	xp := (c2*c3)*x + (-c2*s3)*y + s2*z
	yp := (c1*s3+c3*s1*s2)*x + (c1*c3-s1*s2*s3)*y + (-c2*s1)*z
	zp := (s1*s3-c1*c3*s2)*x + (c3*s1+c1*s2*s3)*y + (c1*c2)*z

	return xp, yp, zp
}

func eulerYXZ(lib mathlib.Lib, phi, theta, psi, x, y, z float64) (float64, float64, float64) {
	c1, s1, c2, s2, c3, s3 := eulerTrig(lib, phi, theta, psi)
	xp := (c1*c3+s1*s2*s3)*x + (c3*s1*s2-c1*s3)*y + (c2*s1)*z
	yp := (c2*s3)*x + (c2*c3)*y + (-s2)*z
	zp := (c1*s2*s3-c3*s1)*x + (c1*c3*s2+s1*s3)*y + (c1*c2)*z

	return xp, yp, zp
}

func eulerYZX(lib mathlib.Lib, phi, theta, psi, x, y, z float64) (float64, float64, float64) {
	c1, s1, c2, s2, c3, s3 := eulerTrig(lib, phi, theta, psi)
	xp := (c1*c2)*x + (s1*s3-c1*c3*s2)*y + (c3*s1+c1*s2*s3)*z
	yp := s2*x + (c2*c3)*y + (-c2*s3)*z
	zp := (-c2*s1)*x + (c1*s3+c3*s1*s2)*y + (c1*c3-s1*s2*s3)*z

	return xp, yp, zp
}

func eulerZYX(lib mathlib.Lib, phi, theta, psi, x, y, z float64) (float64, float64, float64) {
	c1, s1, c2, s2, c3, s3 := eulerTrig(lib, phi, theta, psi)
	xp := (c1*c2)*x + (c1*s2*s3-c3*s1)*y + (s1*s3+c1*c3*s2)*z
	yp := (c2*s1)*x + (c1*c3+s1*s2*s3)*y + (c3*s1*s2-c1*s3)*z
	zp := (-s2)*x + (c2*s3)*y + (c2*c3)*z

	return xp, yp, zp
}

func eulerZXY(lib mathlib.Lib, phi, theta, psi, x, y, z float64) (float64, float64, float64) {
	c1, s1, c2, s2, c3, s3 := eulerTrig(lib, phi, theta, psi)
	xp := (c1*c3-s1*s2*s3)*x + (-c2*s1)*y + (c1*s3+c3*s1*s2)*z
	yp := (c3*s1+c1*s2*s3)*x + (c1*c2)*y + (s1*s3-c1*c3*s2)*z
	zp := (-c2*s3)*x + s2*y + (c2*c3)*z

	return xp, yp, zp
}

// eulerNative maps each order to its Cartesian kernel.
func eulerNative(order EulerOrder) EulerKernel {
	switch order {
	case OrderXZX:
		return eulerXZX
	case OrderXYX:
		return eulerXYX
	case OrderYXY:
		return eulerYXY
	case OrderYZY:
		return eulerYZY
	case OrderZYZ:
		return eulerZYZ
	case OrderZXZ:
		return eulerZXZ
	case OrderXZY:
		return eulerXZY
	case OrderXYZ:
		return eulerXYZ
	case OrderYXZ:
		return eulerYXZ
	case OrderYZX:
		return eulerYZX
	case OrderZYX:
		return eulerZYX
	default:
		return eulerZXY
	}
}
