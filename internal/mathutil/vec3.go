package mathutil

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3 = mgl64.Vec3

// V3 builds a Vec3 from its components.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Neg returns -v.
func Neg(v Vec3) Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Reflect mirrors v about n: 2n(n·v) - v.
// n is expected to be unit length.
func Reflect(v, n Vec3) Vec3 {
	return n.Mul(2 * n.Dot(v)).Sub(v)
}

// Unit divides v by its magnitude. A zero vector yields NaN components.
func Unit(v Vec3) Vec3 {
	return v.Mul(1 / v.Len())
}
