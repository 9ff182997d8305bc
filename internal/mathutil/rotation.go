package mathutil

import "math"

// RotateY rotates v around the Y axis by angle radians, acting on (x, z):
//
//	x' = x·cos(a) - z·sin(a)
//	z' = x·sin(a) + z·cos(a)
//
// Y is left untouched.
func RotateY(v Vec3, angle float64) Vec3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec3{
		v[0]*c - v[2]*s,
		v[1],
		v[0]*s + v[2]*c,
	}
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
