// Package raytrace turns a camera and a scene into pixels: ray–sphere
// intersection, local illumination with shadows, bounded recursive
// reflection, and the per-pixel frame loop.
package raytrace

import (
	"math"

	"sphere-raytracer/internal/mathutil"
	"sphere-raytracer/internal/scene"
)

const (
	// Epsilon offsets secondary rays off the surface they start on.
	Epsilon = 0.001
	// Inf is the "no hit" parameter and the unbounded ray length.
	Inf = 1e30
)

// Ray is a half-line. Direction does not have to be unit length.
type Ray struct {
	Origin    mathutil.Vec3
	Direction mathutil.Vec3
}

// At returns Origin + t·Direction.
func (r Ray) At(t float64) mathutil.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectRaySphere solves |origin + t·dir - center|² = radius² for t.
// Both roots are returned unordered; a miss yields (Inf, Inf).
func IntersectRaySphere(origin, dir mathutil.Vec3, s *scene.Sphere) (t1, t2 float64) {
	co := origin.Sub(s.Center)

	a := dir.Dot(dir)
	b := 2 * co.Dot(dir)
	c := co.Dot(co) - s.Radius*s.Radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return Inf, Inf
	}
	sq := math.Sqrt(disc)
	return (-b + sq) / (2 * a), (-b - sq) / (2 * a)
}

// ClosestIntersection returns the sphere with the smallest root strictly
// inside (tMin, tMax), or nil and Inf. Earlier spheres win ties.
func ClosestIntersection(sc *scene.Scene, origin, dir mathutil.Vec3, tMin, tMax float64) (*scene.Sphere, float64) {
	closestT := Inf
	var closest *scene.Sphere

	for i := range sc.Spheres {
		s := &sc.Spheres[i]
		t1, t2 := IntersectRaySphere(origin, dir, s)
		if t1 > tMin && t1 < tMax && t1 < closestT {
			closestT = t1
			closest = s
		}
		if t2 > tMin && t2 < tMax && t2 < closestT {
			closestT = t2
			closest = s
		}
	}
	return closest, closestT
}
