package raytrace

import (
	"sphere-raytracer/internal/mathutil"
	"sphere-raytracer/internal/scene"
)

// Background is returned for rays that hit nothing.
var Background = scene.Black

// TraceRay resolves the ray origin + t·dir, t in (tMin, tMax), to a color.
// Reflective surfaces spawn a reflected ray while depth > 0.
func TraceRay(sc *scene.Scene, origin, dir mathutil.Vec3, tMin, tMax float64, depth int) scene.Color {
	s, t := ClosestIntersection(sc, origin, dir, tMin, tMax)
	if s == nil {
		return Background
	}

	point := origin.Add(dir.Mul(t))
	normal := mathutil.Unit(point.Sub(s.Center))
	view := mathutil.Neg(dir)

	local := s.Color.Scale(ComputeLighting(sc, point, normal, view, s.Specular))

	r := s.Reflective
	if depth <= 0 || r <= 0 {
		return local
	}

	reflected := TraceRay(sc, point, mathutil.Reflect(view, normal), Epsilon, tMax, depth-1)
	return local.Mix(reflected, r)
}
