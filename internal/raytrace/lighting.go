package raytrace

import (
	"math"

	"sphere-raytracer/internal/mathutil"
	"sphere-raytracer/internal/scene"
)

// ComputeLighting returns the light intensity reaching point from every light
// in the scene: ambient plus, for unoccluded point and directional lights,
// the diffuse and specular terms. view points from the surface back toward
// the viewer. The result is not bounded above.
//
// Zero-length normal or light vectors divide by zero; callers never pass them.
func ComputeLighting(sc *scene.Scene, point, normal, view mathutil.Vec3, specular float64) float64 {
	intensity := 0.0

	for _, l := range sc.Lights {
		var (
			lightDir mathutil.Vec3
			tMax     float64
			strength float64
		)
		switch l := l.(type) {
		case scene.AmbientLight:
			intensity += l.Intensity
			continue
		case scene.PointLight:
			lightDir = l.Position.Sub(point)
			tMax = 1
			strength = l.Intensity
		case scene.DirectionalLight:
			lightDir = l.Direction
			tMax = Inf
			strength = l.Intensity
		default:
			continue
		}

		// Shadow
		if blocker, _ := ClosestIntersection(sc, point, lightDir, Epsilon, tMax); blocker != nil {
			continue
		}

		// Diffuse
		nDotL := normal.Dot(lightDir)
		if nDotL > 0 {
			intensity += strength * nDotL / (normal.Len() * lightDir.Len())
		}

		// Specular
		if specular != scene.NoSpecular {
			r := normal.Mul(2 * nDotL).Sub(lightDir)
			rDotV := r.Dot(view)
			if rDotV > 0 {
				intensity += strength * math.Pow(rDotV/(r.Len()*view.Len()), specular)
			}
		}
	}
	return intensity
}
