package raytrace

import (
	"math"

	"sphere-raytracer/internal/mathutil"
	"sphere-raytracer/internal/scene"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func colorEqual(a, b scene.Color) bool {
	return almostEqual(a.R, b.R) && almostEqual(a.G, b.G) && almostEqual(a.B, b.B) && almostEqual(a.A, b.A)
}

// redBallScene is a single matte red unit sphere three units ahead, lit only
// by a full-strength ambient light.
func redBallScene(reflective float64) *scene.Scene {
	return &scene.Scene{
		Spheres: []scene.Sphere{
			{Center: mathutil.V3(0, 0, 3), Radius: 1, Color: scene.Red, Specular: scene.NoSpecular, Reflective: reflective},
		},
		Lights: []scene.Light{scene.AmbientLight{Intensity: 1}},
	}
}
