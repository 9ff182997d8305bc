package raytrace

import (
	"testing"

	"sphere-raytracer/internal/mathutil"
	"sphere-raytracer/internal/scene"
)

func TestTraceRayMissReturnsBackground(t *testing.T) {
	sc := redBallScene(0)
	got := TraceRay(sc, mathutil.V3(0, 0, 0), mathutil.V3(0, 1, 0), Epsilon, Inf, DefaultDepth)
	if got != scene.Black {
		t.Fatalf("miss = %v, want opaque black", got)
	}
	if got.A != 1 {
		t.Fatalf("background alpha = %v, want 1", got.A)
	}
}

func TestTraceRayLocalColor(t *testing.T) {
	sc := redBallScene(0)
	got := TraceRay(sc, mathutil.V3(0, 0, 0), mathutil.V3(0, 0, 1), Epsilon, Inf, DefaultDepth)
	if !colorEqual(got, scene.Red) {
		t.Fatalf("got %v, want pure red", got)
	}
}

func TestTraceRayDepthTermination(t *testing.T) {
	sc := redBallScene(1)
	origin := mathutil.V3(0, 0, 0)
	dir := mathutil.V3(0, 0, 1)

	// No budget left: the mirror shows its own shaded color.
	if got := TraceRay(sc, origin, dir, Epsilon, Inf, 0); !colorEqual(got, scene.Red) {
		t.Errorf("depth 0 = %v, want local red", got)
	}
	// One bounce: the reflection points back at the empty sky.
	if got := TraceRay(sc, origin, dir, Epsilon, Inf, 1); !colorEqual(got, scene.Black) {
		t.Errorf("depth 1 = %v, want black reflection", got)
	}
}

func TestTraceRayBlendsMatchingChannels(t *testing.T) {
	sc := &scene.Scene{
		Spheres: []scene.Sphere{
			{Center: mathutil.V3(0, 0, 3), Radius: 1, Color: scene.Red, Specular: scene.NoSpecular, Reflective: 0.5},
			// Behind the viewer, only reachable by the reflected ray.
			{Center: mathutil.V3(0, 0, -3), Radius: 1, Color: scene.Green, Specular: scene.NoSpecular},
		},
		Lights: []scene.Light{scene.AmbientLight{Intensity: 1}},
	}
	got := TraceRay(sc, mathutil.V3(0, 0, 0), mathutil.V3(0, 0, 1), Epsilon, Inf, 1)
	want := scene.Color{R: 0.5, G: 0.5, B: 0, A: 1}
	if !colorEqual(got, want) {
		t.Fatalf("blend = %v, want %v", got, want)
	}
}

func TestTraceRayNonReflectiveIgnoresDepth(t *testing.T) {
	sc := redBallScene(0)
	a := TraceRay(sc, mathutil.V3(0, 0, 0), mathutil.V3(0.1, 0.1, 1), Epsilon, Inf, 0)
	b := TraceRay(sc, mathutil.V3(0, 0, 0), mathutil.V3(0.1, 0.1, 1), Epsilon, Inf, 10)
	if a != b {
		t.Fatalf("depth changed a matte result: %v vs %v", a, b)
	}
}
