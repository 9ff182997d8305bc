// Package scene holds the immutable world a frame is rendered from:
// spheres with their materials and the lights shining on them.
package scene

import (
	"fmt"
	"sort"

	"sphere-raytracer/internal/mathutil"
)

// NoSpecular marks a material without a specular highlight.
const NoSpecular = -1.0

// Sphere is a sphere together with its material.
type Sphere struct {
	Center     mathutil.Vec3
	Radius     float64
	Color      Color
	Specular   float64 // shininess exponent, NoSpecular disables it
	Reflective float64 // 0..1
}

// Light is one of AmbientLight, PointLight or DirectionalLight.
type Light interface {
	light()
}

// AmbientLight lights every point equally.
type AmbientLight struct {
	Intensity float64
}

// PointLight radiates from Position.
type PointLight struct {
	Intensity float64
	Position  mathutil.Vec3
}

// DirectionalLight arrives from infinitely far away. Direction points from
// the surface toward the light and need not be unit length.
type DirectionalLight struct {
	Intensity float64
	Direction mathutil.Vec3
}

func (AmbientLight) light()     {}
func (PointLight) light()       {}
func (DirectionalLight) light() {}

// Scene is an ordered list of spheres and lights. It is built once and then
// shared read-only.
type Scene struct {
	Spheres []Sphere
	Lights  []Light
}

var presets = map[string]func() *Scene{
	"default":   Default,
	"no-ground": NoGround,
}

// Preset returns the named built-in scene.
func Preset(name string) (*Scene, error) {
	build, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("scene: unknown preset %q (have %v)", name, PresetNames())
	}
	return build(), nil
}

// PresetNames lists the built-in scenes in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Default is three colored unit spheres standing on a large yellow ground
// sphere, lit by ambient, point and directional lights.
func Default() *Scene {
	return &Scene{
		Spheres: []Sphere{
			{Center: mathutil.V3(0, -1, 3), Radius: 1, Color: Red, Specular: 500, Reflective: 0.2},
			{Center: mathutil.V3(2, 0, 4), Radius: 1, Color: Blue, Specular: 500, Reflective: 0.3},
			{Center: mathutil.V3(-2, 0, 4), Radius: 1, Color: Green, Specular: 10, Reflective: 0.4},
			{Center: mathutil.V3(0, -5001, 0), Radius: 5000, Color: Yellow, Specular: 1000, Reflective: 0.5},
		},
		Lights: defaultLights(),
	}
}

// NoGround is Default without the ground sphere.
func NoGround() *Scene {
	s := Default()
	s.Spheres = s.Spheres[:3]
	return s
}

func defaultLights() []Light {
	return []Light{
		AmbientLight{Intensity: 0.2},
		PointLight{Intensity: 0.6, Position: mathutil.V3(2, 1, 0)},
		DirectionalLight{Intensity: 0.2, Direction: mathutil.V3(1, 4, 4)},
	}
}
