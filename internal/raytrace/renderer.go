package raytrace

import (
	"sphere-raytracer/internal/camera"
	"sphere-raytracer/internal/scene"
)

// DefaultDepth is the number of reflection bounces per primary ray.
const DefaultDepth = 3

// Options controls primary rays.
type Options struct {
	TMin  float64
	TMax  float64
	Depth int
}

// DefaultOptions returns the standard primary-ray settings.
func DefaultOptions() Options {
	return Options{
		TMin:  Epsilon,
		TMax:  Inf,
		Depth: DefaultDepth,
	}
}

// PixelColor traces the primary ray through pixel (x, y). It reads cam and sc
// but never writes them.
func PixelColor(cam *camera.Camera, sc *scene.Scene, x, y, width, height int, opts Options) scene.Color {
	dir := cam.CanvasToViewport(float64(x), float64(y), float64(width), float64(height))
	dir = cam.RotateViewport(dir)
	return TraceRay(sc, cam.Position, dir, opts.TMin, opts.TMax, opts.Depth)
}

// Render draws a full width×height frame into a freshly allocated buffer.
func Render(cam *camera.Camera, sc *scene.Scene, width, height int, opts Options) *FrameBuffer {
	fb := NewFrameBuffer(width, height)
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			fb.Set(x, y, PixelColor(cam, sc, x, y, width, height, opts))
		}
	}
	return fb
}
