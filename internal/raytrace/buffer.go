package raytrace

import (
	"image"

	"sphere-raytracer/internal/scene"
)

// FrameBuffer holds a rendered frame as a flat slice for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8 // RGBA interleaved, len = W*H*4, row-major top to bottom
}

// NewFrameBuffer allocates a zeroed color buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, w*h*4),
	}
}

// Set writes c at (x, y) using the 8-bit conversion of scene.Color.
func (fb *FrameBuffer) Set(x, y int, c scene.Color) {
	i := (y*fb.Width + x) * 4
	fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3] = c.ToRGBA8()
}

// At returns the stored bytes of pixel (x, y).
func (fb *FrameBuffer) At(x, y int) (r, g, b, a uint8) {
	i := (y*fb.Width + x) * 4
	return fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3]
}

// Image wraps the buffer as an *image.RGBA without copying. Alpha is always
// opaque, so RGBA and NRGBA coincide.
func (fb *FrameBuffer) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    fb.Color,
		Stride: fb.Width * 4,
		Rect:   image.Rect(0, 0, fb.Width, fb.Height),
	}
}
