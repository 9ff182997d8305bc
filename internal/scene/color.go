package scene

import "math"

// Color is an RGBA color with channels conceptually in [0,1].
// Arithmetic never clamps; see ToRGBA8 for the 8-bit policy.
type Color struct {
	R, G, B, A float64
}

var (
	Black  = Color{0, 0, 0, 1}
	White  = Color{1, 1, 1, 1}
	Red    = Color{1, 0, 0, 1}
	Green  = Color{0, 1, 0, 1}
	Blue   = Color{0, 0, 1, 1}
	Yellow = Color{1, 1, 0, 1}
)

// Scale multiplies the RGB channels by k. Alpha is kept.
func (c Color) Scale(k float64) Color {
	return Color{c.R * k, c.G * k, c.B * k, c.A}
}

// Mix blends c toward o by t, channel by channel: c·(1-t) + o·t.
func (c Color) Mix(o Color, t float64) Color {
	return Color{
		R: c.R*(1-t) + o.R*t,
		G: c.G*(1-t) + o.G*t,
		B: c.B*(1-t) + o.B*t,
		A: c.A,
	}
}

// ToRGBA8 converts to 8-bit channels. Values are scaled by 255, truncated,
// and saturated to [0,255]; alpha is always opaque.
func (c Color) ToRGBA8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), 255
}

func to8(v float64) uint8 {
	v *= 255
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
