package particles

import "image/color"

// Color is an RGBA color with float32 channels in [0, 1]. Channels are
// interpolated independently, so keyframe blends are exact per channel.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a Color with the given channel values.
func NewColor(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Faded returns the color with its alpha scaled by 1 - current/total,
// used for particle fade-out over its decay window.
func (c Color) Faded(current, total float32) Color {
	if total <= 0 {
		c.A = 0
		return c
	}
	c.A *= 1 - current/total
	return c
}

// NRGBA converts to 8-bit non-premultiplied RGBA, clamping each channel.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: clampByte(c.R),
		G: clampByte(c.G),
		B: clampByte(c.B),
		A: clampByte(c.A),
	}
}

func clampByte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v * 255)
	}
}

// A small palette for presets and demos.
var (
	White   = Color{1, 1, 1, 1}
	Black   = Color{0, 0, 0, 1}
	Red     = Color{1, 0, 0, 1}
	Green   = Color{0, 1, 0, 1}
	Blue    = Color{0, 0, 1, 1}
	SkyBlue = Color{0.4, 0.7, 1, 1}
	Pink    = Color{1, 0.45, 0.8, 1}
	Purple  = Color{0.6, 0.2, 0.9, 1}
	Violet  = Color{0.55, 0.35, 1, 1}
	Orange  = Color{1, 0.6, 0.1, 1}
	Yellow  = Color{1, 0.9, 0.2, 1}
	Cyan    = Color{0, 1, 1, 1}
)

var palette = map[string]Color{
	"white":   White,
	"black":   Black,
	"red":     Red,
	"green":   Green,
	"blue":    Blue,
	"skyblue": SkyBlue,
	"pink":    Pink,
	"purple":  Purple,
	"violet":  Violet,
	"orange":  Orange,
	"yellow":  Yellow,
	"cyan":    Cyan,
}

// ColorByName looks up a palette color by its lowercase name.
func ColorByName(name string) (Color, bool) {
	c, ok := palette[name]
	return c, ok
}
