package core

import "image/color"

// Color is a non-premultiplied RGBA colour.
type Color struct {
	R, G, B, A uint8
}

var (
	White = Color{R: 255, G: 255, B: 255, A: 255}
	Black = Color{A: 255}
)

// Hex builds a colour from a 0xAARRGGBB value. A zero alpha byte is treated
// as opaque so 0xRRGGBB literals work as expected.
func Hex(v uint32) Color {
	c := Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: uint8(v >> 24),
	}
	if c.A == 0 {
		c.A = 255
	}
	return c
}

// FromColor converts any image/color value.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Apply makes c the current draw colour of g.
func (c Color) Apply(g Graphics) { g.Color(c) }

// Darken scales the RGB channels by factor, keeping alpha.
func (c Color) Darken(factor float64) Color {
	return Color{
		R: scaleComponent(c.R, factor),
		G: scaleComponent(c.G, factor),
		B: scaleComponent(c.B, factor),
		A: c.A,
	}
}

// Floats returns the channels normalised to [0,1].
func (c Color) Floats() (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}

func scaleComponent(value uint8, factor float64) uint8 {
	scaled := float64(value) * factor
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
