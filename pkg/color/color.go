// Package color decodes hexadecimal color strings into RGBA values and
// produces random colors for the viewer.
package color

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Opaque is the alpha value every parsed color carries.
const Opaque uint8 = 0xFF

// Color is a four channel 8-bit color. Parsed colors are always opaque.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color from the three channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: Opaque}
}

// RGBA implements image/color.Color. Alpha is premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A) * 0x101
	r = uint32(c.R) * 0x101 * a / 0xffff
	g = uint32(c.G) * 0x101 * a / 0xffff
	b = uint32(c.B) * 0x101 * a / 0xffff
	return r, g, b, a
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// Contrast returns black or white, whichever reads better on top of c.
func (c Color) Contrast() Color {
	l, _, _ := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Lab()
	if l > 0.6 {
		return RGB(0, 0, 0)
	}
	return RGB(0xFF, 0xFF, 0xFF)
}
