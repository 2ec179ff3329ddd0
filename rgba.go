package picker

import "image/color"

// RGBA is a raw paint color with red, green, blue, and alpha components,
// each in the range [0, 1]. It carries no polar model; the pixel-level
// operations (Pixmap, markers, checkerboards) use it directly.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque paint color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// NRGBA converts RGBA to the standard non-premultiplied 8-bit form,
// quantizing each component with the same rounding rule as Color.Pixel.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: u8(c.R), G: u8(c.G), B: u8(c.B), A: u8(c.A)}
}

// RGBA implements color.Color.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common paint colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)
