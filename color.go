package picker

import (
	"image/color"
	"math"
)

// Model identifies which polar representation a Color keeps
// authoritative alongside RGB.
type Model uint8

const (
	// HSV stores hue, saturation, and value.
	HSV Model = iota
	// HSL stores hue, saturation, and lightness.
	HSL
)

// String returns the lowercase model name.
func (m Model) String() string {
	if m == HSL {
		return "hsl"
	}
	return "hsv"
}

// Color is a color held simultaneously in RGB and one polar model, plus
// alpha. The two representations never disagree: every polar mutation
// recomputes the full RGB triple from the full polar triple, so a hue
// set on black survives until saturation and value make it visible
// again.
//
// Components are unit-interval floats with hue as a turn in [0, 1).
// Out-of-range values are accepted and carried through unclamped;
// clamping happens at quantization (Pixel) and at pointer mapping, not
// here.
//
// Color is a plain value. Copy it freely; mutate through the pointer
// setters.
type Color struct {
	r, g, b float64
	h, s    float64
	vl      float64 // value under HSV, lightness under HSL
	a       float64
	model   Model
}

// FromHSV constructs a Color from hue, saturation, value, and alpha.
func FromHSV(h, s, v, a float64) Color {
	r, g, b := hsvToRGB(h, s, v)
	return Color{r: r, g: g, b: b, h: h, s: s, vl: v, a: a, model: HSV}
}

// FromHSL constructs a Color from hue, saturation, lightness, and
// alpha.
func FromHSL(h, s, l, a float64) Color {
	r, g, b := hslToRGB(h, s, l)
	return Color{r: r, g: g, b: b, h: h, s: s, vl: l, a: a, model: HSL}
}

// FromRGB constructs a Color from red, green, blue, and alpha. The
// polar side is derived through RGB to HSV, so the result is an
// HSV-model color; use As to retag.
func FromRGB(r, g, b, a float64) Color {
	h, s, v := rgbToHSV(r, g, b)
	return Color{r: r, g: g, b: b, h: h, s: s, vl: v, a: a, model: HSV}
}

// RGB returns the red, green, and blue components.
func (c Color) RGB() (r, g, b float64) {
	return c.r, c.g, c.b
}

// HSV returns the hue, saturation, and value components, converting
// from the stored HSL triple when that is the model.
func (c Color) HSV() (h, s, v float64) {
	if c.model == HSL {
		return hslToHSV(c.h, c.s, c.vl)
	}
	return c.h, c.s, c.vl
}

// HSL returns the hue, saturation, and lightness components, converting
// from the stored HSV triple when that is the model.
func (c Color) HSL() (h, s, l float64) {
	if c.model == HSV {
		return hsvToHSL(c.h, c.s, c.vl)
	}
	return c.h, c.s, c.vl
}

// Hue returns the hue as a turn in [0, 1). The stored hue is the same
// under both models.
func (c Color) Hue() float64 { return c.h }

// Saturation returns the saturation of the stored model. HSV and HSL
// saturations differ for the same RGB.
func (c Color) Saturation() float64 { return c.s }

// Value returns the HSV value, converting when the stored model is HSL.
func (c Color) Value() float64 {
	if c.model == HSL {
		_, _, v := hslToHSV(c.h, c.s, c.vl)
		return v
	}
	return c.vl
}

// Lightness returns the HSL lightness, converting when the stored model
// is HSV.
func (c Color) Lightness() float64 {
	if c.model == HSV {
		_, _, l := hsvToHSL(c.h, c.s, c.vl)
		return l
	}
	return c.vl
}

// Alpha returns the alpha component.
func (c Color) Alpha() float64 { return c.a }

// Model returns which polar model the color stores.
func (c Color) Model() Model { return c.model }

// As re-expresses the stored polar triple in model m and retags the
// color. The conversion goes polar to polar, not through RGB, so hue
// survives even when the color is achromatic. RGB and alpha are
// untouched.
func (c Color) As(m Model) Color {
	if c.model == m {
		return c
	}
	if m == HSL {
		c.h, c.s, c.vl = hsvToHSL(c.h, c.s, c.vl)
	} else {
		c.h, c.s, c.vl = hslToHSV(c.h, c.s, c.vl)
	}
	c.model = m
	return c
}

// SetHue replaces the hue and recomputes RGB from the polar triple.
func (c *Color) SetHue(h float64) {
	c.h = h
	c.sync()
}

// SetSaturation replaces the saturation of the stored model and
// recomputes RGB.
func (c *Color) SetSaturation(s float64) {
	c.s = s
	c.sync()
}

// SetValue replaces the HSV value and recomputes RGB. An HSL-model
// color is re-expressed in HSV first and stays HSV afterwards.
func (c *Color) SetValue(v float64) {
	if c.model == HSL {
		*c = c.As(HSV)
	}
	c.vl = v
	c.sync()
}

// SetLightness replaces the HSL lightness and recomputes RGB. An
// HSV-model color is re-expressed in HSL first and stays HSL
// afterwards.
func (c *Color) SetLightness(l float64) {
	if c.model == HSV {
		*c = c.As(HSL)
	}
	c.vl = l
	c.sync()
}

// SetAlpha replaces the alpha component. RGB is not recomputed.
func (c *Color) SetAlpha(a float64) {
	c.a = a
}

// sync recomputes the RGB triple from the full polar triple.
func (c *Color) sync() {
	if c.model == HSL {
		c.r, c.g, c.b = hslToRGB(c.h, c.s, c.vl)
	} else {
		c.r, c.g, c.b = hsvToRGB(c.h, c.s, c.vl)
	}
}

// Pixel quantizes the color to four RGBA8 bytes, one per component,
// rounding to nearest with each byte clamped to [0, 255]. Alpha is
// straight, not premultiplied.
func (c Color) Pixel() [4]uint8 {
	return [4]uint8{u8(c.r), u8(c.g), u8(c.b), u8(c.a)}
}

// u8 quantizes a unit-interval component to one byte, rounding halves
// away from zero.
func u8(x float64) uint8 {
	return uint8(clamp255(math.Round(x * 255)))
}

// NRGBA returns the color as a standard non-premultiplied 8-bit color.
func (c Color) NRGBA() color.NRGBA {
	px := c.Pixel()
	return color.NRGBA{R: px[0], G: px[1], B: px[2], A: px[3]}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}
