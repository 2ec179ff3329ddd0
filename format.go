package picker

import (
	"fmt"
	"strings"
)

// Hex renders the color as lowercase #rrggbb, or #rrggbbaa when the
// quantized alpha byte is not 255.
func (c Color) Hex() string {
	px := c.Pixel()
	if px[3] == 255 {
		return fmt.Sprintf("#%02x%02x%02x", px[0], px[1], px[2])
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", px[0], px[1], px[2], px[3])
}

// RGBString renders rgb(r, g, b) from the quantized bytes, or
// rgba(r, g, b, a%) with the percentage derived from the quantized
// alpha byte.
func (c Color) RGBString() string {
	px := c.Pixel()
	if px[3] == 255 {
		return fmt.Sprintf("rgb(%d, %d, %d)", px[0], px[1], px[2])
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %.0f%%)",
		px[0], px[1], px[2], float64(px[3])/255*100)
}

// HSVString renders hsv(hdeg, s%, v%), or hsva with a fourth percentage
// when alpha is not full opacity.
func (c Color) HSVString() string {
	h, s, v := c.HSV()
	a := c.a * 100
	if feq(a, 100) {
		return fmt.Sprintf("hsv(%.0fdeg, %.0f%%, %.0f%%)", h*360, s*100, v*100)
	}
	return fmt.Sprintf("hsva(%.0fdeg, %.0f%%, %.0f%%, %.0f%%)", h*360, s*100, v*100, a)
}

// HSLString renders hsl(hdeg, s%, l%), or hsla with a fourth percentage
// when alpha is not full opacity.
func (c Color) HSLString() string {
	h, s, l := c.HSL()
	a := c.a * 100
	if feq(a, 100) {
		return fmt.Sprintf("hsl(%.0fdeg, %.0f%%, %.0f%%)", h*360, s*100, l*100)
	}
	return fmt.Sprintf("hsla(%.0fdeg, %.0f%%, %.0f%%, %.0f%%)", h*360, s*100, l*100, a)
}

// VecString renders vec3(r, g, b) with two decimals per channel, or
// vec4 with alpha appended when it is not full opacity.
func (c Color) VecString() string {
	if feq(c.a, 1) {
		return fmt.Sprintf("vec3(%.2f, %.2f, %.2f)", c.r, c.g, c.b)
	}
	return fmt.Sprintf("vec4(%.2f, %.2f, %.2f, %.2f)", c.r, c.g, c.b, c.a)
}

// String implements fmt.Stringer as the hex rendering.
func (c Color) String() string { return c.Hex() }

// Format selects one of the textual renderings of a Color.
type Format uint8

const (
	FormatHex Format = iota
	FormatRGB
	FormatHSL
	FormatHSV
	FormatVec

	formatCount
)

// ParseFormat resolves a format name as used by command-line flags.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "hex":
		return FormatHex, nil
	case "rgb", "rgba":
		return FormatRGB, nil
	case "hsl", "hsla":
		return FormatHSL, nil
	case "hsv", "hsva":
		return FormatHSV, nil
	case "vec", "vec3", "vec4":
		return FormatVec, nil
	}
	return FormatHex, fmt.Errorf("unknown format %q", name)
}

// Render returns the color's rendering in this format.
func (f Format) Render(c Color) string {
	switch f {
	case FormatRGB:
		return c.RGBString()
	case FormatHSL:
		return c.HSLString()
	case FormatHSV:
		return c.HSVString()
	case FormatVec:
		return c.VecString()
	default:
		return c.Hex()
	}
}

// Next cycles to the following format, wrapping after the last.
func (f Format) Next() Format {
	return (f + 1) % formatCount
}

// String returns the format's flag name.
func (f Format) String() string {
	switch f {
	case FormatRGB:
		return "rgb"
	case FormatHSL:
		return "hsl"
	case FormatHSV:
		return "hsv"
	case FormatVec:
		return "vec"
	default:
		return "hex"
	}
}
