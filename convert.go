package picker

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// eps is the tolerance for every equality test against component
// extremes and channel maxima across the package. It absorbs float64
// rounding noise while staying far below the 1/255 quantization step.
const eps = 1e-9

// feq reports whether x and y are equal within eps.
func feq(x, y float64) bool {
	return scalar.EqualWithinAbs(x, y, eps)
}

// hsvToRGB converts a hue turn, saturation, and value to RGB.
//
// Sector boundaries use inclusive-upper comparisons, so a scaled hue of
// exactly 1.0 still selects the first sector. The piecewise map is
// continuous at the boundaries, which keeps that tie-break invisible in
// the output.
func hsvToRGB(h, s, v float64) (r, g, b float64) {
	c := v * s
	h6 := h * 6
	mod2 := math.Mod(h6, 2)
	if mod2 < 0 {
		mod2 += 2
	}
	x := c * (1 - math.Abs(mod2-1))

	switch {
	case h6 <= 1:
		r, g, b = c, x, 0
	case h6 <= 2:
		r, g, b = x, c, 0
	case h6 <= 3:
		r, g, b = 0, c, x
	case h6 <= 4:
		r, g, b = 0, x, c
	case h6 <= 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := v - c
	return r + m, g + m, b + m
}

// rgbToHSV converts RGB to a hue turn, saturation, and value.
//
// Channel comparisons go through feq so rounding noise cannot flip the
// sector selection. Hue is 0 when chroma is ~0; saturation is 0 when
// value is ~0.
func rgbToHSV(r, g, b float64) (h, s, v float64) {
	v = math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	c := v - min

	switch {
	case feq(c, 0):
		h = 0
	case feq(v, r):
		h = math.Mod((g-b)/c, 6)
		if h < 0 {
			h += 6
		}
	case feq(v, g):
		h = (b-r)/c + 2
	default:
		h = (r-g)/c + 4
	}
	h /= 6

	if !feq(v, 0) {
		s = c / v
	}
	return h, s, v
}

// hslToRGB converts a hue turn, saturation, and lightness to RGB.
func hslToRGB(h, s, l float64) (r, g, b float64) {
	if feq(s, 0) {
		return l, l, l
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r = hueToRGB(p, q, h+1.0/3)
	g = hueToRGB(p, q, h)
	b = hueToRGB(p, q, h-1.0/3)
	return r, g, b
}

// hueToRGB evaluates one channel of the piecewise HSL curve at hue t,
// wrapping t into [0, 1).
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// rgbToHSL converts RGB to a hue turn, saturation, and lightness.
// Saturation branches on lightness so it stays bounded near the
// achromatic poles.
func rgbToHSL(r, g, b float64) (h, s, l float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l = (max + min) / 2

	if feq(max, min) {
		return 0, 0, l
	}

	c := max - min
	if l > 0.5 {
		s = c / (2 - max - min)
	} else {
		s = c / (max + min)
	}

	switch {
	case feq(max, r):
		h = math.Mod((g-b)/c, 6)
		if h < 0 {
			h += 6
		}
	case feq(max, g):
		h = (b-r)/c + 2
	default:
		h = (r-g)/c + 4
	}
	h /= 6
	return h, s, l
}

// hsvToHSL re-expresses an HSV triple in HSL. Hue carries over
// unchanged, so it survives the achromatic poles.
func hsvToHSL(h, s, v float64) (float64, float64, float64) {
	l := v * (1 - s/2)
	var sl float64
	if !feq(l, 0) && !feq(l, 1) {
		sl = (v - l) / math.Min(l, 1-l)
	}
	return h, sl, l
}

// hslToHSV re-expresses an HSL triple in HSV. Hue carries over
// unchanged.
func hslToHSV(h, s, l float64) (float64, float64, float64) {
	v := l + s*math.Min(l, 1-l)
	var sv float64
	if !feq(v, 0) {
		sv = 2 * (1 - l/v)
	}
	return h, sv, v
}
