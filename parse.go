package picker

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseError describes a color string rejected by Parse. It carries the
// offending text and the underlying complaint, reachable via Unwrap.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse color %q: %v", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	errUnknownColor = errors.New("not a hex, functional, or named color")
	errHexLength    = errors.New("hex colors have 3, 4, 6, or 8 digits")
	errComponents   = errors.New("wrong number of components")
)

// Parse interprets a CSS-style color string: #RGB, #RGBA, #RRGGBB, and
// #RRGGBBAA hex forms, the rgb()/rgba() and hsl()/hsla() functional
// forms, hsv()/hsva() as an extension so every rendering round-trips,
// and the CSS named colors. Components may be separated by commas,
// spaces, or a slash before alpha.
//
// Hex, rgb(), and named colors parse to HSV-model colors; hsl() parses
// to an HSL-model color. Failures return a *ParseError.
func Parse(s string) (Color, error) {
	text := strings.TrimSpace(s)
	lower := strings.ToLower(text)

	switch {
	case strings.HasPrefix(lower, "#"):
		c, err := parseHex(lower[1:])
		if err != nil {
			return Color{}, &ParseError{Text: text, Err: err}
		}
		return c, nil

	case strings.HasSuffix(lower, ")"):
		name, args, ok := strings.Cut(strings.TrimSuffix(lower, ")"), "(")
		if !ok {
			return Color{}, &ParseError{Text: text, Err: errUnknownColor}
		}
		c, err := parseFunc(strings.TrimSpace(name), args)
		if err != nil {
			return Color{}, &ParseError{Text: text, Err: err}
		}
		return c, nil

	default:
		if rgba, ok := colornames.Map[lower]; ok {
			return FromRGB(
				float64(rgba.R)/255,
				float64(rgba.G)/255,
				float64(rgba.B)/255,
				float64(rgba.A)/255,
			), nil
		}
		return Color{}, &ParseError{Text: text, Err: errUnknownColor}
	}
}

// parseHex parses the digits after a leading #. Short forms expand each
// digit to two (f becomes ff); a missing alpha means opaque.
func parseHex(digits string) (Color, error) {
	n := len(digits)
	if n != 3 && n != 4 && n != 6 && n != 8 {
		return Color{}, errHexLength
	}

	step := 1
	if n >= 6 {
		step = 2
	}

	var ch [4]uint64
	ch[3] = 255
	for i := 0; i*step < n; i++ {
		v, err := strconv.ParseUint(digits[i*step:(i+1)*step], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("bad hex digit: %w", err)
		}
		if step == 1 {
			v *= 17
		}
		ch[i] = v
	}

	return FromRGB(
		float64(ch[0])/255,
		float64(ch[1])/255,
		float64(ch[2])/255,
		float64(ch[3])/255,
	), nil
}

// parseFunc parses the contents of a functional form, already split at
// the opening parenthesis and stripped of the closing one.
func parseFunc(name, args string) (Color, error) {
	fields := strings.FieldsFunc(args, func(r rune) bool {
		return r == ',' || r == '/' || r == ' ' || r == '\t'
	})
	if len(fields) != 3 && len(fields) != 4 {
		return Color{}, errComponents
	}

	switch name {
	case "rgb", "rgba":
		var ch [3]float64
		for i, f := range fields[:3] {
			v, err := parseChannel(f)
			if err != nil {
				return Color{}, err
			}
			ch[i] = v
		}
		a := 1.0
		if len(fields) == 4 {
			v, err := parseUnit(fields[3], "alpha")
			if err != nil {
				return Color{}, err
			}
			a = v
		}
		return FromRGB(ch[0], ch[1], ch[2], a), nil

	case "hsl", "hsla", "hsv", "hsva":
		h, err := parseHue(fields[0])
		if err != nil {
			return Color{}, err
		}
		s, err := parseUnit(fields[1], "saturation")
		if err != nil {
			return Color{}, err
		}
		what := "lightness"
		if name == "hsv" || name == "hsva" {
			what = "value"
		}
		vl, err := parseUnit(fields[2], what)
		if err != nil {
			return Color{}, err
		}
		a := 1.0
		if len(fields) == 4 {
			a, err = parseUnit(fields[3], "alpha")
			if err != nil {
				return Color{}, err
			}
		}
		if name == "hsl" || name == "hsla" {
			return FromHSL(h, s, vl, a), nil
		}
		return FromHSV(h, s, vl, a), nil

	default:
		return Color{}, fmt.Errorf("unknown function %q", name)
	}
}

// parseChannel parses one rgb() channel given as a 0-255 number or a
// percentage.
func parseChannel(s string) (float64, error) {
	p, pct := strings.CutSuffix(s, "%")
	v, err := strconv.ParseFloat(p, 64)
	if err != nil {
		return 0, fmt.Errorf("bad channel %q: %w", s, err)
	}
	if pct {
		return v / 100, nil
	}
	return v / 255, nil
}

// parseUnit parses a unit-interval component given as a percentage or a
// bare 0-1 number.
func parseUnit(s, what string) (float64, error) {
	p, pct := strings.CutSuffix(s, "%")
	v, err := strconv.ParseFloat(p, 64)
	if err != nil {
		return 0, fmt.Errorf("bad %s %q: %w", what, s, err)
	}
	if pct {
		v /= 100
	}
	return v, nil
}

// parseHue parses a hue in degrees with an optional deg suffix,
// wrapping any real angle into a [0, 1) turn.
func parseHue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "deg"), 64)
	if err != nil {
		return 0, fmt.Errorf("bad hue %q: %w", s, err)
	}
	deg := math.Mod(v, 360)
	if deg < 0 {
		deg += 360
	}
	return deg / 360, nil
}
