package picker

import (
	"errors"
	"strings"
	"testing"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  [4]uint8
		model Model
	}{
		{"long hex", "#123456", [4]uint8{18, 52, 86, 255}, HSV},
		{"long hex with alpha", "#12345680", [4]uint8{18, 52, 86, 128}, HSV},
		{"short hex", "#fa0", [4]uint8{255, 170, 0, 255}, HSV},
		{"short hex with alpha", "#fa08", [4]uint8{255, 170, 0, 136}, HSV},
		{"uppercase hex", "#ABCDEF", [4]uint8{171, 205, 239, 255}, HSV},
		{"rgb ints", "rgb(18, 52, 86)", [4]uint8{18, 52, 86, 255}, HSV},
		{"rgb percent", "rgb(100%, 0%, 50%)", [4]uint8{255, 0, 128, 255}, HSV},
		{"rgba float alpha", "rgba(255, 0, 0, 0.5)", [4]uint8{255, 0, 0, 128}, HSV},
		{"rgba percent alpha", "rgba(255, 0, 0, 50%)", [4]uint8{255, 0, 0, 128}, HSV},
		{"rgb space separated", "rgb(255 0 0)", [4]uint8{255, 0, 0, 255}, HSV},
		{"rgb slash alpha", "rgb(255 0 0 / 25%)", [4]uint8{255, 0, 0, 64}, HSV},
		{"hsl", "hsl(0, 100%, 50%)", [4]uint8{255, 0, 0, 255}, HSL},
		{"hsl deg suffix", "hsl(120deg, 100%, 50%)", [4]uint8{0, 255, 0, 255}, HSL},
		{"hsl wraps negative hue", "hsl(-240, 100%, 50%)", [4]uint8{0, 255, 0, 255}, HSL},
		{"hsl wraps large hue", "hsl(480, 100%, 50%)", [4]uint8{0, 255, 0, 255}, HSL},
		{"hsla", "hsla(0, 100%, 50%, 0.5)", [4]uint8{255, 0, 0, 128}, HSL},
		{"hsl fractional components", "hsl(240, 1, 0.5)", [4]uint8{0, 0, 255, 255}, HSL},
		{"hsv", "hsv(0deg, 100%, 100%)", [4]uint8{255, 0, 0, 255}, HSV},
		{"hsva", "hsva(60deg, 100%, 100%, 50%)", [4]uint8{255, 255, 0, 128}, HSV},
		{"named", "rebeccapurple", [4]uint8{102, 51, 153, 255}, HSV},
		{"named case insensitive", "RebeccaPurple", [4]uint8{102, 51, 153, 255}, HSV},
		{"surrounding space", "  #123456  ", [4]uint8{18, 52, 86, 255}, HSV},
		{"uppercase function", "RGB(255, 0, 0)", [4]uint8{255, 0, 0, 255}, HSV},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.text)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.text, err)
			}
			if got := c.Pixel(); got != tt.want {
				t.Errorf("Parse(%q).Pixel() = %v, want %v", tt.text, got, tt.want)
			}
			if c.Model() != tt.model {
				t.Errorf("Parse(%q).Model() = %v, want %v", tt.text, c.Model(), tt.model)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"unknown name", "notacolor"},
		{"bare number", "123456"},
		{"hex wrong length", "#12345"},
		{"hex bad digit", "#12345g"},
		{"rgb missing component", "rgb(1, 2)"},
		{"rgb extra component", "rgb(1, 2, 3, 4, 5)"},
		{"rgb garbage component", "rgb(1, two, 3)"},
		{"hsl garbage hue", "hsl(reddeg, 100%, 50%)"},
		{"unknown function", "cmyk(0, 0, 0, 1)"},
		{"unbalanced paren", "rgb 255, 0, 0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.text)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Parse(%q) error type %T, want *ParseError", tt.text, err)
			}
			if perr.Text != strings.TrimSpace(tt.text) {
				t.Errorf("ParseError.Text = %q, want %q", perr.Text, strings.TrimSpace(tt.text))
			}
			if perr.Unwrap() == nil {
				t.Errorf("ParseError.Unwrap() = nil, want underlying cause")
			}
		})
	}
}

// TestParseRoundTripsRenderings feeds each renderer's output back
// through Parse and expects the identical quantized pixel.
func TestParseRoundTripsRenderings(t *testing.T) {
	colors := []Color{
		FromHSV(1.0/12, 1, 1, 1),
		FromHSV(0.5, 0.5, 0.5, 0.5),
		FromHSL(7.0/12, 0.65, 0.2, 1),
		FromRGB(0.07, 0.2, 0.33, 0.8),
	}

	for _, c := range colors {
		for _, text := range []string{c.Hex(), c.RGBString()} {
			parsed, err := Parse(text)
			if err != nil {
				t.Errorf("Parse(%q) error: %v", text, err)
				continue
			}
			want := c.Pixel()
			// Alpha renders as a whole percent, so allow one byte of
			// drift on that channel only.
			got := parsed.Pixel()
			if got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
				t.Errorf("Parse(%q).Pixel() = %v, want %v", text, got, want)
			}
			if diffByte(got[3], want[3]) > 2 {
				t.Errorf("Parse(%q) alpha byte = %d, want within 2 of %d", text, got[3], want[3])
			}
		}
	}
}

func diffByte(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestParseErrorMessage(t *testing.T) {
	_, err := Parse("#zz0000")
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "#zz0000") {
		t.Errorf("error message %q does not name the input", msg)
	}
}
