package picker

// HueSlider is the 1-D hue strip. Vertical position maps to hue, zero
// at the top, one full turn at the bottom; horizontal position is
// ignored. The gradient holds the color's current saturation and value
// or lightness fixed on every row so it previews what choosing that hue
// would produce.
type HueSlider struct {
	surface
}

// NewHueSlider creates a hue slider mutating c.
func NewHueSlider(c *Color, opts ...Option) *HueSlider {
	return &HueSlider{surface: newSurface(c, opts)}
}

// PointerDown implements Surface.
func (s *HueSlider) PointerDown(pt Point) {
	s.dragging = true
	s.apply(pt)
}

// PointerMove implements Surface.
func (s *HueSlider) PointerMove(pt Point) {
	if !s.dragging {
		return
	}
	s.apply(pt)
}

// PointerUp implements Surface.
func (s *HueSlider) PointerUp() {
	s.dragging = false
}

func (s *HueSlider) apply(pt Point) {
	s.color.SetHue(s.fraction(pt.Y, s.height))
	s.changed()
}

// Render implements Surface.
func (s *HueSlider) Render() *Pixmap {
	pm := s.buffer()
	w, h := pm.Width(), pm.Height()

	for y := 0; y < h; y++ {
		cand := *s.color
		cand.SetHue(float64(y) / float64(h))
		cand.SetAlpha(1)
		px := cand.Pixel()
		for x := 0; x < w; x++ {
			pm.SetRGBA8(x, y, px)
		}
	}

	s.chrome(pm)
	s.drawMarker(pm)
	return pm
}

func (s *HueSlider) drawMarker(pm *Pixmap) {
	bar := sliderMarker(s.color.Hue(), float64(pm.Width()), float64(pm.Height()))
	strokeRect(pm, bar.Translate(0, 0.5), 0.5, markerStroke, shadowPaint)
	strokeRect(pm, bar, 0.5, markerStroke, White)
}

// AlphaSlider is the 1-D alpha strip. Vertical position maps to alpha,
// fully opaque at the top, fully transparent at the bottom. The
// rendered buffer carries the varying alpha straight; display layers
// composite it over a checkerboard to make transparency visible.
type AlphaSlider struct {
	surface
}

// NewAlphaSlider creates an alpha slider mutating c.
func NewAlphaSlider(c *Color, opts ...Option) *AlphaSlider {
	return &AlphaSlider{surface: newSurface(c, opts)}
}

// PointerDown implements Surface.
func (s *AlphaSlider) PointerDown(pt Point) {
	s.dragging = true
	s.apply(pt)
}

// PointerMove implements Surface.
func (s *AlphaSlider) PointerMove(pt Point) {
	if !s.dragging {
		return
	}
	s.apply(pt)
}

// PointerUp implements Surface.
func (s *AlphaSlider) PointerUp() {
	s.dragging = false
}

func (s *AlphaSlider) apply(pt Point) {
	s.color.SetAlpha(1 - s.fraction(pt.Y, s.height))
	s.changed()
}

// Render implements Surface.
func (s *AlphaSlider) Render() *Pixmap {
	pm := s.buffer()
	w, h := pm.Width(), pm.Height()

	for y := 0; y < h; y++ {
		cand := *s.color
		cand.SetAlpha(1 - float64(y)/float64(h))
		px := cand.Pixel()
		for x := 0; x < w; x++ {
			pm.SetRGBA8(x, y, px)
		}
	}

	s.chrome(pm)
	s.drawMarker(pm)
	return pm
}

func (s *AlphaSlider) drawMarker(pm *Pixmap) {
	bar := sliderMarker(1-s.color.Alpha(), float64(pm.Width()), float64(pm.Height()))
	strokeRect(pm, bar.Translate(0, 0.5), 0.5, markerStroke, shadowPaint)
	strokeRect(pm, bar, 0.5, markerStroke, White)
}
