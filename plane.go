package picker

// Plane is the 2-D saturation plane at the color's current hue.
// Horizontal position maps to saturation. The vertical axis depends on
// the color's model: under HSV it is value with full value at the top,
// under HSL it is lightness with zero lightness at the top.
type Plane struct {
	surface
}

// NewPlane creates a plane surface mutating c.
func NewPlane(c *Color, opts ...Option) *Plane {
	return &Plane{surface: newSurface(c, opts)}
}

// PointerDown implements Surface.
func (p *Plane) PointerDown(pt Point) {
	p.dragging = true
	p.apply(pt)
}

// PointerMove implements Surface.
func (p *Plane) PointerMove(pt Point) {
	if !p.dragging {
		return
	}
	p.apply(pt)
}

// PointerUp implements Surface.
func (p *Plane) PointerUp() {
	p.dragging = false
}

// apply maps a pointer position to saturation and value or lightness.
func (p *Plane) apply(pt Point) {
	p.color.SetSaturation(p.fraction(pt.X, p.width))
	fy := p.fraction(pt.Y, p.height)
	if p.color.Model() == HSL {
		p.color.SetLightness(fy)
	} else {
		p.color.SetValue(1 - fy)
	}
	p.changed()
}

// Render implements Surface.
func (p *Plane) Render() *Pixmap {
	pm := p.buffer()
	w, h := pm.Width(), pm.Height()
	hue := p.color.Hue()
	model := p.color.Model()

	for y := 0; y < h; y++ {
		fy := float64(y) / float64(h)
		for x := 0; x < w; x++ {
			sat := float64(x) / float64(w)
			var cand Color
			if model == HSL {
				cand = FromHSL(hue, sat, fy, 1)
			} else {
				cand = FromHSV(hue, sat, 1-fy, 1)
			}
			pm.SetRGBA8(x, y, cand.Pixel())
		}
	}

	p.chrome(pm)
	p.drawMarker(pm)
	return pm
}

// drawMarker strokes the circular position marker and its drop shadow,
// clamped fully inside the surface.
func (p *Plane) drawMarker(pm *Pixmap) {
	circle := p.markerCircle(float64(pm.Width()), float64(pm.Height()))
	strokeCircle(pm, circle.Translate(0, 1), markerStroke, shadowPaint)
	strokeCircle(pm, circle, markerStroke, White)
}

// markerCircle computes the clamped marker geometry for the current
// color at the given extent.
func (p *Plane) markerCircle(w, h float64) Circle {
	var fy float64
	if p.color.Model() == HSL {
		fy = p.color.Lightness()
	} else {
		fy = 1 - p.color.Value()
	}
	bounds := RectWH(0, 0, w, h).
		Shrink(markerInset, markerInset).
		Shrink(markerStroke/2, markerStroke/2)
	return Circle{
		Center: Pt(p.color.Saturation()*w, fy*h),
		Radius: planeMarkerRadius,
	}.
		Shrink(markerStroke / 2).
		Clamp(bounds)
}
