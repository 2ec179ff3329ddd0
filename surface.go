package picker

import "math"

// Surface is one gradient picker control: a render extent, a shared
// Color it reads and mutates, and an idle/dragging pointer state.
//
// The pointer protocol is deliberately strict. PointerDown captures the
// pointer and applies the position immediately; PointerMove applies
// positions only while captured, so a pointer wandering across an idle
// surface never mutates the color; PointerUp releases capture
// unconditionally. Every applied position fires the change callback
// exactly once.
//
// Surfaces are not safe for concurrent use; drive them from a single
// event loop. Render is a full synthesis over the extent and returns a
// buffer that stays valid until the next Render or Resize.
type Surface interface {
	// Resize records the extent used to map pointer positions and to
	// size the render buffer.
	Resize(width, height float64)
	// Size returns the last recorded extent.
	Size() (width, height float64)
	// Render regenerates the gradient and position marker for the
	// current color state.
	Render() *Pixmap
	// PointerDown captures the pointer and applies the position.
	PointerDown(p Point)
	// PointerMove applies the position while captured and is a no-op
	// otherwise.
	PointerMove(p Point)
	// PointerUp releases pointer capture.
	PointerUp()
	// Dragging reports whether the pointer is captured.
	Dragging() bool
}

// Marker chrome geometry shared by all surfaces.
const (
	markerStroke       = 2.0
	markerInset        = 1.0
	planeMarkerRadius  = 4.5
	sliderMarkerHeight = 5.0
)

// shadowPaint is the marker drop shadow and frame color.
var shadowPaint = RGBA{A: 0.2}

// surface carries the state shared by the picker surfaces.
type surface struct {
	width, height float64
	dragging      bool
	color         *Color
	onChange      func(Color)
	pix           *Pixmap
}

func newSurface(c *Color, opts []Option) surface {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return surface{color: c, onChange: o.onChange, pix: o.pixmap}
}

// Resize implements Surface.
func (s *surface) Resize(width, height float64) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	Logger().Debug("surface resized", "width", width, "height", height)
}

// Size implements Surface.
func (s *surface) Size() (width, height float64) {
	return s.width, s.height
}

// Dragging implements Surface.
func (s *surface) Dragging() bool {
	return s.dragging
}

// fraction maps a pointer coordinate to [0, 1], clamping into the
// extent first so drags past the edges saturate instead of escaping.
func (s *surface) fraction(v, extent float64) float64 {
	if extent <= 0 {
		return 0
	}
	return math.Min(math.Max(v, 0), extent) / extent
}

// changed reports a completed mutation to the change callback.
func (s *surface) changed() {
	if s.onChange != nil {
		s.onChange(*s.color)
	}
}

// buffer returns the render target sized to the floored extent,
// reallocating only when the size changes.
func (s *surface) buffer() *Pixmap {
	w := int(s.width)
	h := int(s.height)
	if s.pix == nil || s.pix.Width() != w || s.pix.Height() != h {
		s.pix = NewPixmap(w, h)
		Logger().Debug("render buffer allocated", "width", w, "height", h)
	}
	return s.pix
}

// chrome strokes the subtle rounded frame over a rendered gradient.
func (s *surface) chrome(pm *Pixmap) {
	b := RectWH(0, 0, float64(pm.Width()), float64(pm.Height()))
	strokeRect(pm, b, 1.0, 0.5, shadowPaint)
}

// sliderMarker computes the clamped bar marker for a 1-D slider, with
// frac the controlled component's position in [0, 1] measured from the
// top edge.
func sliderMarker(frac, w, h float64) Rect {
	bounds := RectWH(0, 0, w, h).Shrink(markerStroke/2, markerStroke/2)
	return RectWH(0, frac*h, w, sliderMarkerHeight).
		Translate(0, -sliderMarkerHeight/2).
		Shrink(markerInset, 0).
		Shrink(markerStroke/2, markerStroke/2).
		Clamp(bounds)
}
