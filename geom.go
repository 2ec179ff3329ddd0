package picker

import "math"

// Rect is an axis-aligned rectangle. Min is the top-left corner, Max
// the bottom-right.
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two corner points, normalized so
// that Min <= Max on both axes.
func NewRect(p0, p1 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p0.X, p1.X), Y: math.Min(p0.Y, p1.Y)},
		Max: Point{X: math.Max(p0.X, p1.X), Y: math.Max(p0.Y, p1.Y)},
	}
}

// RectWH creates a rectangle from an origin and a size.
func RectWH(x, y, w, h float64) Rect {
	return Rect{Min: Point{X: x, Y: y}, Max: Point{X: x + w, Y: y + h}}
}

// Width returns the rectangle's width.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the rectangle's height.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Contains reports whether the point lies inside the rectangle, with
// the usual half-open convention on Max.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Translate returns the rectangle offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X + dx, Y: r.Min.Y + dy},
		Max: Point{X: r.Max.X + dx, Y: r.Max.Y + dy},
	}
}

// Shrink returns the rectangle inset by dx on the left and right sides
// and by dy on the top and bottom. Negative values grow it.
func (r Rect) Shrink(dx, dy float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X + dx, Y: r.Min.Y + dy},
		Max: Point{X: r.Max.X - dx, Y: r.Max.Y - dy},
	}
}

// Clamp returns the rectangle moved the minimal distance that places it
// inside bounds. Only the origin moves; the size is preserved.
func (r Rect) Clamp(bounds Rect) Rect {
	w, h := r.Width(), r.Height()
	x := math.Min(math.Max(r.Min.X, bounds.Min.X), bounds.Max.X-w)
	y := math.Min(math.Max(r.Min.Y, bounds.Min.Y), bounds.Max.Y-h)
	return RectWH(x, y, w, h)
}

// Circle is a circle given by center and radius.
type Circle struct {
	Center Point
	Radius float64
}

// Translate returns the circle offset by (dx, dy).
func (c Circle) Translate(dx, dy float64) Circle {
	return Circle{
		Center: Point{X: c.Center.X + dx, Y: c.Center.Y + dy},
		Radius: c.Radius,
	}
}

// Shrink returns the circle with its radius reduced by k. Negative
// values grow it.
func (c Circle) Shrink(k float64) Circle {
	return Circle{Center: c.Center, Radius: c.Radius - k}
}

// Clamp returns the circle with its center moved the minimal distance
// that keeps the whole circle inside bounds. The radius is preserved.
func (c Circle) Clamp(bounds Rect) Circle {
	return Circle{
		Center: Point{
			X: math.Min(math.Max(c.Center.X, bounds.Min.X+c.Radius), bounds.Max.X-c.Radius),
			Y: math.Min(math.Max(c.Center.Y, bounds.Min.Y+c.Radius), bounds.Max.Y-c.Radius),
		},
		Radius: c.Radius,
	}
}

// Bounds returns the circle's bounding rectangle.
func (c Circle) Bounds() Rect {
	return Rect{
		Min: Point{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius},
		Max: Point{X: c.Center.X + c.Radius, Y: c.Center.Y + c.Radius},
	}
}
