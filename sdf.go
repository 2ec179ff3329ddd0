package picker

import "math"

// antialiasWidth controls the smoothstep transition width in pixels.
// A value of 0.7 produces smooth anti-aliasing at standard DPI.
const antialiasWidth = 0.7

// strokeCircle rasterizes the circle's outline into pm with the given
// stroke width, anti-aliased by signed-distance coverage and composited
// source-over.
func strokeCircle(pm *Pixmap, c Circle, width float64, paint RGBA) {
	pad := width/2 + antialiasWidth
	x0, y0, x1, y1 := pixelSpan(pm, c.Bounds().Shrink(-pad, -pad))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := Pt(float64(x)+0.5, float64(y)+0.5)
			sdf := math.Abs(p.Distance(c.Center)-c.Radius) - width/2
			if cov := smoothstepCoverage(sdf); cov > 0 {
				pm.BlendPixel(x, y, paint, cov)
			}
		}
	}
}

// strokeRect rasterizes the outline of a rounded rectangle into pm with
// the given corner radius and stroke width, anti-aliased by
// signed-distance coverage and composited source-over.
func strokeRect(pm *Pixmap, r Rect, corner, width float64, paint RGBA) {
	pad := width/2 + antialiasWidth
	x0, y0, x1, y1 := pixelSpan(pm, r.Shrink(-pad, -pad))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := Pt(float64(x)+0.5, float64(y)+0.5)
			sdf := math.Abs(sdfRRect(p, r, corner)) - width/2
			if cov := smoothstepCoverage(sdf); cov > 0 {
				pm.BlendPixel(x, y, paint, cov)
			}
		}
	}
}

// sdfRRect computes the signed distance from a point to a rounded
// rectangle. Negative values are inside, positive values are outside.
func sdfRRect(p Point, r Rect, cornerRadius float64) float64 {
	// Translate to center and use symmetry (work in first quadrant).
	c := r.Center()
	dx := math.Abs(p.X-c.X) - r.Width()/2 + cornerRadius
	dy := math.Abs(p.Y-c.Y) - r.Height()/2 + cornerRadius

	// Outside the corner region: max(dx, dy) gives the distance to the
	// edge. Inside the corner region: the Euclidean distance to the
	// corner circle.
	outside := math.Hypot(math.Max(dx, 0), math.Max(dy, 0))
	inside := math.Min(math.Max(dx, dy), 0)

	return outside + inside - cornerRadius
}

// smoothstepCoverage converts a signed distance to an anti-aliased
// coverage value using a Hermite smoothstep function.
//
// sdf < -afwidth => 1.0 (fully inside)
// sdf > +afwidth => 0.0 (fully outside)
// Otherwise       => smooth transition
func smoothstepCoverage(sdf float64) float64 {
	if sdf >= antialiasWidth {
		return 0
	}
	if sdf <= -antialiasWidth {
		return 1
	}
	t := (sdf + antialiasWidth) / (2 * antialiasWidth)
	// Hermite smoothstep: 3t^2 - 2t^3
	return 1 - (t * t * (3 - 2*t))
}

// pixelSpan clips a rectangle to pm's pixel grid, returning inclusive
// pixel index bounds. An empty intersection yields an empty loop range.
func pixelSpan(pm *Pixmap, r Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.Min.X))
	y0 = int(math.Floor(r.Min.Y))
	x1 = int(math.Ceil(r.Max.X))
	y1 = int(math.Ceil(r.Max.Y))
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > pm.Width()-1 {
		x1 = pm.Width() - 1
	}
	if y1 > pm.Height()-1 {
		y1 = pm.Height() - 1
	}
	return x0, y0, x1, y1
}
