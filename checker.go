package picker

// DefaultCheckerSize is the checker square side in pixels used by the
// shells.
const DefaultCheckerSize = 4

// checkerGray is the square color over the white ground.
var checkerGray = RGB(0.9, 0.9, 0.9)

// DrawChecker fills pm with the transparency-preview checkerboard: a
// white ground with gray squares offset so they alternate per cell. A
// side of zero or less falls back to DefaultCheckerSize.
func DrawChecker(pm *Pixmap, side int) {
	if side <= 0 {
		side = DefaultCheckerSize
	}
	pm.Clear(White)
	for cy := 0; cy < pm.Height(); cy += side * 2 {
		for cx := 0; cx < pm.Width(); cx += side * 2 {
			fillSquare(pm, cx+side, cy, side, checkerGray)
			fillSquare(pm, cx, cy+side, side, checkerGray)
		}
	}
}

// fillSquare fills an axis-aligned square, clipped to the pixmap.
func fillSquare(pm *Pixmap, x0, y0, side int, c RGBA) {
	for y := y0; y < y0+side && y < pm.Height(); y++ {
		for x := x0; x < x0+side && x < pm.Width(); x++ {
			pm.SetPixel(x, y, c)
		}
	}
}

// RenderSwatch composites c over a fresh checkerboard, the preview
// drawn behind the swatches and under partially transparent colors.
func RenderSwatch(c Color, width, height, side int) *Pixmap {
	pm := NewPixmap(width, height)
	DrawChecker(pm, side)

	r, g, b := c.RGB()
	paint := RGBA{R: r, G: g, B: b, A: c.Alpha()}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pm.BlendPixel(x, y, paint, 1)
		}
	}
	return pm
}
