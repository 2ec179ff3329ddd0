package main

import (
	"image"
	stdcolor "image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	picker "github.com/austinhyde/vscode-colorpicker"
)

var (
	_ fyne.Widget        = (*surfaceWidget)(nil)
	_ fyne.Draggable     = (*surfaceWidget)(nil)
	_ desktop.Mouseable  = (*surfaceWidget)(nil)
	_ desktop.Cursorable = (*surfaceWidget)(nil)
	_ fyne.Widget        = (*swatchWidget)(nil)
	_ fyne.Tappable      = (*swatchWidget)(nil)
)

// surfaceWidget bridges a picker surface into a widget. Pointer events
// drive the surface's capture protocol and a raster regenerates the
// gradient at the backing store's pixel density.
type surfaceWidget struct {
	widget.BaseWidget
	surface picker.Surface
	raster  *canvas.Raster
	cursor  desktop.Cursor
	minSize fyne.Size
}

func newSurfaceWidget(s picker.Surface, minW, minH float32, cursor desktop.Cursor) *surfaceWidget {
	w := &surfaceWidget{surface: s, cursor: cursor, minSize: fyne.NewSize(minW, minH)}
	w.raster = canvas.NewRaster(w.draw)
	w.raster.ScaleMode = canvas.ImageScalePixels
	w.ExtendBaseWidget(w)
	return w
}

// CreateRenderer implements fyne.Widget.
func (w *surfaceWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.raster)
}

// MinSize implements fyne.Widget.
func (w *surfaceWidget) MinSize() fyne.Size {
	return w.minSize
}

// Refresh redraws the gradient.
func (w *surfaceWidget) Refresh() {
	w.raster.Refresh()
}

// draw renders the surface at the raster's pixel size, which on HiDPI
// displays exceeds the widget's logical size.
func (w *surfaceWidget) draw(pw, ph int) image.Image {
	w.surface.Resize(float64(pw), float64(ph))
	return w.surface.Render().ToImage()
}

// pixelPos converts a logical event position into render pixel space.
func (w *surfaceWidget) pixelPos(pos fyne.Position) picker.Point {
	size := w.Size()
	sw, sh := w.surface.Size()
	x, y := float64(pos.X), float64(pos.Y)
	if size.Width > 0 && sw > 0 {
		x = x / float64(size.Width) * sw
	}
	if size.Height > 0 && sh > 0 {
		y = y / float64(size.Height) * sh
	}
	return picker.Pt(x, y)
}

// MouseDown implements desktop.Mouseable.
func (w *surfaceWidget) MouseDown(ev *desktop.MouseEvent) {
	w.surface.PointerDown(w.pixelPos(ev.Position))
}

// MouseUp implements desktop.Mouseable.
func (w *surfaceWidget) MouseUp(*desktop.MouseEvent) {
	w.surface.PointerUp()
}

// Dragged implements fyne.Draggable. On drivers without distinct mouse
// press events the first drag position doubles as the press.
func (w *surfaceWidget) Dragged(ev *fyne.DragEvent) {
	if !w.surface.Dragging() {
		w.surface.PointerDown(w.pixelPos(ev.Position))
		return
	}
	w.surface.PointerMove(w.pixelPos(ev.Position))
}

// DragEnd implements fyne.Draggable.
func (w *surfaceWidget) DragEnd() {
	w.surface.PointerUp()
}

// Cursor implements desktop.Cursorable.
func (w *surfaceWidget) Cursor() desktop.Cursor {
	return w.cursor
}

// swatchWidget shows a color over the transparency checkerboard with a
// centered monospace label, and reports taps.
type swatchWidget struct {
	widget.BaseWidget
	color    func() picker.Color
	label    func() string
	onTapped func()
	raster   *canvas.Raster
	text     *canvas.Text
	minSize  fyne.Size
}

func newSwatchWidget(color func() picker.Color, label func() string, onTapped func(), minH float32) *swatchWidget {
	w := &swatchWidget{
		color:    color,
		label:    label,
		onTapped: onTapped,
		minSize:  fyne.NewSize(pickerSize, minH),
	}
	w.raster = canvas.NewRaster(w.draw)
	w.raster.ScaleMode = canvas.ImageScalePixels
	w.text = canvas.NewText(label(), contrastText(color()))
	w.text.TextStyle = fyne.TextStyle{Monospace: true}
	w.ExtendBaseWidget(w)
	return w
}

// CreateRenderer implements fyne.Widget.
func (w *swatchWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(w.raster, container.NewCenter(w.text)))
}

// MinSize implements fyne.Widget.
func (w *swatchWidget) MinSize() fyne.Size {
	return w.minSize
}

// Refresh redraws the swatch and relabels it for the current color.
func (w *swatchWidget) Refresh() {
	w.text.Text = w.label()
	w.text.Color = contrastText(w.color())
	w.text.Refresh()
	w.raster.Refresh()
}

func (w *swatchWidget) draw(pw, ph int) image.Image {
	pm := picker.RenderSwatch(w.color(), pw, ph, picker.DefaultCheckerSize)
	return pm.ToImage()
}

// Tapped implements fyne.Tappable.
func (w *swatchWidget) Tapped(*fyne.PointEvent) {
	if w.onTapped != nil {
		w.onTapped()
	}
}

// Cursor implements desktop.Cursorable.
func (w *swatchWidget) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// contrastText picks a label color readable over the swatch.
func contrastText(c picker.Color) stdcolor.Color {
	if c.Lightness() < 0.5 {
		return stdcolor.White
	}
	return stdcolor.Black
}

// checkerRaster builds the static transparency checkerboard drawn
// behind the alpha slider.
func checkerRaster() *canvas.Raster {
	r := canvas.NewRaster(func(pw, ph int) image.Image {
		pm := picker.NewPixmap(pw, ph)
		picker.DrawChecker(pm, picker.DefaultCheckerSize)
		return pm.ToImage()
	})
	r.ScaleMode = canvas.ImageScalePixels
	return r
}
