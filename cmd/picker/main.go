// Command picker opens an interactive color picker window and prints
// the chosen color on exit.
//
// Usage:
//
//	picker [flags] [color]
//
// The color argument accepts hex, rgb()/rgba(), hsl()/hsla(),
// hsv()/hsva(), and CSS color names. Click the large swatch to cycle
// the displayed format; click the small swatch to restore the starting
// color.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	picker "github.com/austinhyde/vscode-colorpicker"
)

const (
	pickerSize          = 256
	sliderWidth         = 25
	currentSwatchHeight = 50
	initialSwatchHeight = 30
)

const defaultColor = "#123456"

func main() {
	var (
		formatFlag = flag.String("format", "hex", "output format: hex, rgb, hsl, hsv, vec")
		hslMode    = flag.Bool("hsl", false, "edit lightness instead of value on the plane")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		picker.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	format, err := picker.ParseFormat(*formatFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	text := defaultColor
	if flag.NArg() > 0 {
		text = flag.Arg(0)
	}
	c, err := picker.Parse(text)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *hslMode {
		c = c.As(picker.HSL)
	}

	u := newUI(c, format)

	a := app.New()
	win := a.NewWindow("Color Picker")
	win.SetContent(container.NewPadded(u.content()))
	win.SetFixedSize(true)
	picker.Logger().Info("picker window opened", "color", c.Hex(), "model", c.Model())
	win.ShowAndRun()

	fmt.Println(u.format.Render(u.current))
}

// ui owns the shared color state and the widgets editing it.
type ui struct {
	current picker.Color
	initial picker.Color
	format  picker.Format

	plane         *surfaceWidget
	hue           *surfaceWidget
	alpha         *surfaceWidget
	currentSwatch *swatchWidget
	initialSwatch *swatchWidget
}

func newUI(c picker.Color, format picker.Format) *ui {
	u := &ui{current: c, initial: c, format: format}
	onChange := picker.WithOnChange(func(picker.Color) { u.refresh() })

	u.plane = newSurfaceWidget(picker.NewPlane(&u.current, onChange), pickerSize, pickerSize, desktop.CrosshairCursor)
	u.hue = newSurfaceWidget(picker.NewHueSlider(&u.current, onChange), sliderWidth, pickerSize, desktop.PointerCursor)
	u.alpha = newSurfaceWidget(picker.NewAlphaSlider(&u.current, onChange), sliderWidth, pickerSize, desktop.PointerCursor)

	u.currentSwatch = newSwatchWidget(
		func() picker.Color { return u.current },
		func() string { return u.format.Render(u.current) },
		u.cycleFormat,
		currentSwatchHeight,
	)
	u.initialSwatch = newSwatchWidget(
		func() picker.Color { return u.initial },
		func() string { return u.format.Render(u.initial) },
		u.restoreInitial,
		initialSwatchHeight,
	)
	return u
}

// content assembles the picker layout: the swatches stacked on top,
// the saturation plane beside the hue and alpha strips below them.
func (u *ui) content() *fyne.Container {
	surfaces := container.NewHBox(
		u.plane,
		u.hue,
		container.NewStack(checkerRaster(), u.alpha),
	)
	return container.NewVBox(
		u.currentSwatch,
		u.initialSwatch,
		surfaces,
	)
}

// refresh redraws every widget after the shared color changed.
func (u *ui) refresh() {
	u.plane.Refresh()
	u.hue.Refresh()
	u.alpha.Refresh()
	u.currentSwatch.Refresh()
	u.initialSwatch.Refresh()
}

// cycleFormat advances the displayed rendering on swatch taps.
func (u *ui) cycleFormat() {
	u.format = u.format.Next()
	u.currentSwatch.Refresh()
	u.initialSwatch.Refresh()
	picker.Logger().Debug("format cycled", "format", u.format)
}

// restoreInitial resets the working color to the starting one.
func (u *ui) restoreInitial() {
	u.current = u.initial
	u.refresh()
	picker.Logger().Debug("color restored", "color", u.current.Hex())
}
