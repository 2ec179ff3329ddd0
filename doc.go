// Package picker provides the color model and interactive surfaces of
// a color picker.
//
// # Overview
//
// picker keeps a Color coherent across RGB and one polar model (HSV or
// HSL) and drives three gradient surfaces against it: a 2-D saturation
// plane, a hue slider, and an alpha slider. Surfaces own the pointer
// state machine and render their gradients and position markers into
// plain RGBA8 pixel buffers, so any UI toolkit that can display an
// image can host them.
//
// # Quick Start
//
//	import picker "github.com/austinhyde/vscode-colorpicker"
//
//	// Parse the starting color (hex, rgb(), hsl(), or a CSS name)
//	c, err := picker.Parse("#123456")
//
//	// Create a surface bound to it
//	plane := picker.NewPlane(&c)
//	plane.Resize(256, 256)
//
//	// Route pointer events and display the result
//	plane.PointerDown(picker.Pt(128, 64))
//	img := plane.Render().ToImage()
//
//	// Read the result back out
//	fmt.Println(c.Hex())
//
// # Architecture
//
// The library is organized into:
//   - Color model: Color, Model, Parse, Format
//   - Surfaces: Plane, HueSlider, AlphaSlider behind the Surface interface
//   - Raster: Pixmap, checkerboards, signed-distance marker strokes
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Hue is a turn in [0, 1); formatting converts to degrees
//
// Pointer positions outside a surface clamp to its extent, so a drag
// that leaves the surface saturates at the nearest edge value.
package picker

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
