// Command swatch prints color swatches and their renderings to the
// terminal.
//
// Usage:
//
//	swatch [flags] color [color ...]
//
// With -format only that single rendering is printed per color, which
// suits shell substitution; otherwise a colored block and every
// rendering are shown.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	picker "github.com/austinhyde/vscode-colorpicker"
)

var (
	blockStyle = lipgloss.NewStyle().
			Width(6).
			Height(5)
	nameStyle = lipgloss.NewStyle().
			Bold(true)
)

func main() {
	formatFlag := flag.String("format", "", "print a single rendering: hex, rgb, hsl, hsv, vec")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: swatch [-format name] color [color ...]")
		os.Exit(2)
	}

	single := false
	var format picker.Format
	if *formatFlag != "" {
		f, err := picker.ParseFormat(*formatFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		format, single = f, true
	}

	code := 0
	for _, arg := range flag.Args() {
		c, err := picker.Parse(arg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			code = 1
			continue
		}
		if single {
			fmt.Println(format.Render(c))
			continue
		}
		fmt.Println(renderCard(c))
	}
	os.Exit(code)
}

// renderCard draws a color block beside every textual rendering. The
// block carries the quantized rgb bytes; terminals have no use for the
// alpha channel.
func renderCard(c picker.Color) string {
	px := c.Pixel()
	fill := fmt.Sprintf("#%02x%02x%02x", px[0], px[1], px[2])
	block := blockStyle.Background(lipgloss.Color(fill)).Render("")

	lines := lipgloss.JoinVertical(lipgloss.Left,
		nameStyle.Render(c.Hex()),
		c.RGBString(),
		c.HSLString(),
		c.HSVString(),
		c.VecString(),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, block, "  ", lines)
}
