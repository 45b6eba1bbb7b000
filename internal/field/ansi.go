package field

import (
	"bufio"
	"errors"
	"image"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/jsvensson/colorweave/internal/color"
)

// upperHalf paints the top pixel with the foreground and the bottom with the
// background, so one cell shows two rows.
const upperHalf = "▀"

// ErrNoColor is returned when the terminal profile cannot show colours.
var ErrNoColor = errors.New("terminal does not support color")

// TerminalProfile returns the colour profile of f, or termenv.Ascii when f is not
// a terminal.
func TerminalProfile(f *os.File) termenv.Profile {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).EnvColorProfile()
}

// TerminalWidth returns the column count of f, or fallback when it is unknown.
func TerminalWidth(f *os.File, fallback int) int {
	if f == nil {
		return fallback
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// WriteANSI draws img with half-block cells, two image rows per text line,
// degrading colours to what profile supports.
func WriteANSI(w io.Writer, img image.Image, profile termenv.Profile) error {
	if profile == termenv.Ascii {
		return ErrNoColor
	}

	bw := bufio.NewWriter(w)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top, _ := Pick(img, x, y)
			style := profile.String(upperHalf).Foreground(profile.Color(top.Hex()))
			if bottom, err := Pick(img, x, y+1); err == nil {
				style = style.Background(profile.Color(bottom.Hex()))
			}
			bw.WriteString(style.String())
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Swatch renders a single colour as a short block followed by its label.
func Swatch(c color.RGB, label string, profile termenv.Profile) string {
	if profile == termenv.Ascii {
		return label
	}
	return profile.String("  ").Background(profile.Color(c.Hex())).String() + " " + label
}
