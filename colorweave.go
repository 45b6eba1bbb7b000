// Package colorweave converts colours between hex, RGB, HSL, CMYK, CIE Lab and
// CIE XYZ, and parses the notation used by the colorweave CLI and config file.
package colorweave

import (
	"fmt"

	"github.com/jsvensson/colorweave/internal/color"
	"github.com/jsvensson/colorweave/internal/config"
	"github.com/jsvensson/colorweave/internal/convert"
	"github.com/jsvensson/colorweave/internal/format"
	"github.com/jsvensson/colorweave/internal/notation"
)

type (
	Color = color.Color
	Mode  = color.Mode

	Hex  = color.Hex
	RGB  = color.RGB
	HSL  = color.HSL
	CMYK = color.CMYK
	Lab  = color.Lab
	XYZ  = color.XYZ
)

const (
	ModeHex  = color.ModeHex
	ModeRGB  = color.ModeRGB
	ModeHSL  = color.ModeHSL
	ModeCMYK = color.ModeCMYK
	ModeLab  = color.ModeLab
	ModeXYZ  = color.ModeXYZ
)

// Parse reads one colour notation, e.g. "#ff8800", "hsl(32, 100, 50)" or
// `darken(rgb(255, 0, 0), 0.1)`.
func Parse(s string) (Color, error) {
	return notation.Parse(s)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("colorweave: Parse(%q): %v", s, err))
	}
	return c
}

// Convert converts c to mode. An unknown mode yields Hex "#000".
func Convert(c Color, mode Mode) Color {
	return convert.To(c, mode)
}

// All returns c in every mode, in Modes order.
func All(c Color) []Color {
	return convert.All(c)
}

// Notation renders c in the notation grammar Parse reads.
func Notation(c Color) string {
	return format.Notation(c)
}

// Palette is a set of named colours loaded from a config file.
type Palette struct {
	Colors map[string]Color
	parser *notation.Parser
}

// LoadPalette reads the palette block of an HCL config file.
func LoadPalette(path string) (*Palette, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading palette: %w", err)
	}
	return &Palette{Colors: cfg.Palette, parser: cfg.Parser()}, nil
}

// Parse reads a notation that may reference palette.<name> entries.
func (p *Palette) Parse(s string) (Color, error) {
	return p.parser.Parse(s)
}
