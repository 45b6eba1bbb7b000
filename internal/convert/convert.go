// Package convert translates a color.Color from any representation into any other.
//
// Every conversion routes through RGB, except Lab and XYZ which convert between
// each other directly so that the float pivot is never quantized. Functions in this
// package never fail: malformed input collapses to a documented default and, for
// hex strings, a logged warning.
package convert

import (
	"github.com/jsvensson/colorweave/internal/color"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("colorweave.convert")

// To returns c converted to the target mode. An unknown target yields Hex "#000".
func To(c color.Color, target color.Mode) color.Color {
	switch target {
	case color.ModeHex:
		return ToHex(c)
	case color.ModeRGB:
		return ToRGB(c)
	case color.ModeHSL:
		return ToHSL(c)
	case color.ModeCMYK:
		return ToCMYK(c)
	case color.ModeLab:
		return ToLab(c)
	case color.ModeXYZ:
		return ToXYZ(c)
	}
	log.Warningf("unknown target mode %q, falling back to black", target)
	return color.Hex("#000")
}

// FromRGB converts an RGB colour to the target mode.
func FromRGB(c color.RGB, target color.Mode) color.Color {
	return To(c, target)
}

// HexToRGB parses a hex string. Anything that is not 3 or 6 hex digits, with an
// optional leading #, logs a warning and yields black.
func HexToRGB(s string) color.RGB {
	c, err := color.ParseHex(s)
	if err != nil {
		log.Warningf("invalid hex input %q: %s", s, err)
		return color.RGB{}
	}
	return c
}

// ToRGB converts c to RGB. A nil colour yields black.
func ToRGB(c color.Color) color.RGB {
	switch v := c.(type) {
	case color.RGB:
		return v
	case color.Hex:
		return HexToRGB(string(v))
	case color.HSL:
		return color.HSLToRGB(v)
	case color.CMYK:
		return color.CMYKToRGB(v)
	case color.Lab:
		return color.LabToRGB(v)
	case color.XYZ:
		return color.XYZToRGB(v)
	}
	return color.RGB{}
}

// ToHex converts c to a lowercase #rrggbb string. A Hex input is returned as given.
// A nil colour yields "#000".
func ToHex(c color.Color) color.Hex {
	switch v := c.(type) {
	case color.Hex:
		return v
	case nil:
		return color.Hex("#000")
	}
	return color.Hex(ToRGB(c).Hex())
}

// ToHSL converts c to HSL. A nil colour yields {0, 0, 0}.
func ToHSL(c color.Color) color.HSL {
	switch v := c.(type) {
	case color.HSL:
		return v
	case nil:
		return color.HSL{}
	}
	return color.RGBToHSL(ToRGB(c))
}

// ToCMYK converts c to CMYK. A nil colour yields {0, 0, 0, 0}.
func ToCMYK(c color.Color) color.CMYK {
	switch v := c.(type) {
	case color.CMYK:
		return v
	case nil:
		return color.CMYK{}
	}
	return color.RGBToCMYK(ToRGB(c))
}

// ToLab converts c to Lab. A nil colour yields {0, -128, -128}.
func ToLab(c color.Color) color.Lab {
	switch v := c.(type) {
	case color.Lab:
		return v
	case color.XYZ:
		return color.XYZToLab(v)
	case nil:
		return color.Lab{L: 0, A: -128, B: -128}
	}
	return color.RGBToLab(ToRGB(c))
}

// ToXYZ converts c to XYZ. A nil colour yields {0, 0, 0}.
func ToXYZ(c color.Color) color.XYZ {
	switch v := c.(type) {
	case color.XYZ:
		return v
	case color.Lab:
		return color.LabToXYZ(v)
	case nil:
		return color.XYZ{}
	}
	return color.RGBToXYZ(ToRGB(c))
}

// All returns c in every mode, in color.Modes order.
func All(c color.Color) []color.Color {
	out := make([]color.Color, 0, len(color.Modes))
	for _, m := range color.Modes {
		out = append(out, To(c, m))
	}
	return out
}
