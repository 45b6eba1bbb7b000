package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Mode names a colour representation. It is the discriminant of Color.
type Mode string

const (
	ModeHex  Mode = "hex"
	ModeRGB  Mode = "rgb"
	ModeHSL  Mode = "hsl"
	ModeCMYK Mode = "cmyk"
	ModeLab  Mode = "lab"
	ModeXYZ  Mode = "xyz"
)

// Modes lists every supported representation in presentation order.
var Modes = []Mode{ModeHex, ModeRGB, ModeHSL, ModeCMYK, ModeLab, ModeXYZ}

// ParseMode parses a mode name case-insensitively.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown color mode %q (valid: hex, rgb, hsl, cmyk, lab, xyz)", s)
}

// Color is a colour in exactly one representation. The set of implementations is
// closed: RGB, Hex, HSL, CMYK, Lab and XYZ.
type Color interface {
	Mode() Mode
	isColor()
}

// RGB is an 8-bit sRGB colour.
type RGB struct {
	R, G, B uint8
}

// Hex is a hex colour string such as "#eb6f92" or "#fff". The leading # is optional
// and digits are case-insensitive.
type Hex string

func (RGB) Mode() Mode { return ModeRGB }
func (Hex) Mode() Mode { return ModeHex }

func (RGB) isColor() {}
func (Hex) isColor() {}

// ParseHex parses a 3- or 6-digit hex colour string, with or without a leading #.
func ParseHex(s string) (RGB, error) {
	digits := strings.TrimPrefix(s, "#")
	switch len(digits) {
	case 3:
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	case 6:
	default:
		return RGB{}, fmt.Errorf("invalid hex color %q: must be 3 or 6 hex digits", s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex returns the color as a hex string with leading #, e.g. "#eb6f92".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HexBare returns the color as a hex string without leading #, e.g. "eb6f92".
func (c RGB) HexBare() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the color as an rgb() string, e.g. "rgb(235, 111, 146)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// unit returns the channels scaled to [0, 1].
func (c RGB) unit() (r, g, b float64) {
	return float64(c.R) / 255.0, float64(c.G) / 255.0, float64(c.B) / 255.0
}

// unitToByte scales a [0, 1] channel to [0, 255], rounding to nearest and clamping.
func unitToByte(v float64) uint8 {
	v = math.Round(v * 255.0)
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// clamp01 clamps a value to the [0, 1] range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
