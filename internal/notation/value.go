package notation

import (
	"fmt"
	"math"

	"github.com/jsvensson/colorweave/internal/color"
	"github.com/zclconf/go-cty/cty"
)

// channels lists the attribute names carried by each mode's cty object, in order.
var channels = map[color.Mode][]string{
	color.ModeHex:  {"hex"},
	color.ModeRGB:  {"r", "g", "b"},
	color.ModeHSL:  {"h", "s", "l"},
	color.ModeCMYK: {"c", "m", "y", "k"},
	color.ModeLab:  {"l", "a", "b"},
	color.ModeXYZ:  {"x", "y", "z"},
}

// Channels returns the channel names of a mode, e.g. r, g, b for RGB.
func Channels(m color.Mode) []string {
	return channels[m]
}

// Values returns the channel values of c in Channels order. Hex has none.
func Values(c color.Color) []float64 {
	switch v := c.(type) {
	case color.RGB:
		return []float64{float64(v.R), float64(v.G), float64(v.B)}
	case color.HSL:
		return []float64{v.H, v.S, v.L}
	case color.CMYK:
		return []float64{v.C, v.M, v.Y, v.K}
	case color.Lab:
		return []float64{v.L, v.A, v.B}
	case color.XYZ:
		return []float64{v.X, v.Y, v.Z}
	}
	return nil
}

// Encode converts a colour into the cty object used inside expressions:
// {type = "rgb", r = 255, g = 136, b = 0}.
func Encode(c color.Color) cty.Value {
	if c == nil {
		return cty.NullVal(cty.DynamicPseudoType)
	}
	attrs := map[string]cty.Value{
		"type": cty.StringVal(string(c.Mode())),
	}
	if h, ok := c.(color.Hex); ok {
		attrs["hex"] = cty.StringVal(string(h))
		return cty.ObjectVal(attrs)
	}
	names := channels[c.Mode()]
	for i, v := range Values(c) {
		attrs[names[i]] = cty.NumberFloatVal(v)
	}
	return cty.ObjectVal(attrs)
}

// Decode converts an expression result back into a colour. Strings are read as
// hex; objects must carry a type attribute and that mode's channels.
func Decode(v cty.Value) (color.Color, error) {
	if v.IsNull() {
		return nil, fmt.Errorf("color is null")
	}
	if !v.IsWhollyKnown() {
		return nil, fmt.Errorf("color is not known")
	}

	ty := v.Type()
	if ty == cty.String {
		return parseHexLiteral(v.AsString())
	}
	if !ty.IsObjectType() || !ty.HasAttribute("type") {
		return nil, fmt.Errorf("expected hex string or color object, got %s", ty.FriendlyName())
	}

	typeVal := v.GetAttr("type")
	if typeVal.Type() != cty.String || typeVal.IsNull() {
		return nil, fmt.Errorf("color type must be a string")
	}
	mode, err := color.ParseMode(typeVal.AsString())
	if err != nil {
		return nil, err
	}

	if mode == color.ModeHex {
		if !ty.HasAttribute("hex") || ty.AttributeType("hex") != cty.String {
			return nil, fmt.Errorf("hex color needs a string hex attribute")
		}
		h := v.GetAttr("hex")
		if h.IsNull() {
			return nil, fmt.Errorf("hex color needs a string hex attribute")
		}
		return parseHexLiteral(h.AsString())
	}

	names := channels[mode]
	vals := make([]float64, len(names))
	for i, name := range names {
		if !ty.HasAttribute(name) {
			return nil, fmt.Errorf("%s color is missing channel %q", mode, name)
		}
		attr := v.GetAttr(name)
		if attr.Type() != cty.Number || attr.IsNull() {
			return nil, fmt.Errorf("%s channel %q must be a number", mode, name)
		}
		vals[i], _ = attr.AsBigFloat().Float64()
	}
	return fromValues(mode, vals)
}

// fromValues builds a colour of the given mode, validating channel ranges the way
// the notation functions do.
func fromValues(mode color.Mode, v []float64) (color.Color, error) {
	switch mode {
	case color.ModeRGB:
		var out [3]uint8
		for i, name := range channels[mode] {
			b, err := byteChannel(name, v[i])
			if err != nil {
				return nil, err
			}
			out[i] = b
		}
		return color.RGB{R: out[0], G: out[1], B: out[2]}, nil
	case color.ModeHSL:
		if err := percentChannels(mode, v[1:], channels[mode][1:]); err != nil {
			return nil, err
		}
		return color.HSL{H: v[0], S: v[1], L: v[2]}, nil
	case color.ModeCMYK:
		if err := percentChannels(mode, v, channels[mode]); err != nil {
			return nil, err
		}
		return color.CMYK{C: v[0], M: v[1], Y: v[2], K: v[3]}, nil
	case color.ModeLab:
		return color.Lab{L: v[0], A: v[1], B: v[2]}, nil
	case color.ModeXYZ:
		return color.XYZ{X: v[0], Y: v[1], Z: v[2]}, nil
	}
	return nil, fmt.Errorf("mode %q has no numeric channels", mode)
}

func byteChannel(name string, v float64) (uint8, error) {
	if math.IsNaN(v) || v < 0 || v > 255 {
		return 0, fmt.Errorf("rgb channel %q must be within 0..255, got %g", name, v)
	}
	return uint8(math.Round(v)), nil
}

func percentChannels(mode color.Mode, vals []float64, names []string) error {
	for i, v := range vals {
		if math.IsNaN(v) || v < 0 || v > 100 {
			return fmt.Errorf("%s channel %q must be within 0..100, got %g", mode, names[i], v)
		}
	}
	return nil
}

func parseHexLiteral(s string) (color.Color, error) {
	if _, err := color.ParseHex(s); err != nil {
		return nil, err
	}
	return color.Hex(s), nil
}
