package field

import (
	"fmt"
	"image"
	"math"

	"github.com/jsvensson/colorweave/internal/color"
	"github.com/jsvensson/colorweave/internal/convert"
)

// Range is the span a slider covers for one channel.
type Range struct {
	Min, Max float64
}

var ranges = map[color.Mode]map[string]Range{
	color.ModeRGB:  {"r": {0, 255}, "g": {0, 255}, "b": {0, 255}},
	color.ModeHSL:  {"h": {0, 360}, "s": {0, 100}, "l": {0, 100}},
	color.ModeCMYK: {"c": {0, 100}, "m": {0, 100}, "y": {0, 100}, "k": {0, 100}},
	color.ModeLab:  {"l": {0, 100}, "a": {-128, 127}, "b": {-128, 127}},
	color.ModeXYZ:  {"x": {0, color.WhiteX}, "y": {0, color.WhiteY}, "z": {0, color.WhiteZ}},
}

// ChannelRange returns the slider range of a channel.
func ChannelRange(mode color.Mode, channel string) (Range, error) {
	chans, ok := ranges[mode]
	if !ok {
		return Range{}, fmt.Errorf("mode %q has no sliders", mode)
	}
	r, ok := chans[channel]
	if !ok {
		return Range{}, fmt.Errorf("mode %q has no channel %q", mode, channel)
	}
	return r, nil
}

// Value returns the whole channel value under offset x of a slider width pixels wide.
func (r Range) Value(x, width int) float64 {
	return math.Round(float64(x)/float64(width)*(r.Max-r.Min) + r.Min)
}

// Position returns the thumb offset for v on a slider width pixels wide.
func (r Range) Position(v float64, width int) float64 {
	return (v - r.Min) / (r.Max - r.Min) * float64(width)
}

// Clamp limits v to the range.
func (r Range) Clamp(v float64) float64 {
	return min(max(v, r.Min), r.Max)
}

// Slider renders a w by h strip sweeping one channel of c, in the given mode,
// across its range while the other channels hold.
func Slider(c color.Color, mode color.Mode, channel string, w, h int) (*image.RGBA, error) {
	r, err := ChannelRange(mode, channel)
	if err != nil {
		return nil, err
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("slider size must be positive, got %dx%d", w, h)
	}

	base := convert.To(c, mode)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		swept, err := SetChannel(base, channel, r.Value(x, w))
		if err != nil {
			return nil, err
		}
		px := toRGBA(convert.ToRGB(swept))
		for y := 0; y < h; y++ {
			img.SetRGBA(x, y, px)
		}
	}
	return img, nil
}

// SetChannel returns c with one channel replaced, as when a slider moves. RGB
// values are rounded and clamped to 0..255; other modes store v as given.
func SetChannel(c color.Color, channel string, v float64) (color.Color, error) {
	switch c := c.(type) {
	case color.RGB:
		b := uint8(math.Round(min(max(v, 0), 255)))
		switch channel {
		case "r":
			c.R = b
			return c, nil
		case "g":
			c.G = b
			return c, nil
		case "b":
			c.B = b
			return c, nil
		}
	case color.HSL:
		switch channel {
		case "h":
			c.H = v
			return c, nil
		case "s":
			c.S = v
			return c, nil
		case "l":
			c.L = v
			return c, nil
		}
	case color.CMYK:
		switch channel {
		case "c":
			c.C = v
			return c, nil
		case "m":
			c.M = v
			return c, nil
		case "y":
			c.Y = v
			return c, nil
		case "k":
			c.K = v
			return c, nil
		}
	case color.Lab:
		switch channel {
		case "l":
			c.L = v
			return c, nil
		case "a":
			c.A = v
			return c, nil
		case "b":
			c.B = v
			return c, nil
		}
	case color.XYZ:
		switch channel {
		case "x":
			c.X = v
			return c, nil
		case "y":
			c.Y = v
			return c, nil
		case "z":
			c.Z = v
			return c, nil
		}
	case nil:
		return nil, fmt.Errorf("no color to set channel %q on", channel)
	}
	return nil, fmt.Errorf("%s color has no channel %q", c.Mode(), channel)
}
