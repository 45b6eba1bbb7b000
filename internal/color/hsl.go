package color

import "math"

// HSL is a cylindrical sRGB colour. H is in degrees [0, 360), S and L are percentages.
type HSL struct {
	H, S, L float64
}

func (HSL) Mode() Mode { return ModeHSL }
func (HSL) isColor()   {}

// Round returns the colour with every channel rounded to the nearest integer.
func (c HSL) Round() HSL {
	return HSL{H: math.Round(c.H), S: math.Round(c.S), L: math.Round(c.L)}
}

// RGBToHSL converts an RGB colour to HSL. Achromatic colours have H = S = 0.
func RGBToHSL(c RGB) HSL {
	r, g, b := c.unit()

	max := math.Max(math.Max(r, g), b)
	min := math.Min(math.Min(r, g), b)
	l := (max + min) / 2.0

	if max == min {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := max - min
	var s, h float64
	if l > 0.5 {
		s = d / (2.0 - max - min)
	} else {
		s = d / (max + min)
	}

	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6.0
		}
	case g:
		h = (b-r)/d + 2.0
	default:
		h = (r-g)/d + 4.0
	}
	h /= 6.0

	return HSL{H: h * 360, S: s * 100, L: l * 100}
}

// HSLToRGB converts an HSL colour to RGB, rounding each channel.
// Hue outside [0, 360) wraps around.
func HSLToRGB(c HSL) RGB {
	s := c.S / 100
	l := c.L / 100

	chroma := (1 - math.Abs(2*l-1)) * s
	hp := wrapHue(c.H) / 60
	x := chroma * (1 - math.Abs(math.Mod(hp, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch int(hp) {
	case 0:
		r, g, b = chroma, x, 0
	case 1:
		r, g, b = x, chroma, 0
	case 2:
		r, g, b = 0, chroma, x
	case 3:
		r, g, b = 0, x, chroma
	case 4:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return RGB{
		R: unitToByte(r + m),
		G: unitToByte(g + m),
		B: unitToByte(b + m),
	}
}

// wrapHue maps any angle into [0, 360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}
