package color

import "math"

// CMYK is a subtractive colour. Each channel is a percentage in [0, 100].
type CMYK struct {
	C, M, Y, K float64
}

func (CMYK) Mode() Mode { return ModeCMYK }
func (CMYK) isColor()   {}

// RGBToCMYK converts an RGB colour to CMYK with every channel rounded to a whole
// percent. Pure black is {0, 0, 0, 100}.
func RGBToCMYK(c RGB) CMYK {
	r, g, b := c.unit()

	cy := 1 - r
	ma := 1 - g
	ye := 1 - b
	k := math.Min(cy, math.Min(ma, ye))

	if k == 1 {
		return CMYK{C: 0, M: 0, Y: 0, K: 100}
	}

	return CMYK{
		C: math.Round((cy - k) / (1 - k) * 100),
		M: math.Round((ma - k) / (1 - k) * 100),
		Y: math.Round((ye - k) / (1 - k) * 100),
		K: math.Round(k * 100),
	}
}

// CMYKToRGB converts a CMYK colour to RGB, rounding each channel.
func CMYKToRGB(c CMYK) RGB {
	k := 1 - c.K/100
	return RGB{
		R: unitToByte((1 - c.C/100) * k),
		G: unitToByte((1 - c.M/100) * k),
		B: unitToByte((1 - c.Y/100) * k),
	}
}
