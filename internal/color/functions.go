package color

import "math"

// Brighten raises the HSL lightness of c by amount, a fraction of full lightness
// (0.1 adds ten points). Lightness saturates at 0 and 100.
func Brighten(c RGB, amount float64) RGB {
	hsl := RGBToHSL(c)
	hsl.L = clampPercent(hsl.L + amount*100)
	return HSLToRGB(hsl)
}

// Darken lowers the HSL lightness of c by amount.
func Darken(c RGB, amount float64) RGB {
	hsl := RGBToHSL(c)
	hsl.L = clampPercent(hsl.L - amount*100)
	return HSLToRGB(hsl)
}

func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
