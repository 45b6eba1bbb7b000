package color

import "math"

// OKLCH is the polar form of Oklab. L is in [0, 1], C is chroma (about 0.37 at most
// inside sRGB) and H is in degrees. It is an input notation only and is not one of
// the Color modes.
type OKLCH struct {
	L, C, H float64
}

// RGBToOKLCH converts an sRGB colour to OKLCH.
func RGBToOKLCH(c RGB) OKLCH {
	r, g, b := c.unit()
	l, a, bb := linearToOklab(srgbToLinear(r), srgbToLinear(g), srgbToLinear(b))

	hue := math.Atan2(bb, a) * (180.0 / math.Pi)
	if hue < 0 {
		hue += 360.0
	}
	return OKLCH{L: l, C: math.Hypot(a, bb), H: hue}
}

// OKLCHToRGB converts an OKLCH colour to sRGB, clamping out-of-gamut channels.
func OKLCHToRGB(c OKLCH) RGB {
	rad := c.H * (math.Pi / 180.0)
	r, g, b := oklabToLinear(c.L, c.C*math.Cos(rad), c.C*math.Sin(rad))

	return RGB{
		R: unitToByte(linearToSRGB(clamp01(r))),
		G: unitToByte(linearToSRGB(clamp01(g))),
		B: unitToByte(linearToSRGB(clamp01(b))),
	}
}

// StepLightness returns c with its OKLCH lightness replaced, keeping hue and chroma.
func StepLightness(c RGB, lightness float64) RGB {
	o := RGBToOKLCH(c)
	o.L = lightness
	return OKLCHToRGB(o)
}

func linearToOklab(r, g, b float64) (l, a, bb float64) {
	lc := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*b)
	mc := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*b)
	sc := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*b)

	l = 0.2104542553*lc + 0.7936177850*mc - 0.0040720468*sc
	a = 1.9779984951*lc - 2.4285922050*mc + 0.4505937099*sc
	bb = 0.0259040371*lc + 0.7827717662*mc - 0.8086757660*sc
	return l, a, bb
}

func oklabToLinear(l, a, bb float64) (r, g, b float64) {
	lc := l + 0.3963377774*a + 0.2158037573*bb
	mc := l - 0.1055613458*a - 0.0638541728*bb
	sc := l - 0.0894841775*a - 1.2914855480*bb

	lc, mc, sc = lc*lc*lc, mc*mc*mc, sc*sc*sc

	r = 4.0767416621*lc - 3.3077115913*mc + 0.2309699292*sc
	g = -1.2684380046*lc + 2.6097574011*mc - 0.3413193965*sc
	b = -0.0041960863*lc - 0.7034186147*mc + 1.7076147010*sc
	return r, g, b
}
