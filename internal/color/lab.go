package color

import "math"

// D65 reference white, 2° observer, scaled so that Y = 100.
const (
	WhiteX = 95.047
	WhiteY = 100.000
	WhiteZ = 108.883
)

// CIE constants for the Lab companding function.
const (
	labEpsilon = 0.008856
	labKappa   = 7.787
	labOffset  = 16.0 / 116.0
)

// XYZ is a CIE 1931 tristimulus value scaled to the D65 white point.
type XYZ struct {
	X, Y, Z float64
}

// Lab is a CIE L*a*b* colour relative to D65. A and B are not clamped.
type Lab struct {
	L, A, B float64
}

func (XYZ) Mode() Mode { return ModeXYZ }
func (Lab) Mode() Mode { return ModeLab }

func (XYZ) isColor() {}
func (Lab) isColor() {}

// Round returns the colour with every channel rounded to the nearest integer.
func (c Lab) Round() Lab {
	return Lab{L: math.Round(c.L), A: math.Round(c.A), B: math.Round(c.B)}
}

// RGBToXYZ converts an sRGB colour to XYZ.
func RGBToXYZ(c RGB) XYZ {
	r, g, b := c.unit()
	r, g, b = srgbToLinear(r), srgbToLinear(g), srgbToLinear(b)

	return XYZ{
		X: (r*0.4124564 + g*0.3575761 + b*0.1804375) * 100,
		Y: (r*0.2126729 + g*0.7151522 + b*0.0721750) * 100,
		Z: (r*0.0193339 + g*0.1191920 + b*0.9503041) * 100,
	}
}

// XYZToRGB converts an XYZ colour to sRGB. Out-of-gamut channels are clamped.
func XYZToRGB(c XYZ) RGB {
	x, y, z := c.X/100, c.Y/100, c.Z/100

	r := x*3.2404542 + y*-1.5371385 + z*-0.4985314
	g := x*-0.9692660 + y*1.8760108 + z*0.0415560
	b := x*0.0556434 + y*-0.2040259 + z*1.0572252

	return RGB{
		R: unitToByte(clamp01(linearToSRGB(r))),
		G: unitToByte(clamp01(linearToSRGB(g))),
		B: unitToByte(clamp01(linearToSRGB(b))),
	}
}

// XYZToLab converts an XYZ colour to Lab against the D65 white.
func XYZToLab(c XYZ) Lab {
	x := labPivot(c.X / WhiteX)
	y := labPivot(c.Y / WhiteY)
	z := labPivot(c.Z / WhiteZ)

	return Lab{
		L: 116*y - 16,
		A: 500 * (x - y),
		B: 200 * (y - z),
	}
}

// LabToXYZ converts a Lab colour back to XYZ.
func LabToXYZ(c Lab) XYZ {
	y := (c.L + 16) / 116
	x := c.A/500 + y
	z := y - c.B/200

	return XYZ{
		X: labUnpivot(x) * WhiteX,
		Y: labUnpivot(y) * WhiteY,
		Z: labUnpivot(z) * WhiteZ,
	}
}

// RGBToLab converts through XYZ without intermediate rounding.
func RGBToLab(c RGB) Lab {
	return XYZToLab(RGBToXYZ(c))
}

// LabToRGB converts through XYZ without intermediate rounding.
func LabToRGB(c Lab) RGB {
	return XYZToRGB(LabToXYZ(c))
}

func labPivot(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return labKappa*t + labOffset
}

func labUnpivot(t float64) float64 {
	if cubed := t * t * t; cubed > labEpsilon {
		return cubed
	}
	return (t - labOffset) / labKappa
}

// srgbToLinear converts a single sRGB component [0,1] to linear RGB.
func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// linearToSRGB converts a single linear RGB component to sRGB.
// Negative input stays on the linear segment.
func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}
