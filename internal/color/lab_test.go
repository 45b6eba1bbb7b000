package color

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestRGBToXYZ(t *testing.T) {
	tests := []struct {
		name  string
		color RGB
		want  XYZ
	}{
		{"black", RGB{0, 0, 0}, XYZ{0, 0, 0}},
		{"white", RGB{255, 255, 255}, XYZ{WhiteX, WhiteY, WhiteZ}},
		{"red", RGB{255, 0, 0}, XYZ{41.24564, 21.26729, 1.93339}},
		{"blue", RGB{0, 0, 255}, XYZ{18.04375, 7.2175, 95.03041}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToXYZ(tt.color)
			if math.Abs(got.X-tt.want.X) > 1e-3 || math.Abs(got.Y-tt.want.Y) > 1e-3 || math.Abs(got.Z-tt.want.Z) > 1e-3 {
				t.Errorf("RGBToXYZ(%v) = %+v, want %+v", tt.color, got, tt.want)
			}
		})
	}
}

func TestXYZToRGBClampsOutOfGamut(t *testing.T) {
	tests := []struct {
		name string
		in   XYZ
		want RGB
	}{
		{"negative", XYZ{-10, -10, -10}, RGB{0, 0, 0}},
		{"beyond white", XYZ{200, 200, 200}, RGB{255, 255, 255}},
		{"white", XYZ{WhiteX, WhiteY, WhiteZ}, RGB{255, 255, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := XYZToRGB(tt.in); got != tt.want {
				t.Errorf("XYZToRGB(%+v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBToLab(t *testing.T) {
	tests := []struct {
		name  string
		color RGB
		want  Lab
	}{
		{"black", RGB{0, 0, 0}, Lab{0, 0, 0}},
		{"white", RGB{255, 255, 255}, Lab{100, 0, 0}},
		{"red", RGB{255, 0, 0}, Lab{53.2408, 80.0925, 67.2032}},
		{"green", RGB{0, 255, 0}, Lab{87.7347, -86.1827, 83.1793}},
		{"blue", RGB{0, 0, 255}, Lab{32.2970, 79.1875, -107.8602}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToLab(tt.color)
			if math.Abs(got.L-tt.want.L) > 0.05 || math.Abs(got.A-tt.want.A) > 0.05 || math.Abs(got.B-tt.want.B) > 0.05 {
				t.Errorf("RGBToLab(%v) = %+v, want %+v", tt.color, got, tt.want)
			}
		})
	}
}

func TestRGBToLabMatchesColorful(t *testing.T) {
	for _, c := range grid(51) {
		ref := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
		l, a, b := ref.Lab()
		got := RGBToLab(c)
		if math.Abs(got.L-l*100) > 0.2 || math.Abs(got.A-a*100) > 0.2 || math.Abs(got.B-b*100) > 0.2 {
			t.Errorf("RGBToLab(%v) = %+v, colorful says (%f, %f, %f)", c, got, l*100, a*100, b*100)
		}
	}
}

func TestLabToXYZInvertsXYZToLab(t *testing.T) {
	inputs := []XYZ{
		{41.24564, 21.26729, 1.93339},
		{WhiteX, WhiteY, WhiteZ},
		{0.5, 0.4, 0.3},
		{20, 30, 40},
	}
	for _, in := range inputs {
		got := LabToXYZ(XYZToLab(in))
		if math.Abs(got.X-in.X) > 1e-2 || math.Abs(got.Y-in.Y) > 1e-2 || math.Abs(got.Z-in.Z) > 1e-2 {
			t.Errorf("LabToXYZ(XYZToLab(%+v)) = %+v", in, got)
		}
	}
}

func TestXYZRoundTrip(t *testing.T) {
	for _, c := range grid(5) {
		got := XYZToRGB(RGBToXYZ(c))
		if !withinRGB(got, c, 1) {
			t.Errorf("XYZ round trip of %v = %v", c, got)
		}
	}
}

func TestLabRoundTrip(t *testing.T) {
	for _, c := range grid(5) {
		got := LabToRGB(RGBToLab(c))
		if !withinRGB(got, c, 1) {
			t.Errorf("Lab round trip of %v = %v", c, got)
		}
	}
}

func TestLabIsNotClamped(t *testing.T) {
	// Saturated blue sits well below -100 on b; the math must not pin it.
	got := RGBToLab(RGB{0, 0, 255})
	if got.B > -100 {
		t.Errorf("RGBToLab(blue).B = %f, want below -100", got.B)
	}
	// Out of range input still converts, landing on the gamut boundary.
	if rgb := LabToRGB(Lab{50, -200, 200}); rgb.R != 0 {
		t.Errorf("LabToRGB(extreme) = %v, want R clamped to 0", rgb)
	}
}

func TestLabRound(t *testing.T) {
	got := Lab{53.2408, 80.0925, -67.5}.Round()
	want := Lab{53, 80, -68}
	if got != want {
		t.Errorf("Round() = %+v, want %+v", got, want)
	}
}
