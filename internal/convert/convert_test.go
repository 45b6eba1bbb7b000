package convert

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jsvensson/colorweave/internal/color"
	"github.com/tliron/commonlog"
	"github.com/tliron/commonlog/simple"
)

// captureLog routes commonlog output into a buffer for the rest of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	backend := simple.NewBackend()
	backend.Writer = &buf
	backend.SetMaxLevel(commonlog.Debug)
	commonlog.SetBackend(backend)
	t.Cleanup(func() {
		restored := simple.NewBackend()
		restored.Configure(0, nil)
		commonlog.SetBackend(restored)
	})
	return &buf
}

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  color.RGB
	}{
		{"six digits", "#ff8800", color.RGB{R: 255, G: 136, B: 0}},
		{"three digits", "#f80", color.RGB{R: 255, G: 136, B: 0}},
		{"no hash", "FF8800", color.RGB{R: 255, G: 136, B: 0}},
		{"invalid falls back to black", "zzz", color.RGB{}},
		{"wrong length falls back to black", "#12345", color.RGB{}},
		{"empty falls back to black", "", color.RGB{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HexToRGB(tt.input); got != tt.want {
				t.Errorf("HexToRGB(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHexToRGBLogsWarning(t *testing.T) {
	buf := captureLog(t)

	if got := HexToRGB("zzz"); got != (color.RGB{}) {
		t.Errorf("HexToRGB(\"zzz\") = %v, want black", got)
	}
	if n := strings.Count(buf.String(), `invalid hex input "zzz"`); n != 1 {
		t.Errorf("got %d warnings, want 1; log:\n%s", n, buf.String())
	}

	buf.Reset()
	HexToRGB("#ff8800")
	if buf.Len() != 0 {
		t.Errorf("valid hex logged:\n%s", buf.String())
	}
}

func TestToUnknownModeLogsWarning(t *testing.T) {
	buf := captureLog(t)

	To(color.RGB{}, color.Mode("oklab"))
	if !strings.Contains(buf.String(), `unknown target mode "oklab"`) {
		t.Errorf("log = %q, want an unknown mode warning", buf.String())
	}
}

func TestTo(t *testing.T) {
	orange := color.RGB{R: 255, G: 136, B: 0}
	red := color.RGB{R: 255}

	tests := []struct {
		name   string
		in     color.Color
		target color.Mode
		want   color.Color
	}{
		{"rgb to hex", orange, color.ModeHex, color.Hex("#ff8800")},
		{"hex to rgb", color.Hex("#ff8800"), color.ModeRGB, orange},
		{"rgb to hsl", red, color.ModeHSL, color.HSL{H: 0, S: 100, L: 50}},
		{"hsl to rgb", color.HSL{H: 0, S: 100, L: 50}, color.ModeRGB, red},
		{"black to cmyk", color.RGB{}, color.ModeCMYK, color.CMYK{K: 100}},
		{"cmyk to hex", color.CMYK{C: 100}, color.ModeHex, color.Hex("#00ffff")},
		{"hsl to cmyk", color.HSL{H: 120, S: 100, L: 50}, color.ModeCMYK, color.CMYK{C: 100, Y: 100}},
		{"hex identity keeps spelling", color.Hex("#FFF"), color.ModeHex, color.Hex("#FFF")},
		{"lab to hex", color.Lab{L: 100}, color.ModeHex, color.Hex("#ffffff")},
		{"xyz to rgb", color.XYZ{X: color.WhiteX, Y: color.WhiteY, Z: color.WhiteZ}, color.ModeRGB, color.RGB{R: 255, G: 255, B: 255}},
		{"invalid hex to hsl is black", color.Hex("nope"), color.ModeHSL, color.HSL{}},
		{"unknown target", orange, color.Mode("oklab"), color.Hex("#000")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := To(tt.in, tt.target)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("To(%v, %q) mismatch (-want +got):\n%s", tt.in, tt.target, diff)
			}
		})
	}
}

func TestToNilFallbacks(t *testing.T) {
	tests := []struct {
		target color.Mode
		want   color.Color
	}{
		{color.ModeRGB, color.RGB{}},
		{color.ModeHex, color.Hex("#000")},
		{color.ModeHSL, color.HSL{}},
		{color.ModeCMYK, color.CMYK{}},
		{color.ModeLab, color.Lab{L: 0, A: -128, B: -128}},
		{color.ModeXYZ, color.XYZ{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.target), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, To(nil, tt.target)); diff != "" {
				t.Errorf("To(nil, %q) mismatch (-want +got):\n%s", tt.target, diff)
			}
		})
	}
}

func TestToPreservesMode(t *testing.T) {
	sources := []color.Color{
		color.RGB{R: 12, G: 200, B: 40},
		color.Hex("#3366cc"),
		color.HSL{H: 200, S: 40, L: 60},
		color.CMYK{C: 10, M: 20, Y: 30, K: 40},
		color.Lab{L: 60, A: -20, B: 30},
		color.XYZ{X: 20, Y: 30, Z: 40},
	}
	for _, src := range sources {
		for _, m := range color.Modes {
			if got := To(src, m); got.Mode() != m {
				t.Errorf("To(%v, %q) returned mode %q", src, m, got.Mode())
			}
		}
	}
}

func TestLabXYZPivotStaysFloat(t *testing.T) {
	in := color.XYZ{X: 20.123, Y: 30.456, Z: 40.789}
	back := ToXYZ(ToLab(in))
	if math.Abs(back.X-in.X) > 1e-9 || math.Abs(back.Y-in.Y) > 1e-9 || math.Abs(back.Z-in.Z) > 1e-9 {
		t.Errorf("XYZ -> Lab -> XYZ = %+v, want %+v", back, in)
	}
}

func TestRoundTripThroughEveryMode(t *testing.T) {
	tolerance := map[color.Mode]uint8{
		color.ModeHex:  0,
		color.ModeRGB:  0,
		color.ModeHSL:  0,
		color.ModeLab:  0,
		color.ModeXYZ:  0,
		color.ModeCMYK: 2,
	}

	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 15 {
			for b := 0; b <= 255; b += 15 {
				src := color.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				for m, tol := range tolerance {
					got := ToRGB(To(src, m))
					if diff(got.R, src.R) > tol || diff(got.G, src.G) > tol || diff(got.B, src.B) > tol {
						t.Errorf("%v via %s = %v", src, m, got)
					}
				}
			}
		}
	}
}

func TestAll(t *testing.T) {
	got := All(color.RGB{R: 255})
	if len(got) != len(color.Modes) {
		t.Fatalf("All returned %d colors, want %d", len(got), len(color.Modes))
	}
	if got[0] != color.Hex("#ff0000") {
		t.Errorf("All()[0] = %v, want #ff0000", got[0])
	}
	for i, c := range got {
		if c.Mode() != color.Modes[i] {
			t.Errorf("All()[%d] has mode %q, want %q", i, c.Mode(), color.Modes[i])
		}
	}
}

func diff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
