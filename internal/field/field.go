// Package field renders the picker's hue/lightness field and per-channel slider
// strips, and maps pointer positions back to colours.
package field

import (
	"context"
	"fmt"
	"image"
	stdcolor "image/color"
	"math"

	"github.com/jsvensson/colorweave/internal/color"
	"github.com/jsvensson/colorweave/internal/convert"
	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"
)

var log = commonlog.GetLogger("colorweave.field")

// Sample returns the field colour at (x, y) for a w by h field: hue sweeps 0..360
// left to right and lightness 0..100 top to bottom, at full saturation.
func Sample(x, y, w, h int) color.RGB {
	return color.HSLToRGB(color.HSL{
		H: float64(x) / float64(w) * 360,
		S: 100,
		L: float64(y) / float64(h) * 100,
	})
}

// Field renders the field on the calling goroutine.
func Field(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	_ = fillRows(context.Background(), img, 0, img.Rect.Dy())
	return img
}

// Render renders the field split into row bands, one goroutine per band.
func Render(ctx context.Context, w, h, workers int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("field size must be positive, got %dx%d", w, h)
	}
	workers = min(max(workers, 1), h)
	band := (h + workers - 1) / workers
	log.Debugf("rendering %dx%d field in bands of %d rows", w, h, band)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	g, ctx := errgroup.WithContext(ctx)
	for y0 := 0; y0 < h; y0 += band {
		y1 := min(y0+band, h)
		g.Go(func() error {
			return fillRows(ctx, img, y0, y1)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return img, nil
}

func fillRows(ctx context.Context, img *image.RGBA, y0, y1 int) error {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for y := y0; y < y1; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, toRGBA(Sample(x, y, w, h)))
		}
	}
	return nil
}

// Pick returns the colour under the pointer at (x, y).
func Pick(img image.Image, x, y int) (color.RGB, error) {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return color.RGB{}, fmt.Errorf("point (%d, %d) is outside the %v field", x, y, img.Bounds())
	}
	c := stdcolor.RGBAModel.Convert(img.At(x, y)).(stdcolor.RGBA)
	return color.RGB{R: c.R, G: c.G, B: c.B}, nil
}

// Locate returns where the knob for c sits on a w by h field. Saturation is
// ignored, so any colour with the same hue and lightness lands on the same point.
func Locate(c color.Color, w, h int) image.Point {
	hsl := convert.ToHSL(c)
	return image.Point{
		X: int(math.Round(hsl.H * float64(w) / 360)),
		Y: int(math.Round(float64(h) * hsl.L / 100)),
	}
}

func toRGBA(c color.RGB) stdcolor.RGBA {
	return stdcolor.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
