package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jsvensson/colorweave/internal/color"
	"github.com/jsvensson/colorweave/internal/notation"
)

// Notation renders c in the same grammar notation.Parse reads. HSL, CMYK and Lab
// channels are rounded to whole numbers for display; XYZ keeps three decimals.
func Notation(c color.Color) string {
	switch v := c.(type) {
	case color.Hex:
		if !strings.HasPrefix(string(v), "#") {
			return "#" + string(v)
		}
		return string(v)
	case color.RGB:
		return v.String()
	case color.XYZ:
		return call(c.Mode(), notation.Values(v), 3)
	case nil:
		return ""
	}
	return call(c.Mode(), notation.Values(c), 0)
}

func call(mode color.Mode, vals []float64, decimals int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = Number(v, decimals)
	}
	return fmt.Sprintf("%s(%s)", mode, strings.Join(parts, ", "))
}

// Number formats v rounded to the given number of decimals, without trailing zeros
// and without a negative zero.
func Number(v float64, decimals int) string {
	scale := math.Pow(10, float64(decimals))
	v = math.Round(v*scale) / scale
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
