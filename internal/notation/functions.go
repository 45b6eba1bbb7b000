package notation

import (
	"github.com/jsvensson/colorweave/internal/color"
	"github.com/jsvensson/colorweave/internal/convert"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// Functions returns every notation function keyed by its name in expressions.
func Functions() map[string]function.Function {
	funcs := map[string]function.Function{
		"hex":      makeHexFunc(),
		"oklch":    makeOKLCHFunc(),
		"brighten": makeShiftFunc("Brightens a color by raising its HSL lightness", color.Brighten),
		"darken":   makeShiftFunc("Darkens a color by lowering its HSL lightness", color.Darken),
		"convert":  makeConvertFunc(),
	}
	for _, m := range color.Modes {
		if m == color.ModeHex {
			continue
		}
		funcs[string(m)] = makeConstructorFunc(m)
	}
	return funcs
}

// makeConstructorFunc creates a function such as rgb(r, g, b) or cmyk(c, m, y, k)
// whose parameters are that mode's channels.
func makeConstructorFunc(mode color.Mode) function.Function {
	names := channels[mode]
	params := make([]function.Parameter, len(names))
	for i, name := range names {
		params[i] = function.Parameter{Name: name, Type: cty.Number}
	}

	return function.New(&function.Spec{
		Description: "Builds a " + string(mode) + " color from its channels",
		Params:      params,
		Type:        function.StaticReturnType(cty.DynamicPseudoType),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			vals := make([]float64, len(args))
			for i, arg := range args {
				vals[i], _ = arg.AsBigFloat().Float64()
			}
			c, err := fromValues(mode, vals)
			if err != nil {
				return cty.NilVal, err
			}
			return Encode(c), nil
		},
	})
}

// makeHexFunc creates hex("#rrggbb"), which validates its argument.
func makeHexFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Builds a color from a 3 or 6 digit hex string",
		Params: []function.Parameter{
			{Name: "hex", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.DynamicPseudoType),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := parseHexLiteral(args[0].AsString())
			if err != nil {
				return cty.NilVal, function.NewArgError(0, err)
			}
			return Encode(c), nil
		},
	})
}

// makeOKLCHFunc creates oklch(l, c, h), which yields the nearest RGB colour.
func makeOKLCHFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Builds an RGB color from OKLCH lightness (0-1), chroma and hue",
		Params: []function.Parameter{
			{Name: "l", Type: cty.Number},
			{Name: "c", Type: cty.Number},
			{Name: "h", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.DynamicPseudoType),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			l, _ := args[0].AsBigFloat().Float64()
			c, _ := args[1].AsBigFloat().Float64()
			h, _ := args[2].AsBigFloat().Float64()
			if l < 0 || l > 1 {
				return cty.NilVal, function.NewArgErrorf(0, "lightness must be within 0..1, got %g", l)
			}
			return Encode(color.OKLCHToRGB(color.OKLCH{L: l, C: c, H: h})), nil
		},
	})
}

// makeShiftFunc creates brighten(color, amount) or darken(color, amount).
// Usage: brighten("#eb6f92", 0.1) or darken(palette.brand, 0.2)
func makeShiftFunc(desc string, shift func(color.RGB, float64) color.RGB) function.Function {
	return function.New(&function.Spec{
		Description: desc,
		Params: []function.Parameter{
			{Name: "color", Type: cty.DynamicPseudoType},
			{Name: "amount", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.DynamicPseudoType),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := Decode(args[0])
			if err != nil {
				return cty.NilVal, function.NewArgError(0, err)
			}
			amount, _ := args[1].AsBigFloat().Float64()
			return Encode(shift(convert.ToRGB(c), amount)), nil
		},
	})
}

// makeConvertFunc creates convert(color, "mode").
func makeConvertFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Converts a color to another mode",
		Params: []function.Parameter{
			{Name: "color", Type: cty.DynamicPseudoType},
			{Name: "mode", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.DynamicPseudoType),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := Decode(args[0])
			if err != nil {
				return cty.NilVal, function.NewArgError(0, err)
			}
			mode, err := color.ParseMode(args[1].AsString())
			if err != nil {
				return cty.NilVal, function.NewArgError(1, err)
			}
			return Encode(convert.To(c, mode)), nil
		},
	})
}
