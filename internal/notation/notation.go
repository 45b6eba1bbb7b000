// Package notation reads colours written as text.
//
// A colour is either a hex literal ("#ff8800", "#f80") or an HCL expression built
// from the notation functions:
//
//	rgb(255, 136, 0)
//	hsl(32, 100, 50)
//	cmyk(0, 47, 100, 0)
//	lab(71.6, 36.9, 76.2)
//	xyz(52.6, 43.3, 5.7)
//	oklch(0.75, 0.17, 60)
//	brighten(palette.brand, 0.1)
//	convert("#ff8800", "lab")
//
// Inside expressions colours travel as objects such as {type = "rgb", r = 255, ...};
// a plain string is read as hex.
package notation

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/colorweave/internal/color"
	"github.com/zclconf/go-cty/cty"
)

// Parser evaluates notations against a fixed set of named palette colours.
// It is safe for concurrent use once built.
type Parser struct {
	ctx *hcl.EvalContext
}

// NewParser builds a Parser whose expressions can reference palette.<name>.
func NewParser(palette map[string]color.Color) *Parser {
	return &Parser{ctx: BuildEvalContext(palette)}
}

// Parse parses src with no palette.
func Parse(src string) (color.Color, error) {
	return NewParser(nil).Parse(src)
}

// Parse parses one colour notation.
func (p *Parser) Parse(src string) (color.Color, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, fmt.Errorf("empty color")
	}
	if strings.HasPrefix(src, "#") {
		return parseHexLiteral(src)
	}

	expr, diags := hclsyntax.ParseExpression([]byte(src), "color", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing %q: %s", src, diags.Error())
	}
	val, diags := expr.Value(p.ctx)
	if diags.HasErrors() {
		return nil, fmt.Errorf("evaluating %q: %s", src, diags.Error())
	}

	c, err := Decode(val)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", src, err)
	}
	return c, nil
}

// BuildEvalContext creates an HCL evaluation context with the palette variable and
// all notation functions.
func BuildEvalContext(palette map[string]color.Color) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"palette": paletteToCty(palette),
		},
		Functions: Functions(),
	}
}

func paletteToCty(palette map[string]color.Color) cty.Value {
	if len(palette) == 0 {
		return cty.EmptyObjectVal
	}

	vals := make(map[string]cty.Value, len(palette))
	for name, c := range palette {
		vals[name] = Encode(c)
	}
	return cty.ObjectVal(vals)
}
