package format

import (
	"fmt"
	"io"
	"text/template"

	"github.com/jsvensson/colorweave/internal/color"
	"github.com/jsvensson/colorweave/internal/convert"
)

// TemplateData is the data passed to templates.
type TemplateData struct {
	Input string
	Color color.Color
}

// FuncMap exposes one function per mode, each converting its argument and
// rendering it as notation, plus hexBare.
//
//	{{ hex .Color }} {{ lab .Color }} {{ hexBare .Color }}
func FuncMap() template.FuncMap {
	funcs := template.FuncMap{
		"hexBare": func(c color.Color) string {
			return convert.ToRGB(c).HexBare()
		},
		"notation": Notation,
	}
	for _, m := range color.Modes {
		funcs[string(m)] = func(c color.Color) string {
			return Notation(convert.To(c, m))
		}
	}
	return funcs
}

// Template is a parsed output template.
type Template struct {
	tmpl *template.Template
}

// ParseTemplate parses text with FuncMap available.
func ParseTemplate(text string) (*Template, error) {
	tmpl, err := template.New("output").Funcs(FuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return &Template{tmpl: tmpl}, nil
}

// Execute renders the template for one colour, followed by a newline.
func (t *Template) Execute(w io.Writer, input string, c color.Color) error {
	if err := t.tmpl.Execute(w, TemplateData{Input: input, Color: c}); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	_, err := fmt.Fprintln(w)
	return err
}
