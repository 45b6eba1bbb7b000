// Package engine renders a palette through a directory of Go templates, one
// output file per template.
package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/jsvensson/colorweave/internal/color"
	"github.com/jsvensson/colorweave/internal/convert"
	"github.com/jsvensson/colorweave/internal/format"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("colorweave.engine")

// Engine renders every .tmpl file in TemplatesDir into OutputDir.
type Engine struct {
	TemplatesDir string
	OutputDir    string
	Only         []string // if non-empty, only render these template basenames
}

// Entry is one palette colour, sorted by name in TemplateData.
type Entry struct {
	Name  string
	Color color.Color
}

// TemplateData is passed to each template.
type TemplateData struct {
	Palette map[string]color.Color
	Entries []Entry
}

// Run renders the templates against palette and reports the files written.
func (e *Engine) Run(palette map[string]color.Color) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(e.TemplatesDir, "*.tmpl"))
	if err != nil {
		return nil, fmt.Errorf("globbing templates: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmpl files found in %s", e.TemplatesDir)
	}

	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	data := newTemplateData(palette)
	funcs := funcMap(palette)

	var written []string
	for _, path := range matches {
		name := strings.TrimSuffix(filepath.Base(path), ".tmpl")
		if len(e.Only) > 0 && !slices.Contains(e.Only, name) {
			continue
		}
		out, err := e.render(path, name, funcs, data)
		if err != nil {
			return written, err
		}
		log.Infof("rendered %s", out)
		written = append(written, out)
	}
	return written, nil
}

func (e *Engine) render(path, name string, funcs template.FuncMap, data TemplateData) (string, error) {
	tmpl, err := template.New(filepath.Base(path)).Funcs(funcs).Option("missingkey=error").ParseFiles(path)
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", path, err)
	}

	out := filepath.Join(e.OutputDir, name)
	f, err := os.Create(out)
	if err != nil {
		return "", fmt.Errorf("creating output file %s: %w", out, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", path, err)
	}
	return out, nil
}

func newTemplateData(palette map[string]color.Color) TemplateData {
	entries := make([]Entry, 0, len(palette))
	for name, c := range palette {
		entries = append(entries, Entry{Name: name, Color: c})
	}
	slices.SortFunc(entries, func(a, b Entry) int { return strings.Compare(a.Name, b.Name) })
	return TemplateData{Palette: palette, Entries: entries}
}

// funcMap adds palette lookup and channel access to the mode functions of
// format.FuncMap.
//
//	{{ hex (palette "brand") }} {{ channel (palette "brand") "hsl" "h" }}
func funcMap(palette map[string]color.Color) template.FuncMap {
	funcs := format.FuncMap()
	funcs["palette"] = func(name string) (color.Color, error) {
		c, ok := palette[name]
		if !ok {
			return nil, fmt.Errorf("palette color not found: %s", name)
		}
		return c, nil
	}
	funcs["channel"] = channel
	return funcs
}

// channel returns one channel of c after converting it to mode, e.g. the
// lightness of a colour as a number.
func channel(c color.Color, mode, name string) (float64, error) {
	m, err := color.ParseMode(mode)
	if err != nil {
		return 0, err
	}
	r := format.NewRecord("", convert.To(c, m))
	switch v := r.Color[name].(type) {
	case int:
		return float64(v), nil
	case float64:
		return v, nil
	}
	return 0, fmt.Errorf("mode %s has no numeric channel %q", m, name)
}
