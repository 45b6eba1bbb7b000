package lsp

import (
	"github.com/jsvensson/colorweave/internal/color"
	"github.com/jsvensson/colorweave/internal/notation"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const diagSource = "colorweave"

// AnalysisResult holds the colours found in a document and the problems with
// notations that failed to evaluate.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Colors      []ColorLocation
}

// ColorLocation records a resolved colour at a specific source range.
type ColorLocation struct {
	Range protocol.Range
	Color color.Color
	Text  string
	IsRef bool // palette reference rather than a literal
}

// Analyze finds every colour notation in content. Malformed notations become
// warnings; unresolved palette references are skipped since documents may be
// edited without the palette they were written against.
func Analyze(p *notation.Parser, content string) *AnalysisResult {
	result := &AnalysisResult{
		Diagnostics: []protocol.Diagnostic{},
		Colors:      []ColorLocation{},
	}
	ix := newLineIndex(content)

	for _, m := range p.Find(content) {
		rng := protocol.Range{Start: ix.position(m.Start), End: ix.position(m.End)}
		if m.Err != nil {
			if !m.Ref {
				result.addWarning(rng, m.Err.Error())
			}
			continue
		}
		result.Colors = append(result.Colors, ColorLocation{
			Range: rng,
			Color: m.Color,
			Text:  m.Text,
			IsRef: m.Ref,
		})
	}
	return result
}

func (r *AnalysisResult) addWarning(rng protocol.Range, msg string) {
	severity := protocol.DiagnosticSeverityWarning
	source := diagSource
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    rng,
		Severity: &severity,
		Source:   &source,
		Message:  msg,
	})
}

// locationAt returns the colour whose range is exactly rng.
func (r *AnalysisResult) locationAt(rng protocol.Range) (ColorLocation, bool) {
	if r == nil {
		return ColorLocation{}, false
	}
	for _, cl := range r.Colors {
		if cl.Range == rng {
			return cl, true
		}
	}
	return ColorLocation{}, false
}
