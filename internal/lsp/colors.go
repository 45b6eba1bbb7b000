package lsp

import (
	"math"
	"slices"

	"github.com/jsvensson/colorweave/internal/color"
	"github.com/jsvensson/colorweave/internal/convert"
	"github.com/jsvensson/colorweave/internal/format"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// colorToLSP converts to the protocol's float channels in [0, 1].
func colorToLSP(c color.RGB) protocol.Color {
	return protocol.Color{
		Red:   float32(c.R) / 255.0,
		Green: float32(c.G) / 255.0,
		Blue:  float32(c.B) / 255.0,
		Alpha: 1.0,
	}
}

// lspToRGB rounds protocol channels to bytes; alpha is dropped.
func lspToRGB(c protocol.Color) color.RGB {
	return color.RGB{R: channel(c.Red), G: channel(c.Green), B: channel(c.Blue)}
}

func channel(v float32) uint8 {
	return uint8(math.Round(min(max(float64(v), 0), 1) * 255))
}

func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(convert.ToRGB(cl.Color)),
		})
	}
	return infos
}

// colorPresentation offers the picked colour in every mode, starting with the
// mode of the notation being replaced. Palette references get no edits so they
// are never replaced by literals.
func colorPresentation(result *AnalysisResult, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	modes := color.Modes
	if cl, ok := result.locationAt(params.Range); ok {
		if cl.IsRef {
			return []protocol.ColorPresentation{}
		}
		current := cl.Color.Mode()
		modes = append([]color.Mode{current}, slices.DeleteFunc(slices.Clone(modes), func(m color.Mode) bool {
			return m == current
		})...)
	}

	picked := lspToRGB(params.Color)
	presentations := make([]protocol.ColorPresentation, 0, len(modes))
	for _, m := range modes {
		label := format.Notation(convert.To(picked, m))
		presentations = append(presentations, protocol.ColorPresentation{
			Label: label,
			TextEdit: &protocol.TextEdit{
				Range:   params.Range,
				NewText: label,
			},
		})
	}
	return presentations
}

func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	return documentColors(s.getResult(string(params.TextDocument.URI))), nil
}

func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	return colorPresentation(s.getResult(string(params.TextDocument.URI)), params), nil
}
