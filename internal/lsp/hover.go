package lsp

import (
	"fmt"
	"strings"

	"github.com/jsvensson/colorweave/internal/color"
	"github.com/jsvensson/colorweave/internal/convert"
	"github.com/jsvensson/colorweave/internal/format"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// hover lists the colour under pos in every mode. Returns nil if no colour is
// found at the position.
func hover(result *AnalysisResult, pos protocol.Position) *protocol.Hover {
	if result == nil {
		return nil
	}

	for _, cl := range result.Colors {
		if !posInRange(pos, cl.Range) {
			continue
		}

		var md strings.Builder
		fmt.Fprintf(&md, "**%s**\n\n", cl.Text)
		for _, m := range color.Modes {
			fmt.Fprintf(&md, "- %s `%s`\n", m, format.Notation(convert.To(cl.Color, m)))
		}

		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: md.String(),
			},
			Range: &cl.Range,
		}
	}

	return nil
}

func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	return hover(s.getResult(string(params.TextDocument.URI)), params.Position), nil
}
