package lsp

import (
	"strings"

	"github.com/jsvensson/colorweave/internal/format"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// formatting formats HCL documents such as colorweave.hcl as one whole-document
// edit. Other documents are left alone.
func formatting(uri, content string) []protocol.TextEdit {
	if !strings.HasSuffix(uri, ".hcl") {
		return []protocol.TextEdit{}
	}
	formatted := format.Source(content)
	if formatted == content {
		return []protocol.TextEdit{}
	}
	return []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{},
			End:   newLineIndex(content).position(len(content)),
		},
		NewText: formatted,
	}}
}

func (s *Server) textDocumentFormatting(_ *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	uri := string(params.TextDocument.URI)
	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}
	return formatting(uri, content), nil
}
