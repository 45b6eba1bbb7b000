package lsp

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/jsvensson/colorweave/internal/color"
	"github.com/jsvensson/colorweave/internal/format"
	"github.com/jsvensson/colorweave/internal/notation"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/zclconf/go-cty/cty"
)

var (
	palettePrefix = regexp.MustCompile(`\bpalette\.[A-Za-z0-9_-]*$`)
	wordPrefix    = regexp.MustCompile(`(?:^|[^A-Za-z0-9_.#])[A-Za-z]+$`)
)

// complete offers palette names after "palette." and notation function snippets
// while an identifier is being typed.
func complete(palette map[string]color.Color, content string, pos protocol.Position) []protocol.CompletionItem {
	ix := newLineIndex(content)
	end := ix.offset(pos)
	start := ix.offset(protocol.Position{Line: pos.Line})
	before := content[start:end]

	if palettePrefix.MatchString(before) {
		return paletteCompletions(palette)
	}
	if wordPrefix.MatchString(before) {
		return functionCompletions(len(palette) > 0)
	}
	return nil
}

func paletteCompletions(palette map[string]color.Color) []protocol.CompletionItem {
	kind := protocol.CompletionItemKindColor
	items := make([]protocol.CompletionItem, 0, len(palette))
	for name, c := range palette {
		items = append(items, protocol.CompletionItem{
			Label:  name,
			Kind:   &kind,
			Detail: strPtr(format.Notation(c)),
		})
	}
	slices.SortFunc(items, func(a, b protocol.CompletionItem) int {
		return strings.Compare(a.Label, b.Label)
	})
	return items
}

// functionCompletions builds a snippet per notation function from its parameter
// list; string parameters are quoted.
func functionCompletions(withPalette bool) []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet
	kind := protocol.CompletionItemKindFunction

	var items []protocol.CompletionItem
	for name, fn := range notation.Functions() {
		params := fn.Params()
		names := make([]string, len(params))
		slots := make([]string, len(params))
		for i, p := range params {
			names[i] = p.Name
			slot := fmt.Sprintf("${%d:%s}", i+1, p.Name)
			if p.Type == cty.String {
				slot = `"` + slot + `"`
			}
			slots[i] = slot
		}
		snippet := name + "(" + strings.Join(slots, ", ") + ")"
		items = append(items, protocol.CompletionItem{
			Label:            name,
			Kind:             &kind,
			Detail:           strPtr(name + "(" + strings.Join(names, ", ") + ")"),
			Documentation:    fn.Description(),
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		})
	}
	slices.SortFunc(items, func(a, b protocol.CompletionItem) int {
		return strings.Compare(a.Label, b.Label)
	})

	if withPalette {
		insert := "palette."
		items = append(items, protocol.CompletionItem{
			Label:      "palette",
			Kind:       completionKindPtr(protocol.CompletionItemKindVariable),
			Detail:     strPtr("palette reference"),
			InsertText: &insert,
		})
	}
	return items
}

func completionKindPtr(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}

func strPtr(s string) *string {
	return &s
}

func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}
	return complete(s.palette, content, params.Position), nil
}
