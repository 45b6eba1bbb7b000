package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestFormatting(t *testing.T) {
	content := "mode   =   \"hsl\"\n\n\n\nfield {\n\n  width = 10\n}\n"
	edits := formatting("file:///proj/colorweave.hcl", content)
	if len(edits) != 1 {
		t.Fatalf("got %d edits, want 1", len(edits))
	}

	want := "mode = \"hsl\"\n\nfield {\n  width = 10\n}\n"
	if edits[0].NewText != want {
		t.Errorf("NewText = %q, want %q", edits[0].NewText, want)
	}
	wantRange := protocol.Range{End: protocol.Position{Line: 8, Character: 0}}
	if edits[0].Range != wantRange {
		t.Errorf("Range = %+v, want the whole document %+v", edits[0].Range, wantRange)
	}
}

func TestFormattingSkips(t *testing.T) {
	if edits := formatting("file:///a.css", "a   =   1"); len(edits) != 0 {
		t.Errorf("non-HCL document got %d edits", len(edits))
	}
	if edits := formatting("file:///a.hcl", "a = 1\n"); len(edits) != 0 {
		t.Errorf("formatted document got %d edits", len(edits))
	}
}
