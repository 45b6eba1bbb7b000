package lsp

import (
	"sort"
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// lineIndex converts between byte offsets and LSP positions, whose characters
// count UTF-16 code units.
type lineIndex struct {
	content string
	starts  []int
}

func newLineIndex(content string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{content: content, starts: starts}
}

func (ix *lineIndex) position(offset int) protocol.Position {
	offset = min(max(offset, 0), len(ix.content))
	line := sort.SearchInts(ix.starts, offset+1) - 1
	return protocol.Position{
		Line:      uint32(line),
		Character: uint32(utf16Len(ix.content[ix.starts[line]:offset])),
	}
}

func (ix *lineIndex) offset(pos protocol.Position) int {
	if int(pos.Line) >= len(ix.starts) {
		return len(ix.content)
	}
	start := ix.starts[pos.Line]
	end := len(ix.content)
	if int(pos.Line)+1 < len(ix.starts) {
		end = ix.starts[pos.Line+1] - 1
	}

	units := 0
	for i, r := range ix.content[start:end] {
		if units >= int(pos.Character) {
			return start + i
		}
		units += utf16.RuneLen(r)
	}
	return end
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// posInRange reports whether pos is within [r.Start, r.End).
func posInRange(pos protocol.Position, r protocol.Range) bool {
	if pos.Line < r.Start.Line || pos.Line > r.End.Line {
		return false
	}
	if pos.Line == r.Start.Line && pos.Character < r.Start.Character {
		return false
	}
	if pos.Line == r.End.Line && pos.Character >= r.End.Character {
		return false
	}
	return true
}
