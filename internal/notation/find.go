package notation

import (
	"regexp"
	"slices"

	"github.com/jsvensson/colorweave/internal/color"
)

var (
	hexPattern  = regexp.MustCompile(`#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{3})\b`)
	callPattern = regexp.MustCompile(`\b(?:rgb|hsl|cmyk|lab|xyz|oklch)\([^()\n]*\)`)
	refPattern  = regexp.MustCompile(`\bpalette\.[A-Za-z_][A-Za-z0-9_-]*`)
)

// Match is a notation found inside a larger text. Start and End are byte offsets.
// Err is set when the text looks like a colour but does not evaluate to one.
// Ref marks palette references, which only resolve when the parser has a palette.
type Match struct {
	Start, End int
	Text       string
	Color      color.Color
	Err        error
	Ref        bool
}

// Find locates hex literals, constructor calls such as rgb(...) and palette
// references in text, in order of appearance.
func (p *Parser) Find(text string) []Match {
	var matches []Match
	for _, pattern := range []*regexp.Regexp{hexPattern, callPattern, refPattern} {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			if loc[0] > 0 && isWordByte(text[loc[0]-1]) {
				continue
			}
			src := text[loc[0]:loc[1]]
			c, err := p.Parse(src)
			matches = append(matches, Match{
				Start: loc[0],
				End:   loc[1],
				Text:  src,
				Color: c,
				Err:   err,
				Ref:   pattern == refPattern,
			})
		}
	}
	slices.SortStableFunc(matches, func(a, b Match) int { return a.Start - b.Start })
	return matches
}

func isWordByte(b byte) bool {
	return b == '_' || b == '&' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
