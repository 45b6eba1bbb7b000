package format

import (
	"regexp"

	"github.com/hashicorp/hcl/v2/hclwrite"
)

var (
	blankRuns        = regexp.MustCompile(`\n{3,}`)
	blankAfterOpen   = regexp.MustCompile(`\{\n\s*\n`)
	blankBeforeClose = regexp.MustCompile(`\n\s*\n(\s*\})`)
)

// Source formats HCL configuration in canonical style and squeezes blank lines:
// at most one in a row, none directly inside braces. It never fails on partial
// input, so editors can call it while a file is being typed.
func Source(content string) string {
	out := string(hclwrite.Format([]byte(content)))
	out = blankRuns.ReplaceAllString(out, "\n\n")
	out = blankAfterOpen.ReplaceAllString(out, "{\n")
	return blankBeforeClose.ReplaceAllString(out, "\n${1}")
}
