package analyze

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	beforePunctRe = regexp.MustCompile(`\s+([.,!?;:])`)
	afterPunctRe  = regexp.MustCompile(`([.,!?;:])([\p{L}\p{N}_])`)
)

// Normalize collapses runs of whitespace to single spaces, removes
// whitespace before sentence punctuation and inserts a space after
// punctuation that is glued to the following word. Idempotent:
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = beforePunctRe.ReplaceAllString(text, "$1")
	text = afterPunctRe.ReplaceAllString(text, "$1 $2")
	return strings.TrimSpace(text)
}
