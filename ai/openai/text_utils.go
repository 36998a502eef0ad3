package openai

import (
	"strings"
	"unicode"
)

// scrubQuery collapses whitespace and strips control characters so the
// query text cannot break the prompt structure.
func scrubQuery(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
