package search

import (
	"regexp"
	"strings"
)

// Stop words that suppress generic corporate phrasing ("who can help me
// find a solution for...") so only domain-significant terms drive
// scoring.
var stopWords = map[string]bool{
	"who": true, "can": true, "help": true, "with": true, "questions": true,
	"about": true, "find": true, "me": true, "a": true, "an": true,
	"the": true, "i": true, "have": true, "question": true, "whether": true,
	"sinch": true, "offers": true, "solution": true, "solutions": true,
	"compliant": true, "compliance": true, "looking": true, "need": true,
	"know": true, "expert": true,
}

// nonWord matches runs of characters outside [0-9A-Za-z_].
var nonWord = regexp.MustCompile(`\W+`)

// tokenize lowercases the query, splits on runs of non-word characters,
// and drops empty tokens and stop words. Remaining tokens keep their
// left-to-right order; duplicates are preserved so a repeated token
// contributes its weight twice.
func tokenize(query string) []string {
	parts := nonWord.Split(strings.ToLower(query), -1)
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" && !stopWords[part] {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

// wholeWordPatterns compiles a case-insensitive whole-word pattern for
// each token. Whole-word matching prevents substring leakage: "Java"
// must not match a record that only mentions "JavaScript".
func wholeWordPatterns(tokens []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(tokens))
	for i, token := range tokens {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(token) + `\b`)
	}
	return patterns
}
