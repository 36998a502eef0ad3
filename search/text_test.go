package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"lowercases and splits", "WhatsApp Pricing", []string{"whatsapp", "pricing"}},
		{"strips stop words", "who can help with HIPAA questions", []string{"hipaa"}},
		{"corporate phrasing removed entirely", "I need an expert looking about solutions", []string{}},
		{"punctuation is a separator", "java,python;go", []string{"java", "python", "go"}},
		{"duplicates preserved in order", "java go java", []string{"java", "go", "java"}},
		{"underscore is a word character", "snake_case term", []string{"snake_case", "term"}},
		{"only punctuation", "?!...", []string{}},
		{"empty query", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenize(tt.query))
		})
	}
}

func TestWholeWordPatterns(t *testing.T) {
	patterns := wholeWordPatterns([]string{"java"})
	pattern := patterns[0]

	t.Run("matches standalone word", func(t *testing.T) {
		assert.True(t, pattern.MatchString("HIPAA, Java, SQL"))
	})

	t.Run("case-insensitive", func(t *testing.T) {
		assert.True(t, pattern.MatchString("JAVA"))
	})

	t.Run("no substring leakage into longer words", func(t *testing.T) {
		assert.False(t, pattern.MatchString("JavaScript"))
	})

	t.Run("partial token never matches", func(t *testing.T) {
		av := wholeWordPatterns([]string{"av"})[0]
		assert.False(t, av.MatchString("Java"))
	})

	t.Run("regex metacharacters are quoted", func(t *testing.T) {
		// Tokens can't contain metacharacters after tokenize, but the
		// pattern builder must not assume that.
		p := wholeWordPatterns([]string{"c3"})[0]
		assert.True(t, p.MatchString("uses c3 daily"))
	})
}
