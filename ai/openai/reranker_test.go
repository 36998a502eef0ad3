package openai

import (
	"strings"
	"testing"

	"github.com/poiesic/whoknows/ai"
	"github.com/stretchr/testify/assert"
)

func testCandidates() []ai.Candidate {
	return []ai.Candidate{
		{Index: 3, Name: "Alice Ray", JobTitle: "Support Engineer", Skills: "HIPAA, Java"},
		{Index: 7, Name: "Bob Chen", JobTitle: "Sales"},
		{Index: 12, Name: "Carol Diaz", JobTitle: "Backend Developer", Skills: "Go"},
	}
}

func TestExtractIntegers(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []int
	}{
		{"plain list", "[3, 12]", []int{3, 12}},
		{"prose around the list", "The best matches are 12 and 3, clearly.", []int{12, 3}},
		{"markdown fenced answer", "```\n[7]\n```", []int{7}},
		{"no integers at all", "I cannot decide.", []int{}},
		{"digits embedded in words", "top3candidates: 7", []int{3, 7}},
		{"empty text", "", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractIntegers(tt.text))
		})
	}
}

func TestFilterToCandidateSet(t *testing.T) {
	candidates := testCandidates()

	t.Run("keeps only in-set indices in model order", func(t *testing.T) {
		got := filterToCandidateSet([]int{12, 99, 3, 400}, candidates)
		assert.Equal(t, []int{12, 3}, got)
	})

	t.Run("drops repeats, first occurrence wins", func(t *testing.T) {
		got := filterToCandidateSet([]int{7, 3, 7, 3}, candidates)
		assert.Equal(t, []int{7, 3}, got)
	})

	t.Run("only out-of-set integers", func(t *testing.T) {
		assert.Empty(t, filterToCandidateSet([]int{1, 2, 99}, candidates))
	})

	t.Run("no integers", func(t *testing.T) {
		assert.Empty(t, filterToCandidateSet(nil, candidates))
	})
}

// The subset property must hold for arbitrary model output, including
// adversarial text.
func TestAdversarialAnswers(t *testing.T) {
	candidates := testCandidates()
	answers := []string{
		"no numbers here, just vibes",
		"999999999999999999999999999999",
		"[-1, 0, 1, 2]",
		"indices: 3 7 12 3 7 12 99 100",
		"I'd pick candidate #12 (Carol Diaz) and maybe #5.",
	}

	valid := map[int]bool{3: true, 7: true, 12: true}
	for _, answer := range answers {
		got := filterToCandidateSet(extractIntegers(answer), candidates)
		for _, n := range got {
			assert.True(t, valid[n], "answer %q yielded out-of-set index %d", answer, n)
		}
	}
}

func TestBuildRerankPrompt(t *testing.T) {
	prompt := buildRerankPrompt("HIPAA expert", testCandidates())

	assert.Contains(t, prompt, `Query: "HIPAA expert"`)
	assert.Contains(t, prompt, "index,name,job_title,bio,skills")
	assert.Contains(t, prompt, "3,Alice Ray,Support Engineer")
	assert.Contains(t, prompt, "12,Carol Diaz,Backend Developer")
}

func TestScrubQuery(t *testing.T) {
	assert.Equal(t, "a b c", scrubQuery("a\nb\t c"))
	assert.Equal(t, "plain", scrubQuery("plain"))
	assert.Equal(t, "", scrubQuery("\n\t "))
}

func TestNewReranker(t *testing.T) {
	t.Run("invalid config", func(t *testing.T) {
		_, err := NewReranker(&ai.Config{})
		assert.Error(t, err)
	})

	t.Run("valid config", func(t *testing.T) {
		r, err := NewReranker(ai.NewConfig())
		assert.NoError(t, err)
		assert.NotNil(t, r)
	})
}

func TestSystemPromptMentionsFormat(t *testing.T) {
	// Guard against prompt edits that drop the output-format instruction
	// the tolerant parser relies on.
	assert.True(t, strings.Contains(rerankSystemPrompt, "index"))
}
