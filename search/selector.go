package search

import (
	"sort"

	"github.com/poiesic/whoknows/core"
)

const (
	// maxCandidates bounds the set handed to the re-ranker.
	maxCandidates = 40

	// fallbackLimit caps the deterministic result when no re-rank applies.
	fallbackLimit = 5

	// recentLimit is the number of records returned for a query with no
	// usable tokens.
	recentLimit = 10

	// rerankThreshold is the candidate count above which re-ranking is
	// attempted. At or below it the selector's ordering is already final.
	rerankThreshold = 3
)

// Status messages accompanying short-circuit outcomes.
const (
	msgNoDepartmentMatches = "No matches in this department."
	msgShowingRecent       = "Showing recent employees."
	msgNoKeywordMatches    = "No direct keyword matches found."
)

// selectCandidates scores the department-filtered records and truncates
// to the bounded candidate set. Records with score 0 are discarded; ties
// keep storage order. Returns a status message instead of candidates
// when nothing scored.
func (s *Searcher) selectCandidates(records []*core.DirectoryRecord, tokens []string) ([]core.Candidate, string) {
	patterns := wholeWordPatterns(tokens)
	scored := s.scoreAll(records, patterns)

	candidates := make([]core.Candidate, 0, len(scored))
	for _, c := range scored {
		if c.Score > 0 {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return nil, msgNoKeywordMatches
	}

	// Stable sort: equal scores keep storage order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}
	return candidates, ""
}

// recentRecords returns the first records in storage order, the fallback
// for a query that tokenizes to nothing.
func recentRecords(records []*core.DirectoryRecord) []core.ID {
	limit := min(recentLimit, len(records))
	ids := make([]core.ID, limit)
	for i := 0; i < limit; i++ {
		ids[i] = records[i].Id
	}
	return ids
}
