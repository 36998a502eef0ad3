package search

import (
	"regexp"
	"sync"

	"github.com/poiesic/whoknows/core"
)

// Field weights. Title and skills matches are the strongest signal of
// competence; bio matches are the weakest since a bio may mention a term
// in passing.
const (
	weightJobTitle  = 10
	weightSkills    = 10
	weightExpertise = 5
	weightBio       = 3
)

// scoreRecord computes the weighted lexical relevance of one record. A
// token may score on several fields, and a duplicated token contributes
// its weights again.
func scoreRecord(record *core.DirectoryRecord, patterns []*regexp.Regexp) int {
	score := 0
	for _, pattern := range patterns {
		if pattern.MatchString(record.JobTitle) {
			score += weightJobTitle
		}
		if pattern.MatchString(record.Skills) {
			score += weightSkills
		}
		if pattern.MatchString(record.Expertise) {
			score += weightExpertise
		}
		if pattern.MatchString(record.Bio) {
			score += weightBio
		}
	}
	return score
}

// scoreAll scores every record on the worker pool, keeping results
// indexed so the output order matches the input order regardless of task
// scheduling. Compiled regexps are safe for concurrent use.
func (s *Searcher) scoreAll(records []*core.DirectoryRecord, patterns []*regexp.Regexp) []core.Candidate {
	scores := make([]int, len(records))

	var wg sync.WaitGroup
	for i := range records {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			scores[i] = scoreRecord(records[i], patterns)
		}
		if s.pool == nil || s.pool.Submit(task) != nil {
			// Pool unavailable or released: run inline, still correct.
			task()
		}
	}
	wg.Wait()

	candidates := make([]core.Candidate, len(records))
	for i, record := range records {
		candidates[i] = core.Candidate{Record: record, Score: scores[i]}
	}
	return candidates
}
