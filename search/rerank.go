package search

import (
	"context"

	"github.com/poiesic/whoknows/ai"
	"github.com/poiesic/whoknows/core"
)

// rerank sends the candidate set to the configured re-ranker and maps
// the answer back to record IDs. The returned IDs are re-validated
// against the candidate set here as well: even a misbehaving Reranker
// implementation cannot smuggle an out-of-set identifier into results.
func (s *Searcher) rerank(ctx context.Context, query string, candidates []core.Candidate) ([]core.ID, error) {
	excerpts := make([]ai.Candidate, len(candidates))
	valid := make(map[int]bool, len(candidates))
	for i, c := range candidates {
		excerpts[i] = ai.Candidate{
			Index:    int(c.Record.Id),
			Name:     c.Record.Name,
			JobTitle: c.Record.JobTitle,
			Bio:      c.Record.Bio,
			Skills:   c.Record.Skills,
		}
		valid[int(c.Record.Id)] = true
	}

	indices, err := s.reranker.RerankCandidates(ctx, query, excerpts)
	if err != nil {
		return nil, err
	}

	ids := make([]core.ID, 0, len(indices))
	for _, n := range indices {
		if valid[n] {
			ids = append(ids, core.ID(n))
			valid[n] = false
		}
	}
	if len(ids) == 0 {
		return nil, ErrNoUsableRerank
	}
	return ids, nil
}

// rankCandidates produces the final ordered ID list: the re-ranker's
// answer when one is configured, usable, and worthwhile, otherwise the
// selector's top candidates by score. Re-rank failure is never fatal.
func (s *Searcher) rankCandidates(ctx context.Context, query string, candidates []core.Candidate, monitor SearchMonitor) []core.ID {
	if s.reranker != nil && len(candidates) > rerankThreshold {
		ids, err := s.rerank(ctx, query, candidates)
		if err == nil {
			monitor.RerankApplied(ids)
			return ids
		}
		s.logger.Warn("re-rank unavailable, using deterministic ranking", "err", err)
		monitor.RerankFallback(err)
	}

	limit := min(fallbackLimit, len(candidates))
	ids := make([]core.ID, limit)
	for i := 0; i < limit; i++ {
		ids[i] = candidates[i].Record.Id
	}
	return ids
}
