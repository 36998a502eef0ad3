package search

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/whoknows/ai"
	"github.com/poiesic/whoknows/core"
	"github.com/poiesic/whoknows/directory"
)

// Searcher runs the search-and-rank pipeline over a directory snapshot.
// A Searcher is safe for concurrent use: the snapshot is read-only and
// scoring state lives on the stack of each call.
type Searcher struct {
	directory *directory.Directory
	reranker  ai.Reranker
	pool      *ants.Pool
	logger    *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithReranker sets the AI re-ranker. Default is none, which makes the
// pipeline fully deterministic.
func WithReranker(reranker ai.Reranker) Option {
	return func(s *Searcher) error {
		s.reranker = reranker
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent scoring.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(s *Searcher) error {
		if size < 1 {
			size = 1
		}
		if s.pool != nil {
			s.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		s.pool = pool
		return nil
	}
}

// NewSearcher creates a searcher over the given directory snapshot.
func NewSearcher(dir *directory.Directory, opts ...Option) (*Searcher, error) {
	if dir == nil {
		return nil, ErrDirectoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	s := &Searcher{
		directory: dir,
		pool:      pool,
		logger:    slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			s.Release()
			return nil, err
		}
	}

	return s, nil
}

// Release frees the scoring worker pool. The Searcher remains usable
// afterwards, falling back to inline scoring.
func (s *Searcher) Release() {
	if s.pool != nil {
		s.pool.Release()
		s.pool = nil
	}
}

// Search runs the full pipeline for one query. The outcome always takes
// one of three shapes: ranked IDs with no message, the recent-employees
// list with its message, or empty IDs with a message explaining why.
func (s *Searcher) Search(ctx context.Context, query, departmentFilter string) *core.SearchOutcome {
	return s.SearchWithMonitor(ctx, query, departmentFilter, nil)
}

// SearchWithMonitor runs the full pipeline with monitoring. The monitor
// receives callbacks at each stage.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query, departmentFilter string, monitor SearchMonitor) *core.SearchOutcome {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(query)

	records := s.directory.FilterByDepartment(departmentFilter)
	monitor.AfterDepartmentFilter(len(records))
	if len(records) == 0 {
		return s.finish(monitor, &core.SearchOutcome{IDs: []core.ID{}, Message: msgNoDepartmentMatches})
	}

	tokens := tokenize(query)
	monitor.AfterTokenize(tokens)
	if len(tokens) == 0 {
		// Empty-intent query: still show something rather than nothing.
		return s.finish(monitor, &core.SearchOutcome{IDs: recentRecords(records), Message: msgShowingRecent})
	}

	candidates, message := s.selectCandidates(records, tokens)
	monitor.AfterSelection(candidates)
	if len(candidates) == 0 {
		return s.finish(monitor, &core.SearchOutcome{IDs: []core.ID{}, Message: message})
	}

	ids := s.rankCandidates(ctx, query, candidates, monitor)
	return s.finish(monitor, &core.SearchOutcome{IDs: ids})
}

func (s *Searcher) finish(monitor SearchMonitor, outcome *core.SearchOutcome) *core.SearchOutcome {
	monitor.Finish(outcome)
	return outcome
}
