package search

import "github.com/poiesic/whoknows/core"

// SearchMonitor provides hooks to observe the search pipeline.
// Implement this interface to track intermediate steps and results.
type SearchMonitor interface {
	Start(query string)
	AfterDepartmentFilter(recordCount int)
	AfterTokenize(tokens []string)
	AfterSelection(candidates []core.Candidate)
	RerankApplied(ids []core.ID)
	RerankFallback(err error)
	Finish(outcome *core.SearchOutcome)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                    {}
func (n *noopMonitor) AfterDepartmentFilter(_ int)       {}
func (n *noopMonitor) AfterTokenize(_ []string)          {}
func (n *noopMonitor) AfterSelection(_ []core.Candidate) {}
func (n *noopMonitor) RerankApplied(_ []core.ID)         {}
func (n *noopMonitor) RerankFallback(_ error)            {}
func (n *noopMonitor) Finish(_ *core.SearchOutcome)      {}
