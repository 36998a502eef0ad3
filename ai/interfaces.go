package ai

import "context"

// Reranker refines an ordered candidate list using a language model.
// Implementations must be thread-safe for concurrent use.
type Reranker interface {
	// RerankCandidates asks the model to pick the candidates that best
	// match the query's intent. The returned indices refer to Candidate
	// Index values from the input, in the model's preference order, and
	// are always a subset of the input set. Returns an error when the
	// model is unreachable or produces no usable answer; callers must
	// treat any error as "use your own ordering".
	RerankCandidates(ctx context.Context, query string, candidates []Candidate) ([]int, error)
}
