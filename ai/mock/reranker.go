// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package mock

import (
	"context"
	"sync"

	"github.com/poiesic/whoknows/ai"
)

// MockReranker is a test double for ai.Reranker. It returns scripted
// indices or a scripted error and records what it was called with.
type MockReranker struct {
	mu sync.Mutex

	// Indices is returned from RerankCandidates when Err is nil.
	Indices []int

	// Err, when set, is returned from every call.
	Err error

	// CallCount tracks how many times RerankCandidates was invoked.
	CallCount int

	// LastQuery and LastCandidates record the most recent call's inputs.
	LastQuery      string
	LastCandidates []ai.Candidate
}

var _ ai.Reranker = (*MockReranker)(nil)

// NewMockReranker creates a mock that echoes back the input candidate
// indices in order until scripted otherwise.
func NewMockReranker() *MockReranker {
	return &MockReranker{}
}

// RerankCandidates returns the scripted result. When neither Indices nor
// Err is set, it echoes the input candidates' indices in order.
func (m *MockReranker) RerankCandidates(_ context.Context, query string, candidates []ai.Candidate) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	m.LastQuery = query
	m.LastCandidates = candidates

	if m.Err != nil {
		return nil, m.Err
	}
	if m.Indices != nil {
		return m.Indices, nil
	}

	indices := make([]int, 0, len(candidates))
	for _, c := range candidates {
		indices = append(indices, c.Index)
	}
	return indices, nil
}
