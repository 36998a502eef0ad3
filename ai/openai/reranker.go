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


package openai

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/poiesic/whoknows/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// integerPattern matches every run of digits in the model's answer.
var integerPattern = regexp.MustCompile(`\d+`)

// Reranker implements ai.Reranker using OpenAI-compatible chat APIs.
type Reranker struct {
	client llms.Model
	logger *slog.Logger
}

// newReranker is an internal constructor that returns the concrete type.
func newReranker(config *ai.Config) (*Reranker, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.Token),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &Reranker{
		client: client,
		logger: slog.Default().With("component", "openai-reranker"),
	}, nil
}

// NewReranker creates a reranker using the provided configuration.
//
// Returns ai.Reranker interface to enforce abstraction.
func NewReranker(config *ai.Config) (ai.Reranker, error) {
	return newReranker(config)
}

// RerankCandidates asks the model to select the best-matching candidates
// for the query. The answer is parsed tolerantly: every integer substring
// is considered, and only integers present in the candidate set survive,
// deduplicated in the model's stated order.
func (r *Reranker) RerankCandidates(ctx context.Context, query string, candidates []ai.Candidate) ([]int, error) {
	if len(candidates) == 0 {
		return nil, ai.ErrNoCandidates
	}

	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(rerankSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildRerankPrompt(query, candidates)),
			},
		},
	}

	response, err := r.client.GenerateContent(ctx, messages, llms.WithTemperature(0.0))
	if err != nil {
		r.logger.Warn("rerank call failed", "err", err)
		return nil, err
	}
	if len(response.Choices) < 1 {
		r.logger.Debug("no choices returned from model")
		return nil, ai.ErrEmptyResponse
	}

	selected := filterToCandidateSet(extractIntegers(response.Choices[0].Content), candidates)
	if len(selected) == 0 {
		r.logger.Debug("model answer contained no usable identifiers",
			"answer", response.Choices[0].Content)
		return nil, ai.ErrNoValidCandidates
	}

	r.logger.Debug("rerank succeeded", "candidates", len(candidates), "selected", len(selected))
	return selected, nil
}

// extractIntegers pulls every integer substring out of free text, in
// order of appearance.
func extractIntegers(text string) []int {
	matches := integerPattern.FindAllString(text, -1)
	integers := make([]int, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(m)
		if err != nil {
			// A digit run too long for an int can't be a candidate index.
			continue
		}
		integers = append(integers, n)
	}
	return integers
}

// filterToCandidateSet keeps only integers that are indices of the given
// candidates, preserving order and dropping repeats.
func filterToCandidateSet(integers []int, candidates []ai.Candidate) []int {
	valid := make(map[int]bool, len(candidates))
	for _, c := range candidates {
		valid[c.Index] = true
	}

	selected := make([]int, 0, len(integers))
	for _, n := range integers {
		if valid[n] {
			selected = append(selected, n)
			valid[n] = false
		}
	}
	return selected
}
