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


package ai

import "errors"

var (
	// ErrEmptyResponse is returned when the model produces no choices.
	ErrEmptyResponse = errors.New("model returned an empty response")

	// ErrNoValidCandidates is returned when the model's answer contains
	// no identifiers from the candidate set after filtering.
	ErrNoValidCandidates = errors.New("model returned no valid candidate identifiers")

	// ErrNoCandidates is returned when RerankCandidates is called with an
	// empty candidate list.
	ErrNoCandidates = errors.New("no candidates to rerank")
)
