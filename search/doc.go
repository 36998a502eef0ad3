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


// Package search implements the hybrid search-and-rank pipeline over a
// directory snapshot.
//
// The Searcher type composes a multi-stage pipeline:
//   - Department filtering over the immutable directory snapshot
//   - Lexical scoring with weighted whole-word matching per field
//   - Candidate selection with bounded truncation
//   - Optional AI re-ranking with strict fallback guarantees
//
// The AI step is advisory only: any failure degrades silently to the
// deterministic score ordering, so search never depends on the model
// being reachable or well-behaved.
package search
