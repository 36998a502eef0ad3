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


package search

import "errors"

var (
	// ErrDirectoryRequired is returned when a directory snapshot is not provided.
	ErrDirectoryRequired = errors.New("directory required")

	// ErrNoUsableRerank signals that the re-ranker returned no identifier
	// from the candidate set. It is handled inside Search and never
	// escapes to callers.
	ErrNoUsableRerank = errors.New("re-rank produced no usable identifiers")
)
