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


// Package ai defines the language-model interfaces used to refine search
// results.
//
// The Reranker interface is the only AI capability the search pipeline
// depends on. It is strictly advisory: implementations may fail for any
// reason (network, malformed output, no usable answer) and callers are
// expected to fall back to their own deterministic ordering. The package
// also provides the shared Config used by concrete providers.
package ai
