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


// Package openai implements ai.Reranker against OpenAI-compatible chat
// APIs, including local servers such as Ollama, LocalAI and vLLM.
//
// The model's free-text answer is treated as untrusted input: every
// integer substring is extracted and intersected with the candidate set,
// so extraneous prose, formatting, or invented identifiers never reach
// the caller.
package openai
