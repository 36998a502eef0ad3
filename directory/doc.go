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


// Package directory loads and serves the employee directory.
//
// The Store reads a tabular CSV source into an immutable in-memory
// Directory snapshot. Loads are memoized by content fingerprint: repeated
// loads of an unchanged source return the cached snapshot without
// re-parsing. A Directory is write-once/read-many and safe for unlimited
// concurrent readers.
package directory
