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


package directory

import "errors"

var (
	// ErrSourceNotFound is returned when the directory source file does
	// not exist. Callers should treat this as "no data available" rather
	// than a fatal condition.
	ErrSourceNotFound = errors.New("directory source not found")

	// ErrMissingHeader is returned when the source is missing one or more
	// of the expected header columns.
	ErrMissingHeader = errors.New("directory source missing header column")
)
