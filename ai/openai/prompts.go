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
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/poiesic/whoknows/ai"
)

// rerankSystemPrompt frames the model as a recruiter choosing from a
// fixed shortlist. The index-list output format keeps parsing tolerant.
const rerankSystemPrompt = `Act as a recruiter. You will receive a search query and a CSV list of candidates.
Select the top 3-5 candidates who best match the user's intent.
If specific technical terms (like HIPAA, Python, Marketo) are used, PRIORITIZE candidates who have those exact skills over generalists.
Return ONLY a list of the chosen index values, e.g. [5, 12].`

// buildRerankPrompt renders the user message: the literal query followed
// by a CSV excerpt of the candidates.
func buildRerankPrompt(query string, candidates []ai.Candidate) string {
	var sb strings.Builder
	sb.WriteString("Query: \"")
	sb.WriteString(scrubQuery(query))
	sb.WriteString("\"\nCandidates:\n")

	w := csv.NewWriter(&sb)
	w.Write([]string{"index", "name", "job_title", "bio", "skills"})
	for _, c := range candidates {
		w.Write([]string{
			strconv.Itoa(c.Index),
			c.Name,
			c.JobTitle,
			c.Bio,
			c.Skills,
		})
	}
	w.Flush()

	return sb.String()
}
