package search

import (
	"testing"

	"github.com/poiesic/whoknows/core"
	"github.com/poiesic/whoknows/directory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreRecord(t *testing.T) {
	record := &core.DirectoryRecord{
		JobTitle:  "Support Engineer",
		Skills:    "HIPAA, Java",
		Expertise: "Healthcare, Java",
		Bio:       "Java developer helping healthcare customers",
	}

	t.Run("weight per field", func(t *testing.T) {
		assert.Equal(t, weightJobTitle, scoreRecord(record, wholeWordPatterns([]string{"engineer"})))
		assert.Equal(t, weightSkills, scoreRecord(record, wholeWordPatterns([]string{"hipaa"})))
		assert.Equal(t, weightExpertise+weightBio, scoreRecord(record, wholeWordPatterns([]string{"healthcare"})))
		assert.Equal(t, weightBio, scoreRecord(record, wholeWordPatterns([]string{"developer"})))
	})

	t.Run("token scoring on multiple fields sums weights", func(t *testing.T) {
		// "java" appears in skills, expertise and bio.
		got := scoreRecord(record, wholeWordPatterns([]string{"java"}))
		assert.Equal(t, weightSkills+weightExpertise+weightBio, got)
	})

	t.Run("duplicate tokens double their contribution", func(t *testing.T) {
		once := scoreRecord(record, wholeWordPatterns([]string{"hipaa"}))
		twice := scoreRecord(record, wholeWordPatterns([]string{"hipaa", "hipaa"}))
		assert.Equal(t, 2*once, twice)
	})

	t.Run("no match scores zero", func(t *testing.T) {
		assert.Equal(t, 0, scoreRecord(record, wholeWordPatterns([]string{"kubernetes"})))
	})

	t.Run("whole-word rule blocks substrings", func(t *testing.T) {
		js := &core.DirectoryRecord{Skills: "JavaScript"}
		assert.Equal(t, 0, scoreRecord(js, wholeWordPatterns([]string{"java"})))
	})

	t.Run("deterministic", func(t *testing.T) {
		patterns := wholeWordPatterns([]string{"java", "hipaa"})
		first := scoreRecord(record, patterns)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, scoreRecord(record, patterns))
		}
	})
}

func TestScoreAll(t *testing.T) {
	dir := loadTestDirectory(t, `Name,Job Title,Bio,Skills,Expertise,Email,Department
A,Engineer,,Java,,a@x.com,Eng
B,Sales,,,,b@x.com,Sales
C,Engineer,,Go,,c@x.com,Eng
`)
	searcher, err := NewSearcher(dir)
	require.NoError(t, err)
	defer searcher.Release()

	records := dir.FilterByDepartment("Eng")
	candidates := searcher.scoreAll(records, wholeWordPatterns([]string{"java", "engineer"}))

	require.Len(t, candidates, 2)
	// Output order matches input order regardless of pool scheduling.
	assert.Equal(t, core.ID(0), candidates[0].Record.Id)
	assert.Equal(t, weightSkills+weightJobTitle, candidates[0].Score)
	assert.Equal(t, core.ID(2), candidates[1].Record.Id)
	assert.Equal(t, weightJobTitle, candidates[1].Score)
}

func TestScoreAllAfterRelease(t *testing.T) {
	dir := loadTestDirectory(t, `Name,Job Title,Bio,Skills,Expertise,Email,Department
A,Engineer,,Java,,a@x.com,Eng
`)
	searcher, err := NewSearcher(dir)
	require.NoError(t, err)
	searcher.Release()

	// Inline fallback still scores correctly.
	candidates := searcher.scoreAll(dir.FilterByDepartment(directory.AllDepartments), wholeWordPatterns([]string{"java"}))
	require.Len(t, candidates, 1)
	assert.Equal(t, weightSkills, candidates[0].Score)
}
