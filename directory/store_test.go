package directory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/whoknows/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Name,Job Title,Bio,Skills,Expertise,Email,Department
Alice Ray,Support Engineer,Helps customers daily,"HIPAA, Java",Healthcare,alice@example.com,Support
Bob Chen,Sales,,,,bob@example.com,Sales
Carol Diaz,Backend Developer,Builds APIs in Go,"Go, PostgreSQL",Messaging,carol@example.com,Engineering
`

func writeSource(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "directory.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestStoreLoad(t *testing.T) {
	t.Run("loads and normalizes records", func(t *testing.T) {
		store := NewStore()
		dir, err := store.Load(writeSource(t, sampleCSV))
		require.NoError(t, err)
		require.Equal(t, 3, dir.Len())

		alice := dir.Records()[0]
		assert.Equal(t, core.ID(0), alice.Id)
		assert.Equal(t, "Alice Ray", alice.Name)
		assert.Equal(t, "Support Engineer", alice.JobTitle)
		assert.Equal(t, "HIPAA, Java", alice.Skills)

		// Absent cells come back as empty strings, never missing fields.
		bob := dir.Records()[1]
		assert.Equal(t, "", bob.Bio)
		assert.Equal(t, "", bob.Skills)
		assert.Equal(t, "", bob.Expertise)
	})

	t.Run("missing source", func(t *testing.T) {
		store := NewStore()
		_, err := store.Load(filepath.Join(t.TempDir(), "nope.csv"))
		assert.ErrorIs(t, err, ErrSourceNotFound)
	})

	t.Run("missing header column", func(t *testing.T) {
		store := NewStore()
		_, err := store.Load(writeSource(t, "Name,Job Title\nAlice,Engineer\n"))
		assert.ErrorIs(t, err, ErrMissingHeader)
	})

	t.Run("header order is not significant", func(t *testing.T) {
		store := NewStore()
		src := "Department,Email,Expertise,Skills,Bio,Job Title,Name\nSupport,a@example.com,Health,Java,Bio text,Engineer,Alice\n"
		dir, err := store.Load(writeSource(t, src))
		require.NoError(t, err)
		require.Equal(t, 1, dir.Len())
		assert.Equal(t, "Alice", dir.Records()[0].Name)
		assert.Equal(t, "Engineer", dir.Records()[0].JobTitle)
		assert.Equal(t, "Support", dir.Records()[0].Department)
	})

	t.Run("byte order mark on first header cell", func(t *testing.T) {
		store := NewStore()
		dir, err := store.Load(writeSource(t, "\ufeff"+sampleCSV))
		require.NoError(t, err)
		assert.Equal(t, 3, dir.Len())
	})
}

func TestStoreMemoization(t *testing.T) {
	t.Run("unchanged source returns cached snapshot", func(t *testing.T) {
		store := NewStore()
		path := writeSource(t, sampleCSV)

		first, err := store.Load(path)
		require.NoError(t, err)
		second, err := store.Load(path)
		require.NoError(t, err)
		assert.Same(t, first, second)
	})

	t.Run("changed source re-parses", func(t *testing.T) {
		store := NewStore()
		path := writeSource(t, sampleCSV)

		first, err := store.Load(path)
		require.NoError(t, err)

		updated := sampleCSV + "Dan Wu,QA,,Selenium,,dan@example.com,Engineering\n"
		require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

		second, err := store.Load(path)
		require.NoError(t, err)
		assert.NotSame(t, first, second)
		assert.Equal(t, 4, second.Len())
	})

	t.Run("load is idempotent", func(t *testing.T) {
		path := writeSource(t, sampleCSV)
		a, err := NewStore().Load(path)
		require.NoError(t, err)
		b, err := NewStore().Load(path)
		require.NoError(t, err)
		assert.Equal(t, a.Records(), b.Records())
	})
}

func TestFilterByDepartment(t *testing.T) {
	store := NewStore()
	dir, err := store.Load(writeSource(t, sampleCSV))
	require.NoError(t, err)

	t.Run("all departments sentinel keeps everything in order", func(t *testing.T) {
		filtered := dir.FilterByDepartment(AllDepartments)
		require.Len(t, filtered, 3)
		assert.Equal(t, core.ID(0), filtered[0].Id)
		assert.Equal(t, core.ID(2), filtered[2].Id)
	})

	t.Run("exact match", func(t *testing.T) {
		filtered := dir.FilterByDepartment("Engineering")
		require.Len(t, filtered, 1)
		assert.Equal(t, "Carol Diaz", filtered[0].Name)
	})

	t.Run("match is case-sensitive", func(t *testing.T) {
		assert.Empty(t, dir.FilterByDepartment("engineering"))
	})

	t.Run("unknown department yields empty, not error", func(t *testing.T) {
		assert.Empty(t, dir.FilterByDepartment("Astrology"))
	})
}

func TestDepartments(t *testing.T) {
	store := NewStore()
	dir, err := store.Load(writeSource(t, sampleCSV))
	require.NoError(t, err)
	assert.Equal(t, []string{"Engineering", "Sales", "Support"}, dir.Departments())
}

func TestRecordLookup(t *testing.T) {
	store := NewStore()
	dir, err := store.Load(writeSource(t, sampleCSV))
	require.NoError(t, err)

	rec, ok := dir.Record(core.ID(1))
	require.True(t, ok)
	assert.Equal(t, "Bob Chen", rec.Name)

	_, ok = dir.Record(core.ID(99))
	assert.False(t, ok)

	_, ok = dir.Record(core.ID(-1))
	assert.False(t, ok)
}
