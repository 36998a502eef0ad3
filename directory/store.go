package directory

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/poiesic/whoknows/core"
)

// AllDepartments is the sentinel department filter that matches every
// record.
const AllDepartments = "All Departments"

// Column names expected in the source header. Order in the source is not
// significant.
var expectedColumns = []string{"Name", "Job Title", "Bio", "Skills", "Expertise", "Email", "Department"}

// Directory is an immutable snapshot of the employee directory. It is
// never mutated after load and is safe for concurrent readers.
type Directory struct {
	source      string
	fingerprint core.Fingerprint
	records     []core.DirectoryRecord
}

// Source returns the path the snapshot was loaded from.
func (d *Directory) Source() string {
	return d.source
}

// Len returns the number of records in the snapshot.
func (d *Directory) Len() int {
	return len(d.records)
}

// Records returns all records in storage order. The returned slice must
// not be modified.
func (d *Directory) Records() []core.DirectoryRecord {
	return d.records
}

// Record returns the record with the given ID, or false when the ID is
// out of range.
func (d *Directory) Record(id core.ID) (*core.DirectoryRecord, bool) {
	if id < 0 || int(id) >= len(d.records) {
		return nil, false
	}
	return &d.records[id], true
}

// FilterByDepartment returns the records matching the department filter,
// preserving storage order. The AllDepartments sentinel returns every
// record; any other filter is a case-sensitive exact match on the
// Department field. An empty result is a valid, non-error outcome.
func (d *Directory) FilterByDepartment(filter string) []*core.DirectoryRecord {
	filtered := make([]*core.DirectoryRecord, 0, len(d.records))
	for i := range d.records {
		if filter == AllDepartments || d.records[i].Department == filter {
			filtered = append(filtered, &d.records[i])
		}
	}
	return filtered
}

// Departments returns the sorted set of distinct non-empty department
// names present in the snapshot.
func (d *Directory) Departments() []string {
	seen := make(map[string]bool)
	departments := make([]string, 0)
	for i := range d.records {
		dept := d.records[i].Department
		if dept != "" && !seen[dept] {
			seen[dept] = true
			departments = append(departments, dept)
		}
	}
	sort.Strings(departments)
	return departments
}

// Store loads directory snapshots and memoizes them by source path. A
// repeated load of a source whose bytes have not changed returns the
// cached snapshot without re-parsing.
type Store struct {
	mu     sync.Mutex
	cache  map[string]*Directory
	logger *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// NewStore creates a new directory store with an empty cache.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		cache:  make(map[string]*Directory),
		logger: slog.Default().With("component", "directory-store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the tabular source at path into a Directory snapshot.
// Missing cells in the text columns are coerced to the empty string.
// Returns ErrSourceNotFound when the file does not exist.
func (s *Store) Load(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("reading directory source %s: %w", path, err)
	}

	fingerprint := core.FingerprintBytes(data)

	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, ok := s.cache[path]; ok && cached.fingerprint == fingerprint {
		s.logger.Debug("directory source unchanged, using cached snapshot",
			"path", path, "records", len(cached.records))
		return cached, nil
	}

	records, err := parseRecords(data)
	if err != nil {
		return nil, err
	}

	dir := &Directory{
		source:      path,
		fingerprint: fingerprint,
		records:     records,
	}
	s.cache[path] = dir
	s.logger.Info("loaded directory snapshot", "path", path, "records", len(records))
	return dir, nil
}

// parseRecords decodes CSV bytes into normalized directory records.
func parseRecords(data []byte) ([]core.DirectoryRecord, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // rows may be ragged, short cells become ""

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing directory source: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty source", ErrMissingHeader)
	}

	columns, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	cell := func(row []string, name string) string {
		idx := columns[name]
		if idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	records := make([]core.DirectoryRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		records = append(records, core.DirectoryRecord{
			Id:         core.ID(i),
			Name:       cell(row, "Name"),
			JobTitle:   cell(row, "Job Title"),
			Bio:        cell(row, "Bio"),
			Skills:     cell(row, "Skills"),
			Expertise:  cell(row, "Expertise"),
			Email:      cell(row, "Email"),
			Department: cell(row, "Department"),
		})
	}
	return records, nil
}

// headerIndex maps expected column names to their positions in the
// header row.
func headerIndex(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[trimBOM(name)] = i
	}

	columns := make(map[string]int, len(expectedColumns))
	missing := make([]string, 0)
	for _, name := range expectedColumns {
		idx, ok := positions[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		columns[name] = idx
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrMissingHeader, missing)
	}
	return columns, nil
}

// trimBOM strips a UTF-8 byte order mark, which spreadsheet exports
// commonly prepend to the first header cell.
func trimBOM(s string) string {
	const bom = "\ufeff"
	if len(s) >= len(bom) && s[:len(bom)] == bom {
		return s[len(bom):]
	}
	return s
}
