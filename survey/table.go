package survey

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// The four table roles. Every TableIndex must be constructed with exactly one table per role.
const (
	Parties       = "parties"
	MPCandidates  = "mp-candidates"
	MLACandidates = "mla-candidates"
	Castes        = "castes"
)

var roles = []string{Parties, MPCandidates, MLACandidates, Castes}

// Row is a single spreadsheet row, cells in column order. Rows shorter than the declared
// columns are padded with empty cells by the loaders.
type Row []string

// Table is one of the four source tables, with its declared key column and value column(s).
// For the MLA candidates table the value columns are (candidate name, party tag); for the
// parties table they are the full set of party columns; the other tables declare a single
// value column.
type Table struct {
	Role   string
	Sheet  string
	Key    int
	Values []int
	Rows   []Row
}

// TableIndex holds the four tables loaded into memory, indexed by normalised key. It is
// read-only after construction.
type TableIndex struct {
	tables map[string]Table
	rows   map[string]map[string][]Row
	keys   []string
}

// NewTableIndex builds the in-memory index over the four source tables. It fails with
// *MissingSourceError if any role is unrepresented and with *SchemaError if a declared key or
// value column lies beyond the width of its sheet.
func NewTableIndex(tables ...Table) (*TableIndex, error) {
	index := TableIndex{
		tables: map[string]Table{},
		rows:   map[string]map[string][]Row{},
	}

	for _, t := range tables {
		if _, ok := index.tables[t.Role]; ok {
			return nil, fmt.Errorf("duplicate table for role '%s' (sheet '%s')", t.Role, t.Sheet)
		}

		index.tables[t.Role] = t
	}

	for _, role := range roles {
		t, ok := index.tables[role]
		if !ok || len(t.Rows) == 0 {
			sheet := role
			if ok {
				sheet = t.Sheet
			}
			return nil, &MissingSourceError{Sheet: sheet}
		}

		if err := checkSchema(t); err != nil {
			return nil, err
		}
	}

	// ... index rows by normalised key
	seen := map[string]bool{}

	for role, t := range index.tables {
		byKey := map[string][]Row{}

		for _, row := range t.Rows {
			k := normaliseKey(cell(row, t.Key))
			if k == "" {
				continue
			}

			byKey[k] = append(byKey[k], row)
			seen[k] = true
		}

		index.rows[role] = byKey
	}

	for k := range seen {
		index.keys = append(index.keys, k)
	}

	sortKeys(index.keys)

	return &index, nil
}

// RowsWhereKeyEquals returns the rows of the given table whose key column matches the key
// exactly (after the shared normalisation). An empty result is not an error.
func (index *TableIndex) RowsWhereKeyEquals(role, key string) ([]Row, error) {
	byKey, ok := index.rows[role]
	if !ok {
		return nil, fmt.Errorf("unknown table '%s'", role)
	}

	return byKey[normaliseKey(key)], nil
}

// HasKey reports whether the key is present in the key column of at least one table.
func (index *TableIndex) HasKey(key string) bool {
	k := normaliseKey(key)
	for _, byKey := range index.rows {
		if len(byKey[k]) > 0 {
			return true
		}
	}

	return false
}

// Keys returns the distinct normalised keys across all four tables, numerically sorted.
func (index *TableIndex) Keys() []string {
	keys := make([]string, len(index.keys))
	copy(keys, index.keys)

	return keys
}

// Table returns the table registered for a role.
func (index *TableIndex) Table(role string) (Table, bool) {
	t, ok := index.tables[role]

	return t, ok
}

func checkSchema(t Table) error {
	width := 0
	for _, row := range t.Rows {
		if len(row) > width {
			width = len(row)
		}
	}

	if t.Key >= width {
		return &SchemaError{Sheet: t.Sheet, Column: columnName(t.Key), Width: width}
	}

	for _, v := range t.Values {
		if v >= width {
			return &SchemaError{Sheet: t.Sheet, Column: columnName(v), Width: width}
		}
	}

	return nil
}

// normaliseKey renders numeric keys as base-10 integer strings so that a cell formatted as 7,
// 7.0 or ' 7 ' and a query for "7" compare equal. Non-numeric keys are trimmed and otherwise
// left as-is - the comparison stays case-sensitive.
func normaliseKey(v string) string {
	s := strings.TrimSpace(v)

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return strconv.FormatInt(int64(f), 10)
	}

	return s
}

func sortKeys(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		a, erra := strconv.Atoi(keys[i])
		b, errb := strconv.Atoi(keys[j])

		switch {
		case erra == nil && errb == nil:
			return a < b
		case erra == nil:
			return true
		case errb == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
}

func cell(row Row, column int) string {
	if column < len(row) {
		return row[column]
	}

	return ""
}
