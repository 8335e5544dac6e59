package survey

import (
	"strings"
)

// Fallback option lists substituted when extraction yields no usable values for a question.
// Substitution is a degraded result, not an error - callers log a warning and proceed.
const (
	NoParties    = "No parties available"
	NoCandidates = "No candidates available"
	NoCastes     = "No castes available"
)

// CongressTag is the party tag that selects Congress candidates from the MLA table. The
// comparison is exact - case-sensitive, against the raw cell, no whitespace trimming.
const CongressTag = "INC"

// Extractor pulls per-question option lists out of a TableIndex for a single AC number.
type Extractor struct {
	index *TableIndex
}

func NewExtractor(index *TableIndex) *Extractor {
	return &Extractor{
		index: index,
	}
}

// PartyOptions returns the deduplicated union of every party column for the rows matching the
// key in the parties table.
func (x *Extractor) PartyOptions(key string) ([]string, error) {
	return x.extract(Parties, key, NoParties, nil)
}

// MPCandidates returns the MP candidate names for the key from the MP candidates table.
func (x *Extractor) MPCandidates(key string) ([]string, error) {
	return x.extract(MPCandidates, key, NoCandidates, nil)
}

// MLACandidates returns the MLA candidate names for the key from the MLA candidates table.
func (x *Extractor) MLACandidates(key string) ([]string, error) {
	return x.extract(MLACandidates, key, NoCandidates, single)
}

// CongressCandidates returns the MLA candidate names for the key whose party tag cell is
// exactly CongressTag.
func (x *Extractor) CongressCandidates(key string) ([]string, error) {
	t, _ := x.index.Table(MLACandidates)

	party := -1
	if len(t.Values) > 1 {
		party = t.Values[1]
	}

	return x.extract(MLACandidates, key, NoCandidates, func(t Table, row Row) []int {
		if party < 0 || cell(row, party) != CongressTag {
			return nil
		}

		return t.Values[:1]
	})
}

// CasteOptions returns the caste names for the key from the caste table.
func (x *Extractor) CasteOptions(key string) ([]string, error) {
	return x.extract(Castes, key, NoCastes, nil)
}

// IsFallback reports whether an option list is one of the fallback sentinels rather than
// extracted data.
func IsFallback(options []string) bool {
	if len(options) != 1 {
		return false
	}

	switch options[0] {
	case NoParties, NoCandidates, NoCastes:
		return true
	}

	return false
}

// columnsFn selects the value columns to project from a matching row. nil means all declared
// value columns except any trailing tag column consumed by the filter.
type columnsFn func(t Table, row Row) []int

// single projects only the first declared value column.
func single(t Table, row Row) []int {
	return t.Values[:1]
}

func (x *Extractor) extract(role, key, fallback string, columns columnsFn) ([]string, error) {
	if !x.index.HasKey(key) {
		return nil, &InvalidKeyError{Key: normaliseKey(key)}
	}

	rows, err := x.index.RowsWhereKeyEquals(role, key)
	if err != nil {
		return nil, err
	}

	t, _ := x.index.Table(role)

	options := []string{}
	seen := map[string]bool{}

	for _, row := range rows {
		cols := t.Values
		if columns != nil {
			cols = columns(t, row)
		}

		for _, c := range cols {
			v := strings.TrimSpace(cell(row, c))
			if v == "" || seen[v] {
				continue
			}

			options = append(options, v)
			seen[v] = true
		}
	}

	if len(options) == 0 {
		return []string{fallback}, nil
	}

	return options, nil
}
