// Package workbook loads the four survey source tables from a local Excel workbook or a
// Google Sheets spreadsheet.
package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"surveyforms/survey"
)

// Sheet declares the shape of one source sheet: its name, the role it fills, and its key and
// value columns as spreadsheet column letters.
type Sheet struct {
	Role   string   `yaml:"-"`
	Name   string   `yaml:"name"`
	Key    string   `yaml:"key"`
	Values []string `yaml:"values"`
}

// Schema is the fixed four-sheet contract. The sheet names and column letters are
// configurable, the shapes are not.
type Schema struct {
	HeaderRows int
	Sheets     []Sheet
}

// DefaultSchema returns the standard survey workbook layout.
func DefaultSchema() Schema {
	return Schema{
		HeaderRows: 1,
		Sheets: []Sheet{
			{Role: survey.Parties, Name: "AC<>PC", Key: "C", Values: letters("H", "T")},
			{Role: survey.MPCandidates, Name: "GE2024", Key: "B", Values: []string{"E"}},
			{Role: survey.MLACandidates, Name: "MLA_P2", Key: "B", Values: []string{"D", "E"}},
			{Role: survey.Castes, Name: "Caste_Data", Key: "A", Values: []string{"B"}},
		},
	}
}

// Check verifies that the schema declares all four sheets with valid column letters.
func (s Schema) Check() error {
	roles := map[string]bool{}

	for _, sheet := range s.Sheets {
		if sheet.Name == "" {
			return fmt.Errorf("sheet for role '%s' has no name", sheet.Role)
		}

		if _, err := columnIndex(sheet.Key); err != nil {
			return fmt.Errorf("sheet '%s': invalid key column '%s'", sheet.Name, sheet.Key)
		}

		if len(sheet.Values) == 0 {
			return fmt.Errorf("sheet '%s' declares no value columns", sheet.Name)
		}

		// the MLA sheet carries a party tag alongside the candidate name
		if sheet.Role == survey.MLACandidates && len(sheet.Values) < 2 {
			return fmt.Errorf("sheet '%s' must declare both a candidate and a party column", sheet.Name)
		}

		for _, v := range sheet.Values {
			if _, err := columnIndex(v); err != nil {
				return fmt.Errorf("sheet '%s': invalid value column '%s'", sheet.Name, v)
			}
		}

		roles[sheet.Role] = true
	}

	for _, role := range []string{survey.Parties, survey.MPCandidates, survey.MLACandidates, survey.Castes} {
		if !roles[role] {
			return fmt.Errorf("schema does not declare a sheet for role '%s'", role)
		}
	}

	return nil
}

func (s Sheet) table(headerRows int, rows [][]string) (survey.Table, error) {
	key, err := columnIndex(s.Key)
	if err != nil {
		return survey.Table{}, fmt.Errorf("sheet '%s': invalid key column '%s'", s.Name, s.Key)
	}

	values := []int{}
	for _, v := range s.Values {
		ix, err := columnIndex(v)
		if err != nil {
			return survey.Table{}, fmt.Errorf("sheet '%s': invalid value column '%s'", s.Name, v)
		}

		values = append(values, ix)
	}

	if len(rows) > headerRows {
		rows = rows[headerRows:]
	} else {
		rows = nil
	}

	records := make([]survey.Row, len(rows))
	for i, row := range rows {
		records[i] = survey.Row(row)
	}

	return survey.Table{
		Role:   s.Role,
		Sheet:  s.Name,
		Key:    key,
		Values: values,
		Rows:   records,
	}, nil
}

// columnIndex converts a column letter to a zero-based index.
func columnIndex(letter string) (int, error) {
	n, err := excelize.ColumnNameToNumber(letter)
	if err != nil {
		return 0, err
	}

	return n - 1, nil
}

// letters expands an inclusive column letter range (single-letter columns only).
func letters(from, to string) []string {
	expanded := []string{}
	for c := from[0]; c <= to[0]; c++ {
		expanded = append(expanded, string(c))
	}

	return expanded
}

// pad extends every row to at least the given width so that declared columns with empty
// trailing cells read as empty rather than out of range.
func pad(rows [][]string, width int) [][]string {
	for i, row := range rows {
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			rows[i] = padded
		}
	}

	return rows
}

func width(rows [][]string) int {
	w := 0
	for _, row := range rows {
		if len(row) > w {
			w = len(row)
		}
	}

	return w
}
