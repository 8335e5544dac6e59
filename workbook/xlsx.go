package workbook

import (
	"errors"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"surveyforms/survey"
)

// LoadXLSX reads the four declared sheets from a local .xlsx workbook into survey tables.
// A missing sheet is a *survey.MissingSourceError.
func LoadXLSX(path string, schema Schema) ([]survey.Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("workbook '%s' does not exist", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open workbook '%s' (%v)", path, err)
	}

	defer f.Close()

	tables := []survey.Table{}

	for _, sheet := range schema.Sheets {
		rows, err := f.GetRows(sheet.Name)
		if err != nil {
			if errors.Is(err, excelize.ErrSheetNotExist{SheetName: sheet.Name}) {
				return nil, &survey.MissingSourceError{Sheet: sheet.Name}
			}

			return nil, fmt.Errorf("unable to read sheet '%s' (%v)", sheet.Name, err)
		}

		if len(rows) == 0 {
			return nil, &survey.MissingSourceError{Sheet: sheet.Name}
		}

		// excelize trims trailing empty cells per row - pad back to the widest row so
		// declared columns with empty cells stay in range
		rows = pad(rows, width(rows))

		t, err := sheet.table(schema.HeaderRows, rows)
		if err != nil {
			return nil, err
		}

		tables = append(tables, t)
	}

	return tables, nil
}
