package workbook

import (
	"context"
	"fmt"
	"regexp"

	"google.golang.org/api/sheets/v4"

	"surveyforms/survey"
)

var spreadsheetURL = regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`)

// SpreadsheetID extracts the spreadsheet ID from a Google Sheets URL.
func SpreadsheetID(url string) (string, error) {
	match := spreadsheetURL.FindStringSubmatch(url)
	if len(match) < 2 || match[1] == "" {
		return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	}

	return match[1], nil
}

// FetchSheets pulls the four declared sheets from a Google Sheets spreadsheet into survey
// tables. A sheet with no data is a *survey.MissingSourceError.
func FetchSheets(ctx context.Context, google *sheets.Service, spreadsheetID string, schema Schema) ([]survey.Table, error) {
	tables := []survey.Table{}

	for _, sheet := range schema.Sheets {
		response, err := google.Spreadsheets.Values.Get(spreadsheetID, sheet.Name).Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("unable to retrieve sheet '%s' (%v)", sheet.Name, err)
		}

		if len(response.Values) == 0 {
			return nil, &survey.MissingSourceError{Sheet: sheet.Name}
		}

		rows := make([][]string, len(response.Values))
		for i, record := range response.Values {
			row := make([]string, len(record))
			for j, v := range record {
				if s, ok := v.(string); ok {
					row[j] = s
				} else {
					row[j] = fmt.Sprintf("%v", v)
				}
			}

			rows[i] = row
		}

		rows = pad(rows, width(rows))

		t, err := sheet.table(schema.HeaderRows, rows)
		if err != nil {
			return nil, err
		}

		tables = append(tables, t)
	}

	return tables, nil
}
