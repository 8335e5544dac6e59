package survey

import (
	"fmt"
)

// MissingSourceError is returned when one of the four declared sheets is absent from the
// workbook. It is fatal - no extraction takes place.
type MissingSourceError struct {
	Sheet string
}

func (e *MissingSourceError) Error() string {
	return fmt.Sprintf("required sheet '%s' is missing", e.Sheet)
}

// SchemaError is returned when a declared key or value column does not exist in the sheet it
// was declared for. It is fatal - no extraction takes place.
type SchemaError struct {
	Sheet  string
	Column string
	Width  int
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("sheet '%s': declared column '%s' does not exist (sheet has %d columns)", e.Sheet, e.Column, e.Width)
}

// InvalidKeyError is returned when an AC number is not present in the key column of any of the
// four sheets. A key present in some sheets but not others is not an error - the missing
// sheets yield the fallback option list instead.
type InvalidKeyError struct {
	Key string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("AC %s not found in any sheet", e.Key)
}

// columnName converts a zero-based column index to the spreadsheet column label used in error
// messages ('A', 'B', .. 'Z', 'AA', ..).
func columnName(index int) string {
	name := ""
	n := index
	for {
		name = string(rune('A'+n%26)) + name
		n = n/26 - 1
		if n < 0 {
			break
		}
	}

	return name
}
