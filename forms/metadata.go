package forms

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// SectionIDs records the Forms item IDs created for each part of the form.
type SectionIDs struct {
	Introduction string              `json:"introduction"`
	BasicInfo    []string            `json:"basic_info"`
	AC           map[string][]string `json:"ac_sections"`
	Closing      []string            `json:"final_section"`
}

// Metadata describes a generated form.
type Metadata struct {
	FormID    string     `json:"form_id"`
	Title     string     `json:"title"`
	EditURL   string     `json:"edit_url"`
	PublicURL string     `json:"public_url"`
	ACNumbers []string   `json:"ac_numbers"`
	Sections  SectionIDs `json:"section_mapping"`
	Created   time.Time  `json:"created"`
}

// Save writes the metadata to a JSON file.
func (m *Metadata) Save(path string) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to marshal form metadata (%v)", err)
	}

	if err := os.WriteFile(path, b, 0660); err != nil {
		return fmt.Errorf("unable to write form metadata to '%s' (%v)", path, err)
	}

	return nil
}
