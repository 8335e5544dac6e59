package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"surveyforms/survey"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Unexpected error returned from Load (%v)", err)
	}

	if cfg.Workbook.File != DefaultWorkbookFile {
		t.Errorf("Incorrect default workbook file - expected:%v, got:%v", DefaultWorkbookFile, cfg.Workbook.File)
	}

	if cfg.CallerName != DefaultCallerName {
		t.Errorf("Incorrect default caller name - expected:%v, got:%v", DefaultCallerName, cfg.CallerName)
	}

	if cfg.Retry.Attempts != 3 || cfg.RetryDelay() != 2*time.Second {
		t.Errorf("Incorrect default retry policy - got attempts:%v, delay:%v", cfg.Retry.Attempts, cfg.RetryDelay())
	}

	if err := cfg.Questions.Check(); err != nil {
		t.Errorf("Default question set failed validation (%v)", err)
	}

	schema := cfg.Schema()
	if len(schema.Sheets) != 4 {
		t.Errorf("Incorrect default schema - expected 4 sheets, got:%v", len(schema.Sheets))
	}
}

func TestLoadSettings(t *testing.T) {
	settings := `workbook:
  file: constituencies.xlsx
  header_rows: 2
  sheets:
    parties:
      name: Parties
      key: B
      values: [C, D]
form:
  title_prefix: Voter Survey
retry:
  attempts: 5
  delay: 1
caller_name: Field Team
`

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, SettingsFile), []byte(settings), 0660); err != nil {
		t.Fatalf("Error creating settings.yaml (%v)", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Unexpected error returned from Load (%v)", err)
	}

	if cfg.Workbook.File != "constituencies.xlsx" {
		t.Errorf("Incorrect workbook file - expected:%v, got:%v", "constituencies.xlsx", cfg.Workbook.File)
	}

	if cfg.Form.TitlePrefix != "Voter Survey" {
		t.Errorf("Incorrect title prefix - expected:%v, got:%v", "Voter Survey", cfg.Form.TitlePrefix)
	}

	if cfg.Form.Description != DefaultDescription {
		t.Errorf("Incorrect description - expected:%v, got:%v", DefaultDescription, cfg.Form.Description)
	}

	if cfg.Retry.Attempts != 5 || cfg.RetryDelay() != 1*time.Second {
		t.Errorf("Incorrect retry policy - got attempts:%v, delay:%v", cfg.Retry.Attempts, cfg.RetryDelay())
	}

	if cfg.CallerName != "Field Team" {
		t.Errorf("Incorrect caller name - expected:%v, got:%v", "Field Team", cfg.CallerName)
	}

	schema := cfg.Schema()
	if schema.HeaderRows != 2 {
		t.Errorf("Incorrect header rows - expected:%v, got:%v", 2, schema.HeaderRows)
	}

	for _, sheet := range schema.Sheets {
		if sheet.Role == survey.Parties {
			if sheet.Name != "Parties" || sheet.Key != "B" || !reflect.DeepEqual(sheet.Values, []string{"C", "D"}) {
				t.Errorf("Incorrect parties sheet - got:%+v", sheet)
			}
		}

		if sheet.Role == survey.Castes {
			if sheet.Name != "Caste_Data" || sheet.Key != "A" {
				t.Errorf("Undeclared sheet not defaulted - got:%+v", sheet)
			}
		}
	}
}

func TestSchemaSheetOrder(t *testing.T) {
	settings := `workbook:
  sheets:
    caste_data:
      name: Castes
    parties:
      name: Parties
`

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, SettingsFile), []byte(settings), 0660); err != nil {
		t.Fatalf("Error creating settings.yaml (%v)", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Unexpected error returned from Load (%v)", err)
	}

	expected := []string{survey.Parties, survey.MPCandidates, survey.MLACandidates, survey.Castes}

	for i := 0; i < 10; i++ {
		schema := cfg.Schema()

		roles := []string{}
		for _, sheet := range schema.Sheets {
			roles = append(roles, sheet.Role)
		}

		if !reflect.DeepEqual(roles, expected) {
			t.Fatalf("Incorrect sheet order - expected:%v, got:%v", expected, roles)
		}
	}
}

func TestLoadQuestionsOverride(t *testing.T) {
	questions := `{
  "introduction": {
    "english": "Good morning, this is [caller_name].",
    "bengali": "সুপ্রভাত, আমি [caller_name]।"
  }
}`

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, QuestionsFile), []byte(questions), 0660); err != nil {
		t.Fatalf("Error creating questions.json (%v)", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Unexpected error returned from Load (%v)", err)
	}

	if cfg.Questions.Introduction.English != "Good morning, this is [caller_name]." {
		t.Errorf("Incorrect introduction text - got:%v", cfg.Questions.Introduction.English)
	}

	// unset fields keep the defaults
	defaults := survey.DefaultQuestions()
	if cfg.Questions.Final.Income.English != defaults.Final.Income.English {
		t.Errorf("Question override discarded defaults - got:%v", cfg.Questions.Final.Income.English)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	env := `WORKBOOK_FILE=env.xlsx
CALLER_NAME=Env Team
CREDENTIALS_FILE=.google/credentials.json
SHEET_URL=https://docs.google.com/spreadsheets/d/1iuhasdf897TGF6d/edit#gid=0
`

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0660); err != nil {
		t.Fatalf("Error creating .env (%v)", err)
	}

	for _, v := range []string{"WORKBOOK_FILE", "CALLER_NAME", "CREDENTIALS_FILE", "SHEET_URL"} {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Unexpected error returned from Load (%v)", err)
	}

	if cfg.Workbook.File != "env.xlsx" {
		t.Errorf("Incorrect workbook file - expected:%v, got:%v", "env.xlsx", cfg.Workbook.File)
	}

	if cfg.CallerName != "Env Team" {
		t.Errorf("Incorrect caller name - expected:%v, got:%v", "Env Team", cfg.CallerName)
	}

	if cfg.Credentials != ".google/credentials.json" {
		t.Errorf("Incorrect credentials file - expected:%v, got:%v", ".google/credentials.json", cfg.Credentials)
	}

	if cfg.SheetURL != "https://docs.google.com/spreadsheets/d/1iuhasdf897TGF6d/edit#gid=0" {
		t.Errorf("Incorrect sheet URL - got:%v", cfg.SheetURL)
	}
}

func TestLoadInvalidSettings(t *testing.T) {
	tests := []string{
		"retry:\n  attempts: 0\n",
		"workbook:\n  file: ''\n  header_rows: -1\n",
		"workbook:\n  sheets:\n    parties:\n      key: '7'\n",
		"workbook:\n  sheets:\n    mla_candidates:\n      values: [D]\n",
	}

	for _, settings := range tests {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, SettingsFile), []byte(settings), 0660); err != nil {
			t.Fatalf("Error creating settings.yaml (%v)", err)
		}

		if _, err := Load(dir); err == nil {
			t.Errorf("Expected error loading settings %q, got:%v", settings, err)
		}
	}
}
