// Package config loads the application configuration from settings.yaml, questions.json, a
// .env file and the environment, in that order of precedence (later wins).
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"surveyforms/survey"
	"surveyforms/workbook"
)

const (
	SettingsFile  = "settings.yaml"
	QuestionsFile = "questions.json"
)

// Defaults applied before any file or environment override.
const (
	DefaultWorkbookFile = "survey_data.xlsx"
	DefaultCredentials  = "credentials.json"
	DefaultCallerName   = "Political Survey Team"
	DefaultTitlePrefix  = "Political Survey"
	DefaultDescription  = "Political Survey for Assam Assembly Constituencies"
)

// Workbook is the source data configuration. Sheet entries are keyed by role: 'parties',
// 'mp_candidates', 'mla_candidates' and 'caste_data'.
type Workbook struct {
	File       string                    `yaml:"file"`
	HeaderRows int                       `yaml:"header_rows"`
	Sheets     map[string]workbook.Sheet `yaml:"sheets"`
}

// Form is the generated form configuration.
type Form struct {
	TitlePrefix string `yaml:"title_prefix"`
	Description string `yaml:"description"`
}

// Retry configures the Forms API retry policy. Delay is in seconds.
type Retry struct {
	Attempts int `yaml:"attempts"`
	Delay    int `yaml:"delay"`
}

type Config struct {
	Workbook   Workbook `yaml:"workbook"`
	Form       Form     `yaml:"form"`
	Retry      Retry    `yaml:"retry"`
	CallerName string   `yaml:"caller_name"`

	Credentials string
	SheetURL    string
	Questions   survey.QuestionSet
}

// Sheet configuration keys in declaration order, with the roles they map to.
var sheetKeys = []string{"parties", "mp_candidates", "mla_candidates", "caste_data"}

var sheetRoles = map[string]string{
	"parties":        survey.Parties,
	"mp_candidates":  survey.MPCandidates,
	"mla_candidates": survey.MLACandidates,
	"caste_data":     survey.Castes,
}

// Load reads the configuration from the given directory. settings.yaml and questions.json
// are optional - the built-in defaults cover a standard survey workbook - but malformed
// files are an error.
func Load(dir string) (*Config, error) {
	cfg := Config{
		Workbook: Workbook{
			File:       DefaultWorkbookFile,
			HeaderRows: 1,
		},
		Form: Form{
			TitlePrefix: DefaultTitlePrefix,
			Description: DefaultDescription,
		},
		Retry: Retry{
			Attempts: 3,
			Delay:    2,
		},
		CallerName:  DefaultCallerName,
		Credentials: DefaultCredentials,
		Questions:   survey.DefaultQuestions(),
	}

	// ... .env (missing file is not an error)
	godotenv.Load(filepath.Join(dir, ".env"))

	// ... settings.yaml
	settings := filepath.Join(dir, SettingsFile)
	if b, err := os.ReadFile(settings); err == nil {
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("error parsing '%s' (%v)", settings, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading '%s' (%v)", settings, err)
	}

	// ... questions.json
	questions := filepath.Join(dir, QuestionsFile)
	if b, err := os.ReadFile(questions); err == nil {
		if err := json.Unmarshal(b, &cfg.Questions); err != nil {
			return nil, fmt.Errorf("error parsing '%s' (%v)", questions, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading '%s' (%v)", questions, err)
	}

	// ... environment
	if v := os.Getenv("WORKBOOK_FILE"); v != "" {
		cfg.Workbook.File = v
	}

	if v := os.Getenv("CREDENTIALS_FILE"); v != "" {
		cfg.Credentials = v
	}

	if v := os.Getenv("CALLER_NAME"); v != "" {
		cfg.CallerName = v
	}

	if v := os.Getenv("SHEET_URL"); v != "" {
		cfg.SheetURL = v
	}

	if err := cfg.check(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Schema returns the workbook schema declared by the configuration (the default four-sheet
// layout when settings.yaml declares no sheets).
func (cfg *Config) Schema() workbook.Schema {
	if len(cfg.Workbook.Sheets) == 0 {
		schema := workbook.DefaultSchema()
		schema.HeaderRows = cfg.Workbook.HeaderRows

		return schema
	}

	schema := workbook.Schema{
		HeaderRows: cfg.Workbook.HeaderRows,
	}

	defaults := map[string]workbook.Sheet{}
	for _, sheet := range workbook.DefaultSchema().Sheets {
		defaults[sheet.Role] = sheet
	}

	for _, key := range sheetKeys {
		role := sheetRoles[key]

		sheet, ok := cfg.Workbook.Sheets[key]
		if !ok {
			sheet = defaults[role]
		}

		sheet.Role = role
		if sheet.Name == "" {
			sheet.Name = defaults[role].Name
		}

		if sheet.Key == "" {
			sheet.Key = defaults[role].Key
		}

		if len(sheet.Values) == 0 {
			sheet.Values = defaults[role].Values
		}

		schema.Sheets = append(schema.Sheets, sheet)
	}

	return schema
}

// RetryDelay returns the configured retry delay as a duration.
func (cfg *Config) RetryDelay() time.Duration {
	return time.Duration(cfg.Retry.Delay) * time.Second
}

func (cfg *Config) check() error {
	if cfg.Workbook.File == "" {
		return fmt.Errorf("no workbook file configured")
	}

	if cfg.Workbook.HeaderRows < 0 {
		return fmt.Errorf("invalid header_rows %d", cfg.Workbook.HeaderRows)
	}

	if cfg.Retry.Attempts < 1 || cfg.Retry.Delay < 0 {
		return fmt.Errorf("invalid retry configuration (attempts:%d, delay:%ds)", cfg.Retry.Attempts, cfg.Retry.Delay)
	}

	if err := cfg.Schema().Check(); err != nil {
		return err
	}

	return cfg.Questions.Check()
}
