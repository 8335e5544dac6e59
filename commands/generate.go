package commands

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"surveyforms/config"
	"surveyforms/forms"
	"surveyforms/survey"
	"surveyforms/workbook"
)

var GenerateCmd = Generate{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		conf:        ".",
		credentials: "",
		tokens:      "",
		debug:       false,
	},

	acs:    "",
	caller: "",
	url:    "",
	file:   "",
	out:    time.Now().Format("form-2006-01-02T150405.json"),
}

type Generate struct {
	command
	acs    string
	caller string
	url    string
	file   string
	out    string
}

func (cmd *Generate) Name() string {
	return "generate"
}

func (cmd *Generate) Description() string {
	return "Generates a Google Form from the survey workbook"
}

func (cmd *Generate) Usage() string {
	return "--credentials <file> [--acs <list>] [--caller <name>]"
}

func (cmd *Generate) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] generate [options] --credentials <file>\n", APP)
	fmt.Println()
	fmt.Println("  Extracts the per-AC survey options from the source workbook, assembles the survey")
	fmt.Println("  and creates the Google Form")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    surveyforms generate --credentials "credentials.json" --acs "7,8,12" --caller "Team A"`)
	fmt.Println(`    surveyforms generate --credentials "credentials.json" \`)
	fmt.Println(`                         --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"`)
	fmt.Println()
}

func (cmd *Generate) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("generate")

	flagset.StringVar(&cmd.acs, "acs", cmd.acs, "Comma separated list of AC numbers to include. Defaults to every AC in the source data")
	flagset.StringVar(&cmd.caller, "caller", cmd.caller, "Caller name substituted into the introduction text")
	flagset.StringVar(&cmd.url, "url", cmd.url, "Google Sheets URL for the source data. Defaults to the local workbook file")
	flagset.StringVar(&cmd.file, "file", cmd.file, "Local workbook (.xlsx) file path. Defaults to the configured workbook")
	flagset.StringVar(&cmd.out, "out", cmd.out, "File for the created form metadata. Defaults to 'form-<yyyy-mm-ddTHHmmss>.json'")

	return flagset
}

func (cmd *Generate) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	cfg, err := config.Load(cmd.conf)
	if err != nil {
		return fmt.Errorf("error loading configuration (%v)", err)
	}

	credentials := cmd.credentials
	if credentials == "" {
		credentials = cfg.Credentials
	}

	if strings.TrimSpace(credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	url := cmd.url
	if url == "" {
		url = cfg.SheetURL
	}

	file := cmd.file
	if file == "" {
		file = cfg.Workbook.File
	}

	caller := cmd.caller
	if caller == "" {
		caller = cfg.CallerName
	}

	// ... authorise
	tokens := cmd.tokens
	if tokens == "" {
		tokens = filepath.Join(cmd.workdir, ".google")
	}

	scopes := []string{forms.FormsScope}
	if url != "" {
		scopes = append(scopes, forms.SheetsScope)
	}

	client, err := authorize(credentials, scopes, tokens)
	if err != nil {
		return fmt.Errorf("authentication/authorization error (%v)", err)
	}

	ctx := context.Background()

	// ... load source data
	tables, err := cmd.load(ctx, client, cfg, url, file)
	if err != nil {
		return err
	}

	index, err := survey.NewTableIndex(tables...)
	if err != nil {
		return err
	}

	// ... assemble survey
	title := fmt.Sprintf("%s - %s", cfg.Form.TitlePrefix, time.Now().Format("2006-01-02"))

	plan, warnings, err := survey.BuildPlan(index, cfg.Questions, title, caller, acs(cmd.acs))
	if err != nil {
		return err
	}

	plan.Description = cfg.Form.Description

	for _, warning := range warnings {
		warnf("%s", warning)
	}

	// ... create form
	google, err := forms.NewClient(ctx, client, cfg.Retry.Attempts, cfg.RetryDelay())
	if err != nil {
		return fmt.Errorf("unable to create new Forms client (%v)", err)
	}

	metadata, err := google.Emit(ctx, plan, cfg.Questions)
	if err != nil {
		return fmt.Errorf("error creating form (%v)", err)
	}

	if err := metadata.Save(cmd.out); err != nil {
		return fmt.Errorf("error saving form metadata (%v)", err)
	}

	infof("Created form %s with %d AC sections", metadata.FormID, len(plan.Sections))
	infof("Edit URL:   %s", metadata.EditURL)
	infof("Public URL: %s", metadata.PublicURL)
	infof("Saved form metadata to file %s", cmd.out)

	return nil
}

func (cmd *Generate) load(ctx context.Context, client *http.Client, cfg *config.Config, url, file string) ([]survey.Table, error) {
	if url != "" {
		spreadsheet, err := workbook.SpreadsheetID(url)
		if err != nil {
			return nil, err
		}

		if cmd.debug {
			debugf("Spreadsheet - ID:%s", spreadsheet)
		}

		google, err := sheets.NewService(ctx, option.WithHTTPClient(client))
		if err != nil {
			return nil, fmt.Errorf("unable to create new Sheets client (%v)", err)
		}

		return workbook.FetchSheets(ctx, google, spreadsheet, cfg.Schema())
	}

	if cmd.debug {
		debugf("Workbook - file:%s", file)
	}

	return workbook.LoadXLSX(file, cfg.Schema())
}
