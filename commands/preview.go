package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"surveyforms/config"
	"surveyforms/survey"
	"surveyforms/workbook"
)

var PreviewCmd = Preview{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		conf:        ".",
		credentials: "",
		tokens:      "",
		debug:       false,
	},

	acs:    "",
	caller: "",
	file:   "",
}

type Preview struct {
	command
	acs    string
	caller string
	file   string
}

func (cmd *Preview) Name() string {
	return "preview"
}

func (cmd *Preview) Description() string {
	return "Assembles the survey from the workbook and prints it as JSON, without creating a form"
}

func (cmd *Preview) Usage() string {
	return "[--acs <list>] [--caller <name>] [--file <file>]"
}

func (cmd *Preview) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] preview [options]\n", APP)
	fmt.Println()
	fmt.Println("  Extracts the per-AC survey options from the local workbook and prints the assembled")
	fmt.Println("  survey as JSON. Does not connect to the Google Forms API")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    surveyforms preview --file "survey_data.xlsx" --acs "7,8"`)
	fmt.Println()
}

func (cmd *Preview) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("preview")

	flagset.StringVar(&cmd.acs, "acs", cmd.acs, "Comma separated list of AC numbers to include. Defaults to every AC in the source data")
	flagset.StringVar(&cmd.caller, "caller", cmd.caller, "Caller name substituted into the introduction text")
	flagset.StringVar(&cmd.file, "file", cmd.file, "Local workbook (.xlsx) file path. Defaults to the configured workbook")

	return flagset
}

func (cmd *Preview) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	cfg, err := config.Load(cmd.conf)
	if err != nil {
		return fmt.Errorf("error loading configuration (%v)", err)
	}

	file := cmd.file
	if file == "" {
		file = cfg.Workbook.File
	}

	caller := cmd.caller
	if caller == "" {
		caller = cfg.CallerName
	}

	tables, err := workbook.LoadXLSX(file, cfg.Schema())
	if err != nil {
		return err
	}

	index, err := survey.NewTableIndex(tables...)
	if err != nil {
		return err
	}

	plan, warnings, err := survey.BuildPlan(index, cfg.Questions, cfg.Form.TitlePrefix, caller, acs(cmd.acs))
	if err != nil {
		return err
	}

	plan.Description = cfg.Form.Description

	for _, warning := range warnings {
		warnf("%s", warning)
	}

	for _, section := range plan.Sections {
		counts := []string{}
		for _, q := range section.Questions {
			counts = append(counts, fmt.Sprintf("%d", len(q.Options)))
		}

		infof("AC %s: option counts %s", section.Key, strings.Join(counts, "/"))
	}

	b, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", b)

	return nil
}
