package commands

import (
	"flag"
	"fmt"

	"surveyforms/config"
	"surveyforms/survey"
	"surveyforms/workbook"
)

var ValidateCmd = Validate{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		conf:        ".",
		credentials: "",
		tokens:      "",
		debug:       false,
	},

	file: "",
}

type Validate struct {
	command
	file string
}

func (cmd *Validate) Name() string {
	return "validate"
}

func (cmd *Validate) Description() string {
	return "Checks the survey workbook structure and reports the per-AC option availability"
}

func (cmd *Validate) Usage() string {
	return "[--file <file>]"
}

func (cmd *Validate) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] validate [options]\n", APP)
	fmt.Println()
	fmt.Println("  Checks that the workbook has the expected sheets and columns and summarises the")
	fmt.Println("  extracted options for every AC in the source data")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    surveyforms validate --file "survey_data.xlsx"`)
	fmt.Println()
}

func (cmd *Validate) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("validate")

	flagset.StringVar(&cmd.file, "file", cmd.file, "Local workbook (.xlsx) file path. Defaults to the configured workbook")

	return flagset
}

func (cmd *Validate) Execute(args ...any) error {
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

	tables, err := workbook.LoadXLSX(file, cfg.Schema())
	if err != nil {
		return err
	}

	index, err := survey.NewTableIndex(tables...)
	if err != nil {
		return err
	}

	extractor := survey.NewExtractor(index)
	keys := index.Keys()
	incomplete := 0

	fmt.Println()
	fmt.Printf("  %-8s %-8s %-14s %-15s %-10s %s\n", "AC", "parties", "MP candidates", "MLA candidates", "Congress", "castes")

	for _, key := range keys {
		counts := []int{}
		complete := true

		for _, f := range []func(string) ([]string, error){
			extractor.PartyOptions,
			extractor.MPCandidates,
			extractor.MLACandidates,
			extractor.CongressCandidates,
			extractor.CasteOptions,
		} {
			options, err := f(key)
			if err != nil {
				return err
			}

			if survey.IsFallback(options) {
				counts = append(counts, 0)
				complete = false
			} else {
				counts = append(counts, len(options))
			}
		}

		if !complete {
			incomplete++
		}

		fmt.Printf("  %-8s %-8d %-14d %-15d %-10d %d\n", key, counts[0], counts[1], counts[2], counts[3], counts[4])
	}

	fmt.Println()

	if incomplete > 0 {
		warnf("%d of %d ACs have categories with no extracted options", incomplete, len(keys))
	}

	infof("Validated workbook %s: %d ACs", file, len(keys))

	return nil
}
