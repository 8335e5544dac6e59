package commands

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"surveyforms/config"
	"surveyforms/forms"
)

var AuthoriseCmd = Authorise{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		conf:        ".",
		credentials: "",
		tokens:      "",
		debug:       false,
	},
}

type Authorise struct {
	command
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return "Authorises surveyforms to create Google Forms and read Google Sheets"
}

func (cmd *Authorise) Usage() string {
	return "--credentials <file>"
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] authorise [options] --credentials <file>\n", APP)
	fmt.Println()
	fmt.Println("  Runs the OAuth2 flow for the Google Forms and Google Sheets scopes and stores the")
	fmt.Println("  token for use by the generate command")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    surveyforms authorise --credentials "credentials.json"`)
	fmt.Println()
}

func (cmd *Authorise) FlagSet() *flag.FlagSet {
	return cmd.flagset("authorise")
}

func (cmd *Authorise) Execute(args ...any) error {
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

	tokens := cmd.tokens
	if tokens == "" {
		tokens = filepath.Join(cmd.workdir, ".google")
	}

	scopes := []string{forms.FormsScope, forms.SheetsScope}

	if err := authenticate(credentials, scopes, tokens); err != nil {
		return fmt.Errorf("authorisation error (%v)", err)
	}

	return nil
}
