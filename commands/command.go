package commands

import (
	"flag"
	"fmt"
	"log"
	"strings"
)

const APP = "surveyforms"

// Options are the command line options common to all commands.
type Options struct {
	Debug bool
}

type command struct {
	workdir     string
	conf        string
	credentials string
	tokens      string
	debug       bool
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.workdir, "workdir", c.workdir, "Directory for working files (tokens, form metadata, etc)")
	flagset.StringVar(&c.conf, "conf", c.conf, "Directory containing the settings.yaml, questions.json and .env files")
	flagset.StringVar(&c.credentials, "credentials", c.credentials, "Path for the Google API credentials.json file. Defaults to the configured CREDENTIALS_FILE")
	flagset.StringVar(&c.tokens, "tokens", c.tokens, "Directory for the stored OAuth2 tokens. Defaults to the --workdir '.google' subdirectory")

	return flagset
}

// acs splits a comma separated list of AC numbers into a key list. An empty list selects
// every AC in the source data.
func acs(list string) []string {
	keys := []string{}
	for _, v := range strings.Split(list, ",") {
		if key := strings.TrimSpace(v); key != "" {
			keys = append(keys, key)
		}
	}

	return keys
}

func helpOptions(flagset *flag.FlagSet) {
	fmt.Println("  Options:")
	fmt.Println()

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
