package commands

import (
	"errors"
	"flag"
	"os"

	"github.com/erraggy/casetools/caser"
	"github.com/erraggy/casetools/internal/cliutil"
)

// listSample is the text rendered next to each case name by 'ccase list'.
const listSample = "my variable name"

// SetupListFlags creates and configures a FlagSet for the list command.
func SetupListFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: ccase list\n\n")
		cliutil.Writef(fs.Output(), "List the supported cases with a sample rendering of each.\n")
	}

	return fs
}

// HandleList executes the list command
func HandleList(args []string) error {
	fs := SetupListFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	for _, c := range caser.Cases() {
		cliutil.Writef(os.Stdout, "%-16s %s\n", c.String(), caser.ToCase(listSample, c))
	}
	return nil
}
