package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/casetools/caser"
	"github.com/erraggy/casetools/internal/cliutil"
)

// SetupWordsFlags creates and configures a FlagSet for the words command.
func SetupWordsFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("words", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: ccase words <text>...\n\n")
		cliutil.Writef(fs.Output(), "Split each text argument into words using maximal boundary detection\n")
		cliutil.Writef(fs.Output(), "and print the words one per line.\n\n")
		cliutil.Writef(fs.Output(), "Examples:\n")
		cliutil.Writef(fs.Output(), "  ccase words \"SuperMario64Game\"\n")
		cliutil.Writef(fs.Output(), "  ccase words XMLHttpRequest my_snake_value\n")
	}

	return fs
}

// HandleWords executes the words command
func HandleWords(args []string) error {
	fs := SetupWordsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("words command requires at least one text argument")
	}

	for _, arg := range fs.Args() {
		for _, word := range caser.Words(arg) {
			cliutil.Writef(os.Stdout, "%s\n", word)
		}
	}
	return nil
}
