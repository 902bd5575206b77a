// Package commands provides CLI command handlers for ccase.
package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/casetools/caser"
	"github.com/erraggy/casetools/internal/cliutil"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	To   string
	From string
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.To, "t", "", "target case (e.g. \"snake\", \"camel\", \"screaming-snake\") (required)")
	fs.StringVar(&flags.To, "to", "", "target case (e.g. \"snake\", \"camel\", \"screaming-snake\") (required)")
	fs.StringVar(&flags.From, "f", "", "source case; narrows word splitting to that case's own boundaries")
	fs.StringVar(&flags.From, "from", "", "source case; narrows word splitting to that case's own boundaries")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: ccase convert [flags] <text>...\n\n")
		cliutil.Writef(fs.Output(), "Convert each text argument to the target case, one result per line.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  ccase convert -t snake \"XMLHttpRequest\"\n")
		cliutil.Writef(fs.Output(), "  ccase convert -f camel -t kebab myVariableName\n")
		cliutil.Writef(fs.Output(), "  ccase convert -t title \"2020-04-16_my_cat_cali\"\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Without -f, every recognized boundary splits words (maximal splitting)\n")
		cliutil.Writef(fs.Output(), "  - Conversion itself never fails; unrecognized input stays a single word\n")
		cliutil.Writef(fs.Output(), "  - Run 'ccase list' to see the supported cases\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.To == "" {
		fs.Usage()
		return fmt.Errorf("target case is required (use -t or --to)")
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("convert command requires at least one text argument")
	}

	to, err := caser.Parse(flags.To)
	if err != nil {
		return err
	}

	if flags.From == "" {
		for _, arg := range fs.Args() {
			cliutil.Writef(os.Stdout, "%s\n", caser.ToCase(arg, to))
		}
		return nil
	}

	from, err := caser.Parse(flags.From)
	if err != nil {
		return err
	}
	for _, arg := range fs.Args() {
		cliutil.Writef(os.Stdout, "%s\n", caser.FromCase(arg, from).ToCase(to))
	}
	return nil
}
