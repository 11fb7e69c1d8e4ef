package commands

import (
	"flag"
	"fmt"

	"github.com/erraggy/laika/internal/cliutil"
	"github.com/erraggy/laika/legacy"
)

// LegacyFlags holds the legacy command's flags.
type LegacyFlags struct {
	Output string
	Quiet  bool
}

// SetupLegacyFlags builds the FlagSet for the legacy command.
func SetupLegacyFlags() (*flag.FlagSet, *LegacyFlags) {
	fs := flag.NewFlagSet("legacy", flag.ContinueOnError)
	flags := &LegacyFlags{}
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.Quiet, "q", false, "suppress the normalization issue log on stderr")
	fs.BoolVar(&flags.Quiet, "quiet", false, "suppress the normalization issue log on stderr")
	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: laika legacy [flags] <file|->\n\nRewrite legacy directive and substitution syntax into canonical form.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	return fs, flags
}

// HandleLegacy runs the legacy command.
func HandleLegacy(args []string) error {
	fs, flags := SetupLegacyFlags()
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one input argument")
	}

	source, err := readInput(fs.Arg(0))
	if err != nil {
		return err
	}

	result := legacy.Normalize(string(source))

	if !flags.Quiet {
		for _, issue := range result.Issues {
			cliutil.Writef(errOutput(), "%s\n", issue.String())
		}
	}

	out, closeOut, err := openOutput(flags.Output)
	if err != nil {
		return err
	}
	defer closeOut()
	_, err = out.WriteString(result.Source)
	return err
}
