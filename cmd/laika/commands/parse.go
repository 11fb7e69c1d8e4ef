// Package commands implements cmd/laika's subcommands.
package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/laika/document"
	"github.com/erraggy/laika/internal/cliutil"
	"github.com/erraggy/laika/pipeline"
)

// ParseFlags holds the parse command's flags.
type ParseFlags struct {
	Output string
}

// SetupParseFlags builds the FlagSet for the parse command.
func SetupParseFlags() (*flag.FlagSet, *ParseFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags := &ParseFlags{}
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: laika parse [flags] <file|->\n\nParse a document and print a debug tree dump.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	return fs, flags
}

// HandleParse runs the parse command.
func HandleParse(args []string) error {
	fs, flags := SetupParseFlags()
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

	result, err := pipeline.ParseWithOptions(pipeline.WithSource(string(source)), pipeline.WithSourceName(fs.Arg(0)))
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(flags.Output)
	if err != nil {
		return err
	}
	defer closeOut()

	for _, b := range result.Document.Content {
		fmt.Fprintln(out, document.BlockTag(b))
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func errOutput() *os.File { return os.Stderr }

func openOutput(path string) (*os.File, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, func() {}, err
	}
	return f, func() { _ = f.Close() }, nil
}
