package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/erraggy/laika/config"
	"github.com/erraggy/laika/hocon"
	"github.com/erraggy/laika/internal/cliutil"
)

// ConfigFlags holds the config command's flags.
type ConfigFlags struct {
	Output string
}

// SetupConfigFlags builds the FlagSet for the config command.
func SetupConfigFlags() (*flag.FlagSet, *ConfigFlags) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	flags := &ConfigFlags{}
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: laika config [flags] <file|->\n\nResolve a HOCON document and print its configuration tree as JSON.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	return fs, flags
}

// HandleConfig runs the config command.
func HandleConfig(args []string) error {
	fs, flags := SetupConfigFlags()
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

	builder, errs := hocon.ParseDocument(fs.Arg(0), string(source))
	if len(errs) > 0 {
		return &errs[0]
	}

	resolver := hocon.NewResolver(context.Background(), hocon.ResolverOptions{})
	resolved, err := resolver.Resolve(builder)
	if err != nil {
		return err
	}

	cfg := config.FromResolved(resolved, hocon.Origin{Description: fs.Arg(0)})
	data, err := cfg.ExportJSON()
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(flags.Output)
	if err != nil {
		return err
	}
	defer closeOut()
	_, err = out.Write(append(data, '\n'))
	return err
}
