// Package cliutil provides small utilities shared by cmd/laika's
// subcommands.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to w, logging to stderr instead of
// panicking if the write itself fails.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}
