// Package issues provides a unified issue type used to report problems
// found while normalizing or validating a document.
package issues

import (
	"fmt"

	"github.com/erraggy/laika/internal/severity"
)

// Issue is a single problem found while processing a document.
type Issue struct {
	// Path is a location descriptor: a byte offset, line reference, or
	// directive name, depending on what produced the issue.
	Path string
	// Message is a human-readable description.
	Message string
	Severity severity.Severity
	// Context gives additional detail about why the issue was raised.
	Context string
	Line    int
	Column  int
}

// String renders the issue as "<severity> <path>: <message>", with
// Context appended on its own line when present.
func (i Issue) String() string {
	result := fmt.Sprintf("%s %s: %s", i.Severity, i.Path, i.Message)
	if i.Context != "" {
		result += fmt.Sprintf("\n    %s", i.Context)
	}
	return result
}
