// Package hocon implements laika's two-stage HOCON configuration pipeline:
// a builder-value tree produced by a HOCON syntax parser, and a resolver
// that turns it into a fully resolved configuration value tree (or a
// deferred FieldRef tree for reuse across re-homing).
//
// Grounded on the teacher's $ref resolver (github.com/erraggy/oastools
// parser.RefResolver: visited/resolving maps for cycle detection, a
// baseDir/baseURL pair for relative resource resolution) generalized from
// JSON-pointer $ref resolution into HOCON substitution and include
// resolution.
package hocon

import "fmt"

// Origin records where a bundle or a resolved field came from, for
// provenance and diagnostics.
type Origin struct {
	// Description is a human-readable label (e.g. a file path, or
	// "programmatic" for values set directly via the Config API).
	Description string
	// Line is the 1-based source line, 0 if unknown or not applicable.
	Line int
	// Comments holds any HOCON comment lines immediately preceding the
	// value, preserved for documentation generation.
	Comments []string
}

// String renders the origin for diagnostics.
func (o Origin) String() string {
	if o.Description == "" {
		return "<unknown>"
	}
	if o.Line > 0 {
		return fmt.Sprintf("%s: %d", o.Description, o.Line)
	}
	return o.Description
}

// UnknownOrigin is used for values that carry no provenance (e.g. produced
// purely in memory).
var UnknownOrigin = Origin{Description: "<unknown>"}
