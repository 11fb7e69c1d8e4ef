// Package laikaerrors provides structured error types for the laika toolchain.
//
// These error types enable programmatic error handling via [errors.Is] and
// [errors.As], allowing callers to distinguish between different categories
// of failure and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParserFailure: a combinator failed; recoverable within a containing alternative
//   - MarkupParserException: a parser that was expected to always succeed did not
//   - InvalidElement: a directive or rewrite rule failed on well-formed input
//   - ConfigParserErrors: one or more HOCON syntax errors
//   - ConfigResolverError: post-parse resolution failures, consolidated
//   - InvalidFields: path-tagged structural HOCON errors found before resolution
//   - ResolverFailed: deferred FieldRef evaluation failed
//
// # Usage with errors.As
//
//	_, err := hocon.NewResolver(ctx, hocon.ResolverOptions{}).Resolve(root)
//	if err != nil {
//	    var resErr *laikaerrors.ConfigResolverError
//	    if errors.As(err, &resErr) {
//	        for _, p := range resErr.InvalidPaths {
//	            fmt.Println(p)
//	        }
//	    }
//	}
package laikaerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrParserFailure indicates a combinator failed during speculative parsing.
	ErrParserFailure = errors.New("parser failure")

	// ErrMarkupParserException indicates a top-level parser that promised to
	// always succeed did not.
	ErrMarkupParserException = errors.New("markup parser exception")

	// ErrInvalidElement indicates a directive or rewrite rule failed on
	// otherwise well-formed input.
	ErrInvalidElement = errors.New("invalid element")

	// ErrConfigParser indicates one or more HOCON syntax errors.
	ErrConfigParser = errors.New("config parser error")

	// ErrConfigResolver indicates a post-parse HOCON resolution failure.
	ErrConfigResolver = errors.New("config resolver error")

	// ErrCircularReference indicates a circular substitution was detected
	// during HOCON resolution.
	ErrCircularReference = errors.New("circular reference")

	// ErrInvalidFields indicates structural HOCON errors found before
	// resolution begins.
	ErrInvalidFields = errors.New("invalid fields")

	// ErrResolverFailed indicates a deferred FieldRef evaluation failed.
	ErrResolverFailed = errors.New("resolver failed")
)

// Position identifies a single point in source text, for diagnostics.
type Position struct {
	// Line is the 1-based line number (0 if unknown).
	Line int
	// Column is the 1-based column number (0 if unknown).
	Column int
	// LineContent is the full text of the offending line, used to render a
	// caret diagram under the offending column.
	LineContent string
}

// IsKnown reports whether the position carries valid line information.
func (p Position) IsKnown() bool {
	return p.Line > 0
}

// String renders "line:column".
func (p Position) String() string {
	if !p.IsKnown() {
		return "<unknown>"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// CaretDiagram renders the offending line with a caret ("^") under the
// reported column, matching the diagnostic format required of all
// user-visible parser failures.
func (p Position) CaretDiagram() string {
	if !p.IsKnown() || p.LineContent == "" {
		return ""
	}
	col := p.Column - 1
	if col < 0 {
		col = 0
	}
	if col > len(p.LineContent) {
		col = len(p.LineContent)
	}
	return p.LineContent + "\n" + strings.Repeat(" ", col) + "^"
}

// ParserFailure represents a combinator failure. It is recoverable: a
// containing alternative combinator may try another branch after seeing one.
type ParserFailure struct {
	// Message describes why the parser failed.
	Message string
	// Position is where the failure was detected.
	Position Position
}

// Error implements error.
func (e *ParserFailure) Error() string {
	msg := fmt.Sprintf("parse error at %s: %s", e.Position, e.Message)
	if diagram := e.Position.CaretDiagram(); diagram != "" {
		msg += "\n" + diagram
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ParserFailure) Is(target error) bool {
	return target == ErrParserFailure
}

// MarkupParserException represents a failure of a parser that was expected
// to always succeed (the top-level document parser). Seeing this implies a
// bug in the markup grammar, since unrecognized input should always be kept
// as literal text instead of failing.
type MarkupParserException struct {
	// Message describes the unexpected failure.
	Message string
	// Cause is the underlying ParserFailure, if any.
	Cause error
}

// Error implements error.
func (e *MarkupParserException) Error() string {
	msg := "markup parser exception: " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *MarkupParserException) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *MarkupParserException) Is(target error) bool {
	return target == ErrMarkupParserException
}

// InvalidElement is embedded in the document tree when a directive or
// rewrite rule fails on well-formed input. It is a value carried by the AST,
// not necessarily propagated as a Go error — whether it fails the overall
// operation is controlled by MessageFilters.
type InvalidElement struct {
	// Message summarizes what went wrong.
	Message string
	// Source is the original, unparsed source fragment that produced this
	// element, preserved so the element can be rendered verbatim if desired.
	Source string
}

// Error implements error.
func (e *InvalidElement) Error() string {
	return fmt.Sprintf("invalid element: %s (source: %q)", e.Message, e.Source)
}

// Is reports whether target matches this error type.
func (e *InvalidElement) Is(target error) bool {
	return target == ErrInvalidElement
}

// ConfigParserErrors aggregates one or more HOCON syntax errors, each with
// precise position and content excerpt.
type ConfigParserErrors struct {
	Errors []ParserFailure
}

// Error implements error.
func (e *ConfigParserErrors) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	parts := make([]string, len(e.Errors))
	for i, f := range e.Errors {
		parts[i] = f.Error()
	}
	return fmt.Sprintf("%d config parser errors:\n%s", len(e.Errors), strings.Join(parts, "\n"))
}

// Is reports whether target matches this error type.
func (e *ConfigParserErrors) Is(target error) bool {
	return target == ErrConfigParser
}

// InvalidField names a single structural HOCON error discovered before
// resolution, tagged with the path at which it occurred.
type InvalidField struct {
	// Path is the dotted key path of the offending field.
	Path string
	// Message describes the structural problem.
	Message string
}

func (f InvalidField) String() string {
	return fmt.Sprintf("%s: %s", f.Path, f.Message)
}

// InvalidFields aggregates path-tagged structural HOCON errors collected by
// walking the builder tree before resolution begins. Resolution short-
// circuits whenever any exist — no partial result is ever returned.
type InvalidFields struct {
	Fields []InvalidField
}

// Error implements error.
func (e *InvalidFields) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return fmt.Sprintf("%d invalid fields: %s", len(e.Fields), strings.Join(parts, "; "))
}

// Is reports whether target matches this error type.
func (e *InvalidFields) Is(target error) bool {
	return target == ErrInvalidFields
}

// ConfigResolverError consolidates every invalid path discovered during the
// resolution pass: circular references, missing required substitutions,
// and invalid concatenations all surface as one aggregated error at the
// end of a single resolve call. A required include that fails to load is
// reported through InvalidFields instead.
type ConfigResolverError struct {
	// InvalidPaths is every distinct problem found, in the order discovered.
	InvalidPaths []string
}

// Error implements error.
func (e *ConfigResolverError) Error() string {
	return fmt.Sprintf("config resolution failed: %s", strings.Join(e.InvalidPaths, "; "))
}

// Is reports whether target matches this error type.
func (e *ConfigResolverError) Is(target error) bool {
	return target == ErrConfigResolver
}

// Add appends a new invalid-path message to the error, returning the
// receiver for chaining.
func (e *ConfigResolverError) Add(message string) *ConfigResolverError {
	e.InvalidPaths = append(e.InvalidPaths, message)
	return e
}

// Empty reports whether no invalid paths have been recorded, meaning the
// caller should discard the error rather than return it.
func (e *ConfigResolverError) Empty() bool {
	return e == nil || len(e.InvalidPaths) == 0
}

// CircularReferenceMessage builds the standard message for a detected
// substitution cycle, naming both paths involved as required by the
// resolver's testable properties.
func CircularReferenceMessage(from, to string) string {
	return fmt.Sprintf("circular reference: '%s' -> '%s'", from, to)
}

// MissingRequiredReferenceMessage builds the standard message for a required
// substitution that could not be resolved.
func MissingRequiredReferenceMessage(ref string) string {
	return fmt.Sprintf("Missing required reference: '%s'", ref)
}

// ResolverFailed wraps a failure encountered while lazily evaluating a
// FieldRef tree against a parent Config (e.g. a dependent-value computation
// that could not complete).
type ResolverFailed struct {
	// Path is the key path being resolved when the failure occurred.
	Path string
	// Message describes the failure.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements error.
func (e *ResolverFailed) Error() string {
	msg := fmt.Sprintf("resolver failed at %s: %s", e.Path, e.Message)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *ResolverFailed) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ResolverFailed) Is(target error) bool {
	return target == ErrResolverFailed
}
