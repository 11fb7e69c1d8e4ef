// Package legacy normalizes the deprecated directive and substitution
// syntaxes accepted for back-compat into their canonical forms, so the
// rest of the toolchain only ever has to deal with one grammar.
//
// Two legacy forms are recognized: the colon-fenced directive
// (`:name attr="value" : body`), normalized to `@:name attr="value" {
// body } @:@`, and the brace substitution (`{{key}}`), normalized to
// `${key}`. Both rewrites are applied line-oriented rather than through
// the full document parser, so Normalize can run as a pre-process step
// ahead of parsing.
package legacy

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/erraggy/laika/directive"
	"github.com/erraggy/laika/internal/issues"
	"github.com/erraggy/laika/internal/severity"
	txt "github.com/erraggy/laika/text"
)

// ConversionIssue records one legacy-syntax rewrite or ambiguity found
// during normalization.
type ConversionIssue = issues.Issue

// Result is the outcome of Normalize: the rewritten source plus a log of
// every normalization performed, in source order.
type Result struct {
	Source string
	Issues []ConversionIssue
}

// HasWarnings reports whether any recorded issue reached Warning
// severity, meaning a rewrite was applied on a best-effort, possibly
// lossy basis and is worth a human's attention.
func (r Result) HasWarnings() bool {
	for _, issue := range r.Issues {
		if issue.Severity >= severity.Warning {
			return true
		}
	}
	return false
}

var substitutionPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.-]+)\s*\}\}`)

// Normalize rewrites every legacy directive and substitution occurrence
// in src into canonical form.
func Normalize(src string) Result {
	var result Result
	withDirectives := normalizeDirectives(src, &result.Issues)
	result.Source = normalizeSubstitutions(withDirectives, &result.Issues)
	return result
}

func normalizeSubstitutions(src string, out *[]ConversionIssue) string {
	return substitutionPattern.ReplaceAllStringFunc(src, func(match string) string {
		key := substitutionPattern.FindStringSubmatch(match)[1]
		*out = append(*out, ConversionIssue{
			Path:     fmt.Sprintf("substitution %q", match),
			Message:  "legacy `{{key}}` substitution rewritten to `${key}`",
			Severity: severity.Info,
		})
		return "${" + key + "}"
	})
}

// normalizeDirectives rewrites legacy colon-fenced directives found at
// the start of a line (ignoring leading indentation). A line not
// starting with `:name` is left untouched.
func normalizeDirectives(src string, out *[]ConversionIssue) string {
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" || trimmed[0] != ':' {
			continue
		}
		indent := line[:len(line)-len(trimmed)]

		occ, _, ok := directive.ParseLegacy(txt.NewCursor(trimmed))
		if !ok {
			continue
		}

		canonical := renderCanonical(occ)
		lines[i] = indent + canonical

		sev := severity.Info
		var context string
		if strings.Contains(occ.Body, "@:@") {
			// The body itself contains the canonical fence, so the
			// rewritten directive's closing fence is ambiguous.
			sev = severity.Warning
			context = "body text contains `@:@`; verify the rewritten fence still closes in the right place"
		}
		*out = append(*out, ConversionIssue{
			Path:     fmt.Sprintf("line %d", i+1),
			Message:  fmt.Sprintf("legacy directive `:%s` rewritten to fenced syntax", occ.Name),
			Severity: sev,
			Context:  context,
		})
	}
	return strings.Join(lines, "\n")
}

// renderCanonical renders occ back out using the fenced `@:name { body }
// @:@` grammar, preserving argument and field order.
func renderCanonical(occ directive.Occurrence) string {
	var b strings.Builder
	b.WriteString("@:")
	b.WriteString(occ.Name)
	for _, arg := range occ.Arguments {
		b.WriteByte(' ')
		b.WriteString(arg)
	}
	for _, key := range occ.FieldOrder {
		fmt.Fprintf(&b, ` %s="%s"`, key, occ.Fields[key])
	}
	if occ.Body != "" {
		b.WriteString(" { ")
		b.WriteString(occ.Body)
		b.WriteString(" } @:@")
	}
	return b.String()
}
