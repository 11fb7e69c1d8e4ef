// Package builtin supplies laika's stock rewrite rules: resolving template
// variables and directive calls against a Config, pruning paragraphs left
// empty by earlier phases, and assigning heading anchor ids. Rules run in
// a fixed order behind an enable/disable toggle per rule, grounded on the
// teacher's fixer.fixPipeline ordered, individually-toggleable fix steps.
package builtin

import (
	"fmt"
	"strings"

	"github.com/erraggy/laika/config"
	"github.com/erraggy/laika/document"
	"github.com/erraggy/laika/rewrite"
)

// RuleName identifies one built-in rule so callers can enable or disable it
// individually, mirroring the teacher's FixType toggles.
type RuleName string

const (
	ResolveVariables     RuleName = "resolve-variables"
	ResolveDirectives    RuleName = "resolve-directives"
	AssignHeadingIDs     RuleName = "assign-heading-ids"
	PruneEmptyParagraphs RuleName = "prune-empty-paragraphs"
)

// DirectiveRenderer turns a resolved template directive call into the span
// that replaces it. Returning a non-nil error produces an InvalidSpan
// carrying the error message rather than aborting the rewrite.
type DirectiveRenderer func(name string, args map[string]string) (document.Span, error)

// Options configures which built-in rules run and what they resolve
// against. A nil Config disables ResolveVariables regardless of Enabled.
type Options struct {
	Enabled    map[RuleName]bool
	Config     *config.Config
	Directives DirectiveRenderer
}

// isEnabled reports whether name was requested. Unlisted rules default to
// disabled: builtin rules are opt-in, since a pipeline assembling its own
// RuleSet should not be surprised by rules it never asked for.
func (o Options) isEnabled(name RuleName) bool {
	return o.Enabled != nil && o.Enabled[name]
}

// BuildRuleSet assembles the enabled built-in rules into a rewrite.RuleSet
// in a fixed, documented order:
//
//  1. ResolveVariables  — template variables against Config
//  2. ResolveDirectives — template directive calls via Directives
//  3. AssignHeadingIDs  — stable anchors for headings lacking one
//  4. PruneEmptyParagraphs — drop paragraphs left with no spans
//
// Resolution must run before pruning so a paragraph that resolves to
// nothing is pruned in the same pass, and heading ids are assigned after
// content resolution so a heading's slug reflects its final text.
func BuildRuleSet(opts Options) rewrite.RuleSet {
	var spans []rewrite.SpanRule
	var blocks []rewrite.BlockRule

	if opts.isEnabled(ResolveVariables) && opts.Config != nil {
		spans = append(spans, resolveVariablesRule(opts.Config))
	}
	if opts.isEnabled(ResolveDirectives) && opts.Directives != nil {
		spans = append(spans, resolveDirectivesRule(opts.Directives))
	}
	if opts.isEnabled(AssignHeadingIDs) {
		blocks = append(blocks, assignHeadingIDsRule())
	}
	if opts.isEnabled(PruneEmptyParagraphs) {
		blocks = append(blocks, pruneEmptyParagraphsRule())
	}

	return rewrite.RuleSet{Blocks: blocks, Spans: spans}
}

func resolveVariablesRule(cfg *config.Config) rewrite.SpanRule {
	return func(_ *rewrite.DocumentCursor, s document.Span) rewrite.SpanResult {
		v, ok := s.(document.TemplateVariable)
		if !ok {
			return rewrite.RetainSpan()
		}
		value, err := config.Get[string](cfg, v.Path)
		if err != nil {
			return rewrite.ReplaceSpan(document.InvalidSpan{
				Message: fmt.Sprintf("unresolved variable %q: %v", v.Path, err),
				Source:  v.Path,
			})
		}
		return rewrite.ReplaceSpan(document.Text{Content: value})
	}
}

func resolveDirectivesRule(render DirectiveRenderer) rewrite.SpanRule {
	return func(_ *rewrite.DocumentCursor, s document.Span) rewrite.SpanResult {
		call, ok := s.(document.TemplateDirectiveCall)
		if !ok {
			return rewrite.RetainSpan()
		}
		out, err := render(call.Name, call.Args)
		if err != nil {
			return rewrite.ReplaceSpan(document.InvalidSpan{
				Message: fmt.Sprintf("directive %q failed: %v", call.Name, err),
				Source:  call.Name,
			})
		}
		return rewrite.ReplaceSpan(out)
	}
}

func assignHeadingIDsRule() rewrite.BlockRule {
	seen := map[string]int{}
	return func(_ *rewrite.DocumentCursor, b document.Block) rewrite.BlockResult {
		h, ok := b.(document.Heading)
		if !ok || h.Opts.ID != "" {
			return rewrite.RetainBlock()
		}
		slug := slugify(headingText(h))
		if n := seen[slug]; n > 0 {
			seen[slug]++
			slug = fmt.Sprintf("%s-%d", slug, n)
		} else {
			seen[slug] = 1
		}
		h.Opts = h.Opts.WithID(slug)
		return rewrite.ReplaceBlock(h)
	}
}

func pruneEmptyParagraphsRule() rewrite.BlockRule {
	return func(_ *rewrite.DocumentCursor, b document.Block) rewrite.BlockResult {
		p, ok := b.(document.Paragraph)
		if !ok {
			return rewrite.RetainBlock()
		}
		if len(p.Content) == 0 {
			return rewrite.RemoveBlock()
		}
		return rewrite.RetainBlock()
	}
}

func headingText(h document.Heading) string {
	var sb strings.Builder
	for _, s := range h.Content {
		if t, ok := s.(document.Text); ok {
			sb.WriteString(t.Content)
		}
	}
	return sb.String()
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var sb strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && sb.Len() > 0 {
				sb.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(sb.String(), "-")
}
